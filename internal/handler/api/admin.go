package api

import (
	"errors"
	"net/http"

	reqdto "glowscore/internal/handler/dto/request"
	resdto "glowscore/internal/handler/dto/response"
	"glowscore/internal/handler/httperr"
	"glowscore/internal/usecase"
	"glowscore/internal/usecase/commands"
	"glowscore/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	auth         usecase.AdminAuth
	adminUseCase commands.AdminCommands
	codeQueries  queries.CodeQueries
}

func NewAdminHandler(auth usecase.AdminAuth, adminUseCase commands.AdminCommands, codeQueries queries.CodeQueries) *AdminHandler {
	return &AdminHandler{
		auth:         auth,
		adminUseCase: adminUseCase,
		codeQueries:  codeQueries,
	}
}

// @Summary Admin login
// @Description Exchange the dashboard secret for a session token
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.AdminLoginRequest true "Login request"
// @Success 200 {object} resdto.AdminLoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req reqdto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	session, err := h.auth.Login(req.Secret)
	if err != nil {
		if errors.Is(err, usecase.ErrUnauthorized) {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid admin secret", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAdminSession(session))
}

// @Summary Create redeem code
// @Description Create a new redeem code
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminSecret
// @Param request body reqdto.CreateCodeRequest true "Code definition"
// @Success 201 {object} resdto.CodeResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/codes [post]
func (h *AdminHandler) CreateCode(c *gin.Context) {
	var req reqdto.CreateCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	created, err := h.adminUseCase.CreateCode(c.Request.Context(), commands.CreateCodeInput{
		Code:        req.Code,
		GrantCount:  req.GrantCount,
		Description: req.Description,
		MaxUses:     req.MaxUses,
		ExpiresAt:   req.ExpiresAt,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDuplicateCode):
			httperr.AbortWithError(c, http.StatusConflict, err, "A code with this value already exists", nil)
		case errors.Is(err, commands.ErrInvalidInput):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid code definition", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCodeEntity(created))
}

// @Summary List redeem codes
// @Description List all codes with live usage counts
// @Tags admin
// @Produce json
// @Security AdminSecret
// @Success 200 {array} resdto.CodeResponse
// @Failure 401 {object} httperr.Response
// @Router /admin/codes [get]
func (h *AdminHandler) ListCodes(c *gin.Context) {
	codes, err := h.codeQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.CodeResponse, len(codes))
	for i, rm := range codes {
		response[i] = resdto.FromCodeRM(rm)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get redeem code
// @Description Get a single code by ID
// @Tags admin
// @Produce json
// @Security AdminSecret
// @Param id path string true "Code ID"
// @Success 200 {object} resdto.CodeResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/codes/{id} [get]
func (h *AdminHandler) GetCode(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	rm, err := h.codeQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrCodeNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Code not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCodeRM(rm))
}

// @Summary Update redeem code
// @Description Partially update a code; the usage history is never modified
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminSecret
// @Param id path string true "Code ID"
// @Param request body reqdto.UpdateCodeRequest true "Fields to update"
// @Success 200 {object} resdto.CodeResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/codes/{id} [put]
func (h *AdminHandler) UpdateCode(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	in := commands.UpdateCodeInput{
		GrantCount:  req.GrantCount,
		Description: req.Description,
		MaxUses:     req.MaxUses,
		Status:      req.Status,
	}
	if req.ClearExpiresAt {
		in.SetExpiresAt = true
	} else if req.ExpiresAt != nil {
		in.ExpiresAt = req.ExpiresAt
		in.SetExpiresAt = true
	}

	updated, err := h.adminUseCase.UpdateCode(c.Request.Context(), id, in)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCodeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Code not found", nil)
		case errors.Is(err, commands.ErrInvalidInput):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid code update", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCodeEntity(updated))
}

// @Summary Delete redeem code
// @Description Delete a code and its usage records
// @Tags admin
// @Security AdminSecret
// @Param id path string true "Code ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/codes/{id} [delete]
func (h *AdminHandler) DeleteCode(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.adminUseCase.DeleteCode(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrCodeNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Code not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List code usages
// @Description List the redemption history of a code, newest first
// @Tags admin
// @Produce json
// @Security AdminSecret
// @Param id path string true "Code ID"
// @Success 200 {array} resdto.UsageResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/codes/{id}/usages [get]
func (h *AdminHandler) ListUsages(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	usages, err := h.codeQueries.ListUsages(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrCodeNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Code not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.UsageResponse, len(usages))
	for i, rm := range usages {
		response[i] = resdto.FromUsageRM(rm)
	}

	c.JSON(http.StatusOK, response)
}

func (h *AdminHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid code ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}
