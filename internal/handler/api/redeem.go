package api

import (
	"errors"
	"net/http"

	reqdto "glowscore/internal/handler/dto/request"
	resdto "glowscore/internal/handler/dto/response"
	"glowscore/internal/handler/httperr"
	"glowscore/internal/pkg/identity"
	"glowscore/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type RedeemHandler struct {
	redeemUseCase commands.RedeemCommands
	identity      identity.Resolver
}

func NewRedeemHandler(redeemUseCase commands.RedeemCommands, identity identity.Resolver) *RedeemHandler {
	return &RedeemHandler{
		redeemUseCase: redeemUseCase,
		identity:      identity,
	}
}

// @Summary Validate redeem code
// @Description Preview whether a code is redeemable without consuming a use
// @Tags redeem
// @Produce json
// @Param code query string true "Redeem code"
// @Success 200 {object} resdto.ValidateResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /redeem/validate [get]
func (h *RedeemHandler) Validate(c *gin.Context) {
	rawCode := c.Query("code")
	if rawCode == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.New("missing code parameter"), "Code parameter is required", nil)
		return
	}

	redeemerIdentity := h.identity.Resolve(c, "")

	result, err := h.redeemUseCase.Validate(c.Request.Context(), rawCode, redeemerIdentity)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromValidationResult(result))
}

// @Summary Redeem code
// @Description Consume one use of a code and grant its analysis credits
// @Tags redeem
// @Accept json
// @Produce json
// @Param request body reqdto.RedeemRequest true "Redeem request"
// @Success 200 {object} resdto.RedeemResponse
// @Failure 400 {object} resdto.RedeemResponse
// @Failure 404 {object} resdto.RedeemResponse
// @Failure 409 {object} resdto.RedeemResponse
// @Failure 500 {object} httperr.Response
// @Router /redeem [post]
func (h *RedeemHandler) Redeem(c *gin.Context) {
	var req reqdto.RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	redeemerIdentity := h.identity.Resolve(c, req.GetRedeemerIdentity())

	result, err := h.redeemUseCase.Redeem(c.Request.Context(), req.Code, redeemerIdentity)
	if err != nil {
		status, reason, ok := redeemFailure(err)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
			return
		}
		c.JSON(status, &resdto.RedeemResponse{
			Success: false,
			Message: resdto.MessageForReason(reason),
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRedemptionResult(result))
}

// redeemFailure maps the expected redemption outcomes onto HTTP statuses.
// Anything outside this table is an internal failure.
func redeemFailure(err error) (int, commands.Reason, bool) {
	switch {
	case errors.Is(err, commands.ErrCodeNotFound):
		return http.StatusNotFound, commands.ReasonNotFound, true
	case errors.Is(err, commands.ErrCodeInactive):
		return http.StatusBadRequest, commands.ReasonInactive, true
	case errors.Is(err, commands.ErrCodeExpired):
		return http.StatusBadRequest, commands.ReasonExpired, true
	case errors.Is(err, commands.ErrCodeExhausted):
		return http.StatusConflict, commands.ReasonExhausted, true
	case errors.Is(err, commands.ErrAlreadyRedeemed):
		return http.StatusConflict, commands.ReasonAlreadyRedeemed, true
	default:
		return 0, "", false
	}
}
