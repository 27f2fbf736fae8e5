package api

import (
	"errors"
	"net/http"

	"glowscore/internal/domain/analysis"
	reqdto "glowscore/internal/handler/dto/request"
	resdto "glowscore/internal/handler/dto/response"
	"glowscore/internal/handler/httperr"
	"glowscore/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AnalysisHandler struct {
	analysisUseCase usecase.AnalysisCommands
}

func NewAnalysisHandler(analysisUseCase usecase.AnalysisCommands) *AnalysisHandler {
	return &AnalysisHandler{analysisUseCase: analysisUseCase}
}

// @Summary Start analysis
// @Description Spend one credit and generate an entertainment-only score
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body reqdto.StartAnalysisRequest true "Client credit balance"
// @Success 200 {object} resdto.AnalysisResponse
// @Failure 400 {object} httperr.Response
// @Failure 402 {object} httperr.Response
// @Router /analysis [post]
func (h *AnalysisHandler) Start(c *gin.Context) {
	var req reqdto.StartAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.analysisUseCase.Start(req.Balance)
	if err != nil {
		if errors.Is(err, analysis.ErrNoCredits) {
			httperr.AbortWithError(c, http.StatusPaymentRequired, err, "No analysis credits remaining, redeem a code first", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAnalysisResult(result))
}
