//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"glowscore/internal/domain/analysis"
	"glowscore/internal/handler/api"
	reqdto "glowscore/internal/handler/dto/request"
	resdto "glowscore/internal/handler/dto/response"
	"glowscore/internal/usecase"
	"glowscore/tests/common/httptest"
	usecasemock "glowscore/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AnalysisHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *usecasemock.MockAnalysisCommands
	handler      *api.AnalysisHandler
}

func (s *AnalysisHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = usecasemock.NewMockAnalysisCommands(s.mockCtrl)
	s.handler = api.NewAnalysisHandler(s.mockCommands)

	s.router.POST("/api/analysis", s.handler.Start)
}

func (s *AnalysisHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAnalysisHandlerSuite(t *testing.T) {
	suite.Run(t, new(AnalysisHandlerTestSuite))
}

func (s *AnalysisHandlerTestSuite) TestStart() {
	url := "/api/analysis"

	s.Run("success: returns score and decremented balance", func() {
		s.mockCommands.EXPECT().Start(int32(3)).
			Return(&usecase.AnalysisResult{
				Score: analysis.Score{
					Overall:  88,
					Features: analysis.Features{Eyes: 80, Nose: 79, Mouth: 81, Skin: 78, Symmetry: 82},
					Comment:  "Well above average, great features.",
				},
				Balance: 2,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.StartAnalysisRequest{Balance: 3}, "")

		var response resdto.AnalysisResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(88, response.Overall)
		s.Equal(int32(2), response.Balance)
		s.Equal(80, response.Features.Eyes)
		s.NotEmpty(response.Comment)
	})

	s.Run("error: 402 when no credits remain", func() {
		s.mockCommands.EXPECT().Start(int32(0)).
			Return(nil, analysis.ErrNoCredits).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.StartAnalysisRequest{Balance: 0}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusPaymentRequired, "No analysis credits")
	})

	s.Run("error: 400 on negative balance", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"balance": -1}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}
