package usecase

import (
	"sync"

	"glowscore/internal/domain/analysis"
	"glowscore/internal/infra/metrics"
)

type AnalysisResult struct {
	Score   analysis.Score
	Balance int32
}

// AnalysisCommands starts a pseudo-analysis against a client-reported credit
// balance and returns the generated score with the decremented balance.
type AnalysisCommands interface {
	Start(balance int32) (*AnalysisResult, error)
}

type analysisUseCaseImpl struct {
	mu     sync.Mutex
	scorer *analysis.Scorer
}

func NewAnalysisUseCase(scorer *analysis.Scorer) AnalysisCommands {
	return &analysisUseCaseImpl{scorer: scorer}
}

func (a *analysisUseCaseImpl) Start(balance int32) (*AnalysisResult, error) {
	remaining, err := analysis.NewBalance(balance).Spend()
	if err != nil {
		return nil, err
	}

	// math/rand sources are not safe for concurrent use.
	a.mu.Lock()
	score := a.scorer.Generate()
	a.mu.Unlock()

	metrics.ObserveAnalysisStarted()

	return &AnalysisResult{
		Score:   score,
		Balance: remaining.Int32(),
	}, nil
}
