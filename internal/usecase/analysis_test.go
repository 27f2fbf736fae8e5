//go:build unit

package usecase_test

import (
	"math/rand"
	"sync"
	"testing"

	"glowscore/internal/domain/analysis"
	"glowscore/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalysisStart(t *testing.T) {
	sut := usecase.NewAnalysisUseCase(analysis.NewScorer(rand.NewSource(1)))

	t.Run("success: spends one credit", func(t *testing.T) {
		result, err := sut.Start(3)
		require.NoError(t, err)
		assert.Equal(t, int32(2), result.Balance)
		assert.GreaterOrEqual(t, result.Score.Overall, 60)
		assert.LessOrEqual(t, result.Score.Overall, 100)
		assert.NotEmpty(t, result.Score.Comment)
	})

	t.Run("success: last credit reaches zero", func(t *testing.T) {
		result, err := sut.Start(1)
		require.NoError(t, err)
		assert.Equal(t, int32(0), result.Balance)
	})

	t.Run("error: zero balance", func(t *testing.T) {
		_, err := sut.Start(0)
		assert.ErrorIs(t, err, analysis.ErrNoCredits)
	})

	t.Run("error: negative balance is treated as empty", func(t *testing.T) {
		_, err := sut.Start(-5)
		assert.ErrorIs(t, err, analysis.ErrNoCredits)
	})
}

func TestAnalysisStartConcurrent(t *testing.T) {
	sut := usecase.NewAnalysisUseCase(analysis.NewScorer(rand.NewSource(42)))

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := sut.Start(10)
			assert.NoError(t, err)
			assert.GreaterOrEqual(t, result.Score.Overall, 60)
			assert.LessOrEqual(t, result.Score.Overall, 100)
		}()
	}
	wg.Wait()
}
