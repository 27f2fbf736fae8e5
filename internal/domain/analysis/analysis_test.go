//go:build unit

package analysis_test

import (
	"math/rand"
	"testing"

	"glowscore/internal/domain/analysis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScorer_GenerateRanges(t *testing.T) {
	scorer := analysis.NewScorer(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		score := scorer.Generate()

		assert.GreaterOrEqual(t, score.Overall, 60)
		assert.LessOrEqual(t, score.Overall, 100)

		for _, f := range []int{
			score.Features.Eyes,
			score.Features.Nose,
			score.Features.Mouth,
			score.Features.Skin,
			score.Features.Symmetry,
		} {
			assert.GreaterOrEqual(t, f, 60)
			assert.LessOrEqual(t, f, 100)
		}

		assert.NotEmpty(t, score.Comment)
	}
}

func TestScorer_Deterministic(t *testing.T) {
	a := analysis.NewScorer(rand.NewSource(7)).Generate()
	b := analysis.NewScorer(rand.NewSource(7)).Generate()
	assert.Equal(t, a, b)
}

func TestBalance(t *testing.T) {
	b := analysis.NewBalance(0)

	_, err := b.Spend()
	assert.ErrorIs(t, err, analysis.ErrNoCredits)

	b = b.Add(3)
	assert.EqualValues(t, 3, b.Int32())

	b, err = b.Spend()
	require.NoError(t, err)
	assert.EqualValues(t, 2, b.Int32())

	assert.EqualValues(t, 0, analysis.NewBalance(-5).Int32())
}
