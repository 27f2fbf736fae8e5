// Package analysis fabricates the entertainment-only "beauty score". There
// is no computer-vision model behind it: the overall score is uniform in
// [60, 100] and the five feature scores jitter around 90% of it. Treat every
// number here as a toy.
package analysis

import (
	"math/rand"
)

const (
	scoreFloor      = 60
	scoreCeil       = 100
	featureVariance = 15
)

type Features struct {
	Eyes     int `json:"eyes"`
	Nose     int `json:"nose"`
	Mouth    int `json:"mouth"`
	Skin     int `json:"skin"`
	Symmetry int `json:"symmetry"`
}

type Score struct {
	Overall  int      `json:"overall"`
	Features Features `json:"features"`
	Comment  string   `json:"comment"`
}

type commentTier struct {
	min     int
	comment string
}

// Highest tier first; the first matching threshold wins.
var commentTiers = []commentTier{
	{min: 95, comment: "Stunning! Ready for the big screen."},
	{min: 90, comment: "Striking looks, you turn heads everywhere."},
	{min: 85, comment: "Well above average, great features."},
	{min: 80, comment: "A charming, memorable face."},
	{min: 75, comment: "Pleasant and friendly looks."},
	{min: 70, comment: "A solid everyday look with potential."},
	{min: 0, comment: "Beauty is in the eye of the beholder."},
}

type Scorer struct {
	rng *rand.Rand
}

// NewScorer takes its own source so tests can pin the sequence.
func NewScorer(src rand.Source) *Scorer {
	return &Scorer{rng: rand.New(src)}
}

func (s *Scorer) Generate() Score {
	overall := scoreFloor + s.rng.Intn(scoreCeil-scoreFloor+1)
	base := overall * 9 / 10

	return Score{
		Overall: overall,
		Features: Features{
			Eyes:     s.feature(base),
			Nose:     s.feature(base),
			Mouth:    s.feature(base),
			Skin:     s.feature(base),
			Symmetry: s.feature(base),
		},
		Comment: commentFor(overall),
	}
}

func (s *Scorer) feature(base int) int {
	v := base + s.rng.Intn(featureVariance) - featureVariance/2
	if v < scoreFloor {
		return scoreFloor
	}
	if v > scoreCeil {
		return scoreCeil
	}
	return v
}

func commentFor(overall int) string {
	for _, tier := range commentTiers {
		if overall >= tier.min {
			return tier.comment
		}
	}
	return commentTiers[len(commentTiers)-1].comment
}
