package response

import (
	"glowscore/internal/domain/analysis"
	"glowscore/internal/usecase"
)

type FeatureScores struct {
	Eyes     int `json:"eyes"`
	Nose     int `json:"nose"`
	Mouth    int `json:"mouth"`
	Skin     int `json:"skin"`
	Symmetry int `json:"symmetry"`
}

type AnalysisResponse struct {
	Overall  int           `json:"overall"`
	Features FeatureScores `json:"features"`
	Comment  string        `json:"comment"`
	Balance  int32         `json:"balance"`
}

func FromAnalysisResult(r *usecase.AnalysisResult) *AnalysisResponse {
	return &AnalysisResponse{
		Overall:  r.Score.Overall,
		Features: fromFeatures(r.Score.Features),
		Comment:  r.Score.Comment,
		Balance:  r.Balance,
	}
}

func fromFeatures(f analysis.Features) FeatureScores {
	return FeatureScores{
		Eyes:     f.Eyes,
		Nose:     f.Nose,
		Mouth:    f.Mouth,
		Skin:     f.Skin,
		Symmetry: f.Symmetry,
	}
}
