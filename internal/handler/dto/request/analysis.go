package request

type StartAnalysisRequest struct {
	// Balance is the client-reported credit count; min=0 rejects negatives
	// while still allowing an explicit zero.
	Balance int32 `json:"balance" binding:"min=0"`
}
