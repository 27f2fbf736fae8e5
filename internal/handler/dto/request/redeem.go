package request

import "strings"

type RedeemRequest struct {
	Code             string  `json:"code" binding:"required"`
	RedeemerIdentity *string `json:"redeemerIdentity,omitempty"`
}

// GetRedeemerIdentity returns the explicit identity, empty when absent so the
// handler can fall back to the client IP.
func (r RedeemRequest) GetRedeemerIdentity() string {
	if r.RedeemerIdentity == nil {
		return ""
	}
	return strings.TrimSpace(*r.RedeemerIdentity)
}
