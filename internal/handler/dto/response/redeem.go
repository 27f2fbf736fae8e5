package response

import (
	"glowscore/internal/usecase/commands"
)

type GrantPreview struct {
	Description string `json:"description"`
	GrantCount  int32  `json:"grantCount"`
}

type ValidateResponse struct {
	Valid   bool          `json:"valid"`
	Message string        `json:"message"`
	Grant   *GrantPreview `json:"grant,omitempty"`
}

type RedeemResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	GrantCount int32  `json:"grantCount,omitempty"`
}

// Short user-facing texts per validation outcome. Internal storage errors
// never leak here.
var reasonMessages = map[commands.Reason]string{
	commands.ReasonValid:           "Code is valid",
	commands.ReasonNotFound:        "Code not found",
	commands.ReasonInactive:        "This code is no longer active",
	commands.ReasonExpired:         "This code has expired",
	commands.ReasonExhausted:       "This code has reached its usage limit",
	commands.ReasonAlreadyRedeemed: "You have already redeemed this code",
}

func MessageForReason(reason commands.Reason) string {
	if msg, ok := reasonMessages[reason]; ok {
		return msg
	}
	return "Code could not be redeemed"
}

func FromValidationResult(r *commands.ValidationResult) *ValidateResponse {
	resp := &ValidateResponse{
		Valid:   r.Valid,
		Message: MessageForReason(r.Reason),
	}
	if r.Valid {
		resp.Grant = &GrantPreview{
			Description: r.Description,
			GrantCount:  r.GrantCount,
		}
	}
	return resp
}

func FromRedemptionResult(r *commands.RedemptionResult) *RedeemResponse {
	msg := r.Description
	if msg == "" {
		msg = MessageForReason(commands.ReasonValid)
	}
	return &RedeemResponse{
		Success:    true,
		Message:    msg,
		GrantCount: r.GrantCount,
	}
}
