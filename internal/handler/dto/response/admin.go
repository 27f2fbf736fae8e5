package response

import (
	"time"

	"glowscore/internal/domain/code"
	"glowscore/internal/usecase"
	"glowscore/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type AdminLoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type CodeResponse struct {
	ID          uuid.UUID  `json:"id"`
	Code        string     `json:"code"`
	GrantCount  int32      `json:"grantCount"`
	Description string     `json:"description"`
	MaxUses     int32      `json:"maxUses"`
	UsedCount   int32      `json:"usedCount"`
	Status      string     `json:"status"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type UsageResponse struct {
	ID               uuid.UUID `json:"id"`
	CodeID           uuid.UUID `json:"codeId"`
	RedeemerIdentity string    `json:"redeemerIdentity"`
	GrantCount       int32     `json:"grantCount"`
	RedeemedAt       time.Time `json:"redeemedAt"`
}

func FromAdminSession(s *usecase.AdminSession) *AdminLoginResponse {
	return &AdminLoginResponse{
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt,
	}
}

func FromCodeEntity(c *code.Code) *CodeResponse {
	return FromCodeRM(readmodel.CodeRMFromEntity(c))
}

func FromCodeRM(rm *readmodel.CodeRM) *CodeResponse {
	return &CodeResponse{
		ID:          rm.ID,
		Code:        rm.Code,
		GrantCount:  rm.GrantCount,
		Description: rm.Description,
		MaxUses:     rm.MaxUses,
		UsedCount:   rm.UsedCount,
		Status:      rm.Status,
		ExpiresAt:   rm.ExpiresAt,
		CreatedAt:   rm.CreatedAt,
	}
}

func FromUsageRM(rm *readmodel.UsageRM) *UsageResponse {
	return &UsageResponse{
		ID:               rm.ID,
		CodeID:           rm.CodeID,
		RedeemerIdentity: rm.RedeemerIdentity,
		GrantCount:       rm.GrantCount,
		RedeemedAt:       rm.RedeemedAt,
	}
}
