package readmodel

import (
	"time"

	"glowscore/internal/domain/code"

	"github.com/google/uuid"
)

type CodeRM struct {
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

func CodeRMFromEntity(c *code.Code) *CodeRM {
	return &CodeRM{
		ID:          c.ID(),
		Code:        c.Token().String(),
		GrantCount:  c.GrantCount(),
		Description: c.Description(),
		MaxUses:     c.MaxUses(),
		UsedCount:   c.UsedCount(),
		Status:      c.Status().String(),
		ExpiresAt:   c.ExpiresAt(),
		CreatedAt:   c.CreatedAt(),
	}
}

type UsageRM struct {
	ID               uuid.UUID `json:"id"`
	CodeID           uuid.UUID `json:"codeId"`
	RedeemerIdentity string    `json:"redeemerIdentity"`
	GrantCount       int32     `json:"grantCount"`
	RedeemedAt       time.Time `json:"redeemedAt"`
}
