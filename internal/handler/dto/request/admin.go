package request

import "time"

type AdminLoginRequest struct {
	Secret string `json:"secret" binding:"required"`
}

type CreateCodeRequest struct {
	Code        string     `json:"code" binding:"required"`
	GrantCount  int32      `json:"grantCount" binding:"required,min=1"`
	Description string     `json:"description"`
	MaxUses     int32      `json:"maxUses" binding:"required,min=1"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
}

// UpdateCodeRequest is a partial update; absent fields stay untouched.
// JSON cannot distinguish a null expiresAt from an absent one, so clearing
// the expiry takes an explicit flag.
type UpdateCodeRequest struct {
	GrantCount     *int32     `json:"grantCount,omitempty"`
	Description    *string    `json:"description,omitempty"`
	MaxUses        *int32     `json:"maxUses,omitempty"`
	Status         *string    `json:"status,omitempty"`
	ExpiresAt      *time.Time `json:"expiresAt,omitempty"`
	ClearExpiresAt bool       `json:"clearExpiresAt,omitempty"`
}
