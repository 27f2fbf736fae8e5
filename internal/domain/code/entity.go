package code

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInactive       = errors.New("code is not active")
	ErrExpired        = errors.New("code has expired")
	ErrExhausted      = errors.New("code has no remaining uses")
	ErrInvalidGrant   = errors.New("grant count must be at least 1")
	ErrInvalidMaxUses = errors.New("max uses must be at least 1")
)

type Code struct {
	id          uuid.UUID
	token       Token
	grantCount  int32
	description string
	maxUses     int32
	usedCount   int32
	status      Status
	expiresAt   *time.Time
	createdAt   time.Time
}

// New builds a freshly issued code. Description defaults to a generic grant
// message when absent; status always starts active.
func New(token string, grantCount int32, description string, maxUses int32, expiresAt *time.Time) (*Code, error) {
	t, err := NewToken(token)
	if err != nil {
		return nil, err
	}
	if grantCount < 1 {
		return nil, ErrInvalidGrant
	}
	if maxUses < 1 {
		return nil, ErrInvalidMaxUses
	}
	if description == "" {
		description = fmt.Sprintf("Redeem code grants %d analyses", grantCount)
	}

	return &Code{
		id:          uuid.New(),
		token:       t,
		grantCount:  grantCount,
		description: description,
		maxUses:     maxUses,
		usedCount:   0,
		status:      StatusActive,
		expiresAt:   expiresAt,
		createdAt:   time.Now().UTC(),
	}, nil
}

// Reconstruct hydrates a code from storage without re-validating creation
// rules.
func Reconstruct(
	id uuid.UUID,
	token Token,
	grantCount int32,
	description string,
	maxUses, usedCount int32,
	status Status,
	expiresAt *time.Time,
	createdAt time.Time,
) *Code {
	return &Code{
		id:          id,
		token:       token,
		grantCount:  grantCount,
		description: description,
		maxUses:     maxUses,
		usedCount:   usedCount,
		status:      status,
		expiresAt:   expiresAt,
		createdAt:   createdAt,
	}
}

// RedeemableAt runs the state checks in their fixed order: status, expiry,
// remaining uses. Expiry wins over a stale active status. An at-cap code
// reports Exhausted whether or not the increment already flipped its status
// to disabled; Inactive is reserved for codes an admin switched off while
// uses remained.
func (c *Code) RedeemableAt(now time.Time) error {
	if c.status != StatusActive && !c.Exhausted() {
		return ErrInactive
	}
	if c.ExpiredAt(now) {
		return ErrExpired
	}
	if c.Exhausted() {
		return ErrExhausted
	}
	return nil
}

func (c *Code) ExpiredAt(now time.Time) bool {
	return c.expiresAt != nil && now.After(*c.expiresAt)
}

func (c *Code) Exhausted() bool {
	return c.usedCount >= c.maxUses
}

func (c *Code) ID() uuid.UUID         { return c.id }
func (c *Code) Token() Token          { return c.token }
func (c *Code) GrantCount() int32     { return c.grantCount }
func (c *Code) Description() string   { return c.description }
func (c *Code) MaxUses() int32        { return c.maxUses }
func (c *Code) UsedCount() int32      { return c.usedCount }
func (c *Code) Status() Status        { return c.status }
func (c *Code) ExpiresAt() *time.Time { return c.expiresAt }
func (c *Code) CreatedAt() time.Time  { return c.createdAt }
