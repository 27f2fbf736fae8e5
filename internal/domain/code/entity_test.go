//go:build unit

package code_test

import (
	"testing"
	"time"

	"glowscore/internal/domain/code"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewToken(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "uppercases", raw: "beauty2026", want: "BEAUTY2026"},
		{name: "trims whitespace", raw: "  beauty2026  ", want: "BEAUTY2026"},
		{name: "already normalized", raw: "TEST1", want: "TEST1"},
		{name: "allows dash and underscore", raw: "vip-2026_a", want: "VIP-2026_A"},
		{name: "too short", raw: "ab", wantErr: true},
		{name: "empty", raw: "   ", wantErr: true},
		{name: "rejects inner spaces", raw: "BEAUTY 2026", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := code.NewToken(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, code.ErrInvalidToken)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	c, err := code.New("welcome10", 3, "", 5, nil)
	require.NoError(t, err)

	assert.Equal(t, "WELCOME10", c.Token().String())
	assert.Equal(t, code.StatusActive, c.Status())
	assert.EqualValues(t, 0, c.UsedCount())
	assert.NotEmpty(t, c.Description())
	assert.False(t, c.CreatedAt().IsZero())
	assert.WithinDuration(t, time.Now(), c.CreatedAt(), time.Minute)
}

func TestNew_Validation(t *testing.T) {
	_, err := code.New("TEST1", 0, "", 1, nil)
	assert.ErrorIs(t, err, code.ErrInvalidGrant)

	_, err = code.New("TEST1", 1, "", 0, nil)
	assert.ErrorIs(t, err, code.ErrInvalidMaxUses)
}

func TestRedeemableAt(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name      string
		status    code.Status
		usedCount int32
		maxUses   int32
		expiresAt *time.Time
		wantErr   error
	}{
		{name: "redeemable", status: code.StatusActive, maxUses: 1},
		{name: "disabled wins over remaining uses", status: code.StatusDisabled, maxUses: 5, wantErr: code.ErrInactive},
		{name: "expired status", status: code.StatusExpired, maxUses: 5, wantErr: code.ErrInactive},
		{name: "expiry wins over active status", status: code.StatusActive, maxUses: 5, expiresAt: &past, wantErr: code.ErrExpired},
		{name: "future expiry is fine", status: code.StatusActive, maxUses: 5, expiresAt: &future},
		{name: "exhausted despite active status", status: code.StatusActive, usedCount: 5, maxUses: 5, wantErr: code.ErrExhausted},
		{name: "over-used defensively exhausted", status: code.StatusActive, usedCount: 6, maxUses: 5, wantErr: code.ErrExhausted},
		{name: "exhausted after auto-disable at cap", status: code.StatusDisabled, usedCount: 5, maxUses: 5, wantErr: code.ErrExhausted},
		{name: "single-use code after its redemption", status: code.StatusDisabled, usedCount: 1, maxUses: 1, wantErr: code.ErrExhausted},
		{name: "expiry wins over exhaustion", status: code.StatusActive, usedCount: 5, maxUses: 5, expiresAt: &past, wantErr: code.ErrExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := code.Reconstruct(
				uuid.New(), code.Token("TEST1"), 1, "d",
				tt.maxUses, tt.usedCount, tt.status, tt.expiresAt, now,
			)
			err := c.RedeemableAt(now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
