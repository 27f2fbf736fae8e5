//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"glowscore/internal/domain/code"
	"glowscore/internal/pkg/clock"
	"glowscore/internal/pkg/ptr"
	"glowscore/internal/usecase/commands"

	"github.com/stretchr/testify/suite"
)

type RedeemCommandsTestSuite struct {
	suite.Suite
	store *fakeStore
	clock *clock.MockClock
	sut   commands.RedeemCommands
}

func (s *RedeemCommandsTestSuite) SetupTest() {
	s.store = newFakeStore()
	s.clock = clock.NewMockClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	s.sut = commands.NewRedeemUseCase(newFakeUoW(s.store), s.clock)
}

func TestRedeemCommandsSuite(t *testing.T) {
	suite.Run(t, new(RedeemCommandsTestSuite))
}

func (s *RedeemCommandsTestSuite) seed(token string, grantCount, maxUses int32, expiresAt *time.Time) *code.Code {
	c, err := code.New(token, grantCount, "", maxUses, expiresAt)
	s.Require().NoError(err)
	s.store.put(c)
	return c
}

func (s *RedeemCommandsTestSuite) TestSingleUseCode() {
	c := s.seed("TEST1", 1, 1, nil)
	ctx := context.Background()

	result, err := s.sut.Redeem(ctx, "TEST1", "identity-a")
	s.Require().NoError(err)
	s.Equal(int32(1), result.GrantCount)

	// Once the single use is consumed every identity, the original redeemer
	// included, sees Exhausted.
	_, err = s.sut.Redeem(ctx, "TEST1", "identity-a")
	s.ErrorIs(err, commands.ErrCodeExhausted)

	_, err = s.sut.Redeem(ctx, "TEST1", "identity-b")
	s.ErrorIs(err, commands.ErrCodeExhausted)

	stored := s.store.get(c.ID())
	s.Equal(int32(1), stored.UsedCount())
	s.Equal(code.StatusDisabled, stored.Status())
}

func (s *RedeemCommandsTestSuite) TestMultiUseCodeDisablesAtCap() {
	c := s.seed("TEST2", 2, 5, nil)
	ctx := context.Background()

	identities := []string{"a", "b", "c", "d", "e"}
	for _, id := range identities {
		result, err := s.sut.Redeem(ctx, "TEST2", id)
		s.Require().NoError(err)
		s.Equal(int32(2), result.GrantCount)
	}

	_, err := s.sut.Redeem(ctx, "TEST2", "f")
	s.ErrorIs(err, commands.ErrCodeExhausted)

	stored := s.store.get(c.ID())
	s.Equal(int32(5), stored.UsedCount())
	s.Equal(code.StatusDisabled, stored.Status())
}

func (s *RedeemCommandsTestSuite) TestExpiredCode() {
	past := s.clock.Now().Add(-time.Hour)
	s.seed("TEST3", 1, 10, ptr.To(past))
	ctx := context.Background()

	_, err := s.sut.Redeem(ctx, "TEST3", "anyone")
	s.ErrorIs(err, commands.ErrCodeExpired)

	result, err := s.sut.Validate(ctx, "TEST3", "anyone")
	s.Require().NoError(err)
	s.False(result.Valid)
	s.Equal(commands.ReasonExpired, result.Reason)
}

func (s *RedeemCommandsTestSuite) TestExpiryWinsOverActiveStatus() {
	// Status still reads active in storage but the deadline has passed.
	c := s.seed("PROMO", 1, 10, ptr.To(s.clock.Now().Add(time.Minute)))
	s.clock.Add(2 * time.Minute)

	_, err := s.sut.Redeem(context.Background(), "PROMO", "anyone")
	s.ErrorIs(err, commands.ErrCodeExpired)
	s.Equal(code.StatusActive, s.store.get(c.ID()).Status())
}

func (s *RedeemCommandsTestSuite) TestDisabledCodeIsInactiveRegardlessOfRemainingUses() {
	c, err := code.New("PAUSED", 1, "", 10, nil)
	s.Require().NoError(err)
	disabled := code.Reconstruct(c.ID(), c.Token(), c.GrantCount(), c.Description(), c.MaxUses(), 0, code.StatusDisabled, nil, c.CreatedAt())
	s.store.put(disabled)

	_, err = s.sut.Redeem(context.Background(), "PAUSED", "anyone")
	s.ErrorIs(err, commands.ErrCodeInactive)

	result, err := s.sut.Validate(context.Background(), "PAUSED", "anyone")
	s.Require().NoError(err)
	s.Equal(commands.ReasonInactive, result.Reason)
}

func (s *RedeemCommandsTestSuite) TestExhaustionReportedBeforeStatusFlip() {
	// A prior race left used_count at the cap with the status not yet flipped.
	c, err := code.New("RACED", 1, "", 3, nil)
	s.Require().NoError(err)
	raced := code.Reconstruct(c.ID(), c.Token(), c.GrantCount(), c.Description(), c.MaxUses(), 3, code.StatusActive, nil, c.CreatedAt())
	s.store.put(raced)

	_, err = s.sut.Redeem(context.Background(), "RACED", "late")
	s.ErrorIs(err, commands.ErrCodeExhausted)
}

func (s *RedeemCommandsTestSuite) TestTokenNormalization() {
	s.seed("BEAUTY2026", 3, 10, nil)

	result, err := s.sut.Redeem(context.Background(), "  beauty2026  ", "someone")
	s.Require().NoError(err)
	s.Equal(int32(3), result.GrantCount)
}

func (s *RedeemCommandsTestSuite) TestMalformedTokenIsNotFound() {
	ctx := context.Background()

	result, err := s.sut.Validate(ctx, "!!", "someone")
	s.Require().NoError(err)
	s.Equal(commands.ReasonNotFound, result.Reason)

	_, err = s.sut.Redeem(ctx, "!!", "someone")
	s.ErrorIs(err, commands.ErrCodeNotFound)
}

func (s *RedeemCommandsTestSuite) TestValidateDoesNotMutate() {
	c := s.seed("PREVIEW", 2, 5, nil)

	result, err := s.sut.Validate(context.Background(), "PREVIEW", "someone")
	s.Require().NoError(err)
	s.True(result.Valid)
	s.Equal(int32(2), result.GrantCount)
	s.Equal(c.Description(), result.Description)

	s.Equal(int32(0), s.store.get(c.ID()).UsedCount())
}

func (s *RedeemCommandsTestSuite) TestValidateReportsAlreadyRedeemed() {
	s.seed("ONCE", 1, 5, nil)
	ctx := context.Background()

	_, err := s.sut.Redeem(ctx, "ONCE", "repeat")
	s.Require().NoError(err)

	result, err := s.sut.Validate(ctx, "ONCE", "repeat")
	s.Require().NoError(err)
	s.Equal(commands.ReasonAlreadyRedeemed, result.Reason)

	other, err := s.sut.Validate(ctx, "ONCE", "fresh")
	s.Require().NoError(err)
	s.True(other.Valid)
}

func (s *RedeemCommandsTestSuite) TestValidateRetriesTransientFailureOnce() {
	s.seed("FLAKY", 1, 5, nil)
	s.store.findFailures = 1

	result, err := s.sut.Validate(context.Background(), "FLAKY", "someone")
	s.Require().NoError(err)
	s.True(result.Valid)
	s.Equal(2, s.store.findCalls)
}

func (s *RedeemCommandsTestSuite) TestValidateSurfacesPersistentFailure() {
	s.seed("DOWN", 1, 5, nil)
	s.store.findFailures = 2

	_, err := s.sut.Validate(context.Background(), "DOWN", "someone")
	s.ErrorIs(err, commands.ErrStorageFailure)
}

func (s *RedeemCommandsTestSuite) TestUnknownTokenNotRetried() {
	result, err := s.sut.Validate(context.Background(), "MISSING", "someone")
	s.Require().NoError(err)
	s.Equal(commands.ReasonNotFound, result.Reason)
	s.Equal(1, s.store.findCalls)
}
