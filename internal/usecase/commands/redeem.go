package commands

import (
	"context"

	"glowscore/internal/domain/code"
	"glowscore/internal/infra"
	"glowscore/internal/infra/metrics"
	"glowscore/internal/pkg/clock"
	"glowscore/internal/pkg/errs"
	"glowscore/internal/usecase/shared"
)

var (
	ErrCodeNotFound    = errs.New("code not found")
	ErrCodeInactive    = errs.New("code is not active")
	ErrCodeExpired     = errs.New("code has expired")
	ErrCodeExhausted   = errs.New("code has no remaining uses")
	ErrAlreadyRedeemed = errs.New("identity already redeemed this code")
	ErrStorageFailure  = errs.New("storage operation failed")
)

type Reason string

const (
	ReasonValid           Reason = "valid"
	ReasonNotFound        Reason = "not_found"
	ReasonInactive        Reason = "inactive"
	ReasonExpired         Reason = "expired"
	ReasonExhausted       Reason = "exhausted"
	ReasonAlreadyRedeemed Reason = "already_redeemed"
)

// ValidationResult is the tagged outcome of the read-only eligibility check.
// A failed check is a normal result here, not an error.
type ValidationResult struct {
	Valid       bool
	Reason      Reason
	Description string
	GrantCount  int32
}

type RedemptionResult struct {
	GrantCount  int32
	Description string
}

type RedeemCommands interface {
	Validate(ctx context.Context, rawToken, redeemerIdentity string) (*ValidationResult, error)
	Redeem(ctx context.Context, rawToken, redeemerIdentity string) (*RedemptionResult, error)
}

type redeemUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRedeemUseCase(uow shared.UnitOfWork, clock clock.Clock) RedeemCommands {
	return &redeemUseCaseImpl{
		uow:   uow,
		clock: clock,
	}
}

// Validate previews eligibility without mutating any state. A later Redeem
// never trusts this answer; it re-runs every check under its own lock.
func (r *redeemUseCaseImpl) Validate(ctx context.Context, rawToken, redeemerIdentity string) (*ValidationResult, error) {
	token, err := code.NewToken(rawToken)
	if err != nil {
		// Stored tokens are always normalized and well-formed, so a
		// malformed input cannot match anything.
		return &ValidationResult{Reason: ReasonNotFound}, nil
	}

	c, err := shared.RetryOnce(ctx, func() (*code.Code, error) {
		return r.uow.Codes().FindByToken(ctx, token)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &ValidationResult{Reason: ReasonNotFound}, nil
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	if stateErr := c.RedeemableAt(r.clock.Now()); stateErr != nil {
		return &ValidationResult{Reason: reasonForStateError(stateErr)}, nil
	}

	redeemed, err := shared.RetryOnce(ctx, func() (bool, error) {
		return r.uow.Usages().HasRedeemed(ctx, c.ID(), redeemerIdentity)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	if redeemed {
		return &ValidationResult{Reason: ReasonAlreadyRedeemed}, nil
	}

	return &ValidationResult{
		Valid:       true,
		Reason:      ReasonValid,
		Description: c.Description(),
		GrantCount:  c.GrantCount(),
	}, nil
}

// Redeem consumes one use. All checks re-run against current state inside a
// single transaction with the code row locked, then the ledger append and
// the counter increment land together or not at all. Never retried above the
// transaction layer: an ambiguous failure must not risk a double grant.
func (r *redeemUseCaseImpl) Redeem(ctx context.Context, rawToken, redeemerIdentity string) (*RedemptionResult, error) {
	token, err := code.NewToken(rawToken)
	if err != nil {
		metrics.ObserveRedemption(string(ReasonNotFound))
		return nil, ErrCodeNotFound
	}

	var result *RedemptionResult
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Codes().FindByTokenForUpdate(ctx, token)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCodeNotFound
			}
			return errs.Mark(err, ErrStorageFailure)
		}

		if stateErr := c.RedeemableAt(r.clock.Now()); stateErr != nil {
			return redeemErrForStateError(stateErr)
		}

		redeemed, err := tx.Usages().HasRedeemed(ctx, c.ID(), redeemerIdentity)
		if err != nil {
			return errs.Mark(err, ErrStorageFailure)
		}
		if redeemed {
			return ErrAlreadyRedeemed
		}

		if err := tx.Usages().Record(ctx, c.ID(), redeemerIdentity, c.GrantCount()); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrAlreadyRedeemed
			}
			return errs.Mark(err, ErrStorageFailure)
		}

		if _, err := tx.Codes().IncrementUsage(ctx, c.ID()); err != nil {
			if infra.IsKind(err, infra.KindNoRowsAffected) {
				return ErrCodeExhausted
			}
			return errs.Mark(err, ErrStorageFailure)
		}

		result = &RedemptionResult{
			GrantCount:  c.GrantCount(),
			Description: c.Description(),
		}
		return nil
	})
	if err != nil {
		metrics.ObserveRedemption(string(reasonForRedeemError(err)))
		return nil, err
	}

	metrics.ObserveRedemption(string(ReasonValid))
	metrics.ObserveCreditsGranted(result.GrantCount)
	return result, nil
}

func reasonForStateError(err error) Reason {
	switch {
	case errs.Is(err, code.ErrInactive):
		return ReasonInactive
	case errs.Is(err, code.ErrExpired):
		return ReasonExpired
	case errs.Is(err, code.ErrExhausted):
		return ReasonExhausted
	default:
		return ReasonInactive
	}
}

func redeemErrForStateError(err error) error {
	switch {
	case errs.Is(err, code.ErrInactive):
		return ErrCodeInactive
	case errs.Is(err, code.ErrExpired):
		return ErrCodeExpired
	case errs.Is(err, code.ErrExhausted):
		return ErrCodeExhausted
	default:
		return ErrCodeInactive
	}
}

func reasonForRedeemError(err error) Reason {
	switch {
	case errs.Is(err, ErrCodeNotFound):
		return ReasonNotFound
	case errs.Is(err, ErrCodeInactive):
		return ReasonInactive
	case errs.Is(err, ErrCodeExpired):
		return ReasonExpired
	case errs.Is(err, ErrCodeExhausted):
		return ReasonExhausted
	case errs.Is(err, ErrAlreadyRedeemed):
		return ReasonAlreadyRedeemed
	default:
		return "storage_failure"
	}
}
