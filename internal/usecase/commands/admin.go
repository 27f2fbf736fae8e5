package commands

import (
	"context"
	"time"

	"glowscore/internal/domain/code"
	"glowscore/internal/infra"
	"glowscore/internal/pkg/errs"
	"glowscore/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDuplicateCode = errs.New("code already exists")
	ErrInvalidInput  = errs.New("invalid input")
)

type CreateCodeInput struct {
	Code        string
	GrantCount  int32
	Description string
	MaxUses     int32
	ExpiresAt   *time.Time
}

type UpdateCodeInput struct {
	GrantCount   *int32
	Description  *string
	MaxUses      *int32
	Status       *string
	ExpiresAt    *time.Time
	SetExpiresAt bool
}

type AdminCommands interface {
	CreateCode(ctx context.Context, in CreateCodeInput) (*code.Code, error)
	UpdateCode(ctx context.Context, id uuid.UUID, in UpdateCodeInput) (*code.Code, error)
	DeleteCode(ctx context.Context, id uuid.UUID) error
}

type adminUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewAdminUseCase(uow shared.UnitOfWork) AdminCommands {
	return &adminUseCaseImpl{uow: uow}
}

func (a *adminUseCaseImpl) CreateCode(ctx context.Context, in CreateCodeInput) (*code.Code, error) {
	c, err := code.New(in.Code, in.GrantCount, in.Description, in.MaxUses, in.ExpiresAt)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInput)
	}

	if err := a.uow.Codes().Create(ctx, c); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateCode
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return c, nil
}

// UpdateCode applies a partial update. The usage ledger is never touched;
// deactivation just stops future redemptions.
func (a *adminUseCaseImpl) UpdateCode(ctx context.Context, id uuid.UUID, in UpdateCodeInput) (*code.Code, error) {
	fields := shared.CodeUpdate{
		Description:  in.Description,
		ExpiresAt:    in.ExpiresAt,
		SetExpiresAt: in.SetExpiresAt,
	}

	if in.GrantCount != nil {
		if *in.GrantCount < 1 {
			return nil, errs.Mark(code.ErrInvalidGrant, ErrInvalidInput)
		}
		fields.GrantCount = in.GrantCount
	}
	if in.MaxUses != nil {
		if *in.MaxUses < 1 {
			return nil, errs.Mark(code.ErrInvalidMaxUses, ErrInvalidInput)
		}
		fields.MaxUses = in.MaxUses
	}
	if in.Status != nil {
		status, err := code.NewStatus(*in.Status)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidInput)
		}
		fields.Status = &status
	}

	updated, err := a.uow.Codes().Update(ctx, id, fields)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCodeNotFound
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return updated, nil
}

// DeleteCode removes the code and, through the schema's cascade, its usage
// records.
func (a *adminUseCaseImpl) DeleteCode(ctx context.Context, id uuid.UUID) error {
	if err := a.uow.Codes().Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCodeNotFound
		}
		return errs.Mark(err, ErrStorageFailure)
	}
	return nil
}
