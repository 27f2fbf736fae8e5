package queries

import (
	"context"

	"glowscore/internal/infra"
	"glowscore/internal/pkg/errs"
	"glowscore/internal/usecase/readmodel"
	"glowscore/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCodeNotFound   = errs.New("code not found")
	ErrStorageFailure = errs.New("storage operation failed")
)

type CodeQueries interface {
	List(ctx context.Context) ([]*readmodel.CodeRM, error)
	GetByID(ctx context.Context, id uuid.UUID) (*readmodel.CodeRM, error)
	ListUsages(ctx context.Context, codeID uuid.UUID) ([]*readmodel.UsageRM, error)
}

type codeQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewCodeQueries(uow shared.UnitOfWork) CodeQueries {
	return &codeQueriesImpl{uow: uow}
}

func (q *codeQueriesImpl) List(ctx context.Context) ([]*readmodel.CodeRM, error) {
	codes, err := shared.RetryOnce(ctx, func() ([]*readmodel.CodeRM, error) {
		return q.uow.Codes().List(ctx)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return codes, nil
}

func (q *codeQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*readmodel.CodeRM, error) {
	c, err := q.uow.Codes().FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCodeNotFound
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return readmodel.CodeRMFromEntity(c), nil
}

// ListUsages returns the redemption history for one code, newest first.
func (q *codeQueriesImpl) ListUsages(ctx context.Context, codeID uuid.UUID) ([]*readmodel.UsageRM, error) {
	if _, err := q.uow.Codes().FindByID(ctx, codeID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCodeNotFound
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	usages, err := q.uow.Usages().ListForCode(ctx, codeID)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return usages, nil
}
