package shared

import (
	"context"
	"time"

	"glowscore/internal/domain/code"
	"glowscore/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Codes / Usages: pool-bound repositories for reads outside a transaction
	Codes() CodeRepository
	Usages() UsageRepository
}

type Tx interface {
	Codes() CodeRepository
	Usages() UsageRepository
}

type CodeRepository interface {
	Create(ctx context.Context, c *code.Code) error
	FindByToken(ctx context.Context, token code.Token) (*code.Code, error)
	FindByTokenForUpdate(ctx context.Context, token code.Token) (*code.Code, error)
	FindByID(ctx context.Context, id uuid.UUID) (*code.Code, error)
	List(ctx context.Context) ([]*readmodel.CodeRM, error)
	Update(ctx context.Context, id uuid.UUID, fields CodeUpdate) (*code.Code, error)
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementUsage(ctx context.Context, id uuid.UUID) (*code.Code, error)
}

type UsageRepository interface {
	HasRedeemed(ctx context.Context, codeID uuid.UUID, redeemerIdentity string) (bool, error)
	Record(ctx context.Context, codeID uuid.UUID, redeemerIdentity string, grantCount int32) error
	CountForCode(ctx context.Context, codeID uuid.UUID) (int64, error)
	ListForCode(ctx context.Context, codeID uuid.UUID) ([]*readmodel.UsageRM, error)
}

// CodeUpdate carries the admin partial update. Nil pointers leave the field
// untouched; SetExpiresAt distinguishes "clear the expiry" from "leave it
// alone".
type CodeUpdate struct {
	GrantCount   *int32
	Description  *string
	MaxUses      *int32
	Status       *code.Status
	ExpiresAt    *time.Time
	SetExpiresAt bool
}
