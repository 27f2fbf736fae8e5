package repository

import (
	"context"
	"time"

	"glowscore/internal/domain/code"
	"glowscore/internal/infra"
	"glowscore/internal/usecase/readmodel"
	"glowscore/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const codeColumns = `id, code, grant_count, description, max_uses, used_count, status, expires_at, created_at`

type CodeRepository struct {
	db DBTX
}

func NewCodeRepository(db DBTX) *CodeRepository {
	return &CodeRepository{db: db}
}

func (r *CodeRepository) Create(ctx context.Context, c *code.Code) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO redeem_codes (id, code, grant_count, description, max_uses, used_count, status, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		c.ID(), c.Token().String(), c.GrantCount(), c.Description(),
		c.MaxUses(), c.UsedCount(), c.Status().String(), c.ExpiresAt(), c.CreatedAt(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("code token already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create code", err)
	}
	return nil
}

func (r *CodeRepository) FindByToken(ctx context.Context, token code.Token) (*code.Code, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+codeColumns+` FROM redeem_codes WHERE code = $1`,
		token.String(),
	)
	return r.scanCode(row, "failed to find code by token")
}

// FindByTokenForUpdate locks the code row for the rest of the transaction so
// concurrent redemptions of the same code serialize.
func (r *CodeRepository) FindByTokenForUpdate(ctx context.Context, token code.Token) (*code.Code, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+codeColumns+` FROM redeem_codes WHERE code = $1 FOR UPDATE`,
		token.String(),
	)
	return r.scanCode(row, "failed to lock code by token")
}

func (r *CodeRepository) FindByID(ctx context.Context, id uuid.UUID) (*code.Code, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+codeColumns+` FROM redeem_codes WHERE id = $1`,
		id,
	)
	return r.scanCode(row, "failed to find code by ID")
}

func (r *CodeRepository) List(ctx context.Context) ([]*readmodel.CodeRM, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+codeColumns+` FROM redeem_codes ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list codes", err)
	}
	defer rows.Close()

	var result []*readmodel.CodeRM
	for rows.Next() {
		rm, err := scanCodeRM(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan code row", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate code rows", err)
	}
	return result, nil
}

func (r *CodeRepository) Update(ctx context.Context, id uuid.UUID, fields shared.CodeUpdate) (*code.Code, error) {
	var status *string
	if fields.Status != nil {
		s := fields.Status.String()
		status = &s
	}

	row := r.db.QueryRow(ctx, `
		UPDATE redeem_codes SET
			grant_count = COALESCE($2, grant_count),
			description = COALESCE($3, description),
			max_uses    = COALESCE($4, max_uses),
			status      = COALESCE($5, status),
			expires_at  = CASE WHEN $6 THEN $7 ELSE expires_at END,
			updated_at  = now()
		WHERE id = $1
		RETURNING `+codeColumns,
		id, fields.GrantCount, fields.Description, fields.MaxUses,
		status, fields.SetExpiresAt, fields.ExpiresAt,
	)
	return r.scanCode(row, "failed to update code")
}

func (r *CodeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM redeem_codes WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete code", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("code not found", nil, infra.KindNotFound)
	}
	return nil
}

// IncrementUsage is the single authoritative mutation of used_count: a
// conditional update that refuses to push past max_uses and flips the status
// to disabled when the cap is reached. Zero rows affected means the code was
// already exhausted.
func (r *CodeRepository) IncrementUsage(ctx context.Context, id uuid.UUID) (*code.Code, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE redeem_codes SET
			used_count = used_count + 1,
			status     = CASE WHEN used_count + 1 >= max_uses THEN 'disabled' ELSE status END,
			updated_at = now()
		WHERE id = $1 AND used_count < max_uses
		RETURNING `+codeColumns,
		id,
	)
	c, err := r.scanCode(row, "failed to increment code usage")
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, infra.WrapRepoErr("code exhausted or missing", nil, infra.KindNoRowsAffected)
		}
		return nil, err
	}
	return c, nil
}

func (r *CodeRepository) scanCode(row pgx.Row, msg string) (*code.Code, error) {
	var (
		id          uuid.UUID
		token       string
		grantCount  int32
		description string
		maxUses     int32
		usedCount   int32
		status      string
		expiresAt   *time.Time
		createdAt   time.Time
	)
	err := row.Scan(&id, &token, &grantCount, &description, &maxUses, &usedCount, &status, &expiresAt, &createdAt)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("code not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr(msg, err)
	}

	return code.Reconstruct(
		id, code.Token(token), grantCount, description,
		maxUses, usedCount, code.Status(status), expiresAt, createdAt,
	), nil
}

func scanCodeRM(rows pgx.Rows) (*readmodel.CodeRM, error) {
	var rm readmodel.CodeRM
	err := rows.Scan(
		&rm.ID, &rm.Code, &rm.GrantCount, &rm.Description,
		&rm.MaxUses, &rm.UsedCount, &rm.Status, &rm.ExpiresAt, &rm.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}
