package repository

import (
	"context"

	"glowscore/internal/infra"
	"glowscore/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// UsageRepository is the append-only redemption ledger. Rows are never
// updated; history survives code edits because the grant is snapshotted at
// redemption time.
type UsageRepository struct {
	db DBTX
}

func NewUsageRepository(db DBTX) *UsageRepository {
	return &UsageRepository{db: db}
}

func (r *UsageRepository) HasRedeemed(ctx context.Context, codeID uuid.UUID, redeemerIdentity string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM redeem_usages WHERE code_id = $1 AND redeemer_identity = $2)`,
		codeID, redeemerIdentity,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check redemption history", err)
	}
	return exists, nil
}

// Record appends a usage row. The unique (code_id, redeemer_identity) index
// turns a lost same-identity race into a conflict instead of a double grant.
func (r *UsageRepository) Record(ctx context.Context, codeID uuid.UUID, redeemerIdentity string, grantCount int32) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO redeem_usages (code_id, redeemer_identity, grant_count)
		VALUES ($1, $2, $3)`,
		codeID, redeemerIdentity, grantCount,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("identity already redeemed this code", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to record redemption", err)
	}
	return nil
}

func (r *UsageRepository) CountForCode(ctx context.Context, codeID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM redeem_usages WHERE code_id = $1`,
		codeID,
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count redemptions", err)
	}
	return count, nil
}

func (r *UsageRepository) ListForCode(ctx context.Context, codeID uuid.UUID) ([]*readmodel.UsageRM, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, code_id, redeemer_identity, grant_count, redeemed_at
		FROM redeem_usages
		WHERE code_id = $1
		ORDER BY redeemed_at DESC`,
		codeID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list redemptions", err)
	}
	defer rows.Close()

	var result []*readmodel.UsageRM
	for rows.Next() {
		var rm readmodel.UsageRM
		if err := rows.Scan(&rm.ID, &rm.CodeID, &rm.RedeemerIdentity, &rm.GrantCount, &rm.RedeemedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan usage row", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate usage rows", err)
	}
	return result, nil
}
