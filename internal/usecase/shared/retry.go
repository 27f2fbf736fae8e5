package shared

import (
	"context"

	"glowscore/internal/infra"
)

// RetryOnce re-runs an idempotent read after a single backend failure.
// Expected outcomes such as a missing row pass through untouched.
func RetryOnce[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	v, err := fn()
	if err == nil || !infra.IsKind(err, infra.KindDBFailure) {
		return v, err
	}
	if ctx.Err() != nil {
		return v, err
	}
	return fn()
}
