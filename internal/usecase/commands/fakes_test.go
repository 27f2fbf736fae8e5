//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"glowscore/internal/domain/code"
	"glowscore/internal/infra"
	"glowscore/internal/usecase/readmodel"
	"glowscore/internal/usecase/shared"

	"github.com/google/uuid"
)

// In-memory stand-in for the postgres unit of work. It mirrors the error
// kinds of the real repositories so the command layer's mapping logic is
// exercised for real. Writes are serialized by a single mutex; transactional
// rollback is not simulated, which the serial test scenarios never need.
type fakeStore struct {
	mu     sync.Mutex
	codes  map[uuid.UUID]*code.Code
	order  []uuid.UUID
	usages map[uuid.UUID]map[string]time.Time

	// findFailures makes the next N token lookups fail with a backend error.
	findFailures int
	findCalls    int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		codes:  make(map[uuid.UUID]*code.Code),
		usages: make(map[uuid.UUID]map[string]time.Time),
	}
}

func (s *fakeStore) put(c *code.Code) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.codes[c.ID()]; !ok {
		s.order = append(s.order, c.ID())
	}
	s.codes[c.ID()] = c
}

func (s *fakeStore) get(id uuid.UUID) *code.Code {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.codes[id]
}

type fakeUoW struct {
	store *fakeStore
}

func newFakeUoW(store *fakeStore) shared.UnitOfWork {
	return &fakeUoW{store: store}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{store: u.store})
}

func (u *fakeUoW) Codes() shared.CodeRepository   { return &fakeCodeRepo{store: u.store} }
func (u *fakeUoW) Usages() shared.UsageRepository { return &fakeUsageRepo{store: u.store} }

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) Codes() shared.CodeRepository   { return &fakeCodeRepo{store: t.store} }
func (t *fakeTx) Usages() shared.UsageRepository { return &fakeUsageRepo{store: t.store} }

type fakeCodeRepo struct {
	store *fakeStore
}

func (r *fakeCodeRepo) Create(_ context.Context, c *code.Code) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.codes {
		if existing.Token() == c.Token() {
			return infra.WrapRepoErr("code token already exists", errors.New("unique violation"), infra.KindDuplicateKey)
		}
	}
	r.store.order = append(r.store.order, c.ID())
	r.store.codes[c.ID()] = c
	return nil
}

func (r *fakeCodeRepo) FindByToken(_ context.Context, token code.Token) (*code.Code, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.findCalls++
	if r.store.findFailures > 0 {
		r.store.findFailures--
		return nil, infra.WrapRepoErr("connection reset", errors.New("connection reset"))
	}
	for _, c := range r.store.codes {
		if c.Token() == token {
			return c, nil
		}
	}
	return nil, infra.WrapRepoErr("code not found", nil, infra.KindNotFound)
}

func (r *fakeCodeRepo) FindByTokenForUpdate(ctx context.Context, token code.Token) (*code.Code, error) {
	return r.FindByToken(ctx, token)
}

func (r *fakeCodeRepo) FindByID(_ context.Context, id uuid.UUID) (*code.Code, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c, ok := r.store.codes[id]
	if !ok {
		return nil, infra.WrapRepoErr("code not found", nil, infra.KindNotFound)
	}
	return c, nil
}

func (r *fakeCodeRepo) List(_ context.Context) ([]*readmodel.CodeRM, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	result := make([]*readmodel.CodeRM, 0, len(r.store.order))
	for _, id := range r.store.order {
		result = append(result, readmodel.CodeRMFromEntity(r.store.codes[id]))
	}
	return result, nil
}

func (r *fakeCodeRepo) Update(_ context.Context, id uuid.UUID, fields shared.CodeUpdate) (*code.Code, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c, ok := r.store.codes[id]
	if !ok {
		return nil, infra.WrapRepoErr("code not found", nil, infra.KindNotFound)
	}

	grantCount := c.GrantCount()
	if fields.GrantCount != nil {
		grantCount = *fields.GrantCount
	}
	description := c.Description()
	if fields.Description != nil {
		description = *fields.Description
	}
	maxUses := c.MaxUses()
	if fields.MaxUses != nil {
		maxUses = *fields.MaxUses
	}
	status := c.Status()
	if fields.Status != nil {
		status = *fields.Status
	}
	expiresAt := c.ExpiresAt()
	if fields.SetExpiresAt {
		expiresAt = fields.ExpiresAt
	}

	updated := code.Reconstruct(c.ID(), c.Token(), grantCount, description, maxUses, c.UsedCount(), status, expiresAt, c.CreatedAt())
	r.store.codes[id] = updated
	return updated, nil
}

func (r *fakeCodeRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.codes[id]; !ok {
		return infra.WrapRepoErr("code not found", nil, infra.KindNotFound)
	}
	delete(r.store.codes, id)
	delete(r.store.usages, id)
	for i, oid := range r.store.order {
		if oid == id {
			r.store.order = append(r.store.order[:i], r.store.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeCodeRepo) IncrementUsage(_ context.Context, id uuid.UUID) (*code.Code, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c, ok := r.store.codes[id]
	if !ok || c.UsedCount() >= c.MaxUses() {
		return nil, infra.WrapRepoErr("code exhausted or missing", nil, infra.KindNoRowsAffected)
	}

	usedCount := c.UsedCount() + 1
	status := c.Status()
	if usedCount >= c.MaxUses() {
		status = code.StatusDisabled
	}
	updated := code.Reconstruct(c.ID(), c.Token(), c.GrantCount(), c.Description(), c.MaxUses(), usedCount, status, c.ExpiresAt(), c.CreatedAt())
	r.store.codes[id] = updated
	return updated, nil
}

type fakeUsageRepo struct {
	store *fakeStore
}

func (r *fakeUsageRepo) HasRedeemed(_ context.Context, codeID uuid.UUID, redeemerIdentity string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	_, ok := r.store.usages[codeID][redeemerIdentity]
	return ok, nil
}

func (r *fakeUsageRepo) Record(_ context.Context, codeID uuid.UUID, redeemerIdentity string, _ int32) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.usages[codeID][redeemerIdentity]; ok {
		return infra.WrapRepoErr("identity already recorded for code", errors.New("unique violation"), infra.KindConflict)
	}
	if r.store.usages[codeID] == nil {
		r.store.usages[codeID] = make(map[string]time.Time)
	}
	r.store.usages[codeID][redeemerIdentity] = time.Now()
	return nil
}

func (r *fakeUsageRepo) CountForCode(_ context.Context, codeID uuid.UUID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.store.usages[codeID])), nil
}

func (r *fakeUsageRepo) ListForCode(_ context.Context, codeID uuid.UUID) ([]*readmodel.UsageRM, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var result []*readmodel.UsageRM
	for identity, at := range r.store.usages[codeID] {
		result = append(result, &readmodel.UsageRM{
			ID:               uuid.New(),
			CodeID:           codeID,
			RedeemerIdentity: identity,
			GrantCount:       0,
			RedeemedAt:       at,
		})
	}
	return result, nil
}
