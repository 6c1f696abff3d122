package impl

import (
	"context"
	"strings"
	"sync"
	"time"

	"brandsafe/internal/domain/entity"
	domainerrors "brandsafe/internal/domain/errors"
	"brandsafe/internal/domain/repository"

	"github.com/google/uuid"
)

// memUserRepo is an in-memory UserRepository for exercising the use case
// layer without a database.
type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User // keyed by lower-cased email

	createErr error
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entity.User)}
}

func (r *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.ID == id {
			copied := *user

			return &copied, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[strings.ToLower(email)]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *user

	return &copied, nil
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	if r.createErr != nil {
		return r.createErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(user.Email)
	if _, exists := r.users[key]; exists {
		return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
	}

	now := time.Now()
	user.ID = uuid.New()
	user.CreatedAt = now
	user.UpdatedAt = now

	copied := *user
	r.users[key] = &copied

	return nil
}

// memPlanRepo is an in-memory PlanRepository.
type memPlanRepo struct {
	mu    sync.Mutex
	plans []*entity.Plan

	listErr error
	seedErr error
}

func (r *memPlanRepo) ListAll(_ context.Context) ([]*entity.Plan, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*entity.Plan, len(r.plans))
	copy(out, r.plans)

	return out, nil
}

func (r *memPlanRepo) Seed(_ context.Context, plans []*entity.Plan) error {
	if r.seedErr != nil {
		return r.seedErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.plans) > 0 {
		return nil
	}
	for _, plan := range plans {
		copied := *plan
		copied.ID = uuid.New()
		copied.CreatedAt = time.Now()
		r.plans = append(r.plans, &copied)
	}

	return nil
}

// stubFactory hands out the in-memory repositories.
type stubFactory struct {
	users *memUserRepo
	plans *memPlanRepo
}

func (f *stubFactory) UserRepo() repository.UserRepository { return f.users }
func (f *stubFactory) PlanRepo() repository.PlanRepository { return f.plans }

// stubTxManager runs the callback directly against the stub factory. When
// execErr is set it fails without invoking the callback, mimicking a
// connection-level failure.
type stubTxManager struct {
	factory *stubFactory
	execErr error
}

func (m *stubTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	if m.execErr != nil {
		return m.execErr
	}

	return fn(m.factory)
}
