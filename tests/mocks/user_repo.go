package mocks

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/kkuglocal/campus-backend/internal/domain/event"
	"github.com/kkuglocal/campus-backend/internal/domain/user"
	"github.com/kkuglocal/campus-backend/pkg/errorx"
)

type UserRepo struct {
	*EventRepo
	dbbyEmail map[string]*user.User
	dbbyID    map[user.ID]*user.User
	mu        sync.Mutex
}

func NewUserRepo() *UserRepo {
	return &UserRepo{
		EventRepo: NewEventRepo(),
		dbbyEmail: make(map[string]*user.User),
		dbbyID:    make(map[user.ID]*user.User),
	}
}

func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u, exists := r.dbbyEmail[email]; exists {
		return u, nil
	}
	return nil, errorx.NewNotFound()
}

func (r *UserRepo) SaveUser(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u == nil {
		return errors.New("user cannot be nil")
	}

	if _, exists := r.dbbyEmail[u.Email()]; exists {
		return errorx.NewDuplicateEntry()
	}

	if _, exists := r.dbbyID[u.ID()]; exists {
		return errorx.NewDuplicateEntry()
	}

	r.dbbyEmail[u.Email()] = u
	r.dbbyID[u.ID()] = u

	r.appendEvents(u.GetUncommittedEvents()...)

	return nil
}

func (r *UserRepo) UpdateUserByEmail(
	ctx context.Context,
	email string,
	fn func(context.Context, *user.User) error,
) error {
	if fn == nil {
		return errors.New("update function cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	u, exists := r.dbbyEmail[email]
	if !exists {
		return errorx.NewNotFound()
	}

	fnerr := fn(ctx, u)
	if fnerr != nil && !errorx.IsPersistable(fnerr) {
		return fmt.Errorf("failed to apply update function: %w", fnerr)
	}

	r.dbbyEmail[email] = u
	r.dbbyID[u.ID()] = u

	r.appendEvents(u.GetUncommittedEvents()...)

	if fnerr != nil && errorx.IsPersistable(fnerr) {
		return fmt.Errorf("failed to apply update function: %w", fnerr)
	}
	return nil
}

func (r *UserRepo) SeedUser(t *testing.T, u *user.User) {
	t.Helper()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.dbbyEmail[u.Email()]; exists {
		t.Fatalf("user with email %s already exists", u.Email())
	}

	if _, exists := r.dbbyID[u.ID()]; exists {
		t.Fatalf("user with ID %s already exists", u.ID())
	}

	r.dbbyEmail[u.Email()] = u
	r.dbbyID[u.ID()] = u

	r.appendEvents(u.GetUncommittedEvents()...)
}

func (r *UserRepo) AssertUserExistsByEmail(t *testing.T, email string) *user.UserAssertions {
	t.Helper()

	r.mu.Lock()
	defer r.mu.Unlock()

	u, exists := r.dbbyEmail[email]
	if !exists {
		t.Errorf("expected user with email %s to exist, but it does not", email)
		return nil
	}

	return user.NewUserAssertions(u)
}

func (r *UserRepo) AssertUserNotExistsByEmail(t *testing.T, email string) *UserRepo {
	t.Helper()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.dbbyEmail[email]; exists {
		t.Errorf("expected user with email %s to not exist, but it does", email)
		return r
	}

	return r
}

func (r *UserRepo) AssertEventNotExists(t *testing.T, e event.Event) *UserRepo {
	r.EventRepo.AssertEventNotExists(t, e)
	return r
}

func (r *UserRepo) AssertEventCount(t *testing.T, count int) *UserRepo {
	r.EventRepo.AssertEventCount(t, count)
	return r
}
