// Package memstore is the in-memory record collection backing the user
// directory. It is demo scaffolding: the collection is rebuilt from the seed
// set on every call, so nothing persists across requests and no locking is
// needed.
package memstore

import (
	"context"

	"github.com/samber/lo"
	"github.com/shandysiswandi/userdir/internal/pkg/goerror"
	"github.com/shandysiswandi/userdir/internal/pkg/instrument"
	"github.com/shandysiswandi/userdir/internal/user/entity"
	"go.opentelemetry.io/otel/trace"
)

// Store serves user records from a per-call rebuilt collection.
type Store struct {
	ins instrument.Instrumentation
}

// NewStore returns a Store.
func NewStore(ins instrument.Instrumentation) *Store {
	return &Store{ins: ins}
}

func (s *Store) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("user.memstore").Start(ctx, name)
}

// seedUsers builds a fresh collection. Every caller gets its own slice.
func seedUsers() []entity.User {
	return []entity.User{
		{Username: "john-doe", Email: "john@test.com"},
		{Username: "jane-doe", Email: "jane@test.com"},
	}
}

// ListUsers returns the full collection.
func (s *Store) ListUsers(ctx context.Context) ([]entity.User, error) {
	_, span := s.startSpan(ctx, "ListUsers")
	defer span.End()

	return seedUsers(), nil
}

// GetUserByUsername scans the collection for username and returns
// goerror.ErrNotFound on a miss.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	_, span := s.startSpan(ctx, "GetUserByUsername")
	defer span.End()

	user, found := lo.Find(seedUsers(), func(u entity.User) bool {
		return u.Username == username
	})
	if !found {
		return nil, goerror.ErrNotFound
	}

	return &user, nil
}

// CreateUser appends user to the current collection build and returns the
// stored record. The collection lives only for this call.
func (s *Store) CreateUser(ctx context.Context, user entity.User) (entity.User, error) {
	_, span := s.startSpan(ctx, "CreateUser")
	defer span.End()

	users := append(seedUsers(), user)

	return users[len(users)-1], nil
}
