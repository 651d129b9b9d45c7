package usecase

import (
	"context"

	"github.com/shandysiswandi/userdir/internal/pkg/i18n"
	"github.com/shandysiswandi/userdir/internal/pkg/instrument"
	"github.com/shandysiswandi/userdir/internal/pkg/validator"
	"github.com/shandysiswandi/userdir/internal/user/entity"
	"go.opentelemetry.io/otel/trace"
)

type repoStore interface {
	ListUsers(ctx context.Context) ([]entity.User, error)
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
	CreateUser(ctx context.Context, user entity.User) (entity.User, error)
}

// Usecase implements the user directory operations.
type Usecase struct {
	store      repoStore
	catalog    *i18n.Catalog
	userCreate *validator.Executor
	ins        instrument.Instrumentation
}

// Dependency carries the collaborators a Usecase needs.
type Dependency struct {
	Store      repoStore
	Catalog    *i18n.Catalog
	Instrument instrument.Instrumentation
}

// New builds a Usecase, compiling the create-user constraint schema once.
func New(dep Dependency) (*Usecase, error) {
	userCreate, err := validator.NewExecutor(UserCreateInput{}, UserCreateSchema())
	if err != nil {
		return nil, err
	}

	return &Usecase{
		store:      dep.Store,
		catalog:    dep.Catalog,
		userCreate: userCreate,
		ins:        dep.Instrument,
	}, nil
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("user.usecase").Start(ctx, name)
}
