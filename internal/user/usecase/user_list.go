package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/userdir/internal/pkg/goerror"
	"github.com/shandysiswandi/userdir/internal/user/entity"
)

type UserListOutput struct {
	Users []entity.User
}

func (s *Usecase) UserList(ctx context.Context) (*UserListOutput, error) {
	ctx, span := s.startSpan(ctx, "UserList")
	defer span.End()

	users, err := s.store.ListUsers(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list users", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &UserListOutput{Users: users}, nil
}
