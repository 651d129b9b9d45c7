package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/userdir/internal/pkg/goerror"
	"github.com/shandysiswandi/userdir/internal/pkg/i18n"
	"github.com/shandysiswandi/userdir/internal/user/entity"
)

type (
	UserDetailInput struct {
		Username string
	}

	UserDetailOutput struct {
		User entity.User
	}
)

func (s *Usecase) UserDetail(ctx context.Context, in UserDetailInput) (*UserDetailOutput, error) {
	ctx, span := s.startSpan(ctx, "UserDetail")
	defer span.End()

	user, err := s.store.GetUserByUsername(ctx, in.Username)
	if errors.Is(err, goerror.ErrNotFound) {
		// Operator-facing diagnostic from the log namespace; the client gets
		// the localized user.not.found text instead.
		slog.WarnContext(ctx, s.catalog.Log(i18n.MsgUserNotFoundLog, in.Username), "username", in.Username)
		return nil, goerror.NewNotFound(i18n.MsgUserNotFound, in.Username)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by username", "username", in.Username, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &UserDetailOutput{User: *user}, nil
}
