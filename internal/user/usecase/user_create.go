package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/userdir/internal/pkg/goerror"
	"github.com/shandysiswandi/userdir/internal/pkg/i18n"
	"github.com/shandysiswandi/userdir/internal/pkg/validator"
	"github.com/shandysiswandi/userdir/internal/user/entity"
)

type (
	UserCreateInput struct {
		Username string
		Email    string
	}

	UserCreateOutput struct {
		User entity.User
	}
)

// UserCreateSchema declares the constraints on UserCreateInput. Each rule
// carries its own message catalog id so every failure mode has distinct
// text; the length rules share one id because they describe one bound pair.
func UserCreateSchema() validator.Schema {
	return validator.Schema{
		{Field: "Username", Tag: "required", MessageID: i18n.MsgValidationUsernameNotNull},
		{Field: "Username", Tag: "min", Param: "2", MessageID: i18n.MsgValidationUsernameSize},
		{Field: "Username", Tag: "max", Param: "50", MessageID: i18n.MsgValidationUsernameSize},
		{Field: "Email", Tag: "required", MessageID: i18n.MsgValidationEmailNotNull},
		{Field: "Email", Tag: "email", MessageID: i18n.MsgValidationEmailInvalid},
	}
}

func (s *Usecase) UserCreate(ctx context.Context, in UserCreateInput) (*UserCreateOutput, error) {
	ctx, span := s.startSpan(ctx, "UserCreate")
	defer span.End()

	violations, err := s.userCreate.Validate(in)
	if err != nil {
		slog.ErrorContext(ctx, "failed to run user create validation", "error", err)
		return nil, goerror.NewServer(err)
	}
	if len(violations) > 0 {
		slog.InfoContext(ctx, "user create input rejected", "violations", len(violations))
		return nil, violations
	}

	user, err := s.store.CreateUser(ctx, entity.User{Username: in.Username, Email: in.Email})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create user", "username", in.Username, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &UserCreateOutput{User: user}, nil
}
