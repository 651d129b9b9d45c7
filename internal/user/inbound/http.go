package inbound

import (
	"context"

	"github.com/shandysiswandi/userdir/internal/pkg/router"
	"github.com/shandysiswandi/userdir/internal/user/usecase"
)

type uc interface {
	UserList(ctx context.Context) (*usecase.UserListOutput, error)
	UserDetail(ctx context.Context, in usecase.UserDetailInput) (*usecase.UserDetailOutput, error)
	UserCreate(ctx context.Context, in usecase.UserCreateInput) (*usecase.UserCreateOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// User Directory
	r.GET("/api/v1/users", end.UserList)
	r.GET("/api/v1/users/:username", end.UserDetail)
	r.POST("/api/v1/users", end.UserCreate)
}
