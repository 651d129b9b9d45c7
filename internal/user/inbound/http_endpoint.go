package inbound

import (
	"github.com/samber/lo"
	"github.com/shandysiswandi/userdir/internal/pkg/router"
	"github.com/shandysiswandi/userdir/internal/user/entity"
	"github.com/shandysiswandi/userdir/internal/user/usecase"
)

// HTTPEndpoint exposes HTTP handlers for the user directory.
type HTTPEndpoint struct {
	uc uc
}

// UserList returns every user in the directory as a plain JSON array.
func (h *HTTPEndpoint) UserList(r *router.Request) (any, error) {
	resp, err := h.uc.UserList(r.Context())
	if err != nil {
		return nil, err
	}

	return lo.Map(resp.Users, func(u entity.User, _ int) UserResponse {
		return UserResponse{Username: u.Username, Email: u.Email}
	}), nil
}

// UserDetail returns one user by username, or a 404 problem detail carrying
// the looked-up key in its localized text.
func (h *HTTPEndpoint) UserDetail(r *router.Request) (any, error) {
	resp, err := h.uc.UserDetail(r.Context(), usecase.UserDetailInput{
		Username: r.GetParam("username"),
	})
	if err != nil {
		return nil, err
	}

	return UserResponse{Username: resp.User.Username, Email: resp.User.Email}, nil
}

// UserCreate validates the payload and returns the created user, or a 400
// problem detail aggregating every violation.
func (h *HTTPEndpoint) UserCreate(r *router.Request) (any, error) {
	var req CreateUserRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.UserCreate(r.Context(), usecase.UserCreateInput{
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		return nil, err
	}

	return CreateUserResponse{UserResponse{
		Username: resp.User.Username,
		Email:    resp.User.Email,
	}}, nil
}
