package inbound

import "net/http"

type UserResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type CreateUserResponse struct {
	UserResponse
}

// StatusCode marks a successful create as 201.
func (CreateUserResponse) StatusCode() int {
	return http.StatusCreated
}
