package dto

import "github.com/reseldor/content-api/internal/domain"

// CreateUserRequest represents an admin user creation request
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

// Validate checks email, password and role constraints
func (r *CreateUserRequest) Validate() (bool, string) {
	if !emailRegex.MatchString(r.Email) {
		return false, "Invalid email format"
	}
	if len(r.Password) < 6 {
		return false, "Password must be at least 6 characters"
	}
	if r.Role != "" && !domain.Role(r.Role).IsValid() {
		return false, "Role must be USER or ADMIN"
	}
	return true, ""
}

// UpdateUserRequest represents a partial user update. Nil fields are
// left unchanged.
type UpdateUserRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

// Validate checks the fields that are present
func (r *UpdateUserRequest) Validate() (bool, string) {
	if r.Email != nil && !emailRegex.MatchString(*r.Email) {
		return false, "Invalid email format"
	}
	if r.Password != nil && len(*r.Password) < 6 {
		return false, "Password must be at least 6 characters"
	}
	if r.Role != nil && !domain.Role(*r.Role).IsValid() {
		return false, "Role must be USER or ADMIN"
	}
	return true, ""
}

// ListUsersQuery binds the user list query string
type ListUsersQuery struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// Normalize applies pagination defaults
func (q *ListUsersQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}
}
