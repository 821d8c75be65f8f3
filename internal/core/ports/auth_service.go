package ports

import "context"

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	RoleID   string
}

// AuthResult is the identity + token shape returned by both register and
// login.
type AuthResult struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	RoleID   string `json:"role_id"`
	RoleName string `json:"role_name"`
	Token    string `json:"token"`
}

// AuthService drives the account lifecycle: Anonymous -> Registered ->
// Authenticated(token).
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, username, password string) (*AuthResult, error)
	// UserExists is the existence probe register's conflict check uses.
	UserExists(ctx context.Context, username, email string) (bool, error)
}
