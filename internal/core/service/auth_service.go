package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/inventoryapi/inventory-system/internal/core/crypto"
	"github.com/inventoryapi/inventory-system/internal/core/domain"
	"github.com/inventoryapi/inventory-system/internal/core/ports"
	"github.com/inventoryapi/inventory-system/internal/core/token"
)

// AuthService implements registration, login and the existence probe.
type AuthService struct {
	users  ports.UserRepository
	roles  ports.RoleRepository
	tokens *token.Manager
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, roles ports.RoleRepository, tokens *token.Manager, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, roles: roles, tokens: tokens, logger: logger}
}

// Register creates an account and returns its identity with a fresh token.
// The uniqueness pre-check and the insert are separate storage calls; the
// store's unique constraints backstop the race, surfacing as ErrUserExists
// from the repository.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	taken, err := s.users.Exists(ctx, in.Username, in.Email)
	if err != nil {
		return nil, fmt.Errorf("check user exists: %w", err)
	}
	if taken {
		return nil, domain.ErrUserExists
	}

	role, err := s.roles.GetByID(ctx, in.RoleID)
	if err != nil {
		return nil, fmt.Errorf("resolve role: %w", err)
	}
	if role == nil {
		return nil, domain.ErrInvalidRole
	}

	digest, salt, err := crypto.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: digest,
		PasswordSalt: salt,
		RoleID:       in.RoleID,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	user.Role = role

	signed, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info().Int("user_id", user.ID).Str("username", user.Username).Str("role", role.Name).Msg("user registered")

	return &ports.AuthResult{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		RoleID:   user.RoleID,
		RoleName: role.Name,
		Token:    signed,
	}, nil
}

// Login verifies credentials and issues a token. Unknown username and wrong
// password produce the same error so callers cannot probe which accounts
// exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.AuthResult, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil || !crypto.Verify(password, user.PasswordHash, user.PasswordSalt) {
		return nil, domain.ErrInvalidCredentials
	}
	if user.Role == nil {
		return nil, errors.New("user loaded without role")
	}

	signed, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info().Int("user_id", user.ID).Str("username", user.Username).Msg("user logged in")

	return &ports.AuthResult{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		RoleID:   user.RoleID,
		RoleName: user.Role.Name,
		Token:    signed,
	}, nil
}

// UserExists reports whether username or email is already taken.
func (s *AuthService) UserExists(ctx context.Context, username, email string) (bool, error) {
	return s.users.Exists(ctx, username, email)
}
