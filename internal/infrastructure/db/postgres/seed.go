package postgres

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/inventoryapi/inventory-system/internal/core/crypto"
	"github.com/inventoryapi/inventory-system/internal/core/domain"
)

// Bootstrap seeds the role vocabulary, demo accounts and starter categories
// through the repositories' normal create contract. It runs once at process
// start and is a no-op when roles already exist.
func Bootstrap(ctx context.Context, db *gorm.DB, log zerolog.Logger) error {
	roles := NewRoleRepository(db)
	users := NewUserRepository(db)
	categories := NewCategoryRepository(db)

	existing, err := roles.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("bootstrap: read roles: %w", err)
	}
	if len(existing) > 0 {
		log.Debug().Int("roles", len(existing)).Msg("bootstrap skipped, data present")
		return nil
	}

	for _, role := range []domain.Role{
		{ID: "1", Name: domain.RoleAdministrator},
		{ID: "2", Name: domain.RoleOperator},
		{ID: "3", Name: domain.RoleViewer},
	} {
		if err := roles.Create(ctx, &role); err != nil {
			return fmt.Errorf("bootstrap: seed role %s: %w", role.Name, err)
		}
	}

	seedAccounts := []struct {
		username string
		email    string
		password string
		roleID   string
	}{
		{"admin", "admin@example.com", "admin123", "1"},
		{"operator", "operator@example.com", "operator123", "2"},
		{"viewer", "viewer@example.com", "viewer123", "3"},
	}
	for _, acc := range seedAccounts {
		digest, salt, err := crypto.Hash(acc.password)
		if err != nil {
			return fmt.Errorf("bootstrap: hash password for %s: %w", acc.username, err)
		}
		user := &domain.User{
			Username:     acc.username,
			Email:        acc.email,
			PasswordHash: digest,
			PasswordSalt: salt,
			RoleID:       acc.roleID,
		}
		if err := users.Create(ctx, user); err != nil {
			return fmt.Errorf("bootstrap: seed user %s: %w", acc.username, err)
		}
	}

	for _, name := range []string{"Electronics", "Clothing", "Home", "Sports", "Books"} {
		if err := categories.Create(ctx, &domain.Category{Name: name}); err != nil {
			return fmt.Errorf("bootstrap: seed category %s: %w", name, err)
		}
	}

	log.Info().Msg("bootstrap data seeded")
	return nil
}
