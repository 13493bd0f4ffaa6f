package identity

import (
	"context"
	"fmt"

	"github.com/agrobert/agrobert-backend/internal/users"
	pkgAuth "github.com/agrobert/agrobert-backend/pkg/auth"
	"github.com/agrobert/agrobert-backend/pkg/config"
	pkgerrors "github.com/agrobert/agrobert-backend/pkg/errors"
	"github.com/agrobert/agrobert-backend/pkg/logger"
	"github.com/agrobert/agrobert-backend/pkg/security"
)

type demoUser struct {
	username string
	password string
	role     pkgAuth.Role
	email    string
	mobile   string
}

var demoUsers = []demoUser{
	{"farmer", "farmer123", pkgAuth.RoleFarmer, "farmer@example.com", "+919876543210"},
	{"analyst", "analyst123", pkgAuth.RoleAnalyst, "analyst@example.com", "+919876543211"},
}

// SeedDemoUsers inserts the demo accounts used by the frontend walkthrough.
// It is idempotent: accounts that already exist are left untouched. Intended
// for dev environments only.
func SeedDemoUsers(ctx context.Context, repo *users.Repository, passwordCfg config.PasswordConfig, logg *logger.Logger) error {
	for _, du := range demoUsers {
		hash, err := security.HashPassword(du.password, passwordCfg)
		if err != nil {
			return fmt.Errorf("hash seed password for %s: %w", du.username, err)
		}

		_, err = repo.Create(ctx, users.CreateUserDTO{
			Username:     du.username,
			PasswordHash: hash,
			Role:         du.role,
			Email:        du.email,
			Mobile:       du.mobile,
		})
		if err != nil {
			if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeConflict {
				continue
			}
			return fmt.Errorf("seed user %s: %w", du.username, err)
		}

		logg.Info(logg.WithUsername(ctx, du.username), "seeded demo user")
	}
	return nil
}
