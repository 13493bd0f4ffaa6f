package users

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/agrobert/agrobert-backend/pkg/auth"
	apperrors "github.com/agrobert/agrobert-backend/pkg/errors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	createTable := `CREATE TABLE users (
		username TEXT PRIMARY KEY,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		email TEXT UNIQUE NOT NULL,
		mobile TEXT UNIQUE NOT NULL
	)`
	if err := conn.Exec(createTable).Error; err != nil {
		t.Fatalf("failed to create users table: %v", err)
	}
	return conn
}

func seedUser(t *testing.T, repo *Repository, username, email, mobile string) {
	t.Helper()
	_, err := repo.Create(context.Background(), CreateUserDTO{
		Username:     username,
		PasswordHash: "hash-" + username,
		Role:         auth.RoleFarmer,
		Email:        email,
		Mobile:       mobile,
	})
	if err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
}

func TestCreateAndFindByUsername(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	seedUser(t, repo, "farmer", "farmer@example.com", "+919876543210")

	user, err := repo.FindByUsername(context.Background(), "farmer")
	if err != nil {
		t.Fatalf("find by username: %v", err)
	}
	if user.Email != "farmer@example.com" {
		t.Fatalf("unexpected email %s", user.Email)
	}
	if user.Role != string(auth.RoleFarmer) {
		t.Fatalf("unexpected role %s", user.Role)
	}
}

func TestCreateMapsDuplicateFields(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	seedUser(t, repo, "farmer", "farmer@example.com", "+919876543210")

	cases := []struct {
		name    string
		dto     CreateUserDTO
		message string
	}{
		{
			name: "duplicate username",
			dto: CreateUserDTO{
				Username: "farmer", PasswordHash: "h", Role: auth.RoleFarmer,
				Email: "other@example.com", Mobile: "+919876543299",
			},
			message: "Username already exists",
		},
		{
			name: "duplicate email",
			dto: CreateUserDTO{
				Username: "farmer2", PasswordHash: "h", Role: auth.RoleFarmer,
				Email: "farmer@example.com", Mobile: "+919876543299",
			},
			message: "Email already exists",
		},
		{
			name: "duplicate mobile",
			dto: CreateUserDTO{
				Username: "farmer2", PasswordHash: "h", Role: auth.RoleFarmer,
				Email: "other@example.com", Mobile: "+919876543210",
			},
			message: "Mobile number already exists",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := repo.Create(context.Background(), tc.dto)
			if err == nil {
				t.Fatalf("expected conflict error")
			}
			appErr := apperrors.As(err)
			if appErr == nil {
				t.Fatalf("expected typed error, got %v", err)
			}
			if appErr.Code() != apperrors.CodeConflict {
				t.Fatalf("expected conflict code, got %s", appErr.Code())
			}
			if appErr.Message() != tc.message {
				t.Fatalf("expected message %q, got %q", tc.message, appErr.Message())
			}
		})
	}
}

func TestFindByIdentifierMatchesAllColumns(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	seedUser(t, repo, "farmer", "farmer@example.com", "+919876543210")

	for _, identifier := range []string{"farmer", "farmer@example.com", "+919876543210"} {
		user, err := repo.FindByIdentifier(context.Background(), identifier)
		if err != nil {
			t.Fatalf("find by identifier %q: %v", identifier, err)
		}
		if user.Username != "farmer" {
			t.Fatalf("expected farmer for identifier %q, got %s", identifier, user.Username)
		}
	}

	if _, err := repo.FindByIdentifier(context.Background(), "nobody"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdatePasswordHash(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	seedUser(t, repo, "farmer", "farmer@example.com", "+919876543210")

	if err := repo.UpdatePasswordHash(context.Background(), "farmer", "new-hash"); err != nil {
		t.Fatalf("update password: %v", err)
	}

	user, err := repo.FindByUsername(context.Background(), "farmer")
	if err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if user.PasswordHash != "new-hash" {
		t.Fatalf("expected rotated hash, got %s", user.PasswordHash)
	}

	if err := repo.UpdatePasswordHash(context.Background(), "ghost", "h"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown user, got %v", err)
	}
}
