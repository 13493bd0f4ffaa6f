package users

import (
	"context"
	"errors"

	apperrors "github.com/agrobert/agrobert-backend/pkg/errors"

	"github.com/agrobert/agrobert-backend/pkg/db"
	"github.com/agrobert/agrobert-backend/pkg/db/models"
	"gorm.io/gorm"
)

// ErrNotFound is returned when no user matches the lookup.
var ErrNotFound = errors.New("user not found")

// Repository exposes user-related persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a users repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new user and returns the persisted model. Unique
// collisions are translated into per-field conflict errors so callers can
// report which identifier is already taken.
func (r *Repository) Create(ctx context.Context, dto CreateUserDTO) (*models.User, error) {
	user := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, translateCreateErr(err)
	}
	return user, nil
}

func translateCreateErr(err error) error {
	switch {
	case db.IsUniqueViolation(err, "users.username"):
		return apperrors.New(apperrors.CodeConflict, "Username already exists")
	case db.IsUniqueViolation(err, "users.email"):
		return apperrors.New(apperrors.CodeConflict, "Email already exists")
	case db.IsUniqueViolation(err, "users.mobile"):
		return apperrors.New(apperrors.CodeConflict, "Mobile number already exists")
	case db.IsUniqueViolation(err, ""):
		return apperrors.New(apperrors.CodeConflict, "User already exists")
	default:
		return err
	}
}

// FindByUsername retrieves the user matching the provided username.
func (r *Repository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByIdentifier resolves a user by username, email or mobile number. The
// identifier is matched against all three columns, which lets password reset
// accept whichever handle the caller remembers.
func (r *Repository) FindByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("username = ? OR email = ? OR mobile = ?", identifier, identifier, identifier).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdatePasswordHash overwrites the stored credential for the given username.
func (r *Repository) UpdatePasswordHash(ctx context.Context, username string, passwordHash string) error {
	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("username = ?", username).
		UpdateColumn("password_hash", passwordHash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
