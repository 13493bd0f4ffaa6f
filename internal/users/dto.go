package users

import (
	"github.com/agrobert/agrobert-backend/pkg/auth"
	"github.com/agrobert/agrobert-backend/pkg/db/models"
)

// UserDTO is the transport shape that omits the stored credential.
type UserDTO struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
}

// CreateUserDTO holds the data required by the repo to persist a new user.
type CreateUserDTO struct {
	Username     string
	PasswordHash string
	Role         auth.Role
	Email        string
	Mobile       string
}

func FromModel(u *models.User) *UserDTO {
	if u == nil {
		return nil
	}

	return &UserDTO{
		Username: u.Username,
		Role:     u.Role,
		Email:    u.Email,
		Mobile:   u.Mobile,
	}
}

func (c CreateUserDTO) ToModel() *models.User {
	return &models.User{
		Username:     c.Username,
		PasswordHash: c.PasswordHash,
		Role:         string(c.Role),
		Email:        c.Email,
		Mobile:       c.Mobile,
	}
}
