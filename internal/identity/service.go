package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/agrobert/agrobert-backend/internal/users"
	pkgAuth "github.com/agrobert/agrobert-backend/pkg/auth"
	"github.com/agrobert/agrobert-backend/pkg/config"
	"github.com/agrobert/agrobert-backend/pkg/db/models"
	pkgerrors "github.com/agrobert/agrobert-backend/pkg/errors"
	"github.com/agrobert/agrobert-backend/pkg/security"
)

const (
	badCredentialsMessage = "Bad username or password"
	userNotFoundMessage   = "User not found"
	invalidOTPMessage     = "Invalid or expired OTP"
)

// Service defines the behavior needed by the auth controllers.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Register(ctx context.Context, req RegisterRequest) (*MessageResponse, error)
	RequestPasswordReset(ctx context.Context, req ForgotPasswordRequest) (*MessageResponse, error)
	ConfirmPasswordReset(ctx context.Context, req ResetPasswordRequest) (*MessageResponse, error)
}

type service struct {
	users       userRepository
	otp         otpManager
	deliverer   codeDeliverer
	jwtCfg      config.JWTConfig
	passwordCfg config.PasswordConfig
}

type userRepository interface {
	Create(ctx context.Context, dto users.CreateUserDTO) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByIdentifier(ctx context.Context, identifier string) (*models.User, error)
	UpdatePasswordHash(ctx context.Context, username string, passwordHash string) error
}

type otpManager interface {
	Issue(username string) (string, error)
	ValidateAndConsume(username string, code string) bool
}

type codeDeliverer interface {
	DeliverResetCode(ctx context.Context, username string, mobile string, code string) string
}

// ServiceParams bundles the dependencies required to build an identity service.
type ServiceParams struct {
	UserRepo       userRepository
	OTPManager     otpManager
	Deliverer      codeDeliverer
	JWTConfig      config.JWTConfig
	PasswordConfig config.PasswordConfig
}

// NewService constructs the account service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.UserRepo == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	if params.OTPManager == nil {
		return nil, fmt.Errorf("otp manager is required")
	}
	if params.Deliverer == nil {
		return nil, fmt.Errorf("code deliverer is required")
	}
	return &service{
		users:       params.UserRepo,
		otp:         params.OTPManager,
		deliverer:   params.Deliverer,
		jwtCfg:      params.JWTConfig,
		passwordCfg: params.PasswordConfig,
	}, nil
}

// Login verifies the credentials and mints an access token. Unknown username
// and wrong password produce the same answer, so the endpoint does not leak
// which accounts exist.
func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, badCredentialsMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load user")
	}

	ok, err := security.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil || !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, badCredentialsMessage)
	}

	role, valid := pkgAuth.ParseRole(user.Role)
	if !valid {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "stored role is invalid")
	}

	token, err := pkgAuth.MintAccessToken(s.jwtCfg, time.Now().UTC(), pkgAuth.AccessTokenPayload{
		Username: user.Username,
		Role:     role,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint access token")
	}

	return &LoginResponse{AccessToken: token}, nil
}

// Register validates the submission and persists the account.
func (s *service) Register(ctx context.Context, req RegisterRequest) (*MessageResponse, error) {
	mobile := strings.TrimSpace(req.Mobile)
	if err := validateMobile(mobile); err != nil {
		return nil, err
	}

	role := pkgAuth.RoleFarmer
	if strings.TrimSpace(req.Role) != "" {
		parsed, ok := pkgAuth.ParseRole(req.Role)
		if !ok {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "Role must be farmer or analyst")
		}
		role = parsed
	}

	hash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	_, err = s.users.Create(ctx, users.CreateUserDTO{
		Username:     strings.TrimSpace(req.Username),
		PasswordHash: hash,
		Role:         role,
		Email:        strings.TrimSpace(req.Email),
		Mobile:       mobile,
	})
	if err != nil {
		if typed := pkgerrors.As(err); typed != nil {
			return nil, typed
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create user")
	}

	return &MessageResponse{Msg: "User created successfully"}, nil
}

func validateMobile(mobile string) error {
	if !strings.HasPrefix(mobile, "+") || len(mobile) <= 10 {
		return pkgerrors.New(pkgerrors.CodeValidation, "Mobile number must include country code, e.g. +919876543210")
	}
	return nil
}

// RequestPasswordReset issues a fresh OTP for the matched account and hands
// it to the deliverer. Delivery problems do not fail the request.
func (s *service) RequestPasswordReset(ctx context.Context, req ForgotPasswordRequest) (*MessageResponse, error) {
	user, err := s.users.FindByIdentifier(ctx, strings.TrimSpace(req.Identifier))
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, userNotFoundMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup user")
	}

	code, err := s.otp.Issue(user.Username)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "issue otp")
	}

	outcome := s.deliverer.DeliverResetCode(ctx, user.Username, user.Mobile, code)

	return &MessageResponse{Msg: outcome}, nil
}

// ConfirmPasswordReset consumes the OTP and rotates the credential.
func (s *service) ConfirmPasswordReset(ctx context.Context, req ResetPasswordRequest) (*MessageResponse, error) {
	user, err := s.users.FindByIdentifier(ctx, strings.TrimSpace(req.Identifier))
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, userNotFoundMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup user")
	}

	if !s.otp.ValidateAndConsume(user.Username, strings.TrimSpace(req.OTP)) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, invalidOTPMessage)
	}

	hash, err := security.HashPassword(req.NewPassword, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	if err := s.users.UpdatePasswordHash(ctx, user.Username, hash); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update password")
	}

	return &MessageResponse{Msg: "Password updated successfully"}, nil
}
