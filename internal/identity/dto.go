package identity

// LoginRequest captures the credentials sent to the login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the signed token produced by a successful login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// RegisterRequest captures a new account submission. Role is optional and
// defaults to farmer.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Mobile   string `json:"mobile" validate:"required"`
	Role     string `json:"role"`
}

// MessageResponse is the flat acknowledgement body the frontend expects.
type MessageResponse struct {
	Msg string `json:"msg"`
}

// ForgotPasswordRequest asks for a reset code. The identifier can be a
// username, email, or mobile number.
type ForgotPasswordRequest struct {
	Identifier string `json:"identifier" validate:"required"`
}

// ResetPasswordRequest submits the OTP together with the replacement
// password. The frontend posts the identifier under the "username" key even
// though it accepts email and mobile too.
type ResetPasswordRequest struct {
	Identifier  string `json:"username" validate:"required"`
	OTP         string `json:"otp" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}
