package domain

import "errors"

var (
	MessageSuccessRegister = "user registered successfully"
	MessageSuccessLogin    = "login successful"

	MessageFailedRegister = "registration failed"
	MessageFailedLogin    = "login failed"

	ErrEmailAlreadyRegistered = errors.New("user already exists")
	ErrInvalidCredentials     = errors.New("invalid email or password")
)

type (
	RegisterRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	RegisterResponse struct {
		Message string `json:"message"`
		UserID  uint   `json:"userId"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Message string `json:"message"`
		Token   string `json:"token"`
		UserID  uint   `json:"userId"`
	}
)
