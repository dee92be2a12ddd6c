package models

// SignupRequest is the body of POST /api/user/signup.
type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest is the body of POST /api/user/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// AuthResponse is returned on successful signup and login.
type AuthResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// ErrorResponse carries a single human-readable failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse carries an informational message.
type MessageResponse struct {
	Message string `json:"message"`
}

// FieldError describes one failed request-field rule.
type FieldError struct {
	Msg  string `json:"msg"`
	Path string `json:"path"`
}

// ValidationErrorsResponse lists every failed request-field rule.
type ValidationErrorsResponse struct {
	Errors []FieldError `json:"errors"`
}
