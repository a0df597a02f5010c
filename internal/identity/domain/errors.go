package domain

import "errors"

var (
	ErrMissingFields     = errors.New("email and password are required")
	ErrMissingName       = errors.New("name is required")
	ErrMissingGender     = errors.New("gender is required")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrWeakPassword      = errors.New("password must be at least 6 characters")
	ErrEmailInUse        = errors.New("email already in use")
	ErrInvalidCredential = errors.New("invalid credential")
	ErrUserNotFound      = errors.New("user not found")
	ErrTooManyRequests   = errors.New("too many failed attempts")
)

// MinPasswordLength is the shortest password accepted at sign-up
const MinPasswordLength = 6

// UserMessage maps an identity error to the text shown to the customer
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingFields):
		return "Please fill in all required fields"
	case errors.Is(err, ErrMissingName):
		return "Please enter your full name"
	case errors.Is(err, ErrMissingGender):
		return "Please select your gender"
	case errors.Is(err, ErrInvalidCredential):
		return "Invalid email or password. Please check your credentials and try again."
	case errors.Is(err, ErrUserNotFound):
		return "No account found with this email address. Please sign up first."
	case errors.Is(err, ErrEmailInUse):
		return "An account with this email already exists. Please sign in instead."
	case errors.Is(err, ErrWeakPassword):
		return "Password must be at least 6 characters long"
	case errors.Is(err, ErrInvalidEmail):
		return "Please enter a valid email address."
	case errors.Is(err, ErrTooManyRequests):
		return "Too many failed attempts. Please try again later."
	}
	return "An error occurred. Please try again."
}
