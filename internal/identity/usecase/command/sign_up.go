package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	catalog "github.com/adielbeauty/storefront/internal/catalog/domain"
	"github.com/adielbeauty/storefront/internal/identity/domain"
	"github.com/adielbeauty/storefront/pkg/auth"
	"github.com/adielbeauty/storefront/pkg/email"
)

// SignUpCommand represents the command to register a customer
type SignUpCommand struct {
	Email    string
	Password string
	Name     string
	Gender   catalog.Gender
}

// AuthResult is returned by a successful sign-up or sign-in
type AuthResult struct {
	Token    string          `json:"token"`
	Identity domain.Identity `json:"identity"`
}

// SignUpHandler handles customer registration
type SignUpHandler struct {
	repo domain.UserRepository
}

// NewSignUpHandler creates a new sign-up handler
func NewSignUpHandler(repo domain.UserRepository) *SignUpHandler {
	return &SignUpHandler{repo: repo}
}

// Handle executes the sign-up command
func (h *SignUpHandler) Handle(ctx context.Context, cmd SignUpCommand) (*AuthResult, error) {
	address := email.Normalize(cmd.Email)
	name := strings.TrimSpace(cmd.Name)

	if address == "" || cmd.Password == "" {
		return nil, domain.ErrMissingFields
	}
	if name == "" {
		return nil, domain.ErrMissingName
	}
	gender := cmd.Gender
	if gender == "" {
		gender = catalog.GenderUnisex
	}
	if !gender.Valid() {
		return nil, domain.ErrMissingGender
	}
	if len(cmd.Password) < domain.MinPasswordLength {
		return nil, domain.ErrWeakPassword
	}
	if !email.Valid(address) {
		return nil, domain.ErrInvalidEmail
	}

	existing, err := h.repo.FindByEmail(ctx, address)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailInUse
	}

	hashedPassword, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:    address,
		Password: hashedPassword,
		Name:     name,
		Gender:   gender,
	}
	if err := h.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := auth.GenerateToken(user.ID, user.Email, user.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResult{Token: token, Identity: user.Identity()}, nil
}
