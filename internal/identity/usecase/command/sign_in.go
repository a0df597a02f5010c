package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/adielbeauty/storefront/internal/identity/domain"
	"github.com/adielbeauty/storefront/pkg/auth"
	"github.com/adielbeauty/storefront/pkg/email"
	"github.com/adielbeauty/storefront/pkg/logger"
)

// SignInCommand represents the command to sign a customer in
type SignInCommand struct {
	Email    string
	Password string
}

// SignInHandler handles sign-in
type SignInHandler struct {
	repo    domain.UserRepository
	limiter domain.AttemptLimiter
}

// NewSignInHandler creates a new sign-in handler
func NewSignInHandler(repo domain.UserRepository, limiter domain.AttemptLimiter) *SignInHandler {
	return &SignInHandler{repo: repo, limiter: limiter}
}

// Handle executes the sign-in command. Failed attempts count towards the
// per-email limit; a successful sign-in clears them.
func (h *SignInHandler) Handle(ctx context.Context, cmd SignInCommand) (*AuthResult, error) {
	address := email.Normalize(cmd.Email)
	if address == "" || cmd.Password == "" {
		return nil, domain.ErrMissingFields
	}
	if !email.Valid(address) {
		return nil, domain.ErrInvalidEmail
	}

	allowed, err := h.limiter.Allow(ctx, address)
	if err != nil {
		logger.Warn(ctx).Err(err).Msg("Sign-in limiter error")
	} else if !allowed {
		return nil, domain.ErrTooManyRequests
	}

	user, err := h.repo.FindByEmail(ctx, address)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			h.recordFailure(ctx, address)
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !auth.CheckPassword(user.Password, cmd.Password) {
		h.recordFailure(ctx, address)
		return nil, domain.ErrInvalidCredential
	}

	if err := h.limiter.Reset(ctx, address); err != nil {
		logger.Warn(ctx).Err(err).Msg("Failed to reset sign-in attempts")
	}

	token, err := auth.GenerateToken(user.ID, user.Email, user.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResult{Token: token, Identity: user.Identity()}, nil
}

func (h *SignInHandler) recordFailure(ctx context.Context, address string) {
	if err := h.limiter.RecordFailure(ctx, address); err != nil {
		logger.Warn(ctx).Err(err).Msg("Failed to record sign-in attempt")
	}
}
