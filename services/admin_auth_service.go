package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"doener-shop/models"
	"doener-shop/repositories"
	"doener-shop/utils"
)

const maxLoginAttempts = 3

var lockoutDurations = []time.Duration{
	5 * time.Minute,
	15 * time.Minute,
	time.Hour,
	12 * time.Hour,
}

// LockoutDuration returns the lock applied after the given number of
// consecutive failures, or zero while attempts remain.
func LockoutDuration(failedAttempts int) time.Duration {
	if failedAttempts < maxLoginAttempts {
		return 0
	}
	idx := failedAttempts - maxLoginAttempts
	if idx > len(lockoutDurations)-1 {
		idx = len(lockoutDurations) - 1
	}
	return lockoutDurations[idx]
}

// LoginError carries what the login form shows after a refused attempt.
type LoginError struct {
	Err     error
	Failure models.LoginFailure
}

func (e *LoginError) Error() string {
	if e.Failure.LockedMinutes > 0 {
		return fmt.Sprintf("%s: try again in %d minute(s)", e.Err, e.Failure.LockedMinutes)
	}
	return fmt.Sprintf("%s: %d attempt(s) remaining", e.Err, e.Failure.AttemptsRemaining)
}

func (e *LoginError) Unwrap() error {
	return e.Err
}

type AdminAuthService struct {
	repo         repositories.AdminAuthRepository
	passwordHash string
	tokens       *utils.TokenIssuer
	now          func() time.Time
}

func NewAdminAuthService(repo repositories.AdminAuthRepository, passwordHash string, tokens *utils.TokenIssuer) *AdminAuthService {
	return &AdminAuthService{repo: repo, passwordHash: passwordHash, tokens: tokens, now: time.Now}
}

func remainingMinutes(d time.Duration) int {
	return int(math.Ceil(d.Minutes()))
}

func (s *AdminAuthService) Login(ctx context.Context, password string) (models.LoginResponse, error) {
	if s.passwordHash == "" {
		return models.LoginResponse{}, ErrAdminNotConfigured
	}

	state, err := s.repo.Get(ctx)
	if err != nil {
		return models.LoginResponse{}, err
	}

	now := s.now()
	if state.LockedAt(now) {
		return models.LoginResponse{}, &LoginError{
			Err:     ErrAccountLocked,
			Failure: models.LoginFailure{LockedMinutes: remainingMinutes(state.LockedUntil.Sub(now))},
		}
	}

	ok, err := utils.VerifyPassword(s.passwordHash, password)
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("failed to verify admin password: %w", err)
	}

	if ok {
		if err := s.repo.Save(ctx, models.AdminAuthState{LastAttemptAt: &now}); err != nil {
			return models.LoginResponse{}, err
		}
		token, expiresAt, err := s.tokens.GenerateToken("admin", utils.RoleAdmin)
		if err != nil {
			return models.LoginResponse{}, err
		}
		return models.LoginResponse{Token: token, ExpiresAt: expiresAt}, nil
	}

	state.FailedAttempts++
	state.LastAttemptAt = &now
	state.LockedUntil = nil

	lock := LockoutDuration(state.FailedAttempts)
	if lock > 0 {
		until := now.Add(lock)
		state.LockedUntil = &until
	}
	if err := s.repo.Save(ctx, state); err != nil {
		return models.LoginResponse{}, err
	}

	if lock > 0 {
		return models.LoginResponse{}, &LoginError{
			Err:     ErrAccountLocked,
			Failure: models.LoginFailure{LockedMinutes: remainingMinutes(lock)},
		}
	}
	return models.LoginResponse{}, &LoginError{
		Err:     ErrInvalidPassword,
		Failure: models.LoginFailure{AttemptsRemaining: maxLoginAttempts - state.FailedAttempts},
	}
}
