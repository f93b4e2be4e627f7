package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"doener-shop/repositories"
	"doener-shop/utils"
)

func TestLockoutDuration(t *testing.T) {
	cases := map[int]time.Duration{
		1:  0,
		2:  0,
		3:  5 * time.Minute,
		4:  15 * time.Minute,
		5:  time.Hour,
		6:  12 * time.Hour,
		10: 12 * time.Hour,
	}
	for n, want := range cases {
		if got := LockoutDuration(n); got != want {
			t.Errorf("LockoutDuration(%d) = %v, want %v", n, got, want)
		}
	}
}

func loginFailure(t *testing.T, err error, target error) *LoginError {
	t.Helper()
	var le *LoginError
	if !errors.As(err, &le) || !errors.Is(err, target) {
		t.Fatalf("err = %v, want LoginError wrapping %v", err, target)
	}
	return le
}

func TestAdminLoginLockoutEscalates(t *testing.T) {
	hash, err := utils.HashPassword("geheim")
	if err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	repo := repositories.NewMemoryAdminAuthRepository()
	tokens := utils.NewTokenIssuer("secret", time.Hour)
	svc := NewAdminAuthService(repo, hash, tokens)

	now := time.Date(2024, 5, 8, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	_, err = svc.Login(ctx, "falsch")
	if le := loginFailure(t, err, ErrInvalidPassword); le.Failure.AttemptsRemaining != 2 {
		t.Fatalf("remaining = %d", le.Failure.AttemptsRemaining)
	}
	_, err = svc.Login(ctx, "falsch")
	if le := loginFailure(t, err, ErrInvalidPassword); le.Failure.AttemptsRemaining != 1 {
		t.Fatalf("remaining = %d", le.Failure.AttemptsRemaining)
	}
	_, err = svc.Login(ctx, "falsch")
	if le := loginFailure(t, err, ErrAccountLocked); le.Failure.LockedMinutes != 5 {
		t.Fatalf("locked minutes = %d", le.Failure.LockedMinutes)
	}

	now = now.Add(2 * time.Minute)
	_, err = svc.Login(ctx, "geheim")
	if le := loginFailure(t, err, ErrAccountLocked); le.Failure.LockedMinutes != 3 {
		t.Fatalf("correct password during lock: minutes = %d", le.Failure.LockedMinutes)
	}

	now = now.Add(4 * time.Minute)
	_, err = svc.Login(ctx, "falsch")
	if le := loginFailure(t, err, ErrAccountLocked); le.Failure.LockedMinutes != 15 {
		t.Fatalf("second lock minutes = %d", le.Failure.LockedMinutes)
	}

	now = now.Add(16 * time.Minute)
	resp, err := svc.Login(ctx, "geheim")
	if err != nil {
		t.Fatal(err)
	}
	claims, err := tokens.ValidateToken(resp.Token)
	if err != nil || claims.Role != utils.RoleAdmin {
		t.Fatalf("claims = %+v, %v", claims, err)
	}

	state, _ := repo.Get(ctx)
	if state.FailedAttempts != 0 || state.LockedUntil != nil {
		t.Fatalf("state not reset: %+v", state)
	}
}

func TestAdminLoginWithoutConfiguredPassword(t *testing.T) {
	svc := NewAdminAuthService(repositories.NewMemoryAdminAuthRepository(), "", utils.NewTokenIssuer("s", time.Hour))
	if _, err := svc.Login(context.Background(), "x"); !errors.Is(err, ErrAdminNotConfigured) {
		t.Fatalf("err = %v", err)
	}
}
