package models

import "time"

type AdminAuthState struct {
	FailedAttempts int        `json:"failed_attempts"`
	LockedUntil    *time.Time `json:"locked_until,omitempty"`
	LastAttemptAt  *time.Time `json:"last_attempt_at,omitempty"`
}

func (s AdminAuthState) LockedAt(now time.Time) bool {
	return s.LockedUntil != nil && now.Before(*s.LockedUntil)
}
