package repositories

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"doener-shop/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// adminAuthRowID is the single row holding the shared admin login state.
const adminAuthRowID = 1

type AdminAuthRepository interface {
	Get(ctx context.Context) (models.AdminAuthState, error)
	Save(ctx context.Context, state models.AdminAuthState) error
}

type PostgresAdminAuthRepository struct {
	db *pgxpool.Pool
}

func NewAdminAuthRepository(db *pgxpool.Pool) *PostgresAdminAuthRepository {
	return &PostgresAdminAuthRepository{db: db}
}

func (r *PostgresAdminAuthRepository) Get(ctx context.Context) (models.AdminAuthState, error) {
	query := `SELECT failed_attempts, locked_until, last_attempt_at FROM admin_auth WHERE id = $1`

	var state models.AdminAuthState
	err := r.db.QueryRow(ctx, query, adminAuthRowID).Scan(
		&state.FailedAttempts,
		&state.LockedUntil,
		&state.LastAttemptAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.AdminAuthState{}, nil
	}
	if err != nil {
		return state, fmt.Errorf("failed to load admin auth state: %w", err)
	}
	return state, nil
}

func (r *PostgresAdminAuthRepository) Save(ctx context.Context, state models.AdminAuthState) error {
	query := `
		INSERT INTO admin_auth (id, failed_attempts, locked_until, last_attempt_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			failed_attempts = EXCLUDED.failed_attempts,
			locked_until = EXCLUDED.locked_until,
			last_attempt_at = EXCLUDED.last_attempt_at,
			updated_at = EXCLUDED.updated_at
	`
	_, err := r.db.Exec(ctx, query,
		adminAuthRowID, state.FailedAttempts, state.LockedUntil, state.LastAttemptAt, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to save admin auth state: %w", err)
	}
	return nil
}

type MemoryAdminAuthRepository struct {
	mu    sync.Mutex
	state models.AdminAuthState
}

func NewMemoryAdminAuthRepository() *MemoryAdminAuthRepository {
	return &MemoryAdminAuthRepository{}
}

func (r *MemoryAdminAuthRepository) Get(ctx context.Context) (models.AdminAuthState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state, nil
}

func (r *MemoryAdminAuthRepository) Save(ctx context.Context, state models.AdminAuthState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = state
	return nil
}
