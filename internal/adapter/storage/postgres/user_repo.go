package postgres

import (
	"context"
	"errors"
	"fmt"

	"wallet-api/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	userColumns = `id, email, password_hash, first_name, last_name, created_at, updated_at`

	uniqueViolation = "23505"
)

// UserRepo implements ports.UserRepository.
type UserRepo struct {
	pool Pool
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(pool Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

func scanUser(row pgx.Row, u *domain.User) error {
	return row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.FirstName,
		&u.LastName, &u.CreatedAt, &u.UpdatedAt,
	)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// Create inserts a user and fills in the generated id and timestamps.
func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (email, password_hash, first_name, last_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query, u.Email, u.PasswordHash, u.FirstName, u.LastName).
		Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert user: %w", domain.ErrEmailTaken)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByEmail fetches a user by email (used for signin).
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *UserRepo) getOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	u := &domain.User{}
	if err := scanUser(r.pool.QueryRow(ctx, query, arg), u); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// Update overwrites the non-nil patch fields and refreshes updated_at.
func (r *UserRepo) Update(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error) {
	query := `UPDATE users SET
			email = COALESCE($1, email),
			first_name = COALESCE($2, first_name),
			last_name = COALESCE($3, last_name),
			updated_at = NOW()
		WHERE id = $4
		RETURNING ` + userColumns

	u := &domain.User{}
	row := r.pool.QueryRow(ctx, query, patch.Email, patch.FirstName, patch.LastName, id)
	if err := scanUser(row, u); err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, nil
		case isUniqueViolation(err):
			return nil, fmt.Errorf("update user: %w", domain.ErrEmailTaken)
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return u, nil
}
