package postgresql

import (
	"context"
	"fmt"

	"github.com/HamdullahAltun/personel-takip-sub003/internal/domain/user"
	"github.com/HamdullahAltun/personel-takip-sub003/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, email, full_name, password_hash, role,
	   annual_leave_entitlement, annual_leave_days, hourly_rate, created_at, updated_at`

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepository{db: db}
}

// GetByID implements user.UserRepository.
func (u *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return u.getOne(ctx, query, id)
}

// GetByEmail implements user.UserRepository.
func (u *userRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return u.getOne(ctx, query, email)
}

func (u *userRepository) getOne(ctx context.Context, query string, arg interface{}) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	found, err := scanUser(q.QueryRow(ctx, query, arg))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return found, nil
}

// Create implements user.UserRepository.
func (u *userRepository) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		INSERT INTO users (id, email, full_name, password_hash, role,
			annual_leave_entitlement, annual_leave_days, hourly_rate)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newUser.ID,
		newUser.Email,
		newUser.FullName,
		newUser.PasswordHash,
		newUser.Role,
		newUser.AnnualLeaveEntitlement,
		newUser.AnnualLeaveDays,
		newUser.HourlyRate,
	).Scan(&newUser.CreatedAt, &newUser.UpdatedAt)

	if err != nil {
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return newUser, nil
}

// List implements user.UserRepository.
func (u *userRepository) List(ctx context.Context) ([]user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `SELECT ` + userColumns + ` FROM users ORDER BY full_name ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		found, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, found)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}

	return users, nil
}

// AdjustLeaveBalance implements user.UserRepository. The balance may go
// negative; borrowing against next year is allowed.
func (u *userRepository) AdjustLeaveBalance(ctx context.Context, userID string, delta int) (int, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		UPDATE users
		SET annual_leave_days = annual_leave_days + $1,
		    updated_at = NOW()
		WHERE id = $2
		RETURNING annual_leave_days
	`

	var balance int
	err := q.QueryRow(ctx, query, delta, userID).Scan(&balance)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, user.ErrUserNotFound
		}
		return 0, fmt.Errorf("failed to adjust leave balance: %w", err)
	}

	return balance, nil
}

// SetLeaveBalance implements user.UserRepository.
func (u *userRepository) SetLeaveBalance(ctx context.Context, userID string, balance int) error {
	q := GetQuerier(ctx, u.db)

	query := `
		UPDATE users
		SET annual_leave_days = $1,
		    updated_at = NOW()
		WHERE id = $2
	`

	tag, err := q.Exec(ctx, query, balance, userID)
	if err != nil {
		return fmt.Errorf("failed to set leave balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

func scanUser(row pgx.Row) (user.User, error) {
	var found user.User
	err := row.Scan(
		&found.ID,
		&found.Email,
		&found.FullName,
		&found.PasswordHash,
		&found.Role,
		&found.AnnualLeaveEntitlement,
		&found.AnnualLeaveDays,
		&found.HourlyRate,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	return found, err
}
