package user

import (
	"context"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	Create(ctx context.Context, newUser User) (User, error)
	List(ctx context.Context) ([]User, error)
	// AdjustLeaveBalance applies a signed delta to annual_leave_days and
	// returns the updated balance. No floor is enforced.
	AdjustLeaveBalance(ctx context.Context, userID string, delta int) (int, error)
	SetLeaveBalance(ctx context.Context, userID string, balance int) error
}
