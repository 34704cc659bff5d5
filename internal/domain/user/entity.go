package user

import "time"

type Role string

const (
	RoleAdmin Role = "admin" // Can approve leave and see company dashboards
	RoleStaff Role = "staff" // Regular staff member
)

type User struct {
	ID           string
	Email        string
	FullName     string
	PasswordHash string
	Role         Role

	// AnnualLeaveEntitlement is the yearly allocation; AnnualLeaveDays is
	// the remaining balance. The balance is a materialized view: it must
	// always equal entitlement plus the signed sum of the user's leave
	// ledger entries. It may go negative (borrowed leave is allowed).
	AnnualLeaveEntitlement int
	AnnualLeaveDays        int

	HourlyRate string // decimal string, e.g. "250.00"

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin reports whether the user can approve requests.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
