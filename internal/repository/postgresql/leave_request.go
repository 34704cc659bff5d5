package postgresql

import (
	"context"
	"fmt"

	"github.com/HamdullahAltun/personel-takip-sub003/internal/domain/leave"
	"github.com/HamdullahAltun/personel-takip-sub003/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const leaveRequestColumns = `id, user_id, start_date, end_date, status, reason,
	   rejection_reason, decided_by, decided_at, created_at, updated_at`

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.RequestRepository {
	return &leaveRequestRepository{db: db}
}

// Create implements leave.RequestRepository.
func (l *leaveRequestRepository) Create(ctx context.Context, request leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		INSERT INTO leave_requests (id, user_id, start_date, end_date, status, reason)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.ID,
		request.UserID,
		request.StartDate,
		request.EndDate,
		request.Status,
		request.Reason,
	).Scan(&request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return request, nil
}

// GetByID implements leave.RequestRepository.
func (l *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.Request, error) {
	query := `SELECT ` + leaveRequestColumns + ` FROM leave_requests WHERE id = $1`
	return l.getOne(ctx, query, id)
}

// GetByIDForUpdate implements leave.RequestRepository. Must run inside a
// transaction; the row lock is released on commit or rollback.
func (l *leaveRequestRepository) GetByIDForUpdate(ctx context.Context, id string) (leave.Request, error) {
	query := `SELECT ` + leaveRequestColumns + ` FROM leave_requests WHERE id = $1 FOR UPDATE`
	return l.getOne(ctx, query, id)
}

func (l *leaveRequestRepository) getOne(ctx context.Context, query string, id string) (leave.Request, error) {
	q := GetQuerier(ctx, l.db)

	request, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Request{}, leave.ErrRequestNotFound
		}
		return leave.Request{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return request, nil
}

// UpdateStatus implements leave.RequestRepository. The status predicate is a
// compare-and-set: when the stored status no longer matches ExpectedStatus
// the update touches zero rows and ErrTransitionConflict is returned.
func (l *leaveRequestRepository) UpdateStatus(ctx context.Context, req leave.UpdateStatusRequest) error {
	q := GetQuerier(ctx, l.db)

	query := `
		UPDATE leave_requests
		SET status = $1,
		    rejection_reason = $2,
		    decided_by = $3,
		    decided_at = NOW(),
		    updated_at = NOW()
		WHERE id = $4
		  AND status = $5
	`

	tag, err := q.Exec(ctx, query, req.Status, req.RejectionReason, req.DecidedBy, req.ID, req.ExpectedStatus)
	if err != nil {
		return fmt.Errorf("failed to update leave request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrTransitionConflict
	}

	return nil
}

// ListByUser implements leave.RequestRepository.
func (l *leaveRequestRepository) ListByUser(ctx context.Context, userID string) ([]leave.Request, error) {
	query := `SELECT ` + leaveRequestColumns + `
		FROM leave_requests WHERE user_id = $1 ORDER BY created_at DESC`
	return l.list(ctx, query, userID)
}

// ListByStatus implements leave.RequestRepository.
func (l *leaveRequestRepository) ListByStatus(ctx context.Context, status leave.RequestStatus) ([]leave.Request, error) {
	query := `SELECT ` + leaveRequestColumns + `
		FROM leave_requests WHERE status = $1 ORDER BY created_at ASC`
	return l.list(ctx, query, status)
}

func (l *leaveRequestRepository) list(ctx context.Context, query string, arg interface{}) ([]leave.Request, error) {
	q := GetQuerier(ctx, l.db)

	rows, err := q.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		request, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, request)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leave requests: %w", err)
	}

	return requests, nil
}

func scanLeaveRequest(row pgx.Row) (leave.Request, error) {
	var r leave.Request
	err := row.Scan(
		&r.ID,
		&r.UserID,
		&r.StartDate,
		&r.EndDate,
		&r.Status,
		&r.Reason,
		&r.RejectionReason,
		&r.DecidedBy,
		&r.DecidedAt,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	return r, err
}
