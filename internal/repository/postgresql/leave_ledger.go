package postgresql

import (
	"context"
	"fmt"

	"github.com/HamdullahAltun/personel-takip-sub003/internal/domain/leave"
	"github.com/HamdullahAltun/personel-takip-sub003/internal/pkg/database"
)

type leaveLedgerRepository struct {
	db *database.DB
}

func NewLeaveLedgerRepository(db *database.DB) leave.LedgerRepository {
	return &leaveLedgerRepository{db: db}
}

// Append implements leave.LedgerRepository. The ledger is append-only; there
// is no update or delete path.
func (l *leaveLedgerRepository) Append(ctx context.Context, entry leave.LedgerEntry) (leave.LedgerEntry, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		INSERT INTO leave_ledger (id, request_id, user_id, delta_days)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		entry.ID,
		entry.RequestID,
		entry.UserID,
		entry.DeltaDays,
	).Scan(&entry.CreatedAt)

	if err != nil {
		return leave.LedgerEntry{}, fmt.Errorf("failed to append ledger entry: %w", err)
	}

	return entry, nil
}

// ListByRequest implements leave.LedgerRepository.
func (l *leaveLedgerRepository) ListByRequest(ctx context.Context, requestID string) ([]leave.LedgerEntry, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT id, request_id, user_id, delta_days, created_at
		FROM leave_ledger
		WHERE request_id = $1
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []leave.LedgerEntry
	for rows.Next() {
		var e leave.LedgerEntry
		if err := rows.Scan(&e.ID, &e.RequestID, &e.UserID, &e.DeltaDays, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ledger entries: %w", err)
	}

	return entries, nil
}

// SumDeltas implements leave.LedgerRepository.
func (l *leaveLedgerRepository) SumDeltas(ctx context.Context, userID string) (int, error) {
	q := GetQuerier(ctx, l.db)

	query := `SELECT COALESCE(SUM(delta_days), 0) FROM leave_ledger WHERE user_id = $1`

	var sum int
	if err := q.QueryRow(ctx, query, userID).Scan(&sum); err != nil {
		return 0, fmt.Errorf("failed to sum ledger deltas: %w", err)
	}

	return sum, nil
}
