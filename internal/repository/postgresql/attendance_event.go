package postgresql

import (
	"context"
	"fmt"

	"github.com/HamdullahAltun/personel-takip-sub003/internal/domain/attendance"
	"github.com/HamdullahAltun/personel-takip-sub003/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceEventRepository struct {
	db *database.DB
}

func NewAttendanceEventRepository(db *database.DB) attendance.EventRepository {
	return &attendanceEventRepository{db: db}
}

// Create implements attendance.EventRepository.
func (a *attendanceEventRepository) Create(ctx context.Context, event attendance.Event) (attendance.Event, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_events (user_id, ts, kind, is_late)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		event.UserID,
		event.Timestamp,
		event.Kind,
		event.IsLate,
	).Scan(&event.ID, &event.CreatedAt)

	if err != nil {
		return attendance.Event{}, fmt.Errorf("failed to create attendance event: %w", err)
	}

	return event, nil
}

// FindByUser implements attendance.EventRepository.
func (a *attendanceEventRepository) FindByUser(ctx context.Context, userID string, window attendance.Window) ([]attendance.Event, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, user_id, ts, kind, is_late, created_at
		FROM attendance_events
		WHERE user_id = $1
		  AND ts >= $2
		  AND ts < $3
		ORDER BY ts ASC
	`

	rows, err := q.Query(ctx, query, userID, window.From, window.To)
	if err != nil {
		return nil, fmt.Errorf("failed to find attendance events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// FindInWindow implements attendance.EventRepository.
func (a *attendanceEventRepository) FindInWindow(ctx context.Context, window attendance.Window) ([]attendance.Event, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, user_id, ts, kind, is_late, created_at
		FROM attendance_events
		WHERE ts >= $1
		  AND ts < $2
		ORDER BY user_id ASC, ts ASC
	`

	rows, err := q.Query(ctx, query, window.From, window.To)
	if err != nil {
		return nil, fmt.Errorf("failed to find attendance events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

func scanEvents(rows pgx.Rows) ([]attendance.Event, error) {
	var events []attendance.Event
	for rows.Next() {
		var ev attendance.Event
		if err := rows.Scan(
			&ev.ID,
			&ev.UserID,
			&ev.Timestamp,
			&ev.Kind,
			&ev.IsLate,
			&ev.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance event: %w", err)
		}
		events = append(events, ev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance events: %w", err)
	}

	return events, nil
}
