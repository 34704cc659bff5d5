package attendance

import (
	"context"
)

type EventRepository interface {
	Create(ctx context.Context, event Event) (Event, error)
	// FindByUser returns one user's events inside the window, ascending by
	// timestamp. The ordering is load-bearing: reconstruction assumes it.
	FindByUser(ctx context.Context, userID string, window Window) ([]Event, error)
	// FindInWindow returns all events inside the window, ordered by user id
	// then timestamp.
	FindInWindow(ctx context.Context, window Window) ([]Event, error)
}
