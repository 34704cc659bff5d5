package leave

import (
	"context"
)

type RequestRepository interface {
	Create(ctx context.Context, request Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	// GetByIDForUpdate locks the request row for the duration of the
	// surrounding transaction. Transitions must read through this so that
	// two admins deciding the same request serialize.
	GetByIDForUpdate(ctx context.Context, id string) (Request, error)
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) error
	ListByUser(ctx context.Context, userID string) ([]Request, error)
	ListByStatus(ctx context.Context, status RequestStatus) ([]Request, error)
}

type LedgerRepository interface {
	Append(ctx context.Context, entry LedgerEntry) (LedgerEntry, error)
	ListByRequest(ctx context.Context, requestID string) ([]LedgerEntry, error)
	// SumDeltas returns the net signed day total of all entries for a user.
	SumDeltas(ctx context.Context, userID string) (int, error)
}
