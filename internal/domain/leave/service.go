package leave

import (
	"context"
)

type LeaveService interface {
	CreateRequest(ctx context.Context, req CreateRequestRequest) (RequestResponse, error)
	GetRequest(ctx context.Context, id string) (RequestResponse, error)
	ListRequests(ctx context.Context, userID string) ([]RequestResponse, error)
	// ApplyTransition moves a request to newStatus and applies the matching
	// balance mutation in a single transaction. A transition to the current
	// status is a no-op; REJECTED -> APPROVED fails with ErrInvalidTransition.
	ApplyTransition(ctx context.Context, requestID string, newStatus RequestStatus, rejectionReason *string, actorID string) (TransitionResponse, error)
	// RecomputeBalance replays the ledger for one user and returns the
	// stored balance next to the recomputed one.
	RecomputeBalance(ctx context.Context, userID string, repair bool) (BalanceAudit, error)
}

// BalanceAudit is the result of replaying a user's leave ledger.
type BalanceAudit struct {
	UserID            string `json:"user_id"`
	StoredBalance     int    `json:"stored_balance"`
	RecomputedBalance int    `json:"recomputed_balance"`
	Repaired          bool   `json:"repaired"`
}
