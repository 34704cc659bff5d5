package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/HamdullahAltun/personel-takip-sub003/internal/domain/leave"
	"github.com/HamdullahAltun/personel-takip-sub003/internal/domain/user"
	"github.com/HamdullahAltun/personel-takip-sub003/internal/pkg/database"
	"github.com/HamdullahAltun/personel-takip-sub003/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type LeaveServiceImpl struct {
	db *database.DB
	leave.RequestRepository
	leave.LedgerRepository
	userRepo user.UserRepository
}

func NewLeaveService(
	db *database.DB,
	requestRepo leave.RequestRepository,
	ledgerRepo leave.LedgerRepository,
	userRepo user.UserRepository,
) leave.LeaveService {
	return &LeaveServiceImpl{
		db:                db,
		RequestRepository: requestRepo,
		LedgerRepository:  ledgerRepo,
		userRepo:          userRepo,
	}
}

// CreateRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) CreateRequest(ctx context.Context, req leave.CreateRequestRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	if _, err := l.userRepo.GetByID(ctx, req.UserID); err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	created, err := l.RequestRepository.Create(ctx, leave.Request{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		StartDate: startDate,
		EndDate:   endDate,
		Status:    leave.RequestStatusPending,
		Reason:    req.Reason,
	})
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return mapRequestToResponse(created), nil
}

// GetRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) GetRequest(ctx context.Context, id string) (leave.RequestResponse, error) {
	request, err := l.RequestRepository.GetByID(ctx, id)
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return mapRequestToResponse(request), nil
}

// ListRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) ListRequests(ctx context.Context, userID string) ([]leave.RequestResponse, error) {
	requests, err := l.RequestRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.RequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, mapRequestToResponse(r))
	}
	return responses, nil
}

// ApplyTransition implements leave.LeaveService.
//
// The request row is locked, the status written with a compare-and-set on
// the status read under the lock, and the balance delta appended to the
// ledger and applied to the user, all in one transaction. Either every
// effect lands or none does.
func (l *LeaveServiceImpl) ApplyTransition(ctx context.Context, requestID string, newStatus leave.RequestStatus, rejectionReason *string, actorID string) (leave.TransitionResponse, error) {
	if !newStatus.Valid() {
		return leave.TransitionResponse{}, fmt.Errorf("%w: unknown status %q", leave.ErrInvalidTransition, newStatus)
	}

	var result leave.TransitionResult
	err := postgresql.WithTransaction(ctx, l.db, func(tx pgx.Tx) error {
		txCtx := database.WithTx(ctx, tx)

		request, err := l.RequestRepository.GetByIDForUpdate(txCtx, requestID)
		if err != nil {
			return fmt.Errorf("failed to get leave request: %w", err)
		}

		// Re-applying the current status is a no-op: no ledger entry, no
		// balance change.
		if request.Status == newStatus {
			u, err := l.userRepo.GetByID(txCtx, request.UserID)
			if err != nil {
				return fmt.Errorf("failed to get user: %w", err)
			}
			result = leave.TransitionResult{Request: request, UpdatedBalance: u.AnnualLeaveDays}
			return nil
		}

		delta, err := transitionDelta(request, newStatus)
		if err != nil {
			return err
		}

		update := leave.UpdateStatusRequest{
			ID:             request.ID,
			Status:         newStatus,
			ExpectedStatus: request.Status,
			DecidedBy:      &actorID,
		}
		if newStatus == leave.RequestStatusRejected {
			update.RejectionReason = rejectionReason
		}
		if err := l.RequestRepository.UpdateStatus(txCtx, update); err != nil {
			return fmt.Errorf("failed to update leave request status: %w", err)
		}

		balance := 0
		if delta != 0 {
			if _, err := l.LedgerRepository.Append(txCtx, leave.LedgerEntry{
				ID:        uuid.NewString(),
				RequestID: request.ID,
				UserID:    request.UserID,
				DeltaDays: delta,
			}); err != nil {
				return fmt.Errorf("failed to append ledger entry: %w", err)
			}
			balance, err = l.userRepo.AdjustLeaveBalance(txCtx, request.UserID, delta)
			if err != nil {
				return fmt.Errorf("failed to adjust leave balance: %w", err)
			}
		} else {
			u, err := l.userRepo.GetByID(txCtx, request.UserID)
			if err != nil {
				return fmt.Errorf("failed to get user: %w", err)
			}
			balance = u.AnnualLeaveDays
		}

		request.Status = newStatus
		request.RejectionReason = update.RejectionReason
		request.DecidedBy = update.DecidedBy
		result = leave.TransitionResult{
			Request:        request,
			DeltaDays:      delta,
			UpdatedBalance: balance,
		}
		return nil
	})
	if err != nil {
		return leave.TransitionResponse{}, err
	}

	return leave.TransitionResponse{
		Request:        mapRequestToResponse(result.Request),
		DeltaDays:      result.DeltaDays,
		UpdatedBalance: result.UpdatedBalance,
	}, nil
}

// transitionDelta returns the signed balance change a transition implies.
// Approving deducts the request's day count, revoking an approval refunds
// it, rejecting a pending request touches no balance. A rejected request
// cannot be approved afterwards; it has to be re-submitted.
func transitionDelta(request leave.Request, newStatus leave.RequestStatus) (int, error) {
	switch {
	case request.Status == leave.RequestStatusPending && newStatus == leave.RequestStatusApproved:
		return -request.Days(), nil
	case request.Status == leave.RequestStatusApproved && newStatus == leave.RequestStatusRejected:
		return request.Days(), nil
	case request.Status == leave.RequestStatusPending && newStatus == leave.RequestStatusRejected:
		return 0, nil
	default:
		return 0, fmt.Errorf("%w: %s -> %s", leave.ErrInvalidTransition, request.Status, newStatus)
	}
}

// RecomputeBalance implements leave.LeaveService.
func (l *LeaveServiceImpl) RecomputeBalance(ctx context.Context, userID string, repair bool) (leave.BalanceAudit, error) {
	u, err := l.userRepo.GetByID(ctx, userID)
	if err != nil {
		return leave.BalanceAudit{}, fmt.Errorf("failed to get user: %w", err)
	}

	sum, err := l.LedgerRepository.SumDeltas(ctx, userID)
	if err != nil {
		return leave.BalanceAudit{}, fmt.Errorf("failed to sum ledger deltas: %w", err)
	}

	audit := leave.BalanceAudit{
		UserID:            userID,
		StoredBalance:     u.AnnualLeaveDays,
		RecomputedBalance: u.AnnualLeaveEntitlement + sum,
	}

	if repair && audit.StoredBalance != audit.RecomputedBalance {
		if err := l.userRepo.SetLeaveBalance(ctx, userID, audit.RecomputedBalance); err != nil {
			return leave.BalanceAudit{}, fmt.Errorf("failed to set leave balance: %w", err)
		}
		audit.Repaired = true
	}

	return audit, nil
}

func mapRequestToResponse(r leave.Request) leave.RequestResponse {
	resp := leave.RequestResponse{
		ID:              r.ID,
		UserID:          r.UserID,
		StartDate:       r.StartDate.Format("2006-01-02"),
		EndDate:         r.EndDate.Format("2006-01-02"),
		Days:            r.Days(),
		Status:          string(r.Status),
		Reason:          r.Reason,
		RejectionReason: r.RejectionReason,
	}
	if !r.CreatedAt.IsZero() {
		resp.CreatedAt = r.CreatedAt.Format(time.RFC3339)
	}
	return resp
}
