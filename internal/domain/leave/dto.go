package leave

import (
	"github.com/HamdullahAltun/personel-takip-sub003/internal/pkg/validator"
)

// ========================================
// LEAVE DTOs
// ========================================

type CreateRequestRequest struct {
	UserID    string `json:"user_id"`
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`   // YYYY-MM-DD, inclusive
	Reason    string `json:"reason"`
}

func (r *CreateRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectRequestRequest struct {
	ID     string `json:"-"`
	Reason string `json:"reason"`
}

func (r *RejectRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "request id is required",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "rejection reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateStatusRequest is the repository-level status write. ExpectedStatus
// guards the update: the write affects zero rows when the stored status no
// longer matches, which surfaces as ErrTransitionConflict.
type UpdateStatusRequest struct {
	ID              string
	Status          RequestStatus
	ExpectedStatus  RequestStatus
	RejectionReason *string
	DecidedBy       *string
}

type RequestResponse struct {
	ID              string  `json:"id"`
	UserID          string  `json:"user_id"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	Days            int     `json:"days"`
	Status          string  `json:"status"`
	Reason          string  `json:"reason"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

type TransitionResponse struct {
	Request        RequestResponse `json:"request"`
	DeltaDays      int             `json:"delta_days"`
	UpdatedBalance int             `json:"updated_balance"`
}
