package attendance

import (
	"context"
)

type AttendanceService interface {
	RecordEvent(ctx context.Context, req RecordEventRequest) (EventResponse, error)
	GetUserSummary(ctx context.Context, userID string, filter SummaryFilter) (UserSummaryResponse, error)
	GetCompanySummary(ctx context.Context, filter SummaryFilter) (CompanySummaryResponse, error)
	// GetActiveUserIDs returns the users whose latest session is open and
	// within the plausibility horizon.
	GetActiveUserIDs(ctx context.Context) ([]string, error)
}
