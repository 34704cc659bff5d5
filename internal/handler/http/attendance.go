package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/HamdullahAltun/personel-takip-sub003/internal/domain/attendance"
	"github.com/HamdullahAltun/personel-takip-sub003/internal/domain/user"
	"github.com/HamdullahAltun/personel-takip-sub003/internal/handler/http/response"
)

type AttendanceHandler interface {
	RecordEvent(w http.ResponseWriter, r *http.Request)
	GetSummary(w http.ResponseWriter, r *http.Request)
	GetCompanySummary(w http.ResponseWriter, r *http.Request)
	GetActiveUsers(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// RecordEvent implements AttendanceHandler. The lateness flag arrives
// precomputed; schedule evaluation happens at the edge that captured the
// punch.
func (a *AttendanceHandlerImpl) RecordEvent(w http.ResponseWriter, r *http.Request) {
	var req attendance.RecordEventRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RecordEvent decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	userID, isAdmin, err := caller(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	// Staff can only punch for themselves.
	if !isAdmin || req.UserID == "" {
		req.UserID = userID
	}

	resp, err := a.attendanceService.RecordEvent(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance event recorded", resp)
}

// GetSummary implements AttendanceHandler.
func (a *AttendanceHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	userID, isAdmin, err := caller(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter := summaryFilterFromQuery(r)
	target := userID
	if requested := r.URL.Query().Get("user_id"); requested != "" && requested != userID {
		if !isAdmin {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}
		target = requested
	}

	resp, err := a.attendanceService.GetUserSummary(r.Context(), target, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// GetCompanySummary implements AttendanceHandler.
func (a *AttendanceHandlerImpl) GetCompanySummary(w http.ResponseWriter, r *http.Request) {
	resp, err := a.attendanceService.GetCompanySummary(r.Context(), summaryFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// GetActiveUsers implements AttendanceHandler.
func (a *AttendanceHandlerImpl) GetActiveUsers(w http.ResponseWriter, r *http.Request) {
	active, err := a.attendanceService.GetActiveUserIDs(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"active_user_ids": active,
		"count":           len(active),
	})
}

func summaryFilterFromQuery(r *http.Request) attendance.SummaryFilter {
	q := r.URL.Query()
	return attendance.SummaryFilter{
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
	}
}
