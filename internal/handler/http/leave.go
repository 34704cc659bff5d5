package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/HamdullahAltun/personel-takip-sub003/internal/domain/leave"
	"github.com/HamdullahAltun/personel-takip-sub003/internal/domain/user"
	"github.com/HamdullahAltun/personel-takip-sub003/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	CreateRequest(w http.ResponseWriter, r *http.Request)
	GetRequest(w http.ResponseWriter, r *http.Request)
	ListRequests(w http.ResponseWriter, r *http.Request)
	ApproveRequest(w http.ResponseWriter, r *http.Request)
	RejectRequest(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// CreateRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateRequestRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	userID, isAdmin, err := caller(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if !isAdmin || req.UserID == "" {
		req.UserID = userID
	}

	resp, err := l.leaveService.CreateRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request created", resp)
}

// GetRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) GetRequest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	resp, err := l.leaveService.GetRequest(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	userID, isAdmin, err := caller(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if !isAdmin && resp.UserID != userID {
		response.HandleError(w, user.ErrAdminPrivilegeRequired)
		return
	}

	response.Success(w, resp)
}

// ListRequests implements LeaveHandler.
func (l *LeaveHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
	userID, isAdmin, err := caller(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	target := userID
	if requested := r.URL.Query().Get("user_id"); requested != "" && requested != userID {
		if !isAdmin {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}
		target = requested
	}

	responses, err := l.leaveService.ListRequests(r.Context(), target)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, responses)
}

// ApproveRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	actorID, _, err := caller(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := l.leaveService.ApplyTransition(r.Context(), id, leave.RequestStatusApproved, nil, actorID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved", resp)
}

// RejectRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) RejectRequest(w http.ResponseWriter, r *http.Request) {
	req := leave.RejectRequestRequest{ID: chi.URLParam(r, "id")}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RejectRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	actorID, _, err := caller(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := l.leaveService.ApplyTransition(r.Context(), req.ID, leave.RequestStatusRejected, &req.Reason, actorID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request rejected", resp)
}
