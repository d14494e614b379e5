package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"

	"github.com/pulsehr/attendance-backend-go/internal/domain/leave"
	"github.com/pulsehr/attendance-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Create implements LeaveHandler.
func (h *LeaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq leave.CreateLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateLeaveRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.leaveService.CreateLeaveRequest(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateLeaveRequest service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", created)
}

// GetByID implements LeaveHandler.
func (h *LeaveHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	found, err := h.leaveService.GetLeaveRequest(r.Context(), id)
	if err != nil {
		slog.Error("GetLeaveRequest service error", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// Approve implements LeaveHandler.
func (h *LeaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	decided, err := h.leaveService.ApproveLeaveRequest(r.Context(), h.decisionRequest(r))
	if err != nil {
		slog.Error("ApproveLeaveRequest service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved", decided)
}

// Reject implements LeaveHandler.
func (h *LeaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	decided, err := h.leaveService.RejectLeaveRequest(r.Context(), h.decisionRequest(r))
	if err != nil {
		slog.Error("RejectLeaveRequest service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request rejected", decided)
}

func (h *LeaveHandlerImpl) decisionRequest(r *http.Request) leave.DecideLeaveRequest {
	decideReq := leave.DecideLeaveRequest{ID: chi.URLParam(r, "id")}
	if _, claims, err := jwtauth.FromContext(r.Context()); err == nil {
		if userID, ok := claims["user_id"].(string); ok {
			decideReq.DecidedBy = userID
		}
	}
	return decideReq
}

// Delete implements LeaveHandler.
func (h *LeaveHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.leaveService.DeleteLeaveRequest(r.Context(), id); err != nil {
		slog.Error("DeleteLeaveRequest service error", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request deleted", nil)
}

// List implements LeaveHandler.
func (h *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	filter := leave.LeaveFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Status:     r.URL.Query().Get("status"),
		Type:       r.URL.Query().Get("type"),
		Page:       page,
		Limit:      limit,
	}

	list, err := h.leaveService.ListLeaveRequests(r.Context(), filter)
	if err != nil {
		slog.Error("ListLeaveRequests service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, list.Leaves, response.PageMeta(filter.Page, filter.Limit, list.TotalItems))
}
