package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pulsehr/attendance-backend-go/internal/domain/punch"
	"github.com/pulsehr/attendance-backend-go/internal/handler/http/response"
)

type PunchHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetPunctuality(w http.ResponseWriter, r *http.Request)
}

type PunchHandlerImpl struct {
	punchService punch.PunchService
}

func NewPunchHandler(punchService punch.PunchService) PunchHandler {
	return &PunchHandlerImpl{punchService: punchService}
}

// Create implements PunchHandler.
func (h *PunchHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq punch.CreatePunchRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreatePunch decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.punchService.CreatePunch(r.Context(), createReq)
	if err != nil {
		slog.Error("CreatePunch service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch recorded", created)
}

// GetByID implements PunchHandler.
func (h *PunchHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	found, err := h.punchService.GetPunch(r.Context(), id)
	if err != nil {
		slog.Error("GetPunch service error", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// Update implements PunchHandler.
func (h *PunchHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq punch.UpdatePunchRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdatePunch decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	updated, err := h.punchService.UpdatePunch(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdatePunch service error", "error", err, "id", updateReq.ID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Punch updated", updated)
}

// Delete implements PunchHandler.
func (h *PunchHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.punchService.DeletePunch(r.Context(), id); err != nil {
		slog.Error("DeletePunch service error", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Punch deleted", nil)
}

// GetPunctuality implements PunchHandler.
func (h *PunchHandlerImpl) GetPunctuality(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	found, err := h.punchService.GetPunch(r.Context(), id)
	if err != nil {
		slog.Error("GetPunctuality service error", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}

	response.Success(w, punch.PunctualityResponse{
		PunchID:               found.ID,
		Date:                  found.Date,
		OnTimeIn:              found.OnTimeIn,
		OnTimeOut:             found.OnTimeOut,
		PunctualityCategory:   found.PunctualityCategory,
		LatenessMinutes:       found.LatenessMinutes,
		EarlyDepartureMinutes: found.EarlyDepartureMinutes,
	})
}

// List implements PunchHandler.
func (h *PunchHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	filter := punch.PunchFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Date:       r.URL.Query().Get("date"),
		Search:     r.URL.Query().Get("search"),
		Page:       page,
		Limit:      limit,
	}

	list, err := h.punchService.ListPunches(r.Context(), filter)
	if err != nil {
		slog.Error("ListPunches service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, list.Punches, response.PageMeta(filter.Page, filter.Limit, list.TotalItems))
}
