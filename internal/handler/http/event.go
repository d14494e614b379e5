package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pulsehr/attendance-backend-go/internal/domain/event"
	"github.com/pulsehr/attendance-backend-go/internal/handler/http/response"
)

type EventHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type EventHandlerImpl struct {
	eventService event.EventService
}

func NewEventHandler(eventService event.EventService) EventHandler {
	return &EventHandlerImpl{eventService: eventService}
}

// Create implements EventHandler.
func (h *EventHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq event.CreateEventRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateEvent decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.eventService.CreateEvent(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateEvent service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Event created", created)
}

// GetByID implements EventHandler.
func (h *EventHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	found, err := h.eventService.GetEvent(r.Context(), id)
	if err != nil {
		slog.Error("GetEvent service error", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// Update implements EventHandler.
func (h *EventHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq event.UpdateEventRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateEvent decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	updated, err := h.eventService.UpdateEvent(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdateEvent service error", "error", err, "id", updateReq.ID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Event updated", updated)
}

// Delete implements EventHandler.
func (h *EventHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.eventService.DeleteEvent(r.Context(), id); err != nil {
		slog.Error("DeleteEvent service error", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Event deleted", nil)
}

// List implements EventHandler.
func (h *EventHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.eventService.ListEvents(r.Context())
	if err != nil {
		slog.Error("ListEvents service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, events)
}
