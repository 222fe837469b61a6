package api

import (
	"log/slog"
	"net/http"

	"github.com/proyectozoo/zoo-api/internal/api/shared"
	"github.com/proyectozoo/zoo-api/internal/i18n"
	"github.com/proyectozoo/zoo-api/internal/service"
)

// EventHandler handles /api/eventos requests.
type EventHandler struct {
	base
	events service.EventService
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(events service.EventService, deps HandlerDeps) *EventHandler {
	return &EventHandler{base: newBase(i18n.EntityEvent, deps), events: events}
}

// List handles GET /api/eventos/.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, events)
}

// Get handles GET /api/eventos/{id}.
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	event, err := h.events.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, event)
}

// ListBySection handles GET /api/eventos/seccion/{id}.
func (h *EventHandler) ListBySection(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	events, err := h.events.ListBySection(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, events)
}

// Create handles POST /api/eventos/.
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if !h.decode(w, r, &req) {
		return
	}
	event, err := h.events.Create(r.Context(), req.toDomain())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.log(r).Info("event created", slog.String("event_id", event.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, IDResponse{ID: event.ID})
}

// Update handles PUT /api/eventos/.
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if !h.decode(w, r, &req) || !h.bodyID(w, r, req.ID) {
		return
	}
	if _, err := h.events.Update(r.Context(), req.toDomain()); err != nil {
		h.fail(w, r, err)
		return
	}
	h.message(w, r, i18n.Updated(i18n.EntityEvent))
}

// UpdatePhoto handles POST /api/eventos/imagen/{id} and
// PATCH /api/eventos/modificar/imagen/{id}.
func (h *EventHandler) UpdatePhoto(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	h.uploadPhoto(w, r, h.events, id)
}

// Delete handles DELETE /api/eventos/{id}.
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if _, err := h.events.Delete(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	h.log(r).Info("event deleted", slog.String("event_id", id.String()))
	h.message(w, r, i18n.Deleted(i18n.EntityEvent))
}
