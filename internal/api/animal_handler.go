package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/proyectozoo/zoo-api/internal/api/shared"
	"github.com/proyectozoo/zoo-api/internal/i18n"
	"github.com/proyectozoo/zoo-api/internal/service"
)

// AnimalHandler handles /api/animales requests.
type AnimalHandler struct {
	base
	animals service.AnimalService
}

// NewAnimalHandler creates a new AnimalHandler.
func NewAnimalHandler(animals service.AnimalService, deps HandlerDeps) *AnimalHandler {
	return &AnimalHandler{base: newBase(i18n.EntityAnimal, deps), animals: animals}
}

// List handles GET /api/animales/.
func (h *AnimalHandler) List(w http.ResponseWriter, r *http.Request) {
	animals, err := h.animals.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, animals)
}

// Get handles GET /api/animales/{id}.
func (h *AnimalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	animal, err := h.animals.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, animal)
}

// GetByName handles GET /api/animales/nombre/{nombre}.
func (h *AnimalHandler) GetByName(w http.ResponseWriter, r *http.Request) {
	animal, err := h.animals.GetByName(r.Context(), chi.URLParam(r, "nombre"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, animal)
}

// ListBySection handles GET /api/animales/seccion/{id}.
func (h *AnimalHandler) ListBySection(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	animals, err := h.animals.ListBySection(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, animals)
}

// PopularWeek handles GET /api/animales/popular/semana.
func (h *AnimalHandler) PopularWeek(w http.ResponseWriter, r *http.Request) {
	h.popular(w, r, service.PopularWeek)
}

// PopularMonth handles GET /api/animales/popular/mes.
func (h *AnimalHandler) PopularMonth(w http.ResponseWriter, r *http.Request) {
	h.popular(w, r, service.PopularMonth)
}

func (h *AnimalHandler) popular(w http.ResponseWriter, r *http.Request, window string) {
	animal, err := h.animals.Popular(r.Context(), window)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, animal)
}

// Create handles POST /api/animales/alta.
func (h *AnimalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req AnimalRequest
	if !h.decode(w, r, &req) {
		return
	}
	animal, err := h.animals.Create(r.Context(), req.toDomain())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.log(r).Info("animal created", slog.String("animal_id", animal.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, IDResponse{ID: animal.ID})
}

// Update handles PUT /api/animales/.
func (h *AnimalHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req AnimalRequest
	if !h.decode(w, r, &req) || !h.bodyID(w, r, req.ID) {
		return
	}
	if _, err := h.animals.Update(r.Context(), req.toDomain()); err != nil {
		h.fail(w, r, err)
		return
	}
	h.message(w, r, i18n.Updated(i18n.EntityAnimal))
}

// UpdatePhoto handles POST /api/animales/imagen/{id} and
// PATCH /api/animales/modificar/imagen/{id}.
func (h *AnimalHandler) UpdatePhoto(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	h.uploadPhoto(w, r, h.animals, id)
}

// Delete handles DELETE /api/animales/{id}.
func (h *AnimalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if _, err := h.animals.Delete(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	h.log(r).Info("animal deleted", slog.String("animal_id", id.String()))
	h.message(w, r, i18n.Deleted(i18n.EntityAnimal))
}
