package api

import (
	"log/slog"
	"net/http"

	"github.com/proyectozoo/zoo-api/internal/api/shared"
	"github.com/proyectozoo/zoo-api/internal/i18n"
	"github.com/proyectozoo/zoo-api/internal/service"
)

// SectionHandler handles /api/secciones requests.
type SectionHandler struct {
	base
	sections service.SectionService
}

// NewSectionHandler creates a new SectionHandler.
func NewSectionHandler(sections service.SectionService, deps HandlerDeps) *SectionHandler {
	return &SectionHandler{base: newBase(i18n.EntitySection, deps), sections: sections}
}

// List handles GET /api/secciones/. Public.
func (h *SectionHandler) List(w http.ResponseWriter, r *http.Request) {
	sections, err := h.sections.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, sections)
}

// Names handles GET /api/secciones/nombres. Public.
func (h *SectionHandler) Names(w http.ResponseWriter, r *http.Request) {
	names, err := h.sections.Names(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, names)
}

// Get handles GET /api/secciones/{id}.
func (h *SectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	section, err := h.sections.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, section)
}

// Create handles POST /api/secciones/alta.
func (h *SectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req SectionRequest
	if !h.decode(w, r, &req) {
		return
	}
	section, err := h.sections.Create(r.Context(), req.toDomain())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.log(r).Info("section created", slog.String("section_id", section.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, IDResponse{ID: section.ID})
}

// Update handles PUT /api/secciones/modificar.
func (h *SectionHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req SectionRequest
	if !h.decode(w, r, &req) || !h.bodyID(w, r, req.ID) {
		return
	}
	if _, err := h.sections.Update(r.Context(), req.toDomain()); err != nil {
		h.fail(w, r, err)
		return
	}
	h.message(w, r, i18n.Updated(i18n.EntitySection))
}

// UpdatePhoto handles POST /api/secciones/imagen/{id} and
// PATCH /api/secciones/modificar/imagen/{id}.
func (h *SectionHandler) UpdatePhoto(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	h.uploadPhoto(w, r, h.sections, id)
}

// Delete handles DELETE /api/secciones/{id}. Sections that still hold
// animals or events are refused by the database.
func (h *SectionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if _, err := h.sections.Delete(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	h.log(r).Info("section deleted", slog.String("section_id", id.String()))
	h.message(w, r, i18n.Deleted(i18n.EntitySection))
}
