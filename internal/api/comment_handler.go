package api

import (
	"log/slog"
	"net/http"

	"github.com/proyectozoo/zoo-api/internal/api/shared"
	"github.com/proyectozoo/zoo-api/internal/i18n"
	"github.com/proyectozoo/zoo-api/internal/service"
	"github.com/proyectozoo/zoo-api/internal/service/auth"
)

// CommentHandler handles /api/comentarios requests.
type CommentHandler struct {
	base
	comments service.CommentService
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(comments service.CommentService, deps HandlerDeps) *CommentHandler {
	return &CommentHandler{base: newBase(i18n.EntityComment, deps), comments: comments}
}

// List handles GET /api/comentarios/.
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	comments, err := h.comments.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, comments)
}

// Get handles GET /api/comentarios/{id}.
func (h *CommentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	comment, err := h.comments.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, comment)
}

// ListByAnimal handles GET /api/comentarios/animal/{id}.
func (h *CommentHandler) ListByAnimal(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	comments, err := h.comments.ListByAnimal(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, comments)
}

// Create handles POST /api/comentarios/. The author is the token's user,
// never a value from the body.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := shared.UserID(r.Context())
	if !ok {
		h.fail(w, r, auth.ErrMissingToken)
		return
	}

	var req CommentRequest
	if !h.decode(w, r, &req) {
		return
	}
	comment, err := h.comments.Create(r.Context(), req.AnimalID, userID, req.Text)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.log(r).Info("comment created",
		slog.String("comment_id", comment.ID.String()),
		slog.String("animal_id", comment.AnimalID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, IDResponse{ID: comment.ID})
}

// Delete handles DELETE /api/comentarios/{id}. Only the author or an admin may delete.
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	actorID, isAdmin, ok := h.actor(r)
	if !ok {
		h.fail(w, r, auth.ErrMissingToken)
		return
	}
	if _, err := h.comments.Delete(r.Context(), id, actorID, isAdmin); err != nil {
		h.fail(w, r, err)
		return
	}
	h.message(w, r, i18n.Deleted(i18n.EntityComment))
}
