package api

import (
	"log/slog"
	"net/http"

	"github.com/proyectozoo/zoo-api/internal/api/shared"
	"github.com/proyectozoo/zoo-api/internal/i18n"
	"github.com/proyectozoo/zoo-api/internal/service"
)

// UserHandler handles /api/usuarios requests: registration, login and
// account management.
type UserHandler struct {
	base
	users service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users service.UserService, deps HandlerDeps) *UserHandler {
	return &UserHandler{base: newBase(i18n.EntityUser, deps), users: users}
}

// Register handles POST /api/usuarios/registro.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !h.decode(w, r, &req) {
		return
	}
	user, err := h.users.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.log(r).Info("user registered", slog.String("user_id", user.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, IDResponse{ID: user.ID})
}

// Login handles POST /api/usuarios/login. Unknown emails and wrong
// passwords get the same 404.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.decode(w, r, &req) {
		return
	}
	result, err := h.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// List handles GET /api/usuarios/. Admin only.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, users)
}

// Get handles GET /api/usuarios/{id}. Admin only.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	user, err := h.users.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// UpdateProfile handles PUT /api/usuarios/.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req ProfileRequest
	if !h.decode(w, r, &req) || !h.bodyID(w, r, req.ID) || !h.selfOrAdmin(w, r, req.ID) {
		return
	}
	if _, err := h.users.UpdateProfile(r.Context(), req.ID, req.Name, req.Email); err != nil {
		h.fail(w, r, err)
		return
	}
	h.message(w, r, i18n.Updated(i18n.EntityUser))
}

// UpdateName handles PATCH /api/usuarios/actualizar/nombre/{id}.
func (h *UserHandler) UpdateName(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok || !h.selfOrAdmin(w, r, id) {
		return
	}
	var req NameRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.users.UpdateName(r.Context(), id, req.Name); err != nil {
		h.fail(w, r, err)
		return
	}
	h.message(w, r, i18n.MsgNameUpdated)
}

// UpdateEmail handles PATCH /api/usuarios/actualizar/email/{id}.
// Tokens already issued keep the old email as subject until they expire.
func (h *UserHandler) UpdateEmail(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok || !h.selfOrAdmin(w, r, id) {
		return
	}
	var req EmailRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.users.UpdateEmail(r.Context(), id, req.Email); err != nil {
		h.fail(w, r, err)
		return
	}
	h.message(w, r, i18n.MsgEmailUpdated)
}

// UpdatePassword handles PATCH /api/usuarios/actualizar/password/{id}.
func (h *UserHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok || !h.selfOrAdmin(w, r, id) {
		return
	}
	var req PasswordRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.users.UpdatePassword(r.Context(), id, req.Password); err != nil {
		h.fail(w, r, err)
		return
	}
	h.message(w, r, i18n.MsgPasswordUpdated)
}

// UpdatePhoto handles POST /api/usuarios/imagen/{id} and
// PATCH /api/usuarios/actualizar/imagen/{id}.
func (h *UserHandler) UpdatePhoto(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok || !h.selfOrAdmin(w, r, id) {
		return
	}
	h.uploadPhoto(w, r, h.users, id)
}

// SetRole handles PATCH /api/usuarios/rol/{id}. Admin only.
func (h *UserHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var req RoleRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.users.SetRole(r.Context(), id, req.Role); err != nil {
		h.fail(w, r, err)
		return
	}
	h.log(r).Info("user role changed",
		slog.String("user_id", id.String()),
		slog.String("role", string(req.Role)))
	h.message(w, r, i18n.MsgRoleUpdated)
}

// Delete handles DELETE /api/usuarios/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok || !h.selfOrAdmin(w, r, id) {
		return
	}
	if _, err := h.users.Delete(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	h.log(r).Info("user deleted", slog.String("user_id", id.String()))
	h.message(w, r, i18n.Deleted(i18n.EntityUser))
}
