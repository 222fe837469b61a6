package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/proyectozoo/zoo-api/internal/api/shared"
	"github.com/proyectozoo/zoo-api/internal/domain"
	"github.com/proyectozoo/zoo-api/internal/i18n"
	"github.com/proyectozoo/zoo-api/internal/platform/imagestore"
	"github.com/proyectozoo/zoo-api/internal/platform/logger"
	"github.com/proyectozoo/zoo-api/internal/service"
)

// AdminChecker reports whether a user currently holds ADMIN.
// *auth.Authorizer satisfies it.
type AdminChecker interface {
	IsAdminID(ctx context.Context, id uuid.UUID) bool
}

// HandlerDeps bundles what every resource handler needs.
type HandlerDeps struct {
	Errors         *ErrorResponder
	Translator     *i18n.Translator
	Admins         AdminChecker
	Logger         *slog.Logger
	MaxUploadBytes int64
}

// base carries the shared plumbing of the resource handlers.
type base struct {
	entity    string
	errs      *ErrorResponder
	tr        *i18n.Translator
	admins    AdminChecker
	logger    *slog.Logger
	maxUpload int64
}

func newBase(entity string, deps HandlerDeps) base {
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}
	maxUpload := deps.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = imagestore.DefaultMaxBytes
	}
	return base{
		entity:    entity,
		errs:      deps.Errors,
		tr:        deps.Translator,
		admins:    deps.Admins,
		logger:    log.With(slog.String("component", entity+"_handler")),
		maxUpload: maxUpload,
	}
}

func (b base) log(r *http.Request) *slog.Logger {
	return logger.FromContextOrDefault(r.Context(), b.logger)
}

func (b base) fail(w http.ResponseWriter, r *http.Request, err error) {
	b.errs.Respond(w, r, b.entity, err)
}

func (b base) message(w http.ResponseWriter, r *http.Request, key i18n.Key) {
	shared.RespondWithMessage(w, r, http.StatusOK, b.tr.T(r.Context(), key))
}

// pathID parses the {id} URL parameter, writing a 400 on failure.
func (b base) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		b.fail(w, r, err)
		return uuid.Nil, false
	}
	return id, true
}

// decode reads a JSON body, writing a 400 on failure.
func (b base) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := decodeRequest(r, b.entity, v); err != nil {
		b.fail(w, r, err)
		return false
	}
	return true
}

// bodyID rejects update payloads that do not name a record.
func (b base) bodyID(w http.ResponseWriter, r *http.Request, id uuid.UUID) bool {
	if id == uuid.Nil {
		v := domain.NewValidationError(b.entity)
		v.Add("id", "required", "")
		b.fail(w, r, v)
		return false
	}
	return true
}

// actor returns the authenticated user and whether they are an admin.
func (b base) actor(r *http.Request) (uuid.UUID, bool, bool) {
	id, ok := shared.UserID(r.Context())
	if !ok {
		return uuid.Nil, false, false
	}
	return id, b.admins != nil && b.admins.IsAdminID(r.Context(), id), true
}

// selfOrAdmin lets the request through when the caller is target or an admin.
func (b base) selfOrAdmin(w http.ResponseWriter, r *http.Request, target uuid.UUID) bool {
	id, isAdmin, ok := b.actor(r)
	if ok && (id == target || isAdmin) {
		return true
	}
	b.fail(w, r, service.ErrForbidden)
	return false
}

// photoUploader is implemented by every service that stores entity photos.
type photoUploader interface {
	UpdatePhoto(ctx context.Context, id uuid.UUID, upload imagestore.Upload) (string, error)
}

// uploadPhoto handles the image endpoints of every entity.
func (b base) uploadPhoto(w http.ResponseWriter, r *http.Request, svc photoUploader, id uuid.UUID) {
	upload, closeUpload, err := readUpload(w, r, b.maxUpload)
	if err != nil {
		b.fail(w, r, err)
		return
	}
	defer closeUpload()

	path, err := svc.UpdatePhoto(r.Context(), id, upload)
	if err != nil {
		b.fail(w, r, err)
		return
	}
	b.log(r).Info("photo updated",
		slog.String("entity", b.entity),
		slog.String("id", id.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, pathResponse{Path: path})
}
