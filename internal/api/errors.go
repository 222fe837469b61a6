package api

import (
	"errors"
	"net/http"

	"github.com/proyectozoo/zoo-api/internal/api/shared"
	"github.com/proyectozoo/zoo-api/internal/domain"
	"github.com/proyectozoo/zoo-api/internal/i18n"
	"github.com/proyectozoo/zoo-api/internal/platform/imagestore"
	"github.com/proyectozoo/zoo-api/internal/service"
	"github.com/proyectozoo/zoo-api/internal/service/auth"
	"github.com/proyectozoo/zoo-api/internal/store"
)

// errMalformedBody marks a request body or form that could not be decoded.
var errMalformedBody = errors.New("malformed request body")

// MapErrorToStatusCode maps internal errors to HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK

	// Authentication and authorization errors
	case errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden

	// Not found errors; bad credentials are reported as an unknown user
	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate),
		errors.Is(err, service.ErrCommentLimit):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, errMalformedBody),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, store.ErrInvalidReference),
		errors.Is(err, store.ErrConstraint),
		errors.Is(err, imagestore.ErrTooLarge),
		errors.Is(err, imagestore.ErrUnsupportedFormat),
		errors.Is(err, imagestore.ErrEmptyUpload):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// entityNotFound pairs each store sentinel with its entity message.
var entityNotFound = []struct {
	err    error
	entity string
}{
	{store.ErrAnimalNotFound, i18n.EntityAnimal},
	{store.ErrSectionNotFound, i18n.EntitySection},
	{store.ErrEventNotFound, i18n.EntityEvent},
	{store.ErrCommentNotFound, i18n.EntityComment},
	{store.ErrUserNotFound, i18n.EntityUser},
}

// messageKey picks the client message for err. entity names the resource the
// request was about and is used for duplicate-name messages.
func messageKey(err error, entity string) i18n.Key {
	switch {
	case errors.Is(err, auth.ErrMissingToken):
		return i18n.ErrTokenMissing
	case errors.Is(err, auth.ErrExpiredToken):
		return i18n.ErrTokenExpired
	case errors.Is(err, auth.ErrInvalidToken):
		return i18n.ErrTokenInvalid
	case errors.Is(err, service.ErrForbidden):
		return i18n.ErrForbidden
	case errors.Is(err, service.ErrInvalidCredentials):
		return i18n.ErrCredentials
	case errors.Is(err, store.ErrNotFound):
		for _, nf := range entityNotFound {
			if errors.Is(err, nf.err) {
				return i18n.NotFound(nf.entity)
			}
		}
		return i18n.ErrNotFound
	case errors.Is(err, service.ErrCommentLimit),
		errors.Is(err, store.ErrCommentForTheDay):
		return i18n.ErrCommentLimit
	case errors.Is(err, store.ErrEmailExists):
		return i18n.ErrEmailExists
	case errors.Is(err, store.ErrNameExists) && entity != "" && entity != i18n.EntityComment:
		return i18n.NameExists(entity)
	case errors.Is(err, store.ErrDuplicate):
		return i18n.ErrDuplicate
	case errors.Is(err, imagestore.ErrTooLarge):
		return i18n.ErrPhotoSize
	case errors.Is(err, imagestore.ErrUnsupportedFormat):
		return i18n.ErrPhotoFormat
	case errors.Is(err, imagestore.ErrEmptyUpload):
		return i18n.ErrPhotoMissing
	case errors.Is(err, store.ErrInvalidReference):
		return i18n.ErrInvalidReference
	case errors.Is(err, domain.ErrInvalidID):
		return i18n.ErrInvalidID
	case errors.Is(err, errMalformedBody):
		return i18n.ErrBadRequest
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, store.ErrConstraint):
		return i18n.ErrValidation
	default:
		return i18n.ErrInternal
	}
}

// ErrorResponder turns errors into localized JSON error responses.
type ErrorResponder struct {
	translator *i18n.Translator
	maxMB      int64
}

// NewErrorResponder creates an ErrorResponder. maxUploadBytes is quoted in the
// oversized-photo message.
func NewErrorResponder(translator *i18n.Translator, maxUploadBytes int64) *ErrorResponder {
	if maxUploadBytes <= 0 {
		maxUploadBytes = imagestore.DefaultMaxBytes
	}
	return &ErrorResponder{
		translator: translator,
		maxMB:      maxUploadBytes >> 20,
	}
}

// Message renders key in the request's locale.
func (e *ErrorResponder) Message(r *http.Request, key i18n.Key, args ...any) string {
	return e.translator.T(r.Context(), key, args...)
}

// Respond writes the status and localized message for err.
// Validation failures carry one localized line per field in details;
// unknown errors get a generic message and are logged at error level.
func (e *ErrorResponder) Respond(w http.ResponseWriter, r *http.Request, entity string, err error) {
	status := MapErrorToStatusCode(err)
	key := messageKey(err, entity)
	var args []any
	if key == i18n.ErrPhotoSize {
		args = []any{e.maxMB}
	}

	var opts []shared.ResponseOption
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		opts = append(opts, shared.WithDetails(e.translator.Fields(r.Context(), verr)))
	}
	if status == http.StatusForbidden {
		opts = append(opts, shared.WithElevatedLogLevel())
	}

	shared.RespondWithErrorAndLog(w, r, status, e.Message(r, key, args...), err, opts...)
}
