package api

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/proyectozoo/zoo-api/internal/api/shared"
	"github.com/proyectozoo/zoo-api/internal/domain"
	"github.com/proyectozoo/zoo-api/internal/platform/imagestore"
)

// UploadField is the multipart field carrying an image.
const UploadField = "file"

// multipartOverhead is the allowance for multipart headers on top of the image limit.
const multipartOverhead = 64 << 10

// getPathUUID extracts a UUID from the URL path parameters.
// Returns an error wrapping domain.ErrInvalidID when it is missing or malformed.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	raw := chi.URLParam(r, paramName)
	if raw == "" {
		return uuid.Nil, fmt.Errorf("%w: missing %s", domain.ErrInvalidID, paramName)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s %q", domain.ErrInvalidID, paramName, raw)
	}
	return id, nil
}

// decodeRequest decodes a JSON body into v and checks its validate tags.
// Decoding failures wrap errMalformedBody; tag failures are a
// *domain.ValidationError for entity.
func decodeRequest(r *http.Request, entity string, v interface{}) error {
	if err := shared.DecodeJSON(r, v); err != nil {
		return fmt.Errorf("%w: %v", errMalformedBody, err)
	}
	return shared.ValidateRequest(entity, v)
}

// readUpload extracts the image in the multipart "file" field. The returned
// close func must be called once the upload has been consumed.
func readUpload(w http.ResponseWriter, r *http.Request, maxBytes int64) (imagestore.Upload, func(), error) {
	noop := func() {}
	if maxBytes <= 0 {
		maxBytes = imagestore.DefaultMaxBytes
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+multipartOverhead)
	file, header, err := r.FormFile(UploadField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			return imagestore.Upload{}, noop, fmt.Errorf("%w: request body over %d bytes", imagestore.ErrTooLarge, tooLarge.Limit)
		case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
			return imagestore.Upload{}, noop, fmt.Errorf("%w: %v", imagestore.ErrEmptyUpload, err)
		default:
			return imagestore.Upload{}, noop, fmt.Errorf("%w: %v", errMalformedBody, err)
		}
	}

	return uploadFrom(file, header), func() {
		_ = file.Close()
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}, nil
}

func uploadFrom(file multipart.File, header *multipart.FileHeader) imagestore.Upload {
	return imagestore.Upload{
		Filename: header.Filename,
		Size:     header.Size,
		Reader:   file,
	}
}

// pathResponse is returned by image uploads.
type pathResponse struct {
	Path string `json:"path"`
}
