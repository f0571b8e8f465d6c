package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"demo/orderflow/internal/apperr"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

type errorBody struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
	StatusCode int    `json:"status_code,omitempty"`
	Body       string `json:"body,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

// writeError maps err onto one HTTP outcome. Unclassified errors are logged
// and hidden behind a generic 500.
func writeError(w http.ResponseWriter, log *zap.Logger, err error) {
	var (
		validation  *apperr.ValidationError
		notFound    *apperr.NotFoundError
		conflict    *apperr.ConflictError
		unavailable *apperr.UpstreamUnavailableError
		badResponse *apperr.UpstreamBadResponseError
	)

	switch {
	case errors.As(err, &validation):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: apperr.CategoryValidation, Message: validation.Message})
	case errors.As(err, &notFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: apperr.CategoryNotFound, Message: notFound.Message})
	case errors.As(err, &conflict):
		writeJSON(w, http.StatusConflict, errorBody{Error: apperr.CategoryConflict, Message: conflict.Message})
	case errors.As(err, &unavailable):
		writeJSON(w, http.StatusServiceUnavailable, errorBody{
			Error:   apperr.CategoryUnavailable,
			Message: fmt.Sprintf("%s is unavailable.", unavailable.Service),
			Details: unavailable.Details,
		})
	case errors.As(err, &badResponse):
		writeJSON(w, http.StatusBadGateway, errorBody{
			Error:      apperr.CategoryBadGateway,
			Message:    fmt.Sprintf("%s returned an unexpected response.", badResponse.Service),
			StatusCode: badResponse.StatusCode,
			Body:       apperr.Excerpt(badResponse.Body, apperr.MaxBodyExcerpt),
		})
	default:
		log.Error("request failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorBody{
			Error:   apperr.CategoryInternal,
			Message: "An unexpected error occurred.",
		})
	}
}

// decodeObject reads a JSON object body into T. Anything that is not an
// object decodes as the zero value, i.e. an empty object.
func decodeObject[T any](w http.ResponseWriter, r *http.Request) T {
	var zero, v T
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return zero
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return zero
	}
	return v
}

// pathID parses the {id} route parameter. The route pattern already
// guarantees digits; overflow reports ok=false.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}
