package httputil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "github.com/meshram0823/UrbanCart/pkg/errors"
	"github.com/meshram0823/UrbanCart/pkg/logger"
)

// ErrorBody is the flat error shape the storefront client consumes.
type ErrorBody struct {
	Error string `json:"error"`
}

// MessageBody is the flat confirmation shape for operations without an
// entity body (delete, review added).
type MessageBody struct {
	Message string `json:"message"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Headers are already sent; nothing meaningful can be done if encoding fails.
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps an error to its HTTP status and writes the flat error body.
// Every failure is logged before it is reported; internal errors keep their
// detail server-side and send only a generic message to the client.
func WriteError(w http.ResponseWriter, r *http.Request, err error, fallback *slog.Logger) {
	l := logger.FromContext(r.Context())
	if l == slog.Default() {
		l = fallback
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		l.WarnContext(r.Context(), "request failed",
			slog.String("code", appErr.Code),
			slog.String("error", appErr.Error()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
		WriteJSON(w, appErr.Status, ErrorBody{Error: appErr.Message})
		return
	}

	l.ErrorContext(r.Context(), "internal error",
		slog.String("error", err.Error()),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	)
	WriteJSON(w, http.StatusInternalServerError, ErrorBody{Error: "Server error"})
}

// ParseObjectID validates that the given path parameter is a well-formed
// ObjectID hex string. If malformed it writes a 400 response and returns
// false, so a bad identifier never reaches the store.
func ParseObjectID(w http.ResponseWriter, param string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(param)
	if err != nil {
		WriteJSON(w, http.StatusBadRequest, ErrorBody{Error: "Invalid product ID"})
		return primitive.NilObjectID, false
	}
	return id, true
}
