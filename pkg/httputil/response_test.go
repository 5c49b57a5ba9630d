package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "github.com/meshram0823/UrbanCart/pkg/errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError + 4}))
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteJSON(rec, http.StatusTeapot, MessageBody{Message: "hello"})

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got MessageBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "hello", got.Message)
}

func TestWriteError_AppError(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products/x", nil)

	WriteError(rec, req, apperrors.NotFound("product", "x"), testLogger())

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var got ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "product not found", got.Error)
}

func TestWriteError_WrappedAppError(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products/x", nil)

	err := fmt.Errorf("get product: %w", apperrors.InvalidInput("All fields are required"))
	WriteError(rec, req, err, testLogger())

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var got ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "All fields are required", got.Error)
}

func TestWriteError_UnknownErrorIsGeneric(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products", nil)

	WriteError(rec, req, errors.New("pool exhausted"), testLogger())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var got ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	// Internal detail never reaches the client.
	assert.Equal(t, "Server error", got.Error)
}

func TestParseObjectID_Valid(t *testing.T) {
	rec := httptest.NewRecorder()
	want := primitive.NewObjectID()

	id, ok := ParseObjectID(rec, want.Hex())

	assert.True(t, ok)
	assert.Equal(t, want, id)
	assert.Empty(t, rec.Body.String())
}

func TestParseObjectID_Malformed(t *testing.T) {
	for _, raw := range []string{"", "nope", "123", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
		rec := httptest.NewRecorder()

		id, ok := ParseObjectID(rec, raw)

		assert.False(t, ok, "input %q", raw)
		assert.Equal(t, primitive.NilObjectID, id)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var got ErrorBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "Invalid product ID", got.Error)
	}
}
