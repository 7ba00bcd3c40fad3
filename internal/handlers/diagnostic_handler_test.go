package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"store-backend/internal/handlers"
	"store-backend/internal/models"
	"store-backend/internal/store"
)

func TestRootLiveness(t *testing.T) {
	router := newTestRouter(t, store.NewMemory())

	rec := get(t, router, "/")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp handlers.MessageResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Knee Massager Store Backend Running", resp.Message)
}

func TestHello(t *testing.T) {
	router := newTestRouter(t, store.NewMemory())

	rec := get(t, router, "/api/hello")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp handlers.MessageResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Hello from the backend API!", resp.Message)
}

func TestDiagnosticsConnectedStore(t *testing.T) {
	s := store.NewMemory()
	_, err := s.CreateDocument(context.Background(), models.ProductCollection, store.Document{"title": "X", "price": 1.0})
	require.NoError(t, err)

	router := newTestRouter(t, s)

	rec := get(t, router, "/test")
	require.Equal(t, http.StatusOK, rec.Code)

	var report handlers.DiagnosticReport
	decodeBody(t, rec, &report)
	assert.Equal(t, "✅ Running", report.Backend)
	assert.Equal(t, "✅ Connected & Working", report.Database)
	assert.Equal(t, "Connected", report.ConnectionStatus)
	assert.Contains(t, report.Collections, models.ProductCollection)
	assert.Equal(t, "✅ Set", report.DatabaseURL)
	assert.Equal(t, "✅ Set", report.DatabaseName)
}

// The diagnostic endpoint never errors to the caller, whatever the
// store's state.
func TestDiagnosticsUnavailableStore(t *testing.T) {
	router := newTestRouter(t, store.Unavailable{})

	rec := get(t, router, "/test")
	require.Equal(t, http.StatusOK, rec.Code)

	var report handlers.DiagnosticReport
	decodeBody(t, rec, &report)
	assert.Equal(t, "✅ Running", report.Backend)
	assert.Contains(t, report.Database, "❌ Error")
	assert.Equal(t, "Not Connected", report.ConnectionStatus)
	assert.Empty(t, report.Collections)
}
