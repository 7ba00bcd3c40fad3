package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"store-backend/internal/config"
	"store-backend/internal/routes"
	"store-backend/internal/store"
)

func newTestRouter(t *testing.T, s store.Store) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	routes.Register(router, &config.Config{
		DatabaseName:    "storefront",
		Port:            "8000",
		DatabaseURLSet:  true,
		DatabaseNameSet: true,
	}, s)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), target))
}

func get(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	return doJSON(t, router, http.MethodGet, path, nil)
}
