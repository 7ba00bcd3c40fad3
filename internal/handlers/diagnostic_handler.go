package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"store-backend/internal/config"
	"store-backend/internal/store"
)

type DiagnosticHandler struct {
	cfg   *config.Config
	store store.Store
}

func NewDiagnosticHandler(cfg *config.Config, s store.Store) *DiagnosticHandler {
	return &DiagnosticHandler{cfg: cfg, store: s}
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Root is the liveness message.
func (h *DiagnosticHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{Message: "Knee Massager Store Backend Running"})
}

// Hello is a static diagnostic greeting.
func (h *DiagnosticHandler) Hello(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{Message: "Hello from the backend API!"})
}

type DiagnosticReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// TestDatabase reports backend and store health. It never errors to the
// caller: every failure is rendered as text inside a 200 response.
func (h *DiagnosticHandler) TestDatabase(c *gin.Context) {
	report := DiagnosticReport{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if err := h.store.Ping(c.Request.Context()); err != nil {
		report.Database = fmt.Sprintf("❌ Error: %s", truncate(err.Error(), 50))
	} else {
		report.Database = "✅ Available"
		report.ConnectionStatus = "Connected"

		if names, err := h.store.CollectionNames(c.Request.Context()); err != nil {
			report.Database = fmt.Sprintf("⚠️ Connected but Error: %s", truncate(err.Error(), 50))
		} else {
			if len(names) > 10 {
				names = names[:10]
			}
			report.Collections = names
			report.Database = "✅ Connected & Working"
		}
	}

	report.DatabaseURL = presence(h.cfg.DatabaseURLSet)
	report.DatabaseName = presence(h.cfg.DatabaseNameSet)

	c.JSON(http.StatusOK, report)
}

func presence(set bool) string {
	if set {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
