package http

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/datetime/internal/domain/datetime"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	datetimeSvc datetime.Service
	logger      *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(datetimeSvc datetime.Service, logger *slog.Logger) *Handler {
	return &Handler{
		datetimeSvc: datetimeSvc,
		logger:      logger.With("component", "http.handler"),
	}
}

// CurrentDateTime returns the current UTC time as JSON, or as plain text with ?format=text.
func (h *Handler) CurrentDateTime(c *gin.Context) {
	format := strings.ToLower(strings.TrimSpace(c.DefaultQuery("format", "json")))
	if format != "json" && format != "text" {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "format must be json or text", nil))
		return
	}

	resp, err := h.datetimeSvc.Current(c.Request.Context())
	if err != nil {
		abortWithError(c, asHTTPError(err))
		return
	}

	c.Header("Cache-Control", "no-store")
	if format == "text" {
		c.String(http.StatusOK, resp.DateTime)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Healthz reports liveness.
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
