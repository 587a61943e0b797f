package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/shift-scheduler/internal/config"
	"github.com/spec-kit/shift-scheduler/internal/service"
)

const adminSecretHeader = "x-admin-secret"

// ExportHandler serves the payroll CSV export. It sits outside the
// session-auth group: callers authorize with a shared secret header, and
// the organization id arrives as an untrusted query parameter that is
// applied as the one and only tenant filter.
type ExportHandler struct {
	cfg     config.ExportConfig
	export  *service.ExportService
	storeOK bool
	logger  *zap.Logger
}

// NewExportHandler constructs handler. storeOK reports whether store
// credentials were configured at boot; when false every request is a
// server misconfiguration.
func NewExportHandler(cfg config.ExportConfig, exportService *service.ExportService, storeOK bool, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{cfg: cfg, export: exportService, storeOK: storeOK, logger: logger}
}

// Payroll handles GET /export/payroll?org_id=&start=&end=.
//
// Responses use the flat {"error": "..."} shape rather than the domain
// error envelope; downstream failures never leak internal error text.
func (h *ExportHandler) Payroll(c *fiber.Ctx) error {
	if h.cfg.AdminSecret == "" {
		return exportError(c, http.StatusInternalServerError, "Server not configured: ADMIN_SECRET missing")
	}

	provided := c.Get(adminSecretHeader)
	if provided == "" || provided != h.cfg.AdminSecret {
		return exportError(c, http.StatusUnauthorized, "Unauthorized")
	}

	orgID := c.Query("org_id")
	startRaw := c.Query("start")
	endRaw := c.Query("end")
	missing := make([]string, 0, 3)
	if orgID == "" {
		missing = append(missing, "org_id")
	}
	if startRaw == "" {
		missing = append(missing, "start")
	}
	if endRaw == "" {
		missing = append(missing, "end")
	}
	if len(missing) > 0 {
		return exportError(c, http.StatusBadRequest, "Missing "+strings.Join(missing, ", "))
	}

	if !h.storeOK {
		return exportError(c, http.StatusInternalServerError, "Server not configured: store credentials missing")
	}

	start, err := parseTimestamp(startRaw)
	if err != nil {
		return exportError(c, http.StatusBadRequest, "invalid start")
	}
	end, err := parseTimestamp(endRaw)
	if err != nil {
		return exportError(c, http.StatusBadRequest, "invalid end")
	}

	shifts, err := h.export.FetchShifts(c.Context(), orgID, start, end)
	if err != nil {
		h.logger.Error("payroll export query failed", zap.String("org_id", orgID), zap.Error(err))
		return exportError(c, http.StatusInternalServerError, "Failed to export")
	}

	csv := h.export.BuildCSV(shifts)
	filename := fmt.Sprintf("payroll_%s_%s_%s.csv", orgID, startRaw, endRaw)
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Status(http.StatusOK).SendString(csv)
}

func exportError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}
