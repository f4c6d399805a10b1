package scanning

import (
	"errors"
	"fmt"

	"scan-verifier/core/export"
	"scan-verifier/core/logger"
	"scan-verifier/core/manifest"
	"scan-verifier/core/reconcile"
	"scan-verifier/core/session"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ScanRequest is the body of POST /session/scan.
type ScanRequest struct {
	Value string `json:"value"`
}

// Handler handles HTTP requests for the scanning session.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the session routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/session")
	group.Get("/", h.HandleSnapshot)
	group.Delete("/", h.HandleClear)
	group.Post("/manifest", h.HandleLoadManifest)
	group.Post("/start", h.HandleStart)
	group.Post("/stop", h.HandleStop)
	group.Post("/scan", h.HandleScan)
	group.Get("/last", h.HandleLast)
	group.Get("/stats", h.HandleStats)
	group.Get("/history", h.HandleHistory)
	group.Get("/report", h.HandleReport)
	group.Post("/export", h.HandleExport)
}

// statusFor maps session errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, session.ErrScanningActive), errors.Is(err, session.ErrEmptyManifest):
		return fiber.StatusConflict
	case errors.Is(err, manifest.ErrUnreadable), errors.Is(err, manifest.ErrNoData),
		errors.Is(err, manifest.ErrNoIdentifierColumn), errors.Is(err, manifest.ErrNoRecords):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, ErrNothingToExport), errors.Is(err, session.ErrChanged):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// fail logs err and writes it as a JSON error response.
func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	code := statusFor(err)
	l := logger.WithRayID(h.service.logger, c)
	if code >= fiber.StatusInternalServerError {
		l.Error(msg, zap.Error(err))
	} else {
		l.Warn(msg, zap.Error(err))
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

// withWarning adds a warning to body when err only reports a persistence failure.
// It returns false when err is a real failure.
func withWarning(body fiber.Map, err error) bool {
	if err == nil {
		return true
	}
	if errors.Is(err, reconcile.ErrNotPersisted) {
		body["warning"] = err.Error()
		return true
	}
	return false
}

// HandleSnapshot returns the full session state.
// @Summary Get Session
// @Description Returns the scan mode flag, manifest, scan history and consumed rows.
// @Tags session
// @Produce json
// @Success 200 {object} session.State "Session State"
// @Router /session [get]
func (h *Handler) HandleSnapshot(c *fiber.Ctx) error {
	return c.JSON(h.service.Snapshot())
}

// HandleClear resets the session.
// @Summary Clear Session
// @Description Stops scanning and removes the manifest and scan history.
// @Tags session
// @Produce json
// @Success 200 {object} map[string]interface{} "Cleared"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /session [delete]
func (h *Handler) HandleClear(c *fiber.Ctx) error {
	body := fiber.Map{"status": "cleared"}
	if err := h.service.Clear(); !withWarning(body, err) {
		return h.fail(c, "Session clear failed", err)
	}
	return c.JSON(body)
}

// HandleLoadManifest loads a manifest workbook.
// @Summary Load Manifest
// @Description Parses an xlsx manifest and replaces the session manifest. Refused while scanning.
// @Tags session
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Manifest workbook (.xlsx)"
// @Success 200 {object} map[string]interface{} "Loaded"
// @Failure 400 {object} map[string]string "Missing file"
// @Failure 409 {object} map[string]string "Scanning is active"
// @Failure 422 {object} map[string]string "Unusable manifest"
// @Router /session/manifest [post]
func (h *Handler) HandleLoadManifest(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "multipart field 'file' is required"})
	}
	f, err := fh.Open()
	if err != nil {
		return h.fail(c, "Manifest upload unreadable", fmt.Errorf("%w: %v", manifest.ErrUnreadable, err))
	}
	defer f.Close()

	records, err := h.service.LoadManifest(f)
	body := fiber.Map{"filename": fh.Filename, "records": len(records)}
	if !withWarning(body, err) {
		return h.fail(c, "Manifest load failed", err)
	}
	return c.JSON(body)
}

// HandleStart turns scan mode on.
// @Summary Start Scanning
// @Tags session
// @Produce json
// @Success 200 {object} map[string]interface{} "Started"
// @Failure 409 {object} map[string]string "No manifest loaded"
// @Router /session/start [post]
func (h *Handler) HandleStart(c *fiber.Ctx) error {
	body := fiber.Map{"active": true}
	if err := h.service.Start(); !withWarning(body, err) {
		return h.fail(c, "Scanning start failed", err)
	}
	return c.JSON(body)
}

// HandleStop turns scan mode off.
// @Summary Stop Scanning
// @Tags session
// @Produce json
// @Success 200 {object} map[string]interface{} "Stopped"
// @Router /session/stop [post]
func (h *Handler) HandleStop(c *fiber.Ctx) error {
	body := fiber.Map{"active": false}
	if err := h.service.Stop(); !withWarning(body, err) {
		return h.fail(c, "Scanning stop failed", err)
	}
	return c.JSON(body)
}

// HandleScan submits one scanned value.
// @Summary Scan
// @Description Resolves a barcode, box number, shipment ID or shipment number against the manifest.
// @Tags session
// @Accept json
// @Produce json
// @Param request body ScanRequest true "Scanned value"
// @Success 200 {object} ScanResult "Scan Outcome"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /session/scan [post]
func (h *Handler) HandleScan(c *fiber.Ctx) error {
	var req ScanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	res := h.service.Scan(req.Value)
	if res.Err != nil && res.Warning == "" {
		return h.fail(c, "Scan could not be recorded", res.Err)
	}
	return c.JSON(res)
}

// HandleLast returns the most recent scan.
// @Summary Last Scan
// @Tags session
// @Produce json
// @Success 200 {object} reconcile.ScanEvent "Last Scan"
// @Success 204 "No scans yet"
// @Router /session/last [get]
func (h *Handler) HandleLast(c *fiber.Ctx) error {
	ev, ok := h.service.Last()
	if !ok {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(ev)
}

// HandleStats returns per-category counts.
// @Summary Session Statistics
// @Tags session
// @Produce json
// @Success 200 {object} reconcile.Stats "Statistics"
// @Router /session/stats [get]
func (h *Handler) HandleStats(c *fiber.Ctx) error {
	return c.JSON(h.service.Stats())
}

// HandleHistory returns the scan history, optionally filtered.
// @Summary Scan History
// @Description Returns scans oldest first. The filter is a boolean expression over value, status, field, excess, row, box, shipment_id, shipment_number and barcode.
// @Tags session
// @Produce json
// @Param filter query string false "Filter expression, e.g. excess || status == \"Досмотр\""
// @Success 200 {array} reconcile.ScanEvent "Scan Events"
// @Failure 400 {object} map[string]string "Invalid filter"
// @Router /session/history [get]
func (h *Handler) HandleHistory(c *fiber.Ctx) error {
	events, err := h.service.History(c.Query("filter"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(events)
}

// HandleReport returns the reconciliation report as JSON.
// @Summary Reconciliation Report
// @Tags session
// @Produce json
// @Success 200 {array} reconcile.ReportRow "Report Rows"
// @Router /session/report [get]
func (h *Handler) HandleReport(c *fiber.Ctx) error {
	return c.JSON(h.service.Report())
}

// HandleExport renders the report workbook and clears the session.
// @Summary Export Report
// @Description Returns the reconciliation workbook, archives it when an archive is configured and clears the session.
// @Tags session
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "Report workbook"
// @Failure 409 {object} map[string]string "Nothing to export, or scans kept arriving during export"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /session/export [post]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	res, err := h.service.Export(c.Context())
	if err != nil {
		return h.fail(c, "Export failed", err)
	}

	if res.Archive != nil {
		c.Set("X-Archive-Session", res.Archive.SessionID)
		if len(res.Archive.Errors) > 0 {
			c.Set("X-Archive-Errors", fmt.Sprint(len(res.Archive.Errors)))
		}
	}
	if res.Warning != "" {
		c.Set("X-Session-Warning", res.Warning)
	}
	c.Attachment(res.Filename)
	c.Set(fiber.HeaderContentType, export.ContentType)
	return c.Send(res.Data)
}
