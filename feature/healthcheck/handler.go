package healthcheck

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"dq-health-check/core/logger"
	"dq-health-check/core/sheet"
	"dq-health-check/core/utils"
	"dq-health-check/feature/healthcheck/model"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for health checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the healthcheck routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/healthcheck")
	group.Get("/", h.HandleInfo)
	group.Post("/analyze", h.HandleAnalyze)
}

// HandleInfo describes how to use the analyze endpoint.
// @Summary Health Check Usage
// @Description Explains how to submit spreadsheets for analysis.
// @Tags healthcheck
// @Produce json
// @Success 200 {object} map[string]interface{} "Usage"
// @Router /healthcheck [get]
func (h *Handler) HandleInfo(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"analyze":    "POST /healthcheck/analyze",
		"field":      "sources (multipart, one or more .xlsx/.csv files)",
		"main_index": "optional form value, 1-based; first file is main by default",
	})
}

// HandleAnalyze compares uploaded rule sheets against the main source.
// @Summary Analyze Rule Sheets
// @Description Uploads one or more spreadsheets of data quality rules and reconciles them against the designated main source.
// @Tags healthcheck
// @Accept multipart/form-data
// @Produce json
// @Param sources formData file true "Rule sheets (.xlsx or .csv), repeatable"
// @Param main_index formData int false "1-based index of the main source (default 1)"
// @Success 200 {object} model.Report "Health Check Report"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /healthcheck/analyze [post]
func (h *Handler) HandleAnalyze(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "expected a multipart form upload",
		})
	}

	files := form.File["sources"]
	if len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "please upload at least one spreadsheet in the 'sources' field",
		})
	}

	sources := make([]*model.Source, 0, len(files))
	for i, fh := range files {
		name := sanitizeFilename(fh.Filename, fmt.Sprintf("source_%d.xlsx", i+1))

		data, err := readUpload(fh)
		if err != nil {
			l.Error("Failed to read upload", zap.String("file", name), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": fmt.Sprintf("failed to read %s", name),
			})
		}

		src, err := NewSourceFromFile(name, data)
		if err != nil {
			return h.uploadError(c, l, name, err)
		}
		sources = append(sources, src)
	}

	// 1-based in the form, as uploaded files are numbered for the user.
	mainIndex := 0
	if v := c.FormValue("main_index"); v != "" {
		if n := utils.ToInt(v); n >= 1 && n <= len(sources) {
			mainIndex = n - 1
		}
	}

	report, err := h.service.Analyze(sources, mainIndex)
	if err != nil {
		l.Error("Health check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(report)
}

// uploadError maps parse and extraction failures onto client errors.
func (h *Handler) uploadError(c *fiber.Ctx, l *zap.Logger, name string, err error) error {
	var schemaErr *model.SchemaError
	switch {
	case errors.As(err, &schemaErr):
		l.Warn("Rules sheet rejected", zap.String("file", name), zap.Strings("missing_columns", schemaErr.Missing))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":           fmt.Sprintf("%s: %s", name, schemaErr.Error()),
			"source":          name,
			"missing_columns": schemaErr.Missing,
		})
	case errors.Is(err, sheet.ErrUnsupportedType):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("unsupported file type: %s", name),
		})
	default:
		l.Warn("Failed to parse upload", zap.String("file", name), zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to parse %s: %v", name, err),
		})
	}
}

// readUpload loads a multipart file into memory.
func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
