package portfolio

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/server/middleware"
	"portfolio-backend/internal/shared/server/respond"
	"portfolio-backend/internal/shared/telemetry"
	"portfolio-backend/linkedin"
)

// bodyOverhead allows for JSON quoting and escapes around the text field.
const bodyOverhead = 4 << 10

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches extraction and portfolio routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/linkedin/extract", h.extract)
	owned := rg.Group("", middleware.RequireIdentity())
	owned.POST("/portfolio/import", h.importText)
	owned.GET("/portfolio", h.get)
}

type textRequest struct {
	Text *string `json:"text"`
}

func (h *Handler) bindText(c *gin.Context) (string, bool) {
	limit := h.Svc.MaxTextBytes
	if limit <= 0 {
		limit = DefaultMaxTextBytes
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, 2*limit+bodyOverhead)

	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respond.Error(c, http.StatusRequestEntityTooLarge, ErrorCodeTooLarge, "request body too large", nil)
			return "", false
		}
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "invalid request body", nil)
		return "", false
	}
	if req.Text == nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "text is required", nil)
		return "", false
	}
	return *req.Text, true
}

func (h *Handler) extract(c *gin.Context) {
	text, ok := h.bindText(c)
	if !ok {
		return
	}
	res, err := h.Svc.Preview(text)
	if err != nil {
		h.fail(c, err)
		return
	}
	annotate(c, res)
	respond.OK(c, res)
}

func (h *Handler) importText(c *gin.Context) {
	text, ok := h.bindText(c)
	if !ok {
		return
	}
	p, res, err := h.Svc.ImportText(c.Request.Context(), middleware.UserIDFromContext(c), text)
	if err != nil {
		h.fail(c, err)
		return
	}
	annotate(c, res)
	respond.OK(c, ImportResponse{Portfolio: toResponse(p), Result: res})
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.Svc.Get(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	respond.OK(c, toResponse(p))
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, err.Error(), nil)
	case errors.Is(err, ErrTooLarge):
		respond.Error(c, http.StatusRequestEntityTooLarge, ErrorCodeTooLarge, err.Error(), nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, ErrorCodeNotFound, "portfolio not found", nil)
	default:
		telemetry.Error("portfolio.failed", map[string]any{
			"request_id": middleware.RequestIDFromContext(c),
			"error":      err.Error(),
		})
		respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "failed to process portfolio", nil)
	}
}

// annotate exposes the extraction outcome to the request log.
func annotate(c *gin.Context, res linkedin.Result) {
	c.Set(middleware.StrategyKey, res.Strategy)
	c.Set(middleware.ConfidenceKey, res.Confidence)
	c.Set(middleware.SkillsKey, len(res.Skills))
	c.Set(middleware.ExperienceKey, len(res.Experiences))
}
