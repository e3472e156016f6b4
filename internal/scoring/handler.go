package scoring

import (
	"errors"
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"resume-scoring/internal/shared/server/middleware"
	"resume-scoring/internal/shared/server/respond"
)

const maxJobTextLength = 100_000

// Handler exposes the engine over HTTP.
type Handler struct {
	Engine *Engine
}

// NewHandler constructs a Handler.
func NewHandler(engine *Engine) *Handler {
	return &Handler{Engine: engine}
}

type scanRequest struct {
	JobText string `json:"jobText"`
}

// RegisterRoutes attaches scoring routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/assets/:id/scan", h.scan(OpMatch))
	rg.POST("/assets/:id/duplicate-scan", h.scan(OpDuplicate))
	rg.GET("/assets/:id/ats", h.ats)
	rg.POST("/assets/:id/critique", h.critique)
}

func (h *Handler) scan(op string) gin.HandlerFunc {
	return func(c *gin.Context) {
		assetID := c.Param("id")
		c.Set("assetId", assetID)
		c.Set("operation", op)

		var req scanRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
			return
		}
		if utf8.RuneCountInString(req.JobText) > maxJobTextLength {
			respond.Error(c, http.StatusBadRequest, "validation_error", "jobText is too long", map[string]any{
				"maxLength": maxJobTextLength,
			})
			return
		}

		ownerID := middleware.UserIDFromContext(c)
		var (
			result MatchResult
			err    error
		)
		if op == OpDuplicate {
			result, err = h.Engine.DuplicateScan(c.Request.Context(), ownerID, assetID, req.JobText)
		} else {
			result, err = h.Engine.ScanMatch(c.Request.Context(), ownerID, assetID, req.JobText)
		}
		if err != nil {
			writeError(c, err)
			return
		}
		respond.OK(c, result)
	}
}

func (h *Handler) ats(c *gin.Context) {
	assetID := c.Param("id")
	c.Set("assetId", assetID)
	c.Set("operation", OpATS)

	report, err := h.Engine.EvaluateATS(c.Request.Context(), middleware.UserIDFromContext(c), assetID)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, report)
}

func (h *Handler) critique(c *gin.Context) {
	assetID := c.Param("id")
	c.Set("assetId", assetID)
	c.Set("operation", OpCritique)

	report, err := h.Engine.CritiqueAsset(c.Request.Context(), middleware.UserIDFromContext(c), assetID)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, report)
}

func writeError(c *gin.Context, err error) {
	if errors.Is(err, ErrNotFound) {
		respond.Error(c, http.StatusNotFound, "not_found", "asset not found", nil)
		return
	}
	respond.Error(c, http.StatusInternalServerError, "internal_error", "scoring failed", nil)
}
