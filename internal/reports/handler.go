package reports

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-scoring/internal/scoring"
	"resume-scoring/internal/shared/server/middleware"
	"resume-scoring/internal/shared/server/respond"
)

// AssetFinder resolves an asset for its owner.
type AssetFinder interface {
	FindOwnedAsset(ctx context.Context, ownerID, assetID string) (scoring.Asset, error)
}

// LatestResponse groups the most recent result of each operation. Operations
// that never ran, or whose result expired, are null.
type LatestResponse struct {
	AssetID   string          `json:"assetId"`
	Match     json.RawMessage `json:"match"`
	Duplicate json.RawMessage `json:"duplicate"`
	ATS       json.RawMessage `json:"ats"`
	Critique  json.RawMessage `json:"critique"`
}

// Handler serves stored reports.
type Handler struct {
	Store  Store
	Assets AssetFinder
}

// NewHandler constructs a Handler.
func NewHandler(store Store, finder AssetFinder) *Handler {
	return &Handler{Store: store, Assets: finder}
}

// RegisterRoutes attaches report routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/assets/:id/reports/latest", h.latest)
}

func (h *Handler) latest(c *gin.Context) {
	assetID := c.Param("id")
	c.Set("assetId", assetID)

	if _, err := h.Assets.FindOwnedAsset(c.Request.Context(), middleware.UserIDFromContext(c), assetID); err != nil {
		if errors.Is(err, scoring.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "asset not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch asset", nil)
		return
	}

	stored, err := h.Store.Latest(c.Request.Context(), assetID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load reports", nil)
		return
	}

	respond.OK(c, LatestResponse{
		AssetID:   assetID,
		Match:     stored[scoring.OpMatch],
		Duplicate: stored[scoring.OpDuplicate],
		ATS:       stored[scoring.OpATS],
		Critique:  stored[scoring.OpCritique],
	})
}
