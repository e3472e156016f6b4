package assets

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-scoring/internal/shared/server/middleware"
	"resume-scoring/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches asset routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/assets", h.create)
	rg.POST("/assets/import", h.importFile)
	rg.GET("/assets", h.list)
	rg.GET("/assets/:id", h.get)
	rg.GET("/assets/:id/source", h.source)
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	asset, err := h.Svc.Create(c.Request.Context(), userID, CreateInput{
		Kind:    req.Kind,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		h.writeError(c, err, "failed to create asset")
		return
	}

	c.Set("assetId", asset.ID)
	respond.Created(c, assetLocation(c, asset.ID), toResponse(asset))
}

func (h *Handler) importFile(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}

	asset, err := h.Svc.Import(c.Request.Context(), userID, fileHeader.Filename, fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		h.writeError(c, err, "failed to import asset")
		return
	}

	c.Set("assetId", asset.ID)
	respond.Created(c, assetLocation(c, asset.ID), toResponse(asset))
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	assetID := c.Param("id")
	c.Set("assetId", assetID)

	asset, err := h.Svc.Get(c.Request.Context(), userID, assetID)
	if err != nil {
		h.writeError(c, err, "failed to fetch asset")
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(asset))
}

func (h *Handler) source(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	assetID := c.Param("id")
	c.Set("assetId", assetID)

	asset, rc, err := h.Svc.OpenSource(c.Request.Context(), userID, assetID)
	if err != nil {
		h.writeError(c, err, "failed to open source file")
		return
	}
	defer rc.Close()

	contentType := asset.SourceMimeType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.DataFromReader(http.StatusOK, -1, contentType, rc, map[string]string{
		"Content-Disposition": mime.FormatMediaType("attachment", map[string]string{"filename": asset.SourceFileName}),
	})
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	limit := 20
	offset := 0

	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if limit > 50 {
		limit = 50
	}

	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	items, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		h.writeError(c, err, "failed to list assets")
		return
	}

	resp := make([]AssetSummary, 0, len(items))
	for _, a := range items {
		resp = append(resp, toSummary(a))
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "asset not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}

func assetLocation(c *gin.Context, assetID string) string {
	return strings.TrimSuffix(c.FullPath(), "/import") + "/" + assetID
}
