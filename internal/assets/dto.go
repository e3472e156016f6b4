package assets

import "time"

// AssetResponse is the outward-facing representation of an asset.
type AssetResponse struct {
	AssetID     string         `json:"assetId"`
	Kind        string         `json:"kind"`
	Title       string         `json:"title"`
	Content     map[string]any `json:"content"`
	HealthScore *int           `json:"healthScore"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// AssetSummary is the list-view representation of an asset.
type AssetSummary struct {
	AssetID     string    `json:"assetId"`
	Kind        string    `json:"kind"`
	Title       string    `json:"title"`
	HealthScore *int      `json:"healthScore"`
	CreatedAt   time.Time `json:"createdAt"`
}

type createRequest struct {
	Kind    string         `json:"kind"`
	Title   string         `json:"title"`
	Content map[string]any `json:"content"`
}

func toResponse(a Asset) AssetResponse {
	content := a.Content
	if content == nil {
		content = map[string]any{}
	}
	return AssetResponse{
		AssetID:     a.ID,
		Kind:        a.Kind,
		Title:       a.Title,
		Content:     content,
		HealthScore: a.HealthScore,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func toSummary(a Asset) AssetSummary {
	return AssetSummary{
		AssetID:     a.ID,
		Kind:        a.Kind,
		Title:       a.Title,
		HealthScore: a.HealthScore,
		CreatedAt:   a.CreatedAt,
	}
}
