package assets

import "time"

const (
	KindResume      = "resume"
	KindCoverLetter = "cover_letter"
	KindProfile     = "profile"
)

// Asset is a structured document owned by a single user. Content is opaque to
// this package; only HealthScore is written after creation.
type Asset struct {
	ID              string
	OwnerID         string
	Kind            string
	Title           string
	Content         map[string]any
	HealthScore     *int
	SourceFileName  string
	SourceMimeType  string
	SourceObjectKey string // archived upload, imported assets only
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
