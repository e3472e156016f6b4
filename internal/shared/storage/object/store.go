package object

import (
	"context"
	"errors"
	"io"
	"path"

	"resume-scoring/internal/shared/util"
)

// ErrNotFound is returned when no object exists under a key.
var ErrNotFound = errors.New("object not found")

// Store persists opaque binary objects under caller-chosen keys.
type Store interface {
	Put(ctx context.Context, key, contentType string, r io.Reader) (sizeBytes int64, err error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// SourceKey is the key an imported file is archived under:
// sources/<owner hash>/<asset id>/<sanitized file name>.
func SourceKey(ownerID, assetID, fileName string) (string, error) {
	name, err := util.SanitizeFileName(fileName)
	if err != nil {
		return "", err
	}
	return path.Join("sources", util.HashOwnerKey(ownerID), assetID, name), nil
}
