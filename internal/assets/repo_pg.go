package assets

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const selectAssetColumns = `id, owner_id, kind, title, content, health_score, source_file_name, source_mime_type, source_object_key, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

// Create inserts a new asset.
func (r *PGRepo) Create(ctx context.Context, asset Asset) error {
	const query = `
INSERT INTO assets (
    id,
    owner_id,
    kind,
    title,
    content,
    health_score,
    source_file_name,
    source_mime_type,
    source_object_key,
    created_at,
    updated_at
) VALUES ($1, $2, $3, $4, $5, NULL, $6, $7, $8, $9, $10)`

	content := asset.Content
	if content == nil {
		content = map[string]any{}
	}
	payload, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("marshal asset content: %w", err)
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		asset.ID,
		asset.OwnerID,
		asset.Kind,
		asset.Title,
		payload,
		nullString(asset.SourceFileName),
		nullString(asset.SourceMimeType),
		nullString(asset.SourceObjectKey),
		asset.CreatedAt,
		asset.UpdatedAt,
	)
	return err
}

// GetByID fetches an asset by ID for its owner.
func (r *PGRepo) GetByID(ctx context.Context, ownerID, assetID string) (Asset, error) {
	query := `
SELECT ` + selectAssetColumns + `
FROM assets
WHERE owner_id = $1 AND id = $2 AND deleted_at IS NULL
LIMIT 1`
	asset, err := scanAsset(r.DB.QueryRowContext(ctx, query, ownerID, assetID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Asset{}, ErrNotFound
		}
		return Asset{}, err
	}
	return asset, nil
}

// ListByOwner lists assets ordered newest-first.
func (r *PGRepo) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]Asset, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	query := `
SELECT ` + selectAssetColumns + `
FROM assets
WHERE owner_id = $1 AND deleted_at IS NULL
ORDER BY created_at DESC, id
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Asset{}
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, asset)
	}
	return out, rows.Err()
}

// UpdateHealthScore overwrites the persisted health score in a single statement.
func (r *PGRepo) UpdateHealthScore(ctx context.Context, assetID string, score int) error {
	const query = `
UPDATE assets
SET health_score = $1, updated_at = $2
WHERE id = $3 AND deleted_at IS NULL`
	res, err := r.DB.ExecContext(ctx, query, score, time.Now().UTC(), assetID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func scanAsset(row rowScanner) (Asset, error) {
	var asset Asset
	var content []byte
	var healthScore sql.NullInt64
	var sourceFileName sql.NullString
	var sourceMimeType sql.NullString
	var sourceObjectKey sql.NullString
	if err := row.Scan(
		&asset.ID,
		&asset.OwnerID,
		&asset.Kind,
		&asset.Title,
		&content,
		&healthScore,
		&sourceFileName,
		&sourceMimeType,
		&sourceObjectKey,
		&asset.CreatedAt,
		&asset.UpdatedAt,
	); err != nil {
		return Asset{}, err
	}
	asset.Content = map[string]any{}
	if len(content) > 0 {
		if err := json.Unmarshal(content, &asset.Content); err != nil {
			return Asset{}, fmt.Errorf("decode asset content: %w", err)
		}
	}
	if healthScore.Valid {
		score := int(healthScore.Int64)
		asset.HealthScore = &score
	}
	if sourceFileName.Valid {
		asset.SourceFileName = sourceFileName.String
	}
	if sourceMimeType.Valid {
		asset.SourceMimeType = sourceMimeType.String
	}
	if sourceObjectKey.Valid {
		asset.SourceObjectKey = sourceObjectKey.String
	}
	return asset, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

var _ Repo = (*PGRepo)(nil)
