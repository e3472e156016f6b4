package assets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"resume-scoring/internal/extract"
	"resume-scoring/internal/shared/storage/object"
	"resume-scoring/internal/shared/telemetry"
	"resume-scoring/internal/shared/util"
)

// CreateInput is the caller-supplied part of a new asset.
type CreateInput struct {
	Kind    string         `validate:"required,oneof=resume cover_letter profile"`
	Title   string         `validate:"required,max=200"`
	Content map[string]any `validate:"required"`
}

// Service contains business logic for assets.
type Service struct {
	Repo Repo
	// Sources archives imported files. Nil disables archiving.
	Sources  object.Store
	validate *validator.Validate
	now      func() time.Time
}

// NewService constructs a Service over repo.
func NewService(repo Repo) *Service {
	return &Service{
		Repo:     repo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Create validates input and stores a new asset owned by ownerID.
func (s *Service) Create(ctx context.Context, ownerID string, in CreateInput) (Asset, error) {
	if strings.TrimSpace(ownerID) == "" {
		return Asset{}, fmt.Errorf("%w: owner id required", ErrInvalidInput)
	}
	in.Kind = strings.ToLower(strings.TrimSpace(in.Kind))
	in.Title = strings.TrimSpace(in.Title)
	if err := s.validate.Struct(in); err != nil {
		return Asset{}, fmt.Errorf("%w: %s", ErrInvalidInput, describeValidation(err))
	}

	now := s.now()
	asset := Asset{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Kind:      in.Kind,
		Title:     in.Title,
		Content:   in.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, asset); err != nil {
		return Asset{}, err
	}
	return asset, nil
}

// Import extracts text from an uploaded file and stores it as a resume asset
// whose content is {"text": <extracted text>}.
func (s *Service) Import(ctx context.Context, ownerID, fileName, mimeType string, data []byte) (Asset, error) {
	if strings.TrimSpace(fileName) == "" || len(data) == 0 {
		return Asset{}, fmt.Errorf("%w: file is required", ErrInvalidInput)
	}
	fileName, err := util.SanitizeFileName(fileName)
	if err != nil {
		return Asset{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	text, err := extract.ExtractTextFromBytes(ctx, data, mimeType, fileName)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupported) {
			return Asset{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return Asset{}, fmt.Errorf("extract %s: %w", fileName, err)
	}

	title := strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName))
	if len(title) > 200 {
		title = title[:200]
	}
	if title == "" {
		title = "Imported resume"
	}

	now := s.now()
	asset := Asset{
		ID:             uuid.NewString(),
		OwnerID:        ownerID,
		Kind:           KindResume,
		Title:          title,
		Content:        map[string]any{"text": text},
		SourceFileName: fileName,
		SourceMimeType: extract.NormalizeMimeType(mimeType, fileName, data),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if s.Sources != nil {
		key, err := object.SourceKey(ownerID, asset.ID, fileName)
		if err != nil {
			return Asset{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		size, err := s.Sources.Put(ctx, key, asset.SourceMimeType, bytes.NewReader(data))
		if err != nil {
			return Asset{}, fmt.Errorf("archive source file: %w", err)
		}
		asset.SourceObjectKey = key
		telemetry.Debug("assets.source.archived", map[string]any{
			"asset_id":   asset.ID,
			"size_bytes": size,
		})
	}

	if err := s.Repo.Create(ctx, asset); err != nil {
		return Asset{}, err
	}
	return asset, nil
}

// Get returns an asset owned by ownerID.
func (s *Service) Get(ctx context.Context, ownerID, assetID string) (Asset, error) {
	if ownerID == "" || assetID == "" {
		return Asset{}, ErrNotFound
	}
	return s.Repo.GetByID(ctx, ownerID, assetID)
}

// OpenSource returns the archived upload behind an imported asset.
// Callers must close the reader.
func (s *Service) OpenSource(ctx context.Context, ownerID, assetID string) (Asset, io.ReadCloser, error) {
	asset, err := s.Get(ctx, ownerID, assetID)
	if err != nil {
		return Asset{}, nil, err
	}
	if s.Sources == nil || asset.SourceObjectKey == "" {
		return Asset{}, nil, fmt.Errorf("%w: no source file", ErrNotFound)
	}
	rc, err := s.Sources.Open(ctx, asset.SourceObjectKey)
	if err != nil {
		if errors.Is(err, object.ErrNotFound) {
			return Asset{}, nil, fmt.Errorf("%w: source file missing", ErrNotFound)
		}
		return Asset{}, nil, err
	}
	return asset, rc, nil
}

// List returns assets for an owner ordered newest-first.
func (s *Service) List(ctx context.Context, ownerID string, limit, offset int) ([]Asset, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner id required", ErrInvalidInput)
	}
	return s.Repo.ListByOwner(ctx, ownerID, limit, offset)
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			parts = append(parts, field+" is required")
		case "oneof":
			parts = append(parts, field+" must be one of: "+strings.ReplaceAll(fe.Param(), " ", ", "))
		case "max":
			parts = append(parts, field+" must be at most "+fe.Param()+" characters")
		default:
			parts = append(parts, field+" is invalid")
		}
	}
	return strings.Join(parts, "; ")
}
