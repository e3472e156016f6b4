package scoring

import (
	"context"
	"errors"
	"fmt"
	"time"

	"resume-scoring/internal/shared/metrics"
	"resume-scoring/internal/shared/telemetry"
)

// AssetStore is the persistence capability the engine depends on.
type AssetStore interface {
	// FindOwnedAsset returns ErrNotFound when the asset is missing or owned by someone else.
	FindOwnedAsset(ctx context.Context, ownerID, assetID string) (Asset, error)
	UpdateHealthScore(ctx context.Context, assetID string, score int) error
}

// Recorder keeps the latest result of each operation for an asset.
type Recorder interface {
	Record(ctx context.Context, assetID, operation string, payload any) error
}

// Engine runs the scoring operations against stored assets. It holds no
// mutable state and is safe for concurrent use.
type Engine struct {
	Store    AssetStore
	Recorder Recorder
}

// NewEngine constructs an Engine. recorder may be nil.
func NewEngine(store AssetStore, recorder Recorder) *Engine {
	return &Engine{Store: store, Recorder: recorder}
}

// ScanMatch scores the asset against the keywords of jobText.
func (e *Engine) ScanMatch(ctx context.Context, ownerID, assetID, jobText string) (MatchResult, error) {
	return e.scan(ctx, OpMatch, ownerID, assetID, jobText)
}

// DuplicateScan has the same contract as ScanMatch but is recorded and
// measured under its own operation name.
func (e *Engine) DuplicateScan(ctx context.Context, ownerID, assetID, jobText string) (MatchResult, error) {
	return e.scan(ctx, OpDuplicate, ownerID, assetID, jobText)
}

func (e *Engine) scan(ctx context.Context, op, ownerID, assetID, jobText string) (MatchResult, error) {
	start := time.Now()
	asset, err := e.Store.FindOwnedAsset(ctx, ownerID, assetID)
	if err != nil {
		e.observe(op, start, err)
		return MatchResult{}, err
	}

	result := scoreMatch(asset.ID, serializeContent(asset.Content), jobText)
	e.record(ctx, asset.ID, op, result)
	e.observe(op, start, nil)
	return result, nil
}

// EvaluateATS runs the weighted ATS checklist over the asset content.
func (e *Engine) EvaluateATS(ctx context.Context, ownerID, assetID string) (ATSReport, error) {
	start := time.Now()
	asset, err := e.Store.FindOwnedAsset(ctx, ownerID, assetID)
	if err != nil {
		e.observe(OpATS, start, err)
		return ATSReport{}, err
	}

	report := evaluateATS(asset.ID, serializeContent(asset.Content))
	e.record(ctx, asset.ID, OpATS, report)
	e.observe(OpATS, start, nil)
	return report, nil
}

// CritiqueAsset computes the health sub-scores and persists the overall score
// on the asset. A failed write fails the call.
func (e *Engine) CritiqueAsset(ctx context.Context, ownerID, assetID string) (CritiqueReport, error) {
	start := time.Now()
	asset, err := e.Store.FindOwnedAsset(ctx, ownerID, assetID)
	if err != nil {
		e.observe(OpCritique, start, err)
		return CritiqueReport{}, err
	}

	report := critiqueContent(asset.ID, serializeContent(asset.Content))
	if err := e.Store.UpdateHealthScore(ctx, asset.ID, report.OverallScore); err != nil {
		telemetry.Error("scoring.health_score.persist_failed", map[string]any{
			"asset_id": asset.ID,
			"score":    report.OverallScore,
			"error":    err,
		})
		err = fmt.Errorf("persist health score: %w", err)
		e.observe(OpCritique, start, err)
		return CritiqueReport{}, err
	}
	metrics.ObserveHealthScore(report.OverallScore)

	e.record(ctx, asset.ID, OpCritique, report)
	e.observe(OpCritique, start, nil)
	return report, nil
}

func (e *Engine) record(ctx context.Context, assetID, op string, payload any) {
	if e.Recorder == nil {
		return
	}
	if err := e.Recorder.Record(ctx, assetID, op, payload); err != nil {
		telemetry.Warn("scoring.report.record_failed", map[string]any{
			"asset_id":  assetID,
			"operation": op,
			"error":     err,
		})
	}
}

func (e *Engine) observe(op string, start time.Time, err error) {
	outcome := metrics.OutcomeOK
	switch {
	case err == nil:
	case errors.Is(err, ErrNotFound):
		outcome = metrics.OutcomeNotFound
	default:
		outcome = metrics.OutcomeError
	}
	metrics.ObserveOperation(op, outcome, time.Since(start))
}
