package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"resume-scoring/internal/assets"
	"resume-scoring/internal/bootstrap"
	"resume-scoring/internal/scoring"
)

const localOwner = "local"

// assetFile is the on-disk asset format. When "content" is absent the whole
// document is used as content.
type assetFile struct {
	ID      string         `json:"assetId"`
	Kind    string         `json:"kind"`
	Title   string         `json:"title"`
	Content map[string]any `json:"content"`
}

func newMatchCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Score an asset against a job description",
		RunE: func(cmd *cobra.Command, _ []string) error {
			jobText, err := readJobText(v)
			if err != nil {
				return err
			}
			engine, assetID, err := loadEngine(cmd.Context(), v.GetString("asset"))
			if err != nil {
				return err
			}
			result, err := engine.ScanMatch(cmd.Context(), localOwner, assetID, jobText)
			if err != nil {
				return err
			}
			return writeJSON(cmd, result)
		},
	}
	cmd.Flags().String("job", "", "path to a job description text file")
	cmd.Flags().String("job-text", "", "job description text")
	_ = v.BindPFlag("job", cmd.Flags().Lookup("job"))
	_ = v.BindPFlag("job-text", cmd.Flags().Lookup("job-text"))
	return cmd
}

func newATSCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "ats",
		Short: "Run the ATS checklist over an asset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, assetID, err := loadEngine(cmd.Context(), v.GetString("asset"))
			if err != nil {
				return err
			}
			report, err := engine.EvaluateATS(cmd.Context(), localOwner, assetID)
			if err != nil {
				return err
			}
			return writeJSON(cmd, report)
		},
	}
}

func newCritiqueCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "critique",
		Short: "Compute the health critique of an asset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, assetID, err := loadEngine(cmd.Context(), v.GetString("asset"))
			if err != nil {
				return err
			}
			report, err := engine.CritiqueAsset(cmd.Context(), localOwner, assetID)
			if err != nil {
				return err
			}
			return writeJSON(cmd, report)
		},
	}
}

func readJobText(v *viper.Viper) (string, error) {
	if text := v.GetString("job-text"); text != "" {
		return text, nil
	}
	path := v.GetString("job")
	if path == "" {
		return "", errors.New("one of --job or --job-text is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read job file: %w", err)
	}
	return string(data), nil
}

// loadEngine reads the asset file into an in-memory repo and returns an engine over it.
func loadEngine(ctx context.Context, path string) (*scoring.Engine, string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if strings.TrimSpace(path) == "" {
		return nil, "", errors.New("--asset is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read asset file: %w", err)
	}

	var file assetFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, "", fmt.Errorf("decode asset file: %w", err)
	}
	if file.Content == nil {
		if err := json.Unmarshal(data, &file.Content); err != nil {
			return nil, "", fmt.Errorf("decode asset content: %w", err)
		}
	}
	if file.ID == "" {
		file.ID = "local-asset"
	}
	if file.Kind == "" {
		file.Kind = assets.KindResume
	}

	repo := assets.NewMemoryRepo()
	now := time.Now().UTC()
	if err := repo.Create(ctx, assets.Asset{
		ID:        file.ID,
		OwnerID:   localOwner,
		Kind:      file.Kind,
		Title:     file.Title,
		Content:   file.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}); err != nil {
		return nil, "", err
	}
	return scoring.NewEngine(bootstrap.NewScoringStore(repo), nil), file.ID, nil
}

func writeJSON(cmd *cobra.Command, payload any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
