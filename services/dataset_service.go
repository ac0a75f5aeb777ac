// services/dataset_service.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gewnthar/flightqa/apperrors"
	"github.com/gewnthar/flightqa/database"
	"github.com/gewnthar/flightqa/dataset"
	"github.com/gewnthar/flightqa/generator"
	"github.com/gewnthar/flightqa/models"
)

// GenerateRequest describes one dataset generation run.
type GenerateRequest struct {
	Rows           int
	Seed           int64
	Epoch          time.Time
	LegacySampling bool
	OutputPath     string
	// Load also writes the batch to flight_records. Requires an initialized database.
	Load bool
}

// GenerationResult is what a caller gets back after the file is in place.
type GenerationResult struct {
	BatchID    string
	OutputPath string
	Seed       int64
	Loaded     bool
	Summary    models.Summary
	Injections models.InjectionLog
}

// GenerateDataset generates the table, writes it to req.OutputPath, optionally loads it into
// the database and records the run when a database is available.
func GenerateDataset(ctx context.Context, req GenerateRequest) (*GenerationResult, error) {
	opts := generator.Options{
		Rows:           req.Rows,
		Seed:           req.Seed,
		Epoch:          req.Epoch,
		LegacySampling: req.LegacySampling,
	}
	// Reject bad input and an unusable destination before generating anything.
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := dataset.CheckDestination(req.OutputPath); err != nil {
		return nil, err
	}
	if req.Load && !database.Enabled() {
		return nil, apperrors.Configuration("cannot load dataset: database is not enabled", nil)
	}

	start := time.Now()
	ds, err := generator.Generate(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to generate dataset: %w", err)
	}

	if err := dataset.WriteFile(req.OutputPath, ds.Records); err != nil {
		return nil, fmt.Errorf("failed to write dataset: %w", err)
	}

	result := &GenerationResult{
		BatchID:    uuid.NewString(),
		OutputPath: req.OutputPath,
		Seed:       req.Seed,
		Summary:    generator.Summarize(ds.Records),
		Injections: ds.Injections,
	}

	if req.Load {
		if err := database.SaveFlightRecords(ctx, result.BatchID, ds.Records); err != nil {
			return nil, fmt.Errorf("failed to load dataset: %w", err)
		}
		result.Loaded = true
	}

	if database.Enabled() {
		run := models.DatasetRun{
			BatchID:        result.BatchID,
			Seed:           req.Seed,
			Rows:           req.Rows,
			LegacySampling: req.LegacySampling,
			OutputPath:     req.OutputPath,
			Loaded:         result.Loaded,
			Summary:        result.Summary,
		}
		// The file is already written; a ledger failure is reported but not fatal.
		if err := database.LogDatasetRun(ctx, run); err != nil {
			slog.Warn("dataset written but run was not logged", "component", "service", "batch_id", result.BatchID, "error", err)
		}
	}

	slog.Debug("injected defects", "component", "service", "batch_id", result.BatchID, "injections", ds.Injections)
	slog.Info("generated flight dataset",
		"component", "service",
		"batch_id", result.BatchID,
		"path", result.OutputPath,
		"rows", result.Summary.TotalRows,
		"seed", req.Seed,
		"loaded", result.Loaded,
		"elapsed", time.Since(start),
	)
	return result, nil
}

// SummarizeFile decodes an existing dataset file and counts its anomalies.
func SummarizeFile(path string) (models.Summary, error) {
	records, err := dataset.ReadFile(path)
	if err != nil {
		return models.Summary{}, err
	}
	return generator.Summarize(records), nil
}

// LoadResult describes a file loaded into the database.
type LoadResult struct {
	BatchID string
	Rows    int // rows stored under BatchID, as counted after the load
}

// LoadFile loads an existing dataset file into the database as a new batch.
func LoadFile(ctx context.Context, path string) (*LoadResult, error) {
	if !database.Enabled() {
		return nil, apperrors.Configuration("cannot load dataset: database is not enabled", nil)
	}
	records, err := dataset.ReadFile(path)
	if err != nil {
		return nil, err
	}
	batchID := uuid.NewString()
	if err := database.SaveFlightRecords(ctx, batchID, records); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	stored, err := database.CountFlightRecords(ctx, batchID)
	if err != nil {
		return nil, err
	}
	if stored != len(records) {
		return nil, fmt.Errorf("batch %s stored %d of %d rows from %s", batchID, stored, len(records), path)
	}
	return &LoadResult{BatchID: batchID, Rows: stored}, nil
}
