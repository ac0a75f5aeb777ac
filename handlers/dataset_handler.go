// handlers/dataset_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gewnthar/flightqa/config"
	"github.com/gewnthar/flightqa/database"
	"github.com/gewnthar/flightqa/models"
	"github.com/gewnthar/flightqa/services"
)

const maxRequestBodyBytes = 1 << 20

// GenerateDatasetHandler generates a dataset and writes it to disk.
// Expects POST /api/datasets with a models.GenerateDatasetRequest body; omitted fields use the configured defaults.
func GenerateDatasetHandler(w http.ResponseWriter, r *http.Request) {
	var body models.GenerateDatasetRequest
	if r.ContentLength != 0 {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
			return
		}
	}

	defaults := config.AppConfig
	req := services.GenerateRequest{
		Rows:           defaults.Generator.Rows,
		Seed:           defaults.Generator.Seed,
		Epoch:          defaults.Generator.Epoch,
		LegacySampling: defaults.Generator.LegacySampling,
		OutputPath:     defaults.Output.Path,
		Load:           body.Load,
	}
	if body.Rows != nil {
		req.Rows = *body.Rows
	}
	if body.Seed != nil {
		req.Seed = *body.Seed
	}
	if body.LegacySampling != nil {
		req.LegacySampling = *body.LegacySampling
	}
	if body.Output != "" {
		path, err := resolveDataPath(body.Output)
		if err != nil {
			respondWithError(w, statusForError(err), err.Error())
			return
		}
		req.OutputPath = path
	}

	result, err := services.GenerateDataset(r.Context(), req)
	if err != nil {
		respondWithError(w, statusForError(err), err.Error())
		return
	}

	respondWithJSON(w, http.StatusCreated, models.GenerateDatasetResponse{
		BatchID:    result.BatchID,
		OutputPath: result.OutputPath,
		Seed:       result.Seed,
		Loaded:     result.Loaded,
		Summary:    result.Summary,
		Injections: result.Injections,
	})
}

// DatasetSummaryHandler handles GET /api/datasets/summary?path=... and returns the anomaly
// counts of an existing dataset file. path names a file in the output directory; without it
// the configured output file is used.
func DatasetSummaryHandler(w http.ResponseWriter, r *http.Request) {
	path := config.AppConfig.Output.Path
	if name := r.URL.Query().Get("path"); name != "" {
		resolved, err := resolveDataPath(name)
		if err != nil {
			respondWithError(w, statusForError(err), err.Error())
			return
		}
		path = resolved
	}

	summary, err := services.SummarizeFile(path)
	if err != nil {
		respondWithError(w, statusForError(err), err.Error())
		return
	}
	respondWithJSON(w, http.StatusOK, summary)
}

// ListDatasetRunsHandler handles GET /api/datasets/runs.
func ListDatasetRunsHandler(w http.ResponseWriter, r *http.Request) {
	runs, err := database.GetDatasetRuns(r.Context())
	if err != nil {
		respondWithError(w, statusForError(err), err.Error())
		return
	}
	if runs == nil {
		runs = []models.DatasetRun{}
	}
	respondWithJSON(w, http.StatusOK, runs)
}
