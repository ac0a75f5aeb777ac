// models/api_models.go
package models

// GenerateDatasetRequest is the expected JSON body for POST /api/datasets.
// Omitted fields fall back to the configured defaults.
type GenerateDatasetRequest struct {
	Rows           *int   `json:"rows,omitempty"`
	Seed           *int64 `json:"seed,omitempty"` // nil means use the configured seed; 0 is a valid seed
	Output         string `json:"output"`         // file name relative to the configured output directory
	LegacySampling *bool  `json:"legacy_sampling,omitempty"`
	Load           bool   `json:"load"`
}

// GenerateDatasetResponse is returned after a dataset has been written.
type GenerateDatasetResponse struct {
	BatchID    string       `json:"batch_id"`
	OutputPath string       `json:"output_path"`
	Seed       int64        `json:"seed"`
	Loaded     bool         `json:"loaded"`
	Summary    Summary      `json:"summary"`
	Injections InjectionLog `json:"injections"`
}
