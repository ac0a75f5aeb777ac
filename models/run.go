// models/run.go
package models

import "time"

// DatasetRun records one generation run in the dataset_runs table.
type DatasetRun struct {
	ID             int64     `db:"id" json:"id"`
	BatchID        string    `db:"batch_id" json:"batch_id"`
	Seed           int64     `db:"seed" json:"seed"`
	Rows           int       `db:"row_count" json:"rows"`
	LegacySampling bool      `db:"legacy_sampling" json:"legacy_sampling"`
	OutputPath     string    `db:"output_path" json:"output_path"`
	Loaded         bool      `db:"loaded" json:"loaded"` // records were written to flight_records
	Summary        Summary   `db:"-" json:"summary"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}
