// database/run_store.go
package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gewnthar/flightqa/models"
)

// LogDatasetRun inserts a record in the dataset_runs table describing one generation run
// and the anomaly counts its output carried.
func LogDatasetRun(ctx context.Context, run models.DatasetRun) error {
	if DB == nil {
		return errNotInitialized
	}

	query := `
		INSERT INTO dataset_runs (
			batch_id, seed, row_count, legacy_sampling, output_path, loaded,
			null_departure_airport, null_arrival_airport, empty_aircraft_type,
			negative_passenger_count, revenue_below_fuel_cost, passenger_count_over_400,
			delay_over_1000, unknown_airport_code, duplicate_keys
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	s := run.Summary
	_, err := DB.ExecContext(ctx, query,
		run.BatchID, run.Seed, run.Rows, run.LegacySampling, run.OutputPath, run.Loaded,
		s.NullDepartureAirport, s.NullArrivalAirport, s.EmptyAircraftType,
		s.NegativePassengerCount, s.RevenueBelowFuelCost, s.PassengerCountOver400,
		s.DelayOver1000, s.UnknownAirportCode, s.DuplicateKeys,
	)
	if err != nil {
		slog.Error("failed to log dataset run", "component", "database", "batch_id", run.BatchID, "error", err)
		return fmt.Errorf("failed to log dataset run %s: %w", run.BatchID, err)
	}

	slog.Info("logged dataset run", "component", "database", "batch_id", run.BatchID, "rows", run.Rows)
	return nil
}

// GetDatasetRuns retrieves all records from the dataset_runs table, newest first.
func GetDatasetRuns(ctx context.Context) ([]models.DatasetRun, error) {
	if DB == nil {
		return nil, errNotInitialized
	}

	rows, err := DB.QueryContext(ctx, `
		SELECT id, batch_id, seed, row_count, legacy_sampling, output_path, loaded,
		       null_departure_airport, null_arrival_airport, empty_aircraft_type,
		       negative_passenger_count, revenue_below_fuel_cost, passenger_count_over_400,
		       delay_over_1000, unknown_airport_code, duplicate_keys, created_at
		FROM dataset_runs
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query dataset_runs: %w", err)
	}
	defer rows.Close()

	var runs []models.DatasetRun
	for rows.Next() {
		var r models.DatasetRun
		s := &r.Summary
		err := rows.Scan(
			&r.ID, &r.BatchID, &r.Seed, &r.Rows, &r.LegacySampling, &r.OutputPath, &r.Loaded,
			&s.NullDepartureAirport, &s.NullArrivalAirport, &s.EmptyAircraftType,
			&s.NegativePassengerCount, &s.RevenueBelowFuelCost, &s.PassengerCountOver400,
			&s.DelayOver1000, &s.UnknownAirportCode, &s.DuplicateKeys, &r.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dataset_runs row: %w", err)
		}
		s.TotalRows = r.Rows
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating dataset_runs rows: %w", err)
	}
	return runs, nil
}
