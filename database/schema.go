// database/schema.go
package database

import (
	"context"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS flight_records (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		batch_id CHAR(36) NOT NULL,
		row_index INT NOT NULL,
		flight_id VARCHAR(16) NOT NULL,
		flight_date DATE NOT NULL,
		departure_airport CHAR(3) NULL,
		arrival_airport CHAR(3) NULL,
		scheduled_departure DATETIME NOT NULL,
		actual_departure DATETIME NULL,
		delay_minutes INT NULL,
		passenger_count INT NOT NULL,
		aircraft_type VARCHAR(8) NOT NULL,
		ticket_revenue DOUBLE NOT NULL,
		fuel_cost DOUBLE NOT NULL,
		status VARCHAR(16) NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		INDEX idx_flight_records_batch (batch_id),
		INDEX idx_flight_records_key (flight_id, flight_date)
	)`,
	`CREATE TABLE IF NOT EXISTS dataset_runs (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		batch_id CHAR(36) NOT NULL UNIQUE,
		seed BIGINT NOT NULL,
		row_count INT NOT NULL,
		legacy_sampling BOOLEAN NOT NULL,
		output_path VARCHAR(1024) NOT NULL,
		loaded BOOLEAN NOT NULL,
		null_departure_airport INT NOT NULL,
		null_arrival_airport INT NOT NULL,
		empty_aircraft_type INT NOT NULL,
		negative_passenger_count INT NOT NULL,
		revenue_below_fuel_cost INT NOT NULL,
		passenger_count_over_400 INT NOT NULL,
		delay_over_1000 INT NOT NULL,
		unknown_airport_code INT NOT NULL DEFAULT 0,
		duplicate_keys INT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
}

// EnsureSchema creates the flight_records and dataset_runs tables when missing.
func EnsureSchema(ctx context.Context) error {
	if DB == nil {
		return errNotInitialized
	}
	for _, stmt := range schemaStatements {
		if _, err := DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
