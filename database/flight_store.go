// database/flight_store.go
package database

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gewnthar/flightqa/models"
)

// insertFlightRecord binds batch_id and row_index followed by the record in output column order.
var insertFlightRecord = fmt.Sprintf(
	"INSERT INTO flight_records (batch_id, row_index, %s) VALUES (?, ?%s)",
	strings.Join(models.FlightColumns, ", "),
	strings.Repeat(", ?", len(models.FlightColumns)),
)

// SaveFlightRecords saves a generated batch to flight_records.
// Uses a "clear and load" strategy for the given batchID so reloading a batch is idempotent.
func SaveFlightRecords(ctx context.Context, batchID string, records []models.FlightRecord) error {
	if DB == nil {
		return errNotInitialized
	}
	if len(records) == 0 {
		slog.Info("no flight records provided to save", "component", "database", "batch_id", batchID)
		return nil
	}

	tx, err := DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for flight records: %w", err)
	}
	defer tx.Rollback()

	// Step 1: Delete existing rows for this batch.
	if _, err := tx.ExecContext(ctx, "DELETE FROM flight_records WHERE batch_id = ?", batchID); err != nil {
		return fmt.Errorf("failed to delete old flight records for batch %s: %w", batchID, err)
	}

	// Step 2: Insert the batch.
	stmt, err := tx.PrepareContext(ctx, insertFlightRecord)
	if err != nil {
		return fmt.Errorf("failed to prepare flight record insert statement: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		_, err := stmt.ExecContext(ctx,
			batchID, i, r.FlightID, r.FlightDate, r.DepartureAirport, r.ArrivalAirport,
			r.ScheduledDeparture, r.ActualDeparture, r.DelayMinutes, r.PassengerCount,
			r.AircraftType, r.TicketRevenue, r.FuelCost, string(r.Status),
		)
		if err != nil {
			return fmt.Errorf("failed to insert flight %s (row %d): %w", r.FlightID, i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction for flight records: %w", err)
	}

	slog.Info("saved flight records", "component", "database", "batch_id", batchID, "rows", len(records))
	return nil
}

// CountFlightRecords returns the number of stored rows for a batch.
func CountFlightRecords(ctx context.Context, batchID string) (int, error) {
	if DB == nil {
		return 0, errNotInitialized
	}
	var count int
	err := DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM flight_records WHERE batch_id = ?", batchID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count flight records for batch %s: %w", batchID, err)
	}
	return count, nil
}
