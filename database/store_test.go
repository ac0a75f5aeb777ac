package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gewnthar/flightqa/apperrors"
	"github.com/gewnthar/flightqa/config"
	"github.com/gewnthar/flightqa/models"
)

func withMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	DB = db
	t.Cleanup(func() {
		db.Close()
		DB = nil
	})
	return mock
}

func sampleRecords() []models.FlightRecord {
	day := time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)
	return []models.FlightRecord{
		{
			FlightID:           "LO0001",
			FlightDate:         models.Date{Time: day},
			DepartureAirport:   models.SomeString("WAW"),
			ArrivalAirport:     models.SomeString("ORD"),
			ScheduledDeparture: models.Timestamp{Time: day.Add(9 * time.Hour)},
			ActualDeparture:    models.SomeTime(day.Add(9*time.Hour + 20*time.Minute)),
			DelayMinutes:       models.SomeInt(20),
			PassengerCount:     210,
			AircraftType:       "B787",
			TicketRevenue:      310000.25,
			FuelCost:           72000.5,
			Status:             models.StatusDelayed,
		},
		{
			FlightID:           "LO0002",
			FlightDate:         models.Date{Time: day},
			ScheduledDeparture: models.Timestamp{Time: day.Add(14 * time.Hour)},
			PassengerCount:     -10,
			TicketRevenue:      20000,
			FuelCost:           40000,
			Status:             models.StatusCancelled,
		},
	}
}

func TestSaveFlightRecords(t *testing.T) {
	mock := withMockDB(t)
	records := sampleRecords()
	day := records[0].FlightDate.Time

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM flight_records WHERE batch_id = ?").
		WithArgs("batch-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	prep := mock.ExpectPrepare("INSERT INTO flight_records")
	prep.ExpectExec().
		WithArgs("batch-1", 0, "LO0001", day, "WAW", "ORD",
			day.Add(9*time.Hour), day.Add(9*time.Hour+20*time.Minute), 20, 210,
			"B787", 310000.25, 72000.5, "DELAYED").
		WillReturnResult(sqlmock.NewResult(1, 1))
	prep.ExpectExec().
		WithArgs("batch-1", 1, "LO0002", day, nil, nil,
			day.Add(14*time.Hour), nil, nil, -10,
			"", 20000.0, 40000.0, "CANCELLED").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	require.NoError(t, SaveFlightRecords(context.Background(), "batch-1", records))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveFlightRecords_RollsBackOnInsertError(t *testing.T) {
	mock := withMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM flight_records").WillReturnResult(sqlmock.NewResult(0, 3))
	prep := mock.ExpectPrepare("INSERT INTO flight_records")
	prep.ExpectExec().WillReturnError(errors.New("duplicate entry"))
	mock.ExpectRollback()

	err := SaveFlightRecords(context.Background(), "batch-2", sampleRecords())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LO0001")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveFlightRecords_Empty(t *testing.T) {
	mock := withMockDB(t)
	require.NoError(t, SaveFlightRecords(context.Background(), "batch-3", nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_NotInitialized(t *testing.T) {
	DB = nil
	ctx := context.Background()

	errs := []error{
		SaveFlightRecords(ctx, "b", sampleRecords()),
		LogDatasetRun(ctx, models.DatasetRun{}),
		EnsureSchema(ctx),
	}
	_, err := GetDatasetRuns(ctx)
	errs = append(errs, err)
	_, err = CountFlightRecords(ctx, "b")
	errs = append(errs, err)

	for _, err := range errs {
		assert.True(t, errors.Is(err, apperrors.ErrConfiguration), "%v", err)
	}
	assert.False(t, Enabled())
}

func TestCountFlightRecords(t *testing.T) {
	mock := withMockDB(t)
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM flight_records").
		WithArgs("batch-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1000))

	count, err := CountFlightRecords(context.Background(), "batch-1")
	require.NoError(t, err)
	assert.Equal(t, 1000, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchema(t *testing.T) {
	mock := withMockDB(t)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS flight_records").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS dataset_runs").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertFlightRecordStatement(t *testing.T) {
	assert.Equal(t,
		"INSERT INTO flight_records (batch_id, row_index, flight_id, flight_date, departure_airport, "+
			"arrival_airport, scheduled_departure, actual_departure, delay_minutes, passenger_count, "+
			"aircraft_type, ticket_revenue, fuel_cost, status) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		insertFlightRecord)
}

func TestEnsureSchema_Failure(t *testing.T) {
	mock := withMockDB(t)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS flight_records").WillReturnError(errors.New("access denied"))

	assert.ErrorContains(t, EnsureSchema(context.Background()), "access denied")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogDatasetRun(t *testing.T) {
	mock := withMockDB(t)
	run := models.DatasetRun{
		BatchID:    "batch-9",
		Seed:       42,
		Rows:       1000,
		OutputPath: "working_files/flight_data_sample.csv",
		Loaded:     true,
		Summary: models.Summary{
			TotalRows:              1000,
			NullDepartureAirport:   9,
			NullArrivalAirport:     11,
			EmptyAircraftType:      21,
			NegativePassengerCount: 5,
			RevenueBelowFuelCost:   31,
			PassengerCountOver400:  10,
			DelayOver1000:          5,
			DuplicateKeys:          1,
		},
	}

	mock.ExpectExec("INSERT INTO dataset_runs").
		WithArgs("batch-9", int64(42), 1000, false, "working_files/flight_data_sample.csv", true,
			9, 11, 21, 5, 31, 10, 5, 0, 1).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, LogDatasetRun(context.Background(), run))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDatasetRuns(t *testing.T) {
	mock := withMockDB(t)
	created := time.Date(2024, time.October, 1, 12, 0, 0, 0, time.UTC)
	columns := []string{
		"id", "batch_id", "seed", "row_count", "legacy_sampling", "output_path", "loaded",
		"null_departure_airport", "null_arrival_airport", "empty_aircraft_type",
		"negative_passenger_count", "revenue_below_fuel_cost", "passenger_count_over_400",
		"delay_over_1000", "unknown_airport_code", "duplicate_keys", "created_at",
	}
	mock.ExpectQuery("SELECT (.+) FROM dataset_runs").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(2, "batch-b", 7, 500, true, "/tmp/b.csv", false, 4, 6, 9, 3, 30, 8, 4, 2, 1, created).
			AddRow(1, "batch-a", 42, 1000, false, "/tmp/a.csv", true, 9, 11, 21, 5, 31, 10, 5, 0, 1, created))

	runs, err := GetDatasetRuns(context.Background())
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "batch-b", runs[0].BatchID)
	assert.True(t, runs[0].LegacySampling)
	assert.Equal(t, 500, runs[0].Summary.TotalRows)
	assert.Equal(t, 2, runs[0].Summary.UnknownAirportCode)
	assert.Equal(t, 31, runs[1].Summary.RevenueBelowFuelCost)
	assert.True(t, runs[1].Loaded)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDSN(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{
		Host:     "db.internal",
		Port:     "3307",
		User:     "flightqa",
		Password: "secret",
		DBName:   "quality",
	})
	assert.Contains(t, dsn, "flightqa:secret@tcp(db.internal:3307)/quality")
	assert.Contains(t, dsn, "parseTime=true")
}
