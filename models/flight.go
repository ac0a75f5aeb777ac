// models/flight.go
package models

// FlightStatus is the operational outcome of a flight.
type FlightStatus string

const (
	StatusCompleted FlightStatus = "COMPLETED"
	StatusCancelled FlightStatus = "CANCELLED"
	StatusDelayed   FlightStatus = "DELAYED"
	StatusOnTime    FlightStatus = "ON_TIME"
)

// FlightRecord is one row of the generated flight operations table.
// The csv tags define both the header names and the column order of the output file.
type FlightRecord struct {
	FlightID           string       `csv:"flight_id" db:"flight_id"`
	FlightDate         Date         `csv:"flight_date" db:"flight_date"`
	DepartureAirport   NullString   `csv:"departure_airport" db:"departure_airport"` // ~1% absent
	ArrivalAirport     NullString   `csv:"arrival_airport" db:"arrival_airport"`     // ~1% absent
	ScheduledDeparture Timestamp    `csv:"scheduled_departure" db:"scheduled_departure"`
	ActualDeparture    NullTime     `csv:"actual_departure" db:"actual_departure"` // absent when cancelled
	DelayMinutes       NullInt      `csv:"delay_minutes" db:"delay_minutes"`       // absent when cancelled
	PassengerCount     int          `csv:"passenger_count" db:"passenger_count"`
	AircraftType       string       `csv:"aircraft_type" db:"aircraft_type"` // may be the empty string
	TicketRevenue      float64      `csv:"ticket_revenue" db:"ticket_revenue"`
	FuelCost           float64      `csv:"fuel_cost" db:"fuel_cost"`
	Status             FlightStatus `csv:"status" db:"status"`
}

// FlightColumns lists the output header in table order.
var FlightColumns = []string{
	"flight_id",
	"flight_date",
	"departure_airport",
	"arrival_airport",
	"scheduled_departure",
	"actual_departure",
	"delay_minutes",
	"passenger_count",
	"aircraft_type",
	"ticket_revenue",
	"fuel_cost",
	"status",
}

// Cancelled reports whether the flight never departed.
func (r FlightRecord) Cancelled() bool {
	return r.Status == StatusCancelled
}

// FlightKey is the compound (flight_id, flight_date) key downstream checks expect to be unique.
type FlightKey struct {
	FlightID   string
	FlightDate string // YYYY-MM-DD
}

// Key returns the record's compound key.
func (r FlightRecord) Key() FlightKey {
	return FlightKey{FlightID: r.FlightID, FlightDate: r.FlightDate.Time.Format(DateLayout)}
}
