// models/summary.go
package models

// Summary counts the rows exhibiting each injected anomaly in a flight table.
type Summary struct {
	TotalRows              int `json:"total_rows"`
	NullDepartureAirport   int `json:"null_departure_airport"`
	NullArrivalAirport     int `json:"null_arrival_airport"`
	EmptyAircraftType      int `json:"empty_aircraft_type"`
	NegativePassengerCount int `json:"negative_passenger_count"`
	RevenueBelowFuelCost   int `json:"revenue_below_fuel_cost"`
	PassengerCountOver400  int `json:"passenger_count_over_400"`
	DelayOver1000          int `json:"delay_over_1000"`
	UnknownAirportCode     int `json:"unknown_airport_code"` // present airport outside its departure/arrival list
	DuplicateKeys          int `json:"duplicate_keys"` // (flight_id, flight_date) keys seen more than once
}

// SummaryItem is one labelled line of a Summary, in display order.
type SummaryItem struct {
	Label string
	Count int
}

// Items returns the anomaly counts in the order they are reported.
func (s Summary) Items() []SummaryItem {
	return []SummaryItem{
		{"NULL departure_airport", s.NullDepartureAirport},
		{"NULL arrival_airport", s.NullArrivalAirport},
		{"Empty aircraft_type", s.EmptyAircraftType},
		{"Negative passenger_count", s.NegativePassengerCount},
		{"ticket_revenue < fuel_cost", s.RevenueBelowFuelCost},
		{"passenger_count > 400", s.PassengerCountOver400},
		{"delay_minutes > 1000", s.DelayOver1000},
		{"Unknown airport code", s.UnknownAirportCode},
		{"Duplicate (flight_id, flight_date)", s.DuplicateKeys},
	}
}
