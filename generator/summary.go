// generator/summary.go
package generator

import (
	"github.com/gewnthar/flightqa/models"
	"github.com/gewnthar/flightqa/utils"
)

// Summarize counts the rows currently exhibiting each anomaly.
// It works the same on a freshly generated table and on one decoded from disk.
func Summarize(records []models.FlightRecord) models.Summary {
	s := models.Summary{TotalRows: len(records)}
	keys := make(map[models.FlightKey]int, len(records))

	for _, r := range records {
		if !r.DepartureAirport.Valid {
			s.NullDepartureAirport++
		}
		if !r.ArrivalAirport.Valid {
			s.NullArrivalAirport++
		}
		if r.AircraftType == "" {
			s.EmptyAircraftType++
		}
		if r.PassengerCount < 0 {
			s.NegativePassengerCount++
		}
		if r.TicketRevenue < r.FuelCost {
			s.RevenueBelowFuelCost++
		}
		if r.PassengerCount > 400 {
			s.PassengerCountOver400++
		}
		if r.DelayMinutes.Valid && r.DelayMinutes.Int > 1000 {
			s.DelayOver1000++
		}
		if (r.DepartureAirport.Valid && !utils.IsDepartureAirport(r.DepartureAirport.String)) ||
			(r.ArrivalAirport.Valid && !utils.IsArrivalAirport(r.ArrivalAirport.String)) {
			s.UnknownAirportCode++
		}
		keys[r.Key()]++
	}

	for _, count := range keys {
		if count > 1 {
			s.DuplicateKeys++
		}
	}
	return s
}
