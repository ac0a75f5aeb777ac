package generator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gewnthar/flightqa/models"
)

func record(id string, day int) models.FlightRecord {
	date := time.Date(2024, time.January, day, 0, 0, 0, 0, time.UTC)
	return models.FlightRecord{
		FlightID:           id,
		FlightDate:         models.Date{Time: date},
		DepartureAirport:   models.SomeString("WAW"),
		ArrivalAirport:     models.SomeString("JFK"),
		ScheduledDeparture: models.Timestamp{Time: date.Add(8 * time.Hour)},
		ActualDeparture:    models.SomeTime(date.Add(8*time.Hour + 10*time.Minute)),
		DelayMinutes:       models.SomeInt(10),
		PassengerCount:     180,
		AircraftType:       "B737",
		TicketRevenue:      200000,
		FuelCost:           50000,
		Status:             models.StatusCompleted,
	}
}

func TestSummarize(t *testing.T) {
	clean := record("LO0001", 1)

	nullDep := record("LO0002", 2)
	nullDep.DepartureAirport = models.NullString{}

	nullArr := record("LO0003", 3)
	nullArr.ArrivalAirport = models.NullString{}
	nullArr.AircraftType = ""

	negative := record("LO0004", 4)
	negative.PassengerCount = -10

	unprofitable := record("LO0005", 5)
	unprofitable.TicketRevenue = unprofitable.FuelCost * 0.5

	over := record("LO0006", 6)
	over.PassengerCount = 401

	atLimit := record("LO0007", 7)
	atLimit.PassengerCount = 400

	delayed := record("LO0008", 8)
	delayed.DelayMinutes = models.SomeInt(1500)

	cancelled := record("LO0009", 9)
	cancelled.Status = models.StatusCancelled
	cancelled.DelayMinutes = models.NullInt{}
	cancelled.ActualDeparture = models.NullTime{}

	foreign := record("LO0010", 10)
	foreign.DepartureAirport = models.SomeString("JFK")

	icao := record("LO0011", 11)
	icao.DepartureAirport = models.SomeString("EPWA")
	icao.ArrivalAirport = models.SomeString("KORD")

	dup := record("LO0001", 1)
	sameIDOtherDay := record("LO0008", 20)

	s := Summarize([]models.FlightRecord{
		clean, nullDep, nullArr, negative, unprofitable, over, atLimit, delayed, cancelled, foreign, icao, dup, sameIDOtherDay,
	})

	assert.Equal(t, models.Summary{
		TotalRows:              13,
		NullDepartureAirport:   1,
		NullArrivalAirport:     1,
		EmptyAircraftType:      1,
		NegativePassengerCount: 1,
		RevenueBelowFuelCost:   1,
		PassengerCountOver400:  1,
		DelayOver1000:          1,
		UnknownAirportCode:     1,
		DuplicateKeys:          1,
	}, s)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, models.Summary{}, Summarize(nil))
}

func TestSummary_ItemsOrder(t *testing.T) {
	items := models.Summary{NullDepartureAirport: 3, DuplicateKeys: 1}.Items()
	assert.Len(t, items, 9)
	assert.Equal(t, "NULL departure_airport", items[0].Label)
	assert.Equal(t, 3, items[0].Count)
	assert.Equal(t, 1, items[len(items)-1].Count)
}
