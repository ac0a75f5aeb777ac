// generator/defects.go
package generator

import (
	"github.com/gewnthar/flightqa/models"
)

const (
	duplicateSampleSize    = 20
	negativePassengerRows  = 5
	negativePassengerValue = -10
	unprofitableRows       = 30
	unprofitableRatio      = 0.5
	overcapacityRows       = 10
	extremeDelayRows       = 5
)

// injectDefects applies the corruption passes in a fixed order.
// Later passes may overwrite fields set by earlier ones on the same row.
func (g *generator) injectDefects(records []models.FlightRecord) models.InjectionLog {
	var log models.InjectionLog
	log.Duplicate = g.injectDuplicateKey(records)
	log.NegativePassengers = g.injectNegativePassengers(records)
	log.Unprofitable = g.injectUnprofitable(records)
	log.Overcapacity = g.injectOvercapacity(records)
	log.ExtremeDelay = g.injectExtremeDelays(records)
	return log
}

// injectDuplicateKey copies the (flight_id, flight_date) key of the second selected
// row onto the first, so the compound key is no longer unique. The target's departure
// times move to the copied date and keep their time of day.
func (g *generator) injectDuplicateKey(records []models.FlightRecord) []int {
	idx := g.sample(len(records), duplicateSampleSize, false)
	if len(idx) < 2 {
		return idx
	}
	target, source := &records[idx[0]], records[idx[1]]
	shift := source.FlightDate.Time.Sub(target.FlightDate.Time)

	target.FlightID = source.FlightID
	target.FlightDate = source.FlightDate
	target.ScheduledDeparture.Time = target.ScheduledDeparture.Time.Add(shift)
	if target.ActualDeparture.Valid {
		target.ActualDeparture.Time = target.ActualDeparture.Time.Add(shift)
	}
	return idx
}

func (g *generator) injectNegativePassengers(records []models.FlightRecord) []int {
	idx := g.sample(len(records), negativePassengerRows, g.opts.LegacySampling)
	for _, i := range idx {
		records[i].PassengerCount = negativePassengerValue
	}
	return idx
}

// injectUnprofitable halves fuel_cost into ticket_revenue, breaking revenue > cost.
func (g *generator) injectUnprofitable(records []models.FlightRecord) []int {
	idx := g.sample(len(records), unprofitableRows, false)
	for _, i := range idx {
		records[i].TicketRevenue = records[i].FuelCost * unprofitableRatio
	}
	return idx
}

// injectOvercapacity sets passenger_count into [400,500). In legacy mode every
// selected row shares a single drawn value.
func (g *generator) injectOvercapacity(records []models.FlightRecord) []int {
	idx := g.sample(len(records), overcapacityRows, g.opts.LegacySampling)
	if g.opts.LegacySampling {
		shared := g.uniformInt(400, 500)
		for _, i := range idx {
			records[i].PassengerCount = shared
		}
		return idx
	}
	for _, i := range idx {
		records[i].PassengerCount = g.uniformInt(400, 500)
	}
	return idx
}

// injectExtremeDelays replaces delay_minutes with [1000,2000) on selected rows that departed.
// actual_departure is left as generated.
func (g *generator) injectExtremeDelays(records []models.FlightRecord) []int {
	idx := g.sample(len(records), extremeDelayRows, false)
	for _, i := range idx {
		if records[i].DelayMinutes.Valid {
			records[i].DelayMinutes = models.SomeInt(g.uniformInt(1000, 2000))
		}
	}
	return idx
}

// sample returns k row indices from [0,n). Without replacement k is capped at n.
func (g *generator) sample(n, k int, withReplacement bool) []int {
	if withReplacement {
		idx := make([]int, k)
		for j := range idx {
			idx[j] = g.rng.IntN(n)
		}
		return idx
	}
	k = min(k, n)
	// partial Fisher-Yates shuffle of row indices
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	for j := 0; j < k; j++ {
		r := j + g.rng.IntN(n-j)
		pool[j], pool[r] = pool[r], pool[j]
	}
	return pool[:k:k]
}
