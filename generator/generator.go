// generator/generator.go
package generator

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/gewnthar/flightqa/apperrors"
	"github.com/gewnthar/flightqa/models"
	"github.com/gewnthar/flightqa/utils"
)

const (
	DefaultRows = 1000
	DefaultSeed = 42
	// MaxRows is the largest table whose flight ids still fit the LO#### pattern.
	MaxRows = 9999

	flightDateWindowDays = 365
)

// DefaultEpoch is the first day of the flight_date window.
var DefaultEpoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// Options controls one generation run.
type Options struct {
	Rows int
	Seed int64
	// Epoch is the first possible flight_date. Zero means DefaultEpoch.
	Epoch time.Time
	// LegacySampling selects the negative-passenger and overcapacity rows with
	// replacement and gives every overcapacity row the same value.
	LegacySampling bool
}

// Dataset is a generated flight table plus a log of the rows each defect pass touched.
type Dataset struct {
	Records    []models.FlightRecord
	Injections models.InjectionLog
}

type weighted[T any] struct {
	value  T
	weight float64
}

var departureWeights = []weighted[models.NullString]{
	{models.SomeString(utils.DepartureAirports[0]), 0.50},
	{models.SomeString(utils.DepartureAirports[1]), 0.20},
	{models.SomeString(utils.DepartureAirports[2]), 0.15},
	{models.SomeString(utils.DepartureAirports[3]), 0.10},
	{models.SomeString(utils.DepartureAirports[4]), 0.04},
	{models.NullString{}, 0.01},
}

var arrivalWeights = []weighted[models.NullString]{
	{models.SomeString(utils.ArrivalAirports[0]), 0.20},
	{models.SomeString(utils.ArrivalAirports[1]), 0.15},
	{models.SomeString(utils.ArrivalAirports[2]), 0.25},
	{models.SomeString(utils.ArrivalAirports[3]), 0.20},
	{models.SomeString(utils.ArrivalAirports[4]), 0.15},
	{models.SomeString(utils.ArrivalAirports[5]), 0.04},
	{models.NullString{}, 0.01},
}

var aircraftWeights = []weighted[string]{
	{"B737", 0.30},
	{"B787", 0.25},
	{"E195", 0.20},
	{"E175", 0.23},
	{"", 0.02},
}

var statusWeights = []weighted[models.FlightStatus]{
	{models.StatusCompleted, 0.70},
	{models.StatusCancelled, 0.05},
	{models.StatusDelayed, 0.15},
	{models.StatusOnTime, 0.10},
}

var departureMinutes = []int{0, 15, 30, 45}

// Validate rejects options no run can be built from.
func (o Options) Validate() error {
	if o.Rows <= 0 {
		return apperrors.Parameter("row count must be positive, got %d", o.Rows)
	}
	if o.Rows > MaxRows {
		return apperrors.Parameter("row count must be at most %d, got %d", MaxRows, o.Rows)
	}
	return nil
}

// generator owns the random source for a single run. It is not shared.
type generator struct {
	rng  *rand.Rand
	opts Options
}

// Generate builds opts.Rows flight records from opts.Seed and applies the defect passes.
// The same options always produce the same dataset.
func Generate(opts Options) (*Dataset, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Epoch.IsZero() {
		opts.Epoch = DefaultEpoch
	}

	g := &generator{
		rng:  rand.New(rand.NewPCG(uint64(opts.Seed), uint64(opts.Seed)^0x9e3779b97f4a7c15)),
		opts: opts,
	}

	records := g.buildRecords()
	injections := g.injectDefects(records)
	return &Dataset{Records: records, Injections: injections}, nil
}

// buildRecords draws each column for the whole table before moving to the next,
// then derives delays from the drawn statuses.
func (g *generator) buildRecords() []models.FlightRecord {
	n := g.opts.Rows
	records := make([]models.FlightRecord, n)

	for i := range records {
		records[i].FlightID = fmt.Sprintf("LO%04d", i+1)
		day := g.opts.Epoch.AddDate(0, 0, g.rng.IntN(flightDateWindowDays))
		records[i].FlightDate = models.Date{Time: day}
	}
	for i := range records {
		records[i].DepartureAirport = choose(g.rng, departureWeights)
	}
	for i := range records {
		records[i].ArrivalAirport = choose(g.rng, arrivalWeights)
	}
	for i := range records {
		hour := g.uniformInt(6, 23)
		minute := departureMinutes[g.rng.IntN(len(departureMinutes))]
		scheduled := records[i].FlightDate.Time.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
		records[i].ScheduledDeparture = models.Timestamp{Time: scheduled}
	}
	for i := range records {
		records[i].PassengerCount = g.uniformInt(50, 300)
	}
	for i := range records {
		records[i].AircraftType = choose(g.rng, aircraftWeights)
	}
	for i := range records {
		records[i].TicketRevenue = g.uniformFloat(50000, 500000)
	}
	for i := range records {
		records[i].FuelCost = g.uniformFloat(10000, 100000)
	}
	for i := range records {
		records[i].Status = choose(g.rng, statusWeights)
	}

	for i := range records {
		r := &records[i]
		if r.Cancelled() {
			r.DelayMinutes = models.NullInt{}
			r.ActualDeparture = models.NullTime{}
			continue
		}
		delay := g.drawDelay()
		r.DelayMinutes = models.SomeInt(delay)
		r.ActualDeparture = models.SomeTime(r.ScheduledDeparture.Time.Add(time.Duration(delay) * time.Minute))
	}
	return records
}

// drawDelay returns a minor delay in [-5,45) 80% of the time and a major one in [45,300) otherwise.
// Negative values are early departures.
func (g *generator) drawDelay() int {
	if g.rng.Float64() < 0.8 {
		return g.uniformInt(-5, 45)
	}
	return g.uniformInt(45, 300)
}

// uniformInt draws from [lo, hi).
func (g *generator) uniformInt(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo)
}

// uniformFloat draws from [lo, hi).
func (g *generator) uniformFloat(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

// choose picks one value with probability proportional to its weight.
func choose[T any](rng *rand.Rand, options []weighted[T]) T {
	var total float64
	for _, o := range options {
		total += o.weight
	}
	u := rng.Float64() * total
	for _, o := range options {
		if u < o.weight {
			return o.value
		}
		u -= o.weight
	}
	return options[len(options)-1].value
}
