package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAirportCode(t *testing.T) {
	tests := map[string]string{
		"EPWA":  "WAW",
		" epkk": "KRK",
		"KJFK":  "JFK",
		"lhr":   "LHR",
		"XXXX":  "XXXX",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeAirportCode(in), in)
	}
}

func TestAirportSets(t *testing.T) {
	assert.True(t, IsDepartureAirport("WAW"))
	assert.True(t, IsDepartureAirport("EPKT"))
	assert.False(t, IsDepartureAirport("JFK"))
	assert.True(t, IsArrivalAirport("EHAM"))
	assert.False(t, IsArrivalAirport("KRK"))
	assert.False(t, IsArrivalAirport(""))
}
