// utils/airports.go
package utils

import (
	"slices"
	"strings"
)

// DepartureAirports are the home hubs flights depart from.
var DepartureAirports = []string{"WAW", "KRK", "GDN", "WRO", "KTW"}

// ArrivalAirports are the long-haul destinations served from the hubs.
var ArrivalAirports = []string{"JFK", "ORD", "LHR", "FRA", "CDG", "AMS"}

// icaoToIATA covers the ICAO codes of the airports above.
var icaoToIATA = map[string]string{
	"EPWA": "WAW",
	"EPKK": "KRK",
	"EPGD": "GDN",
	"EPWR": "WRO",
	"EPKT": "KTW",
	"KJFK": "JFK",
	"KORD": "ORD",
	"EGLL": "LHR",
	"EDDF": "FRA",
	"LFPG": "CDG",
	"EHAM": "AMS",
}

// NormalizeAirportCode converts known 4-letter ICAO codes (e.g., "EPWA") to 3-letter IATA codes ("WAW").
// Other codes are returned as is. Converts to uppercase.
func NormalizeAirportCode(code string) string {
	upperCode := strings.ToUpper(strings.TrimSpace(code))
	if iata, ok := icaoToIATA[upperCode]; ok {
		return iata
	}
	return upperCode
}

// IsDepartureAirport reports whether code (IATA or ICAO) is one of the departure hubs.
func IsDepartureAirport(code string) bool {
	return slices.Contains(DepartureAirports, NormalizeAirportCode(code))
}

// IsArrivalAirport reports whether code (IATA or ICAO) is one of the arrival airports.
func IsArrivalAirport(code string) bool {
	return slices.Contains(ArrivalAirports, NormalizeAirportCode(code))
}
