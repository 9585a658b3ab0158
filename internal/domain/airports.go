package domain

import "strings"

// transferAirports maps a destination region to the airports a transfer can
// be quoted from (2026 price list).
var transferAirports = map[string][]string{
	"London": {
		"London Heathrow",
		"London Gatwick",
		"London City",
		"London Luton",
		"London Stansted",
	},
	"Bedford": {
		"London Heathrow",
		"London Gatwick",
		"London City",
		"London Luton",
		"London Stansted",
	},
	"Manchester": {"Manchester Airport"},
	"Wellington": {"Exeter Airport", "Bristol Airport"},
	"Malta":      {"Malta International Airport"},
}

// TransferRegion derives the transfer region from a program's city, location
// and country. Unrecognized destinations fall back to London.
func TransferRegion(city, location, country string) string {
	switch {
	case strings.Contains(city, "London"), strings.Contains(city, "Londra"),
		strings.Contains(location, "King"):
		return "London"
	case strings.Contains(city, "Bedford"):
		return "Bedford"
	case strings.Contains(city, "Manchester"):
		return "Manchester"
	case strings.Contains(city, "Wellington"), strings.Contains(location, "Wellington"):
		return "Wellington"
	case strings.Contains(country, "Malta"):
		return "Malta"
	}
	return "London"
}

// AirportsFor returns the transfer airports for a region. The returned slice
// is a copy; callers may reorder it.
func AirportsFor(region string) []string {
	return append([]string(nil), transferAirports[region]...)
}

// TransferAirports is the per-program convenience over TransferRegion.
func TransferAirports(p Program) []string {
	return AirportsFor(TransferRegion(p.City, p.Location, p.Country))
}
