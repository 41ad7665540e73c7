package domain

import (
	"strings"
	"time"
)

// ExportFormat selects the encoding of a schedule export.
type ExportFormat string

const (
	ExportJSON ExportFormat = "json"
	ExportCSV  ExportFormat = "csv"
)

// ParseExportFormat normalizes s and reports whether it names a known
// format. An empty string means JSON.
func ParseExportFormat(s string) (ExportFormat, bool) {
	switch f := ExportFormat(normalizeLower(s)); f {
	case "":
		return ExportJSON, true
	case ExportJSON, ExportCSV:
		return f, true
	default:
		return "", false
	}
}

// ExportRow is a flight flattened for tabular export.
// Stops holds the layover airport codes joined with ";".
type ExportRow struct {
	ID                   string
	FlightNumber         string
	DepartureAirport     string
	DepartureAirportCode string
	ArrivalAirport       string
	ArrivalAirportCode   string
	DepartureTime        time.Time
	DurationMinutes      int
	HasStops             bool
	Stops                string
	EconomyPrice         int
	BusinessPrice        int
	FirstPrice           int
	SeatsAvailable       int
}

// NewExportRow flattens f.
func NewExportRow(f Flight) ExportRow {
	return ExportRow{
		ID:                   f.ID,
		FlightNumber:         f.FlightNumber,
		DepartureAirport:     f.DepartureAirport,
		DepartureAirportCode: f.DepartureAirportCode,
		ArrivalAirport:       f.ArrivalAirport,
		ArrivalAirportCode:   f.ArrivalAirportCode,
		DepartureTime:        f.DepartureTime,
		DurationMinutes:      f.Duration,
		HasStops:             f.HasStops,
		Stops:                strings.Join(f.StopCodes(), ";"),
		EconomyPrice:         f.Prices.Economy,
		BusinessPrice:        f.Prices.Business,
		FirstPrice:           f.Prices.First,
		SeatsAvailable:       f.SeatsAvailable,
	}
}
