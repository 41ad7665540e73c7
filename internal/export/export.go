// Package export encodes generated schedules as JSON or CSV.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/marecop/yellowair-sub000/internal/domain"
)

// csvHeaders is the first row of every CSV export.
var csvHeaders = []string{
	"id", "flight_number",
	"departure_airport", "departure_code",
	"arrival_airport", "arrival_code",
	"departure_time", "duration_minutes",
	"has_stops", "stops",
	"economy_price", "business_price", "first_price",
	"seats_available",
}

// Headers returns a copy of the CSV column names.
func Headers() []string {
	return append([]string(nil), csvHeaders...)
}

// ContentType returns the media type for f.
func ContentType(f domain.ExportFormat) string {
	if f == domain.ExportCSV {
		return "text/csv; charset=utf-8"
	}
	return "application/json"
}

// Write encodes flights to w in format f.
func Write(w io.Writer, f domain.ExportFormat, flights []domain.Flight) error {
	if f == domain.ExportCSV {
		return WriteCSV(w, flights)
	}
	return WriteJSON(w, flights)
}

// WriteJSON writes flights as an indented JSON array. A nil slice is
// written as [].
func WriteJSON(w io.Writer, flights []domain.Flight) error {
	if flights == nil {
		flights = []domain.Flight{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(flights); err != nil {
		return fmt.Errorf("export.WriteJSON: %w", err)
	}
	return nil
}

// WriteCSV writes a header row followed by one row per flight.
func WriteCSV(w io.Writer, flights []domain.Flight) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeaders); err != nil {
		return fmt.Errorf("export.WriteCSV: header: %w", err)
	}
	for _, f := range flights {
		if err := cw.Write(record(domain.NewExportRow(f))); err != nil {
			return fmt.Errorf("export.WriteCSV: %s: %w", f.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export.WriteCSV: flush: %w", err)
	}
	return nil
}

func record(r domain.ExportRow) []string {
	return []string{
		r.ID,
		r.FlightNumber,
		r.DepartureAirport,
		r.DepartureAirportCode,
		r.ArrivalAirport,
		r.ArrivalAirportCode,
		r.DepartureTime.Format(time.RFC3339),
		strconv.Itoa(r.DurationMinutes),
		strconv.FormatBool(r.HasStops),
		r.Stops,
		strconv.Itoa(r.EconomyPrice),
		strconv.Itoa(r.BusinessPrice),
		strconv.Itoa(r.FirstPrice),
		strconv.Itoa(r.SeatsAvailable),
	}
}
