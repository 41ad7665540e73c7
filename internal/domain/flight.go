package domain

import "time"

// CabinClass is one of the three fare classes sold on a synthesized flight.
type CabinClass string

const (
	CabinEconomy  CabinClass = "economy"
	CabinBusiness CabinClass = "business"
	CabinFirst    CabinClass = "first"
)

// ParseCabinClass normalizes s and reports whether it names a known class.
// An empty string means economy.
func ParseCabinClass(s string) (CabinClass, bool) {
	switch c := CabinClass(normalizeLower(s)); c {
	case "":
		return CabinEconomy, true
	case CabinEconomy, CabinBusiness, CabinFirst:
		return c, true
	default:
		return "", false
	}
}

// FlightStop is a layover inside a connecting flight.
type FlightStop struct {
	AirportCode    string `json:"airportCode"`
	AirportName    string `json:"airportName"`
	LayoverMinutes int    `json:"layoverMinutes"`
	Terminal       string `json:"terminal,omitempty"`
}

// Prices holds the fare of each cabin in whole currency units.
type Prices struct {
	Economy  int `json:"economy"`
	Business int `json:"business"`
	First    int `json:"first"`
}

// CabinAvailability tells which cabins have sellable seats.
// Economy is always true; First implies Business.
type CabinAvailability struct {
	Economy  bool `json:"economy"`
	Business bool `json:"business"`
	First    bool `json:"first"`
}

// Offers reports whether class c is available.
func (a CabinAvailability) Offers(c CabinClass) bool {
	switch c {
	case CabinBusiness:
		return a.Business
	case CabinFirst:
		return a.First
	default:
		return a.Economy
	}
}

// Flight is a synthesized, request-scoped flight record.
// Duration is the total journey time in minutes, layovers included.
type Flight struct {
	ID                   string            `json:"id"`
	FlightNumber         string            `json:"flightNumber"`
	DepartureAirport     string            `json:"departureAirport"`
	DepartureAirportCode string            `json:"departureAirportCode"`
	DepartureTerminal    string            `json:"departureTerminal,omitempty"`
	ArrivalAirport       string            `json:"arrivalAirport"`
	ArrivalAirportCode   string            `json:"arrivalAirportCode"`
	ArrivalTerminal      string            `json:"arrivalTerminal,omitempty"`
	DepartureTime        time.Time         `json:"departureTime"`
	ArrivalTime          time.Time         `json:"arrivalTime"`
	Duration             int               `json:"duration"`
	HasStops             bool              `json:"hasStops"`
	Stops                []FlightStop      `json:"stops,omitempty"`
	Prices               Prices            `json:"prices"`
	SeatsAvailable       int               `json:"seatsAvailable"`
	Distance             int               `json:"distance"`
	Aircraft             string            `json:"aircraft"`
	CabinAvailability    CabinAvailability `json:"cabinAvailability"`
}

// StopCodes returns the airport codes of the flight's layovers in order.
func (f Flight) StopCodes() []string {
	codes := make([]string, 0, len(f.Stops))
	for _, s := range f.Stops {
		codes = append(codes, s.AirportCode)
	}
	return codes
}

// CloneFlights returns a copy of flights that shares no stop slices with the input.
func CloneFlights(flights []Flight) []Flight {
	if flights == nil {
		return nil
	}
	out := make([]Flight, len(flights))
	copy(out, flights)
	for i := range out {
		if out[i].Stops != nil {
			out[i].Stops = append([]FlightStop(nil), out[i].Stops...)
		}
	}
	return out
}
