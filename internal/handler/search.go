package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/oapi-codegen/runtime"

	"github.com/marecop/yellowair-sub000/internal/domain"
)

// SearchRequestBody is the JSON body of POST /flights/search. The query
// form of the endpoint takes the same names as parameters.
type SearchRequestBody struct {
	From       string `json:"from"`
	To         string `json:"to"`
	Date       string `json:"date"`
	CabinClass string `json:"cabinClass"`
}

// SearchCriteria echoes the normalized search.
type SearchCriteria struct {
	From       string `json:"from"`
	To         string `json:"to"`
	Date       string `json:"date"`
	CabinClass string `json:"cabinClass"`
}

// SearchResponse is the body of a successful search.
type SearchResponse struct {
	SearchCriteria SearchCriteria  `json:"searchCriteria"`
	CacheHit       bool            `json:"cacheHit"`
	Count          int             `json:"count"`
	Flights        []domain.Flight `json:"flights"`
}

// SearchFlightsQuery handles GET /flights/search?from=&to=&date=&cabinClass=.
func (s *Server) SearchFlightsQuery(w http.ResponseWriter, r *http.Request) {
	var body SearchRequestBody
	q := r.URL.Query()
	for name, dest := range map[string]*string{
		"from":       &body.From,
		"to":         &body.To,
		"date":       &body.Date,
		"cabinClass": &body.CabinClass,
	} {
		if err := runtime.BindQueryParameter("form", true, false, name, q, dest); err != nil {
			badRequest(w, fmt.Sprintf("invalid %s parameter: %v", name, err))
			return
		}
	}
	s.searchFlights(w, r, body)
}

// SearchFlightsBody handles POST /flights/search with a JSON body.
func (s *Server) SearchFlightsBody(w http.ResponseWriter, r *http.Request) {
	var body SearchRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "payload_too_large", err.Error())
			return
		}
		badRequest(w, "request body must be a JSON object")
		return
	}
	s.searchFlights(w, r, body)
}

func (s *Server) searchFlights(w http.ResponseWriter, r *http.Request, body SearchRequestBody) {
	res, err := s.search.Search(r.Context(), domain.SearchRequest{
		From:       body.From,
		To:         body.To,
		Date:       body.Date,
		CabinClass: domain.CabinClass(body.CabinClass),
	})
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	flights := res.Flights
	if flights == nil {
		flights = []domain.Flight{}
	}
	if res.CacheHit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	writeJSON(w, http.StatusOK, SearchResponse{
		SearchCriteria: SearchCriteria{
			From:       res.Request.From,
			To:         res.Request.To,
			Date:       res.Request.Date,
			CabinClass: string(res.Request.CabinClass),
		},
		CacheHit: res.CacheHit,
		Count:    len(flights),
		Flights:  flights,
	})
}
