package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/marecop/yellowair-sub000/internal/domain"
)

// Pagination describes the page returned by a list endpoint.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// AirportList is the body of GET /airports.
type AirportList struct {
	Data       []domain.Airport `json:"data"`
	Pagination Pagination       `json:"pagination"`
}

// ListAirports handles GET /airports.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListAirports(w http.ResponseWriter, r *http.Request) {
	var page, limit *int
	q := r.URL.Query()
	if err := runtime.BindQueryParameter("form", true, false, "page", q, &page); err != nil {
		badRequest(w, fmt.Sprintf("invalid page parameter: %v", err))
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", q, &limit); err != nil {
		badRequest(w, fmt.Sprintf("invalid limit parameter: %v", err))
		return
	}

	params := domain.NewPaginationParams(page, limit)
	airports, total, err := s.airports.List(r.Context(), params)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, AirportList{
		Data: airports,
		Pagination: Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	})
}

// GetAirport handles GET /airports/{code}.
func (s *Server) GetAirport(w http.ResponseWriter, r *http.Request) {
	a, err := s.airports.Get(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}
