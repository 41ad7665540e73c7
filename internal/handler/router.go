package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/marecop/yellowair-sub000/internal/middleware"
)

// RouterOptions configures the middleware stack around the handlers.
// Zero values disable the corresponding middleware.
type RouterOptions struct {
	CORSOrigins  []string
	MaxBodyBytes int64
	// RateLimit wraps the search and export routes.
	RateLimit func(http.Handler) http.Handler
	// OpenAPI is served verbatim at /openapi.yaml when set.
	OpenAPI []byte
}

// NewRouter returns the chi router serving the whole API.
// Middleware order: RequestID, RealIP, SlogLogger, Recoverer, CORS.
func NewRouter(s *Server, opts RouterOptions) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(s.log))
	r.Use(chimiddleware.Recoverer)
	if len(opts.CORSOrigins) > 0 {
		r.Use(middleware.NewCORSHandler(opts.CORSOrigins))
	}

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})

	r.Get("/healthz", s.GetHealth)
	if opts.OpenAPI != nil {
		r.Get("/openapi.yaml", serveOpenAPI(opts.OpenAPI))
	}

	r.Route("/airports", func(r chi.Router) {
		r.Get("/", s.ListAirports)
		r.Get("/{code}", s.GetAirport)
	})

	r.Group(func(r chi.Router) {
		if opts.RateLimit != nil {
			r.Use(opts.RateLimit)
		}
		r.Get("/flights/search", s.SearchFlightsQuery)
		r.With(middleware.NewMaxBodySizeHandler(opts.MaxBodyBytes)).
			Post("/flights/search", s.SearchFlightsBody)
		r.Get("/export", s.ExportSchedule)
	})

	return r
}

func serveOpenAPI(doc []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(doc)
	}
}
