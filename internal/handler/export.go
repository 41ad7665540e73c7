package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/marecop/yellowair-sub000/internal/domain"
	"github.com/marecop/yellowair-sub000/internal/export"
	"github.com/marecop/yellowair-sub000/internal/service"
)

// ExportSchedule handles GET /export?origin=&start=&days=&format=.
// It builds the batch schedule and returns it as JSON (default) or CSV.
// origin defaults to CAN, start to today and days to a week.
func (s *Server) ExportSchedule(w http.ResponseWriter, r *http.Request) {
	var (
		origin *string
		start  *openapi_types.Date
		days   *int
		format *string
	)
	q := r.URL.Query()
	for name, dest := range map[string]any{
		"origin": &origin,
		"start":  &start,
		"days":   &days,
		"format": &format,
	} {
		if err := runtime.BindQueryParameter("form", true, false, name, q, dest); err != nil {
			badRequest(w, fmt.Sprintf("invalid %s parameter: %v", name, err))
			return
		}
	}

	f, ok := domain.ParseExportFormat(deref(format, ""))
	if !ok {
		badRequest(w, "format must be json or csv")
		return
	}
	from := deref(origin, DefaultExportOrigin)
	day := s.now().UTC().Truncate(24 * time.Hour)
	if start != nil {
		day = start.Time
	}

	flights, err := s.schedule.Build(r.Context(), from, day, deref(days, service.DefaultScheduleDays))
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	// Encode before writing headers so an encoding failure can still be a 500.
	var buf bytes.Buffer
	if err := export.Write(&buf, f, flights); err != nil {
		s.serviceError(w, r, err)
		return
	}

	name := fmt.Sprintf("flights-%s-%s.%s", from, day.Format(domain.DateLayout), f)
	w.Header().Set("Content-Type", export.ContentType(f))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// DefaultExportOrigin is the origin of a schedule export when none is given.
const DefaultExportOrigin = "CAN"

func deref[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
