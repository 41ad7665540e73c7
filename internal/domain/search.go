package domain

import "strings"

// DateLayout is the calendar-date format used by search requests.
const DateLayout = "2006-01-02"

// SearchRequest is the input of a flight search.
// Date is a calendar date formatted with DateLayout.
type SearchRequest struct {
	From       string
	To         string
	Date       string
	CabinClass CabinClass
}

// Normalize returns a copy with trimmed, upper-cased airport codes and a
// lower-cased cabin class. It does not validate.
func (r SearchRequest) Normalize() SearchRequest {
	return SearchRequest{
		From:       normalizeCode(r.From),
		To:         normalizeCode(r.To),
		Date:       strings.TrimSpace(r.Date),
		CabinClass: CabinClass(normalizeLower(string(r.CabinClass))),
	}
}

func normalizeCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func normalizeLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
