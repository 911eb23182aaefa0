package models

import "time"

// MaxPageSize caps list endpoint page sizes.
const MaxPageSize = 100

// DefaultPageSize is used when no limit is given.
const DefaultPageSize = 50

// AlertFilters narrows alert listings.
type AlertFilters struct {
	Status   string
	Severity string
	Service  string
	Since    *time.Time
	Until    *time.Time
	Limit    int
	Offset   int
}

// IncidentFilters narrows incident listings.
type IncidentFilters struct {
	Status   string
	Severity string
	Service  string
	Since    *time.Time
	Until    *time.Time
	Limit    int
	Offset   int
}

// ReportFilters narrows RCA report listings. Severity and Service filter on
// the owning incident; Since and Until filter on completion time.
type ReportFilters struct {
	Status        string
	Service       string
	Severity      string
	MinConfidence *int
	Since         *time.Time
	Until         *time.Time
	Limit         int
	Offset        int
}

// ClampPage normalizes a limit/offset pair to sane bounds.
func ClampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
