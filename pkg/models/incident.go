package models

// IncidentStatus is the lifecycle state of an incident.
type IncidentStatus string

// Incident lifecycle states.
const (
	IncidentOpen      IncidentStatus = "open"
	IncidentAnalyzing IncidentStatus = "analyzing"
	IncidentResolved  IncidentStatus = "resolved"
	IncidentClosed    IncidentStatus = "closed"
)

// validTransitions encodes the incident state machine. An incident under
// analysis always returns to open before any terminal state is reached, and
// closed incidents may be reopened.
var validTransitions = map[IncidentStatus][]IncidentStatus{
	IncidentOpen:      {IncidentAnalyzing, IncidentResolved, IncidentClosed},
	IncidentAnalyzing: {IncidentOpen, IncidentResolved, IncidentClosed},
	IncidentResolved:  {IncidentOpen, IncidentClosed},
	IncidentClosed:    {IncidentOpen},
}

// CanTransition reports whether moving from one incident status to another
// is allowed.
func CanTransition(from, to IncidentStatus) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
