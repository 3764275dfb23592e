package domain

import "time"

// IncidentPriority ranks how urgent an incident is.
type IncidentPriority string

const (
	PriorityLow      IncidentPriority = "low"
	PriorityMedium   IncidentPriority = "medium"
	PriorityHigh     IncidentPriority = "high"
	PriorityCritical IncidentPriority = "critical"
)

// IncidentStatus tracks the incident lifecycle.
type IncidentStatus string

const (
	IncidentOpen       IncidentStatus = "open"
	IncidentInProgress IncidentStatus = "in_progress"
	IncidentResolved   IncidentStatus = "resolved"
	IncidentClosed     IncidentStatus = "closed"
)

// Incident is an operational occurrence registered against a system.
type Incident struct {
	ID          string           `json:"id"`
	SystemID    string           `json:"systemId,omitempty"`
	SystemName  string           `json:"systemName,omitempty"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Priority    IncidentPriority `json:"priority"`
	Status      IncidentStatus   `json:"status"`
	CreatedAt   time.Time        `json:"createdAt"`
	ResolvedAt  *time.Time       `json:"resolvedAt,omitempty"`
}
