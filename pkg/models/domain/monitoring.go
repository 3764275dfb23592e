package domain

import "time"

// RecordType splits monitoring readings into field and laboratory records.
type RecordType string

const (
	RecordField      RecordType = "field"
	RecordLaboratory RecordType = "laboratory"
)

// Range is a min/max specification limit. A nil bound is open.
type Range struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// Contains reports whether v falls inside the closed interval. Open bounds
// never reject.
func (r Range) Contains(v float64) bool {
	if r.Min != nil && v < *r.Min {
		return false
	}
	if r.Max != nil && v > *r.Max {
		return false
	}
	return true
}

// MonitoringPoint is one measured parameter of a system (pH, chlorine, ...).
type MonitoringPoint struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Unit   string     `json:"unit,omitempty"`
	Type   RecordType `json:"type"`
	Limits Range      `json:"limits"`
}

// LogEntry is a single reading of a monitoring point.
type LogEntry struct {
	Point      MonitoringPoint `json:"point"`
	Value      *float64        `json:"value,omitempty"`
	OutOfRange bool            `json:"outOfRange"`
	Note       string          `json:"note,omitempty"`
}

// DailyLog groups the readings recorded on one date for one system.
type DailyLog struct {
	ID         string     `json:"id"`
	SystemID   string     `json:"systemId"`
	SystemName string     `json:"systemName"`
	Date       time.Time  `json:"date"`
	Operator   string     `json:"operator,omitempty"`
	RecordType RecordType `json:"recordType"`
	Entries    []LogEntry `json:"entries"`
}
