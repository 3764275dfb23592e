package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// ItemStatus is the canonical four-state result of a checklist item.
// Legacy pass/fail/na values are accepted on input and normalized here.
type ItemStatus string

const (
	StatusCompliant     ItemStatus = "C"
	StatusNonCompliant  ItemStatus = "NC"
	StatusNotApplicable ItemStatus = "NA"
	StatusNotVerified   ItemStatus = "NV"
)

var legacyStatusAliases = map[string]ItemStatus{
	"pass": StatusCompliant,
	"fail": StatusNonCompliant,
	"na":   StatusNotApplicable,
	"nv":   StatusNotVerified,
}

// UnmarshalJSON normalizes both the canonical codes and the legacy
// pass/fail/na vocabulary into the canonical enum.
func (s *ItemStatus) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch ItemStatus(raw) {
	case StatusCompliant, StatusNonCompliant, StatusNotApplicable, StatusNotVerified:
		*s = ItemStatus(raw)
		return nil
	}
	if alias, ok := legacyStatusAliases[raw]; ok {
		*s = alias
		return nil
	}
	return fmt.Errorf("unknown checklist item status %q", raw)
}

// ChecklistItem is one inspected criterion.
type ChecklistItem struct {
	Description string     `json:"description"`
	Status      ItemStatus `json:"status"`
	Note        string     `json:"note,omitempty"`
}

// Inspection is one checklist run against a system.
type Inspection struct {
	ID         string          `json:"id"`
	SystemID   string          `json:"systemId"`
	SystemName string          `json:"systemName"`
	Inspector  string          `json:"inspector"`
	Date       time.Time       `json:"date"`
	Status     string          `json:"status"`
	Items      []ChecklistItem `json:"items"`
	Conclusion string          `json:"conclusion,omitempty"`
	Photos     []Photo         `json:"photos,omitempty"`
}

// CompliantCount returns the number of items marked compliant.
func (i Inspection) CompliantCount() int {
	return i.countStatus(StatusCompliant)
}

// NonCompliantCount returns the number of items marked non-compliant.
func (i Inspection) NonCompliantCount() int {
	return i.countStatus(StatusNonCompliant)
}

// HasNonConformity reports whether at least one item is non-compliant.
func (i Inspection) HasNonConformity() bool {
	return i.NonCompliantCount() > 0
}

func (i Inspection) countStatus(s ItemStatus) int {
	n := 0
	for _, item := range i.Items {
		if item.Status == s {
			n++
		}
	}
	return n
}
