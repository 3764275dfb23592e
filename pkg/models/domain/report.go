package domain

import "time"

// PeriodType describes the granularity of a reporting period.
type PeriodType string

const (
	PeriodWeekly    PeriodType = "weekly"
	PeriodMonthly   PeriodType = "monthly"
	PeriodQuarterly PeriodType = "quarterly"
	PeriodCustom    PeriodType = "custom"
)

// Period is the time range a report covers.
type Period struct {
	Type      PeriodType `json:"type"`
	StartDate time.Time  `json:"startDate"`
	EndDate   time.Time  `json:"endDate"`
}

// Client is the organization the report is generated for. ServiceProvider
// switches the identification block label between "Client" and "Company".
type Client struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Document        string `json:"document,omitempty"`
	Address         string `json:"address,omitempty"`
	ContactName     string `json:"contactName,omitempty"`
	ContactEmail    string `json:"contactEmail,omitempty"`
	ContactPhone    string `json:"contactPhone,omitempty"`
	ServiceProvider bool   `json:"serviceProvider"`
}

// Summary holds the aggregate counters shown in the conclusion block.
type Summary struct {
	SystemCount     int `json:"systemCount"`
	ReadingCount    int `json:"readingCount"`
	InspectionCount int `json:"inspectionCount"`
	IncidentCount   int `json:"incidentCount"`
	OutOfRangeCount int `json:"outOfRangeCount"`
}

// Signature describes the signer shown in the signature block. ImageData
// carries the signature image PNG inline (base64 in JSON), same as
// Photo.Data; a signature without data renders the text box only.
type Signature struct {
	ImageURL     string `json:"imageUrl,omitempty"`
	ImageData    []byte `json:"imageData,omitempty"`
	Name         string `json:"name"`
	Role         string `json:"role,omitempty"`
	Registration string `json:"registration,omitempty"`
}

// ChartImages maps monitoring point ids to rendered PNG chart images, split
// by record type. Attached to the data aggregate after batch generation.
type ChartImages struct {
	Field      map[string][]byte `json:"-"`
	Laboratory map[string][]byte `json:"-"`
}

// ReportData is the full snapshot a report is rendered from. It is produced
// upstream and treated as read-only by block renderers; the only mutation is
// attaching ChartImages before final assembly.
type ReportData struct {
	Client      Client       `json:"client"`
	Period      Period       `json:"period"`
	Systems     []System     `json:"systems"`
	DailyLogs   []DailyLog   `json:"dailyLogs"`
	Inspections []Inspection `json:"inspections"`
	Incidents   []Incident   `json:"incidents"`
	Summary     Summary      `json:"summary"`
	Signature   *Signature   `json:"signature,omitempty"`
	Conclusion  string       `json:"conclusion,omitempty"`
	GeneratedAt time.Time    `json:"generatedAt"`
	ChartImages *ChartImages `json:"-"`
}
