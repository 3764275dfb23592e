package domain

import "time"

// BlockType identifies one configurable report section.
type BlockType string

const (
	BlockIdentification BlockType = "identification"
	BlockScope          BlockType = "scope"
	BlockSystems        BlockType = "systems"
	BlockAnalyses       BlockType = "analyses"
	BlockInspections    BlockType = "inspections"
	BlockOccurrences    BlockType = "occurrences"
	BlockConclusion     BlockType = "conclusion"
	BlockSignature      BlockType = "signature"
	BlockAttachments    BlockType = "attachments"
)

// LogoPosition places the branding logo inside the page header.
type LogoPosition string

const (
	LogoLeft   LogoPosition = "left"
	LogoCenter LogoPosition = "center"
	LogoRight  LogoPosition = "right"
)

// ReportBlock is one toggleable section of a report template. Order drives
// the render sequence; only enabled blocks are rendered. The option booleans
// gate optional sub-sections and are ignored by blocks they do not apply to.
type ReportBlock struct {
	Type    BlockType `json:"type"`
	Enabled bool      `json:"enabled"`
	Order   int       `json:"order"`

	// ChartType selects the rendering style for analyses charts
	// (bar, line or area); empty defaults to line.
	ChartType string `json:"chartType,omitempty"`

	IncludePhotos                bool `json:"includePhotos,omitempty"`
	IncludeCharts                bool `json:"includeCharts,omitempty"`
	IncludeStages                bool `json:"includeStages,omitempty"`
	ShowFieldOverview            bool `json:"showFieldOverview,omitempty"`
	ShowFieldDetailed            bool `json:"showFieldDetailed,omitempty"`
	ShowLabOverview              bool `json:"showLabOverview,omitempty"`
	ShowLabDetailed              bool `json:"showLabDetailed,omitempty"`
	ShowDetailedView             bool `json:"showDetailedView,omitempty"`
	ShowTimeline                 bool `json:"showTimeline,omitempty"`
	HighlightOnlyNonConformities bool `json:"highlightOnlyNonConformities,omitempty"`
}

// ReportBranding carries presentation-only template settings.
type ReportBranding struct {
	PrimaryColor   string       `json:"primaryColor"`
	LogoURL        string       `json:"logoUrl,omitempty"`
	LogoData       []byte       `json:"logoData,omitempty"`
	ShowLogo       bool         `json:"showLogo"`
	LogoPosition   LogoPosition `json:"logoPosition,omitempty"`
	HeaderText     string       `json:"headerText,omitempty"`
	ShowHeaderText bool         `json:"showHeaderText"`
	FooterText     string       `json:"footerText,omitempty"`
}

// ReportTemplateConfig describes which blocks a generated report contains,
// in which order, and how it is branded.
type ReportTemplateConfig struct {
	Blocks   []ReportBlock  `json:"blocks"`
	Branding ReportBranding `json:"branding"`
}

// ReportTemplate is a persisted, named template configuration.
type ReportTemplate struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	Config    ReportTemplateConfig `json:"config"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}
