package report

import "github.com/lince-tools/lince-report/pkg/models/domain"

// Fragment is the rendered output of one block: an ordered list of layout
// elements. KeepTogether asks the PDF writer to start a new page rather
// than split the fragment across a page boundary.
type Fragment struct {
	Block        domain.BlockType
	KeepTogether bool
	Elements     []Element
}

// Element is one typed layout instruction inside a fragment.
type Element interface {
	element()
}

// Heading is a section or subsection title. Level 1 is the block title.
type Heading struct {
	Text  string
	Level int
}

// Paragraph is a run of body text. Muted renders in the secondary color,
// used for empty-state placeholders.
type Paragraph struct {
	Text  string
	Muted bool
}

// KeyValue is one labeled value inside a KeyValueBox.
type KeyValue struct {
	Key   string
	Value string
}

// KeyValueBox is a bordered box of label/value pairs, e.g. the client info
// box of the identification block.
type KeyValueBox struct {
	Title string
	Rows  []KeyValue
}

// CellFlag colors a table cell by meaning.
type CellFlag int

const (
	FlagNone CellFlag = iota
	FlagOutOfRange
	FlagCompliant
	FlagNonCompliant
	FlagNotApplicable
	FlagNotVerified
	FlagHighPriority
)

// TableCell is one cell of a table row.
type TableCell struct {
	Text string
	Flag CellFlag
}

// TableRow is one row of table cells.
type TableRow struct {
	Cells []TableCell
}

// Table is a column-headed data table. Widths are column fractions of the
// usable page width; when empty the writer distributes columns evenly.
type Table struct {
	Header []string
	Widths []float64
	Rows   []TableRow
}

// Image is one embedded raster image.
type Image struct {
	Name    string
	PNG     []byte
	Caption string
}

// ImageGrid lays images out in rows of PerRow.
type ImageGrid struct {
	Title  string
	PerRow int
	Images []Image
}

// Counter is one summary figure of the conclusion block.
type Counter struct {
	Label string
	Value int
}

// CounterRow lays summary counters out side by side.
type CounterRow struct {
	Counters []Counter
}

// BannerSeverity selects banner coloring.
type BannerSeverity int

const (
	BannerInfo BannerSeverity = iota
	BannerWarning
)

// Banner is a full-width highlighted notice.
type Banner struct {
	Text     string
	Severity BannerSeverity
}

// Spacer inserts vertical whitespace, in millimeters.
type Spacer struct {
	Height float64
}

func (Heading) element()     {}
func (Paragraph) element()   {}
func (KeyValueBox) element() {}
func (Table) element()       {}
func (Image) element()       {}
func (ImageGrid) element()   {}
func (CounterRow) element()  {}
func (Banner) element()      {}
func (Spacer) element()      {}

// Document is the assembled, ordered list of fragments ready for the PDF
// writer, together with the branding it should apply.
type Document struct {
	Title     string
	Branding  domain.ReportBranding
	Fragments []Fragment
}
