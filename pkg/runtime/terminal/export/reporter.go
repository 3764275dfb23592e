package export

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/lince-tools/lince-report/pkg/models/domain"
)

// Reporter prints a plain-text summary of a report data file, useful for
// checking an export before rendering it to PDF.
type Reporter struct {
	writer io.Writer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(data *domain.ReportData) error {
	tmpl := `
{{.Client.Name}}
Period: {{.Period.StartDate.Format "2006-01-02"}} to {{.Period.EndDate.Format "2006-01-02"}}

Systems: {{len .Systems}}
Daily logs: {{len .DailyLogs}}
Inspections: {{len .Inspections}}
Incidents: {{len .Incidents}}

=== Summary ===
Systems monitored: {{.Summary.SystemCount}}
Readings: {{.Summary.ReadingCount}}
Out of range: {{.Summary.OutOfRangeCount}}
Inspections: {{.Summary.InspectionCount}}
Incidents: {{.Summary.IncidentCount}}
{{range .Inspections}}{{if .HasNonConformity}}
! {{.SystemName}}: {{.NonCompliantCount}} non-conforming item(s){{end}}{{end}}
`
	t, err := template.New("summary").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, data)
}
