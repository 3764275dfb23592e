package pdf

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lince-tools/lince-report/pkg/models/domain"
	"github.com/lince-tools/lince-report/pkg/services/report"
)

func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: 30, G: 58, B: 95, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestWriter_Write(t *testing.T) {
	logo := testPNG(t)
	doc := &report.Document{
		Title: "Water Treatment Report",
		Branding: domain.ReportBranding{
			PrimaryColor:   "#1e3a5f",
			LogoData:       logo,
			ShowLogo:       true,
			LogoPosition:   domain.LogoRight,
			HeaderText:     "Aquatech Ltda",
			ShowHeaderText: true,
			FooterText:     "Confidential",
		},
		Fragments: []report.Fragment{
			{
				Block:        domain.BlockIdentification,
				KeepTogether: true,
				Elements: []report.Element{
					report.Heading{Text: "Water Treatment Report", Level: 1},
					report.Paragraph{Text: "Period: 01/01/2026 - 31/03/2026"},
					report.KeyValueBox{Title: "Client", Rows: []report.KeyValue{
						{Key: "Name", Value: "Aquatech"},
						{Key: "Contact", Value: "ana@aquatech.example · +55 11 99999-0000"},
					}},
				},
			},
			{
				Block: domain.BlockAnalyses,
				Elements: []report.Element{
					report.Heading{Text: "Analyses", Level: 1},
					report.Table{
						Header: []string{"Parameter", "01/03", "02/03"},
						Widths: []float64{0.5, 0.25, 0.25},
						Rows: []report.TableRow{
							{Cells: []report.TableCell{
								{Text: "pH"}, {Text: "7.2"}, {Text: "9.8", Flag: report.FlagOutOfRange},
							}},
						},
					},
					report.Image{Name: "chart-ph", PNG: testPNG(t), Caption: "pH"},
					report.Paragraph{Text: "Limit: 6.5 - ∞", Muted: true},
				},
			},
			{
				Block:        domain.BlockConclusion,
				KeepTogether: true,
				Elements: []report.Element{
					report.Heading{Text: "Conclusion", Level: 1},
					report.CounterRow{Counters: []report.Counter{
						{Label: "Systems", Value: 3},
						{Label: "Readings", Value: 120},
						{Label: "Inspections", Value: 4},
						{Label: "Incidents", Value: 1},
					}},
					report.Banner{Text: "2 readings were outside specification limits", Severity: report.BannerWarning},
					report.Spacer{Height: 4},
				},
			},
		},
	}

	out, err := NewWriter().Write(doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "output must be a PDF document")
	assert.Greater(t, len(out), 1000)
}

func TestWriter_Write_LongTableSpansPages(t *testing.T) {
	table := report.Table{Header: []string{"Date", "Value"}}
	for i := 0; i < 120; i++ {
		table.Rows = append(table.Rows, report.TableRow{Cells: []report.TableCell{
			{Text: "2026-03-01"}, {Text: "7.2"},
		}})
	}
	doc := &report.Document{
		Title: "Long",
		Fragments: []report.Fragment{
			{Block: domain.BlockAnalyses, Elements: []report.Element{table}},
		},
	}

	out, err := NewWriter().Write(doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestHexToRGB(t *testing.T) {
	fallback := [3]int{1, 2, 3}

	assert.Equal(t, [3]int{30, 58, 95}, hexToRGB("#1e3a5f", fallback))
	assert.Equal(t, [3]int{30, 58, 95}, hexToRGB("1e3a5f", fallback))
	assert.Equal(t, fallback, hexToRGB("", fallback))
	assert.Equal(t, fallback, hexToRGB("#zzzzzz", fallback))
	assert.Equal(t, fallback, hexToRGB("#fff", fallback))
}

func TestColumnWidths(t *testing.T) {
	even := columnWidths(report.Table{Header: []string{"a", "b"}}, 100)
	assert.Equal(t, []float64{50, 50}, even)

	weighted := columnWidths(report.Table{
		Header: []string{"a", "b"},
		Widths: []float64{0.7, 0.3},
	}, 100)
	assert.InDelta(t, 70, weighted[0], 0.001)
	assert.InDelta(t, 30, weighted[1], 0.001)

	assert.Nil(t, columnWidths(report.Table{}, 100))
}
