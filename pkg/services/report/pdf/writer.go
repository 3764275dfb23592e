// Package pdf turns an assembled document into a paginated A4 PDF.
package pdf

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/lince-tools/lince-report/pkg/models/domain"
	"github.com/lince-tools/lince-report/pkg/services/report"
)

var (
	colorText      = [3]int{44, 62, 80}
	colorMuted     = [3]int{127, 140, 141}
	colorTableAlt  = [3]int{241, 245, 249}
	colorBoxFill   = [3]int{248, 249, 250}
	colorGridLine  = [3]int{220, 220, 220}
	colorAlert     = [3]int{217, 58, 43}
	colorCompliant = [3]int{39, 140, 80}
	colorWarnFill  = [3]int{253, 243, 208}
	colorWarnText  = [3]int{146, 100, 14}
	colorNotVerif  = [3]int{230, 126, 34}
)

const (
	marginSide    = 15.0
	marginTop     = 26.0
	marginBottom  = 20.0
	lineHeight    = 5.0
	rowHeight     = 6.5
	chartWidth    = 150.0
	gridImgHeight = 45.0
)

// Writer renders documents with a fixed A4 portrait page template: branded
// header, footer with a page/totalPages stamp, fixed margins.
type Writer struct{}

// NewWriter creates a Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write renders the document and returns the PDF bytes.
func (w *Writer) Write(doc *report.Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(doc.Title, true)
	pdf.SetMargins(marginSide, marginTop, marginSide)
	pdf.SetAutoPageBreak(true, marginBottom)
	pdf.AliasNbPages("")

	primary := hexToRGB(doc.Branding.PrimaryColor, [3]int{30, 58, 95})
	pageWidth, pageHeight := 210.0, 297.0
	usable := pageWidth - 2*marginSide

	pdf.SetHeaderFuncMode(func() {
		pdf.SetFillColor(primary[0], primary[1], primary[2])
		pdf.Rect(0, 0, pageWidth, 3, "F")

		y := 8.0
		if doc.Branding.ShowLogo && len(doc.Branding.LogoData) > 0 {
			w.drawLogo(pdf, doc.Branding, y)
		}
		if doc.Branding.ShowHeaderText && doc.Branding.HeaderText != "" {
			pdf.SetFont("Arial", "", 9)
			pdf.SetTextColor(colorMuted[0], colorMuted[1], colorMuted[2])
			pdf.SetXY(marginSide, y)
			pdf.CellFormat(usable, 6, tr(doc.Branding.HeaderText), "", 0, "C", false, 0, "")
		}
		pdf.SetY(marginTop)
	}, true)

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetDrawColor(colorGridLine[0], colorGridLine[1], colorGridLine[2])
		pdf.Line(marginSide, pdf.GetY(), pageWidth-marginSide, pdf.GetY())
		pdf.SetY(-13)
		pdf.SetFont("Arial", "", 8)
		pdf.SetTextColor(colorMuted[0], colorMuted[1], colorMuted[2])
		pdf.CellFormat(usable/2, 6, tr(doc.Branding.FooterText), "", 0, "L", false, 0, "")
		pdf.CellFormat(usable/2, 6, fmt.Sprintf("%d / {nb}", pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	pdf.AddPage()

	breakTrigger := pageHeight - marginBottom
	for _, fragment := range doc.Fragments {
		if fragment.KeepTogether {
			height := w.estimateHeight(pdf, fragment, usable)
			if pdf.GetY()+height > breakTrigger && pdf.GetY() > marginTop+1 {
				pdf.AddPage()
			}
		}
		for _, element := range fragment.Elements {
			w.writeElement(pdf, tr, element, usable, primary)
		}
		pdf.Ln(6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (w *Writer) drawLogo(pdf *gofpdf.Fpdf, branding domain.ReportBranding, y float64) {
	name := "branding-logo"
	if pdf.GetImageInfo(name) == nil {
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(branding.LogoData))
	}
	if pdf.Err() {
		return
	}

	logoWidth := 28.0
	x := marginSide
	switch branding.LogoPosition {
	case domain.LogoCenter:
		x = (210.0 - logoWidth) / 2
	case domain.LogoRight:
		x = 210.0 - marginSide - logoWidth
	}
	pdf.ImageOptions(name, x, y, logoWidth, 0, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
}

func (w *Writer) writeElement(pdf *gofpdf.Fpdf, tr func(string) string, element report.Element, usable float64, primary [3]int) {
	switch e := element.(type) {
	case report.Heading:
		w.writeHeading(pdf, tr, e, primary)
	case report.Paragraph:
		w.writeParagraph(pdf, tr, e, usable)
	case report.KeyValueBox:
		w.writeKeyValueBox(pdf, tr, e, usable, primary)
	case report.Table:
		w.writeTable(pdf, tr, e, usable, primary)
	case report.Image:
		w.writeImage(pdf, tr, e, usable)
	case report.ImageGrid:
		w.writeImageGrid(pdf, tr, e, usable, primary)
	case report.CounterRow:
		w.writeCounterRow(pdf, tr, e, usable, primary)
	case report.Banner:
		w.writeBanner(pdf, tr, e, usable)
	case report.Spacer:
		pdf.Ln(e.Height)
	}
}

func (w *Writer) writeHeading(pdf *gofpdf.Fpdf, tr func(string) string, h report.Heading, primary [3]int) {
	switch h.Level {
	case 1:
		pdf.Ln(2)
		pdf.SetFont("Arial", "B", 15)
		pdf.SetTextColor(primary[0], primary[1], primary[2])
		pdf.CellFormat(0, 9, tr(h.Text), "", 1, "L", false, 0, "")
		pdf.SetDrawColor(primary[0], primary[1], primary[2])
		pdf.SetLineWidth(0.5)
		pdf.Line(marginSide, pdf.GetY(), marginSide+40, pdf.GetY())
		pdf.SetLineWidth(0.2)
		pdf.Ln(3)
	case 2:
		pdf.Ln(2)
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(colorText[0], colorText[1], colorText[2])
		pdf.CellFormat(0, 7, tr(h.Text), "", 1, "L", false, 0, "")
		pdf.Ln(1)
	default:
		pdf.SetFont("Arial", "B", 10)
		pdf.SetTextColor(colorText[0], colorText[1], colorText[2])
		pdf.CellFormat(0, 6, tr(h.Text), "", 1, "L", false, 0, "")
	}
}

func (w *Writer) writeParagraph(pdf *gofpdf.Fpdf, tr func(string) string, p report.Paragraph, usable float64) {
	pdf.SetFont("Arial", "", 10)
	if p.Muted {
		pdf.SetFont("Arial", "I", 10)
		pdf.SetTextColor(colorMuted[0], colorMuted[1], colorMuted[2])
	} else {
		pdf.SetTextColor(colorText[0], colorText[1], colorText[2])
	}
	pdf.MultiCell(usable, lineHeight, tr(p.Text), "", "L", false)
	pdf.Ln(1)
}

func (w *Writer) writeKeyValueBox(pdf *gofpdf.Fpdf, tr func(string) string, box report.KeyValueBox, usable float64, primary [3]int) {
	height := float64(len(box.Rows))*rowHeight + 6
	if box.Title != "" {
		height += 7
	}

	y := pdf.GetY()
	pdf.SetFillColor(colorBoxFill[0], colorBoxFill[1], colorBoxFill[2])
	pdf.SetDrawColor(colorGridLine[0], colorGridLine[1], colorGridLine[2])
	pdf.RoundedRect(marginSide, y, usable, height, 2, "1234", "FD")

	pdf.SetY(y + 3)
	if box.Title != "" {
		pdf.SetX(marginSide + 4)
		pdf.SetFont("Arial", "B", 11)
		pdf.SetTextColor(primary[0], primary[1], primary[2])
		pdf.CellFormat(0, 7, tr(box.Title), "", 1, "L", false, 0, "")
	}
	for _, row := range box.Rows {
		pdf.SetX(marginSide + 4)
		pdf.SetFont("Arial", "B", 10)
		pdf.SetTextColor(colorMuted[0], colorMuted[1], colorMuted[2])
		pdf.CellFormat(40, rowHeight, tr(row.Key), "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(colorText[0], colorText[1], colorText[2])
		pdf.CellFormat(usable-48, rowHeight, tr(row.Value), "", 1, "L", false, 0, "")
	}
	pdf.SetY(y + height + 2)
}

func (w *Writer) writeTable(pdf *gofpdf.Fpdf, tr func(string) string, table report.Table, usable float64, primary [3]int) {
	widths := columnWidths(table, usable)

	writeHeader := func() {
		pdf.SetFont("Arial", "B", 9)
		pdf.SetFillColor(primary[0], primary[1], primary[2])
		pdf.SetTextColor(255, 255, 255)
		for i, col := range table.Header {
			pdf.CellFormat(widths[i], rowHeight, truncate(pdf, tr(col), widths[i]), "", 0, "L", true, 0, "")
		}
		pdf.Ln(rowHeight)
	}
	writeHeader()

	pdf.SetFont("Arial", "", 9)
	for rowIdx, row := range table.Rows {
		// Repeat the header when a row pushes past the page break.
		if pdf.GetY()+rowHeight > 297-marginBottom {
			pdf.AddPage()
			writeHeader()
			pdf.SetFont("Arial", "", 9)
		}
		fill := rowIdx%2 == 1
		pdf.SetFillColor(colorTableAlt[0], colorTableAlt[1], colorTableAlt[2])
		for i, cell := range row.Cells {
			if i >= len(widths) {
				break
			}
			r, g, b := cellColor(cell.Flag)
			pdf.SetTextColor(r, g, b)
			pdf.CellFormat(widths[i], rowHeight, truncate(pdf, tr(cell.Text), widths[i]), "", 0, "L", fill, 0, "")
		}
		pdf.Ln(rowHeight)
	}
	pdf.SetTextColor(colorText[0], colorText[1], colorText[2])
	pdf.Ln(2)
}

func (w *Writer) writeImage(pdf *gofpdf.Fpdf, tr func(string) string, img report.Image, usable float64) {
	if len(img.PNG) == 0 {
		return
	}
	name := imageName(img)
	if pdf.GetImageInfo(name) == nil {
		pdf.RegisterImageOptionsReader(name, gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(img.PNG))
	}
	if pdf.Err() {
		return
	}

	x := marginSide + (usable-chartWidth)/2
	pdf.ImageOptions(name, x, pdf.GetY(), chartWidth, 0, true, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	if img.Caption != "" {
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(colorMuted[0], colorMuted[1], colorMuted[2])
		pdf.CellFormat(0, 5, tr(img.Caption), "", 1, "C", false, 0, "")
	}
	pdf.Ln(2)
}

func (w *Writer) writeImageGrid(pdf *gofpdf.Fpdf, tr func(string) string, grid report.ImageGrid, usable float64, primary [3]int) {
	if grid.Title != "" {
		w.writeHeading(pdf, tr, report.Heading{Text: grid.Title, Level: 3}, primary)
	}
	perRow := grid.PerRow
	if perRow < 1 {
		perRow = 2
	}
	cellWidth := (usable - float64(perRow-1)*4) / float64(perRow)

	col := 0
	for _, img := range grid.Images {
		if len(img.PNG) == 0 {
			continue
		}
		name := imageName(img)
		if pdf.GetImageInfo(name) == nil {
			pdf.RegisterImageOptionsReader(name, gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(img.PNG))
		}
		if pdf.Err() {
			return
		}

		if col == 0 && pdf.GetY()+gridImgHeight > 297-marginBottom {
			pdf.AddPage()
		}
		x := marginSide + float64(col)*(cellWidth+4)
		pdf.ImageOptions(name, x, pdf.GetY(), cellWidth, gridImgHeight, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
		col++
		if col == perRow {
			col = 0
			pdf.SetY(pdf.GetY() + gridImgHeight + 3)
		}
	}
	if col != 0 {
		pdf.SetY(pdf.GetY() + gridImgHeight + 3)
	}
}

func (w *Writer) writeCounterRow(pdf *gofpdf.Fpdf, tr func(string) string, counters report.CounterRow, usable float64, primary [3]int) {
	n := len(counters.Counters)
	if n == 0 {
		return
	}
	boxWidth := (usable - float64(n-1)*4) / float64(n)
	boxHeight := 20.0
	y := pdf.GetY()

	for i, counter := range counters.Counters {
		x := marginSide + float64(i)*(boxWidth+4)
		pdf.SetFillColor(colorBoxFill[0], colorBoxFill[1], colorBoxFill[2])
		pdf.SetDrawColor(colorGridLine[0], colorGridLine[1], colorGridLine[2])
		pdf.RoundedRect(x, y, boxWidth, boxHeight, 2, "1234", "FD")

		pdf.SetXY(x, y+3)
		pdf.SetFont("Arial", "B", 16)
		pdf.SetTextColor(primary[0], primary[1], primary[2])
		pdf.CellFormat(boxWidth, 8, strconv.Itoa(counter.Value), "", 2, "C", false, 0, "")
		pdf.SetFont("Arial", "", 8)
		pdf.SetTextColor(colorMuted[0], colorMuted[1], colorMuted[2])
		pdf.CellFormat(boxWidth, 5, tr(counter.Label), "", 0, "C", false, 0, "")
	}
	pdf.SetY(y + boxHeight + 4)
}

func (w *Writer) writeBanner(pdf *gofpdf.Fpdf, tr func(string) string, banner report.Banner, usable float64) {
	lines := pdf.SplitText(banner.Text, usable-8)
	height := float64(len(lines))*lineHeight + 4

	y := pdf.GetY()
	if banner.Severity == report.BannerWarning {
		pdf.SetFillColor(colorWarnFill[0], colorWarnFill[1], colorWarnFill[2])
		pdf.SetTextColor(colorWarnText[0], colorWarnText[1], colorWarnText[2])
	} else {
		pdf.SetFillColor(colorBoxFill[0], colorBoxFill[1], colorBoxFill[2])
		pdf.SetTextColor(colorText[0], colorText[1], colorText[2])
	}
	pdf.RoundedRect(marginSide, y, usable, height, 2, "1234", "F")
	pdf.SetXY(marginSide+4, y+2)
	pdf.SetFont("Arial", "B", 10)
	pdf.MultiCell(usable-8, lineHeight, tr(banner.Text), "", "L", false)
	pdf.SetY(y + height + 3)
	pdf.SetTextColor(colorText[0], colorText[1], colorText[2])
}

// estimateHeight approximates the rendered height of a fragment so the
// keep-together rule can decide whether it still fits the current page.
func (w *Writer) estimateHeight(pdf *gofpdf.Fpdf, fragment report.Fragment, usable float64) float64 {
	total := 0.0
	for _, element := range fragment.Elements {
		switch e := element.(type) {
		case report.Heading:
			total += 12
		case report.Paragraph:
			total += float64(len(pdf.SplitText(e.Text, usable)))*lineHeight + 1
		case report.KeyValueBox:
			total += float64(len(e.Rows))*rowHeight + 15
		case report.Table:
			total += float64(len(e.Rows)+1)*rowHeight + 2
		case report.Image:
			if len(e.PNG) > 0 {
				total += chartWidth/2 + 7
			}
		case report.ImageGrid:
			perRow := e.PerRow
			if perRow < 1 {
				perRow = 2
			}
			rows := (len(e.Images) + perRow - 1) / perRow
			total += float64(rows)*(gridImgHeight+3) + 12
		case report.CounterRow:
			total += 24
		case report.Banner:
			total += float64(len(pdf.SplitText(e.Text, usable-8)))*lineHeight + 7
		case report.Spacer:
			total += e.Height
		}
	}
	return total
}

func columnWidths(table report.Table, usable float64) []float64 {
	cols := len(table.Header)
	if cols == 0 {
		return nil
	}
	widths := make([]float64, cols)
	if len(table.Widths) == cols {
		for i, fraction := range table.Widths {
			widths[i] = fraction * usable
		}
		return widths
	}
	for i := range widths {
		widths[i] = usable / float64(cols)
	}
	return widths
}

func cellColor(flag report.CellFlag) (int, int, int) {
	switch flag {
	case report.FlagOutOfRange, report.FlagNonCompliant, report.FlagHighPriority:
		return colorAlert[0], colorAlert[1], colorAlert[2]
	case report.FlagCompliant:
		return colorCompliant[0], colorCompliant[1], colorCompliant[2]
	case report.FlagNotApplicable:
		return colorMuted[0], colorMuted[1], colorMuted[2]
	case report.FlagNotVerified:
		return colorNotVerif[0], colorNotVerif[1], colorNotVerif[2]
	}
	return colorText[0], colorText[1], colorText[2]
}

func truncate(pdf *gofpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width-2 {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && pdf.GetStringWidth(string(runes)+"...") > width-2 {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}

func imageName(img report.Image) string {
	if img.Name != "" {
		return img.Name
	}
	return fmt.Sprintf("img-%d", len(img.PNG))
}

func hexToRGB(hex string, fallback [3]int) [3]int {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 {
		return fallback
	}
	var rgb [3]int
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseInt(hex[i*2:i*2+2], 16, 32)
		if err != nil {
			return fallback
		}
		rgb[i] = int(v)
	}
	return rgb
}
