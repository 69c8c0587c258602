package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

const (
	pageWidth   = 190.0
	minColWidth = 12.0
)

// PDFExporter renders datasets into a basic tabular PDF.
type PDFExporter struct{}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Render creates an A4 document with an optional title and a bordered table.
// Column widths follow the longest cell in each column.
func (e *PDFExporter) Render(data Dataset, title string) ([]byte, error) {
	if len(data.Headers) == 0 {
		return nil, fmt.Errorf("pdf requires at least one header")
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.AddPage()

	if title != "" {
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 10, strings.ToUpper(title), "", 1, "C", false, 0, "")
		pdf.Ln(5)
	}

	widths := columnWidths(data)

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, header := range data.Headers {
		pdf.CellFormat(widths[i], 8, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, row := range data.Rows {
		for i := range data.Headers {
			var value string
			if i < len(row) {
				value = row[i]
			}
			pdf.CellFormat(widths[i], 7, value, "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func columnWidths(data Dataset) []float64 {
	longest := make([]int, len(data.Headers))
	for i, header := range data.Headers {
		longest[i] = len(header)
	}
	for _, row := range data.Rows {
		for i := 0; i < len(row) && i < len(longest); i++ {
			if len(row[i]) > longest[i] {
				longest[i] = len(row[i])
			}
		}
	}
	total := 0
	for _, l := range longest {
		total += l
	}
	widths := make([]float64, len(longest))
	for i, l := range longest {
		w := pageWidth * float64(l) / float64(total)
		if w < minColWidth {
			w = minColWidth
		}
		widths[i] = w
	}
	// re-fit after minimum widths pushed the row past the page
	sum := 0.0
	for _, w := range widths {
		sum += w
	}
	if sum > pageWidth {
		for i := range widths {
			widths[i] *= pageWidth / sum
		}
	}
	return widths
}
