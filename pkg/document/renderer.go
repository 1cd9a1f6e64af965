// Package document renders the patient status document from a placeholder
// template. The substitution contract mirrors the slide template the clinic
// used before: every occurrence of a <<PLACEHOLDER>> token in the template is
// replaced by the supplied text, then the result is exported as a PDF.
package document

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// Renderer produces a binary document from placeholder replacements.
type Renderer interface {
	Render(replacements map[string]string) ([]byte, error)
}

// PDFRenderer renders a line-oriented text template to an A4 PDF.
type PDFRenderer struct {
	templatePath string
}

func NewPDFRenderer(templatePath string) *PDFRenderer {
	return &PDFRenderer{templatePath: templatePath}
}

func (r *PDFRenderer) Render(replacements map[string]string) ([]byte, error) {
	raw, err := os.ReadFile(r.templatePath)
	if err != nil {
		return nil, fmt.Errorf("read template %s: %w", r.templatePath, err)
	}

	body := string(raw)
	for placeholder, text := range replacements {
		body = strings.ReplaceAll(body, placeholder, text)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	lines := strings.Split(strings.ReplaceAll(body, "\r\n", "\n"), "\n")
	for i, line := range lines {
		switch {
		case i == 0:
			// First template line is the document title.
			pdf.SetFont("Helvetica", "B", 16)
			pdf.MultiCell(0, 8, tr(line), "", "C", false)
			pdf.Ln(4)
		case strings.HasPrefix(line, "== "):
			pdf.SetFont("Helvetica", "B", 12)
			pdf.MultiCell(0, 7, tr(strings.TrimPrefix(line, "== ")), "", "L", false)
		default:
			pdf.SetFont("Helvetica", "", 11)
			pdf.MultiCell(0, 6, tr(line), "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

var _ Renderer = (*PDFRenderer)(nil)
