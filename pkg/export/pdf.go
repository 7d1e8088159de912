package export

import (
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// PDFLayout controls page geometry and typography of generated PDFs. Lengths
// are in millimeters, font sizes in points.
type PDFLayout struct {
	FontFamily   string
	FontSize     float64
	DateFontSize float64
	LineHeight   float64 // multiple of FontSize
	MarginTop    float64
	MarginRight  float64
	MarginBottom float64
	MarginLeft   float64
	// BodyOffset is the gap between the date line and the first body line.
	BodyOffset float64
}

// DefaultPDFLayout is an A4 letter with 25mm margins and 12pt body text.
var DefaultPDFLayout = PDFLayout{
	FontFamily:   "Helvetica",
	FontSize:     12,
	DateFontSize: 10,
	LineHeight:   1.6,
	MarginTop:    25,
	MarginRight:  25,
	MarginBottom: 25,
	MarginLeft:   25,
	BodyOffset:   20,
}

// WritePDF lays out doc on A4 pages and writes the PDF to w.
func WritePDF(w io.Writer, doc Document, layout PDFLayout) error {
	pdf := buildPDF(doc, layout)
	return pdf.Output(w)
}

func buildPDF(doc Document, l PDFLayout) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(DocumentTitle, true)
	pdf.SetSubject(DocumentSubject, true)
	pdf.SetAuthor(doc.author(), true)
	pdf.SetCreator(PDFCreator, true)
	pdf.SetMargins(l.MarginLeft, l.MarginTop, l.MarginRight)
	pdf.SetAutoPageBreak(false, l.MarginBottom)

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageWidth, pageHeight := pdf.GetPageSize()
	textWidth := pageWidth - l.MarginLeft - l.MarginRight

	pdf.AddPage()

	pdf.SetFont(l.FontFamily, "", l.DateFontSize)
	date := tr(doc.Date)
	pdf.Text(pageWidth-l.MarginRight-pdf.GetStringWidth(date), l.MarginTop, date)

	pdf.SetFont(l.FontFamily, "", l.FontSize)
	lineHeight := pdf.PointConvert(l.FontSize * l.LineHeight)
	y := l.MarginTop + l.BodyOffset

	for _, line := range wrapLines(tr(doc.Body), textWidth, pdf.GetStringWidth) {
		if y > pageHeight-l.MarginBottom {
			pdf.AddPage()
			y = l.MarginTop
		}
		if line != "" {
			pdf.Text(l.MarginLeft, y, line)
		}
		y += lineHeight
	}

	return pdf
}

// wrapLines splits text on newlines and greedily fills each line with words
// up to width as measured by measure. Words wider than a line are broken.
func wrapLines(text string, width float64, measure func(string) float64) []string {
	var out []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}

		line := ""
		for _, word := range words {
			for measure(word) > width {
				if line != "" {
					out = append(out, line)
					line = ""
				}
				head, tail := breakWord(word, width, measure)
				out = append(out, head)
				word = tail
			}
			switch {
			case word == "":
			case line == "":
				line = word
			case measure(line+" "+word) <= width:
				line += " " + word
			default:
				out = append(out, line)
				line = word
			}
		}
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// breakWord returns the longest prefix of word fitting width (at least one
// byte) and the remainder. Text is single-byte encoded at this point.
func breakWord(word string, width float64, measure func(string) float64) (string, string) {
	n := 1
	for n < len(word) && measure(word[:n+1]) <= width {
		n++
	}
	return word[:n], word[n:]
}
