package export

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"time"
)

// DOCXLayout controls typography of generated Word documents.
type DOCXLayout struct {
	FontFamily string
	// FontSize is in half-points (24 = 12pt).
	FontSize int
	// LineSpacing is a multiple of single spacing.
	LineSpacing float64
	// Spacing after paragraphs, in twentieths of a point.
	DateSpacingAfter      int
	ParagraphSpacingAfter int
}

// DefaultDOCXLayout is 12pt Times New Roman with 1.5 line spacing.
var DefaultDOCXLayout = DOCXLayout{
	FontFamily:            "Times New Roman",
	FontSize:              24,
	LineSpacing:           1.5,
	DateSpacingAfter:      400,
	ParagraphSpacingAfter: 200,
}

// paragraph is a run of consecutive non-blank lines. A nil paragraph is an
// empty spacing paragraph standing for one blank line.
type paragraph []string

// splitParagraphs groups lines into paragraphs on blank lines and emits an
// explicit spacing paragraph for every blank line.
func splitParagraphs(text string) []paragraph {
	var (
		out     []paragraph
		current paragraph
	)
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			current = append(current, line)
			continue
		}
		if len(current) > 0 {
			out = append(out, current)
			current = nil
		}
		out = append(out, nil)
	}
	if len(current) > 0 {
		out = append(out, current)
	}
	return out
}

// WriteDOCX writes doc as an Office Open XML word-processing package to w.
func WriteDOCX(w io.Writer, doc Document, layout DOCXLayout) error {
	zw := zip.NewWriter(w)

	parts := []struct {
		name string
		body string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", packageRelsXML},
		{"docProps/core.xml", coreXML(doc)},
		{"word/document.xml", documentXML(doc, layout)},
	}

	for _, p := range parts {
		f, err := zw.CreateHeader(&zip.FileHeader{
			Name:     p.name,
			Method:   zip.Deflate,
			Modified: time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			return fmt.Errorf("create %s: %w", p.name, err)
		}
		if _, err := io.WriteString(f, p.body); err != nil {
			return fmt.Errorf("write %s: %w", p.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("close package: %w", err)
	}
	return nil
}

func documentXML(doc Document, l DOCXLayout) string {
	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)

	// Date, right-aligned.
	fmt.Fprintf(&b, `<w:p><w:pPr><w:spacing w:after="%d"/><w:jc w:val="right"/></w:pPr>`, l.DateSpacingAfter)
	writeRun(&b, l, []string{doc.Date})
	b.WriteString(`</w:p>`)

	line := int(l.LineSpacing*240 + 0.5)
	for _, p := range splitParagraphs(doc.Body) {
		if p == nil {
			fmt.Fprintf(&b, `<w:p><w:pPr><w:spacing w:after="%d"/></w:pPr></w:p>`, l.ParagraphSpacingAfter)
			continue
		}
		fmt.Fprintf(&b, `<w:p><w:pPr><w:spacing w:after="%d" w:line="%d" w:lineRule="auto"/></w:pPr>`,
			l.ParagraphSpacingAfter, line)
		writeRun(&b, l, p)
		b.WriteString(`</w:p>`)
	}

	b.WriteString(`<w:sectPr><w:pgSz w:w="11906" w:h="16838"/>` +
		`<w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440" w:header="708" w:footer="708" w:gutter="0"/>` +
		`</w:sectPr></w:body></w:document>`)
	return b.String()
}

// writeRun emits one run holding lines separated by line breaks.
func writeRun(b *strings.Builder, l DOCXLayout, lines []string) {
	font := escapeXML(l.FontFamily)
	fmt.Fprintf(b, `<w:r><w:rPr><w:rFonts w:ascii="%s" w:hAnsi="%s" w:cs="%s"/><w:sz w:val="%d"/><w:szCs w:val="%d"/></w:rPr>`,
		font, font, font, l.FontSize, l.FontSize)
	for i, line := range lines {
		if i > 0 {
			b.WriteString(`<w:br/>`)
		}
		b.WriteString(`<w:t xml:space="preserve">`)
		b.WriteString(escapeXML(line))
		b.WriteString(`</w:t>`)
	}
	b.WriteString(`</w:r>`)
}

func coreXML(doc Document) string {
	return xml.Header +
		`<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" ` +
		`xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" ` +
		`xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">` +
		`<dc:title>` + DocumentTitle + `</dc:title>` +
		`<dc:subject>` + DocumentSubject + `</dc:subject>` +
		`<dc:creator>` + DOCXCreator + `</dc:creator>` +
		`<cp:lastModifiedBy>` + escapeXML(doc.author()) + `</cp:lastModifiedBy>` +
		`<dc:description>Professional resignation letter</dc:description>` +
		`</cp:coreProperties>`
}

// escapeXML escapes s for element or attribute content and drops characters
// that are not allowed in XML 1.0.
func escapeXML(s string) string {
	var b strings.Builder
	clean := strings.Map(func(r rune) rune {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			return r
		case r < 0x20, r == 0xFFFE, r == 0xFFFF:
			return -1
		}
		return r
	}, s)
	xml.Escape(&b, []byte(clean))
	return b.String()
}

const contentTypesXML = xml.Header +
	`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>` +
	`</Types>`

const packageRelsXML = xml.Header +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>` +
	`</Relationships>`
