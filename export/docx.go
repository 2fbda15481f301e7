package export

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// KrutiDevFont is the legacy font the glyph encoding targets. Each run in
// the generated document is set to this font so the ASCII-range glyphs
// render as Devanagari.
const KrutiDevFont = "Kruti Dev 010"

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const documentHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>`

const documentFooter = `</w:body>
</w:document>`

// WriteDocx writes the text as a minimal Word document. Lines become
// paragraphs; every run uses the Kruti Dev font.
func WriteDocx(w io.Writer, text string) error {
	zw := zip.NewWriter(w)

	parts := []struct {
		name, content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", relsXML},
		{"word/document.xml", documentXML(text)},
	}

	for _, p := range parts {
		f, err := zw.Create(p.name)
		if err != nil {
			return fmt.Errorf("export: create %s: %w", p.name, err)
		}
		if _, err := io.WriteString(f, p.content); err != nil {
			return fmt.Errorf("export: write %s: %w", p.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("export: finalize document: %w", err)
	}
	return nil
}

func documentXML(text string) string {
	var b strings.Builder
	b.WriteString(documentHeader)
	for _, line := range strings.Split(text, "\n") {
		b.WriteString("<w:p>")
		if line != "" {
			b.WriteString(`<w:r><w:rPr><w:rFonts w:ascii="` + KrutiDevFont +
				`" w:hAnsi="` + KrutiDevFont +
				`" w:cs="` + KrutiDevFont + `"/></w:rPr>`)
			b.WriteString(`<w:t xml:space="preserve">`)
			b.WriteString(escapeXML(line))
			b.WriteString(`</w:t></w:r>`)
		}
		b.WriteString("</w:p>")
	}
	b.WriteString(documentFooter)
	return b.String()
}

func escapeXML(s string) string {
	var b strings.Builder
	if err := xml.EscapeText(&b, []byte(s)); err != nil {
		return s
	}
	return b.String()
}
