// Package docxml assembles and inspects minimal WordprocessingML (DOCX)
// packages. The writer covers exactly what document generation needs:
// styled headings, body paragraphs, and bulleted lines. The reader locates
// word/document.xml inside the package and walks its paragraph text, which
// is enough for placeholder extraction and for asserting document structure
// in tests.
package docxml

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

// Heading level bounds in WordprocessingML.
const (
	MinHeadingLevel = 1
	MaxHeadingLevel = 9
)

// Built-in paragraph style identifiers.
const (
	styleHeadingPrefix = "Heading"
	styleListParagraph = "ListParagraph"
)

// bulletPrefix marks list items. A full bullet definition needs a
// numbering part; a literal marker keeps the package minimal and renders
// identically in every viewer.
const bulletPrefix = "• "

// Builder accumulates paragraphs and assembles them into a DOCX package.
// The zero value is not usable; call NewBuilder.
type Builder struct {
	paragraphs []Paragraph
}

// Paragraph is one block of document text with an optional paragraph style.
type Paragraph struct {
	Style string // empty for body text
	Text  string
}

// NewBuilder creates an empty document builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddHeading appends a heading paragraph. Levels outside [1,9] are clamped.
func (b *Builder) AddHeading(text string, level int) {
	if level < MinHeadingLevel {
		level = MinHeadingLevel
	}
	if level > MaxHeadingLevel {
		level = MaxHeadingLevel
	}
	b.paragraphs = append(b.paragraphs, Paragraph{
		Style: fmt.Sprintf("%s%d", styleHeadingPrefix, level),
		Text:  text,
	})
}

// AddParagraph appends a body paragraph. Empty text yields an empty
// paragraph, not a dropped one.
func (b *Builder) AddParagraph(text string) {
	b.paragraphs = append(b.paragraphs, Paragraph{Text: text})
}

// AddBullet appends a bulleted list paragraph.
func (b *Builder) AddBullet(text string) {
	b.paragraphs = append(b.paragraphs, Paragraph{
		Style: styleListParagraph,
		Text:  bulletPrefix + text,
	})
}

// Bytes assembles the accumulated paragraphs into a complete DOCX package.
func (b *Builder) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", packageRelsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/styles.xml", stylesXML()},
		{"word/document.xml", b.documentXML()},
	}

	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("creating part %s: %w", part.name, err)
		}
		if _, err := w.Write([]byte(part.content)); err != nil {
			return nil, fmt.Errorf("writing part %s: %w", part.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("closing package: %w", err)
	}
	return buf.Bytes(), nil
}

// documentXML renders the main document part.
func (b *Builder) documentXML() string {
	var sb strings.Builder
	sb.WriteString(xml.Header)
	sb.WriteString(`<w:document xmlns:w="` + wordprocessingNS + `"><w:body>`)
	for _, p := range b.paragraphs {
		writeParagraph(&sb, p)
	}
	sb.WriteString(`</w:body></w:document>`)
	return sb.String()
}

func writeParagraph(sb *strings.Builder, p Paragraph) {
	sb.WriteString(`<w:p>`)
	if p.Style != "" {
		sb.WriteString(`<w:pPr><w:pStyle w:val="`)
		sb.WriteString(p.Style)
		sb.WriteString(`"/></w:pPr>`)
	}
	sb.WriteString(`<w:r><w:t xml:space="preserve">`)
	// EscapeText cannot fail writing to a strings.Builder.
	_ = xml.EscapeText(sb, []byte(p.Text))
	sb.WriteString(`</w:t></w:r></w:p>`)
}

// stylesXML renders the styles part: a default style, the nine heading
// styles, and the list paragraph style.
func stylesXML() string {
	var sb strings.Builder
	sb.WriteString(xml.Header)
	sb.WriteString(`<w:styles xmlns:w="` + wordprocessingNS + `">`)
	sb.WriteString(`<w:style w:type="paragraph" w:default="1" w:styleId="Normal">` +
		`<w:name w:val="Normal"/></w:style>`)
	for level := MinHeadingLevel; level <= MaxHeadingLevel; level++ {
		fmt.Fprintf(&sb,
			`<w:style w:type="paragraph" w:styleId="%[1]s%[2]d">`+
				`<w:name w:val="heading %[2]d"/><w:basedOn w:val="Normal"/>`+
				`<w:pPr><w:outlineLvl w:val="%[3]d"/></w:pPr>`+
				`<w:rPr><w:b/><w:sz w:val="%[4]d"/></w:rPr></w:style>`,
			styleHeadingPrefix, level, level-1, headingHalfPoints(level))
	}
	sb.WriteString(`<w:style w:type="paragraph" w:styleId="` + styleListParagraph + `">` +
		`<w:name w:val="List Paragraph"/><w:basedOn w:val="Normal"/>` +
		`<w:pPr><w:ind w:left="720"/></w:pPr></w:style>`)
	sb.WriteString(`</w:styles>`)
	return sb.String()
}

// Fixed package parts. Content types declare the document and styles
// parts; the relationship parts bind them together.
const (
	contentTypesXML = xml.Header +
		`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
		`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
		`<Default Extension="xml" ContentType="application/xml"/>` +
		`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
		`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
		`</Types>`

	packageRelsXML = xml.Header +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
		`</Relationships>`

	documentRelsXML = xml.Header +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>` +
		`</Relationships>`
)

// headingHalfPoints maps a heading level to a font size in half-points,
// stepping down from 32pt (level 1) to a 12pt floor.
func headingHalfPoints(level int) int {
	const (
		largest = 64 // 32pt
		step    = 8  // 4pt per level
		floor   = 24 // 12pt
	)
	size := largest - (level-1)*step
	if size < floor {
		size = floor
	}
	return size
}
