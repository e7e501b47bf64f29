package docxml

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// wordprocessingNS is the main WordprocessingML namespace.
const wordprocessingNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// documentPart is the canonical location of the main document XML.
const documentPart = "word/document.xml"

// Sentinel errors for package inspection.
var (
	ErrNotPackage      = errors.New("not a DOCX package")
	ErrMissingDocument = errors.New("package has no word/document.xml")
)

// Document is the parsed paragraph content of a DOCX package.
type Document struct {
	Paragraphs []Paragraph
}

// DocumentXML extracts the raw content of word/document.xml from a DOCX
// package without parsing it.
func DocumentXML(pkg []byte) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(pkg), int64(len(pkg)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotPackage, err)
	}
	for _, f := range zr.File {
		if f.Name != documentPart {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", documentPart, err)
		}
		defer rc.Close()
		content, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", documentPart, err)
		}
		return content, nil
	}
	return nil, ErrMissingDocument
}

// Read parses the paragraphs of a DOCX package. Text runs inside each
// paragraph are concatenated, so content split across runs by an editor
// comes back as one string.
func Read(pkg []byte) (*Document, error) {
	content, err := DocumentXML(pkg)
	if err != nil {
		return nil, err
	}
	paragraphs, err := parseParagraphs(content)
	if err != nil {
		return nil, err
	}
	return &Document{Paragraphs: paragraphs}, nil
}

// parseParagraphs walks document XML tokens collecting per-paragraph style
// and merged run text.
func parseParagraphs(content []byte) ([]Paragraph, error) {
	dec := xml.NewDecoder(bytes.NewReader(content))

	var (
		paragraphs []Paragraph
		current    *Paragraph
		inText     bool
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", documentPart, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				paragraphs = append(paragraphs, Paragraph{})
				current = &paragraphs[len(paragraphs)-1]
			case "pStyle":
				if current != nil {
					current.Style = attrValue(t, "val")
				}
			case "t":
				inText = current != nil
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "p":
				current = nil
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				current.Text += string(t)
			}
		}
	}

	return paragraphs, nil
}

func attrValue(el xml.StartElement, local string) string {
	for _, a := range el.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}
