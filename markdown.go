package docgen

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/alnah/go-docgen/internal/docxml"
	"github.com/alnah/go-docgen/internal/fileutil"
)

// BuildMarkdown generates a document from Markdown content: ATX headings
// become document headings (nested one level under the title), list items
// become bulleted paragraphs, and everything else becomes body paragraphs.
// Inline markup is flattened to its text. Filename and caching follow the
// BuildPlain contract.
func (s *Service) BuildMarkdown(title, markdown, desiredFilename string) (Result, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		title = DefaultTitle
	}

	now := s.cfg.now()
	base := desiredFilename
	if base == "" {
		base = fmt.Sprintf("%s_%s", strings.ToLower(title), now.Format(filenameTimeLayout))
	}
	filename := fileutil.EnsureExtension(fileutil.SanitizeFilename(base, false, now), DocExtension)

	builder := docxml.NewBuilder()
	builder.AddHeading(title, 1)
	if err := appendMarkdown(builder, []byte(markdown)); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrMarkdownParse, err)
	}

	pkg, err := builder.Bytes()
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrDocumentWrite, err)
	}

	return Result{Filename: filename, Key: s.cache.Put(filename, pkg)}, nil
}

// appendMarkdown parses source with Goldmark and flattens the block
// structure onto the document builder.
func appendMarkdown(builder *docxml.Builder, source []byte) error {
	root := goldmark.New().Parser().Parse(text.NewReader(source))

	return ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			// Markdown level 1 nests under the document title.
			builder.AddHeading(flattenText(node, source), node.Level+1)
			return ast.WalkSkipChildren, nil
		case *ast.ListItem:
			builder.AddBullet(flattenText(node, source))
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph:
			builder.AddParagraph(flattenText(node, source))
			return ast.WalkSkipChildren, nil
		case *ast.CodeBlock:
			appendVerbatimLines(builder, node.Lines(), source)
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock:
			appendVerbatimLines(builder, node.Lines(), source)
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
}

// flattenText collects the inline text beneath a node, joining soft and
// hard line breaks with spaces.
func flattenText(n ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := c.(*ast.Text); ok {
			sb.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte(' ')
			}
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}

// appendVerbatimLines emits code block lines as individual paragraphs,
// preserving blank lines and trailing-newline trimming.
func appendVerbatimLines(builder *docxml.Builder, lines *text.Segments, source []byte) {
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		builder.AddParagraph(strings.TrimRight(string(segment.Value(source)), "\n"))
	}
}
