package docgen

import (
	"fmt"
	"strings"

	"github.com/alnah/go-docgen/internal/docxml"
	"github.com/alnah/go-docgen/internal/fileutil"
)

// BuildPlain generates a document with a level-1 heading equal to title and
// one body paragraph per line of content, stores it in the cache, and
// returns the filename and cache key.
//
// A blank title falls back to DefaultTitle and blank content yields a
// heading-only document. Content is split on line breaks after trimming;
// interior blank lines become empty paragraphs, no line is dropped. When
// desiredFilename is empty, a name is synthesized from the lower-cased
// title and a timestamp.
func (s *Service) BuildPlain(title, content, desiredFilename string) (Result, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		title = DefaultTitle
	}
	content = strings.TrimSpace(content)

	now := s.cfg.now()
	base := desiredFilename
	if base == "" {
		base = fmt.Sprintf("%s_%s", strings.ToLower(title), now.Format(filenameTimeLayout))
	}
	filename := fileutil.EnsureExtension(fileutil.SanitizeFilename(base, false, now), DocExtension)

	builder := docxml.NewBuilder()
	builder.AddHeading(title, 1)
	if content != "" {
		for _, line := range splitLines(content) {
			builder.AddParagraph(line)
		}
	}

	pkg, err := builder.Bytes()
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrDocumentWrite, err)
	}

	return Result{Filename: filename, Key: s.cache.Put(filename, pkg)}, nil
}

// splitLines splits on line breaks, tolerating Windows line endings.
func splitLines(s string) []string {
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}
