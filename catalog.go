package docgen

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alnah/go-docgen/internal/fileutil"
)

// templateCatalog lists templates in a fixed directory and resolves
// template names to paths. Names are validated before touching the
// filesystem so a caller-supplied name can never escape the directory.
type templateCatalog struct {
	dir string
}

func newTemplateCatalog(dir string) *templateCatalog {
	return &templateCatalog{dir: dir}
}

// list returns the sorted template file names in the catalog directory.
// A missing directory is created rather than reported as an error.
func (c *templateCatalog) list() ([]string, error) {
	if err := os.MkdirAll(c.dir, 0o750); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTemplatesDir, err)
	}

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTemplatesDir, err)
	}

	names := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), DocExtension) {
			names = append(names, entry.Name())
		}
	}

	sort.Strings(names)
	return names, nil
}

// resolve validates a template name and returns its path inside the
// catalog directory. Returns ErrTemplateNotFound if no such file exists.
// The extension may be omitted: "letter" resolves to "letter.docx".
func (c *templateCatalog) resolve(name string) (string, error) {
	if err := validateTemplateName(name); err != nil {
		return "", err
	}

	full := fileutil.EnsureExtension(name, DocExtension)
	path := filepath.Join(c.dir, full)
	if !fileutil.FileExists(path) {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, full)
	}
	return path, nil
}

// validateTemplateName rejects names that are empty or that could reach
// outside the catalog directory.
func validateTemplateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidTemplateName)
	}
	if fileutil.IsFilePath(name) {
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidTemplateName, name)
	}
	if strings.ContainsRune(name, '\x00') {
		return fmt.Errorf("%w: %q contains a null byte", ErrInvalidTemplateName, name)
	}
	if name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidTemplateName, name)
	}
	return nil
}
