package docgen

import (
	"fmt"
	"os"
	"time"
)

// templateRenderer renders a template file with variable bindings into
// document bytes. The production implementation wraps the go-stencil
// engine; tests inject fakes.
type templateRenderer interface {
	Render(path string, bindings map[string]any) ([]byte, error)
}

// Service is the document generation façade: it composes the template
// catalog, the document builders, the rendering engine, and the document
// cache. Construct one per process and share it; all methods are safe for
// concurrent use.
type Service struct {
	cfg      serviceConfig
	catalog  *templateCatalog
	renderer templateRenderer
	cache    *DocumentCache
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTemplatesDir).
func New(opts ...Option) (*Service, error) {
	s := &Service{
		cfg: serviceConfig{
			templatesDir: DefaultTemplatesDir,
			now:          time.Now,
		},
		renderer: newStencilRenderer(),
	}

	for _, opt := range opts {
		opt(s)
	}

	// The templates path may not exist yet (it is created on first
	// listing), but it must not name a regular file.
	if info, err := os.Stat(s.cfg.templatesDir); err == nil && !info.IsDir() {
		return nil, fmt.Errorf("%w: %q is not a directory", ErrInvalidTemplatesDir, s.cfg.templatesDir)
	}

	s.catalog = newTemplateCatalog(s.cfg.templatesDir)
	s.cache = newDocumentCache(s.cfg.now)
	return s, nil
}

// TemplatingAvailable reports whether the template rendering capability is
// wired. Catalog operations work either way.
func (s *Service) TemplatingAvailable() bool {
	return s.renderer != nil
}

// ListTemplates returns the sorted template names in the template
// directory, creating the directory if it does not exist yet. An empty
// directory yields an empty list, not an error.
func (s *Service) ListTemplates() ([]string, error) {
	return s.catalog.list()
}

// GetPlaceholders returns the sorted, deduplicated variable names the
// named template requires. Fails with ErrTemplateNotFound for an unknown
// template. Extraction walks the document XML first and falls back to a
// raw text scan when the XML cannot be parsed.
func (s *Service) GetPlaceholders(templateName string) ([]string, error) {
	path, err := s.catalog.resolve(templateName)
	if err != nil {
		return nil, err
	}

	pkg, err := os.ReadFile(path) // #nosec G304 -- name validated against path traversal in resolve
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPlaceholderScan, err)
	}

	return extractPlaceholders(pkg)
}

// FetchDocument returns a copy of the cached document bytes under key.
func (s *Service) FetchDocument(key string) ([]byte, error) {
	return s.cache.Get(key)
}

// FetchFilename returns the download filename of the cached document under key.
func (s *Service) FetchFilename(key string) (string, error) {
	return s.cache.GetFilename(key)
}

// Evict removes a cached document. Evicting an unknown key is a no-op.
func (s *Service) Evict(key string) {
	s.cache.Evict(key)
}
