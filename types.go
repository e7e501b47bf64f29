package docgen

import "time"

// DocExtension is the file extension every generated document carries.
const DocExtension = ".docx"

// Filename timestamp layout, e.g. "offer letter" -> "offer letter_20250115_093045.docx".
const filenameTimeLayout = "20060102_150405"

// DefaultTitle is used when BuildPlain or BuildMarkdown receive a blank title.
const DefaultTitle = "Document"

// DefaultTemplatesDir is where templates are looked up unless overridden.
const DefaultTemplatesDir = "templates"

// Result describes a successfully built document.
type Result struct {
	Filename string // sanitized name, always ending in DocExtension
	Key      string // cache key for FetchDocument / FetchFilename / Evict
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	templatesDir string
	now          func() time.Time
}

// WithTemplatesDir sets the directory templates are listed from and
// rendered out of. The directory is created on first listing if absent.
// Panics if dir is empty (programmer error, similar to time.NewTicker).
func WithTemplatesDir(dir string) Option {
	if dir == "" {
		panic("docgen: WithTemplatesDir directory must not be empty")
	}
	return func(s *Service) {
		s.cfg.templatesDir = dir
	}
}

// WithClock overrides the time source used for filename and cache key
// timestamps. Intended for tests that need deterministic names.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("docgen: WithClock function must not be nil")
	}
	return func(s *Service) {
		s.cfg.now = now
	}
}

// WithoutTemplating disables the template rendering capability.
// BuildFromTemplate fails with ErrEngineUnavailable; every other
// operation, including the template catalog, keeps working.
func WithoutTemplating() Option {
	return func(s *Service) {
		s.renderer = nil
	}
}
