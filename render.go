package docgen

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/benjaminschreck/go-stencil/pkg/stencil"

	"github.com/alnah/go-docgen/internal/fileutil"
)

// friendlySeparator in a desired filename ("Employment Letter - John
// Doe.docx") marks a human-facing name whose spaces must survive
// sanitizing.
const friendlySeparator = " - "

// BuildFromTemplate renders a catalog template with the given variable
// bindings, stores the result in the cache, and returns the filename and
// cache key.
//
// Variable resolution is strict: every placeholder the template declares
// must have a binding, otherwise the call fails with ErrMissingVariable
// naming the first missing variable in sorted order. Fails with
// ErrEngineUnavailable when the service was built WithoutTemplating, and
// with ErrTemplateNotFound for an unknown template.
func (s *Service) BuildFromTemplate(templateName string, bindings map[string]any, desiredFilename string) (Result, error) {
	if s.renderer == nil {
		return Result{}, ErrEngineUnavailable
	}

	path, err := s.catalog.resolve(templateName)
	if err != nil {
		return Result{}, err
	}

	pkg, err := os.ReadFile(path) // #nosec G304 -- name validated against path traversal in resolve
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrPlaceholderScan, err)
	}

	required, err := extractPlaceholders(pkg)
	if err != nil {
		return Result{}, err
	}
	for _, name := range required {
		if _, ok := bindings[name]; !ok {
			return Result{}, fmt.Errorf("%w: %q", ErrMissingVariable, name)
		}
	}

	content, err := s.renderer.Render(path, bindings)
	if err != nil {
		return Result{}, err
	}

	now := s.cfg.now()
	preserveSpaces := desiredFilename != "" && strings.Contains(desiredFilename, friendlySeparator)
	base := desiredFilename
	if base == "" {
		base = fmt.Sprintf("render_%s_%s", fileutil.BaseName(templateName), now.Format(filenameTimeLayout))
	}
	filename := fileutil.EnsureExtension(fileutil.SanitizeFilename(base, preserveSpaces, now), DocExtension)

	return Result{Filename: filename, Key: s.cache.Put(filename, content)}, nil
}

// stencilRenderer renders templates through the go-stencil engine.
type stencilRenderer struct {
	engine *stencil.Engine
}

func newStencilRenderer() *stencilRenderer {
	return &stencilRenderer{engine: stencil.New()}
}

// Render prepares the template file and renders it with bindings.
// Output markup is not interpreted or escaped beyond what the engine does
// for document XML; the result is a complete DOCX package.
func (r *stencilRenderer) Render(path string, bindings map[string]any) ([]byte, error) {
	tmpl, err := r.engine.PrepareFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	defer tmpl.Close()

	out, err := tmpl.Render(stencil.TemplateData(bindings))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}

	content, err := io.ReadAll(out)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return content, nil
}

// Compile-time interface check.
var _ templateRenderer = (*stencilRenderer)(nil)
