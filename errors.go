package docgen

import "errors"

// Sentinel errors for library operations.
var (
	ErrTemplateNotFound  = errors.New("template not found")
	ErrDocumentNotFound  = errors.New("document not found in cache")
	ErrMissingVariable   = errors.New("missing template variable")
	ErrEngineUnavailable = errors.New("template engine is not available")
	ErrTemplateRender    = errors.New("template rendering failed")
	ErrPlaceholderScan   = errors.New("placeholder extraction failed")

	// Template catalog validation errors.
	ErrInvalidTemplateName = errors.New("invalid template name")
	ErrInvalidTemplatesDir = errors.New("invalid templates directory")

	// Document assembly errors.
	ErrDocumentWrite = errors.New("document assembly failed")
	ErrMarkdownParse = errors.New("markdown parsing failed")
)
