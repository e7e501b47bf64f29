package main

import (
	"errors"
	"os"

	docgen "github.com/alnah/go-docgen"
	"github.com/alnah/go-docgen/internal/config"
)

// Exit codes for docgen CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess  = 0 // Document generated
	ExitGeneral  = 1 // General/unexpected error
	ExitUsage    = 2 // Invalid flags, config, or bindings
	ExitIO       = 3 // File not found, permission denied
	ExitTemplate = 4 // Template catalog or rendering errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Template errors (exit 4)
	if errors.Is(err, docgen.ErrTemplateNotFound) ||
		errors.Is(err, docgen.ErrTemplateRender) ||
		errors.Is(err, docgen.ErrPlaceholderScan) ||
		errors.Is(err, docgen.ErrEngineUnavailable) {
		return ExitTemplate
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadContent) ||
		errors.Is(err, ErrWriteDocument) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrNoCommand) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrMissingArgument) ||
		errors.Is(err, ErrInvalidBinding) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, docgen.ErrMissingVariable) ||
		errors.Is(err, docgen.ErrInvalidTemplateName) ||
		errors.Is(err, docgen.ErrInvalidTemplatesDir) {
		return ExitUsage
	}

	return ExitGeneral
}
