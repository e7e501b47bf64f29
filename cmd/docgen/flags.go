package main

import (
	"errors"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"
)

// ErrInvalidBinding indicates a malformed --var argument.
var ErrInvalidBinding = errors.New("invalid --var binding, expected key=value")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config       string
	templatesDir string
	outputDir    string
	quiet        bool
}

// buildFlags holds flags shared by the document-producing commands.
type buildFlags struct {
	title    string
	filename string
}

// renderFlags holds flags for the render command.
type renderFlags struct {
	filename string
	vars     []string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file path")
	fs.StringVarP(&f.templatesDir, "templates-dir", "t", "", "template directory (default \"templates\")")
	fs.StringVarP(&f.outputDir, "out", "o", "", "output directory (default current directory)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
}

// addBuildFlags adds document build flags to a FlagSet.
func addBuildFlags(fs *flag.FlagSet, f *buildFlags) {
	fs.StringVar(&f.title, "title", "", "document title (\"\" = \"Document\")")
	fs.StringVarP(&f.filename, "filename", "f", "", "output filename (\"\" = auto from title)")
}

// addRenderFlags adds template rendering flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.StringVarP(&f.filename, "filename", "f", "", "output filename (\"\" = auto from template name)")
	fs.StringArrayVar(&f.vars, "var", nil, "template variable binding key=value (repeatable)")
}

// parseBindings converts repeated --var key=value arguments into a binding
// map. Later duplicates win, matching how most CLIs treat repeated flags.
func parseBindings(vars []string) (map[string]any, error) {
	bindings := make(map[string]any, len(vars))
	for _, v := range vars {
		key, value, ok := strings.Cut(v, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidBinding, v)
		}
		bindings[strings.TrimSpace(key)] = value
	}
	return bindings, nil
}
