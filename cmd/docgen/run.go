package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	flag "github.com/spf13/pflag"

	docgen "github.com/alnah/go-docgen"
	"github.com/alnah/go-docgen/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrNoCommand       = errors.New("no command given")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingArgument = errors.New("missing argument")
	ErrReadContent     = errors.New("failed to read content file")
	ErrWriteDocument   = errors.New("failed to write document")
)

const usageText = `usage: docgen <command> [flags]

commands:
  new           generate a document from a title and plain content
  md            generate a document from a Markdown file
  render        render a .docx template with --var bindings
  templates     list available templates
  placeholders  list the variables a template requires
  version       print the version

run "docgen <command> --help" for command flags
`

// run dispatches the command line to a subcommand.
func run(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(stdout, usageText)
		return ErrNoCommand
	}

	switch args[0] {
	case "new":
		return runNew(args[1:], stdout)
	case "md":
		return runMarkdown(args[1:], stdout)
	case "render":
		return runRender(args[1:], stdout)
	case "templates":
		return runTemplates(args[1:], stdout)
	case "placeholders":
		return runPlaceholders(args[1:], stdout)
	case "version":
		fmt.Fprintln(stdout, Version)
		return nil
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usageText)
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}
}

// runNew generates a plain document from --title and --content.
func runNew(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("new", flag.ContinueOnError)
	var (
		common      commonFlags
		build       buildFlags
		content     string
		contentFile string
	)
	addCommonFlags(fs, &common)
	addBuildFlags(fs, &build)
	fs.StringVar(&content, "content", "", "document body, one paragraph per line")
	fs.StringVar(&contentFile, "content-file", "", "read document body from a file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if contentFile != "" {
		data, err := os.ReadFile(contentFile) // #nosec G304 -- user-supplied CLI input path
		if err != nil {
			return fmt.Errorf("%w: %v", ErrReadContent, err)
		}
		content = string(data)
	}

	svc, cfg, err := newService(common)
	if err != nil {
		return err
	}

	result, err := svc.BuildPlain(resolveTitle(build.title, cfg), content, build.filename)
	if err != nil {
		return err
	}
	return writeOut(svc, result, resolveOutDir(common, cfg), common.quiet, stdout)
}

// runMarkdown generates a document from a Markdown file.
func runMarkdown(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("md", flag.ContinueOnError)
	var (
		common commonFlags
		build  buildFlags
	)
	addCommonFlags(fs, &common)
	addBuildFlags(fs, &build)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("%w: usage: docgen md <input.md>", ErrMissingArgument)
	}

	data, err := os.ReadFile(fs.Arg(0)) // #nosec G304 -- user-supplied CLI input path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadContent, err)
	}

	svc, cfg, err := newService(common)
	if err != nil {
		return err
	}

	result, err := svc.BuildMarkdown(resolveTitle(build.title, cfg), string(data), build.filename)
	if err != nil {
		return err
	}
	return writeOut(svc, result, resolveOutDir(common, cfg), common.quiet, stdout)
}

// runRender renders a catalog template with --var bindings.
func runRender(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	var (
		common commonFlags
		render renderFlags
	)
	addCommonFlags(fs, &common)
	addRenderFlags(fs, &render)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("%w: usage: docgen render <template>", ErrMissingArgument)
	}

	bindings, err := parseBindings(render.vars)
	if err != nil {
		return err
	}

	svc, cfg, err := newService(common)
	if err != nil {
		return err
	}

	result, err := svc.BuildFromTemplate(fs.Arg(0), bindings, render.filename)
	if err != nil {
		return err
	}
	return writeOut(svc, result, resolveOutDir(common, cfg), common.quiet, stdout)
}

// runTemplates lists the template catalog.
func runTemplates(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("templates", flag.ContinueOnError)
	var common commonFlags
	addCommonFlags(fs, &common)
	if err := fs.Parse(args); err != nil {
		return err
	}

	svc, _, err := newService(common)
	if err != nil {
		return err
	}

	names, err := svc.ListTemplates()
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(stdout, name)
	}
	return nil
}

// runPlaceholders lists the variables a template requires.
func runPlaceholders(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("placeholders", flag.ContinueOnError)
	var common commonFlags
	addCommonFlags(fs, &common)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("%w: usage: docgen placeholders <template>", ErrMissingArgument)
	}

	svc, _, err := newService(common)
	if err != nil {
		return err
	}

	names, err := svc.GetPlaceholders(fs.Arg(0))
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(stdout, name)
	}
	return nil
}

// newService builds the docgen service from flags and the optional config
// file. Flags win over config values.
func newService(common commonFlags) (*docgen.Service, *config.Config, error) {
	cfg := &config.Config{}
	if common.config != "" {
		loaded, err := config.Load(common.config)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	}

	dir := common.templatesDir
	if dir == "" {
		dir = cfg.Templates.Dir
	}

	var opts []docgen.Option
	if dir != "" {
		opts = append(opts, docgen.WithTemplatesDir(dir))
	}

	svc, err := docgen.New(opts...)
	if err != nil {
		return nil, nil, err
	}
	return svc, cfg, nil
}

// resolveTitle applies the config default when no --title was given.
func resolveTitle(title string, cfg *config.Config) string {
	if title == "" {
		return cfg.Document.DefaultTitle
	}
	return title
}

// resolveOutDir picks the output directory: flag, then config, then the
// current directory.
func resolveOutDir(common commonFlags, cfg *config.Config) string {
	if common.outputDir != "" {
		return common.outputDir
	}
	if cfg.Output.Dir != "" {
		return cfg.Output.Dir
	}
	return "."
}

// writeOut fetches the built document from the cache, writes it into the
// output directory, and evicts the cache entry.
func writeOut(svc *docgen.Service, result docgen.Result, outDir string, quiet bool, stdout io.Writer) error {
	defer svc.Evict(result.Key)

	content, err := svc.FetchDocument(result.Key)
	if err != nil {
		return err
	}
	filename, err := svc.FetchFilename(result.Key)
	if err != nil {
		return err
	}

	path := filepath.Join(outDir, filename)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteDocument, err)
	}

	if !quiet {
		fmt.Fprintf(stdout, "Created %s\n", path)
	}
	return nil
}
