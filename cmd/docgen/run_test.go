package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	docgen "github.com/alnah/go-docgen"
)

func TestRunDispatch(t *testing.T) {
	t.Run("no command prints usage", func(t *testing.T) {
		var out bytes.Buffer
		err := run(nil, &out)
		if !errors.Is(err, ErrNoCommand) {
			t.Errorf("run(nil) = %v, want ErrNoCommand", err)
		}
		if !strings.Contains(out.String(), "usage: docgen") {
			t.Error("usage text not printed")
		}
	})

	t.Run("unknown command", func(t *testing.T) {
		var out bytes.Buffer
		if err := run([]string{"frobnicate"}, &out); !errors.Is(err, ErrUnknownCommand) {
			t.Errorf("run(frobnicate) = %v, want ErrUnknownCommand", err)
		}
	})

	t.Run("version", func(t *testing.T) {
		var out bytes.Buffer
		if err := run([]string{"version"}, &out); err != nil {
			t.Fatalf("run(version) = %v", err)
		}
		if got := strings.TrimSpace(out.String()); got != Version {
			t.Errorf("version output = %q, want %q", got, Version)
		}
	})

	t.Run("help", func(t *testing.T) {
		var out bytes.Buffer
		if err := run([]string{"help"}, &out); err != nil {
			t.Fatalf("run(help) = %v", err)
		}
	})
}

func TestRunNewWritesDocument(t *testing.T) {
	outDir := t.TempDir()
	templatesDir := t.TempDir()

	var out bytes.Buffer
	err := run([]string{
		"new",
		"--title", "Offer",
		"--content", "line1\nline2",
		"--filename", "offer.docx",
		"--templates-dir", templatesDir,
		"--out", outDir,
	}, &out)
	if err != nil {
		t.Fatalf("run(new) error: %v", err)
	}

	path := filepath.Join(outDir, "offer.docx")
	if _, statErr := os.Stat(path); statErr != nil {
		t.Fatalf("document not written: %v", statErr)
	}
	if !strings.Contains(out.String(), "Created "+path) {
		t.Errorf("output %q does not report created path", out.String())
	}
}

func TestRunTemplatesListsCatalog(t *testing.T) {
	templatesDir := t.TempDir()
	for _, name := range []string{"b.docx", "a.docx"} {
		if err := os.WriteFile(filepath.Join(templatesDir, name), []byte("x"), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	var out bytes.Buffer
	if err := run([]string{"templates", "--templates-dir", templatesDir}, &out); err != nil {
		t.Fatalf("run(templates) error: %v", err)
	}
	if got := out.String(); got != "a.docx\nb.docx\n" {
		t.Errorf("templates output = %q", got)
	}
}

func TestRunRenderMissingArgument(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"render"}, &out); !errors.Is(err, ErrMissingArgument) {
		t.Errorf("run(render) = %v, want ErrMissingArgument", err)
	}
}

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"template not found", docgen.ErrTemplateNotFound, ExitTemplate},
		{"engine unavailable", docgen.ErrEngineUnavailable, ExitTemplate},
		{"missing variable", docgen.ErrMissingVariable, ExitUsage},
		{"invalid binding", ErrInvalidBinding, ExitUsage},
		{"unknown command", ErrUnknownCommand, ExitUsage},
		{"read failure", ErrReadContent, ExitIO},
		{"write failure", ErrWriteDocument, ExitIO},
		{"anything else", errors.New("boom"), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
