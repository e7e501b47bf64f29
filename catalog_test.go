package docgen

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestListTemplatesEmptyDirectory(t *testing.T) {
	svc := newTestService(t, t.TempDir())

	names, err := svc.ListTemplates()
	if err != nil {
		t.Fatalf("ListTemplates() error: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("ListTemplates() = %v, want empty", names)
	}
}

func TestListTemplatesCreatesMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "not", "yet", "there")
	svc := newTestService(t, dir)

	names, err := svc.ListTemplates()
	if err != nil {
		t.Fatalf("ListTemplates() error: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("ListTemplates() = %v, want empty", names)
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Errorf("template directory was not created: %v", err)
	}
}

func TestListTemplatesSortedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"zeta.docx", "alpha.docx", "Middle.DOCX", "notes.txt", "README"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "subdir.docx"), 0o750); err != nil {
		t.Fatal(err)
	}

	svc := newTestService(t, dir)
	names, err := svc.ListTemplates()
	if err != nil {
		t.Fatalf("ListTemplates() error: %v", err)
	}

	want := []string{"Middle.DOCX", "alpha.docx", "zeta.docx"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("ListTemplates() = %v, want %v", names, want)
	}
}

func TestNewRejectsFileAsTemplatesDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a-file")
	if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := New(WithTemplatesDir(path)); !errors.Is(err, ErrInvalidTemplatesDir) {
		t.Errorf("New with file path = %v, want ErrInvalidTemplatesDir", err)
	}
}

func TestValidateTemplateName(t *testing.T) {
	tests := []struct {
		name     string
		template string
		wantErr  error
	}{
		{"valid name", "letter.docx", nil},
		{"valid without extension", "letter", nil},
		{"empty", "", ErrInvalidTemplateName},
		{"whitespace only", "   ", ErrInvalidTemplateName},
		{"forward slash", "sub/letter.docx", ErrInvalidTemplateName},
		{"backslash", `..\letter.docx`, ErrInvalidTemplateName},
		{"null byte", "letter\x00.docx", ErrInvalidTemplateName},
		{"dot dot", "..", ErrInvalidTemplateName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTemplateName(tt.template)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("validateTemplateName(%q) = %v, want %v", tt.template, err, tt.wantErr)
			}
		})
	}
}

func TestGetPlaceholdersUnknownTemplate(t *testing.T) {
	svc := newTestService(t, t.TempDir())

	if _, err := svc.GetPlaceholders("ghost.docx"); !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("GetPlaceholders(unknown) = %v, want ErrTemplateNotFound", err)
	}
}

// newTestService builds a Service on the given template directory with a
// deterministic clock.
func newTestService(t *testing.T, dir string) *Service {
	t.Helper()
	svc, err := New(WithTemplatesDir(dir), WithClock(fixedClock))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return svc
}
