package docgen

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

// fixedClock freezes time for deterministic filenames.
func fixedClock() time.Time {
	return time.Date(2025, 1, 15, 9, 30, 45, 0, time.UTC)
}

// fakeRenderer records the render call and returns canned output.
type fakeRenderer struct {
	called   bool
	path     string
	bindings map[string]any
	output   []byte
	err      error
}

func (f *fakeRenderer) Render(path string, bindings map[string]any) ([]byte, error) {
	f.called = true
	f.path = path
	f.bindings = bindings
	if f.err != nil {
		return nil, f.err
	}
	if f.output != nil {
		return f.output, nil
	}
	return []byte("rendered docx"), nil
}

func TestBuildFromTemplate(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "offer.docx", "Dear {{employee_name}}, salary {{salary}}.")

	svc := newTestService(t, dir)
	fake := &fakeRenderer{output: []byte("rendered bytes")}
	svc.renderer = fake

	bindings := map[string]any{"employee_name": "Jane Doe", "salary": "90000"}
	result, err := svc.BuildFromTemplate("offer.docx", bindings, "")
	if err != nil {
		t.Fatalf("BuildFromTemplate() error: %v", err)
	}

	if !fake.called {
		t.Fatal("renderer was not invoked")
	}
	if !strings.HasSuffix(fake.path, "offer.docx") {
		t.Errorf("renderer path = %q, want the catalog template path", fake.path)
	}
	if want := "render_offer_20250115_093045.docx"; result.Filename != want {
		t.Errorf("Filename = %q, want %q", result.Filename, want)
	}

	content, err := svc.FetchDocument(result.Key)
	if err != nil {
		t.Fatalf("FetchDocument() error: %v", err)
	}
	if !bytes.Equal(content, fake.output) {
		t.Errorf("cached content = %q, want renderer output", content)
	}
}

func TestBuildFromTemplateMissingVariable(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "offer.docx", "Dear {{employee_name}}, salary {{salary}}.")

	svc := newTestService(t, dir)
	fake := &fakeRenderer{}
	svc.renderer = fake

	_, err := svc.BuildFromTemplate("offer.docx", map[string]any{"employee_name": "Jane"}, "")
	if !errors.Is(err, ErrMissingVariable) {
		t.Fatalf("BuildFromTemplate() = %v, want ErrMissingVariable", err)
	}
	if !strings.Contains(err.Error(), "salary") {
		t.Errorf("error %q does not name the missing variable", err)
	}
	if fake.called {
		t.Error("renderer was invoked despite incomplete bindings")
	}

	// Supplying the full bindings makes the same call succeed.
	full := map[string]any{"employee_name": "Jane", "salary": "90000"}
	if _, err := svc.BuildFromTemplate("offer.docx", full, ""); err != nil {
		t.Errorf("BuildFromTemplate() with full bindings = %v, want nil", err)
	}
}

func TestBuildFromTemplateNamesFirstMissingVariable(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "offer.docx", "{{salary}} {{employee_name}}")

	svc := newTestService(t, dir)
	svc.renderer = &fakeRenderer{}

	_, err := svc.BuildFromTemplate("offer.docx", map[string]any{}, "")
	if !errors.Is(err, ErrMissingVariable) {
		t.Fatalf("BuildFromTemplate() = %v, want ErrMissingVariable", err)
	}
	// Placeholders are checked in sorted order.
	if !strings.Contains(err.Error(), "employee_name") {
		t.Errorf("error %q should name employee_name first", err)
	}
}

func TestBuildFromTemplateNotFound(t *testing.T) {
	svc := newTestService(t, t.TempDir())
	svc.renderer = &fakeRenderer{}

	_, err := svc.BuildFromTemplate("ghost.docx", nil, "")
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("BuildFromTemplate(unknown) = %v, want ErrTemplateNotFound", err)
	}
}

func TestBuildFromTemplateEngineUnavailable(t *testing.T) {
	svc, err := New(WithTemplatesDir(t.TempDir()), WithClock(fixedClock), WithoutTemplating())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if svc.TemplatingAvailable() {
		t.Fatal("TemplatingAvailable() = true after WithoutTemplating")
	}

	// Fails fast before the catalog is consulted.
	_, err = svc.BuildFromTemplate("anything.docx", nil, "")
	if !errors.Is(err, ErrEngineUnavailable) {
		t.Errorf("BuildFromTemplate() = %v, want ErrEngineUnavailable", err)
	}

	// Plain generation keeps working independently.
	if _, err := svc.BuildPlain("Title", "body", ""); err != nil {
		t.Errorf("BuildPlain() with templating disabled = %v, want nil", err)
	}
}

func TestBuildFromTemplateRenderFailure(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "offer.docx", "{{name}}")

	svc := newTestService(t, dir)
	svc.renderer = &fakeRenderer{err: ErrTemplateRender}

	_, err := svc.BuildFromTemplate("offer.docx", map[string]any{"name": "x"}, "")
	if !errors.Is(err, ErrTemplateRender) {
		t.Errorf("BuildFromTemplate() = %v, want ErrTemplateRender", err)
	}
}

func TestBuildFromTemplateFilenameDerivation(t *testing.T) {
	tests := []struct {
		name            string
		desiredFilename string
		want            string
	}{
		{
			name:            "friendly separator preserves spaces",
			desiredFilename: "Employment Letter - John Doe.docx",
			want:            "Employment Letter - John Doe.docx",
		},
		{
			name:            "no separator converts spaces",
			desiredFilename: "Employment Letter John Doe",
			want:            "Employment_Letter_John_Doe.docx",
		},
		{
			name:            "empty synthesizes from template name",
			desiredFilename: "",
			want:            "render_offer_20250115_093045.docx",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeTemplate(t, dir, "offer.docx", "{{name}}")

			svc := newTestService(t, dir)
			svc.renderer = &fakeRenderer{}

			result, err := svc.BuildFromTemplate("offer.docx", map[string]any{"name": "x"}, tt.desiredFilename)
			if err != nil {
				t.Fatalf("BuildFromTemplate() error: %v", err)
			}
			if result.Filename != tt.want {
				t.Errorf("Filename = %q, want %q", result.Filename, tt.want)
			}
		})
	}
}
