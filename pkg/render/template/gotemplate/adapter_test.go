package gotemplate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Matey2010/ultimate-form/pkg/render/template/gotemplate"
)

func writeTemplate(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}
}

func TestNewRequiresSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatal("New without a template source succeeded")
	}
}

func TestRenderTemplateFromDir(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "field.tpl", `<label>{{ label }}</label>`)

	engine, err := gotemplate.New(gotemplate.WithBaseDir(dir))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out, err := engine.RenderTemplate("field", map[string]any{"label": "Email"})
	if err != nil {
		t.Fatalf("RenderTemplate: %v", err)
	}
	if out != `<label>Email</label>` {
		t.Fatalf("rendered %q", out)
	}
}

func TestRenderInlineString(t *testing.T) {
	dir := t.TempDir()
	engine, err := gotemplate.New(gotemplate.WithBaseDir(dir))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// Render dispatches template-looking strings to the string path.
	out, err := engine.Render(`{{ name }} is required`, map[string]any{"name": "Email"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if out != "Email is required" {
		t.Fatalf("rendered %q", out)
	}
}

func TestGlobalContext(t *testing.T) {
	dir := t.TempDir()
	engine, err := gotemplate.New(
		gotemplate.WithBaseDir(dir),
		gotemplate.WithGlobalData(map[string]any{"brand": "Ultra"}),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out, err := engine.RenderString(`{{ brand }}: {{ field }}`, map[string]any{"field": "email"})
	if err != nil {
		t.Fatalf("RenderString: %v", err)
	}
	if out != "Ultra: email" {
		t.Fatalf("rendered %q", out)
	}

	// Per-render data wins over globals with the same key.
	out, err = engine.RenderString(`{{ brand }}`, map[string]any{"brand": "Other"})
	if err != nil {
		t.Fatalf("RenderString: %v", err)
	}
	if out != "Other" {
		t.Fatalf("rendered %q", out)
	}
}

func TestRenderMissingTemplate(t *testing.T) {
	dir := t.TempDir()
	engine, err := gotemplate.New(gotemplate.WithBaseDir(dir))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := engine.RenderTemplate("ghost", nil); err == nil {
		t.Fatal("missing template rendered")
	}
}

func TestStructDataRoundTrip(t *testing.T) {
	dir := t.TempDir()
	engine, err := gotemplate.New(gotemplate.WithBaseDir(dir))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	payload := struct {
		Label string `json:"label"`
	}{Label: "Email"}

	out, err := engine.RenderString(`{{ label }}`, payload)
	if err != nil {
		t.Fatalf("RenderString: %v", err)
	}
	if !strings.Contains(out, "Email") {
		t.Fatalf("rendered %q", out)
	}
}
