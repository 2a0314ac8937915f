package ultimateform_test

import (
	"context"
	"strings"
	"testing"

	ultimateform "github.com/Matey2010/ultimate-form"
	"github.com/Matey2010/ultimate-form/pkg/form"
	"github.com/Matey2010/ultimate-form/pkg/model"
)

func TestNewAndRenderHTML(t *testing.T) {
	frm, err := ultimateform.New([]ultimateform.Field{
		{Name: "email", Type: model.TypeText, Label: "Email", Required: true},
	}, form.WithMode(ultimateform.ModeManual))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out, err := ultimateform.RenderHTML(context.Background(), frm)
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	if !strings.Contains(string(out), `name="email"`) {
		t.Fatalf("output missing email field:\n%s", out)
	}
}

func TestNewRegistry(t *testing.T) {
	registry := ultimateform.NewRegistry()
	registry.MustRegister("always", func(any, ultimateform.Validator, ultimateform.Context) string {
		return ""
	})
	if !registry.Has("always") {
		t.Fatal("registered validator not found")
	}
}
