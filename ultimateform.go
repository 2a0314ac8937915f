// Package ultimateform wires form state, validation, and rendering into a
// single entry point. The root package re-exports the common types so most
// callers only import this one path.
package ultimateform

import (
	"context"

	"github.com/Matey2010/ultimate-form/pkg/form"
	"github.com/Matey2010/ultimate-form/pkg/model"
	"github.com/Matey2010/ultimate-form/pkg/render"
	"github.com/Matey2010/ultimate-form/pkg/renderers/html"
	"github.com/Matey2010/ultimate-form/pkg/renderers/tui"
	"github.com/Matey2010/ultimate-form/pkg/validators"
)

// Field configures a single form input.
type Field = model.Field

// Validator configures one validation rule attached to a field.
type Validator = model.Validator

// Context carries the full value snapshot available to cross-field rules.
type Context = model.Context

// Form owns field values, failures, and the submit lifecycle.
type Form = form.Form

// Mode selects when field validation runs.
type Mode = form.Mode

// Event describes a settled field change delivered to watchers.
type Event = form.Event

// Registry stores custom validator predicates by name.
type Registry = validators.Registry

// Validation modes re-exported for callers configuring forms via WithMode.
const (
	ModeOnChange = form.ModeOnChange
	ModeOnSubmit = form.ModeOnSubmit
	ModeManual   = form.ModeManual
)

// New builds a form from field configurations.
func New(fields []Field, opts ...form.Option) (*Form, error) {
	return form.New(fields, opts...)
}

// NewRegistry constructs an empty custom validator registry.
func NewRegistry() *Registry {
	return validators.NewRegistry()
}

// RenderHTML renders the form as an HTML fragment with the default field
// renderers.
func RenderHTML(ctx context.Context, frm *Form, opts ...html.Option) ([]byte, error) {
	renderer, err := html.New(opts...)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, frm, render.Options{})
}

// RunTUI walks the form interactively on the terminal and returns the
// collected values as JSON.
func RunTUI(ctx context.Context, frm *Form, opts ...tui.Option) ([]byte, error) {
	return tui.New(opts...).Render(ctx, frm, render.Options{})
}
