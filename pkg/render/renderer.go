package render

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/Matey2010/ultimate-form/pkg/form"
	"github.com/Matey2010/ultimate-form/pkg/model"
)

// FieldState is the data handed to a field renderer: the immutable
// configuration, the current value, the current failure (nil when valid),
// and a change callback that commits back into the engine.
type FieldState struct {
	Field    model.Field
	Value    any
	Failure  *model.Validator
	OnChange func(value any) error
}

// FieldRenderer produces the visual fragment for one field. Implementations
// are registered against a field type tag; the engine only ever calls them
// through registry lookup and embeds the returned bytes.
type FieldRenderer interface {
	RenderField(ctx context.Context, state FieldState) ([]byte, error)
}

// FieldRendererFunc adapts a plain function to the FieldRenderer interface.
type FieldRendererFunc func(ctx context.Context, state FieldState) ([]byte, error)

// RenderField implements FieldRenderer.
func (fn FieldRendererFunc) RenderField(ctx context.Context, state FieldState) ([]byte, error) {
	return fn(ctx, state)
}

// ButtonState is the data a submit button builder receives: the same inputs
// the default button renders from, plus the submit action itself so custom
// button markup can wire its own trigger.
type ButtonState struct {
	Submit     func(ctx context.Context) (any, error)
	Submitting bool
	Valid      bool
	Values     map[string]any
}

// ButtonRenderer replaces the default submit button presentation.
type ButtonRenderer func(ctx context.Context, state ButtonState) ([]byte, error)

// ErrorRenderer replaces the default global error presentation. It receives
// the opaque value captured from a failed submission handler.
type ErrorRenderer func(ctx context.Context, err any) ([]byte, error)

// Options carries per-request rendering data that does not belong on the
// form configuration itself.
type Options struct {
	// Hidden adds hidden inputs alongside the visible fields (CSRF tokens,
	// version stamps). Rendered sorted by name for deterministic output.
	Hidden map[string]string
	// Theme is an optional resolved theme configuration renderers can use
	// for class partials and CSS variables.
	Theme *theme.RendererConfig
	// Button overrides the default submit button presentation.
	Button ButtonRenderer
	// Error overrides the default global error presentation.
	Error ErrorRenderer
}

// Renderer converts a live form into a byte representation (HTML, terminal
// session transcript, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, frm *form.Form, opts Options) ([]byte, error)
}
