package render

import (
	"fmt"
	"html"

	"github.com/Matey2010/ultimate-form/pkg/model"
)

// Placeholder produces the inline marker emitted when no renderer is
// registered for a field's type tag. The field stays visible with an
// unmistakable notice instead of being dropped or crashing the render.
func Placeholder(field model.Field) []byte {
	markup := fmt.Sprintf(
		`<div class="uform-missing-renderer" data-field=%q role="note">missing renderer for field %q (type %q)</div>`,
		html.EscapeString(field.Name),
		html.EscapeString(field.Name),
		html.EscapeString(field.Type),
	)
	return []byte(markup)
}
