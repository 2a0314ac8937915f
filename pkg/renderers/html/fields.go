package html

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/Matey2010/ultimate-form/pkg/model"
	"github.com/Matey2010/ultimate-form/pkg/render"
)

// newDefaultRegistry wires the built-in control renderers for the common
// field type tags. The custom tag is intentionally absent: it only renders
// through a caller-registered renderer, and falls back to the placeholder
// otherwise.
func newDefaultRegistry() *render.Registry {
	registry := render.NewRegistry()
	registry.MustRegister(model.TypeText, render.FieldRendererFunc(renderInput("text")))
	registry.MustRegister(model.TypePassword, render.FieldRendererFunc(renderInput("password")))
	registry.MustRegister(model.TypeNumber, render.FieldRendererFunc(renderInput("number")))
	registry.MustRegister(model.TypeDate, render.FieldRendererFunc(renderInput("date")))
	registry.MustRegister(model.TypeTextArea, render.FieldRendererFunc(renderTextArea))
	registry.MustRegister(model.TypeCheckbox, render.FieldRendererFunc(renderCheckbox))
	registry.MustRegister(model.TypeSelect, render.FieldRendererFunc(renderSelect))
	return registry
}

func renderInput(inputType string) func(context.Context, render.FieldState) ([]byte, error) {
	return func(_ context.Context, state render.FieldState) ([]byte, error) {
		field := state.Field
		var b strings.Builder
		b.WriteString(`<input type="`)
		b.WriteString(inputType)
		b.WriteString(`" name="`)
		b.WriteString(html.EscapeString(field.Name))
		b.WriteString(`" id="`)
		b.WriteString(controlID(field))
		b.WriteString(`"`)
		if value := displayValue(state.Value); value != "" {
			b.WriteString(` value="`)
			b.WriteString(html.EscapeString(value))
			b.WriteString(`"`)
		}
		if field.Placeholder != "" {
			b.WriteString(` placeholder="`)
			b.WriteString(html.EscapeString(field.Placeholder))
			b.WriteString(`"`)
		}
		writeCommonAttrs(&b, state)
		b.WriteString(`/>`)
		return []byte(b.String()), nil
	}
}

func renderTextArea(_ context.Context, state render.FieldState) ([]byte, error) {
	field := state.Field
	var b strings.Builder
	b.WriteString(`<textarea name="`)
	b.WriteString(html.EscapeString(field.Name))
	b.WriteString(`" id="`)
	b.WriteString(controlID(field))
	b.WriteString(`"`)
	if field.Placeholder != "" {
		b.WriteString(` placeholder="`)
		b.WriteString(html.EscapeString(field.Placeholder))
		b.WriteString(`"`)
	}
	writeCommonAttrs(&b, state)
	b.WriteString(`>`)
	b.WriteString(html.EscapeString(displayValue(state.Value)))
	b.WriteString(`</textarea>`)
	return []byte(b.String()), nil
}

func renderCheckbox(_ context.Context, state render.FieldState) ([]byte, error) {
	field := state.Field
	var b strings.Builder
	b.WriteString(`<input type="checkbox" name="`)
	b.WriteString(html.EscapeString(field.Name))
	b.WriteString(`" id="`)
	b.WriteString(controlID(field))
	b.WriteString(`" value="true"`)
	if isTruthy(state.Value) {
		b.WriteString(` checked`)
	}
	writeCommonAttrs(&b, state)
	b.WriteString(`/>`)
	return []byte(b.String()), nil
}

func renderSelect(_ context.Context, state render.FieldState) ([]byte, error) {
	field := state.Field
	current := displayValue(state.Value)

	var b strings.Builder
	b.WriteString(`<select name="`)
	b.WriteString(html.EscapeString(field.Name))
	b.WriteString(`" id="`)
	b.WriteString(controlID(field))
	b.WriteString(`"`)
	writeCommonAttrs(&b, state)
	b.WriteString(`>`)

	if field.Placeholder != "" {
		b.WriteString(`<option value="" disabled`)
		if current == "" {
			b.WriteString(` selected`)
		}
		b.WriteString(`>`)
		b.WriteString(html.EscapeString(field.Placeholder))
		b.WriteString(`</option>`)
	}

	for _, option := range SelectOptions(field) {
		b.WriteString(`<option value="`)
		b.WriteString(html.EscapeString(option.Value))
		b.WriteString(`"`)
		if option.Value == current && current != "" {
			b.WriteString(` selected`)
		}
		b.WriteString(`>`)
		b.WriteString(html.EscapeString(option.Label))
		b.WriteString(`</option>`)
	}

	b.WriteString(`</select>`)
	return []byte(b.String()), nil
}

// SelectOption is one choice of a select control.
type SelectOption struct {
	Value string
	Label string
}

// SelectOptions extracts choices from Metadata["options"]. Entries can be
// plain values or maps carrying "value" and "label" keys; plain values label
// themselves.
func SelectOptions(field model.Field) []SelectOption {
	raw, ok := field.Metadata["options"]
	if !ok {
		return nil
	}

	var out []SelectOption
	switch typed := raw.(type) {
	case []SelectOption:
		return typed
	case []string:
		for _, value := range typed {
			out = append(out, SelectOption{Value: value, Label: value})
		}
	case []any:
		for _, entry := range typed {
			switch item := entry.(type) {
			case map[string]any:
				value := displayValue(item["value"])
				label := displayValue(item["label"])
				if label == "" {
					label = value
				}
				out = append(out, SelectOption{Value: value, Label: label})
			default:
				value := displayValue(item)
				out = append(out, SelectOption{Value: value, Label: value})
			}
		}
	}
	return out
}

func writeCommonAttrs(b *strings.Builder, state render.FieldState) {
	if state.Field.Disabled {
		b.WriteString(` disabled`)
	}
	if state.Field.Required {
		b.WriteString(` required aria-required="true"`)
	}
	if state.Failure != nil {
		b.WriteString(` aria-invalid="true" data-validation="`)
		b.WriteString(html.EscapeString(state.Failure.Kind))
		b.WriteString(`"`)
	}
}

func controlID(field model.Field) string {
	return "uform-" + html.EscapeString(field.Name)
}

func displayValue(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	default:
		return fmt.Sprint(typed)
	}
}

func isTruthy(value any) bool {
	switch typed := value.(type) {
	case bool:
		return typed
	case string:
		return strings.EqualFold(typed, "true") || typed == "1" || strings.EqualFold(typed, "on")
	default:
		return false
	}
}
