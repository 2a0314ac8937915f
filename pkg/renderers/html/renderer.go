package html

import (
	"context"
	"errors"
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	theme "github.com/goliatone/go-theme"

	"github.com/Matey2010/ultimate-form/pkg/form"
	"github.com/Matey2010/ultimate-form/pkg/model"
	"github.com/Matey2010/ultimate-form/pkg/render"
	"github.com/Matey2010/ultimate-form/pkg/render/template"
)

const defaultFormClass = "uform"

// Renderer produces HTML for a live form: fields sorted by display order,
// inline failure chrome, hidden inputs, the global error block, and the
// submit button. It implements render.Renderer.
type Renderer struct {
	registry      *render.Registry
	extra         []taggedRenderer
	templates     template.TemplateRenderer
	sanitizer     *bluemonday.Policy
	theme         *theme.RendererConfig
	hidden        map[string]string
	button        render.ButtonRenderer
	errorRenderer render.ErrorRenderer
	formClass     string
	initErr       error
}

// New constructs an HTML renderer with the built-in field renderers
// registered.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		registry:  newDefaultRegistry(),
		sanitizer: bluemonday.UGCPolicy(),
		formClass: defaultFormClass,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.initErr != nil {
		return nil, r.initErr
	}
	for _, entry := range r.extra {
		if err := r.registry.Register(entry.tag, entry.renderer); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "html"
}

// ContentType reports the media type of Render output.
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render serializes the form's current state. Fields render in ascending
// Order (stable on declaration order); a field whose type tag has no
// registered renderer appears as the conspicuous placeholder instead of
// being dropped.
func (r *Renderer) Render(ctx context.Context, frm *form.Form, opts render.Options) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("html: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if frm == nil {
		return nil, errors.New("html: form is required")
	}

	themeCfg := opts.Theme
	if themeCfg == nil {
		themeCfg = r.theme
	}

	fields := frm.Fields()
	sort.SliceStable(fields, func(i, j int) bool {
		return fields[i].Order < fields[j].Order
	})

	var b strings.Builder
	if style := cssVarsStyle(themeCfg); style != "" {
		b.WriteString(style)
	}

	b.WriteString(`<form class="`)
	b.WriteString(html.EscapeString(r.formClass))
	b.WriteString(`">`)

	hiddenFields := r.hidden
	if len(opts.Hidden) > 0 {
		merged := make(map[string]string, len(r.hidden)+len(opts.Hidden))
		for name, value := range r.hidden {
			merged[name] = value
		}
		for name, value := range opts.Hidden {
			merged[name] = value
		}
		hiddenFields = merged
	}
	for _, hidden := range render.SortedHiddenFields(hiddenFields) {
		b.WriteString(`<input type="hidden" name="`)
		b.WriteString(html.EscapeString(hidden.Name))
		b.WriteString(`" value="`)
		b.WriteString(html.EscapeString(hidden.Value))
		b.WriteString(`"/>`)
	}

	if globalErr := frm.GlobalError(); globalErr != nil {
		fragment, err := r.renderGlobalError(ctx, globalErr, opts)
		if err != nil {
			return nil, err
		}
		b.Write(fragment)
	}

	for _, field := range fields {
		fragment, err := r.renderField(ctx, frm, field, themeCfg)
		if err != nil {
			return nil, fmt.Errorf("html: field %q: %w", field.Name, err)
		}
		b.Write(fragment)
	}

	button, err := r.renderButton(ctx, frm, opts)
	if err != nil {
		return nil, err
	}
	b.Write(button)

	b.WriteString(`</form>`)
	return []byte(b.String()), nil
}

func (r *Renderer) renderField(ctx context.Context, frm *form.Form, field model.Field, themeCfg *theme.RendererConfig) ([]byte, error) {
	value, _ := frm.Value(field.Name)
	state := render.FieldState{
		Field:   field,
		Value:   value,
		Failure: frm.Failure(field.Name),
		OnChange: func(v any) error {
			return frm.SetValue(field.Name, v)
		},
	}

	control, err := r.renderControl(ctx, state, themeCfg)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString(`<div class="uform-field uform-field-`)
	b.WriteString(html.EscapeString(field.Type))
	if state.Failure != nil {
		b.WriteString(` uform-field-invalid`)
	}
	b.WriteString(`">`)

	if field.Label != "" && field.Type != model.TypeCheckbox {
		b.WriteString(`<label for="`)
		b.WriteString(controlID(field))
		b.WriteString(`">`)
		b.WriteString(html.EscapeString(field.Label))
		if field.Required {
			b.WriteString(`<span class="uform-required" aria-hidden="true">*</span>`)
		}
		b.WriteString(`</label>`)
	}

	b.Write(control)

	if field.Label != "" && field.Type == model.TypeCheckbox {
		b.WriteString(`<label for="`)
		b.WriteString(controlID(field))
		b.WriteString(`">`)
		b.WriteString(html.EscapeString(field.Label))
		b.WriteString(`</label>`)
	}

	if help := r.helpMarkup(field); help != "" {
		b.WriteString(`<div class="uform-help">`)
		b.WriteString(help)
		b.WriteString(`</div>`)
	}

	if state.Failure != nil {
		b.WriteString(`<div class="uform-error" role="alert">`)
		b.WriteString(html.EscapeString(state.Failure.Message))
		b.WriteString(`</div>`)
	}

	b.WriteString(`</div>`)
	return []byte(b.String()), nil
}

// renderControl picks, in order: a theme partial via the template engine, a
// registered field renderer, or the placeholder.
func (r *Renderer) renderControl(ctx context.Context, state render.FieldState, themeCfg *theme.RendererConfig) ([]byte, error) {
	if partial := r.partialFor(state.Field, themeCfg); partial != "" {
		rendered, err := r.templates.Render(partial, partialData(state))
		if err != nil {
			return nil, fmt.Errorf("render theme partial %q: %w", partial, err)
		}
		return []byte(rendered), nil
	}

	renderer, ok := r.registry.Get(state.Field.Type)
	if !ok {
		return render.Placeholder(state.Field), nil
	}
	return renderer.RenderField(ctx, state)
}

func (r *Renderer) partialFor(field model.Field, themeCfg *theme.RendererConfig) string {
	if r.templates == nil || themeCfg == nil || len(themeCfg.Partials) == 0 {
		return ""
	}
	return themeCfg.Partials["fields."+field.Type]
}

func partialData(state render.FieldState) map[string]any {
	data := map[string]any{
		"name":        state.Field.Name,
		"type":        state.Field.Type,
		"label":       state.Field.Label,
		"placeholder": state.Field.Placeholder,
		"required":    state.Field.Required,
		"disabled":    state.Field.Disabled,
		"value":       state.Value,
		"metadata":    state.Field.Metadata,
	}
	if state.Failure != nil {
		data["error"] = state.Failure.Message
		data["errorKind"] = state.Failure.Kind
	}
	return data
}

func (r *Renderer) renderButton(ctx context.Context, frm *form.Form, opts render.Options) ([]byte, error) {
	state := render.ButtonState{
		Submit:     frm.Submit,
		Submitting: frm.Submitting(),
		Valid:      frm.Valid(),
		Values:     frm.Values(),
	}

	button := opts.Button
	if button == nil {
		button = r.button
	}
	if button != nil {
		fragment, err := button(ctx, state)
		if err != nil {
			return nil, fmt.Errorf("html: button renderer: %w", err)
		}
		return fragment, nil
	}

	var b strings.Builder
	b.WriteString(`<button type="submit" class="uform-submit"`)
	if state.Submitting {
		b.WriteString(` disabled`)
	}
	b.WriteString(`>`)
	if state.Submitting {
		b.WriteString(`Submitting…`)
	} else {
		b.WriteString(`Submit`)
	}
	b.WriteString(`</button>`)
	return []byte(b.String()), nil
}

func (r *Renderer) renderGlobalError(ctx context.Context, globalErr any, opts render.Options) ([]byte, error) {
	errorRenderer := opts.Error
	if errorRenderer == nil {
		errorRenderer = r.errorRenderer
	}
	if errorRenderer != nil {
		fragment, err := errorRenderer(ctx, globalErr)
		if err != nil {
			return nil, fmt.Errorf("html: error renderer: %w", err)
		}
		return fragment, nil
	}

	message := fmt.Sprint(globalErr)
	if err, ok := globalErr.(error); ok {
		message = err.Error()
	}
	markup := `<div class="uform-global-error" role="alert">` + html.EscapeString(message) + `</div>`
	return []byte(markup), nil
}

// helpMarkup sanitizes caller-supplied help content from Metadata["help"].
// Help is the one spot where limited markup is allowed through.
func (r *Renderer) helpMarkup(field model.Field) string {
	raw, ok := field.Metadata["help"].(string)
	if !ok || strings.TrimSpace(raw) == "" {
		return ""
	}
	if r.sanitizer == nil {
		return html.EscapeString(raw)
	}
	return r.sanitizer.Sanitize(raw)
}
