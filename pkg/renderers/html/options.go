package html

import (
	"github.com/microcosm-cc/bluemonday"

	theme "github.com/goliatone/go-theme"

	"github.com/Matey2010/ultimate-form/pkg/render"
	"github.com/Matey2010/ultimate-form/pkg/render/template"
)

// Option customises the HTML renderer.
type Option func(*Renderer)

// WithRegistry replaces the field renderer registry. The default registry
// covers the built-in type tags (text, textarea, password, number, date,
// checkbox, select).
func WithRegistry(registry *render.Registry) Option {
	return func(r *Renderer) {
		if registry != nil {
			r.registry = registry
		}
	}
}

// WithFieldRenderer registers an additional field renderer on top of the
// defaults, typically for caller-defined type tags.
func WithFieldRenderer(typeTag string, renderer render.FieldRenderer) Option {
	return func(r *Renderer) {
		r.extra = append(r.extra, taggedRenderer{tag: typeTag, renderer: renderer})
	}
}

// WithTemplates supplies a template engine used to render theme partials for
// field markup. Without an engine (or without a matching partial) the
// renderer falls back to its built-in markup.
func WithTemplates(engine template.TemplateRenderer) Option {
	return func(r *Renderer) {
		r.templates = engine
	}
}

// WithSanitizer replaces the policy applied to caller-supplied help markup.
// The default is bluemonday.UGCPolicy.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(r *Renderer) {
		if policy != nil {
			r.sanitizer = policy
		}
	}
}

// WithThemeConfig applies a pre-resolved theme configuration to every render
// that does not carry its own via render.Options.
func WithThemeConfig(cfg *theme.RendererConfig) Option {
	return func(r *Renderer) {
		r.theme = cfg
	}
}

// WithThemeSelector resolves a theme/variant through a go-theme selector at
// construction time. Resolution failures surface from New.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(r *Renderer) {
		if selector == nil {
			return
		}
		cfg, err := ResolveTheme(selector, name, variant)
		if err != nil {
			r.initErr = err
			return
		}
		r.theme = cfg
	}
}

// WithHiddenFields attaches hidden inputs emitted on every render, merged
// with (and overridden by) any per-request hidden fields in render.Options.
// Typical entries come from render.CSRFToken and render.VersionField.
func WithHiddenFields(fields ...render.HiddenField) Option {
	return func(r *Renderer) {
		r.hidden = render.MergeHiddenFields(r.hidden, fields...)
	}
}

// WithButtonRenderer replaces the default submit button markup.
func WithButtonRenderer(button render.ButtonRenderer) Option {
	return func(r *Renderer) {
		r.button = button
	}
}

// WithErrorRenderer replaces the default global error markup.
func WithErrorRenderer(errorRenderer render.ErrorRenderer) Option {
	return func(r *Renderer) {
		r.errorRenderer = errorRenderer
	}
}

// WithFormClass overrides the CSS class on the form element.
func WithFormClass(class string) Option {
	return func(r *Renderer) {
		if class != "" {
			r.formClass = class
		}
	}
}

type taggedRenderer struct {
	tag      string
	renderer render.FieldRenderer
}
