package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/Matey2010/ultimate-form/pkg/form"
	"github.com/Matey2010/ultimate-form/pkg/model"
	"github.com/Matey2010/ultimate-form/pkg/render"
)

// Renderer walks a form field by field, prompting on the terminal and feeding
// answers back into the form state. It satisfies render.Renderer so callers
// can treat terminal sessions and markup generation uniformly; Render returns
// the collected values encoded as JSON.
type Renderer struct {
	driver      PromptDriver
	maxAttempts int
	submit      bool
	pageSize    int
}

// New builds a terminal renderer backed by survey prompts unless WithDriver
// overrides it.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		driver:      newSurveyDriver(),
		maxAttempts: 3,
		pageSize:    7,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Name implements render.Renderer.
func (r *Renderer) Name() string { return "tui" }

// ContentType implements render.Renderer.
func (r *Renderer) ContentType() string { return "application/json" }

// Render runs an interactive session over each field in display order, then
// validates the whole form, optionally submits it, and returns the final
// values as JSON.
func (r *Renderer) Render(ctx context.Context, frm *form.Form, opts render.Options) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if frm == nil {
		return nil, fmt.Errorf("tui: nil form")
	}

	fields := frm.Fields()
	sort.SliceStable(fields, func(i, j int) bool {
		return fields[i].Order < fields[j].Order
	})

	for _, field := range fields {
		if field.Disabled {
			continue
		}
		if err := r.promptField(ctx, frm, field); err != nil {
			return nil, err
		}
	}

	valid, err := frm.Validate()
	if err != nil {
		return nil, fmt.Errorf("tui: validate: %w", err)
	}
	if !valid {
		r.reportFailures(ctx, frm, fields)
		return nil, ErrStillInvalid
	}

	if r.submit {
		if _, err := frm.Submit(ctx); err != nil {
			return nil, fmt.Errorf("tui: submit: %w", err)
		}
		if gerr := frm.GlobalError(); gerr != nil {
			return nil, fmt.Errorf("tui: submit failed: %v", gerr)
		}
	}

	out, err := json.MarshalIndent(frm.Values(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("tui: encode values: %w", err)
	}
	return out, nil
}

// promptField asks for a single field's value, re-prompting while validation
// keeps failing, up to maxAttempts.
func (r *Renderer) promptField(ctx context.Context, frm *form.Form, field model.Field) error {
	for attempt := 0; attempt < r.maxAttempts; attempt++ {
		value, err := r.ask(ctx, frm, field)
		if err != nil {
			return err
		}
		if err := frm.SetValue(field.Name, value); err != nil {
			return fmt.Errorf("tui: field %q: %w", field.Name, err)
		}
		failure, err := frm.ValidateField(field.Name)
		if err != nil {
			return fmt.Errorf("tui: field %q: %w", field.Name, err)
		}
		if failure == nil {
			return nil
		}
		if err := r.driver.Info(ctx, fmt.Sprintf("✗ %s", failure.Message)); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) ask(ctx context.Context, frm *form.Form, field model.Field) (any, error) {
	message := field.DisplayName()
	if field.Required {
		message += " *"
	}
	help := metadataString(field, "help")
	current, _ := frm.Value(field.Name)

	switch field.Type {
	case model.TypeCheckbox:
		def, _ := current.(bool)
		return r.driver.Confirm(ctx, ConfirmConfig{
			Message: message,
			Default: def,
			Help:    help,
		})
	case model.TypeSelect:
		labels, values := selectChoices(field)
		if len(labels) == 0 {
			return r.driver.Input(ctx, InputConfig{
				Message: message,
				Default: fmt.Sprint(currentOrEmpty(current)),
				Help:    help,
			})
		}
		defIdx := 0
		for i, v := range values {
			if current != nil && fmt.Sprint(v) == fmt.Sprint(current) {
				defIdx = i
				break
			}
		}
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      message,
			Options:      labels,
			DefaultIndex: defIdx,
			Help:         help,
			PageSize:     r.pageSize,
		})
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx >= len(values) {
			return nil, nil
		}
		return values[idx], nil
	case model.TypePassword:
		return r.driver.Password(ctx, InputConfig{
			Message: message,
			Help:    help,
		})
	case model.TypeTextArea:
		def, _ := current.(string)
		return r.driver.TextArea(ctx, TextAreaConfig{
			Message: message,
			Default: def,
			Help:    help,
		})
	default:
		return r.driver.Input(ctx, InputConfig{
			Message: message,
			Default: fmt.Sprint(currentOrEmpty(current)),
			Help:    help,
		})
	}
}

func (r *Renderer) reportFailures(ctx context.Context, frm *form.Form, fields []model.Field) {
	for _, field := range fields {
		if failure := frm.Failure(field.Name); failure != nil {
			_ = r.driver.Info(ctx, fmt.Sprintf("✗ %s: %s", field.DisplayName(), failure.Message))
		}
	}
}

// selectChoices derives prompt labels and underlying values from the field's
// option metadata. Supported shapes mirror the HTML renderer: []string,
// []map["value"/"label"], and flat []any.
func selectChoices(field model.Field) (labels []string, values []any) {
	raw, ok := field.Metadata["options"]
	if !ok {
		return nil, nil
	}
	switch opts := raw.(type) {
	case []string:
		for _, o := range opts {
			labels = append(labels, o)
			values = append(values, o)
		}
	case []any:
		for _, o := range opts {
			if m, ok := o.(map[string]any); ok {
				value := m["value"]
				label := fmt.Sprint(value)
				if l, ok := m["label"].(string); ok && l != "" {
					label = l
				}
				labels = append(labels, label)
				values = append(values, value)
				continue
			}
			labels = append(labels, fmt.Sprint(o))
			values = append(values, o)
		}
	}
	return labels, values
}

func metadataString(field model.Field, key string) string {
	if field.Metadata == nil {
		return ""
	}
	if s, ok := field.Metadata[key].(string); ok {
		return s
	}
	return ""
}

func currentOrEmpty(v any) any {
	if v == nil {
		return ""
	}
	return v
}
