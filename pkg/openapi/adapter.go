// Package openapi derives form field configurations from OpenAPI 3 request
// bodies, mapping JSON schema constraints onto validator configurations.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/Matey2010/ultimate-form/pkg/model"
)

var (
	// ErrOperationNotFound is returned when the document has no operation
	// with the requested identifier.
	ErrOperationNotFound = errors.New("openapi: operation not found")

	// ErrNoRequestBody is returned when the matched operation carries no
	// usable request body schema.
	ErrNoRequestBody = errors.New("openapi: operation has no request body schema")
)

// Options tunes document loading.
type Options struct {
	// ResolveReferences permits external $ref resolution during load.
	ResolveReferences bool
}

// Adapter loads OpenAPI documents and converts operation request bodies into
// field lists a form can be built from.
type Adapter struct {
	options Options
}

// New constructs an Adapter.
func New(options Options) *Adapter {
	return &Adapter{options: options}
}

// FieldsFromDocument loads the document payload and returns the fields for
// the operation identified by operationID. Operations without an explicit
// operationId can be addressed as "method:path", e.g. "post:/users".
func (a *Adapter) FieldsFromDocument(ctx context.Context, raw []byte, operationID string) ([]model.Field, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: a.options.ResolveReferences,
	}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}

	operation, err := findOperation(spec, operationID)
	if err != nil {
		return nil, err
	}
	return FieldsFromOperation(operation)
}

// FieldsFromOperation converts an operation's request body schema into a
// field list ordered by property name.
func FieldsFromOperation(operation *openapi3.Operation) ([]model.Field, error) {
	schema := requestSchema(operation)
	if schema == nil {
		return nil, ErrNoRequestBody
	}
	if len(schema.Properties) == 0 {
		return nil, ErrNoRequestBody
	}

	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]model.Field, 0, len(names))
	for i, name := range names {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		field := fieldFromSchema(name, ref.Value, required[name])
		field.Order = i
		fields = append(fields, field)
	}
	return fields, nil
}

func findOperation(spec *openapi3.T, operationID string) (*openapi3.Operation, error) {
	if spec.Paths == nil {
		return nil, fmt.Errorf("openapi: %w: %q", ErrOperationNotFound, operationID)
	}
	for path, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for method, operation := range map[string]*openapi3.Operation{
			"get":     item.Get,
			"put":     item.Put,
			"post":    item.Post,
			"delete":  item.Delete,
			"patch":   item.Patch,
			"head":    item.Head,
			"options": item.Options,
			"trace":   item.Trace,
		} {
			if operation == nil {
				continue
			}
			if operation.OperationID == operationID {
				return operation, nil
			}
			if operation.OperationID == "" {
				if m, p, ok := strings.Cut(operationID, ":"); ok && strings.EqualFold(m, method) && p == path {
					return operation, nil
				}
			}
		}
	}
	return nil, fmt.Errorf("openapi: %w: %q", ErrOperationNotFound, operationID)
}

func requestSchema(operation *openapi3.Operation) *openapi3.Schema {
	if operation == nil || operation.RequestBody == nil || operation.RequestBody.Value == nil {
		return nil
	}
	content := operation.RequestBody.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	for _, mt := range content {
		if mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

func fieldFromSchema(name string, src *openapi3.Schema, required bool) model.Field {
	field := model.Field{
		Name:     name,
		Type:     fieldType(src),
		Label:    labelFromName(name),
		Required: required,
	}
	if src.Default != nil {
		field.InitialValue = src.Default
	}
	if src.Description != "" {
		field.Metadata = map[string]any{"help": src.Description}
	}
	if len(src.Enum) > 0 {
		if field.Metadata == nil {
			field.Metadata = make(map[string]any)
		}
		field.Metadata["options"] = append([]any(nil), src.Enum...)
	}
	field.Validators = validatorsFromSchema(name, src)
	return field
}

func fieldType(src *openapi3.Schema) string {
	switch firstSchemaType(src.Type) {
	case "boolean":
		return model.TypeCheckbox
	case "number", "integer":
		return model.TypeNumber
	case "string":
		if len(src.Enum) > 0 {
			return model.TypeSelect
		}
		switch src.Format {
		case "password":
			return model.TypePassword
		case "date", "date-time":
			return model.TypeDate
		}
		return model.TypeText
	default:
		if len(src.Enum) > 0 {
			return model.TypeSelect
		}
		return model.TypeText
	}
}

func validatorsFromSchema(name string, src *openapi3.Schema) []model.Validator {
	label := labelFromName(name)
	var out []model.Validator

	switch src.Format {
	case "email":
		out = append(out, model.Validator{
			Kind:    model.KindEmail,
			Message: fmt.Sprintf("%s must be a valid email address", label),
		})
	case "uri", "url":
		out = append(out, model.Validator{
			Kind:    model.KindURL,
			Message: fmt.Sprintf("%s must be a valid URL", label),
		})
	case "date", "date-time":
		out = append(out, model.Validator{
			Kind:    model.KindDate,
			Message: fmt.Sprintf("%s must be a valid date", label),
		})
	}

	if src.MinLength != 0 {
		length := int(src.MinLength)
		out = append(out, model.Validator{
			Kind:    model.KindMinLength,
			Message: fmt.Sprintf("%s must be at least %d characters", label, length),
			Params:  map[string]any{"length": length},
		})
	}
	if src.MaxLength != nil {
		length := int(*src.MaxLength)
		out = append(out, model.Validator{
			Kind:    model.KindMaxLength,
			Message: fmt.Sprintf("%s must be at most %d characters", label, length),
			Params:  map[string]any{"length": length},
		})
	}
	if src.Pattern != "" {
		out = append(out, model.Validator{
			Kind:    model.KindPattern,
			Message: fmt.Sprintf("%s has an invalid format", label),
			Params:  map[string]any{"pattern": src.Pattern},
		})
	}
	if src.Min != nil {
		out = append(out, model.Validator{
			Kind:    model.KindMin,
			Message: fmt.Sprintf("%s must be at least %v", label, *src.Min),
			Params:  map[string]any{"min": *src.Min},
		})
	}
	if src.Max != nil {
		out = append(out, model.Validator{
			Kind:    model.KindMax,
			Message: fmt.Sprintf("%s must be at most %v", label, *src.Max),
			Params:  map[string]any{"max": *src.Max},
		})
	}
	if len(src.Enum) > 0 {
		out = append(out, model.Validator{
			Kind:    model.KindOneOf,
			Message: fmt.Sprintf("%s must be one of the allowed values", label),
			Params:  map[string]any{"values": append([]any(nil), src.Enum...)},
		})
	}
	if firstSchemaType(src.Type) == "integer" {
		out = append(out, model.Validator{
			Kind:    model.KindInteger,
			Message: fmt.Sprintf("%s must be a whole number", label),
		})
	}
	return out
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// labelFromName turns snake_case or camelCase names into title-ish labels.
func labelFromName(name string) string {
	if name == "" {
		return ""
	}
	var b strings.Builder
	prevLower := false
	for _, r := range name {
		switch {
		case r == '_' || r == '-':
			b.WriteByte(' ')
			prevLower = false
			continue
		case r >= 'A' && r <= 'Z' && prevLower:
			b.WriteByte(' ')
		}
		prevLower = r >= 'a' && r <= 'z'
		b.WriteRune(r)
	}
	label := b.String()
	return strings.ToUpper(label[:1]) + label[1:]
}
