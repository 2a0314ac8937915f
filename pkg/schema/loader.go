// Package schema loads form definitions from JSON or YAML documents and
// converts them into field configurations.
package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Matey2010/ultimate-form/pkg/form"
	"github.com/Matey2010/ultimate-form/pkg/model"
)

// Definition is the on-disk shape of a form document.
type Definition struct {
	Title  string          `json:"title" yaml:"title"`
	Mode   string          `json:"mode" yaml:"mode"`
	FieldDocs []FieldDocument `json:"fields" yaml:"fields"`
}

// FieldDocument is a single field entry inside a Definition.
type FieldDocument struct {
	Name        string              `json:"name" yaml:"name"`
	Type        string              `json:"type" yaml:"type"`
	Label       string              `json:"label" yaml:"label"`
	Placeholder string              `json:"placeholder" yaml:"placeholder"`
	Required    bool                `json:"required" yaml:"required"`
	Disabled    bool                `json:"disabled" yaml:"disabled"`
	Initial     any                 `json:"initial" yaml:"initial"`
	Order       int                 `json:"order" yaml:"order"`
	Metadata    map[string]any      `json:"metadata" yaml:"metadata"`
	Validators  []ValidatorDocument `json:"validators" yaml:"validators"`
}

// ValidatorDocument is a declarative validator entry.
type ValidatorDocument struct {
	Kind    string         `json:"kind" yaml:"kind"`
	Message string         `json:"message" yaml:"message"`
	Params  map[string]any `json:"params" yaml:"params"`
}

// LoadFile reads and parses a definition from disk.
func LoadFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schema: read %s: %w", path, err)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("schema: parse %s: %w", path, err)
	}
	return def, nil
}

// Parse decodes a definition from raw JSON or YAML bytes.
func Parse(data []byte) (*Definition, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("schema: document is empty")
	}

	var def Definition
	if err := json.Unmarshal(data, &def); err == nil {
		return &def, nil
	}
	if err := yaml.Unmarshal(data, &def); err == nil {
		return &def, nil
	}
	return nil, fmt.Errorf("schema: invalid JSON or YAML")
}

// Fields converts the definition into field configurations. Entries keep
// their declared order unless an explicit order is set.
func (d *Definition) Fields() ([]model.Field, error) {
	if d == nil || len(d.FieldDocs) == 0 {
		return nil, fmt.Errorf("schema: definition has no fields")
	}

	fields := make([]model.Field, 0, len(d.FieldDocs))
	for i, doc := range d.FieldDocs {
		name := strings.TrimSpace(doc.Name)
		if name == "" {
			return nil, fmt.Errorf("schema: field at index %d has no name", i)
		}
		field := model.Field{
			Name:         name,
			Type:         fieldType(doc.Type),
			InitialValue: doc.Initial,
			Label:        doc.Label,
			Placeholder:  doc.Placeholder,
			Required:     doc.Required,
			Disabled:     doc.Disabled,
			Order:        doc.Order,
		}
		if field.Order == 0 {
			field.Order = i
		}
		if len(doc.Metadata) > 0 {
			field.Metadata = make(map[string]any, len(doc.Metadata))
			for k, v := range doc.Metadata {
				field.Metadata[k] = v
			}
		}
		for _, vd := range doc.Validators {
			kind := strings.TrimSpace(vd.Kind)
			if kind == "" {
				return nil, fmt.Errorf("schema: field %q declares a validator without a kind", name)
			}
			validator := model.Validator{
				Kind:    kind,
				Message: vd.Message,
			}
			if len(vd.Params) > 0 {
				validator.Params = make(map[string]any, len(vd.Params))
				for k, v := range vd.Params {
					validator.Params[k] = v
				}
			}
			field.Validators = append(field.Validators, validator)
		}
		fields = append(fields, field)
	}
	return fields, nil
}

// Form builds a form from the definition, honoring its validation mode.
func (d *Definition) Form(opts ...form.Option) (*form.Form, error) {
	fields, err := d.Fields()
	if err != nil {
		return nil, err
	}
	if mode := strings.TrimSpace(d.Mode); mode != "" {
		opts = append([]form.Option{form.WithMode(form.Mode(mode))}, opts...)
	}
	return form.New(fields, opts...)
}

func fieldType(raw string) string {
	t := strings.ToLower(strings.TrimSpace(raw))
	switch t {
	case "", "text", "string":
		return model.TypeText
	case "textarea", "multiline":
		return model.TypeTextArea
	case "password":
		return model.TypePassword
	case "number", "integer", "float":
		return model.TypeNumber
	case "checkbox", "bool", "boolean":
		return model.TypeCheckbox
	case "select", "enum":
		return model.TypeSelect
	case "date", "datetime":
		return model.TypeDate
	default:
		return t
	}
}
