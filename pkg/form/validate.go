package form

import (
	"fmt"

	"github.com/Matey2010/ultimate-form/pkg/model"
)

// ValidateField re-evaluates a single field against its current value and a
// fresh snapshot of all field values. The returned failure (or nil) is also
// recorded in the form's failure map. A required-kind entry in the field's
// validator list or an unresolvable custom configuration is a fault: the
// error is returned, nothing is recorded, and the remaining rules do not run.
func (f *Form) ValidateField(name string) (*model.Validator, error) {
	idx, ok := f.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	field := f.fields[idx]

	for _, v := range field.Validators {
		if v.Kind == model.KindRequired {
			return nil, fmt.Errorf("field %q: %w", name, ErrRequiredInValidators)
		}
	}

	value := f.values[name]
	empty := model.IsEmpty(value)

	if field.Required && empty {
		failure := requiredFailure(field, value)
		f.failures[name] = failure
		return failure, nil
	}
	if empty {
		// Optional and blank: format and range rules are bypassed entirely.
		f.failures[name] = nil
		return nil, nil
	}

	ctx := model.CloneContext(f.values)
	for _, v := range field.Validators {
		failure, err := f.evaluator.Evaluate(value, v, ctx)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		if failure != nil {
			// First failing rule wins; the rest of the list does not run.
			f.failures[name] = failure
			return failure, nil
		}
	}

	f.failures[name] = nil
	return nil, nil
}

// Validate re-evaluates every field in declaration order and reports whether
// the form is valid. Unlike the per-field rule short-circuit, this is a total
// pass: every field gets a fresh result even after an earlier field failed.
func (f *Form) Validate() (bool, error) {
	valid := true
	for _, field := range f.fields {
		failure, err := f.ValidateField(field.Name)
		if err != nil {
			return false, err
		}
		if failure != nil {
			valid = false
		}
	}
	return valid, nil
}

func requiredFailure(field model.Field, value any) *model.Validator {
	message := ""
	if field.RequiredMessage != nil {
		message = field.RequiredMessage(field, value)
	}
	if message == "" {
		message = fmt.Sprintf("%s is required", field.DisplayName())
	}
	return &model.Validator{
		Kind:    model.KindRequired,
		Message: message,
	}
}
