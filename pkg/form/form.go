package form

import (
	"context"
	"fmt"

	"github.com/Matey2010/ultimate-form/pkg/model"
	"github.com/Matey2010/ultimate-form/pkg/validators"
)

// Mode selects when the engine re-validates automatically.
type Mode string

const (
	// ModeOnChange re-validates a field every time its value changes.
	ModeOnChange Mode = "onChange"
	// ModeOnSubmit validates only as part of Submit.
	ModeOnSubmit Mode = "onSubmit"
	// ModeManual validates only when Validate or ValidateField is called.
	ModeManual Mode = "manual"
)

// Handler receives a snapshot of the current values when a valid form is
// submitted. An error return is captured into the form's global error and
// never propagates out of Submit.
type Handler func(ctx context.Context, values map[string]any) (any, error)

// Option customises a Form at construction time.
type Option func(*Form)

// WithInitialValues seeds field values from the map where present, taking
// precedence over each field's own InitialValue.
func WithInitialValues(values map[string]any) Option {
	return func(f *Form) {
		f.initial = model.CloneContext(values)
	}
}

// WithMode sets the automatic validation mode. The default is ModeOnChange.
func WithMode(mode Mode) Option {
	return func(f *Form) {
		switch mode {
		case ModeOnChange, ModeOnSubmit, ModeManual:
			f.mode = mode
		}
	}
}

// WithHandler sets the submission handler invoked by Submit after a
// successful full validation.
func WithHandler(handler Handler) Option {
	return func(f *Form) {
		f.handler = handler
	}
}

// WithOnSuccess registers a callback fired synchronously with the handler's
// result when submission succeeds.
func WithOnSuccess(fn func(result any)) Option {
	return func(f *Form) {
		f.onSuccess = fn
	}
}

// WithOnError registers a callback fired synchronously with the handler's
// error when submission fails.
func WithOnError(fn func(err any)) Option {
	return func(f *Form) {
		f.onError = fn
	}
}

// WithRegistry hands the form a custom validator registry for custom-kind
// configurations resolved by name.
func WithRegistry(registry *validators.Registry) Option {
	return func(f *Form) {
		f.evaluator = validators.NewEvaluator(registry)
	}
}

// Form owns the value and failure state for one active form instance. It
// assumes a single logical owner: calls are expected to be serialized by the
// host (a UI event loop or request handler), so the engine itself performs no
// locking. The one blocking boundary is the submission handler; a caller may
// run Submit on its own goroutine and keep mutating values meanwhile, at its
// own risk of races, exactly as the submission model allows.
type Form struct {
	fields []model.Field
	byName map[string]int

	values   map[string]any
	failures map[string]*model.Validator
	initial  map[string]any

	mode      Mode
	evaluator *validators.Evaluator
	handler   Handler
	onSuccess func(any)
	onError   func(any)

	submitting bool
	globalErr  any

	watchers map[string]map[int]Watcher
	watchSeq int
}

// New builds a Form from an ordered field configuration. Field names must be
// unique and non-empty. Values are seeded from WithInitialValues where the
// name is present, falling back to each field's InitialValue; failures start
// empty.
func New(fields []model.Field, opts ...Option) (*Form, error) {
	f := &Form{
		fields:   append([]model.Field(nil), fields...),
		byName:   make(map[string]int, len(fields)),
		values:   make(map[string]any, len(fields)),
		failures: make(map[string]*model.Validator, len(fields)),
		mode:     ModeOnChange,
		watchers: make(map[string]map[int]Watcher),
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(f)
	}
	if f.evaluator == nil {
		f.evaluator = validators.NewEvaluator(nil)
	}

	for idx, field := range f.fields {
		if field.Name == "" {
			return nil, fmt.Errorf("%w: field at index %d", ErrFieldNameMissing, idx)
		}
		if _, exists := f.byName[field.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateField, field.Name)
		}
		f.byName[field.Name] = idx
		f.values[field.Name] = f.seedValue(field)
		f.failures[field.Name] = nil
	}

	return f, nil
}

func (f *Form) seedValue(field model.Field) any {
	if f.initial != nil {
		if value, ok := f.initial[field.Name]; ok {
			return value
		}
	}
	return field.InitialValue
}

// Fields returns the form's field configurations in declaration order.
func (f *Form) Fields() []model.Field {
	return append([]model.Field(nil), f.fields...)
}

// Field looks up a field configuration by name.
func (f *Form) Field(name string) (model.Field, bool) {
	idx, ok := f.byName[name]
	if !ok {
		return model.Field{}, false
	}
	return f.fields[idx], true
}

// Value returns the current value of a field.
func (f *Form) Value(name string) (any, bool) {
	idx, ok := f.byName[name]
	if !ok {
		return nil, false
	}
	return f.values[f.fields[idx].Name], true
}

// Values returns a snapshot of all current field values.
func (f *Form) Values() map[string]any {
	return model.CloneContext(f.values)
}

// SetValue commits a new value for the field. The commit always happens;
// when the mode is ModeOnChange the field is re-validated afterwards, and a
// configuration fault from that validation is returned. Watchers are
// notified last, after any re-validation, so they observe the settled state.
func (f *Form) SetValue(name string, value any) error {
	if _, ok := f.byName[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	f.values[name] = value

	var err error
	if f.mode == ModeOnChange {
		_, err = f.ValidateField(name)
	}
	f.notify(name)
	return err
}

// Failure returns the field's current validation failure, or nil.
func (f *Form) Failure(name string) *model.Validator {
	return f.failures[name]
}

// Failures returns a snapshot of all current failures; fields without a
// failure map to nil so the key set always mirrors the field set.
func (f *Form) Failures() map[string]*model.Validator {
	out := make(map[string]*model.Validator, len(f.failures))
	for name, failure := range f.failures {
		out[name] = failure
	}
	return out
}

// Valid reports whether no field currently has a recorded failure. It
// reflects the last evaluation and does not itself re-validate.
func (f *Form) Valid() bool {
	for _, failure := range f.failures {
		if failure != nil {
			return false
		}
	}
	return true
}

// Submitting reports whether a submission handler invocation is in flight.
func (f *Form) Submitting() bool {
	return f.submitting
}

// GlobalError returns the last submission handler failure, or nil.
func (f *Form) GlobalError() any {
	return f.globalErr
}

// Reset restores every field to its seeded value and clears all failures.
// The submitting flag and global error are left untouched.
func (f *Form) Reset() {
	for _, field := range f.fields {
		f.values[field.Name] = f.seedValue(field)
		f.failures[field.Name] = nil
	}
	for _, field := range f.fields {
		f.notify(field.Name)
	}
}
