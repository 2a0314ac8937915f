package validators

import (
	"errors"
	"fmt"

	"github.com/Matey2010/ultimate-form/pkg/model"
)

var (
	// ErrCustomUnresolved marks a custom-kind configuration that carries
	// neither an inline predicate nor a registered name. This is a caller
	// setup error, not a validation failure, and must surface as a hard
	// fault: supply Func on the Validator or register the name in Params["name"].
	ErrCustomUnresolved = errors.New("validators: custom kind requires an inline predicate or a registered name")

	// ErrUnknownKind marks a validator kind outside the built-in set.
	ErrUnknownKind = errors.New("validators: unknown kind")
)

// Evaluator dispatches a validator configuration to the inline predicate, a
// built-in check, or a registered custom validator. A nil registry is valid
// as long as no custom-kind configuration relies on named lookup.
type Evaluator struct {
	registry *Registry
}

// NewEvaluator constructs an Evaluator backed by the given custom registry.
func NewEvaluator(registry *Registry) *Evaluator {
	return &Evaluator{registry: registry}
}

// Evaluate checks a value against one validator configuration. A passing
// value yields (nil, nil); a failing one yields the failing configuration so
// callers can surface its message and params. Configuration faults (custom
// without a resolvable predicate, unknown kind) return an error and never a
// field failure.
func (e *Evaluator) Evaluate(value any, v model.Validator, ctx model.Context) (*model.Validator, error) {
	if v.Func != nil {
		// Inline predicates win outright; Kind is ignored on this path.
		if v.Func(value, ctx) {
			return nil, nil
		}
		failed := v
		return &failed, nil
	}

	if v.Kind == model.KindCustom {
		return e.evaluateCustom(value, v, ctx)
	}

	fn, ok := Builtin(v.Kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, v.Kind)
	}
	if fn(value, v, ctx) {
		return nil, nil
	}
	failed := v
	return &failed, nil
}

func (e *Evaluator) evaluateCustom(value any, v model.Validator, ctx model.Context) (*model.Validator, error) {
	name, _ := v.Params["name"].(string)
	if name == "" {
		return nil, ErrCustomUnresolved
	}

	var (
		fn CustomFunc
		ok bool
	)
	if e != nil {
		fn, ok = e.registry.lookup(name)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %q is not registered", ErrCustomUnresolved, name)
	}

	message := fn(value, v, ctx)
	if message == "" {
		return nil, nil
	}
	failed := v
	failed.Message = message
	return &failed, nil
}
