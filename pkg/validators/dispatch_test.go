package validators_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/Matey2010/ultimate-form/pkg/model"
	"github.com/Matey2010/ultimate-form/pkg/validators"
)

func TestEvaluateBuiltin(t *testing.T) {
	eval := validators.NewEvaluator(nil)
	v := model.Validator{
		Kind:    model.KindEmail,
		Message: "Email must be valid",
	}

	failure, err := eval.Evaluate("ada@example.com", v, nil)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if failure != nil {
		t.Fatalf("valid value produced failure %+v", failure)
	}

	failure, err = eval.Evaluate("not-an-email", v, nil)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if failure == nil {
		t.Fatal("invalid value produced no failure")
	}
	if diff := cmp.Diff(&v, failure, cmpopts.IgnoreFields(model.Validator{}, "Func")); diff != "" {
		t.Fatalf("failure mismatch (-want +got):\n%s", diff)
	}
}

func TestEvaluateInlinePredicateWins(t *testing.T) {
	eval := validators.NewEvaluator(nil)

	// The kind is nonsense, but the inline predicate short-circuits dispatch
	// entirely so no unknown-kind fault is raised.
	v := model.Validator{
		Kind:    "definitely-not-a-kind",
		Message: "must be even",
		Func: func(value any, _ model.Context) bool {
			n, ok := value.(int)
			return ok && n%2 == 0
		},
	}

	failure, err := eval.Evaluate(4, v, nil)
	if err != nil || failure != nil {
		t.Fatalf("Evaluate(4) = (%+v, %v), want pass", failure, err)
	}

	failure, err = eval.Evaluate(5, v, nil)
	if err != nil {
		t.Fatalf("Evaluate(5): %v", err)
	}
	if failure == nil || failure.Message != "must be even" {
		t.Fatalf("Evaluate(5) failure = %+v", failure)
	}
}

func TestEvaluateInlinePredicateSeesContext(t *testing.T) {
	eval := validators.NewEvaluator(nil)
	v := model.Validator{
		Message: "end must come after start",
		Func: func(value any, ctx model.Context) bool {
			return value.(string) > ctx["start"].(string)
		},
	}

	ctx := model.Context{"start": "2024-01-01"}
	if failure, err := eval.Evaluate("2024-02-01", v, ctx); err != nil || failure != nil {
		t.Fatalf("Evaluate = (%+v, %v), want pass", failure, err)
	}
	if failure, _ := eval.Evaluate("2023-12-01", v, ctx); failure == nil {
		t.Fatal("earlier value passed")
	}
}

func TestEvaluateUnknownKind(t *testing.T) {
	eval := validators.NewEvaluator(nil)
	_, err := eval.Evaluate("x", model.Validator{Kind: "telepathy"}, nil)
	if !errors.Is(err, validators.ErrUnknownKind) {
		t.Fatalf("err = %v, want ErrUnknownKind", err)
	}
}

func TestEvaluateCustomByName(t *testing.T) {
	registry := validators.NewRegistry()
	registry.MustRegister("username", func(value any, _ model.Validator, _ model.Context) string {
		if s, ok := value.(string); ok && len(s) >= 3 {
			return ""
		}
		return "username must be at least 3 characters"
	})
	eval := validators.NewEvaluator(registry)

	v := model.Validator{
		Kind:    model.KindCustom,
		Message: "configured message",
		Params:  map[string]any{"name": "username"},
	}

	failure, err := eval.Evaluate("ada", v, nil)
	if err != nil || failure != nil {
		t.Fatalf("Evaluate(ada) = (%+v, %v), want pass", failure, err)
	}

	failure, err = eval.Evaluate("ab", v, nil)
	if err != nil {
		t.Fatalf("Evaluate(ab): %v", err)
	}
	if failure == nil {
		t.Fatal("Evaluate(ab) produced no failure")
	}
	// The custom function's message replaces the configured one.
	if failure.Message != "username must be at least 3 characters" {
		t.Fatalf("failure message = %q", failure.Message)
	}
}

func TestEvaluateCustomUnresolved(t *testing.T) {
	cases := []struct {
		name     string
		registry *validators.Registry
		params   map[string]any
	}{
		{"no name param", validators.NewRegistry(), nil},
		{"empty name", validators.NewRegistry(), map[string]any{"name": ""}},
		{"unregistered name", validators.NewRegistry(), map[string]any{"name": "ghost"}},
		{"nil registry", nil, map[string]any{"name": "ghost"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			eval := validators.NewEvaluator(tc.registry)
			v := model.Validator{Kind: model.KindCustom, Params: tc.params}
			_, err := eval.Evaluate("anything", v, nil)
			if !errors.Is(err, validators.ErrCustomUnresolved) {
				t.Fatalf("err = %v, want ErrCustomUnresolved", err)
			}
		})
	}
}

func TestEvaluateCustomRunsOnEmptyValues(t *testing.T) {
	// Unlike built-ins, custom validators decide their own empty policy.
	registry := validators.NewRegistry()
	registry.MustRegister("nonempty", func(value any, _ model.Validator, _ model.Context) string {
		if model.IsEmpty(value) {
			return "value required"
		}
		return ""
	})
	eval := validators.NewEvaluator(registry)

	v := model.Validator{Kind: model.KindCustom, Params: map[string]any{"name": "nonempty"}}
	failure, err := eval.Evaluate("", v, nil)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if failure == nil {
		t.Fatal("custom validator was skipped for empty value")
	}
}
