package validators_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Matey2010/ultimate-form/pkg/model"
	"github.com/Matey2010/ultimate-form/pkg/validators"
)

func passAlways(any, model.Validator, model.Context) string { return "" }

func TestRegistryRegisterAndLookup(t *testing.T) {
	registry := validators.NewRegistry()

	if err := registry.Register("username", passAlways); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if !registry.Has("username") {
		t.Fatal("Has(username) = false after Register")
	}
	if registry.Has("unknown") {
		t.Fatal("Has(unknown) = true")
	}
}

func TestRegistryRejectsBadRegistrations(t *testing.T) {
	registry := validators.NewRegistry()

	if err := registry.Register("", passAlways); err == nil {
		t.Fatal("Register with empty name succeeded")
	}
	if err := registry.Register("username", nil); err == nil {
		t.Fatal("Register with nil function succeeded")
	}
	if err := registry.Register("username", passAlways); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := registry.Register("username", passAlways); err == nil {
		t.Fatal("duplicate Register succeeded")
	}
}

func TestRegistryUnregisterAndClear(t *testing.T) {
	registry := validators.NewRegistry()
	registry.MustRegister("a", passAlways)
	registry.MustRegister("b", passAlways)

	registry.Unregister("a")
	if registry.Has("a") {
		t.Fatal("Has(a) = true after Unregister")
	}
	// Unknown names are a no-op.
	registry.Unregister("missing")

	// Replacing requires an explicit Unregister first.
	if err := registry.Register("a", passAlways); err != nil {
		t.Fatalf("re-Register after Unregister: %v", err)
	}

	registry.Clear()
	if got := registry.List(); len(got) != 0 {
		t.Fatalf("List() after Clear = %v", got)
	}
}

func TestRegistryListSorted(t *testing.T) {
	registry := validators.NewRegistry()
	registry.MustRegister("zip", passAlways)
	registry.MustRegister("alpha2", passAlways)
	registry.MustRegister("mid", passAlways)

	want := []string{"alpha2", "mid", "zip"}
	if diff := cmp.Diff(want, registry.List()); diff != "" {
		t.Fatalf("List() mismatch (-want +got):\n%s", diff)
	}
}
