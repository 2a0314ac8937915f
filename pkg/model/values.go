package model

import (
	"reflect"
	"strings"
)

// IsEmpty reports whether a field value counts as empty for required checks
// and the optional-field skip rule: nil, a string that is blank after
// trimming, or a slice/array/map with no elements.
func IsEmpty(value any) bool {
	if value == nil {
		return true
	}
	switch typed := value.(type) {
	case string:
		return strings.TrimSpace(typed) == ""
	case []any:
		return len(typed) == 0
	case map[string]any:
		return len(typed) == 0
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// CloneContext returns a shallow copy of a value snapshot. Validators receive
// clones so a misbehaving predicate cannot mutate engine state.
func CloneContext(values map[string]any) Context {
	if values == nil {
		return Context{}
	}
	out := make(Context, len(values))
	for name, value := range values {
		out[name] = value
	}
	return out
}
