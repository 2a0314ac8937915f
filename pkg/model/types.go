package model

// Common field type tags. The set is open: renderers dispatch on the tag via
// registry lookup, so callers can introduce their own tags freely. TypeCustom
// is reserved for fields that are only meaningful with a caller-registered
// renderer.
const (
	TypeText     = "text"
	TypeTextArea = "textarea"
	TypePassword = "password"
	TypeNumber   = "number"
	TypeCheckbox = "checkbox"
	TypeSelect   = "select"
	TypeDate     = "date"
	TypeCustom   = "custom"
)

// Validator kinds understood by the built-in function set. KindCustom is only
// valid together with an inline predicate or a registered custom validator
// name in Params["name"].
const (
	KindRequired     = "required"
	KindEmail        = "email"
	KindURL          = "url"
	KindPhone        = "phone"
	KindMinLength    = "minLength"
	KindMaxLength    = "maxLength"
	KindMin          = "min"
	KindMax          = "max"
	KindPattern      = "pattern"
	KindMatch        = "match"
	KindEquals       = "equals"
	KindNotEquals    = "notEquals"
	KindOneOf        = "oneOf"
	KindAlpha        = "alpha"
	KindAlphanumeric = "alphanumeric"
	KindNumeric      = "numeric"
	KindInteger      = "integer"
	KindDate         = "date"
	KindDateAfter    = "dateAfter"
	KindDateBefore   = "dateBefore"
	KindCustom       = "custom"
)

// Context is a snapshot of all current field values, keyed by field name. It
// is handed to validators that need cross-field comparisons (match and inline
// predicates).
type Context map[string]any

// Predicate is an inline validation function. When present on a Validator it
// takes precedence over kind-based dispatch entirely. It returns true when
// the value passes.
type Predicate func(value any, ctx Context) bool

// Validator describes a single validation rule applied to a field. Kind
// selects a built-in check unless Func is set. Params carries the
// kind-specific configuration (for example Params["length"] for minLength).
//
// The comparison kinds (match, equals, notEquals, oneOf) compare stringified
// representations rather than structural values, so numeric 0 and string "0"
// are considered equal. This coercion is intentional and load-bearing for
// existing configurations; do not tighten it.
type Validator struct {
	Kind    string
	Message string
	Params  map[string]any
	Func    Predicate
}

// Field models one form field: identity, rendering tag, and the ordered
// validation rules evaluated against its value. The zero value of Disabled
// means the field is enabled; the flag is advisory to renderers and the
// engine never blocks edits on it.
//
// Validators must not contain a required-kind entry. Required-ness is
// expressed exclusively through the Required flag; the engine treats a
// required entry in the list as a configuration fault.
type Field struct {
	Name         string
	Type         string
	InitialValue any
	Label        string
	Placeholder  string
	Required     bool
	Disabled     bool
	Validators   []Validator
	Metadata     map[string]any
	// Order is a display sort key only. It never affects validation order,
	// which always follows the Validators slice.
	Order int
	// RequiredMessage overrides the default "<label-or-name> is required"
	// template for the synthesized required failure.
	RequiredMessage func(field Field, value any) string
}

// DisplayName returns the label when present, falling back to the field name.
func (f Field) DisplayName() string {
	if f.Label != "" {
		return f.Label
	}
	return f.Name
}
