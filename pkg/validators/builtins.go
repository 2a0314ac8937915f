package validators

import (
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/Matey2010/ultimate-form/pkg/model"
)

// Func is a pure check invoked by the dispatcher for a built-in kind. It
// receives the current value, the validator configuration carrying the
// kind-specific params, and a snapshot of all field values for cross-field
// comparisons.
type Func func(value any, v model.Validator, ctx model.Context) bool

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	urlPattern   = regexp.MustCompile(`^https?://[^\s/$.?#].[^\s]*$`)
	phonePattern = regexp.MustCompile(`^[+]?[0-9()\-.\s]+$`)
	alphaPattern = regexp.MustCompile(`^[a-zA-Z]+$`)
	alnumPattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	digitPattern = regexp.MustCompile(`[^0-9]`)
)

// builtins maps validator kinds to their check. KindCustom is deliberately
// absent: without an inline predicate or a registered name it is a
// configuration fault, handled by the dispatcher.
var builtins = map[string]Func{
	model.KindRequired:     checkRequired,
	model.KindEmail:        skipEmpty(checkEmail),
	model.KindURL:          skipEmpty(checkURL),
	model.KindPhone:        skipEmpty(checkPhone),
	model.KindMinLength:    skipEmpty(checkMinLength),
	model.KindMaxLength:    skipEmpty(checkMaxLength),
	model.KindMin:          skipEmpty(checkMin),
	model.KindMax:          skipEmpty(checkMax),
	model.KindPattern:      skipEmpty(checkPattern),
	model.KindMatch:        skipEmpty(checkMatch),
	model.KindEquals:       skipEmpty(checkEquals),
	model.KindNotEquals:    skipEmpty(checkNotEquals),
	model.KindOneOf:        skipEmpty(checkOneOf),
	model.KindAlpha:        skipEmpty(checkAlpha),
	model.KindAlphanumeric: skipEmpty(checkAlphanumeric),
	model.KindNumeric:      skipEmpty(checkNumeric),
	model.KindInteger:      skipEmpty(checkInteger),
	model.KindDate:         skipEmpty(checkDate),
	model.KindDateAfter:    skipEmpty(checkDateAfter),
	model.KindDateBefore:   skipEmpty(checkDateBefore),
}

// Builtin looks up the check for a validator kind.
func Builtin(kind string) (Func, bool) {
	fn, ok := builtins[kind]
	return fn, ok
}

// Kinds returns the sorted list of built-in validator kinds.
func Kinds() []string {
	names := make([]string, 0, len(builtins))
	for kind := range builtins {
		names = append(names, kind)
	}
	sort.Strings(names)
	return names
}

// skipEmpty applies the uniform empty-value policy: every built-in check
// except required passes automatically for empty values, so an optional field
// left blank never trips format or range rules.
func skipEmpty(fn Func) Func {
	return func(value any, v model.Validator, ctx model.Context) bool {
		if model.IsEmpty(value) {
			return true
		}
		return fn(value, v, ctx)
	}
}

func checkRequired(value any, _ model.Validator, _ model.Context) bool {
	return !model.IsEmpty(value)
}

func checkEmail(value any, _ model.Validator, _ model.Context) bool {
	return emailPattern.MatchString(stringify(value))
}

func checkURL(value any, _ model.Validator, _ model.Context) bool {
	return urlPattern.MatchString(stringify(value))
}

func checkPhone(value any, _ model.Validator, _ model.Context) bool {
	raw := stringify(value)
	digits := digitPattern.ReplaceAllString(raw, "")
	return len(digits) >= 10 && phonePattern.MatchString(strings.TrimSpace(raw))
}

func checkMinLength(value any, v model.Validator, _ model.Context) bool {
	length, ok := intParam(v.Params, "length")
	if !ok {
		return false
	}
	return len([]rune(stringify(value))) >= length
}

func checkMaxLength(value any, v model.Validator, _ model.Context) bool {
	length, ok := intParam(v.Params, "length")
	if !ok {
		return false
	}
	return len([]rune(stringify(value))) <= length
}

func checkMin(value any, v model.Validator, _ model.Context) bool {
	bound, ok := floatParam(v.Params, "min")
	if !ok {
		return false
	}
	number, ok := toFloat(value)
	return ok && number >= bound
}

func checkMax(value any, v model.Validator, _ model.Context) bool {
	bound, ok := floatParam(v.Params, "max")
	if !ok {
		return false
	}
	number, ok := toFloat(value)
	return ok && number <= bound
}

// checkPattern accepts either a pre-compiled *regexp.Regexp or a pattern
// string in Params["pattern"]. Unparseable patterns fail closed.
func checkPattern(value any, v model.Validator, _ model.Context) bool {
	switch pattern := v.Params["pattern"].(type) {
	case *regexp.Regexp:
		if pattern == nil {
			return false
		}
		return pattern.MatchString(stringify(value))
	case string:
		compiled, err := regexp.Compile(pattern)
		if err != nil {
			return false
		}
		return compiled.MatchString(stringify(value))
	default:
		return false
	}
}

func checkMatch(value any, v model.Validator, ctx model.Context) bool {
	fieldName, ok := stringParam(v.Params, "fieldName")
	if !ok {
		return false
	}
	return stringify(value) == stringify(ctx[fieldName])
}

func checkEquals(value any, v model.Validator, _ model.Context) bool {
	expected, ok := v.Params["value"]
	if !ok {
		return false
	}
	return stringify(value) == stringify(expected)
}

func checkNotEquals(value any, v model.Validator, _ model.Context) bool {
	forbidden, ok := v.Params["value"]
	if !ok {
		return false
	}
	return stringify(value) != stringify(forbidden)
}

func checkOneOf(value any, v model.Validator, _ model.Context) bool {
	raw, ok := v.Params["values"]
	if !ok || raw == nil {
		return false
	}
	rv := reflect.ValueOf(raw)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return false
	}
	needle := stringify(value)
	for i := 0; i < rv.Len(); i++ {
		if stringify(rv.Index(i).Interface()) == needle {
			return true
		}
	}
	return false
}

func checkAlpha(value any, _ model.Validator, _ model.Context) bool {
	return alphaPattern.MatchString(stringify(value))
}

func checkAlphanumeric(value any, _ model.Validator, _ model.Context) bool {
	return alnumPattern.MatchString(stringify(value))
}

func checkNumeric(value any, _ model.Validator, _ model.Context) bool {
	_, ok := toFloat(value)
	return ok
}

func checkInteger(value any, _ model.Validator, _ model.Context) bool {
	_, ok := toInteger(value)
	return ok
}

func checkDate(value any, _ model.Validator, _ model.Context) bool {
	_, ok := toTime(value)
	return ok
}

func checkDateAfter(value any, v model.Validator, _ model.Context) bool {
	boundary, ok := toTime(v.Params["date"])
	if !ok {
		return false
	}
	parsed, ok := toTime(value)
	return ok && parsed.After(boundary)
}

func checkDateBefore(value any, v model.Validator, _ model.Context) bool {
	boundary, ok := toTime(v.Params["date"])
	if !ok {
		return false
	}
	parsed, ok := toTime(value)
	return ok && parsed.Before(boundary)
}
