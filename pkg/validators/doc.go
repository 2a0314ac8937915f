// Package validators implements the built-in validation kinds as pure
// functions, the dispatcher that routes a validator configuration to an
// inline predicate, a built-in check, or a named custom validator, and the
// explicit registry those named validators live in. Every built-in check
// except required passes automatically for empty values; enforcing presence
// is exclusively the Required flag's job.
package validators
