// Package form holds the stateful core of the engine: one Form instance per
// active form, owning current values and per-field failures, re-validating on
// value changes according to the configured mode, and sequencing the
// submission lifecycle (validate, invoke handler, success or captured
// failure). It assumes single-owner, event-loop style invocation and performs
// no locking of its own.
package form
