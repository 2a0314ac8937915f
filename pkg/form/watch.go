package form

import (
	"fmt"

	"github.com/Matey2010/ultimate-form/pkg/model"
)

// Event describes a committed value change on one field, carrying the
// failure state observed after any automatic re-validation.
type Event struct {
	Field   string
	Value   any
	Failure *model.Validator
}

// Watcher observes committed value changes for a field.
type Watcher func(Event)

// Watch subscribes to a field's value changes. Watchers fire after the value
// is committed and after any mode-driven re-validation, so they always see
// the settled value/failure pair. The returned cancel function removes the
// subscription and is safe to call more than once.
func (f *Form) Watch(name string, w Watcher) (func(), error) {
	if _, ok := f.byName[name]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	if w == nil {
		return func() {}, nil
	}

	if f.watchers[name] == nil {
		f.watchers[name] = make(map[int]Watcher)
	}
	f.watchSeq++
	id := f.watchSeq
	f.watchers[name][id] = w

	return func() {
		delete(f.watchers[name], id)
	}, nil
}

func (f *Form) notify(name string) {
	subs := f.watchers[name]
	if len(subs) == 0 {
		return
	}
	event := Event{
		Field:   name,
		Value:   f.values[name],
		Failure: f.failures[name],
	}
	for _, w := range subs {
		w(event)
	}
}
