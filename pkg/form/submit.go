package form

import "context"

// Submit drives the submission lifecycle: clear the global error, run a full
// validation, and invoke the handler with a snapshot of the values.
//
// An invalid form or a missing handler resolves to (nil, nil) with the field
// failures left visible. A handler error is captured into the global error
// and handed to the error callback; Submit still returns (nil, nil), so the
// caller distinguishes outcomes by inspecting the result and GlobalError
// rather than an error from Submit. The only errors Submit itself returns are
// configuration faults raised during validation.
//
// The handler call is the blocking boundary: the submitting flag is true for
// exactly its duration. Submit does not serialize concurrent submissions; a
// second call while one is in flight re-validates and launches a second
// handler invocation.
func (f *Form) Submit(ctx context.Context) (any, error) {
	f.globalErr = nil

	valid, err := f.Validate()
	if err != nil {
		return nil, err
	}
	if !valid || f.handler == nil {
		return nil, nil
	}

	f.submitting = true
	values := f.Values()
	result, handlerErr := f.handler(ctx, values)
	f.submitting = false

	if handlerErr != nil {
		f.globalErr = handlerErr
		if f.onError != nil {
			f.onError(handlerErr)
		}
		return nil, nil
	}

	if f.onSuccess != nil {
		f.onSuccess(result)
	}
	return result, nil
}
