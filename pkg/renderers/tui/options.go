package tui

// Option customizes a TUI renderer.
type Option func(*Renderer)

// WithDriver swaps the prompt driver. Useful for testing with a fake driver.
func WithDriver(d PromptDriver) Option {
	return func(r *Renderer) {
		if d != nil {
			r.driver = d
		}
	}
}

// WithMaxAttempts caps re-prompts per field when a value fails validation.
func WithMaxAttempts(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.maxAttempts = n
		}
	}
}

// WithSubmit controls whether the session calls the form's submit handler
// after all fields validate.
func WithSubmit(submit bool) Option {
	return func(r *Renderer) {
		r.submit = submit
	}
}

// WithPageSize controls the select prompt page size.
func WithPageSize(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.pageSize = n
		}
	}
}
