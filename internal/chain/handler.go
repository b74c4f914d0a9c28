package chain

// Handler consumes numbers it is responsible for.
type Handler interface {
	// Name identifies the handler in results.
	Name() string

	// Handle returns a message and true if the handler consumes n,
	// or false to let the next handler try.
	Handle(n int) (string, bool, error)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc struct {
	name string
	fn   func(n int) (string, bool, error)
}

// NewHandlerFunc creates a named handler from a function.
func NewHandlerFunc(name string, fn func(n int) (string, bool, error)) *HandlerFunc {
	return &HandlerFunc{name: name, fn: fn}
}

// Name implements Handler.Name.
func (f *HandlerFunc) Name() string {
	return f.name
}

// Handle implements Handler.Handle. A nil function never consumes.
func (f *HandlerFunc) Handle(n int) (string, bool, error) {
	if f.fn == nil {
		return "", false, nil
	}
	return f.fn(n)
}
