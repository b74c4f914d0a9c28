package chain

import "fmt"

// NotConsumed is the message of a result no handler consumed.
const NotConsumed = "number not consumed"

// Result is the outcome of passing a number along a chain.
type Result struct {
	Number  int    `json:"number"`
	Handler string `json:"handler,omitempty"`
	Message string `json:"message"`
	Handled bool   `json:"handled"`
}

// Chain tries handlers in order until one consumes the number.
type Chain struct {
	handlers []Handler
}

// New creates a chain of the given handlers, tried in order.
func New(handlers ...Handler) *Chain {
	c := &Chain{}
	for _, h := range handlers {
		c.Append(h)
	}
	return c
}

// Append adds a handler to the end of the chain. Nil handlers are ignored.
func (c *Chain) Append(h Handler) *Chain {
	if h != nil {
		c.handlers = append(c.handlers, h)
	}
	return c
}

// Len returns the number of handlers.
func (c *Chain) Len() int {
	return len(c.handlers)
}

// Names returns handler names in order.
func (c *Chain) Names() []string {
	names := make([]string, len(c.handlers))
	for i, h := range c.handlers {
		names[i] = h.Name()
	}
	return names
}

// Handle passes n along the chain. A handler error stops the chain.
func (c *Chain) Handle(n int) (Result, error) {
	for _, h := range c.handlers {
		msg, ok, err := h.Handle(n)
		if err != nil {
			return Result{Number: n}, fmt.Errorf("handler %s: %w", h.Name(), err)
		}
		if ok {
			return Result{Number: n, Handler: h.Name(), Message: msg, Handled: true}, nil
		}
	}
	return Result{Number: n, Message: NotConsumed}, nil
}

// HandleRange passes every number in [from, to] along the chain and stops
// at the first handler error. The range may end at math.MaxInt.
func (c *Chain) HandleRange(from, to int) ([]Result, error) {
	var results []Result
	if to < from {
		return results, nil
	}
	for n := from; ; n++ {
		r, err := c.Handle(n)
		if err != nil {
			return results, err
		}
		results = append(results, r)
		if n == to {
			break
		}
	}
	return results, nil
}
