// Package chain implements a chain of responsibility over integers.
//
// Handlers are tried in the order they were added. Each one either
// consumes the number, producing a message, or declines, in which case the
// next handler is asked:
//
//	c := chain.New(chain.PrimeHandler{}, chain.EvenHandler{})
//
//	r, _ := c.Handle(7) // PrimeHandler: consumed prime number 7
//	r, _ = c.Handle(9)  // not handled: number not consumed
//
// Handlers can also be defined by an expr-lang predicate over n:
//
//	h, err := chain.NewExprHandler("Fives", "n % 5 == 0")
//	c.Append(h)
package chain
