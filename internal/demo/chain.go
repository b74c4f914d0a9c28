package demo

import (
	"fmt"
	"io"
	"strings"

	"github.com/dshills/patterns/internal/chain"
)

// ChainOptions configures the chain of responsibility demonstration.
type ChainOptions struct {
	From  int
	To    int
	Extra []chain.Handler
}

// ChainReport is the outcome of the chain demonstration.
type ChainReport struct {
	Handlers []string       `json:"handlers"`
	Results  []chain.Result `json:"results"`
}

// Chain passes a range of numbers through PrimeHandler, EvenHandler and
// any extra handlers, in that order.
func Chain(w io.Writer, opts ChainOptions) (*ChainReport, error) {
	c := chain.New(chain.PrimeHandler{}, chain.EvenHandler{})
	for _, h := range opts.Extra {
		c.Append(h)
	}

	names := c.Names()
	fmt.Fprintf(w, "Chain: %s\n", strings.Join(names, " > "))

	results, err := c.HandleRange(opts.From, opts.To)
	for _, r := range results {
		fmt.Fprintf(w, "\nClient: processing number %d\n", r.Number)
		fmt.Fprintf(w, "  %s\n", r.Message)
	}
	return &ChainReport{Handlers: names, Results: results}, err
}
