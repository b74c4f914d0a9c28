package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/patterns/internal/chain"
	"github.com/dshills/patterns/internal/config"
	"github.com/dshills/patterns/internal/demo"
)

func newChainCmd(root *rootOptions) *cobra.Command {
	var (
		from     int
		to       int
		handlers []string
	)

	cmd := &cobra.Command{
		Use:   "chain",
		Short: "Pass numbers through a chain of handlers",
		Long: `Pass numbers through PrimeHandler > EvenHandler, followed by any handlers
defined in the configuration file or with --handler.

A handler is written as NAME=EXPRESSION, where EXPRESSION is an expr-lang
predicate over the integer n:

  patterns chain --handler 'Fives=n % 5 == 0'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			extra, err := parseHandlerFlags(handlers)
			if err != nil {
				return err
			}

			rc, err := root.resolve(cmd, func(cfg *config.Config) {
				if cmd.Flags().Changed("from") {
					cfg.Chain.From = from
				}
				if cmd.Flags().Changed("to") {
					cfg.Chain.To = to
				}
				cfg.Chain.Handlers = append(cfg.Chain.Handlers, extra...)
			})
			if err != nil {
				return err
			}

			compiled, err := rc.cfg.ExprHandlers()
			if err != nil {
				return err
			}
			hs := make([]chain.Handler, len(compiled))
			for i, h := range compiled {
				hs[i] = h
			}

			report, err := demo.Chain(rc.narration(), demo.ChainOptions{
				From:  rc.cfg.Chain.From,
				To:    rc.cfg.Chain.To,
				Extra: hs,
			})
			if err != nil {
				return err
			}

			return rc.printResult(report, func() {
				handled := 0
				for _, r := range report.Results {
					if r.Handled {
						handled++
					}
				}
				fmt.Fprintf(rc.out, "\n%d of %d numbers consumed\n", handled, len(report.Results))
			})
		},
	}

	cmd.Flags().IntVar(&from, "from", 0, "First number (default from config)")
	cmd.Flags().IntVar(&to, "to", 0, "Last number (default from config)")
	cmd.Flags().StringArrayVar(&handlers, "handler", nil, "Extra handler as NAME=EXPRESSION (repeatable)")
	return cmd
}

// parseHandlerFlags splits NAME=EXPRESSION values.
func parseHandlerFlags(values []string) ([]config.ExprHandlerConfig, error) {
	out := make([]config.ExprHandlerConfig, 0, len(values))
	for _, v := range values {
		name, expression, ok := strings.Cut(v, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" || strings.TrimSpace(expression) == "" {
			return nil, fmt.Errorf("invalid --handler %q: want NAME=EXPRESSION", v)
		}
		out = append(out, config.ExprHandlerConfig{Name: name, Expression: expression})
	}
	return out, nil
}
