package cli

import (
	"github.com/spf13/cobra"

	"github.com/dshills/patterns/internal/config"
	"github.com/dshills/patterns/internal/demo"
)

func newIteratorCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "iterator [items...]",
		Short: "Traverse a word collection forwards and backwards",
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := root.resolve(cmd, func(cfg *config.Config) {
				if len(args) > 0 {
					cfg.Iterator.Items = args
				}
			})
			if err != nil {
				return err
			}

			report := demo.Iterator(rc.narration(), rc.cfg.Iterator.Items)
			return rc.printResult(report, nil)
		},
	}
	return cmd
}
