package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dshills/patterns/internal/config"
	"github.com/dshills/patterns/internal/demo"
)

func newMementoCmd(root *rootOptions) *cobra.Command {
	var (
		identifier string
		capacity   int
	)

	cmd := &cobra.Command{
		Use:     "memento",
		Aliases: []string{"undo"},
		Short:   "Write to a versioned buffer, save checkpoints and undo",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := root.resolve(cmd, func(cfg *config.Config) {
				if cmd.Flags().Changed("identifier") {
					cfg.Memento.Identifier = identifier
				}
				if cmd.Flags().Changed("capacity") {
					cfg.History.Capacity = capacity
				}
			})
			if err != nil {
				return err
			}

			report, err := demo.Memento(rc.narration(), demo.MementoOptions{
				Identifier: rc.cfg.Memento.Identifier,
				Capacity:   rc.cfg.History.Capacity,
				Logger:     rc.logger,
			})
			if err != nil {
				return err
			}

			return rc.printResult(report, func() {
				fmt.Fprintf(rc.out, "Retained checkpoints (%d of %d, newest first):\n", len(report.History), report.Capacity)
				tw := tabwriter.NewWriter(rc.out, 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "UNDO\tID\tIDENTIFIER\tBYTES")
				for _, cp := range report.History {
					fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", cp.Undo, cp.ID, cp.Identifier, cp.Size)
				}
				_ = tw.Flush()
			})
		},
	}

	cmd.Flags().StringVar(&identifier, "identifier", "", "Buffer identifier (default from config)")
	cmd.Flags().IntVar(&capacity, "capacity", 0, "Number of checkpoints kept (default from config)")
	return cmd
}
