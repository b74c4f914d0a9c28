package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/patterns/internal/config"
	"github.com/dshills/patterns/internal/demo"
)

func newObserverCmd(root *rootOptions) *cobra.Command {
	var (
		rounds int
		seed   int64
	)

	cmd := &cobra.Command{
		Use:   "observer",
		Short: "Emit random IDs to a set of watching observers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := root.resolve(cmd, func(cfg *config.Config) {
				if cmd.Flags().Changed("rounds") {
					cfg.Observer.Rounds = rounds
				}
				if cmd.Flags().Changed("seed") {
					cfg.Observer.Seed = seed
				}
			})
			if err != nil {
				return err
			}

			watchers := make([]demo.Watcher, len(rc.cfg.Observer.Watchers))
			for i, w := range rc.cfg.Observer.Watchers {
				watchers[i] = demo.Watcher{Name: w.Name, ID: w.ID}
			}

			report, err := demo.Observer(cmd.Context(), rc.narration(), demo.ObserverOptions{
				Rounds:   rc.cfg.Observer.Rounds,
				Seed:     rc.cfg.Observer.Seed,
				Watchers: watchers,
				Logger:   rc.logger,
			})
			if err != nil {
				return err
			}

			return rc.printResult(report, func() {
				fmt.Fprintf(rc.out, "\nSeed: %d\n", report.Seed)
			})
		},
	}

	cmd.Flags().IntVar(&rounds, "rounds", 0, "Number of IDs to emit (default from config)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed for the ID generator (default random)")
	return cmd
}
