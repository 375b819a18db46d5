package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ualgebra/closure"
)

type conReport struct {
	Algebra         string  `yaml:"algebra"`
	Pairs           [][]int `yaml:"pairs"`
	Blocks          [][]int `yaml:"blocks"`
	Representatives []int   `yaml:"representatives"`
	Capped          bool    `yaml:"capped"`
}

// NewConCommand builds the generated-congruence subcommand.
func NewConCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		rawPairs []string
		limit    int
		workers  int
	)

	cmd := &cobra.Command{
		Use:   "con <algebra.yaml>",
		Short: "Close generating pairs into a congruence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadAlgebra(args[0])
			if err != nil {
				return err
			}
			pairs, err := parsePairs(rawPairs)
			if err != nil {
				return err
			}
			res, err := closure.GeneratedCongruence(a, pairs,
				closure.WithLimit(limit),
				closure.WithWorkers(workers),
				closure.WithLogger(rootOpts.Logger()))
			if err != nil {
				return err
			}
			part := res.Partition()

			return writeYAML(cmd.OutOrStdout(), conReport{
				Algebra:         a.Name(),
				Pairs:           pairLists(pairs),
				Blocks:          part.Blocks(),
				Representatives: part.Representatives(),
				Capped:          res.Capped(),
			})
		},
	}

	cmd.Flags().StringSliceVar(&rawPairs, "pairs", nil, "generating pairs in the form a:b, comma separated")
	cmd.Flags().IntVar(&limit, "limit", 0, "stop joining past this many block merges; 0 removes the bound")
	cmd.Flags().IntVar(&workers, "workers", 1, "operations evaluated concurrently per pass")

	return cmd
}
