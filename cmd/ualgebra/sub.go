package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ualgebra/closure"
)

type subReport struct {
	Algebra    string `yaml:"algebra"`
	Generators []int  `yaml:"generators"`
	Size       int    `yaml:"size"`
	Elements   []int  `yaml:"elements"`
	Capped     bool   `yaml:"capped"`
}

// NewSubCommand builds the generated-subalgebra subcommand.
func NewSubCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		gens    []int
		limit   int
		workers int
	)

	cmd := &cobra.Command{
		Use:   "sub <algebra.yaml>",
		Short: "Close a generating set under the algebra's operations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadAlgebra(args[0])
			if err != nil {
				return err
			}
			res, err := closure.GeneratedSubalgebra(a, gens,
				closure.WithLimit(limit),
				closure.WithWorkers(workers),
				closure.WithLogger(rootOpts.Logger()))
			if err != nil {
				return err
			}
			if gens == nil {
				gens = []int{}
			}

			return writeYAML(cmd.OutOrStdout(), subReport{
				Algebra:    a.Name(),
				Generators: gens,
				Size:       res.Size(),
				Elements:   res.Elements(),
				Capped:     res.Capped(),
			})
		},
	}

	cmd.Flags().IntSliceVar(&gens, "gens", nil, "generator elements, comma separated")
	cmd.Flags().IntVar(&limit, "limit", 0, "stop growing past this many elements; 0 removes the bound")
	cmd.Flags().IntVar(&workers, "workers", 1, "operations evaluated concurrently per pass")

	return cmd
}
