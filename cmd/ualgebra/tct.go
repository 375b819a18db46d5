package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ualgebra/lattice"
	"github.com/katalvlaran/ualgebra/tct"
)

type tctReport struct {
	Algebra string `yaml:"algebra"`
	Alpha   []int  `yaml:"alpha"`
	Beta    []int  `yaml:"beta"`
	Pair    []int  `yaml:"pair"`
	Type    string `yaml:"type"`
}

// NewTctCommand builds the cover-classification subcommand. By default
// it classifies the cover under the top congruence; --beta and --alpha
// pin the covering pair via generating pairs.
func NewTctCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		rawBeta  []string
		rawAlpha []string
		workers  int
	)

	cmd := &cobra.Command{
		Use:   "tct <algebra.yaml>",
		Short: "Classify the local type of a congruence cover",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadAlgebra(args[0])
			if err != nil {
				return err
			}
			l, err := lattice.NewCongruenceLattice(a)
			if err != nil {
				return err
			}

			beta := l.One()
			if len(rawBeta) > 0 {
				pairs, perr := parsePairs(rawBeta)
				if perr != nil {
					return perr
				}
				if beta, err = l.GeneratedBy(pairs); err != nil {
					return err
				}
			}

			opts := []tct.Option{
				tct.WithWorkers(workers),
				tct.WithLogger(rootOpts.Logger()),
			}
			if len(rawAlpha) > 0 {
				pairs, perr := parsePairs(rawAlpha)
				if perr != nil {
					return perr
				}
				alpha, aerr := l.GeneratedBy(pairs)
				if aerr != nil {
					return aerr
				}
				opts = append(opts, tct.WithAlpha(alpha))
			}

			tf, err := tct.NewTypeFinder(l, beta, opts...)
			if err != nil {
				return err
			}
			st, err := tf.ClassifyCover()
			if err != nil {
				return err
			}
			x, y := st.Pair()

			return writeYAML(cmd.OutOrStdout(), tctReport{
				Algebra: a.Name(),
				Alpha:   tf.Alpha().Representatives(),
				Beta:    tf.Beta().Representatives(),
				Pair:    []int{x, y},
				Type:    st.Type().String(),
			})
		},
	}

	cmd.Flags().StringSliceVar(&rawBeta, "beta", nil, "generating pairs of the upper congruence; defaults to the top")
	cmd.Flags().StringSliceVar(&rawAlpha, "alpha", nil, "generating pairs of the lower congruence; defaults to the unique lower cover")
	cmd.Flags().IntVar(&workers, "workers", 1, "operations evaluated concurrently per closure pass")

	return cmd
}
