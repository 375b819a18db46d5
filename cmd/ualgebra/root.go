package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootOptions holds global flags shared by every subcommand.
type RootOptions struct {
	Verbose bool

	logger *zap.Logger
}

// Logger returns the configured logger, a no-op one unless --verbose.
func (o *RootOptions) Logger() *zap.Logger {
	if o.logger == nil {
		return zap.NewNop()
	}

	return o.logger
}

// NewRootCommand assembles the ualgebra command tree.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "ualgebra",
		Short: "Finite universal algebra calculator",
		Long: `ualgebra computes closures over finite algebras given as YAML
operation tables: generated subalgebras (sub), generated congruences
(con) and tame-congruence type labels for covers (tct).

Reports are normalized YAML documents on stdout so two implementations
can be compared with a plain diff.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !opts.Verbose {
				return nil
			}
			cfg := zap.NewProductionConfig()
			cfg.OutputPaths = []string{"stderr"}
			logger, err := cfg.Build()
			if err != nil {
				return err
			}
			opts.logger = logger

			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "structured logs on stderr")

	cmd.AddCommand(NewSubCommand(opts))
	cmd.AddCommand(NewConCommand(opts))
	cmd.AddCommand(NewTctCommand(opts))

	return cmd
}
