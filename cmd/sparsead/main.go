// Command sparsead exercises the sparse forward-mode AD engine from the
// command line: index-set algebra, sparse arithmetic, named-array
// permutation, derivative verification and batch gradients.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/sparsead/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app is the state shared by every subcommand after PersistentPreRunE.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "sparsead",
		Short: "Sparse forward-mode automatic differentiation toolkit",
		Long: `sparsead drives a sparse dual-number engine whose derivatives store
coefficients only for the variables actually reached.

Sparse values are written as "{(index,value), ...}", for example
"{(0,1.5), (3,-2)}". Dual numbers are written as "(value,{...})".`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")

	root.AddCommand(
		a.setCmd(),
		a.combineCmd(),
		a.permuteCmd(),
		a.verifyCmd(),
		a.gradCmd(),
	)

	return root
}

// setup loads and validates the configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	logger, err := cfg.Logger(a.verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.cfg, a.logger = cfg, logger
	a.logger.Debug("config loaded",
		zap.String("path", a.configPath),
		zap.String("access_mode", cfg.Engine.AccessMode),
		zap.Int("workers", cfg.Batch.Workers))

	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
