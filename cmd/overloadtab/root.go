package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/on-the-ground/overload_ive_go/internal/configkeys"
	"github.com/on-the-ground/overload_ive_go/overload"
)

type app struct {
	configFile string
	cfg        *viper.Viper
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "overloadtab",
		Short: "Print and check the declared overload table",
		Long: `overloadtab replays every overload the library declares at startup into a
fresh registry, then prints the table or checks it: every capability must be
able to resolve a present value, external declarations must not conflict with
the built-in ones, and the table fingerprint must match the pinned one.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.init,
		PersistentPostRun: func(*cobra.Command, []string) { _ = a.logger.Sync() },
	}
	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (yaml)")
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn or error (default warn)")

	root.AddCommand(newListCmd(a), newCheckCmd(a))
	return root
}

func (a *app) init(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd, a.configFile)
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd.ErrOrStderr(), cfg.GetString(configkeys.ConfigLogLevel))
	if err != nil {
		return err
	}
	a.cfg, a.logger = cfg, logger
	return nil
}

// table replays the declarations of overload.Default into a registry that
// logs through the tool's logger.
func (a *app) table() (*overload.Registry, error) {
	reg := overload.NewRegistry(overload.WithLogger(a.logger))
	if err := reg.Declare(overload.Default.Entries()...); err != nil {
		return nil, err
	}
	a.logger.Info("replayed overload table",
		zap.String("registry", reg.ID()),
		zap.Int("entries", len(reg.Entries())),
	)
	return reg, nil
}
