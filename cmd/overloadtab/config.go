package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/on-the-ground/overload_ive_go/internal/configkeys"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

// loadConfig layers flags over environment over the optional config file
// over defaults.
func loadConfig(cmd *cobra.Command, configFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(configkeys.ConfigOutputFormat, formatText)
	v.SetDefault(configkeys.ConfigLogLevel, zapcore.WarnLevel.String())

	v.SetEnvPrefix(configkeys.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	for key, flag := range map[string]string{
		configkeys.ConfigOutputFormat:     "format",
		configkeys.ConfigLogLevel:         "log-level",
		configkeys.ConfigCheckFingerprint: "expect-fingerprint",
		configkeys.ConfigCheckDeclFiles:   "declare",
	} {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", flag, err)
			}
		}
	}
	return v, nil
}

// newLogger writes console-encoded logs at level to w.
func newLogger(w io.Writer, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(w)),
		lvl,
	)
	return zap.New(core), nil
}
