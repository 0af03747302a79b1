package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/on-the-ground/overload_ive_go/internal/configkeys"
)

// ErrFingerprintMismatch means the table no longer matches the pinned fingerprint.
var ErrFingerprintMismatch = errors.New("overload table fingerprint mismatch")

func newCheckCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the overload table, external declarations and the pinned fingerprint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := a.table()
			if err != nil {
				return err
			}

			var errs error
			for _, path := range a.cfg.GetStringSlice(configkeys.ConfigCheckDeclFiles) {
				decls, err := readDecls(path)
				if err != nil {
					errs = multierr.Append(errs, err)
					continue
				}
				errs = multierr.Append(errs, reg.Declare(decls...))
			}
			errs = multierr.Append(errs, reg.Validate())

			got := formatFingerprint(reg.Fingerprint())
			if want := a.cfg.GetString(configkeys.ConfigCheckFingerprint); want != "" && want != got {
				errs = multierr.Append(errs, fmt.Errorf("%w: got %s, want %s", ErrFingerprintMismatch, got, want))
			}
			if errs != nil {
				return errs
			}

			a.logger.Info("overload table checked",
				zap.String("registry", reg.ID()),
				zap.String("fingerprint", got),
			)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok %s\n", got)
			return err
		},
	}
	cmd.Flags().String("expect-fingerprint", "", "fail unless the table has this fingerprint")
	cmd.Flags().StringSlice("declare", nil, "yaml table of external declarations to check for conflicts")
	return cmd
}
