package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/helpers/pkg/access"
	"github.com/dmitrymomot/helpers/pkg/config"
	"github.com/dmitrymomot/helpers/pkg/logger"
)

// app is shared by the subcommands once the root command has loaded the
// configuration.
type app struct {
	cfg      Config
	log      *slog.Logger
	accessor *access.PropertyAccessor
	reflect  bool
}

// accessOptions returns the per-call options implied by the flags.
func (a *app) accessOptions(extra ...access.Option) []access.Option {
	if a.reflect {
		extra = append(extra, access.WithReflection())
	}
	return extra
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "helpers",
		Short:         "Inspect and validate YAML or JSON documents by path",
		Long:          `helpers reads values by path, writes them back, and checks them against type identifiers such as NullOrInt or NotEmptyStringOrUUID.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(&a.cfg); err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			log, err := newLogger(a.cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.log = log
			logger.SetAsDefault(log)
			a.accessor = access.NewPropertyAccessor(access.WithLogger(log))
			if !cmd.Flags().Changed("reflect") {
				a.reflect = a.cfg.AllowReflection
			}
			return nil
		},
	}
	cmd.PersistentFlags().BoolVar(&a.reflect, "reflect", false, "fall back to unexported struct fields")

	cmd.AddCommand(
		newGetCmd(a),
		newSetCmd(a),
		newCheckCmd(a),
		newParseCmd(a),
		newLintCmd(a),
		newSortCmd(a),
	)
	return cmd
}
