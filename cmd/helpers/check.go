package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/helpers/pkg/access"
	"github.com/dmitrymomot/helpers/pkg/logger"
	"github.com/dmitrymomot/helpers/pkg/typecheck"
)

func newCheckCmd(a *app) *cobra.Command {
	var optional bool

	cmd := &cobra.Command{
		Use:   "check <file> <path> <identifier>",
		Short: "Check the value at path against a type identifier",
		Long: `check resolves path and tests the value against identifier. On success the
accepted (possibly coerced) value is printed; otherwise the command fails
with a message naming every alternative that was tried.`,
		Example: `  helpers check config.yaml '[server][port]' Int
  helpers check users.yaml '[items][0][id]' NotEmptyStringOrUUID`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, path, identifier := args[0], args[1], args[2]
			ctx := withFile(cmd.Context(), file)

			doc, err := readDocument(file, cmd.InOrStdin())
			if err != nil {
				return err
			}

			opts := a.accessOptions()
			if optional {
				opts = append(opts, access.IgnoreErrors())
			}
			value, err := a.accessor.Get(doc, access.Expr(path), opts...)
			if err != nil {
				return err
			}

			accepted, err := typecheck.Check(path, value, identifier, typecheck.WithCaller(file))
			if err != nil {
				a.log.DebugContext(ctx, "check failed", logger.Param(path), logger.Spec(identifier), logger.Error(err))
				return err
			}
			return writeDocument(cmd.OutOrStdout(), accepted)
		},
	}
	cmd.Flags().BoolVar(&optional, "optional", false, "treat an unresolved path as null instead of failing")
	return cmd
}
