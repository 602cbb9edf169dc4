package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/helpers/pkg/access"
	"github.com/dmitrymomot/helpers/pkg/logger"
)

func newGetCmd(a *app) *cobra.Command {
	var def string

	cmd := &cobra.Command{
		Use:   "get <file> <path>",
		Short: "Print the value at path",
		Example: `  helpers get config.yaml '[server][port]'
  helpers get users.json '[items][0][email]' --default none`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, path := args[0], args[1]
			ctx := withFile(cmd.Context(), file)

			doc, err := readDocument(file, cmd.InOrStdin())
			if err != nil {
				return err
			}

			var opts []access.Option
			if cmd.Flags().Changed("default") {
				opts = append(opts, access.OrDefault(parseScalar(def)))
			}

			v, err := a.accessor.Get(doc, access.Expr(path), a.accessOptions(opts...)...)
			if err != nil {
				return err
			}
			a.log.DebugContext(ctx, "value read", logger.Path(path))

			return writeDocument(cmd.OutOrStdout(), v)
		},
	}
	cmd.Flags().StringVar(&def, "default", "", "value printed when the path does not resolve")
	return cmd
}
