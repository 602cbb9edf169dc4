package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/helpers/pkg/access"
	"github.com/dmitrymomot/helpers/pkg/logger"
	"github.com/dmitrymomot/helpers/pkg/typecheck"
)

func newSetCmd(a *app) *cobra.Command {
	var (
		spec    string
		inPlace bool
	)

	cmd := &cobra.Command{
		Use:   "set <file> <path> <value>",
		Short: "Write a value at path and print the document",
		Example: `  helpers set config.yaml '[server][port]' 8080 --type Int
  helpers set config.yaml '[features][beta]' yes --type Bool -w`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, path := args[0], args[1]
			ctx := withFile(cmd.Context(), file)

			doc, err := readDocument(file, cmd.InOrStdin())
			if err != nil {
				return err
			}

			value := parseScalar(args[2])
			if spec != "" {
				if value, err = typecheck.Check(path, value, spec, typecheck.WithCaller("set")); err != nil {
					return err
				}
			}

			if err := a.accessor.Set(doc, access.Expr(path), value, a.accessOptions()...); err != nil {
				return err
			}
			a.log.DebugContext(ctx, "value written", logger.Path(path), logger.Spec(spec))

			if inPlace && file != "-" {
				return saveDocument(file, doc)
			}
			return writeDocument(cmd.OutOrStdout(), doc)
		},
	}
	cmd.Flags().StringVar(&spec, "type", "", "type identifier the value is checked and coerced against")
	cmd.Flags().BoolVarP(&inPlace, "write", "w", false, "write the result back to the file")
	return cmd
}
