package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/helpers/pkg/typecheck"
)

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "parse <identifier>",
		Short:   "Show how a type identifier is decoded",
		Example: `  helpers parse isNotEmptyStringOrNullOrUUID`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := typecheck.Parse(args[0])
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "#\tTOKEN\tKIND\tNON-EMPTY\tNAME")
			for i, e := range spec.Entries {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%t\t%s\n", i+1, e.Token.Name, e.Token.Kind, e.RequireNonEmpty, e.Human())
			}
			return tw.Flush()
		},
	}
}
