package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/helpers/pkg/access"
	"github.com/dmitrymomot/helpers/pkg/collection"
)

func newSortCmd(a *app) *cobra.Command {
	var (
		by    string
		order string
	)

	cmd := &cobra.Command{
		Use:   "sort <file> <path>",
		Short: "Print the list at path ordered by a field",
		Example: `  helpers sort users.yaml items --by age --order desc
  helpers sort - . --by '[name]' < list.json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, path := args[0], args[1]

			doc, err := readDocument(file, cmd.InOrStdin())
			if err != nil {
				return err
			}
			dir, err := collection.ParseDirection(order)
			if err != nil {
				return err
			}

			list := doc
			if path != "." {
				if list, err = a.accessor.Get(doc, access.Expr(path), a.accessOptions()...); err != nil {
					return err
				}
			}
			items, ok := list.([]any)
			if !ok {
				return fmt.Errorf("%s is not a list", path)
			}

			sorted, err := collection.SortBy(items, by, dir)
			if err != nil {
				return err
			}
			return writeDocument(cmd.OutOrStdout(), sorted)
		},
	}
	cmd.Flags().StringVar(&by, "by", "", "field path inside every item")
	cmd.Flags().StringVar(&order, "order", "asc", "asc or desc")
	_ = cmd.MarkFlagRequired("by")
	return cmd
}
