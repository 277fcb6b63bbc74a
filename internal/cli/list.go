package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every document in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.catalog.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list documents: %w", err)
			}
			writeListing(cmd.OutOrStdout(), res.Items)
			cmd.Printf("\nTotal: %d documents\n", res.Total)
			return nil
		},
	}
}

func (a *app) newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [number]",
		Short: "Print one document by its 1-based number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := parseNumber(args[0])
			if err != nil {
				return err
			}
			entry, err := a.catalog.Get(cmd.Context(), number)
			if err != nil {
				return fmt.Errorf("failed to get document: %w", err)
			}
			writeEntry(cmd.OutOrStdout(), *entry)
			return nil
		},
	}
}
