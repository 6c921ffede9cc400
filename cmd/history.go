package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bnema/wikiask-cli/internal/adapters/render/transcript"
	"github.com/spf13/cobra"
)

var errHistoryDisabled = errors.New("query history is not configured")

func newHistoryCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show or clear the local query history",
	}

	cmd.AddCommand(
		newHistoryListCmd(app),
		newHistoryRemoveCmd(app),
		newHistoryClearCmd(app),
	)

	return cmd
}

func newHistoryListCmd(app *app) *cobra.Command {
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent queries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			history := app.service.History()
			if history == nil {
				return errHistoryDisabled
			}

			items, err := history.List(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(items)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), transcript.RenderHistory(items, app.now()))
			return err
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of entries (0 for all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newHistoryRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete one recorded query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			history := app.service.History()
			if history == nil {
				return errHistoryDisabled
			}

			if err := history.Remove(cmd.Context(), args[0]); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
			return err
		},
	}
}

func newHistoryClearCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every recorded query",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			history := app.service.History()
			if history == nil {
				return errHistoryDisabled
			}

			if err := history.Clear(cmd.Context()); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "history cleared")
			return err
		},
	}
}
