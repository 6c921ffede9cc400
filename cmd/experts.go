package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/wikiask-cli/internal/adapters/render/transcript"
	"github.com/spf13/cobra"
)

func newExpertsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "experts",
		Short: "Browse the available experts",
	}

	cmd.AddCommand(newExpertsListCmd(app))

	return cmd
}

func newExpertsListCmd(app *app) *cobra.Command {
	var remote bool
	var verbose bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List experts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			experts, err := app.service.ListExperts(cmd.Context(), remote)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(experts)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), transcript.RenderExperts(experts, verbose))
			return err
		},
	}

	cmd.Flags().BoolVar(&remote, "remote", false, "Ask the backend for its expert list")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show example questions")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
