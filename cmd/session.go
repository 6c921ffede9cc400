package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/wikiask-cli/internal/application"
	"github.com/spf13/cobra"
)

type sessionOutput struct {
	Expert    string `json:"expert"`
	SessionID string `json:"session_id"`
}

func newSessionCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Inspect or reset the conversation memory of an expert",
	}

	cmd.AddCommand(
		newSessionShowCmd(app),
		newSessionResetCmd(app),
	)

	return cmd
}

func newSessionShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <expert>",
		Short: "Print the session id used for an expert",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := app.service.SessionStatus(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeSessionOutput(cmd, status, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newSessionResetCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "reset <expert>",
		Short: "Start a fresh server-side conversation for an expert",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := app.service.ResetSession(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeSessionOutput(cmd, status, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func writeSessionOutput(cmd *cobra.Command, status application.SessionStatus, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(sessionOutput{Expert: string(status.Expert.ID), SessionID: status.SessionID})
	}

	_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n", status.Expert.Emoji, status.Expert.Name, status.SessionID)
	return err
}
