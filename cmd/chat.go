package cmd

import (
	"fmt"

	"github.com/bnema/wikiask-cli/internal/adapters/render/transcript"
	"github.com/bnema/wikiask-cli/internal/application"
	"github.com/bnema/wikiask-cli/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newChatCmd(app *app) *cobra.Command {
	var rawMode string

	cmd := &cobra.Command{
		Use:   "chat <expert>",
		Short: "Open an interactive conversation with an expert",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := app.resolveMode(rawMode)
			if err != nil {
				return err
			}

			session, err := app.service.NewChat(args[0], mode)
			if err != nil {
				return err
			}

			p := tea.NewProgram(
				transcript.NewChatModel(cmd.Context(), session, transcript.RenderOptions{Markdown: true}),
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			session.Animator().OnChange(func(progress application.Progress) {
				p.Send(transcript.ProgressMsg(progress))
			})
			defer session.Animator().Stop()

			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run chat: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&rawMode, "mode", "", "Search mode for experts that support it (fast|normal|deep)")

	return cmd
}

// resolveMode falls back to the configured mode when the flag is empty.
func (a *app) resolveMode(raw string) (domain.SearchMode, error) {
	if raw == "" {
		return a.defaultMode, nil
	}
	return domain.ParseSearchMode(raw)
}
