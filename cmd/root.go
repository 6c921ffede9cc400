package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wa",
		Short:         "wikiask (wa): chat with topic experts from the terminal",
		Long:          "wa talks to the wikiask expert backend. Each expert keeps its own conversation memory across runs, and the health expert can search in fast, normal or deep mode.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPostRun = func(_ *cobra.Command, _ []string) {
		app.close()
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newChatCmd(app),
		newAskCmd(app),
		newExpertsCmd(app),
		newSessionCmd(app),
		newHistoryCmd(app),
	)

	return rootCmd
}
