package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/driftchat/drift/demo"
	"github.com/driftchat/drift/tui"
	"github.com/driftchat/drift/tui/styles"
)

var RootCmd = &cobra.Command{
	Use:   "drift",
	Short: "Opens the chat client",
	Long:  `Opens the chat client. The provided channel will be opened initially. Defaults to the first channel in the list.`,
	Run:   runRoot,
	Args:  cobra.MaximumNArgs(1),
}

func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, args []string) {
	var initialChannel string
	if len(args) > 0 {
		initialChannel = args[0]
	}

	channels, roster, presence := demo.Seed()
	model := tui.New(tui.Config{
		Channels:       channels,
		Names:          roster,
		Presence:       presence,
		Self:           "You",
		Theme:          styles.Get(os.Getenv("DRIFT_THEME")),
		InitialChannel: initialChannel,
	})

	program := tea.NewProgram(model, tea.WithAltScreen())

	msgChan := make(chan tea.Msg)
	done := make(chan struct{})
	go demo.Run(msgChan, done)
	go func() {
		for msg := range msgChan {
			program.Send(msg)
		}
	}()

	_, err := program.Run()
	close(done)
	if err != nil {
		panic(fmt.Sprintf("Something went wrong: %v", err))
	}
}
