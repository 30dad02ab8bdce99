package cmd

import (
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"

	"chordscope/midi"
)

func init() {
	rootCmd.AddCommand(portsCmd)
}

var portsCmd = &cobra.Command{
	Use:   "ports",
	Short: "List available MIDI input ports",
	RunE: func(cmd *cobra.Command, args []string) error {
		defer gomidi.CloseDriver()

		names := midi.InPortNames()
		if len(names) == 0 {
			cmd.Println("No MIDI input ports found")
			return nil
		}
		for i, name := range names {
			marker := " "
			if midi.IsKeyboardPort(name) {
				marker = "*"
			}
			cmd.Printf("%s %d: %s\n", marker, i, name)
		}
		return nil
	},
}
