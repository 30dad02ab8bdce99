package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chordscope",
	Short: "Key-aware MIDI keyboard monitor",
	Long: `chordscope watches the notes held on a connected MIDI controller and
shows their harmonic meaning in a selected key: note names, chord identity,
Roman numeral, inversion figure, and diatonic classification.

Run with no arguments to start the live monitor.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMonitor()
	},
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
