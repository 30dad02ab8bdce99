package cmd

import (
	"github.com/spf13/cobra"

	"chordscope/theory"
)

func init() {
	rootCmd.AddCommand(keysCmd)
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the supported key signatures",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog := theory.NewCatalog()
		for i, key := range catalog.All() {
			accidentals := len(key.Sharps)
			kind := "♯"
			if len(key.Flats) > 0 {
				accidentals = len(key.Flats)
				kind = "♭"
			}
			if accidentals == 0 {
				cmd.Printf("%2d  %-10s\n", i, key.Name)
				continue
			}
			cmd.Printf("%2d  %-10s %d%s\n", i, key.Name, accidentals, kind)
		}
		return nil
	},
}
