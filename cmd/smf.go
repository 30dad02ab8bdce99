package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	gosmf "gitlab.com/gomidi/midi/v2/smf"

	"chordscope/analyzer"
	"chordscope/progression"
	"chordscope/theory"
)

var smfKey string

func init() {
	smfCmd.Flags().StringVar(&smfKey, "key", "C Major", "key signature name or catalog index")
	rootCmd.AddCommand(smfCmd)
}

var smfCmd = &cobra.Command{
	Use:   "smf <file.mid>",
	Short: "Analyze the chord progression of a MIDI file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog := theory.NewCatalog()
		key, err := resolveKey(catalog, smfKey)
		if err != nil {
			return err
		}

		s, err := gosmf.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}

		an := analyzer.New(catalog)
		cmd.Printf("Key: %s\n", key.Name)

		for _, seg := range progression.FromSMF(s) {
			if len(seg.Notes) < 2 {
				continue
			}
			res := an.Analyze(seg.Notes, key)
			if res.Empty() {
				continue
			}
			line := fmt.Sprintf("%8.3fs  %-18s", seg.Start.Seconds(), res.ChordName)
			if res.RomanNumeral != "" {
				line += "  " + res.RomanNumeral
				if res.FunctionName != "" {
					line += " (" + res.FunctionName + ")"
				}
			}
			cmd.Println(line)
		}
		return nil
	},
}
