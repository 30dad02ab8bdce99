package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"chordscope/analyzer"
	"chordscope/theory"
)

var analyzeKey string

func init() {
	analyzeCmd.Flags().StringVar(&analyzeKey, "key", "C Major", "key signature name or catalog index")
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [note...]",
	Short: "Analyze a set of MIDI note numbers in a key",
	Example: `  chordscope analyze 60 64 67
  chordscope analyze --key "A minor" 64 68 71 74`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog := theory.NewCatalog()
		key, err := resolveKey(catalog, analyzeKey)
		if err != nil {
			return err
		}

		notes := make([]int, len(args))
		for i, arg := range args {
			n, err := strconv.Atoi(arg)
			if err != nil || n < 0 || n > 127 {
				return fmt.Errorf("not a MIDI note number (0-127): %q", arg)
			}
			notes[i] = n
		}

		res := analyzer.New(catalog).Analyze(notes, key)
		printResult(cmd, res, notes, key)
		return nil
	},
}

func resolveKey(catalog *theory.Catalog, name string) (theory.KeySignature, error) {
	if idx, err := strconv.Atoi(name); err == nil {
		return catalog.Get(idx), nil
	}
	idx := catalog.IndexOf(name)
	if idx == -1 {
		return theory.KeySignature{}, fmt.Errorf("unknown key %q (try 'chordscope keys')", name)
	}
	return catalog.Get(idx), nil
}

func printResult(cmd *cobra.Command, res analyzer.Result, notes []int, key theory.KeySignature) {
	names := make([]string, len(notes))
	for i, n := range notes {
		names[i] = theory.SpellNote(n, key)
	}
	cmd.Printf("Key:    %s\n", key.Name)
	cmd.Printf("Notes:  %s\n", strings.Join(names, " + "))

	if res.Empty() {
		cmd.Println("Result: (nothing to analyze)")
		return
	}

	cmd.Printf("Chord:  %s\n", res.ChordName)
	if res.RomanNumeral != "" {
		if res.FunctionName != "" {
			cmd.Printf("Roman:  %s (%s)\n", res.RomanNumeral, res.FunctionName)
		} else {
			cmd.Printf("Roman:  %s\n", res.RomanNumeral)
		}
	}
	if res.NonDiatonic {
		cmd.Println("Non-diatonic")
	}
	if len(res.AccidentalNotes) > 0 {
		accs := make([]string, len(res.AccidentalNotes))
		for i, n := range res.AccidentalNotes {
			accs[i] = theory.SpellNote(n, key)
		}
		cmd.Printf("Accidentals: %s\n", strings.Join(accs, ", "))
	}
}
