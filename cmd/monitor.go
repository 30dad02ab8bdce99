package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"chordscope/analyzer"
	"chordscope/config"
	"chordscope/debug"
	"chordscope/midi"
	"chordscope/theme"
	"chordscope/theory"
	"chordscope/tui"
)

var monitorDebug bool

func init() {
	monitorCmd.Flags().BoolVar(&monitorDebug, "debug", false, "write a debug log to the config directory")
	rootCmd.AddCommand(monitorCmd)
	rootCmd.Flags().BoolVar(&monitorDebug, "debug", false, "write a debug log to the config directory")
}

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Run the live MIDI monitor",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMonitor()
	},
}

func runMonitor() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if monitorDebug || cfg.Debug {
		if err := debug.Enable(); err != nil {
			return fmt.Errorf("enable debug log: %w", err)
		}
		defer debug.Disable()
	}

	catalog := theory.NewCatalog()
	an := analyzer.New(catalog)
	th := theme.New()

	// MIDI device manager handles hot-plug in the background
	deviceMgr := midi.NewDeviceManager()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go deviceMgr.Run(ctx)

	m := tui.NewModel(an, deviceMgr, th, cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
