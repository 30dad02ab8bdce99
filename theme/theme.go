// Package theme holds the fixed display colors. The monitor uses color to
// carry meaning (connected vs missing device, diatonic vs chromatic
// harmony), so the roles live here rather than scattered over the TUI.
package theme

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	colors map[Role]lipgloss.Color
}

// Role names a display concern mapped to a color.
type Role int

const (
	RoleFG Role = iota
	RoleMuted
	RoleAccent
	RoleConnected    // device status when a controller is present
	RoleDisconnected // device status when nothing is plugged in
	RoleNotes        // held-note names
	RoleChord        // chord identity line
	RoleDiatonic     // Roman numeral inside the key
	RoleNonDiatonic  // Roman numeral with chromatic content
)

// New builds the default theme.
func New() *Theme {
	return &Theme{colors: map[Role]lipgloss.Color{
		RoleFG:           lipgloss.Color("#d0d0d0"),
		RoleMuted:        lipgloss.Color("#888888"),
		RoleAccent:       lipgloss.Color("#c671e3"),
		RoleConnected:    lipgloss.Color("#00a860"),
		RoleDisconnected: lipgloss.Color("#e05252"),
		RoleNotes:        lipgloss.Color("#2e8b57"),
		RoleChord:        lipgloss.Color("#ff6347"),
		RoleDiatonic:     lipgloss.Color("#4682b4"),
		RoleNonDiatonic:  lipgloss.Color("#ff8c00"),
	}}
}

// Color returns the color bound to a role.
func (t *Theme) Color(role Role) lipgloss.Color {
	return t.colors[role]
}

// Style returns a foreground style for a role.
func (t *Theme) Style(role Role) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.colors[role])
}

func (t *Theme) FG() lipgloss.Color     { return t.colors[RoleFG] }
func (t *Theme) Muted() lipgloss.Color  { return t.colors[RoleMuted] }
func (t *Theme) Accent() lipgloss.Color { return t.colors[RoleAccent] }
