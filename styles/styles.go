package styles

import "github.com/charmbracelet/lipgloss"

// Theme colors
var (
	CBg      = lipgloss.Color("#0B0F14") // near-black
	CPanel   = lipgloss.Color("#0F1720") // slightly lighter
	CBorder  = lipgloss.Color("#874BFD")
	CMuted   = lipgloss.Color("#8AA0B6")
	CText    = lipgloss.Color("#D6E2F0")
	CAccent  = lipgloss.Color("#7EE787") // green-ish
	CAccent2 = lipgloss.Color("#79C0FF") // blue-ish
	CWarn    = lipgloss.Color("#FFA657") // orange
	CError   = lipgloss.Color("#FF7B72")
)

// Shared styles
var (
	AppStyle = lipgloss.NewStyle().
			Background(CBg).
			Foreground(CText)

	TitleStyle = lipgloss.NewStyle().
			Foreground(CAccent2).
			Bold(true)

	PanelStyle = lipgloss.NewStyle().
			Background(CPanel).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(CBorder).
			Padding(1, 2)

	NavStyle = lipgloss.NewStyle().
			Background(CPanel).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(CBorder).
			Padding(0, 1)

	HotkeyStyle = lipgloss.NewStyle().
			Foreground(CMuted)

	HotkeyKeyStyle = lipgloss.NewStyle().
			Foreground(CAccent).
			Bold(true)

	HelpRightStyle = lipgloss.NewStyle().
			Foreground(CMuted)

	MutedStyle = lipgloss.NewStyle().
			Foreground(CMuted)

	LabelStyle = lipgloss.NewStyle().
			Foreground(CMuted).
			Width(22)

	WarnStyle = lipgloss.NewStyle().
			Foreground(CWarn)

	ErrorBannerStyle = lipgloss.NewStyle().
				Foreground(CError).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(CError).
				Padding(0, 1)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(CText).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(CMuted).
			Padding(0, 2)

	ButtonFocusedStyle = ButtonStyle.
				Foreground(CAccent).
				BorderForeground(CAccent).
				Bold(true)

	ButtonDisabledStyle = ButtonStyle.
				Foreground(CMuted).
				BorderForeground(CPanel).
				Faint(true)
)

// Key renders a key with accent styling
func Key(s string) string {
	return HotkeyKeyStyle.Render(s)
}

// Button renders a bordered button in its focus or disabled state.
func Button(label string, focused, disabled bool) string {
	switch {
	case disabled:
		return ButtonDisabledStyle.Render(label)
	case focused:
		return ButtonFocusedStyle.Render(label)
	}
	return ButtonStyle.Render(label)
}
