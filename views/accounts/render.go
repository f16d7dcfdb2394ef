package accounts

import (
	"strings"

	"nifty-wallet-tui/helpers"
	"nifty-wallet-tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// Toggle glyphs shown in the header.
const (
	SelectorToggleGlyph = "⇄"
	OptionsToggleGlyph  = "⋮"
)

// Row is a clickable popover row, relative to the popover's top-left.
type Row struct {
	Y     int
	Index int
}

var (
	popoverStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.CBorder).
			Background(styles.CPanel).
			Padding(0, 2)

	selectedBarStyle = lipgloss.NewStyle().Foreground(styles.CAccent)
	actionItemStyle  = lipgloss.NewStyle().Foreground(styles.CAccent)
	looseLabelStyle  = lipgloss.NewStyle().
				Foreground(styles.CBg).
				Background(styles.CWarn).
				Padding(0, 1)
)

// Toggles renders the header toggles for whichever popovers are enabled.
func Toggles(p Props, s State) string {
	var parts []string
	if p.EnableAccountsSelector {
		st := lipgloss.NewStyle().Foreground(styles.CMuted)
		if s.AccountSelectorActive {
			st = st.Foreground(styles.CAccent).Bold(true)
		}
		parts = append(parts, st.Render(SelectorToggleGlyph))
	}
	if p.EnableAccountOptions {
		st := lipgloss.NewStyle().Foreground(styles.CMuted)
		if s.OptionsMenuActive {
			st = st.Foreground(styles.CAccent).Bold(true)
		}
		parts = append(parts, st.Render(OptionsToggleGlyph))
	}
	return strings.Join(parts, " ")
}

// renderEntry draws one account row: address, label and name.
func renderEntry(e Entry, highlighted bool) string {
	nameStyle := lipgloss.NewStyle().Foreground(styles.CMuted).MaxWidth(24)
	if e.Selected {
		nameStyle = nameStyle.Foreground(styles.CText).Bold(true)
	}
	if highlighted {
		nameStyle = nameStyle.Underline(true)
	}

	line := helpers.FadeString(helpers.ShortenAddr(e.Identity.Address), "#F25D94", "#EDFF82")
	if e.Label != "" {
		line += " " + looseLabelStyle.Render(e.Label)
	}
	return line + "  " + nameStyle.Render(e.Identity.Name)
}

// View renders the open popover, or "" when both are closed. Rows maps
// content lines to item indexes for mouse handling; line 0 is the first
// line inside the border.
func View(p Props, s State) (string, []Row) {
	items := s.Items(p)
	if len(items) == 0 {
		return "", nil
	}

	var lines []string
	var rows []Row
	for i, item := range items {
		highlighted := i == s.Cursor
		var line string
		if item.Entry != nil {
			line = renderEntry(*item.Entry, highlighted)
		} else {
			st := lipgloss.NewStyle().Foreground(styles.CText)
			if s.AccountSelectorActive {
				st = actionItemStyle
			}
			if highlighted {
				st = st.Bold(true).Underline(true)
			}
			line = st.Render(item.Label)
		}
		marker := "  "
		switch {
		case highlighted:
			marker = lipgloss.NewStyle().Foreground(styles.CAccent2).Render("▶ ")
		case item.Entry != nil && item.Entry.Selected:
			marker = selectedBarStyle.Render("▌ ")
		}
		line = marker + line
		rows = append(rows, Row{Y: len(lines), Index: i})
		lines = append(lines, line)
	}

	return popoverStyle.Render(strings.Join(lines, "\n")), rows
}

// Nav returns the hotkey help shown while a popover is open.
func Nav(width int) string {
	left := strings.Join([]string{
		styles.Key("↑/↓") + " move",
		styles.Key("Enter") + " choose",
		styles.Key("Esc") + " close",
	}, "   ")
	return styles.NavStyle.Width(width).Render(left)
}
