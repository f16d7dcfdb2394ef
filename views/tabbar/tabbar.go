package tabbar

import (
	"strings"

	"nifty-wallet-tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// Tab is a single entry of the bar.
type Tab struct {
	Key     string
	Content string
}

// Model is a row of clickable tabs. The selected key lives only as long as
// the model itself.
type Model struct {
	Tabs       []Tab
	DefaultTab string
	// OnSelect is called once per selection with the chosen key.
	OnSelect func(key string)

	subview string
	areas   []area
}

type area struct {
	x, width int
	key      string
}

// New returns a tab bar that starts on defaultTab.
func New(tabs []Tab, defaultTab string, onSelect func(string)) Model {
	return Model{Tabs: tabs, DefaultTab: defaultTab, OnSelect: onSelect}
}

// Selected returns the active tab key.
func (m Model) Selected() string {
	if m.subview == "" {
		return m.DefaultTab
	}
	return m.subview
}

// Select makes key the active tab and notifies OnSelect. Unknown keys are
// ignored.
func (m Model) Select(key string) Model {
	if m.index(key) < 0 {
		return m
	}
	m.subview = key
	if m.OnSelect != nil {
		m.OnSelect(key)
	}
	return m
}

// Next selects the tab after the active one, wrapping around.
func (m Model) Next() Model {
	return m.step(1)
}

// Prev selects the tab before the active one, wrapping around.
func (m Model) Prev() Model {
	return m.step(-1)
}

func (m Model) step(d int) Model {
	if len(m.Tabs) == 0 {
		return m
	}
	i := m.index(m.Selected())
	if i < 0 {
		i = 0
	} else {
		i = (i + d + len(m.Tabs)) % len(m.Tabs)
	}
	return m.Select(m.Tabs[i].Key)
}

func (m Model) index(key string) int {
	for i, t := range m.Tabs {
		if t.Key == key {
			return i
		}
	}
	return -1
}

// Click selects the tab under column x of the rendered bar. ok is false
// when x falls between tabs. View must have been called first.
func (m Model) Click(x int) (Model, bool) {
	for _, a := range m.areas {
		if x >= a.x && x < a.x+a.width {
			return m.Select(a.key), true
		}
	}
	return m, false
}

var (
	activeTabStyle = lipgloss.NewStyle().
			Foreground(styles.CText).
			Background(styles.CBorder).
			Bold(true).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(styles.CMuted).
				Background(styles.CPanel).
				Padding(0, 2)
)

// View renders the bar and records each tab's column span for Click.
func (m *Model) View(width int) string {
	m.areas = m.areas[:0]
	selected := m.Selected()

	var cells []string
	x := 0
	for _, t := range m.Tabs {
		style := inactiveTabStyle
		if t.Key == selected {
			style = activeTabStyle
		}
		cell := style.Render(t.Content)
		w := lipgloss.Width(cell)
		m.areas = append(m.areas, area{x: x, width: w, key: t.Key})
		cells = append(cells, cell)
		x += w + 1
	}

	row := strings.Join(cells, " ")
	if width > 0 {
		row = lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(row)
		// centring shifts every tab by the same offset
		if shift := (width - lipgloss.Width(strings.Join(cells, " "))) / 2; shift > 0 {
			for i := range m.areas {
				m.areas[i].x += shift
			}
		}
	}
	return row
}
