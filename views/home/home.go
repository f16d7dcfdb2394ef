package home

import (
	"fmt"
	"strings"

	"nifty-wallet-tui/styles"

	"github.com/charmbracelet/huh"
)

// Menu entries.
const (
	ChoiceAccount  = "account"
	ChoicePending  = "pending"
	ChoiceCreate   = "create"
	ChoiceImport   = "import"
	ChoiceNetworks = "networks"
	ChoiceQuit     = "quit"
)

// TempSelection stores the home menu selection
var TempSelection string

// CreateForm creates the home menu form. The pending entry is only offered
// while transactions wait for approval.
func CreateForm(pending int) *huh.Form {
	TempSelection = ""

	options := []huh.Option[string]{
		huh.NewOption("Account Details", ChoiceAccount),
	}
	if pending > 0 {
		options = append(options, huh.NewOption(fmt.Sprintf("Pending Transactions (%d)", pending), ChoicePending))
	}
	options = append(options,
		huh.NewOption("Create Account", ChoiceCreate),
		huh.NewOption("Import Account", ChoiceImport),
		huh.NewOption("Networks", ChoiceNetworks),
		huh.NewOption("Quit", ChoiceQuit),
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Options(options...).
				Title("Main Menu").
				Description("Select a view to navigate to").
				Value(&TempSelection),
		),
	).WithTheme(huh.ThemeCatppuccin())

	form.Init()
	return form
}

// Render renders the home view
func Render(form *huh.Form) string {
	if form != nil {
		return form.View()
	}
	return "Loading menu..."
}

// Nav returns the navigation bar for home view
func Nav(width int) string {
	left := strings.Join([]string{
		styles.Key("↑/↓") + " select",
		styles.Key("Enter") + " go",
		styles.Key("Esc") + " close",
	}, "   ")

	return styles.NavStyle.Width(width).Render(left)
}
