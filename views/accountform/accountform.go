// Package accountform holds the create and import account forms. Both
// register a watch-only address; keys are held by an external signer.
package accountform

import (
	"errors"
	"fmt"
	"strings"

	"nifty-wallet-tui/helpers"
	"nifty-wallet-tui/store"
	"nifty-wallet-tui/styles"

	"github.com/charmbracelet/huh"
)

// Temporary form field storage (package-level to avoid pointer-to-copy issues)
var (
	tempAddress string
	tempName    string
)

// Form is an account form together with the keyring it adds to.
type Form struct {
	*huh.Form
	KeyringType string
}

// DefaultName is the name proposed for the n-th account of the HD keyring.
func DefaultName(n int) string {
	return fmt.Sprintf("Account %d", n)
}

func validateAddress(existing []string) func(string) error {
	return func(s string) error {
		s = strings.TrimSpace(s)
		if !helpers.IsValidEthAddress(s) {
			return errors.New("invalid ethereum address")
		}
		if helpers.ContainsAddress(existing, s) {
			return errors.New("account already added")
		}
		return nil
	}
}

func build(title, description string, existing []string) *huh.Form {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description(description).
				Value(&tempAddress).
				Placeholder("0x...").
				Validate(validateAddress(existing)),

			huh.NewInput().
				Title("Account Name").
				Value(&tempName).
				Placeholder("Optional"),
		),
	).WithTheme(huh.ThemeCatppuccin())

	form.Init()
	return form
}

// NewCreate returns the create account form. The address is the next one
// derived by the signer that owns the HD key tree.
func NewCreate(existing []string, hdCount int) Form {
	tempAddress = ""
	tempName = DefaultName(hdCount + 1)
	return Form{
		Form:        build("Derived Address", "Paste the next address of your HD wallet (Ctrl+v to paste)", existing),
		KeyringType: store.KeyringTypeHD,
	}
}

// NewImport returns the import account form for a standalone key pair.
func NewImport(existing []string) Form {
	tempAddress = ""
	tempName = ""
	return Form{
		Form:        build("Imported Address", "Address of the key pair to watch (Ctrl+v to paste)", existing),
		KeyringType: store.KeyringTypeSimple,
	}
}

// Action returns the AddAccount action for the completed form.
func (f Form) Action() store.Action {
	name := strings.TrimSpace(tempName)
	addr := helpers.ChecksumAddress(strings.TrimSpace(tempAddress))
	if name == "" {
		name = helpers.ShortenAddr(addr)
	}
	return store.AddAccountAction{KeyringType: f.KeyringType, Address: addr, Name: name}
}

// Title is the heading shown above the form.
func (f Form) Title() string {
	if f.KeyringType == store.KeyringTypeSimple {
		return styles.TitleStyle.Render("Import Account")
	}
	return styles.TitleStyle.Render("Create Account")
}

// Nav returns the navigation bar while a form is open
func Nav(width int) string {
	left := strings.Join([]string{
		styles.Key("Tab") + " next field",
		styles.Key("Enter") + " save",
		styles.Key("Ctrl+v") + " paste",
		styles.Key("Esc") + " cancel",
	}, "   ")
	return styles.NavStyle.Width(width).Render(left)
}
