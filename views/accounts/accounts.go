package accounts

import (
	"strings"

	"nifty-wallet-tui/helpers"
	"nifty-wallet-tui/store"
)

// Props is what the dropdowns read from the store.
type Props struct {
	Identities map[string]store.Identity
	Selected   string
	Keyrings   []store.Keyring
	Network    string

	EnableAccountsSelector bool
	EnableAccountOptions   bool
}

// PropsFromState builds Props with both popovers enabled.
func PropsFromState(s store.State) Props {
	return Props{
		Identities:             s.Identities,
		Selected:               s.SelectedAddress,
		Keyrings:               s.Keyrings,
		Network:                s.Network,
		EnableAccountsSelector: true,
		EnableAccountOptions:   true,
	}
}

// Target is what a click landed on, as far as the popovers care.
type Target int

const (
	TargetOutside Target = iota
	TargetSelectorToggle
	TargetOptionsToggle
	TargetSelectorMenu
	TargetOptionsMenu
)

// State is the local popover state.
type State struct {
	AccountSelectorActive bool
	OptionsMenuActive     bool
	Cursor                int
}

// Open reports whether either popover is showing.
func (s State) Open() bool {
	return s.AccountSelectorActive || s.OptionsMenuActive
}

// ToggleAccountSelector flips the account selector and closes the options
// menu.
func (s State) ToggleAccountSelector() State {
	return State{AccountSelectorActive: !s.AccountSelectorActive}
}

// ToggleOptionsMenu flips the options menu and closes the account selector.
func (s State) ToggleOptionsMenu() State {
	return State{OptionsMenuActive: !s.OptionsMenuActive}
}

// ClickOutside closes each open popover unless the click landed on that
// popover's own toggle or inside it.
func (s State) ClickOutside(target Target) State {
	if s.AccountSelectorActive && target != TargetSelectorToggle && target != TargetSelectorMenu {
		s.AccountSelectorActive = false
	}
	if s.OptionsMenuActive && target != TargetOptionsToggle && target != TargetOptionsMenu {
		s.OptionsMenuActive = false
	}
	if !s.Open() {
		s.Cursor = 0
	}
	return s
}

// Close hides both popovers.
func (s State) Close() State {
	return State{}
}

// Entry is one account row of the selector.
type Entry struct {
	Identity store.Identity
	Selected bool
	// Label is "IMPORTED" for accounts outside the HD keyring and empty
	// otherwise, including when no keyring holds the address.
	Label string
}

// OrderedAccounts flattens the keyrings into display order.
func OrderedAccounts(keyrings []store.Keyring) []string {
	var order []string
	for _, kr := range keyrings {
		order = append(order, kr.Accounts...)
	}
	return order
}

// FindKeyring returns the keyring holding address. Keyrings may store
// addresses without the 0x prefix and in lower case, so both forms are
// tried.
func FindKeyring(keyrings []store.Keyring, address string) (store.Keyring, bool) {
	simple := strings.ToLower(strings.TrimPrefix(address, "0x"))
	for _, kr := range keyrings {
		for _, a := range kr.Accounts {
			if a == simple || a == address {
				return kr, true
			}
		}
	}
	return store.Keyring{}, false
}

// LooseLabel is the marker shown next to accounts that were imported rather
// than derived. found=false yields no marker.
func LooseLabel(kr store.Keyring, found bool) string {
	if !found {
		return ""
	}
	if kr.Type != store.KeyringTypeHD {
		return "IMPORTED"
	}
	return ""
}

// Entries returns the account rows in keyring order.
func Entries(p Props) []Entry {
	order := OrderedAccounts(p.Keyrings)
	entries := make([]Entry, 0, len(order))
	for _, address := range order {
		identity, ok := p.Identities[address]
		if !ok {
			identity = store.Identity{Address: address}
		}
		kr, found := FindKeyring(p.Keyrings, identity.Address)
		entries = append(entries, Entry{
			Identity: identity,
			Selected: identity.Address == p.Selected,
			Label:    LooseLabel(kr, found),
		})
	}
	return entries
}

// Effect is what activating a menu item asks the caller to do. Any
// combination of fields may be set.
type Effect struct {
	Action  store.Action
	OpenURL string
	Copy    string
}

// MenuItem is a selectable row in either popover.
type MenuItem struct {
	Label  string
	Entry  *Entry
	Effect Effect
}

// SelectorItems lists the account selector rows: every account followed by
// Create Account and Import Account.
func SelectorItems(p Props) []MenuItem {
	entries := Entries(p)
	items := make([]MenuItem, 0, len(entries)+2)
	for i := range entries {
		e := entries[i]
		items = append(items, MenuItem{
			Label:  e.Identity.Name,
			Entry:  &e,
			Effect: Effect{Action: store.ShowAccountDetail(e.Identity.Address)},
		})
	}
	items = append(items,
		MenuItem{Label: "Create Account", Effect: Effect{Action: store.AddNewAccount()}},
		MenuItem{Label: "Import Account", Effect: Effect{Action: store.ShowImportPage()}},
	)
	return items
}

// OptionItems lists the options menu rows for the selected account.
func OptionItems(p Props) []MenuItem {
	name := ""
	if identity, ok := p.Identities[p.Selected]; ok {
		name = identity.Name
	}
	return []MenuItem{
		{
			Label:  "View account on " + helpers.ExplorerName(p.Network),
			Effect: Effect{OpenURL: helpers.AccountLink(p.Selected, p.Network)},
		},
		{
			Label:  "Show QR Code",
			Effect: Effect{Action: store.ShowQrView(p.Selected, name)},
		},
		{
			Label:  "Copy Address to clipboard",
			Effect: Effect{Copy: helpers.ChecksumAddress(p.Selected)},
		},
		{
			Label:  "Export Private Key",
			Effect: Effect{Action: store.RequestExportAccount()},
		},
	}
}

// Items returns the rows of whichever popover is open.
func (s State) Items(p Props) []MenuItem {
	switch {
	case s.AccountSelectorActive:
		return SelectorItems(p)
	case s.OptionsMenuActive:
		return OptionItems(p)
	}
	return nil
}

// MoveCursor moves the highlighted row by d within the open popover.
func (s State) MoveCursor(p Props, d int) State {
	n := len(s.Items(p))
	if n == 0 {
		return s
	}
	s.Cursor = (s.Cursor + d + n) % n
	return s
}

// Activate runs the highlighted row of the open popover and closes it.
func (s State) Activate(p Props) (State, Effect, bool) {
	return s.ActivateAt(p, s.Cursor)
}

// ActivateAt runs row i of the open popover and closes it.
func (s State) ActivateAt(p Props, i int) (State, Effect, bool) {
	items := s.Items(p)
	if i < 0 || i >= len(items) {
		return s, Effect{}, false
	}
	return s.Close(), items[i].Effect, true
}
