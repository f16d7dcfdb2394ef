package accounts

import (
	"testing"

	"nifty-wallet-tui/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	addrA = "0xd8da6bf26964af9d7eed9e03e53415d37aa96045"
	addrB = "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"
	addrC = "0xfb6916095ca1df60bb79ce92ce3ea74c37c5d359"
)

func testProps() Props {
	return Props{
		Identities: map[string]store.Identity{
			addrC: {Address: addrC, Name: "Imported"},
			addrA: {Address: addrA, Name: "Account 1"},
			addrB: {Address: addrB, Name: "Account 2"},
		},
		Selected: addrB,
		Keyrings: []store.Keyring{
			{Type: store.KeyringTypeHD, Accounts: []string{addrA, addrB}},
			{Type: store.KeyringTypeSimple, Accounts: []string{addrC}},
		},
		Network:                "1",
		EnableAccountsSelector: true,
		EnableAccountOptions:   true,
	}
}

func addresses(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Identity.Address)
	}
	return out
}

func TestEntriesFollowKeyringOrder(t *testing.T) {
	p := testProps()
	assert.Equal(t, []string{addrA, addrB, addrC}, addresses(Entries(p)))

	p.Keyrings = []store.Keyring{
		{Type: store.KeyringTypeSimple, Accounts: []string{addrC}},
		{Type: store.KeyringTypeHD, Accounts: []string{addrB, addrA}},
	}
	assert.Equal(t, []string{addrC, addrB, addrA}, addresses(Entries(p)))
}

func TestEntriesOrderIndependentOfIdentityMap(t *testing.T) {
	p := testProps()
	want := OrderedAccounts(p.Keyrings)
	for i := 0; i < 20; i++ {
		// map iteration order changes between runs; output must not
		assert.Equal(t, want, addresses(Entries(p)))
	}
}

func TestEntriesMarkSelectedAndImported(t *testing.T) {
	entries := Entries(testProps())
	require.Len(t, entries, 3)

	assert.False(t, entries[0].Selected)
	assert.True(t, entries[1].Selected)
	assert.False(t, entries[2].Selected)

	assert.Equal(t, "", entries[0].Label)
	assert.Equal(t, "", entries[1].Label)
	assert.Equal(t, "IMPORTED", entries[2].Label)
}

func TestEntriesMissingIdentityFallsBackToAddress(t *testing.T) {
	p := testProps()
	delete(p.Identities, addrC)
	entries := Entries(p)
	require.Len(t, entries, 3)
	assert.Equal(t, addrC, entries[2].Identity.Address)
	assert.Equal(t, "", entries[2].Identity.Name)
}

func TestFindKeyring(t *testing.T) {
	keyrings := []store.Keyring{
		{Type: store.KeyringTypeHD, Accounts: []string{addrA}},
		{Type: store.KeyringTypeSimple, Accounts: []string{addrC[2:]}},
	}

	kr, ok := FindKeyring(keyrings, addrA)
	require.True(t, ok)
	assert.Equal(t, store.KeyringTypeHD, kr.Type)

	kr, ok = FindKeyring(keyrings, "0xFB6916095CA1DF60BB79CE92CE3EA74C37C5D359")
	require.True(t, ok)
	assert.Equal(t, store.KeyringTypeSimple, kr.Type)

	_, ok = FindKeyring(keyrings, addrB)
	assert.False(t, ok)
}

func TestLooseLabel(t *testing.T) {
	assert.Equal(t, "", LooseLabel(store.Keyring{Type: store.KeyringTypeHD}, true))
	assert.Equal(t, "IMPORTED", LooseLabel(store.Keyring{Type: "Ledger Hardware"}, true))
	assert.Equal(t, "", LooseLabel(store.Keyring{}, false))
}

func TestToggleClosesOtherPopover(t *testing.T) {
	var s State
	s = s.ToggleAccountSelector()
	assert.True(t, s.AccountSelectorActive)
	assert.False(t, s.OptionsMenuActive)

	s = s.ToggleOptionsMenu()
	assert.False(t, s.AccountSelectorActive)
	assert.True(t, s.OptionsMenuActive)

	s = s.ToggleOptionsMenu()
	assert.False(t, s.Open())
}

func TestClickOutside(t *testing.T) {
	open := State{AccountSelectorActive: true}

	assert.False(t, open.ClickOutside(TargetOutside).AccountSelectorActive)
	assert.True(t, open.ClickOutside(TargetSelectorToggle).AccountSelectorActive)
	assert.True(t, open.ClickOutside(TargetSelectorMenu).AccountSelectorActive)
	assert.False(t, open.ClickOutside(TargetOptionsToggle).AccountSelectorActive)

	opts := State{OptionsMenuActive: true}
	assert.False(t, opts.ClickOutside(TargetOutside).OptionsMenuActive)
	assert.True(t, opts.ClickOutside(TargetOptionsToggle).OptionsMenuActive)

	closed := State{}
	assert.Equal(t, closed, closed.ClickOutside(TargetOutside))
}

func TestSelectorItems(t *testing.T) {
	items := SelectorItems(testProps())
	require.Len(t, items, 5)

	assert.Equal(t, store.ShowAccountDetail(addrA), items[0].Effect.Action)
	assert.Equal(t, "Create Account", items[3].Label)
	assert.Equal(t, store.AddNewAccount(), items[3].Effect.Action)
	assert.Equal(t, "Import Account", items[4].Label)
	assert.Equal(t, store.ShowImportPage(), items[4].Effect.Action)
}

func TestOptionItems(t *testing.T) {
	p := testProps()
	items := OptionItems(p)
	require.Len(t, items, 4)

	assert.Equal(t, "View account on Etherscan", items[0].Label)
	assert.Equal(t, "https://etherscan.io/address/"+addrB, items[0].Effect.OpenURL)

	assert.Equal(t, store.ShowQrView(addrB, "Account 2"), items[1].Effect.Action)

	assert.Equal(t, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", items[2].Effect.Copy)

	assert.Equal(t, store.RequestExportAccount(), items[3].Effect.Action)
}

func TestOptionItemsPOA(t *testing.T) {
	p := testProps()
	p.Network = "77"
	items := OptionItems(p)
	assert.Equal(t, "View account on POA explorer", items[0].Label)
	assert.Equal(t, "https://sokol.poaexplorer.com/address/search/"+addrB, items[0].Effect.OpenURL)

	p.Network = "99"
	items = OptionItems(p)
	assert.Equal(t, "https://poaexplorer.com/address/search/"+addrB, items[0].Effect.OpenURL)
}

func TestOptionItemsUnknownIdentity(t *testing.T) {
	p := testProps()
	p.Selected = "0x0000000000000000000000000000000000000001"
	items := OptionItems(p)
	assert.Equal(t, store.ShowQrView(p.Selected, ""), items[1].Effect.Action)
}

func TestActivateClosesPopover(t *testing.T) {
	p := testProps()
	s := State{}.ToggleAccountSelector()
	s = s.MoveCursor(p, 1)

	s, eff, ok := s.Activate(p)
	require.True(t, ok)
	assert.False(t, s.Open())
	assert.Equal(t, store.ShowAccountDetail(addrB), eff.Action)
}

func TestMoveCursorWraps(t *testing.T) {
	p := testProps()
	s := State{}.ToggleOptionsMenu()
	s = s.MoveCursor(p, -1)
	assert.Equal(t, 3, s.Cursor)
	s = s.MoveCursor(p, 1)
	assert.Equal(t, 0, s.Cursor)
}

func TestActivateWithNothingOpen(t *testing.T) {
	_, _, ok := State{}.Activate(testProps())
	assert.False(t, ok)
}

func TestViewRendersOpenPopover(t *testing.T) {
	p := testProps()
	out, rows := View(p, State{})
	assert.Empty(t, out)
	assert.Nil(t, rows)

	out, rows = View(p, State{}.ToggleAccountSelector())
	assert.Contains(t, out, "IMPORTED")
	assert.Contains(t, out, "Create Account")
	assert.Len(t, rows, 5)

	out, _ = View(p, State{}.ToggleOptionsMenu())
	assert.Contains(t, out, "Export Private Key")
}
