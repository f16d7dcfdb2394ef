package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func meta(id string) TransactionMeta {
	to := "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"
	return TransactionMeta{ID: id, TxParams: TxParams{To: &to, Gas: "0x5208", GasPrice: "0x1"}}
}

func queued(ids ...string) State {
	s := NewState()
	s.SelectedAddress = "0xabc"
	for _, id := range ids {
		s = Reduce(s, AddUnapprovedTxAction{Meta: meta(id)})
	}
	return s
}

func TestShowAccountDetail(t *testing.T) {
	s := NewState()
	s.Warning = "old"
	s = Reduce(s, ShowAccountDetail("0xabc"))
	assert.Equal(t, "0xabc", s.SelectedAddress)
	assert.Equal(t, ViewAccountDetail, s.CurrentView.Name)
	assert.Equal(t, "0xabc", s.CurrentView.Context)
	assert.Empty(t, s.Warning)
}

func TestRequestExportSetsSubview(t *testing.T) {
	s := Reduce(NewState(), RequestExportAccount())
	assert.Equal(t, SubviewExport, s.AccountSubview)
	assert.Equal(t, ViewAccountDetail, s.CurrentView.Name)
}

func TestShowQrView(t *testing.T) {
	s := Reduce(NewState(), ShowQrView("0xabc", "Account 1"))
	assert.Equal(t, ViewQR, s.CurrentView.Name)
	assert.Equal(t, QRData{Message: "Account 1", Data: "0xabc"}, s.QR)
}

func TestShowConfTxPage(t *testing.T) {
	s := Reduce(queued("a", "b", "c"), ShowConfTxPage("b"))
	assert.Equal(t, ViewConfTx, s.CurrentView.Name)
	assert.Equal(t, 1, s.CurrentView.Index)
	assert.Equal(t, "b", s.CurrentView.Context)
}

func TestPreviousNextClamp(t *testing.T) {
	s := Reduce(queued("a", "b"), ShowConfTxPage("a"))

	s = Reduce(s, PreviousTx())
	assert.Equal(t, 0, s.CurrentView.Index)

	s = Reduce(s, NextTx())
	s = Reduce(s, NextTx())
	assert.Equal(t, 1, s.CurrentView.Index)
	assert.Equal(t, "b", s.CurrentView.Context)
}

func TestAddUnapprovedTxDedupes(t *testing.T) {
	s := queued("a", "a", "b")
	require.Len(t, s.UnapprovedTxs, 2)
}

func TestSendTransactionRecordsDraft(t *testing.T) {
	s := Reduce(queued("a", "b"), ShowConfTxPage("a"))
	draft := s.UnapprovedTxs[0].Clone()
	draft.TxParams.Gas = "0x7530"

	next := Reduce(s, SendTransaction(draft))
	require.Len(t, next.UnapprovedTxs, 1)
	assert.Equal(t, "b", next.UnapprovedTxs[0].ID)
	require.Len(t, next.History, 1)
	assert.Equal(t, StatusSubmitted, next.History[0].Status)
	assert.Equal(t, "0x7530", next.History[0].Meta.TxParams.Gas)
	assert.Equal(t, ViewConfTx, next.CurrentView.Name)
	assert.Equal(t, "b", next.CurrentView.Context)

	// the input state is untouched
	assert.Len(t, s.UnapprovedTxs, 2)
	assert.Empty(t, s.History)
}

func TestCancelKeepsIndexOnSameTx(t *testing.T) {
	s := Reduce(queued("a", "b", "c"), ShowConfTxPage("c"))
	s = Reduce(s, CancelTransaction("a"))
	assert.Equal(t, 1, s.CurrentView.Index)
	assert.Equal(t, "c", s.CurrentView.Context)
	assert.Equal(t, StatusRejected, s.History[0].Status)
}

func TestCancelLastTxGoesHome(t *testing.T) {
	s := Reduce(queued("a"), ShowConfTxPage("a"))
	s = Reduce(s, CancelTransaction("a"))
	assert.Empty(t, s.UnapprovedTxs)
	assert.Equal(t, ViewAccountDetail, s.CurrentView.Name)
	assert.Equal(t, "0xabc", s.CurrentView.Context)
}

func TestCancelAllTransactions(t *testing.T) {
	s := Reduce(queued("a", "b", "c"), ShowConfTxPage("b"))
	s = Reduce(s, CancelAllTransactions(s.UnapprovedTxs))
	assert.Empty(t, s.UnapprovedTxs)
	assert.Len(t, s.History, 3)
	assert.Equal(t, ViewAccountDetail, s.CurrentView.Name)
}

func TestSetSimulationFailsCopies(t *testing.T) {
	s := queued("a")
	next := Reduce(s, SetSimulationFailsAction{ID: "a", Fails: true})
	assert.True(t, next.UnapprovedTxs[0].SimulationFails)
	assert.False(t, s.UnapprovedTxs[0].SimulationFails)
}

func TestUpdateBalancesMerges(t *testing.T) {
	s := NewState()
	s = Reduce(s, UpdateBalancesAction{Accounts: map[string]Account{"0x1": {Address: "0x1", Balance: "0x10"}}})
	s = Reduce(s, UpdateBalancesAction{Accounts: map[string]Account{"0x2": {Address: "0x2", Balance: "0x20"}}})
	assert.Equal(t, "0x10", s.Balance("0x1"))
	assert.Equal(t, "0x20", s.Balance("0x2"))
	assert.Equal(t, "0x0", s.Balance("0x3"))
}

func TestAddAccount(t *testing.T) {
	s := NewState()
	s = Reduce(s, AddAccountAction{KeyringType: KeyringTypeHD, Address: "0xAA", Name: "Account 1"})
	s = Reduce(s, AddAccountAction{KeyringType: KeyringTypeSimple, Address: "0xBB", Name: "Imported"})
	s = Reduce(s, AddAccountAction{KeyringType: KeyringTypeHD, Address: "0xCC", Name: "Account 2"})
	before := s
	s = Reduce(s, AddAccountAction{KeyringType: KeyringTypeSimple, Address: "0xaa", Name: "dup"})

	assert.Equal(t, before.Keyrings, s.Keyrings)
	require.Len(t, s.Keyrings, 2)
	assert.Equal(t, []string{"0xAA", "0xCC"}, s.Keyrings[0].Accounts)
	assert.Equal(t, []string{"0xBB"}, s.Keyrings[1].Accounts)
	assert.Equal(t, "0xAA", s.SelectedAddress)
	assert.Equal(t, "Imported", s.Identity("0xbb").Name)
	assert.Equal(t, []string{"0xAA", "0xCC", "0xBB"}, s.AccountAddresses())
}

func TestWarnings(t *testing.T) {
	s := Reduce(NewState(), DisplayWarning("boom"))
	assert.Equal(t, "boom", s.Warning)
	s = Reduce(s, HideWarning())
	assert.Empty(t, s.Warning)
}

func TestNetworkAndRate(t *testing.T) {
	s := Reduce(NewState(), UpdateNetworkAction{Network: "77", Provider: Provider{Type: "rpc", RPCTarget: "http://x"}})
	s = Reduce(s, UpdateBlockGasLimitAction{GasLimit: "0x7a1200"})
	s = Reduce(s, UpdateConversionRateAction{Currency: "eur", Rate: 1500})
	assert.Equal(t, "77", s.Network)
	assert.Equal(t, "http://x", s.Provider.RPCTarget)
	assert.Equal(t, "0x7a1200", s.BlockGasLimit)
	assert.Equal(t, "eur", s.CurrentCurrency)
	assert.Equal(t, 1500.0, s.ConversionRate)
}
