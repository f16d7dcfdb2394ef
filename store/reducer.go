package store

import (
	"strings"
)

// Reduce returns the state that results from applying a to s. It never
// mutates s: slices and maps that change are copied first.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case ShowAccountDetailAction:
		s.SelectedAddress = a.Address
		s.CurrentView = CurrentView{Name: ViewAccountDetail, Context: a.Address}
		s.AccountSubview = SubviewHistory
		s.Warning = ""

	case AddNewAccountAction:
		s.CurrentView = CurrentView{Name: ViewNewAccount}
		s.Warning = ""

	case ShowImportPageAction:
		s.CurrentView = CurrentView{Name: ViewImportAccount}
		s.Warning = ""

	case RequestExportAccountAction:
		s.CurrentView = CurrentView{Name: ViewAccountDetail, Context: s.SelectedAddress}
		s.AccountSubview = SubviewExport

	case ShowQrViewAction:
		s.CurrentView = CurrentView{Name: ViewQR, Context: a.Address}
		s.QR = QRData{Message: a.Message, Data: a.Address}

	case PreviousTxAction:
		s.CurrentView.Index = clampIndex(s.CurrentView.Index-1, len(s.UnapprovedTxs))
		s.CurrentView.Context = s.currentTxID()
		s.Warning = ""

	case NextTxAction:
		s.CurrentView.Index = clampIndex(s.CurrentView.Index+1, len(s.UnapprovedTxs))
		s.CurrentView.Context = s.currentTxID()
		s.Warning = ""

	case GoHomeAction:
		s.CurrentView = CurrentView{Name: ViewAccountDetail, Context: s.SelectedAddress}
		s.AccountSubview = SubviewHistory
		s.Warning = ""

	case DisplayWarningAction:
		s.Warning = a.Message

	case HideWarningAction:
		s.Warning = ""

	case ShowConfigPageAction:
		s.CurrentView = CurrentView{Name: ViewConfig}

	case ShowConfTxPageAction:
		idx := 0
		for i, tx := range s.UnapprovedTxs {
			if tx.ID == a.ID {
				idx = i
				break
			}
		}
		s.CurrentView = CurrentView{Name: ViewConfTx, Index: clampIndex(idx, len(s.UnapprovedTxs))}
		s.CurrentView.Context = s.currentTxID()
		s.Warning = ""

	case SendTransactionAction:
		s = s.completeTxs(map[string]bool{a.Meta.ID: true}, StatusSubmitted, map[string]TransactionMeta{a.Meta.ID: a.Meta})

	case CancelTransactionAction:
		s = s.completeTxs(map[string]bool{a.ID: true}, StatusRejected, nil)

	case CancelAllTransactionsAction:
		ids := make(map[string]bool, len(a.IDs))
		for _, id := range a.IDs {
			ids[id] = true
		}
		s = s.completeTxs(ids, StatusRejected, nil)

	case SetAccountSubviewAction:
		s.AccountSubview = a.Subview

	case UpdateNetworkAction:
		s.Network = a.Network
		s.Provider = a.Provider

	case UpdateBlockGasLimitAction:
		s.BlockGasLimit = a.GasLimit

	case UpdateBalancesAction:
		accounts := make(map[string]Account, len(s.Accounts)+len(a.Accounts))
		for k, v := range s.Accounts {
			accounts[k] = v
		}
		for k, v := range a.Accounts {
			accounts[k] = v
		}
		s.Accounts = accounts

	case UpdateConversionRateAction:
		s.CurrentCurrency = a.Currency
		s.ConversionRate = a.Rate

	case AddUnapprovedTxAction:
		for _, tx := range s.UnapprovedTxs {
			if tx.ID == a.Meta.ID {
				return s
			}
		}
		txs := make([]TransactionMeta, 0, len(s.UnapprovedTxs)+1)
		txs = append(txs, s.UnapprovedTxs...)
		s.UnapprovedTxs = append(txs, a.Meta.Clone())

	case SetSimulationFailsAction:
		txs := make([]TransactionMeta, len(s.UnapprovedTxs))
		copy(txs, s.UnapprovedTxs)
		for i := range txs {
			if txs[i].ID == a.ID {
				txs[i].SimulationFails = a.Fails
			}
		}
		s.UnapprovedTxs = txs

	case AddAccountAction:
		s = s.addAccount(a)
	}
	return s
}

func (s State) currentTxID() string {
	if tx, ok := s.CurrentTx(); ok {
		return tx.ID
	}
	return ""
}

// completeTxs moves the transactions in ids from the unapproved set into
// History. Replacements carry the approved draft for submitted txs.
func (s State) completeTxs(ids map[string]bool, status string, replacements map[string]TransactionMeta) State {
	remaining := make([]TransactionMeta, 0, len(s.UnapprovedTxs))
	history := make([]ProcessedTx, len(s.History), len(s.History)+len(ids))
	copy(history, s.History)

	removedBefore := 0
	for i, tx := range s.UnapprovedTxs {
		if !ids[tx.ID] {
			remaining = append(remaining, tx)
			continue
		}
		if i < s.CurrentView.Index {
			removedBefore++
		}
		if r, ok := replacements[tx.ID]; ok {
			tx = r
		}
		history = append(history, ProcessedTx{Meta: tx, Status: status})
	}
	s.UnapprovedTxs = remaining
	s.History = history
	s.Warning = ""

	if len(remaining) == 0 {
		s.CurrentView = CurrentView{Name: ViewAccountDetail, Context: s.SelectedAddress}
		s.AccountSubview = SubviewHistory
		return s
	}
	if s.CurrentView.Name == ViewConfTx {
		s.CurrentView.Index = clampIndex(s.CurrentView.Index-removedBefore, len(remaining))
		s.CurrentView.Context = s.currentTxID()
	}
	return s
}

func (s State) addAccount(a AddAccountAction) State {
	keyrings := make([]Keyring, len(s.Keyrings))
	for i, kr := range s.Keyrings {
		keyrings[i] = Keyring{Type: kr.Type, Accounts: append([]string(nil), kr.Accounts...)}
	}

	for _, kr := range keyrings {
		for _, addr := range kr.Accounts {
			if strings.EqualFold(addr, a.Address) {
				return s
			}
		}
	}

	placed := false
	for i := range keyrings {
		if keyrings[i].Type == a.KeyringType {
			keyrings[i].Accounts = append(keyrings[i].Accounts, a.Address)
			placed = true
			break
		}
	}
	if !placed {
		keyrings = append(keyrings, Keyring{Type: a.KeyringType, Accounts: []string{a.Address}})
	}

	identities := make(map[string]Identity, len(s.Identities)+1)
	for k, v := range s.Identities {
		identities[k] = v
	}
	identities[a.Address] = Identity{Address: a.Address, Name: a.Name}

	s.Keyrings = keyrings
	s.Identities = identities
	if s.SelectedAddress == "" {
		s.SelectedAddress = a.Address
	}
	return s
}

func clampIndex(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
