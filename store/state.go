// Package store holds the shared application state read by every view and
// the actions that mutate it.
package store

import (
	"strings"
)

// KeyringTypeHD is the keyring type of accounts derived from the wallet seed.
// Accounts in any other keyring are shown as imported.
const KeyringTypeHD = "HD Key Tree"

// KeyringTypeSimple is the keyring type used for imported accounts.
const KeyringTypeSimple = "Simple Key Pair"

// View names used in CurrentView.
const (
	ViewAccountDetail = "accountDetail"
	ViewConfTx        = "confTx"
	ViewNewAccount    = "new-account"
	ViewImportAccount = "import-account"
	ViewQR            = "qr"
	ViewConfig        = "config"
)

// Account detail subviews.
const (
	SubviewHistory = "history"
	SubviewTokens  = "tokens"
	SubviewExport  = "export"
)

// Identity is the user-facing label of an account.
type Identity struct {
	Address string `json:"address"`
	Name    string `json:"name"`
}

// Keyring groups accounts sharing a custody mechanism.
type Keyring struct {
	Type     string   `json:"type"`
	Accounts []string `json:"accounts"`
}

// Account carries chain data for an address. Balance is hex-encoded wei.
type Account struct {
	Address string `json:"address"`
	Balance string `json:"balance"`
}

// TxParams are the hex-encoded fields of an unsigned transaction.
type TxParams struct {
	From     string  `json:"from"`
	To       *string `json:"to,omitempty"`
	Value    string  `json:"value"`
	Gas      string  `json:"gas"`
	GasPrice string  `json:"gasPrice"`
	Data     string  `json:"data,omitempty"`
}

// TransactionMeta is a transaction awaiting user approval.
type TransactionMeta struct {
	ID                string   `json:"id"`
	Time              int64    `json:"time"`
	TxParams          TxParams `json:"txParams"`
	SimulationFails   bool     `json:"simulationFails,omitempty"`
	GasLimitSpecified bool     `json:"gasLimitSpecified,omitempty"`
	LastGasPrice      string   `json:"lastGasPrice,omitempty"`
}

// Clone returns a deep copy so drafts never alias the store-held value.
func (t TransactionMeta) Clone() TransactionMeta {
	c := t
	if t.TxParams.To != nil {
		to := *t.TxParams.To
		c.TxParams.To = &to
	}
	return c
}

// IsContractDeploy reports whether the transaction has no recipient.
func (t TransactionMeta) IsContractDeploy() bool {
	return t.TxParams.To == nil
}

// Tx status values recorded in History.
const (
	StatusSubmitted = "submitted"
	StatusRejected  = "rejected"
)

// ProcessedTx is a transaction that left the unapproved set.
type ProcessedTx struct {
	Meta   TransactionMeta `json:"meta"`
	Status string          `json:"status"`
}

// Provider identifies the RPC endpoint the UI points at.
type Provider struct {
	Type      string `json:"type"`
	RPCTarget string `json:"rpcTarget"`
	Nickname  string `json:"nickname,omitempty"`
}

// CurrentView is the screen being shown. Context is the address for
// accountDetail and the current tx id for confTx. Index is the position of
// the current tx in UnapprovedTxs.
type CurrentView struct {
	Name    string
	Context string
	Index   int
}

// QRData is what the QR view renders.
type QRData struct {
	Message string
	Data    string
}

// State is the application state shared by all views.
type State struct {
	Identities      map[string]Identity
	Keyrings        []Keyring
	SelectedAddress string
	Accounts        map[string]Account
	UnapprovedTxs   []TransactionMeta
	History         []ProcessedTx

	Network         string
	Provider        Provider
	ConversionRate  float64
	CurrentCurrency string
	BlockGasLimit   string

	CurrentView    CurrentView
	AccountSubview string
	QR             QRData
	Warning        string
}

// NewState returns an empty state on the account detail view.
func NewState() State {
	return State{
		Identities:      map[string]Identity{},
		Accounts:        map[string]Account{},
		CurrentCurrency: "usd",
		CurrentView:     CurrentView{Name: ViewAccountDetail},
		AccountSubview:  SubviewHistory,
	}
}

// Identity returns the identity for address, falling back to a bare
// identity carrying only the address.
func (s State) Identity(address string) Identity {
	if id, ok := s.Identities[address]; ok {
		return id
	}
	for addr, id := range s.Identities {
		if strings.EqualFold(addr, address) {
			return id
		}
	}
	return Identity{Address: address}
}

// Balance returns the hex balance of address or "0x0" when unknown.
func (s State) Balance(address string) string {
	if acct, ok := s.Accounts[address]; ok && acct.Balance != "" {
		return acct.Balance
	}
	for addr, acct := range s.Accounts {
		if strings.EqualFold(addr, address) && acct.Balance != "" {
			return acct.Balance
		}
	}
	return "0x0"
}

// AccountAddresses lists every address held by the keyrings in keyring order.
func (s State) AccountAddresses() []string {
	var out []string
	for _, kr := range s.Keyrings {
		out = append(out, kr.Accounts...)
	}
	return out
}

// CurrentTx returns the unapproved transaction selected by the view index.
func (s State) CurrentTx() (TransactionMeta, bool) {
	i := s.CurrentView.Index
	if i < 0 || i >= len(s.UnapprovedTxs) {
		return TransactionMeta{}, false
	}
	return s.UnapprovedTxs[i], true
}
