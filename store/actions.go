package store

// Action is a state transition request handled by Reduce.
type Action interface {
	Type() string
}

// Action type names.
const (
	ShowAccountDetailType     = "SHOW_ACCOUNT_DETAIL"
	AddNewAccountType         = "ADD_NEW_ACCOUNT"
	ShowImportPageType        = "SHOW_IMPORT_PAGE"
	RequestExportAccountType  = "REQUEST_EXPORT_ACCOUNT"
	ShowQrViewType            = "SHOW_QR_VIEW"
	PreviousTxType            = "VIEW_PREVIOUS_TX"
	NextTxType                = "VIEW_NEXT_TX"
	GoHomeType                = "GO_HOME"
	DisplayWarningType        = "DISPLAY_WARNING"
	HideWarningType           = "HIDE_WARNING"
	ShowConfigPageType        = "SHOW_CONFIG_PAGE"
	ShowConfTxPageType        = "SHOW_CONF_TX_PAGE"
	SendTransactionType       = "SEND_TRANSACTION"
	CancelTransactionType     = "CANCEL_TRANSACTION"
	CancelAllTransactionsType = "CANCEL_ALL_TRANSACTIONS"
	SetAccountSubviewType     = "SET_ACCOUNT_SUBVIEW"
	UpdateNetworkType         = "UPDATE_NETWORK"
	UpdateBlockGasLimitType   = "UPDATE_BLOCK_GAS_LIMIT"
	UpdateBalancesType        = "UPDATE_BALANCES"
	UpdateConversionRateType  = "UPDATE_CONVERSION_RATE"
	AddUnapprovedTxType       = "ADD_UNAPPROVED_TX"
	SetSimulationFailsType    = "SET_SIMULATION_FAILS"
	AddAccountType            = "ADD_ACCOUNT"
)

type ShowAccountDetailAction struct{ Address string }
type AddNewAccountAction struct{}
type ShowImportPageAction struct{}
type RequestExportAccountAction struct{}
type ShowQrViewAction struct{ Address, Message string }
type PreviousTxAction struct{}
type NextTxAction struct{}
type GoHomeAction struct{}
type DisplayWarningAction struct{ Message string }
type HideWarningAction struct{}
type ShowConfigPageAction struct{}
type ShowConfTxPageAction struct{ ID string }
type SendTransactionAction struct{ Meta TransactionMeta }
type CancelTransactionAction struct{ ID string }
type CancelAllTransactionsAction struct{ IDs []string }
type SetAccountSubviewAction struct{ Subview string }

type UpdateNetworkAction struct {
	Network  string
	Provider Provider
}
type UpdateBlockGasLimitAction struct{ GasLimit string }
type UpdateBalancesAction struct{ Accounts map[string]Account }
type UpdateConversionRateAction struct {
	Currency string
	Rate     float64
}
type AddUnapprovedTxAction struct{ Meta TransactionMeta }
type SetSimulationFailsAction struct {
	ID    string
	Fails bool
}

// AddAccountAction registers address in the first keyring of KeyringType,
// creating the keyring when none exists.
type AddAccountAction struct {
	KeyringType string
	Address     string
	Name        string
}

func (ShowAccountDetailAction) Type() string     { return ShowAccountDetailType }
func (AddNewAccountAction) Type() string         { return AddNewAccountType }
func (ShowImportPageAction) Type() string        { return ShowImportPageType }
func (RequestExportAccountAction) Type() string  { return RequestExportAccountType }
func (ShowQrViewAction) Type() string            { return ShowQrViewType }
func (PreviousTxAction) Type() string            { return PreviousTxType }
func (NextTxAction) Type() string                { return NextTxType }
func (GoHomeAction) Type() string                { return GoHomeType }
func (DisplayWarningAction) Type() string        { return DisplayWarningType }
func (HideWarningAction) Type() string           { return HideWarningType }
func (ShowConfigPageAction) Type() string        { return ShowConfigPageType }
func (ShowConfTxPageAction) Type() string        { return ShowConfTxPageType }
func (SendTransactionAction) Type() string       { return SendTransactionType }
func (CancelTransactionAction) Type() string     { return CancelTransactionType }
func (CancelAllTransactionsAction) Type() string { return CancelAllTransactionsType }
func (SetAccountSubviewAction) Type() string     { return SetAccountSubviewType }
func (UpdateNetworkAction) Type() string         { return UpdateNetworkType }
func (UpdateBlockGasLimitAction) Type() string   { return UpdateBlockGasLimitType }
func (UpdateBalancesAction) Type() string        { return UpdateBalancesType }
func (UpdateConversionRateAction) Type() string  { return UpdateConversionRateType }
func (AddUnapprovedTxAction) Type() string       { return AddUnapprovedTxType }
func (SetSimulationFailsAction) Type() string    { return SetSimulationFailsType }
func (AddAccountAction) Type() string            { return AddAccountType }

func ShowAccountDetail(address string) Action { return ShowAccountDetailAction{Address: address} }
func AddNewAccount() Action                   { return AddNewAccountAction{} }
func ShowImportPage() Action                  { return ShowImportPageAction{} }
func RequestExportAccount() Action            { return RequestExportAccountAction{} }
func PreviousTx() Action                      { return PreviousTxAction{} }
func NextTx() Action                          { return NextTxAction{} }
func GoHome() Action                          { return GoHomeAction{} }
func DisplayWarning(msg string) Action        { return DisplayWarningAction{Message: msg} }
func HideWarning() Action                     { return HideWarningAction{} }
func ShowConfigPage() Action                  { return ShowConfigPageAction{} }
func ShowConfTxPage(id string) Action         { return ShowConfTxPageAction{ID: id} }
func CancelTransaction(id string) Action      { return CancelTransactionAction{ID: id} }
func SetAccountSubview(sub string) Action     { return SetAccountSubviewAction{Subview: sub} }

// UpdateConversionRate sets the display currency and its price per ETH.
func UpdateConversionRate(currency string, rate float64) Action {
	return UpdateConversionRateAction{Currency: currency, Rate: rate}
}

// ShowQrView opens the QR view for address with message as its caption.
func ShowQrView(address, message string) Action {
	return ShowQrViewAction{Address: address, Message: message}
}

// SendTransaction approves meta, including any draft gas edits.
func SendTransaction(meta TransactionMeta) Action {
	return SendTransactionAction{Meta: meta.Clone()}
}

// CancelAllTransactions rejects every transaction in txs.
func CancelAllTransactions(txs []TransactionMeta) Action {
	ids := make([]string, 0, len(txs))
	for _, tx := range txs {
		ids = append(ids, tx.ID)
	}
	return CancelAllTransactionsAction{IDs: ids}
}
