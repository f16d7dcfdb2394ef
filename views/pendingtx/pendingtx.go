package pendingtx

import (
	"errors"
	"math/big"

	"nifty-wallet-tui/helpers"
	"nifty-wallet-tui/store"
	"nifty-wallet-tui/styles"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Props is the store data the confirmation form reads.
type Props struct {
	Identities      map[string]store.Identity
	Accounts        map[string]store.Account
	SelectedAddress string
	UnapprovedTxs   []store.TransactionMeta
	Index           int
	Warning         string
	Network         string
	Provider        store.Provider
	ConversionRate  float64
	CurrentCurrency string
	BlockGasLimit   string
	// Notification hides the back arrow and shows the network indicator.
	Notification bool
}

// PropsFromState selects the form's props from the store state.
func PropsFromState(s store.State, notification bool) Props {
	return Props{
		Identities:      s.Identities,
		Accounts:        s.Accounts,
		SelectedAddress: s.SelectedAddress,
		UnapprovedTxs:   s.UnapprovedTxs,
		Index:           s.CurrentView.Index,
		Warning:         s.Warning,
		Network:         s.Network,
		Provider:        s.Provider,
		ConversionRate:  s.ConversionRate,
		CurrentCurrency: s.CurrentCurrency,
		BlockGasLimit:   s.BlockGasLimit,
		Notification:    notification,
	}
}

// Tx returns the transaction the form is confirming.
func (p Props) Tx() (store.TransactionMeta, bool) {
	if p.Index < 0 || p.Index >= len(p.UnapprovedTxs) {
		return store.TransactionMeta{}, false
	}
	return p.UnapprovedTxs[p.Index], true
}

// Sender is the account paying for meta.
func (p Props) Sender(meta store.TransactionMeta) string {
	if meta.TxParams.From != "" {
		return meta.TxParams.From
	}
	return p.SelectedAddress
}

// Identity returns the identity for address or a bare one.
func (p Props) Identity(address string) store.Identity {
	if id, ok := p.Identities[address]; ok {
		return id
	}
	return store.Identity{Address: address}
}

// Balance returns the hex balance of address, "0x0" when unknown.
func (p Props) Balance(address string) string {
	if acct, ok := p.Accounts[address]; ok && acct.Balance != "" {
		return acct.Balance
	}
	return "0x0"
}

// Env returns the assessment context for meta.
func (p Props) Env(meta store.TransactionMeta) Env {
	return Env{BlockGasLimit: p.BlockGasLimit, Balance: p.Balance(p.Sender(meta))}
}

// ShowRejectAll reports whether Reject All is offered.
func (p Props) ShowRejectAll() bool {
	return len(p.UnapprovedTxs) > 1
}

// Field is a focusable control of the form.
type Field int

const (
	FieldGasLimit Field = iota
	FieldGasPrice
	FieldReset
	FieldSubmit
	FieldReject
	FieldRejectAll
)

// Result is what an interaction asks the host to do.
type Result struct {
	Actions []store.Action
	OpenURL string
}

// Model is the local state of the confirmation form: the draft edits of the
// current transaction and the submit lifecycle.
type Model struct {
	txID       string
	draft      *store.TransactionMeta
	gasValid   bool
	priceValid bool
	submitting bool

	focus      Field
	gasInput   textinput.Model
	priceInput textinput.Model
}

func newInput(prompt string, limit int) textinput.Model {
	in := textinput.New()
	in.Prompt = prompt
	in.PromptStyle = lipgloss.NewStyle().Foreground(styles.CAccent)
	in.TextStyle = lipgloss.NewStyle().Foreground(styles.CText)
	in.Cursor.Style = lipgloss.NewStyle().Foreground(styles.CAccent2)
	in.CharLimit = limit
	in.Width = 22
	return in
}

// New returns an empty form model. Call Sync before rendering.
func New() Model {
	return Model{
		gasValid:   true,
		priceValid: true,
		gasInput:   newInput("", 20),
		priceInput: newInput("", 30),
	}
}

// Sync resets the draft when the current transaction changed since the last
// call.
func (m Model) Sync(p Props) Model {
	tx, ok := p.Tx()
	if !ok {
		m.txID = ""
		m.draft = nil
		m.submitting = false
		return m
	}
	if tx.ID == m.txID {
		return m
	}
	m.txID = tx.ID
	m.submitting = false
	return m.reset(tx)
}

func (m Model) reset(tx store.TransactionMeta) Model {
	m.draft = nil
	m.gasValid = true
	m.priceValid = true
	m.gasInput.SetValue(helpers.HexToBig(tx.TxParams.Gas).String())
	m.priceInput.SetValue(helpers.FormatUnits(helpers.HexToBig(tx.TxParams.GasPrice), helpers.GweiDecimals, helpers.GweiDecimals))
	return m.focusOn(m.focus)
}

// Reset discards gas edits.
func (m Model) Reset(p Props) Model {
	tx, ok := p.Tx()
	if !ok {
		return m
	}
	return m.reset(tx)
}

// Valid reports form-level validity: every edited field is within range.
func (m Model) Valid() bool {
	return m.gasValid && m.priceValid
}

// Submitting reports whether a send is in flight.
func (m Model) Submitting() bool {
	return m.submitting
}

// Focus returns the focused control.
func (m Model) Focus() Field {
	return m.focus
}

// TxMeta returns a copy of the transaction as currently edited: the draft
// when one exists, otherwise the store-held transaction.
func (m Model) TxMeta(p Props) (store.TransactionMeta, bool) {
	if m.draft != nil {
		return m.draft.Clone(), true
	}
	tx, ok := p.Tx()
	if !ok {
		return store.TransactionMeta{}, false
	}
	return tx.Clone(), true
}

// Assess evaluates the edited transaction.
func (m Model) Assess(p Props) (Assessment, bool) {
	meta, ok := m.TxMeta(p)
	if !ok {
		return Assessment{}, false
	}
	return Assess(meta, p.Env(meta)), true
}

// GasLimitChanged applies an edit of the gas limit field (decimal units).
func (m Model) GasLimitChanged(p Props, value string) Model {
	meta, ok := m.TxMeta(p)
	if !ok {
		return m
	}
	n, err := helpers.ParseUnits(value, 0)
	if err != nil {
		meta.TxParams.Gas = ""
		m.gasValid = false
	} else {
		meta.TxParams.Gas = helpers.BigToHex(n)
		safe := MultiplyByFraction(BlockGasLimit(p.BlockGasLimit), 99, 100)
		m.gasValid = n.Cmp(MinGasLimit) >= 0 && n.Cmp(safe) <= 0
	}
	m.draft = &meta
	return m
}

// GasPriceChanged applies an edit of the gas price field (decimal GWEI).
// An empty field is written through as an empty hex value so submit can
// refuse it.
func (m Model) GasPriceChanged(p Props, value string) Model {
	meta, ok := m.TxMeta(p)
	if !ok {
		return m
	}
	floor := new(big.Int).Set(MinGasPrice)
	if forced, ok := ForcedMinGasPrice(meta.LastGasPrice); ok {
		floor = forced
	}

	n, err := helpers.ParseUnits(value, helpers.GweiDecimals)
	switch {
	case errors.Is(err, helpers.ErrEmptyAmount):
		meta.TxParams.GasPrice = ""
		m.priceValid = floor.Sign() == 0
	case err != nil:
		meta.TxParams.GasPrice = ""
		m.priceValid = false
	default:
		meta.TxParams.GasPrice = helpers.BigToHex(n)
		m.priceValid = n.Cmp(floor) >= 0
	}
	m.draft = &meta
	return m
}

// SetGasPriceHex overwrites the draft gas price with a raw hex value.
func (m Model) SetGasPriceHex(p Props, hex string) Model {
	meta, ok := m.TxMeta(p)
	if !ok {
		return m
	}
	meta.TxParams.GasPrice = hex
	m.draft = &meta
	return m
}

// SetGasHex overwrites the draft gas limit with a raw hex value.
func (m Model) SetGasHex(p Props, hex string) Model {
	meta, ok := m.TxMeta(p)
	if !ok {
		return m
	}
	meta.TxParams.Gas = hex
	m.draft = &meta
	return m
}

// Submit approves the edited transaction. Empty, zero or signed gas fields
// abort with a warning and leave the form editable. Otherwise nothing
// happens while submit is disabled.
func (m Model) Submit(p Props) (Model, Result) {
	meta, ok := m.TxMeta(p)
	if !ok || m.submitting {
		return m, Result{}
	}
	if !VerifyGasParams(meta) {
		return m, Result{Actions: []store.Action{store.DisplayWarning(WarnInvalidGasParams)}}
	}
	a := Assess(meta, p.Env(meta))
	if a.SubmitDisabled(m.Valid(), m.submitting) {
		return m, Result{}
	}

	m.submitting = true
	return m, Result{Actions: []store.Action{store.SendTransaction(meta)}}
}

// BuyEth returns where to get ether for the sending account.
func (m Model) BuyEth(p Props) Result {
	meta, ok := m.TxMeta(p)
	if !ok {
		return Result{}
	}
	url := helpers.BuyEthURL(helpers.ChecksumAddress(p.Sender(meta)), p.Network)
	if url == "" {
		return Result{Actions: []store.Action{store.DisplayWarning("No way to buy ether on " + helpers.NetworkName(p.Network, p.Provider.Nickname))}}
	}
	return Result{OpenURL: url}
}

// Reject cancels the current transaction.
func (m Model) Reject(p Props) Result {
	tx, ok := p.Tx()
	if !ok {
		return Result{}
	}
	return Result{Actions: []store.Action{store.CancelTransaction(tx.ID)}}
}

// RejectAll cancels every queued transaction. It is only offered when more
// than one is queued.
func (m Model) RejectAll(p Props) Result {
	if !p.ShowRejectAll() {
		return Result{}
	}
	return Result{Actions: []store.Action{store.CancelAllTransactions(p.UnapprovedTxs)}}
}

// HasPrevious reports whether a transaction precedes the current one.
func (p Props) HasPrevious() bool {
	return p.Index > 0
}

// HasNext reports whether a transaction follows the current one.
func (p Props) HasNext() bool {
	return p.Index+1 < len(p.UnapprovedTxs)
}

// Previous moves to the previous queued transaction.
func (m Model) Previous(p Props) Result {
	if !p.HasPrevious() {
		return Result{}
	}
	return Result{Actions: []store.Action{store.PreviousTx()}}
}

// Next moves to the next queued transaction.
func (m Model) Next(p Props) Result {
	if !p.HasNext() {
		return Result{}
	}
	return Result{Actions: []store.Action{store.NextTx()}}
}

// GoHome leaves the confirmation view. Unavailable in notification mode.
func (m Model) GoHome(p Props) Result {
	if p.Notification {
		return Result{}
	}
	return Result{Actions: []store.Action{store.GoHome()}}
}

func (m Model) fields(p Props) []Field {
	fs := []Field{FieldGasLimit, FieldGasPrice, FieldReset, FieldSubmit, FieldReject}
	if p.ShowRejectAll() {
		fs = append(fs, FieldRejectAll)
	}
	return fs
}

func (m Model) focusOn(f Field) Model {
	m.focus = f
	m.gasInput.Blur()
	m.priceInput.Blur()
	switch f {
	case FieldGasLimit:
		m.gasInput.Focus()
	case FieldGasPrice:
		m.priceInput.Focus()
	}
	return m
}

func (m Model) cycle(p Props, d int) Model {
	fs := m.fields(p)
	idx := 0
	for i, f := range fs {
		if f == m.focus {
			idx = i
		}
	}
	idx = (idx + d + len(fs)) % len(fs)
	return m.focusOn(fs[idx])
}

// activate presses the focused button.
func (m Model) activate(p Props) (Model, Result) {
	switch m.focus {
	case FieldReset:
		return m.Reset(p), Result{}
	case FieldSubmit:
		if a, ok := m.Assess(p); ok && a.InsufficientBalance {
			return m, m.BuyEth(p)
		}
		return m.Submit(p)
	case FieldReject:
		return m, m.Reject(p)
	case FieldRejectAll:
		return m, m.RejectAll(p)
	}
	// enter inside an input submits the form
	return m.Submit(p)
}

// Update handles keys while the form is shown.
func (m Model) Update(p Props, msg tea.Msg) (Model, Result, tea.Cmd) {
	m = m.Sync(p)

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			return m.cycle(p, 1), Result{}, nil
		case "shift+tab", "up":
			return m.cycle(p, -1), Result{}, nil
		case "enter":
			m, res := m.activate(p)
			return m, res, nil
		case "esc":
			return m, m.GoHome(p), nil
		case "[", "pgup":
			return m, m.Previous(p), nil
		case "]", "pgdown":
			return m, m.Next(p), nil
		case "ctrl+r":
			return m.Reset(p), Result{}, nil
		case "ctrl+x":
			return m, m.Reject(p), nil
		}
	}

	var cmd tea.Cmd
	edited := false
	switch m.focus {
	case FieldGasLimit:
		before := m.gasInput.Value()
		m.gasInput, cmd = m.gasInput.Update(msg)
		if v := m.gasInput.Value(); v != before {
			m = m.GasLimitChanged(p, v)
			edited = true
		}
	case FieldGasPrice:
		before := m.priceInput.Value()
		m.priceInput, cmd = m.priceInput.Update(msg)
		if v := m.priceInput.Value(); v != before {
			m = m.GasPriceChanged(p, v)
			edited = true
		}
	}
	// an edit answers the previous warning
	if edited && p.Warning != "" {
		return m, Result{Actions: []store.Action{store.HideWarning()}}, cmd
	}
	return m, Result{}, cmd
}
