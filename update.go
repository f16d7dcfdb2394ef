package main

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"nifty-wallet-tui/helpers"
	"nifty-wallet-tui/rpc"
	"nifty-wallet-tui/store"
	"nifty-wallet-tui/txqueue"
	"nifty-wallet-tui/views/accounts"
	"nifty-wallet-tui/views/home"
	"nifty-wallet-tui/views/pendingtx"
	"nifty-wallet-tui/views/settings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// -------------------- UPDATE --------------------

// Update implements tea.Model interface and handles all state changes
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Forms get input first
	if cmd, handled := m.updateForms(msg); handled {
		return m, cmd
	}

	switch msg := msg.(type) {

	case logInitMsg:
		if !m.logEnabled {
			return m, nil
		}
		m.logger = log.NewWithOptions(m.logBuffer, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05",
		})
		m.logger.SetLevel(m.logLevel)
		m.logger.SetStyles(&log.Styles{
			Timestamp: lipgloss.NewStyle().Foreground(cMuted),
			Caller:    lipgloss.NewStyle().Faint(true),
			Prefix:    lipgloss.NewStyle().Bold(true).Foreground(cAccent2),
			Message:   lipgloss.NewStyle().Foreground(cText),
			Key:       lipgloss.NewStyle().Foreground(cAccent),
			Value:     lipgloss.NewStyle().Foreground(cText),
			Separator: lipgloss.NewStyle().Faint(true),
			Levels: map[log.Level]lipgloss.Style{
				log.DebugLevel: lipgloss.NewStyle().Foreground(cMuted).SetString("DEBUG"),
				log.InfoLevel:  lipgloss.NewStyle().Foreground(cAccent2).SetString("INFO"),
				log.WarnLevel:  lipgloss.NewStyle().Foreground(cWarn).SetString("WARN"),
				log.ErrorLevel: lipgloss.NewStyle().Foreground(cError).SetString("ERROR"),
			},
		})
		m.logReady = true
		m.addLog("info", "Logger enabled")
		return m, nil

	case rpcConnectedMsg:
		m.rpcConnecting = false
		if msg.err != nil {
			m.ethClient = nil
			m.rpcConnected = false
			m.addLog("error", fmt.Sprintf("RPC connection failed: `%s`", msg.err.Error()))
			return m, nil
		}
		m.ethClient = msg.client
		m.rpcConnected = true
		m.addLog("success", fmt.Sprintf("RPC connected to `%s`", msg.client.URL))

		cmds := []tea.Cmd{m.refreshChain()}
		for _, tx := range m.state.UnapprovedTxs {
			cmds = append(cmds, simulateTx(m.ethClient, tx))
		}
		return m, tea.Batch(cmds...)

	case chainStateMsg:
		if msg.err != nil {
			m.addLog("error", "Loading chain state failed: "+msg.err.Error())
			return m, nil
		}
		m.chainID = msg.cs.ChainID
		m.gasPrice = msg.cs.GasPrice
		m.addLog("info", fmt.Sprintf("Chain %s, block gas limit %d, gas price %s gwei",
			msg.cs.ChainID, msg.cs.BlockGasLimit,
			helpers.FormatUnits(msg.cs.GasPrice, helpers.GweiDecimals, 2)))
		return m, m.dispatch(
			store.UpdateNetworkAction{Network: msg.cs.NetworkID.String(), Provider: m.state.Provider},
			store.UpdateBlockGasLimitAction{GasLimit: helpers.BigToHex(new(big.Int).SetUint64(msg.cs.BlockGasLimit))},
		)

	case balancesLoadedMsg:
		if msg.err != nil {
			m.addLog("warning", "Some balances failed to load: "+msg.err.Error())
		}
		if len(msg.accounts) == 0 {
			return m, nil
		}
		m.addLog("debug", fmt.Sprintf("Loaded %d balances", len(msg.accounts)))
		return m, m.dispatch(store.UpdateBalancesAction{Accounts: msg.accounts})

	case detailsLoadedMsg:
		if !strings.EqualFold(msg.d.Address, m.state.SelectedAddress) {
			// stale result for an account no longer shown
			return m, nil
		}
		m.loading = false
		m.details = msg.d
		if m.details.ErrMessage != "" {
			m.addLog("error", fmt.Sprintf("Account `%s`: %s", helpers.ShortenAddr(m.details.Address), m.details.ErrMessage))
			return m, nil
		}
		m.addLog("success", fmt.Sprintf("Loaded details for `%s` - ETH: %s", helpers.ShortenAddr(m.details.Address), helpers.FormatETH(m.details.EthWei)))
		return m, m.dispatch(store.UpdateBalancesAction{Accounts: map[string]store.Account{
			m.state.SelectedAddress: {Address: m.state.SelectedAddress, Balance: helpers.BigToHex(m.details.EthWei)},
		}})

	case simulationMsg:
		if errors.Is(msg.err, rpc.ErrNoClient) {
			return m, nil
		}
		if msg.fails {
			m.addLog("warning", fmt.Sprintf("Transaction %s would fail: %v", msg.id, msg.err))
		} else if msg.err != nil {
			m.addLog("error", fmt.Sprintf("Simulating %s: %s", msg.id, msg.err.Error()))
			return m, nil
		} else {
			m.addLog("debug", fmt.Sprintf("Transaction %s estimates %d gas", msg.id, msg.gas))
		}
		return m, m.dispatch(store.SetSimulationFailsAction{ID: msg.id, Fails: msg.fails})

	case queueLoadedMsg:
		var cmds []tea.Cmd
		if msg.fromWatch {
			cmds = append(cmds, waitForQueue(m.queueEvents))
		}
		if msg.err != nil {
			m.addLog("error", "Reading transaction queue failed: "+msg.err.Error())
			return m, tea.Batch(cmds...)
		}
		metas, err := m.newQueuedMetas(msg.reqs)
		if err != nil {
			m.addLog("warning", "Skipped queue entries: "+err.Error())
		}
		if len(metas) == 0 {
			return m, tea.Batch(cmds...)
		}
		wasEmpty := len(m.state.UnapprovedTxs) == 0
		m.addLog("info", fmt.Sprintf("%d new transaction(s) awaiting approval", len(metas)))
		cmds = append(cmds, m.dispatch(txqueue.Actions(metas)...))
		for _, meta := range metas {
			cmds = append(cmds, simulateTx(m.ethClient, meta))
		}
		if wasEmpty && m.state.CurrentView.Name == store.ViewAccountDetail && !m.menuOpen {
			cmds = append(cmds, m.dispatch(store.ShowConfTxPage(metas[0].ID)))
		}
		return m, tea.Batch(cmds...)

	case queueWatchStoppedMsg:
		if msg.err != nil {
			m.addLog("error", "Queue watcher stopped: "+msg.err.Error())
		}
		return m, nil

	case packageTransactionMsg:
		if msg.id != m.txResultID {
			return m, nil
		}
		m.txResultPackaging = false
		if msg.err != nil {
			m.txResultError = msg.err.Error()
			m.addLog("error", "Transaction packaging failed: "+msg.err.Error())
			return m, nil
		}
		m.txResult = msg.pkg
		m.addLog("success", "Transaction packaged for signing")
		return m, nil

	case clipboardCopiedMsg:
		if msg.err != nil {
			m.addLog("error", "Clipboard copy failed: "+msg.err.Error())
			return m, nil
		}
		if msg.what == "tx" {
			m.txCopiedMsg = "✓ Copied to clipboard"
		} else {
			m.copiedMsg = "✓ Copied"
		}
		m.addLog("info", "Copied "+msg.what+" to clipboard")
		return m, clearClipboardMsg()

	case clearCopiedMsg:
		m.copiedMsg = ""
		m.txCopiedMsg = ""
		return m, nil

	case urlOpenedMsg:
		if msg.err != nil {
			m.addLog("error", "Opening browser failed: "+msg.err.Error())
			return m, m.dispatch(store.DisplayWarning("Could not open " + msg.url))
		}
		m.addLog("info", "Opened "+msg.url)
		return m, nil

	case tea.WindowSizeMsg:
		m.w, m.h = msg.Width, msg.Height
		if m.logEnabled {
			m.logViewport.Width = max(0, msg.Width-6)
			if m.logReady {
				m.updateLogViewport()
			}
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		var cmds []tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		cmds = append(cmds, cmd)
		if m.logEnabled && !m.logReady {
			m.logSpinner, cmd = m.logSpinner.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	}

	// cursor blink and other component messages
	if m.state.CurrentView.Name == store.ViewConfTx {
		return m, m.updatePending(msg)
	}
	return m, nil
}

// isAppMsg reports messages the model handles itself even while a form is
// open.
func isAppMsg(msg tea.Msg) bool {
	switch msg.(type) {
	case logInitMsg, rpcConnectedMsg, chainStateMsg, balancesLoadedMsg,
		detailsLoadedMsg, simulationMsg, queueLoadedMsg, queueWatchStoppedMsg,
		packageTransactionMsg, clipboardCopiedMsg, clearCopiedMsg, urlOpenedMsg,
		tea.WindowSizeMsg, spinner.TickMsg, tea.MouseMsg:
		return true
	}
	return false
}

// updateForms routes input to whichever huh form is open.
func (m *model) updateForms(msg tea.Msg) (tea.Cmd, bool) {
	if isAppMsg(msg) {
		return nil, false
	}
	switch {
	case m.menuOpen && m.homeForm != nil:
		return m.updateHomeForm(msg), true
	case m.accountForm != nil:
		return m.updateAccountForm(msg), true
	case m.state.CurrentView.Name == store.ViewConfig && m.form != nil:
		return m.updateNetworkForm(msg), true
	}
	return nil, false
}

func (m *model) updateHomeForm(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && (key.String() == "esc" || key.String() == "m") {
		m.menuOpen = false
		m.homeForm = nil
		return nil
	}

	form, cmd := m.homeForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.homeForm = f
	}

	switch m.homeForm.State {
	case huh.StateCompleted:
		m.menuOpen = false
		m.homeForm = nil
		m.addLog("debug", "menu: "+home.TempSelection)
		switch home.TempSelection {
		case home.ChoiceAccount:
			return m.dispatch(store.GoHome())
		case home.ChoicePending:
			if len(m.state.UnapprovedTxs) > 0 {
				return m.dispatch(store.ShowConfTxPage(m.state.UnapprovedTxs[0].ID))
			}
		case home.ChoiceCreate:
			return m.dispatch(store.AddNewAccount())
		case home.ChoiceImport:
			return m.dispatch(store.ShowImportPage())
		case home.ChoiceNetworks:
			m.settingsMode = settings.ModeList
			return m.dispatch(store.ShowConfigPage())
		case home.ChoiceQuit:
			return m.quit()
		}
		return nil
	case huh.StateAborted:
		m.menuOpen = false
		m.homeForm = nil
		return nil
	}
	return cmd
}

func (m *model) updateAccountForm(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		m.accountForm = nil
		return m.dispatch(store.GoHome())
	}

	form, cmd := m.accountForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.accountForm.Form = f
	}

	switch m.accountForm.State {
	case huh.StateCompleted:
		add, _ := m.accountForm.Action().(store.AddAccountAction)
		m.accountForm = nil
		cmds := []tea.Cmd{m.dispatch(add, store.ShowAccountDetail(add.Address))}
		if m.rpcConnected {
			cmds = append(cmds, loadBalances(m.ethClient, []string{add.Address}))
		}
		return tea.Batch(cmds...)
	case huh.StateAborted:
		m.accountForm = nil
		return m.dispatch(store.GoHome())
	}
	return cmd
}

func (m *model) updateNetworkForm(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		m.settingsMode = settings.ModeList
		m.form = nil
		return nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		n := settings.FormResult()
		mode := m.settingsMode
		m.settingsMode = settings.ModeList
		m.form = nil

		if mode == settings.ModeCurrency {
			return m.setCurrency(settings.CurrencyResult())
		}

		if mode == settings.ModeEdit && m.selectedNetIdx < len(m.cfg.Networks) {
			active := m.cfg.Networks[m.selectedNetIdx].Active
			n.Active = active
			networks := append(m.cfg.Networks[:0:0], m.cfg.Networks...)
			networks[m.selectedNetIdx] = n
			m.cfg.Networks = networks
			m.addLog("success", "Updated network "+n.Name)
			if active {
				return m.switchNetwork(m.selectedNetIdx)
			}
			m.saveConfig()
			return nil
		}

		m.cfg = m.cfg.AddNetwork(n)
		m.selectedNetIdx = len(m.cfg.Networks) - 1
		m.addLog("success", "Added network "+n.Name)
		if len(m.cfg.Networks) == 1 {
			return m.switchNetwork(0)
		}
		m.saveConfig()
		return nil
	case huh.StateAborted:
		m.settingsMode = settings.ModeList
		m.form = nil
		return nil
	}
	return cmd
}

// setCurrency stores the display currency and rate and saves them.
func (m *model) setCurrency(cur string, rate float64) tea.Cmd {
	m.cfg.Currency, m.cfg.ConversionRate = cur, rate
	m.saveConfig()
	m.addLog("success", "Currency set to "+strings.ToUpper(cur))
	return m.dispatch(store.UpdateConversionRate(cur, rate))
}

// -------------------- KEYS --------------------

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" && !m.showTxResultPanel {
		return m.quit()
	}

	// Transaction result panel comes before anything else
	if m.showTxResultPanel {
		switch msg.String() {
		case "ctrl+c", "c":
			if m.txResult.JSON != "" {
				return copyToClipboard("tx", m.txResult.JSON)
			}
		case "u":
			if m.txResult.EIP681 != "" {
				return copyToClipboard("tx", m.txResult.EIP681)
			}
		case "esc", "enter":
			m.closeTxResultPanel()
			if m.notification && len(m.state.UnapprovedTxs) == 0 {
				return m.quit()
			}
		}
		return nil
	}

	if m.dropdowns.Open() {
		p := accounts.PropsFromState(m.state)
		switch msg.String() {
		case "up", "k":
			m.dropdowns = m.dropdowns.MoveCursor(p, -1)
		case "down", "j":
			m.dropdowns = m.dropdowns.MoveCursor(p, 1)
		case "enter", " ":
			var eff accounts.Effect
			var ok bool
			m.dropdowns, eff, ok = m.dropdowns.Activate(p)
			if ok {
				return m.applyEffect(eff)
			}
		case "esc", "a", "o":
			m.dropdowns = m.dropdowns.Close()
		}
		return nil
	}

	if !m.textInputActive() {
		switch msg.String() {
		case "q":
			return m.quit()

		case "l", "L":
			return m.toggleLogger()

		case "pgup", "pgdown":
			if m.logEnabled && m.logReady && m.state.CurrentView.Name != store.ViewConfTx {
				var cmd tea.Cmd
				m.logViewport, cmd = m.logViewport.Update(msg)
				return cmd
			}

		case "m":
			if !m.notification {
				m.menuOpen = true
				m.homeForm = home.CreateForm(len(m.state.UnapprovedTxs))
				return nil
			}
		}
	}

	switch m.state.CurrentView.Name {
	case store.ViewConfTx:
		return m.updatePending(msg)
	case store.ViewAccountDetail:
		return m.accountDetailKeys(msg)
	case store.ViewQR:
		switch msg.String() {
		case "esc", "enter", "backspace":
			return m.dispatch(store.GoHome())
		case "c":
			return copyToClipboard("address", helpers.ChecksumAddress(m.state.QR.Data))
		}
	case store.ViewConfig:
		return m.networkKeys(msg)
	}
	return nil
}

func (m *model) toggleLogger() tea.Cmd {
	m.logEnabled = !m.logEnabled
	if m.logEnabled {
		if m.w > 0 {
			m.logViewport.Width = m.w - 6
		}
		m.logReady = false
		m.saveConfig()
		return tea.Batch(initLogViewport(), m.logSpinner.Tick)
	}
	if m.logBuffer != nil {
		m.logBuffer.Reset()
	}
	m.logger = nil
	m.logReady = false
	m.saveConfig()
	return nil
}

func (m *model) closeTxResultPanel() {
	m.showTxResultPanel = false
	m.txResultPackaging = false
	m.txResultID = ""
	m.txResult = rpc.TxPackage{}
	m.txResultError = ""
	m.txCopiedMsg = ""
}

func (m *model) accountDetailKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "a":
		m.dropdowns = m.dropdowns.ToggleAccountSelector()
	case "o":
		m.dropdowns = m.dropdowns.ToggleOptionsMenu()
	case "tab", "right":
		m.tabs = m.tabs.Next()
		m.state = m.store.State()
	case "shift+tab", "left":
		m.tabs = m.tabs.Prev()
		m.state = m.store.State()
	case "esc":
		if m.state.AccountSubview == store.SubviewExport {
			return m.dispatch(store.SetAccountSubview(m.tabs.Selected()))
		}
	case "c":
		if m.state.SelectedAddress != "" {
			return copyToClipboard("address", helpers.ChecksumAddress(m.state.SelectedAddress))
		}
	case "r":
		m.addLog("info", "Refreshing")
		if !m.rpcConnected && m.rpcURL != "" && !m.rpcConnecting {
			m.rpcConnecting = true
			return connectRPC(m.rpcURL)
		}
		return m.refreshChain()
	case "t":
		if len(m.state.UnapprovedTxs) > 0 {
			return m.dispatch(store.ShowConfTxPage(m.state.UnapprovedTxs[0].ID))
		}
	}
	return nil
}

func (m *model) networkKeys(msg tea.KeyMsg) tea.Cmd {
	if m.settingsMode != settings.ModeList {
		return nil
	}
	switch msg.String() {
	case "up", "k":
		if m.selectedNetIdx > 0 {
			m.selectedNetIdx--
		}
	case "down", "j":
		if m.selectedNetIdx < len(m.cfg.Networks)-1 {
			m.selectedNetIdx++
		}
	case "enter", " ":
		return m.switchNetwork(m.selectedNetIdx)
	case "a", "A":
		m.settingsMode = settings.ModeAdd
		m.form = settings.CreateAddForm()
	case "e", "E":
		if m.selectedNetIdx < len(m.cfg.Networks) {
			m.settingsMode = settings.ModeEdit
			m.form = settings.CreateEditForm(m.cfg.Networks[m.selectedNetIdx])
		}
	case "c", "C":
		m.settingsMode = settings.ModeCurrency
		m.form = settings.CreateCurrencyForm(m.state.CurrentCurrency, m.state.ConversionRate)
	case "d", "delete":
		if len(m.cfg.Networks) <= 1 {
			return m.dispatch(store.DisplayWarning("At least one network is required"))
		}
		if m.selectedNetIdx >= len(m.cfg.Networks) {
			return nil
		}
		removed := m.cfg.Networks[m.selectedNetIdx]
		m.cfg = m.cfg.RemoveNetwork(m.selectedNetIdx)
		m.selectedNetIdx = min(m.selectedNetIdx, len(m.cfg.Networks)-1)
		m.addLog("warning", "Removed network "+removed.Name)
		if removed.Active {
			return m.switchNetwork(0)
		}
		m.saveConfig()
	case "esc", "backspace":
		return m.dispatch(store.GoHome())
	}
	return nil
}

// updatePending forwards msg to the confirmation form and applies its result.
func (m *model) updatePending(msg tea.Msg) tea.Cmd {
	p := pendingtx.PropsFromState(m.state, m.notification)
	var res pendingtx.Result
	var cmd tea.Cmd
	m.pending, res, cmd = m.pending.Update(p, msg)
	return tea.Batch(cmd, m.applyResult(res))
}

func (m *model) applyResult(res pendingtx.Result) tea.Cmd {
	var cmds []tea.Cmd
	if len(res.Actions) > 0 {
		cmds = append(cmds, m.dispatch(res.Actions...))
	}
	if res.OpenURL != "" {
		cmds = append(cmds, openURL(res.OpenURL))
	}
	return tea.Batch(cmds...)
}

func (m *model) applyEffect(eff accounts.Effect) tea.Cmd {
	var cmds []tea.Cmd
	if eff.Action != nil {
		cmds = append(cmds, m.dispatch(eff.Action))
	}
	if eff.OpenURL != "" {
		cmds = append(cmds, openURL(eff.OpenURL))
	}
	if eff.Copy != "" {
		cmds = append(cmds, copyToClipboard("address", eff.Copy))
	}
	return tea.Batch(cmds...)
}

// -------------------- MOUSE --------------------

func (m *model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress {
		return nil
	}
	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		if m.logEnabled && m.logReady {
			var cmd tea.Cmd
			m.logViewport, cmd = m.logViewport.Update(msg)
			return cmd
		}
		return nil
	}
	if msg.Button != tea.MouseButtonLeft {
		return nil
	}

	if m.showTxResultPanel {
		if m.txResult.JSON != "" {
			return copyToClipboard("tx", m.txResult.JSON)
		}
		return nil
	}
	if m.menuOpen || m.accountForm != nil || m.form != nil {
		return nil
	}

	target, row := m.clickTarget(msg.X, msg.Y)
	m.addLog("debug", fmt.Sprintf("Click at (%d,%d) target %d", msg.X, msg.Y, target))
	wasOpen := m.dropdowns.Open()
	m.dropdowns = m.dropdowns.ClickOutside(target)

	p := accounts.PropsFromState(m.state)
	switch target {
	case accounts.TargetSelectorToggle:
		m.dropdowns = m.dropdowns.ToggleAccountSelector()
		return nil
	case accounts.TargetOptionsToggle:
		m.dropdowns = m.dropdowns.ToggleOptionsMenu()
		return nil
	case accounts.TargetSelectorMenu, accounts.TargetOptionsMenu:
		if row < 0 {
			return nil
		}
		var eff accounts.Effect
		var ok bool
		m.dropdowns, eff, ok = m.dropdowns.ActivateAt(p, row)
		if ok {
			return m.applyEffect(eff)
		}
		return nil
	}

	if wasOpen {
		return nil
	}
	if m.state.CurrentView.Name == store.ViewAccountDetail && m.tabBarY >= 0 && msg.Y == m.tabBarY {
		if tabs, ok := m.tabs.Click(msg.X - contentX); ok {
			m.tabs = tabs
			m.state = m.store.State()
		}
	}
	return nil
}

// clickTarget classifies a click for the dropdowns. row is the popover item
// under the click, -1 when none.
func (m *model) clickTarget(x, y int) (accounts.Target, int) {
	p := m.dropdownProps()
	if y == m.toggleY {
		if p.EnableAccountsSelector && x == m.selectorX {
			return accounts.TargetSelectorToggle, -1
		}
		if p.EnableAccountOptions && x == m.optionsX {
			return accounts.TargetOptionsToggle, -1
		}
	}

	if m.dropdowns.Open() &&
		x >= m.popoverLeft && x < m.popoverLeft+m.popoverW &&
		y >= m.popoverTop && y < m.popoverTop+m.popoverH {
		target := accounts.TargetOptionsMenu
		if m.dropdowns.AccountSelectorActive {
			target = accounts.TargetSelectorMenu
		}
		for _, r := range m.popoverRows {
			// one line of border above the first row
			if m.popoverTop+1+r.Y == y {
				return target, r.Index
			}
		}
		return target, -1
	}
	return accounts.TargetOutside, -1
}

// dropdownProps enables the header toggles on the account screen only.
func (m *model) dropdownProps() accounts.Props {
	p := accounts.PropsFromState(m.state)
	enabled := m.state.CurrentView.Name == store.ViewAccountDetail && !m.menuOpen
	p.EnableAccountsSelector = enabled
	p.EnableAccountOptions = enabled
	return p
}
