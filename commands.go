package main

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"nifty-wallet-tui/config"
	"nifty-wallet-tui/helpers"
	"nifty-wallet-tui/rpc"
	"nifty-wallet-tui/store"
	"nifty-wallet-tui/txqueue"
	"nifty-wallet-tui/views/accountform"
	"nifty-wallet-tui/views/pendingtx"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ethereum/go-ethereum/common"
)

// -------------------- COMMAND FUNCTIONS --------------------
// Functions that return tea.Cmd for async operations

// connectRPC establishes an RPC connection to the Ethereum node
func connectRPC(url string) tea.Cmd {
	return func() tea.Msg {
		result := rpc.Connect(url)
		return rpcConnectedMsg{client: result.Client, err: result.Error}
	}
}

// initLogViewport initializes the log viewport
func initLogViewport() tea.Cmd {
	return func() tea.Msg {
		return logInitMsg{}
	}
}

// loadChainState reads chain id, block gas limit and gas price
func loadChainState(client *rpc.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		cs, err := rpc.LoadChainState(ctx, client)
		return chainStateMsg{cs: cs, err: err}
	}
}

// loadBalances fetches the ETH balance of every account
func loadBalances(client *rpc.Client, addresses []string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		accounts, err := rpc.LoadBalances(ctx, client, addresses)
		return balancesLoadedMsg{accounts: accounts, err: err}
	}
}

// loadDetails fetches token balances for the account screen
func loadDetails(client *rpc.Client, addr common.Address, watch []rpc.WatchedToken) tea.Cmd {
	return func() tea.Msg {
		return detailsLoadedMsg{d: rpc.LoadAccountDetails(client, addr, watch)}
	}
}

// simulateTx runs a queued transaction through eth_estimateGas
func simulateTx(client *rpc.Client, meta store.TransactionMeta) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		gas, fails, err := rpc.Simulate(ctx, client, meta.TxParams)
		return simulationMsg{id: meta.ID, gas: gas, fails: fails, err: err}
	}
}

// loadQueue reads the queue file once
func loadQueue(path string) tea.Cmd {
	return func() tea.Msg {
		reqs, err := txqueue.Load(path)
		return queueLoadedMsg{reqs: reqs, err: err}
	}
}

// watchQueue forwards queue file changes to events until ctx is done. It is
// the only sender on events and closes it when the watcher stops.
func watchQueue(ctx context.Context, path string, events chan<- tea.Msg) tea.Cmd {
	return func() tea.Msg {
		defer close(events)
		send := func(msg tea.Msg) {
			select {
			case events <- msg:
			case <-ctx.Done():
			}
		}
		err := txqueue.Watch(ctx, path,
			func(reqs []txqueue.Request) { send(queueLoadedMsg{reqs: reqs, fromWatch: true}) },
			func(err error) { send(queueLoadedMsg{err: err, fromWatch: true}) },
		)
		return queueWatchStoppedMsg{err: err}
	}
}

// waitForQueue blocks until the watcher reports a change. It returns nil
// once the watcher has stopped.
func waitForQueue(events <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-events
		if !ok {
			return nil
		}
		return msg
	}
}

// packageTransaction builds the unsigned transaction for QR display
func packageTransaction(client *rpc.Client, meta store.TransactionMeta, chainID *big.Int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		pkg, err := rpc.PackageTransaction(ctx, client, meta, chainID)
		return packageTransactionMsg{id: meta.ID, pkg: pkg, err: err}
	}
}

// copyToClipboard copies text to clipboard
func copyToClipboard(what, text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardCopiedMsg{what: what, err: clipboard.WriteAll(text)}
	}
}

// clearClipboardMsg waits 2 seconds then sends a message to clear clipboard feedback
func clearClipboardMsg() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

// openURL hands url to the system browser
func openURL(url string) tea.Cmd {
	return func() tea.Msg {
		return urlOpenedMsg{url: url, err: helpers.OpenURL(url)}
	}
}

// persistAccounts returns a store subscriber that writes identities,
// keyrings and the selected address to the config file whenever they change.
func persistAccounts(path string, onErr func(error)) func(store.State) {
	var last string
	return func(s store.State) {
		cfg, err := config.Load(path)
		if err != nil {
			// leave a broken file alone
			return
		}
		cfg = accountsToConfig(cfg, s)
		key := fmt.Sprint(cfg.Identities, cfg.Keyrings, cfg.SelectedAddress)
		if key == last {
			return
		}
		last = key
		if err := config.Save(path, cfg); err != nil && onErr != nil {
			onErr(err)
		}
	}
}

// accountsToConfig copies the account data of s into cfg.
func accountsToConfig(cfg config.Config, s store.State) config.Config {
	cfg.Identities = cfg.Identities[:0:0]
	for _, addr := range s.AccountAddresses() {
		id := s.Identity(addr)
		cfg.Identities = append(cfg.Identities, config.Identity{Address: addr, Name: id.Name})
	}
	cfg.Keyrings = cfg.Keyrings[:0:0]
	for _, kr := range s.Keyrings {
		cfg.Keyrings = append(cfg.Keyrings, config.Keyring{Type: kr.Type, Accounts: append([]string(nil), kr.Accounts...)})
	}
	cfg.SelectedAddress = s.SelectedAddress
	return cfg
}

// -------------------- MODEL HELPER METHODS --------------------
// These methods help with state management and command generation

// addLog adds a log entry with timestamp and type
func (m *model) addLog(logType, message string) {
	if !m.logEnabled || !m.logReady || m.logger == nil {
		return
	}

	switch logType {
	case "info":
		m.logger.Info(message)
	case "success":
		m.logger.Info("✓", "msg", message)
	case "error":
		m.logger.Error(message)
	case "warning":
		m.logger.Warn(message)
	case "debug":
		m.logger.Debug(message)
	default:
		m.logger.Print(message)
	}

	m.updateLogViewport()
}

// updateLogViewport refreshes the viewport content with log output
func (m *model) updateLogViewport() {
	if !m.logReady || m.logBuffer == nil {
		return
	}
	m.logViewport.SetContent(m.logBuffer.String())
	m.logViewport.GotoBottom()
}

// saveConfig writes the config file, logging failures
func (m *model) saveConfig() {
	m.cfg = accountsToConfig(m.cfg, m.state)
	m.cfg.Logger = m.logEnabled
	if err := config.Save(m.configPath, m.cfg); err != nil {
		m.addLog("error", "Saving config failed: "+err.Error())
	}
}

// dispatch applies actions to the store and runs their side effects
func (m *model) dispatch(actions ...store.Action) tea.Cmd {
	if len(actions) == 0 {
		return nil
	}
	prev := m.state
	m.state = m.store.Dispatch(actions...)

	var cmds []tea.Cmd
	for _, a := range actions {
		if a == nil {
			continue
		}
		m.addLog("debug", "action "+a.Type())

		switch a := a.(type) {
		case store.SendTransactionAction:
			m.addLog("success", fmt.Sprintf("Approved transaction %s", a.Meta.ID))
			m.showTxResultPanel = true
			m.txResultPackaging = true
			m.txResultID = a.Meta.ID
			m.txResult = rpc.TxPackage{}
			m.txResultError = ""
			m.txCopiedMsg = ""
			cmds = append(cmds, packageTransaction(m.ethClient, a.Meta, m.chainID))
		case store.CancelTransactionAction:
			m.addLog("warning", fmt.Sprintf("Rejected transaction %s", a.ID))
		case store.CancelAllTransactionsAction:
			m.addLog("warning", fmt.Sprintf("Rejected %d transactions", len(a.IDs)))
		case store.AddAccountAction:
			m.addLog("success", fmt.Sprintf("Added account %s (%s)", a.Name, helpers.ShortenAddr(a.Address)))
		case store.DisplayWarningAction:
			m.addLog("warning", a.Message)
		}
	}

	if prev.SelectedAddress != m.state.SelectedAddress ||
		(prev.CurrentView.Name != store.ViewAccountDetail && m.state.CurrentView.Name == store.ViewAccountDetail) {
		m.tabs = m.newTabs()
		cmds = append(cmds, m.loadSelectedDetails())
	}

	m.pending = m.pending.Sync(pendingtx.PropsFromState(m.state, m.notification))
	if m.state.CurrentView.Name != store.ViewAccountDetail {
		m.dropdowns = m.dropdowns.Close()
	}
	m.openAccountForm(prev)

	// a notification window closes once nothing is left to confirm
	if m.notification && len(prev.UnapprovedTxs) > 0 && len(m.state.UnapprovedTxs) == 0 && !m.showTxResultPanel {
		cmds = append(cmds, m.quit())
	}
	return tea.Batch(cmds...)
}

// openAccountForm creates the create/import form when the view switches to
// one of them.
func (m *model) openAccountForm(prev store.State) {
	name := m.state.CurrentView.Name
	if name == prev.CurrentView.Name && m.accountForm != nil {
		return
	}
	switch name {
	case store.ViewNewAccount:
		hd := 0
		for _, kr := range m.state.Keyrings {
			if kr.Type == store.KeyringTypeHD {
				hd += len(kr.Accounts)
			}
		}
		f := accountform.NewCreate(m.state.AccountAddresses(), hd)
		m.accountForm = &f
	case store.ViewImportAccount:
		f := accountform.NewImport(m.state.AccountAddresses())
		m.accountForm = &f
	default:
		m.accountForm = nil
	}
}

// quit stops the queue watcher and exits
func (m *model) quit() tea.Cmd {
	m.queueCancel()
	return tea.Quit
}

// loadSelectedDetails loads token balances of the selected account
func (m *model) loadSelectedDetails() tea.Cmd {
	addr := m.state.SelectedAddress
	if addr == "" || !m.rpcConnected {
		return nil
	}
	m.loading = true
	m.details = rpc.AccountDetails{Address: addr}
	return loadDetails(m.ethClient, common.HexToAddress(addr), m.tokens)
}

// refreshChain reloads node state and balances
func (m *model) refreshChain() tea.Cmd {
	if !m.rpcConnected {
		return nil
	}
	return tea.Batch(
		loadChainState(m.ethClient),
		loadBalances(m.ethClient, m.state.AccountAddresses()),
		m.loadSelectedDetails(),
	)
}

// queueDefaults fills sender and gas price of queue entries that omit them
func (m *model) queueDefaults() txqueue.Defaults {
	d := txqueue.Defaults{From: m.state.SelectedAddress}
	if m.gasPrice != nil {
		d.GasPrice = helpers.BigToHex(m.gasPrice)
	}
	return d
}

// newQueuedMetas converts queue entries, skipping ones already queued or
// processed.
func (m *model) newQueuedMetas(reqs []txqueue.Request) ([]store.TransactionMeta, error) {
	metas, err := txqueue.Metas(reqs, m.queueDefaults(), time.Now())
	seen := make(map[string]bool, len(m.state.UnapprovedTxs)+len(m.state.History))
	for _, tx := range m.state.UnapprovedTxs {
		seen[tx.ID] = true
	}
	for _, h := range m.state.History {
		seen[h.Meta.ID] = true
	}
	fresh := metas[:0]
	for _, meta := range metas {
		if !seen[meta.ID] {
			seen[meta.ID] = true
			fresh = append(fresh, meta)
		}
	}
	return fresh, err
}

// switchNetwork activates the network at idx and reconnects
func (m *model) switchNetwork(idx int) tea.Cmd {
	if idx < 0 || idx >= len(m.cfg.Networks) {
		return nil
	}
	m.cfg = m.cfg.SetActiveNetwork(idx)
	m.saveConfig()
	n := m.cfg.Networks[idx]
	m.rpcURL = strings.TrimSpace(n.URL)
	if m.ethClient != nil {
		m.ethClient.Close()
	}
	m.ethClient = nil
	m.rpcConnected = false
	m.rpcConnecting = true
	m.chainID = nil
	var network string
	if n.ChainID > 0 {
		network = big.NewInt(n.ChainID).String()
	}
	m.addLog("info", fmt.Sprintf("Switching to %s", n.Name))
	return tea.Batch(
		m.dispatch(store.UpdateNetworkAction{Network: network, Provider: store.Provider{Type: "rpc", RPCTarget: n.URL, Nickname: n.Name}}),
		connectRPC(m.rpcURL),
	)
}

// textInputActive returns true if any text input is currently active
func (m *model) textInputActive() bool {
	if m.accountForm != nil || m.form != nil || m.menuOpen {
		return true
	}
	if m.state.CurrentView.Name == store.ViewConfTx {
		f := m.pending.Focus()
		return f == pendingtx.FieldGasLimit || f == pendingtx.FieldGasPrice
	}
	return false
}
