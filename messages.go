package main

import (
	"nifty-wallet-tui/rpc"
	"nifty-wallet-tui/store"
	"nifty-wallet-tui/txqueue"
)

// -------------------- TEA MESSAGES --------------------
// All custom message types for The Elm Architecture

// clipboardCopiedMsg indicates clipboard copy completed
type clipboardCopiedMsg struct {
	what string
	err  error
}

// clearCopiedMsg clears clipboard feedback after a delay
type clearCopiedMsg struct{}

// urlOpenedMsg reports the result of handing a URL to the browser
type urlOpenedMsg struct {
	url string
	err error
}

// logInitMsg signals that log viewport should be initialized
type logInitMsg struct{}

// rpcConnectedMsg contains result of RPC connection attempt
type rpcConnectedMsg struct {
	client *rpc.Client
	err    error
}

// chainStateMsg carries chain id, block gas limit and gas price
type chainStateMsg struct {
	cs  rpc.ChainState
	err error
}

// balancesLoadedMsg carries ETH balances of every known account
type balancesLoadedMsg struct {
	accounts map[string]store.Account
	err      error
}

// detailsLoadedMsg contains token balances of the selected account
type detailsLoadedMsg struct {
	d rpc.AccountDetails
}

// simulationMsg reports whether a queued transaction would fail
type simulationMsg struct {
	id    string
	gas   uint64
	fails bool
	err   error
}

// queueLoadedMsg carries the current contents of the queue file
type queueLoadedMsg struct {
	reqs      []txqueue.Request
	fromWatch bool
	err       error
}

// queueWatchStoppedMsg is sent when the queue watcher exits
type queueWatchStoppedMsg struct {
	err error
}

// packageTransactionMsg contains packaged transaction ready for QR display
type packageTransactionMsg struct {
	id  string
	pkg rpc.TxPackage
	err error
}
