package main

import (
	"context"
	"math/big"
	"strings"

	"nifty-wallet-tui/config"
	"nifty-wallet-tui/rpc"
	"nifty-wallet-tui/store"
	"nifty-wallet-tui/styles"
	"nifty-wallet-tui/views/accountform"
	"nifty-wallet-tui/views/accounts"
	"nifty-wallet-tui/views/details"
	"nifty-wallet-tui/views/pendingtx"
	"nifty-wallet-tui/views/settings"
	"nifty-wallet-tui/views/tabbar"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/ethereum/go-ethereum/common"
)

// -------------------- MODEL --------------------

// options are the command line settings the model starts from
type options struct {
	configPath   string
	queuePath    string
	notification bool
	debug        bool
	currency     string
	rate         float64
}

// model represents the application state following The Elm Architecture
type model struct {
	w, h int

	// shared wallet state
	store *store.Store
	state store.State

	// config
	cfg        config.Config
	configPath string

	// chain
	rpcURL        string
	ethClient     *rpc.Client
	rpcConnected  bool
	rpcConnecting bool
	chainID       *big.Int
	gasPrice      *big.Int

	// unapproved transaction queue
	queuePath    string
	queueEvents  chan tea.Msg
	queueCtx     context.Context
	queueCancel  context.CancelFunc
	notification bool

	// header dropdowns
	dropdowns   accounts.State
	toggleY     int
	selectorX   int
	optionsX    int
	popoverTop  int
	popoverLeft int
	popoverW    int
	popoverH    int
	popoverRows []accounts.Row

	// confirmation form
	pending pendingtx.Model

	// account screen
	tabs      tabbar.Model
	tabBarY   int
	spin      spinner.Model
	loading   bool
	details   rpc.AccountDetails
	tokens    []rpc.WatchedToken
	copiedMsg string

	// home menu overlay
	menuOpen bool
	homeForm *huh.Form

	// create/import account form
	accountForm *accountform.Form

	// networks screen
	settingsMode   string
	selectedNetIdx int
	form           *huh.Form

	// transaction result panel
	showTxResultPanel bool
	txResultPackaging bool
	txResultID        string
	txResult          rpc.TxPackage
	txResultError     string
	txCopiedMsg       string

	// logger panel
	logEnabled  bool
	logLevel    log.Level
	logger      *log.Logger
	logBuffer   *strings.Builder
	logViewport viewport.Model
	logReady    bool
	logSpinner  spinner.Model
}

// -------------------- INIT --------------------

// initialState seeds the store from the saved config.
func initialState(cfg config.Config) store.State {
	s := store.NewState()
	for _, id := range cfg.Identities {
		s.Identities[id.Address] = store.Identity{Address: id.Address, Name: id.Name}
	}
	for _, kr := range cfg.Keyrings {
		s.Keyrings = append(s.Keyrings, store.Keyring{Type: kr.Type, Accounts: append([]string(nil), kr.Accounts...)})
	}
	s.SelectedAddress = cfg.SelectedAddress
	if s.SelectedAddress == "" {
		if addrs := s.AccountAddresses(); len(addrs) > 0 {
			s.SelectedAddress = addrs[0]
		}
	}
	s.CurrentView.Context = s.SelectedAddress

	s.CurrentCurrency = cfg.Currency
	s.ConversionRate = cfg.ConversionRate

	if n, ok := cfg.ActiveNetwork(); ok {
		s.Provider = store.Provider{Type: "rpc", RPCTarget: n.URL, Nickname: n.Name}
		if n.ChainID > 0 {
			s.Network = big.NewInt(n.ChainID).String()
		}
	}
	return s
}

// rateOverride returns the conversion update asked for on the command line,
// or nil when neither --currency nor --rate was given.
func rateOverride(s store.State, opts options) store.Action {
	if opts.currency == "" && opts.rate <= 0 {
		return nil
	}
	cur, rate := s.CurrentCurrency, s.ConversionRate
	if opts.currency != "" {
		cur = strings.ToLower(opts.currency)
	}
	if opts.rate > 0 {
		rate = opts.rate
	}
	return store.UpdateConversionRate(cur, rate)
}

// watchedTokens converts the configured ERC20 list for the rpc package.
func watchedTokens(coins []config.WatchedCoin) []rpc.WatchedToken {
	out := make([]rpc.WatchedToken, 0, len(coins))
	for _, c := range coins {
		if !common.IsHexAddress(c.Address) {
			continue
		}
		out = append(out, rpc.WatchedToken{Symbol: c.Symbol, Decimals: c.Decimals, Address: common.HexToAddress(c.Address)})
	}
	return out
}

// newModel creates and initializes a new model from the loaded config
func newModel(cfg config.Config, opts options) model {
	st := store.New(initialState(cfg))
	if a := rateOverride(st.State(), opts); a != nil {
		st.Dispatch(a)
	}

	sp := spinner.New()
	sp.Spinner = spinner.Line
	sp.Style = lipgloss.NewStyle().Foreground(styles.CAccent2)

	vp := viewport.New(0, 20) // resized on first WindowSizeMsg
	vp.Style = lipgloss.NewStyle().
		Foreground(styles.CText).
		Background(styles.CPanel)

	logSpin := spinner.New()
	logSpin.Spinner = spinner.Dot
	logSpin.Style = lipgloss.NewStyle().Foreground(styles.CAccent2)

	var rpcURL string
	if n, ok := cfg.ActiveNetwork(); ok {
		rpcURL = strings.TrimSpace(n.URL)
	}

	level := log.InfoLevel
	if opts.debug {
		level = log.DebugLevel
	}

	ctx, cancel := context.WithCancel(context.Background())

	m := model{
		store:        st,
		state:        st.State(),
		cfg:          cfg,
		configPath:   opts.configPath,
		rpcURL:       rpcURL,
		queuePath:    opts.queuePath,
		queueEvents:  make(chan tea.Msg, 8),
		queueCtx:     ctx,
		queueCancel:  cancel,
		notification: opts.notification,
		pending:      pendingtx.New(),
		spin:         sp,
		tokens:       watchedTokens(cfg.Tokens),
		settingsMode: settings.ModeList,
		tabBarY:      -1,
		logEnabled:   cfg.Logger || opts.debug,
		logLevel:     level,
		logBuffer:    &strings.Builder{},
		logViewport:  vp,
		logSpinner:   logSpin,
	}
	m.tabs = m.newTabs()
	return m
}

// newTabs builds a fresh tab bar whose selection is mirrored into the store.
func (m *model) newTabs() tabbar.Model {
	st := m.store
	return details.NewTabs(func(key string) {
		st.Dispatch(store.SetAccountSubview(key))
	})
}

// Init implements tea.Model interface and returns initial commands
func (m *model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spin.Tick}
	if m.logEnabled {
		cmds = append(cmds, initLogViewport(), m.logSpinner.Tick)
	}
	if m.rpcURL != "" {
		m.rpcConnecting = true
		cmds = append(cmds, connectRPC(m.rpcURL))
	}
	if m.queuePath != "" {
		cmds = append(cmds,
			loadQueue(m.queuePath),
			watchQueue(m.queueCtx, m.queuePath, m.queueEvents),
			waitForQueue(m.queueEvents),
		)
	}
	return tea.Batch(cmds...)
}
