package details

import (
	"fmt"
	"strings"
	"time"

	"nifty-wallet-tui/helpers"
	"nifty-wallet-tui/rpc"
	"nifty-wallet-tui/store"
	"nifty-wallet-tui/styles"
	"nifty-wallet-tui/views/tabbar"

	"github.com/charmbracelet/lipgloss"
)

// Props is what the account screen reads.
type Props struct {
	Identity        store.Identity
	Balance         string
	Network         string
	ConversionRate  float64
	CurrentCurrency string
	Subview         string
	History         []store.ProcessedTx
	Tokens          rpc.AccountDetails
	Loading         bool
	CopiedMsg       string
	Spinner         string
}

// PropsFromState selects the selected account's data.
func PropsFromState(s store.State) Props {
	return Props{
		Identity:        s.Identity(s.SelectedAddress),
		Balance:         s.Balance(s.SelectedAddress),
		Network:         s.Network,
		ConversionRate:  s.ConversionRate,
		CurrentCurrency: s.CurrentCurrency,
		Subview:         s.AccountSubview,
		History:         s.History,
	}
}

// NewTabs returns the history/tokens tab bar. onSelect receives the tab key.
func NewTabs(onSelect func(string)) tabbar.Model {
	return tabbar.New([]tabbar.Tab{
		{Key: store.SubviewHistory, Content: "History"},
		{Key: store.SubviewTokens, Content: "Tokens"},
	}, store.SubviewHistory, onSelect)
}

// Nav returns the navigation bar for details view
func Nav(width int, pending int) string {
	keys := []string{
		styles.Key("⇄/a") + " accounts",
		styles.Key("⋮/o") + " options",
		styles.Key("Tab") + " switch tab",
		styles.Key("c") + " copy address",
		styles.Key("r") + " refresh",
	}
	if pending > 0 {
		keys = append(keys, styles.Key("t")+fmt.Sprintf(" pending (%d)", pending))
	}
	keys = append(keys,
		styles.Key("m")+" menu",
		styles.Key("l")+" logger",
		styles.Key("q")+" quit",
	)
	return styles.NavStyle.Width(width).Render(strings.Join(keys, "   "))
}

// Render renders the account screen. tabLine is the line of the tab bar
// within the returned string, -1 when no tab bar is shown.
func Render(p Props, tabs *tabbar.Model, width int) (content string, tabLine int) {
	h := styles.TitleStyle.Render("Account Details")

	name := p.Identity.Name
	if name == "" {
		name = "Unnamed account"
	}
	nameLine := lipgloss.NewStyle().Foreground(styles.CAccent2).Italic(true).Render("\"" + name + "\"")

	// OSC 8 hyperlink to the explorer
	addr := helpers.ChecksumAddress(p.Identity.Address)
	addrStyle := lipgloss.NewStyle().Foreground(styles.CMuted).Underline(true)
	sub := addrStyle.Render(addr)
	if link := helpers.AccountLink(p.Identity.Address, p.Network); link != "" {
		sub = fmt.Sprintf("\x1b]8;;%s\x1b\\%s\x1b]8;;\x1b\\", link, sub)
	}
	if p.CopiedMsg != "" {
		sub += "  " + lipgloss.NewStyle().Foreground(styles.CAccent).Render(p.CopiedMsg)
	}

	wei := helpers.HexToBig(p.Balance)
	ethLine := fmt.Sprintf("%s  %s",
		lipgloss.NewStyle().Foreground(styles.CAccent2).Bold(true).Render("ETH"),
		lipgloss.NewStyle().Foreground(styles.CText).Render(helpers.FormatETH(wei)),
	)
	if fiat := helpers.FormatFiat(wei, p.ConversionRate, p.CurrentCurrency); fiat != "" {
		ethLine += "  " + styles.MutedStyle.Render(fiat)
	}

	lines := []string{h, nameLine + "  " + sub, "", ethLine, ""}

	if p.Subview == store.SubviewExport {
		lines = append(lines, exportNotice()...)
		return strings.Join(lines, "\n"), -1
	}

	tabLine = len(lines)
	lines = append(lines, tabs.View(width), "")

	switch tabs.Selected() {
	case store.SubviewTokens:
		lines = append(lines, tokenLines(p)...)
	default:
		lines = append(lines, historyLines(p.History, p.Identity.Address)...)
	}
	return strings.Join(lines, "\n"), tabLine
}

func exportNotice() []string {
	warn := lipgloss.NewStyle().Foreground(styles.CWarn).Bold(true)
	return []string{
		warn.Render("Export Private Key"),
		"",
		styles.MutedStyle.Render("This wallet only watches addresses. Private keys stay with the signer"),
		styles.MutedStyle.Render("that created them, so there is nothing to export here."),
		"",
		styles.MutedStyle.Render("Press ") + styles.Key("Esc") + styles.MutedStyle.Render(" to go back."),
	}
}

func tokenLines(p Props) []string {
	if p.Loading {
		return []string{p.Spinner + " fetching balances…"}
	}
	if p.Tokens.ErrMessage != "" {
		msg := lipgloss.NewStyle().Foreground(styles.CWarn).Render("⚠ " + p.Tokens.ErrMessage)
		hint := styles.MutedStyle.Render("Tip: set ") + lipgloss.NewStyle().Foreground(styles.CAccent).Render("ETH_RPC_URL") +
			styles.MutedStyle.Render(" then press ") + styles.Key("r") + styles.MutedStyle.Render(" to refresh.")
		return []string{msg, "", hint}
	}
	if len(p.Tokens.Tokens) == 0 {
		return []string{
			styles.MutedStyle.Render("No watched token balances found (non-zero)."),
			styles.MutedStyle.Render("Add tokens to the config file to track more."),
		}
	}

	lines := []string{styles.MutedStyle.Render("Tokens (watchlist)  " + helpers.LoadedAt(p.Tokens.LoadedAt, false))}
	for _, t := range p.Tokens.Tokens {
		row := fmt.Sprintf("%-6s  %s",
			lipgloss.NewStyle().Foreground(styles.CAccent).Render(t.Symbol),
			lipgloss.NewStyle().Foreground(styles.CText).Render(helpers.FormatToken(t.Balance, t.Decimals, t.Symbol)),
		)
		lines = append(lines, row)
	}
	return lines
}

// historyLines lists processed transactions sent from address, newest
// first.
func historyLines(history []store.ProcessedTx, address string) []string {
	var lines []string
	for i := len(history) - 1; i >= 0; i-- {
		tx := history[i]
		if !strings.EqualFold(tx.Meta.TxParams.From, address) {
			continue
		}
		lines = append(lines, historyRow(tx))
	}
	if len(lines) == 0 {
		return []string{styles.MutedStyle.Render("No transaction history.")}
	}
	return lines
}

func historyRow(tx store.ProcessedTx) string {
	status := lipgloss.NewStyle().Foreground(styles.CAccent).Render("✓ submitted")
	if tx.Status == store.StatusRejected {
		status = lipgloss.NewStyle().Foreground(styles.CError).Render("✗ rejected ")
	}

	to := "New Contract"
	if tx.Meta.TxParams.To != nil && *tx.Meta.TxParams.To != "" {
		to = helpers.AddressSummary(*tx.Meta.TxParams.To, 6, 4, true)
	}

	when := ""
	if tx.Meta.Time > 0 {
		when = time.UnixMilli(tx.Meta.Time).Format("2006-01-02 15:04")
	}

	wei := helpers.HexToBig(tx.Meta.TxParams.Value)
	value := helpers.FormatETH(wei)
	if wei.Sign() == 0 && tx.Meta.TxParams.Data != "" {
		value = "contract call"
	}
	return fmt.Sprintf("%s  %s  → %s  %s", status, styles.MutedStyle.Render(when), to, value)
}
