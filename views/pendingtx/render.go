package pendingtx

import (
	"fmt"
	"math/big"
	"strings"

	"nifty-wallet-tui/helpers"
	"nifty-wallet-tui/store"
	"nifty-wallet-tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// Labels of the form buttons.
const (
	LabelReset       = "Reset"
	LabelSubmit      = "Submit"
	LabelBuyEther    = "Buy Ether"
	LabelReject      = "Reject"
	LabelRejectAll   = "Reject All"
	LabelNewContract = "New Contract"
)

var (
	arrowStyle    = lipgloss.NewStyle().Foreground(styles.CAccent2).Bold(true)
	arrowOffStyle = lipgloss.NewStyle().Foreground(styles.CMuted).Faint(true)
	partyStyle    = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(styles.CBorder).
			Padding(0, 1).
			Width(30)
	valueStyle = lipgloss.NewStyle().Foreground(styles.CText)
	fiatStyle  = lipgloss.NewStyle().Foreground(styles.CMuted).Italic(true)
)

func arrow(glyph string, enabled bool) string {
	if enabled {
		return arrowStyle.Render(glyph)
	}
	return arrowOffStyle.Render(glyph)
}

// header draws the back arrow, the queue position and the network indicator.
func header(p Props) string {
	var parts []string
	if !p.Notification {
		parts = append(parts, arrowStyle.Render("←"))
	}
	parts = append(parts, styles.TitleStyle.Render("Confirm Transaction"))

	if len(p.UnapprovedTxs) > 1 {
		counter := fmt.Sprintf("%s %d of %d %s",
			arrow("◀", p.HasPrevious()),
			p.Index+1, len(p.UnapprovedTxs),
			arrow("▶", p.HasNext()),
		)
		parts = append(parts, counter)
	}
	if p.Notification {
		parts = append(parts, styles.MutedStyle.Render("● "+helpers.NetworkName(p.Network, p.Provider.Nickname)))
	}
	return strings.Join(parts, "   ")
}

func party(title, name, address string) string {
	body := styles.MutedStyle.Render(title) + "\n" +
		valueStyle.Bold(true).Render(name)
	if address != "" {
		body += "\n" + helpers.FadeString(helpers.AddressSummary(address, 6, 4, true), "#F25D94", "#EDFF82")
	}
	return partyStyle.Render(body)
}

// parties draws the sender and recipient panels side by side.
func parties(p Props, sender string, tx store.TxParams) string {
	from := party("From", helpers.AccountSummary(p.Identity(sender).Name, 6, 4), sender)

	var recipient string
	switch {
	case IsContractDeploy(tx):
		recipient = party("To", LabelNewContract, "")
	default:
		to := *tx.To
		name := p.Identity(to).Name
		if name == "" {
			name = helpers.AddressSummary(to, 6, 4, true)
		}
		recipient = party("To", helpers.AccountSummary(name, 6, 4), to)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, from, "  →  ", recipient)
}

func row(label, value string) string {
	return styles.LabelStyle.Render(label) + value
}

func amount(p Props, wei *big.Int) string {
	out := valueStyle.Render(helpers.FormatETH(wei))
	if fiat := helpers.FormatFiat(wei, p.ConversionRate, p.CurrentCurrency); fiat != "" {
		out += "  " + fiatStyle.Render(fiat)
	}
	return out
}

func input(view string, valid bool, unit string) string {
	out := view + " " + styles.MutedStyle.Render(unit)
	if !valid {
		out += "  " + styles.WarnStyle.Render("out of range")
	}
	return out
}

// View renders the confirmation form for the current transaction.
func View(p Props, m Model) string {
	meta, ok := m.TxMeta(p)
	if !ok {
		return header(p) + "\n\n" + styles.MutedStyle.Render("No pending transactions.")
	}
	a := Assess(meta, p.Env(meta))

	lines := []string{header(p), "", parties(p, p.Sender(meta), meta.TxParams), ""}

	if errs := a.Errors(); len(errs) > 0 {
		lines = append(lines, styles.ErrorBannerStyle.Render(strings.Join(errs, "\n")), "")
	}

	lines = append(lines,
		row("Amount", amount(p, a.Value)),
		row("Gas Limit", input(m.gasInput.View(), m.gasValid, "UNITS")),
		row("Gas Price", input(m.priceInput.View(), m.priceValid, "GWEI")),
		row("Max Transaction Fee", amount(p, a.TxFee)),
		row("Max Total", amount(p, a.MaxCost)),
		row("Data included", styles.MutedStyle.Render(fmt.Sprintf("%d bytes", a.DataLength))),
		"",
	)

	submitLabel := LabelSubmit
	submitDisabled := a.SubmitDisabled(m.Valid(), m.submitting)
	if a.InsufficientBalance {
		submitLabel = LabelBuyEther
		submitDisabled = false
	}
	buttons := []string{
		styles.Button(LabelReset, m.focus == FieldReset, false),
		styles.Button(submitLabel, m.focus == FieldSubmit, submitDisabled),
		styles.Button(LabelReject, m.focus == FieldReject, false),
	}
	if p.ShowRejectAll() {
		buttons = append(buttons, styles.Button(LabelRejectAll, m.focus == FieldRejectAll, false))
	}
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, buttons...))

	if p.Warning != "" {
		lines = append(lines, "", styles.WarnStyle.Render("⚠ "+p.Warning))
	}
	return strings.Join(lines, "\n")
}

// Nav returns the navigation bar for the confirmation form.
func Nav(width int, notification bool) string {
	keys := []string{
		styles.Key("Tab") + " next field",
		styles.Key("Enter") + " press",
		styles.Key("[/]") + " prev/next tx",
		styles.Key("Ctrl+R") + " reset",
		styles.Key("Ctrl+X") + " reject",
	}
	if !notification {
		keys = append(keys, styles.Key("Esc")+" back")
	}
	return styles.NavStyle.Width(width).Render(strings.Join(keys, "   "))
}
