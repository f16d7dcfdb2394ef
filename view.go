package main

import (
	"fmt"
	"strings"

	"nifty-wallet-tui/helpers"
	"nifty-wallet-tui/store"
	"nifty-wallet-tui/views/accountform"
	"nifty-wallet-tui/views/accounts"
	"nifty-wallet-tui/views/details"
	"nifty-wallet-tui/views/home"
	logview "nifty-wallet-tui/views/log"
	"nifty-wallet-tui/views/pendingtx"
	"nifty-wallet-tui/views/qr"
	"nifty-wallet-tui/views/settings"

	"github.com/charmbracelet/lipgloss"
)

// contentX is the first column inside a full-width panel: border plus
// left padding.
const contentX = 3

// -------------------- VIEW --------------------

func (m *model) renderTxResultContent() string {
	content := titleStyle.Render("Transaction Ready To Sign") + "\n\n"

	hint := lipgloss.NewStyle().Foreground(cMuted)
	switch {
	case m.txResultPackaging:
		content += m.spin.View() + " Packaging transaction..."
	case m.txResultError != "":
		content += lipgloss.NewStyle().Foreground(cError).Bold(true).Render("Error: " + m.txResultError)
		content += "\n\n" + hint.Render("Press ESC or Enter to close")
	default:
		qrData := m.txResult.EIP681
		label := "EIP-681 Transaction URL:"
		if qrData == "" {
			qrData = m.txResult.RawHex
			label = "Unsigned Transaction (RLP):"
		}
		content += helpers.GenerateQRCode(qrData) + "\n"
		content += lipgloss.NewStyle().Foreground(cAccent).Render(label) + "\n\n"
		content += qrData
		content += "\n\n" + hint.Render("Scan the QR code with your signer to sign this transaction")
		content += "\n" + hint.Render("Click or press c to copy the JSON • u copies the URL • ESC or Enter to close")
		if m.txCopiedMsg != "" {
			content += "\n" + lipgloss.NewStyle().Foreground(cAccent).Bold(true).Render(m.txCopiedMsg)
		}
	}
	return content
}

func (m *model) renderTxResultPanel() string {
	contentWidth := max(0, m.w-8)
	centered := lipgloss.NewStyle().Width(contentWidth).Align(lipgloss.Center).Render(m.renderTxResultContent())
	content := panelStyle.Width(max(0, m.w-4)).Render(centered)
	return appStyle.Render(lipgloss.Place(
		m.w, m.h,
		lipgloss.Center, lipgloss.Center,
		content,
	))
}

// globalHeader draws the toggles, the selected account, the title and the
// network status. It records the toggle columns for mouse handling.
func (m *model) globalHeader() string {
	availableWidth := max(0, m.w-8)

	p := m.dropdownProps()
	x := contentX
	m.selectorX, m.optionsX = -1, -1
	if p.EnableAccountsSelector {
		m.selectorX = x
		x += lipgloss.Width(accounts.SelectorToggleGlyph) + 1
	}
	if p.EnableAccountOptions {
		m.optionsX = x
	}

	var left string
	if toggles := accounts.Toggles(p, m.dropdowns); toggles != "" {
		left = toggles + "  "
	}
	if addr := m.state.SelectedAddress; addr != "" {
		name := m.state.Identity(addr).Name
		if name == "" {
			name = "Unnamed"
		}
		left += lipgloss.NewStyle().Foreground(cAccent2).Bold(true).Render(helpers.AccountSummary(name, 6, 4)) +
			" " + helpers.FadeString(helpers.ShortenAddr(addr), "#F25D94", "#EDFF82")
	} else {
		left += lipgloss.NewStyle().Foreground(cMuted).Render("No account")
	}

	var statusIcon, statusText string
	statusColor := cError
	switch {
	case m.rpcURL == "":
		statusIcon, statusText = "○", "No RPC"
	case m.rpcConnecting:
		statusIcon, statusText = "○", "Connecting..."
	case !m.rpcConnected:
		statusIcon, statusText = "○", "Connection Failed"
	default:
		statusIcon, statusColor = "●", cAccent
		statusText = helpers.NetworkName(m.state.Network, m.state.Provider.Nickname)
	}
	right := lipgloss.NewStyle().Foreground(statusColor).Bold(true).Render(statusIcon + " " + statusText)
	if n := len(m.state.UnapprovedTxs); n > 0 {
		right = lipgloss.NewStyle().Foreground(cWarn).Render(fmt.Sprintf("%d pending", n)) + "  " + right
	}

	title := helpers.FadeString("nifty wallet", "#7EE787", "#82CFFD")

	total := lipgloss.Width(left) + lipgloss.Width(right) + lipgloss.Width(title)
	var headerLine string
	if total+4 > availableWidth {
		headerLine = left + "\n" + title + "\n" + right
	} else {
		remaining := availableWidth - total
		leftPad := remaining / 2
		headerLine = left + strings.Repeat(" ", max(1, leftPad)) + title + strings.Repeat(" ", max(1, remaining-leftPad)) + right
	}

	separator := lipgloss.NewStyle().Foreground(cBorder).Render(strings.Repeat("─", availableWidth))
	return headerLine + "\n" + separator
}

// page renders the current screen. tabLine is the tab bar line within
// content, -1 when there is none.
func (m *model) page() (content, nav string, tabLine int) {
	navWidth := m.w - 2
	tabLine = -1

	if m.menuOpen {
		return home.Render(m.homeForm), home.Nav(navWidth), -1
	}

	view := m.state.CurrentView.Name
	switch view {
	case store.ViewAccountDetail:
		p := details.PropsFromState(m.state)
		if strings.EqualFold(m.details.Address, m.state.SelectedAddress) {
			p.Tokens = m.details
		}
		p.Loading = m.loading
		p.CopiedMsg = m.copiedMsg
		p.Spinner = m.spin.View()
		content, tabLine = details.Render(p, &m.tabs, max(0, m.w-6))
		nav = details.Nav(navWidth, len(m.state.UnapprovedTxs))

	case store.ViewConfTx:
		p := pendingtx.PropsFromState(m.state, m.notification)
		content = pendingtx.View(p, m.pending)
		nav = pendingtx.Nav(navWidth, m.notification)

	case store.ViewNewAccount, store.ViewImportAccount:
		if m.accountForm != nil {
			content = m.accountForm.Title() + "\n\n" + m.accountForm.View()
		}
		nav = accountform.Nav(navWidth)

	case store.ViewQR:
		content = qr.Render(m.state.QR)
		nav = qr.Nav(navWidth)

	case store.ViewConfig:
		if m.settingsMode != settings.ModeList && m.form != nil {
			content = titleStyle.Render("Networks") + "\n\n" + m.form.View()
		} else {
			content = settings.Render(m.cfg.Networks, m.selectedNetIdx, m.state.CurrentCurrency, m.state.ConversionRate)
		}
		nav = settings.Nav(navWidth, m.settingsMode)
	}

	if m.state.Warning != "" && view != store.ViewConfTx {
		content += "\n\n" + lipgloss.NewStyle().Foreground(cWarn).Render("⚠ "+m.state.Warning)
	}
	if m.dropdowns.Open() {
		nav = accounts.Nav(navWidth)
	}
	return content, nav, tabLine
}

// View implements tea.Model and records click regions as it lays out
func (m *model) View() string {
	if m.showTxResultPanel {
		return m.renderTxResultPanel()
	}

	header := panelStyle.Width(max(0, m.w-2)).Render(m.globalHeader())
	// top border and padding sit above the toggles
	m.toggleY = 2
	y := lipgloss.Height(header)
	sections := []string{header}

	m.popoverRows = nil
	m.popoverW, m.popoverH = 0, 0
	if pop, rows := accounts.View(m.dropdownProps(), m.dropdowns); pop != "" {
		w := lipgloss.Width(pop)
		left := max(0, min(m.selectorX-1, m.w-w))
		m.popoverLeft, m.popoverTop = left, y
		m.popoverW, m.popoverH = w, lipgloss.Height(pop)
		m.popoverRows = rows
		sections = append(sections, lipgloss.NewStyle().MarginLeft(left).Render(pop))
		y += m.popoverH
	}

	content, nav, tabLine := m.page()
	m.tabBarY = -1
	if tabLine >= 0 {
		m.tabBarY = y + 2 + tabLine
	}
	sections = append(sections, panelStyle.Width(max(0, m.w-2)).Render(content), nav)

	if m.logEnabled {
		m.logViewport.Height = logview.PanelHeight(m.h)
		sections = append(sections, logview.Render(m.w, m.h, m.logReady, m.logSpinner.View(), m.logViewport))
	}

	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
