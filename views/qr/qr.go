package qr

import (
	"strings"

	"nifty-wallet-tui/helpers"
	"nifty-wallet-tui/store"
	"nifty-wallet-tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// Render shows the QR code of the account address with its caption.
func Render(data store.QRData) string {
	h := styles.TitleStyle.Render("Account QR Code")
	if data.Data == "" {
		return h + "\n\n" + styles.MutedStyle.Render("No address selected.")
	}

	addr := helpers.ChecksumAddress(data.Data)
	lines := []string{h, ""}
	if data.Message != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(styles.CAccent2).Bold(true).Render(data.Message), "")
	}
	lines = append(lines,
		helpers.GenerateQRCode(addr),
		helpers.FadeString(addr, "#7D5AFC", "#FF87D7"),
	)
	return strings.Join(lines, "\n")
}

// Nav returns the navigation bar for the QR view
func Nav(width int) string {
	left := strings.Join([]string{
		styles.Key("c") + " copy address",
		styles.Key("l") + " logger",
		styles.Key("Esc") + " back",
	}, "   ")
	return styles.NavStyle.Width(width).Render(left)
}
