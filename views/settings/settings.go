package settings

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"nifty-wallet-tui/config"
	"nifty-wallet-tui/helpers"
	"nifty-wallet-tui/styles"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Modes of the networks screen.
const (
	ModeList = "list"
	ModeAdd  = "add"
	ModeEdit = "edit"
	// ModeCurrency edits the display currency and its rate.
	ModeCurrency = "currency"
)

// Temporary form field storage (package-level to avoid pointer-to-copy issues)
var (
	tempName     string
	tempURL      string
	tempChainID  string
	tempCurrency string
	tempRate     string
)

// Nav returns the navigation bar for settings view
func Nav(width int, mode string) string {
	var left string
	if mode == ModeAdd || mode == ModeEdit || mode == ModeCurrency {
		left = strings.Join([]string{
			styles.Key("Tab") + " next field",
			styles.Key("Enter") + " save",
			styles.Key("Esc") + " cancel",
		}, "   ")
	} else {
		left = strings.Join([]string{
			styles.Key("↑/↓") + " select",
			styles.Key("Enter") + " activate",
			styles.Key("a") + " add",
			styles.Key("e") + " edit",
			styles.Key("d") + " delete",
			styles.Key("c") + " currency",
			styles.Key("l") + " debug log",
			styles.Key("Esc") + " back",
		}, "   ")
	}

	return styles.NavStyle.Width(width).Render(left)
}

// Render renders the networks view
func Render(networks []config.Network, selectedIdx int, currency string, rate float64) string {
	h := styles.TitleStyle.Render("Networks")

	lines := []string{h, ""}
	lines = append(lines, styles.MutedStyle.Render("Currency: ")+strings.ToUpper(currency)+
		styles.MutedStyle.Render("  rate: ")+formatRate(rate), "")

	if len(networks) == 0 {
		lines = append(lines, styles.MutedStyle.Render("No networks configured."))
		lines = append(lines, "")
		lines = append(lines, styles.MutedStyle.Render("Press ")+styles.Key("a")+styles.MutedStyle.Render(" to add your first RPC endpoint."))
		return strings.Join(lines, "\n")
	}

	lines = append(lines, styles.MutedStyle.Render("Configured RPC Endpoints:"), "")

	for i, n := range networks {
		var marker string
		if n.Active {
			marker = lipgloss.NewStyle().Foreground(styles.CAccent).Render("● ")
		} else {
			marker = styles.MutedStyle.Render("○ ")
		}

		nameStyle := lipgloss.NewStyle().Foreground(styles.CText)
		urlStyle := lipgloss.NewStyle().Foreground(styles.CMuted)

		if i == selectedIdx {
			nameStyle = nameStyle.Background(styles.CPanel).Foreground(styles.CAccent2).Bold(true)
			urlStyle = urlStyle.Background(styles.CPanel)
			marker = lipgloss.NewStyle().Foreground(styles.CAccent2).Render("▶ ")
		}

		line := marker + nameStyle.Render(n.Name)
		if n.ChainID > 0 {
			line += "  " + styles.MutedStyle.Render(helpers.NetworkName(strconv.FormatInt(n.ChainID, 10), ""))
		}
		lines = append(lines, line)
		lines = append(lines, "  "+urlStyle.Render(n.URL))
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// ValidateURL accepts http(s) and ws(s) endpoints.
func ValidateURL(s string) error {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil || u.Host == "" {
		return errors.New("enter a full URL (https://...)")
	}
	switch u.Scheme {
	case "http", "https", "ws", "wss":
		return nil
	}
	return fmt.Errorf("unsupported scheme %q", u.Scheme)
}

// ValidateChainID accepts an empty value or a positive integer.
func ValidateChainID(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return errors.New("chain id must be a positive number")
	}
	return nil
}

func networkForm() *huh.Form {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Network Name").
				Description("A friendly name for this RPC endpoint").
				Value(&tempName).
				Placeholder("My Node").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("name is required")
					}
					return nil
				}),

			huh.NewInput().
				Title("RPC URL").
				Description("The complete RPC URL (https://...)").
				Value(&tempURL).
				Placeholder("https://mainnet.infura.io/v3/...").
				Validate(ValidateURL),

			huh.NewInput().
				Title("Chain ID").
				Description("Optional, read from the node when empty").
				Value(&tempChainID).
				Placeholder("1").
				Validate(ValidateChainID),
		),
	).WithTheme(huh.ThemeCatppuccin())

	form.Init()
	return form
}

// CreateAddForm returns an empty network form.
func CreateAddForm() *huh.Form {
	tempName, tempURL, tempChainID = "", "", ""
	return networkForm()
}

// CreateEditForm returns a network form filled from n.
func CreateEditForm(n config.Network) *huh.Form {
	tempName, tempURL, tempChainID = n.Name, n.URL, ""
	if n.ChainID > 0 {
		tempChainID = strconv.FormatInt(n.ChainID, 10)
	}
	return networkForm()
}

// FormResult returns the network entered in the last completed form.
func FormResult() config.Network {
	n := config.Network{
		Name: strings.TrimSpace(tempName),
		URL:  strings.TrimSpace(tempURL),
	}
	if id, err := strconv.ParseInt(strings.TrimSpace(tempChainID), 10, 64); err == nil && id > 0 {
		n.ChainID = id
	}
	return n
}

func formatRate(rate float64) string {
	if rate <= 0 {
		return "not set"
	}
	return strconv.FormatFloat(rate, 'f', -1, 64)
}

// ValidateCurrency accepts a three or four letter currency code.
func ValidateCurrency(s string) error {
	s = strings.TrimSpace(s)
	if len(s) < 3 || len(s) > 4 {
		return errors.New("use a currency code such as usd")
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return errors.New("use a currency code such as usd")
		}
	}
	return nil
}

// ValidateRate accepts an empty value or a non-negative number.
func ValidateRate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	r, err := strconv.ParseFloat(s, 64)
	if err != nil || r < 0 {
		return errors.New("rate must be a positive number")
	}
	return nil
}

// CreateCurrencyForm returns a form for the display currency and its rate
// per ETH, filled with the current values.
func CreateCurrencyForm(currency string, rate float64) *huh.Form {
	tempCurrency = currency
	tempRate = ""
	if rate > 0 {
		tempRate = strconv.FormatFloat(rate, 'f', -1, 64)
	}
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Currency").
				Description("Fiat amounts are shown in this currency").
				Value(&tempCurrency).
				Placeholder("usd").
				Validate(ValidateCurrency),

			huh.NewInput().
				Title("Rate").
				Description("Price of one ETH, empty hides fiat amounts").
				Value(&tempRate).
				Placeholder("3000").
				Validate(ValidateRate),
		),
	).WithTheme(huh.ThemeCatppuccin())

	form.Init()
	return form
}

// CurrencyResult returns the currency and rate entered in the last
// completed currency form.
func CurrencyResult() (string, float64) {
	rate, err := strconv.ParseFloat(strings.TrimSpace(tempRate), 64)
	if err != nil || rate < 0 {
		rate = 0
	}
	return strings.ToLower(strings.TrimSpace(tempCurrency)), rate
}
