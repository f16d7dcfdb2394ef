package helpers

import (
	"image/color"
	"math/big"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/ethereum/go-ethereum/common"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/gamut"
)

// ShortenAddr shortens an Ethereum address for display
func ShortenAddr(addr string) string {
	if len(addr) < 10 {
		return addr
	}
	return addr[:6] + "…" + addr[len(addr)-4:]
}

// AddressSummary renders the first and last characters of an address around
// an ellipsis. includeHex keeps the 0x prefix.
func AddressSummary(addr string, firstSegLength, lastSegLength int, includeHex bool) string {
	if addr == "" {
		return ""
	}
	checked := ChecksumAddress(addr)
	if !includeHex {
		checked = strings.TrimPrefix(checked, "0x")
	}
	if len(checked) <= firstSegLength+lastSegLength {
		return checked
	}
	return checked[:firstSegLength] + "..." + checked[len(checked)-lastSegLength:]
}

// AccountSummary shortens a long account name the same way AddressSummary
// shortens addresses.
func AccountSummary(name string, firstSegLength, lastSegLength int) string {
	if name == "" {
		return ""
	}
	runes := []rune(name)
	if len(runes) <= firstSegLength+lastSegLength+3 {
		return name
	}
	return string(runes[:firstSegLength]) + "..." + string(runes[len(runes)-lastSegLength:])
}

// IsValidEthAddress checks if a string is a valid Ethereum address. The 0x
// prefix is optional. Mixed-case input must carry a valid EIP-55 checksum.
func IsValidEthAddress(s string) bool {
	prefixed := s
	if !strings.HasPrefix(prefixed, "0x") && !strings.HasPrefix(prefixed, "0X") {
		prefixed = "0x" + prefixed
	}
	if !common.IsHexAddress(prefixed) {
		return false
	}
	body := prefixed[2:]
	if body == strings.ToLower(body) || body == strings.ToUpper(body) {
		return true
	}
	return common.HexToAddress(prefixed).Hex() == "0x"+body
}

// ChecksumAddress returns the EIP-55 form of addr, or "" for an empty input.
func ChecksumAddress(addr string) string {
	if addr == "" {
		return ""
	}
	return common.HexToAddress(addr).Hex()
}

// FormatETH formats Wei to ETH with proper decimals
func FormatETH(wei *big.Int) string {
	if wei == nil {
		return "0 ETH"
	}
	return FormatUnits(wei, 18, 6) + " ETH"
}

// FormatToken formats token balance with proper decimals
func FormatToken(balance *big.Int, decimals uint8, symbol string) string {
	if balance == nil {
		return "0 " + symbol
	}
	return FormatUnits(balance, int32(decimals), 4) + " " + symbol
}

// LoadedAt formats the loaded timestamp
func LoadedAt(t time.Time, loading bool) string {
	if loading {
		return "loading…"
	}
	if t.IsZero() {
		return "never"
	}
	return t.Format("15:04:05")
}

// FadeString creates a gradient colored string
func FadeString(s string, firstColor string, lastColor string) string {
	n := len([]rune(s))
	if n == 0 {
		return s
	}
	blends := gamut.Blends(lipgloss.Color(firstColor), lipgloss.Color(lastColor), n)
	return rainbow(lipgloss.NewStyle(), s, blends)
}

func rainbow(baseStyle lipgloss.Style, str string, colors []color.Color) string {
	var b strings.Builder
	i := 0
	for _, c := range str {
		col, _ := colorful.MakeColor(colors[i%len(colors)])
		b.WriteString(baseStyle.Foreground(lipgloss.Color(col.Hex())).Render(string(c)))
		i++
	}
	return b.String()
}

// Max returns the maximum of two integers
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Min returns the minimum of two integers
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// ContainsAddress reports whether addresses holds addr, ignoring case and
// the 0x prefix.
func ContainsAddress(addresses []string, addr string) bool {
	want := stripHexPrefix(strings.TrimSpace(addr))
	for _, a := range addresses {
		if strings.EqualFold(stripHexPrefix(a), want) {
			return true
		}
	}
	return false
}

func stripHexPrefix(s string) string {
	return strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
}
