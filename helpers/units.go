package helpers

import (
	"errors"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/shopspring/decimal"
)

// GweiDecimals is the number of wei decimals in one gwei.
const GweiDecimals = 9

// ErrEmptyAmount is returned when an amount field has no digits.
var ErrEmptyAmount = errors.New("empty amount")

// HexToBig parses a hex-encoded quantity. The 0x prefix is optional and an
// empty, signed or unparseable string is zero, matching how pending tx
// params are treated before the user edits them.
func HexToBig(s string) *big.Int {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if !unsignedDigits(s) {
		return new(big.Int)
	}
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return new(big.Int)
	}
	return n
}

// unsignedDigits reports whether s is non-empty and carries no sign.
func unsignedDigits(s string) bool {
	return s != "" && s[0] != '-' && s[0] != '+'
}

// BigToHex encodes n as a 0x-prefixed quantity. nil encodes as 0x0.
func BigToHex(n *big.Int) string {
	if n == nil {
		return "0x0"
	}
	return hexutil.EncodeBig(n)
}

// ParseQuantity reads a non-negative integer written either as 0x-prefixed
// hex or as a decimal number. ok is false for anything else.
func ParseQuantity(s string) (*big.Int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		if !unsignedDigits(s[2:]) {
			return nil, false
		}
		n, ok := new(big.Int).SetString(s[2:], 16)
		return n, ok
	}
	if s[0] < '0' || s[0] > '9' {
		return nil, false
	}
	n, ok := new(big.Int).SetString(s, 10)
	return n, ok
}

// ParseUnits converts a decimal string such as "1.5" into an integer amount
// scaled by 10^decimals. Digits beyond the scale are truncated.
func ParseUnits(s string, decimals int32) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmptyAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, err
	}
	if d.IsNegative() {
		return nil, errors.New("negative amount")
	}
	return d.Shift(decimals).Truncate(0).BigInt(), nil
}

// FormatUnits renders an integer amount scaled by 10^decimals with at most
// precision fractional digits, trailing zeros trimmed.
func FormatUnits(n *big.Int, decimals int32, precision int32) string {
	if n == nil {
		return "0"
	}
	return decimal.NewFromBigInt(n, -decimals).Truncate(precision).String()
}

// FormatFiat converts a wei amount to currency using rate (currency per ETH).
func FormatFiat(wei *big.Int, rate float64, currency string) string {
	if wei == nil || rate <= 0 {
		return ""
	}
	eth := decimal.NewFromBigInt(wei, -18)
	value := eth.Mul(decimal.NewFromFloat(rate))
	return value.StringFixed(2) + " " + strings.ToUpper(currency)
}
