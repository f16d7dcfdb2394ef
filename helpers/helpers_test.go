package helpers

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortenAddr(t *testing.T) {
	assert.Equal(t, "0x1234…cdef", ShortenAddr("0x1234567890abcdef1234567890abcdef12cdef"))
	assert.Equal(t, "0x12", ShortenAddr("0x12"))
}

func TestIsValidEthAddress(t *testing.T) {
	tests := []struct {
		name string
		addr string
		want bool
	}{
		{"lowercase", "0xd8da6bf26964af9d7eed9e03e53415d37aa96045", true},
		{"checksummed", "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045", true},
		{"uppercase body", "0xD8DA6BF26964AF9D7EED9E03E53415D37AA96045", true},
		{"no prefix", "d8da6bf26964af9d7eed9e03e53415d37aa96045", true},
		{"bad checksum", "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96046", false},
		{"too short", "0xd8da6bf26964af9d7eed9e03e53415d37aa960", false},
		{"not hex", "0xzzda6bf26964af9d7eed9e03e53415d37aa96045", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEthAddress(tt.addr))
		})
	}
}

func TestChecksumAddress(t *testing.T) {
	assert.Equal(t, "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045", ChecksumAddress("0xd8da6bf26964af9d7eed9e03e53415d37aa96045"))
	assert.Equal(t, "", ChecksumAddress(""))
}

func TestAddressSummary(t *testing.T) {
	addr := "0xd8da6bf26964af9d7eed9e03e53415d37aa96045"
	assert.Equal(t, "d8dA6B...6045", AddressSummary(addr, 6, 4, false))
	assert.Equal(t, "0xd8dA...6045", AddressSummary(addr, 6, 4, true))
}

func TestAccountSummary(t *testing.T) {
	assert.Equal(t, "Account 1", AccountSummary("Account 1", 6, 4))
	assert.Equal(t, "My ver...name", AccountSummary("My very long account name", 6, 4))
}

func TestHexToBig(t *testing.T) {
	assert.Equal(t, "0", HexToBig("").String())
	assert.Equal(t, "0", HexToBig("0x").String())
	assert.Equal(t, "21000", HexToBig("0x5208").String())
	assert.Equal(t, "21000", HexToBig("5208").String())
	assert.Equal(t, "0", HexToBig("0xzz").String())
	assert.Equal(t, "0", HexToBig("0x-5208").String())
	assert.Equal(t, "0", HexToBig("-0x5208").String())
	assert.Equal(t, "0", HexToBig("+5208").String())
}

func TestBigToHex(t *testing.T) {
	assert.Equal(t, "0x5208", BigToHex(big.NewInt(21000)))
	assert.Equal(t, "0x0", BigToHex(big.NewInt(0)))
	assert.Equal(t, "0x0", BigToHex(nil))
}

func TestParseQuantity(t *testing.T) {
	n, ok := ParseQuantity("0x7a1200")
	require.True(t, ok)
	assert.Equal(t, "8000000", n.String())

	n, ok = ParseQuantity("8000000")
	require.True(t, ok)
	assert.Equal(t, "8000000", n.String())

	_, ok = ParseQuantity("")
	assert.False(t, ok)
	_, ok = ParseQuantity("-5")
	assert.False(t, ok)
	_, ok = ParseQuantity("abc")
	assert.False(t, ok)
	_, ok = ParseQuantity("0x-5208")
	assert.False(t, ok)
	_, ok = ParseQuantity("0x+1")
	assert.False(t, ok)
}

func TestParseUnits(t *testing.T) {
	n, err := ParseUnits("1.5", GweiDecimals)
	require.NoError(t, err)
	assert.Equal(t, "1500000000", n.String())

	n, err = ParseUnits("21000", 0)
	require.NoError(t, err)
	assert.Equal(t, "21000", n.String())

	n, err = ParseUnits("0.0000000019", GweiDecimals)
	require.NoError(t, err)
	assert.Equal(t, "1", n.String())

	_, err = ParseUnits("", GweiDecimals)
	assert.ErrorIs(t, err, ErrEmptyAmount)
	_, err = ParseUnits("-1", GweiDecimals)
	assert.Error(t, err)
	_, err = ParseUnits("1.2.3", GweiDecimals)
	assert.Error(t, err)
}

func TestFormatUnits(t *testing.T) {
	assert.Equal(t, "1.5", FormatUnits(big.NewInt(1500000000), GweiDecimals, 9))
	assert.Equal(t, "0", FormatUnits(nil, 18, 6))
	oneEth, _ := new(big.Int).SetString("1000000000000000000", 10)
	assert.Equal(t, "1 ETH", FormatETH(oneEth))
}

func TestFormatFiat(t *testing.T) {
	halfEth, _ := new(big.Int).SetString("500000000000000000", 10)
	assert.Equal(t, "1000.00 USD", FormatFiat(halfEth, 2000, "usd"))
	assert.Equal(t, "", FormatFiat(halfEth, 0, "usd"))
}

func TestAccountLink(t *testing.T) {
	addr := "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"
	tests := []struct {
		network string
		want    string
		name    string
	}{
		{"77", "https://sokol.poaexplorer.com/address/search/" + addr, "POA explorer"},
		{"99", "https://poaexplorer.com/address/search/" + addr, "POA explorer"},
		{"1", "https://etherscan.io/address/" + addr, "Etherscan"},
		{"3", "https://ropsten.etherscan.io/address/" + addr, "Etherscan"},
		{"1337", "", "Etherscan"},
		{"loading", "", "Etherscan"},
	}
	for _, tt := range tests {
		t.Run(tt.network, func(t *testing.T) {
			assert.Equal(t, tt.want, AccountLink(addr, tt.network))
			assert.Equal(t, tt.name, ExplorerName(tt.network))
		})
	}
}

func TestOpenURLRejectsEmpty(t *testing.T) {
	assert.Error(t, OpenURL(""))
}

func TestGenerateQRCode(t *testing.T) {
	assert.Empty(t, GenerateQRCode(""))
	assert.NotEmpty(t, GenerateQRCode("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"))
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, 3, Max(1, 3))
	assert.Equal(t, 1, Min(1, 3))
}

func TestContainsAddress(t *testing.T) {
	list := []string{"0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045", "5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"}
	assert.True(t, ContainsAddress(list, "0xD8DA6BF26964AF9D7EED9E03E53415D37AA96045"))
	assert.True(t, ContainsAddress(list, "d8da6bf26964af9d7eed9e03e53415d37aa96045"))
	assert.True(t, ContainsAddress(list, " 0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed "))
	assert.False(t, ContainsAddress(list, "0xfb6916095ca1df60bb79ce92ce3ea74c37c5d359"))
	assert.False(t, ContainsAddress(nil, "0x"))
}
