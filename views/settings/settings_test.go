package settings

import (
	"testing"

	"nifty-wallet-tui/config"

	"github.com/stretchr/testify/assert"
)

func TestValidateURL(t *testing.T) {
	for _, ok := range []string{"https://rpc.example.org", "http://localhost:8545", "wss://node/ws"} {
		assert.NoError(t, ValidateURL(ok), ok)
	}
	for _, bad := range []string{"", "localhost", "ftp://x.org"} {
		assert.Error(t, ValidateURL(bad), bad)
	}
}

func TestValidateChainID(t *testing.T) {
	assert.NoError(t, ValidateChainID(""))
	assert.NoError(t, ValidateChainID("77"))
	assert.Error(t, ValidateChainID("0"))
	assert.Error(t, ValidateChainID("x"))
}

func TestEditFormRoundTrip(t *testing.T) {
	n := config.Network{Name: "Sokol", URL: "https://sokol.example", ChainID: 77}
	assert.NotNil(t, CreateEditForm(n))
	assert.Equal(t, n, FormResult())

	CreateAddForm()
	assert.Equal(t, config.Network{}, FormResult())
}

func TestRender(t *testing.T) {
	out := Render([]config.Network{
		{Name: "Main", URL: "https://a", ChainID: 1, Active: true},
		{Name: "Sokol", URL: "https://b", ChainID: 77},
	}, 1, "eur", 2500)
	assert.Contains(t, out, "Main Ethereum Network")
	assert.Contains(t, out, "POA Sokol Test Network")
	assert.Contains(t, out, "https://b")

	assert.Contains(t, out, "EUR")
	assert.Contains(t, out, "2500")

	assert.Contains(t, Render(nil, 0, "usd", 0), "No networks configured")
}

func TestValidateCurrency(t *testing.T) {
	assert.NoError(t, ValidateCurrency("usd"))
	assert.NoError(t, ValidateCurrency("EUR"))
	assert.Error(t, ValidateCurrency(""))
	assert.Error(t, ValidateCurrency("u$d"))
}

func TestValidateRate(t *testing.T) {
	assert.NoError(t, ValidateRate(""))
	assert.NoError(t, ValidateRate("2500.5"))
	assert.Error(t, ValidateRate("-1"))
	assert.Error(t, ValidateRate("lots"))
}

func TestCurrencyFormRoundTrip(t *testing.T) {
	assert.NotNil(t, CreateCurrencyForm("eur", 2500))
	cur, rate := CurrencyResult()
	assert.Equal(t, "eur", cur)
	assert.Equal(t, 2500.0, rate)

	CreateCurrencyForm("USD", 0)
	cur, rate = CurrencyResult()
	assert.Equal(t, "usd", cur)
	assert.Equal(t, 0.0, rate)
}
