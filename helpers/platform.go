package helpers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mdp/qrterminal/v3"
	"github.com/pkg/browser"
)

// GenerateQRCode renders data as a half-block terminal QR code
func GenerateQRCode(data string) string {
	if data == "" {
		return ""
	}
	var b strings.Builder
	qrterminal.GenerateWithConfig(data, qrterminal.Config{
		Level:          qrterminal.L,
		Writer:         &b,
		HalfBlocks:     true,
		BlackChar:      qrterminal.BLACK_BLACK,
		WhiteBlackChar: qrterminal.WHITE_BLACK,
		WhiteChar:      qrterminal.WHITE_WHITE,
		BlackWhiteChar: qrterminal.BLACK_WHITE,
		QuietZone:      1,
	})
	return b.String()
}

// OpenURL opens url in the user's browser
func OpenURL(url string) error {
	if url == "" {
		return fmt.Errorf("no url to open")
	}
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	return nil
}

// Network ids with dedicated explorers.
const (
	NetworkSokol = 77
	NetworkPOA   = 99
)

// NetworkID parses a numeric network id. Non-numeric values yield 0.
func NetworkID(network string) int {
	n, err := strconv.Atoi(strings.TrimSpace(network))
	if err != nil {
		return 0
	}
	return n
}

// IsPOANetwork reports whether network uses the POA explorer.
func IsPOANetwork(network string) bool {
	id := NetworkID(network)
	return id == NetworkSokol || id == NetworkPOA
}

// ExplorerName is the label of the explorer used for network.
func ExplorerName(network string) string {
	if IsPOANetwork(network) {
		return "POA explorer"
	}
	return "Etherscan"
}

// POAExplorerAccountLink builds the POA explorer address page. It returns ""
// for networks that are neither Sokol nor POA core.
func POAExplorerAccountLink(address, network string) string {
	switch NetworkID(network) {
	case NetworkSokol:
		return "https://sokol.poaexplorer.com/address/search/" + address
	case NetworkPOA:
		return "https://poaexplorer.com/address/search/" + address
	}
	return ""
}

// etherscanPrefix maps a network id to its etherscan subdomain.
var etherscanPrefix = map[int]string{
	1:        "",
	3:        "ropsten.",
	4:        "rinkeby.",
	5:        "goerli.",
	42:       "kovan.",
	11155111: "sepolia.",
}

// EtherscanAccountLink builds the etherscan address page, or "" when the
// network has no etherscan deployment.
func EtherscanAccountLink(address, network string) string {
	prefix, ok := etherscanPrefix[NetworkID(network)]
	if !ok {
		return ""
	}
	return "https://" + prefix + "etherscan.io/address/" + address
}

// AccountLink picks the explorer for network and builds the address link.
func AccountLink(address, network string) string {
	if IsPOANetwork(network) {
		return POAExplorerAccountLink(address, network)
	}
	return EtherscanAccountLink(address, network)
}

// BuyEthURL returns where to get ether for address on network, or "" when
// the network has no known source.
func BuyEthURL(address, network string) string {
	switch NetworkID(network) {
	case 1:
		return "https://buy.coinbase.com/?amount=5&address=" + address + "&crypto_currency=ETH"
	case 3:
		return "https://faucet.metamask.io/"
	case 4:
		return "https://www.rinkeby.io/"
	case 42:
		return "https://github.com/kovan-testnet/faucet"
	case NetworkSokol:
		return "https://faucet-sokol.herokuapp.com/"
	}
	return ""
}

// NetworkName is the display name of a network id. Unknown ids use
// nickname when set.
func NetworkName(network, nickname string) string {
	switch NetworkID(network) {
	case 1:
		return "Main Ethereum Network"
	case 3:
		return "Ropsten Test Network"
	case 4:
		return "Rinkeby Test Network"
	case 5:
		return "Goerli Test Network"
	case 42:
		return "Kovan Test Network"
	case NetworkSokol:
		return "POA Sokol Test Network"
	case NetworkPOA:
		return "POA Network"
	case 11155111:
		return "Sepolia Test Network"
	}
	if nickname != "" {
		return nickname
	}
	if network == "" || network == "loading" {
		return "Connecting…"
	}
	return "Private Network"
}
