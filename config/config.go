package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileName is the config file created in the user's home directory.
const FileName = ".nifty-wallet-tui.json"

// Config represents the application configuration
type Config struct {
	Networks        []Network     `json:"networks"`
	Identities      []Identity    `json:"identities"`
	Keyrings        []Keyring     `json:"keyrings"`
	SelectedAddress string        `json:"selected_address,omitempty"`
	Currency        string        `json:"currency"`
	ConversionRate  float64       `json:"conversion_rate,omitempty"`
	Tokens          []WatchedCoin `json:"tokens,omitempty"`
	Logger          bool          `json:"logger"`
}

// Network represents an RPC endpoint
type Network struct {
	Name    string `json:"name"`
	URL     string `json:"url"`
	ChainID int64  `json:"chain_id,omitempty"`
	Active  bool   `json:"active"`
}

// Identity names an account address
type Identity struct {
	Address string `json:"address"`
	Name    string `json:"name"`
}

// Keyring groups addresses by how they were added
type Keyring struct {
	Type     string   `json:"type"`
	Accounts []string `json:"accounts"`
}

// WatchedCoin is an ERC20 token shown in the tokens tab
type WatchedCoin struct {
	Symbol   string `json:"symbol"`
	Decimals uint8  `json:"decimals"`
	Address  string `json:"address"`
}

// DefaultPath returns ~/.nifty-wallet-tui.json, or the file name alone when
// the home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return FileName
	}
	return filepath.Join(home, FileName)
}

// Load reads the config from the specified path
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the config to the specified path
func Save(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// DefaultConfig returns a new configuration with sensible defaults.
// ETH_RPC_URL, when set, becomes the active network.
func DefaultConfig() Config {
	networks := []Network{
		{
			Name:    "Public Mainnet",
			URL:     "https://ethereum-rpc.publicnode.com",
			ChainID: 1,
			Active:  true,
		},
		{
			Name:    "Sepolia",
			URL:     "https://ethereum-sepolia-rpc.publicnode.com",
			ChainID: 11155111,
		},
	}
	if url := strings.TrimSpace(os.Getenv("ETH_RPC_URL")); url != "" {
		for i := range networks {
			networks[i].Active = false
		}
		networks = append([]Network{{Name: "ETH_RPC_URL", URL: url, Active: true}}, networks...)
	}

	return Config{
		Networks: networks,
		Identities: []Identity{
			{Name: "Account 1", Address: "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"},
		},
		Keyrings: []Keyring{
			{Type: "HD Key Tree", Accounts: []string{"0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"}},
		},
		SelectedAddress: "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045",
		Currency:        "usd",
		Tokens: []WatchedCoin{
			{Symbol: "USDC", Decimals: 6, Address: "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"},
			{Symbol: "USDT", Decimals: 6, Address: "0xdAC17F958D2ee523a2206206994597C13D831ec7"},
			{Symbol: "DAI", Decimals: 18, Address: "0x6B175474E89094C44Da98b954EedeAC495271d0F"},
		},
		Logger: false,
	}
}

// LoadOrCreate loads config from path, or creates a default one if not found
func LoadOrCreate(path string) (Config, error) {
	cfg, err := Load(path)
	if err == nil {
		return cfg, nil
	}
	if !os.IsNotExist(err) {
		// Invalid config, run on defaults without overwriting the file
		return DefaultConfig(), err
	}

	cfg = DefaultConfig()
	return cfg, Save(path, cfg)
}

// ActiveNetwork returns the network marked active, falling back to the first.
func (c Config) ActiveNetwork() (Network, bool) {
	for _, n := range c.Networks {
		if n.Active {
			return n, true
		}
	}
	if len(c.Networks) > 0 {
		return c.Networks[0], true
	}
	return Network{}, false
}

// SetActiveNetwork marks the network at index i active and every other
// network inactive.
func (c Config) SetActiveNetwork(i int) Config {
	if i < 0 || i >= len(c.Networks) {
		return c
	}
	networks := make([]Network, len(c.Networks))
	copy(networks, c.Networks)
	for j := range networks {
		networks[j].Active = j == i
	}
	c.Networks = networks
	return c
}

// AddNetwork appends n, replacing an existing entry with the same URL.
func (c Config) AddNetwork(n Network) Config {
	networks := make([]Network, 0, len(c.Networks)+1)
	for _, existing := range c.Networks {
		if !strings.EqualFold(existing.URL, n.URL) {
			networks = append(networks, existing)
		}
	}
	c.Networks = append(networks, n)
	return c
}

// RemoveNetwork drops the network at index i. The first remaining network
// becomes active if the removed one was.
func (c Config) RemoveNetwork(i int) Config {
	if i < 0 || i >= len(c.Networks) {
		return c
	}
	wasActive := c.Networks[i].Active
	networks := make([]Network, 0, len(c.Networks)-1)
	networks = append(networks, c.Networks[:i]...)
	networks = append(networks, c.Networks[i+1:]...)
	c.Networks = networks
	if wasActive && len(networks) > 0 {
		return c.SetActiveNetwork(0)
	}
	return c
}
