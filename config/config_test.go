package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOrCreateWritesDefaults(t *testing.T) {
	t.Setenv("ETH_RPC_URL", "")
	path := filepath.Join(t.TempDir(), FileName)

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadOrCreateInvalidFile(t *testing.T) {
	t.Setenv("ETH_RPC_URL", "")
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("{nope"), 0644))

	cfg, err := LoadOrCreate(path)
	assert.Error(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	data, _ := os.ReadFile(path)
	assert.Equal(t, "{nope", string(data))
}

func TestDefaultConfigUsesEnvRPC(t *testing.T) {
	t.Setenv("ETH_RPC_URL", "http://localhost:8545")
	n, ok := DefaultConfig().ActiveNetwork()
	require.True(t, ok)
	assert.Equal(t, "http://localhost:8545", n.URL)
}

func TestSetActiveNetwork(t *testing.T) {
	cfg := Config{Networks: []Network{{Name: "a", Active: true}, {Name: "b"}}}
	next := cfg.SetActiveNetwork(1)

	n, _ := next.ActiveNetwork()
	assert.Equal(t, "b", n.Name)
	assert.True(t, cfg.Networks[0].Active, "receiver is not modified")

	assert.Equal(t, next, next.SetActiveNetwork(5))
}

func TestAddAndRemoveNetwork(t *testing.T) {
	cfg := Config{Networks: []Network{{Name: "a", URL: "http://a", Active: true}}}
	cfg = cfg.AddNetwork(Network{Name: "b", URL: "http://b"})
	cfg = cfg.AddNetwork(Network{Name: "a2", URL: "HTTP://A"})
	require.Len(t, cfg.Networks, 2)
	assert.Equal(t, "a2", cfg.Networks[1].Name)

	cfg = cfg.SetActiveNetwork(1).RemoveNetwork(1)
	require.Len(t, cfg.Networks, 1)
	n, ok := cfg.ActiveNetwork()
	require.True(t, ok)
	assert.Equal(t, "b", n.Name)
	assert.True(t, n.Active)
}

func TestActiveNetworkEmpty(t *testing.T) {
	_, ok := Config{}.ActiveNetwork()
	assert.False(t, ok)
}
