package txqueue

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"nifty-wallet-tui/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	from = "0xd8da6bf26964af9d7eed9e03e53415d37aa96045"
	to   = "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"
)

var now = time.Unix(1700000000, 0)

func TestParse(t *testing.T) {
	reqs, err := Parse([]byte(`[{"from":"` + from + `","to":"` + to + `","value":"1000"}]`))
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, to, *reqs[0].To)

	reqs, err = Parse([]byte("  \n"))
	require.NoError(t, err)
	assert.Empty(t, reqs)

	_, err = Parse([]byte("{"))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	reqs, err := Load(filepath.Join(t.TempDir(), "queue.json"))
	require.NoError(t, err)
	assert.Empty(t, reqs)
}

func TestMetaFillsDefaults(t *testing.T) {
	r := Request{To: strPtr(to)}
	m, err := r.Meta(Defaults{From: from, GasPrice: "0x3b9aca00"}, now)
	require.NoError(t, err)

	assert.Equal(t, from, m.TxParams.From)
	assert.Equal(t, "0x0", m.TxParams.Value)
	assert.Equal(t, DefaultGas, m.TxParams.Gas)
	assert.False(t, m.GasLimitSpecified)
	assert.Equal(t, "0x3b9aca00", m.TxParams.GasPrice)
	assert.Equal(t, now.UnixMilli(), m.Time)
	assert.NotEmpty(t, m.ID)
}

func TestMetaNormalizesQuantities(t *testing.T) {
	r := Request{From: from, To: strPtr(to), Value: "1000", Gas: "50000", GasPrice: "0x1", LastGasPrice: "100"}
	m, err := r.Meta(Defaults{}, now)
	require.NoError(t, err)

	assert.Equal(t, "0x3e8", m.TxParams.Value)
	assert.Equal(t, "0xc350", m.TxParams.Gas)
	assert.True(t, m.GasLimitSpecified)
	assert.Equal(t, "0x1", m.TxParams.GasPrice)
	assert.Equal(t, "0x64", m.LastGasPrice)
}

func TestMetaRejectsBadInput(t *testing.T) {
	_, err := Request{From: "nope"}.Meta(Defaults{}, now)
	assert.Error(t, err)

	_, err = Request{From: from, Value: "-1"}.Meta(Defaults{}, now)
	assert.Error(t, err)

	_, err = Request{From: from, Gas: "lots"}.Meta(Defaults{}, now)
	assert.Error(t, err)
}

func TestMetaRejectsSignedHex(t *testing.T) {
	_, err := Request{From: from, Gas: "0x-5208"}.Meta(Defaults{}, now)
	assert.Error(t, err)

	_, err = Request{From: from, GasPrice: "0x-1"}.Meta(Defaults{}, now)
	assert.Error(t, err)

	_, err = Request{From: from, Value: "0x-1"}.Meta(Defaults{}, now)
	assert.Error(t, err)

	m, err := Request{From: from, LastGasPrice: "0x-1"}.Meta(Defaults{}, now)
	require.NoError(t, err)
	assert.Empty(t, m.LastGasPrice)
}

func TestIDsAreStable(t *testing.T) {
	r := Request{From: from, To: strPtr(to), Value: "0x1"}
	a, err := r.Meta(Defaults{}, now)
	require.NoError(t, err)
	b, err := r.Meta(Defaults{}, now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, a.ID, b.ID)

	r.Value = "0x2"
	c, err := r.Meta(Defaults{}, now)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, c.ID)

	r.ID = "explicit"
	d, err := r.Meta(Defaults{}, now)
	require.NoError(t, err)
	assert.Equal(t, "explicit", d.ID)
}

func TestMetasSkipsBadEntries(t *testing.T) {
	metas, err := Metas([]Request{{From: from}, {From: "bad"}}, Defaults{}, now)
	assert.Error(t, err)
	assert.Len(t, metas, 1)

	actions := Actions(metas)
	require.Len(t, actions, 1)
	assert.Equal(t, store.AddUnapprovedTxType, actions[0].Type())
}

func TestWatchSeesWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "queue.json")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	var got []Request
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(reqs []Request) {
			mu.Lock()
			got = reqs
			mu.Unlock()
		}, nil)
	}()

	body := []byte(`[{"from":"` + from + `"}]`)
	require.Eventually(t, func() bool {
		// rewrite until the watcher is up and has seen a write
		_ = os.WriteFile(path, body, 0644)
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 1
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func strPtr(s string) *string { return &s }
