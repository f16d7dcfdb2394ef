package pendingtx

import (
	"math/big"
	"testing"

	"nifty-wallet-tui/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestBlockGasLimitDerivedLimits(t *testing.T) {
	a := Assess(store.TransactionMeta{}, Env{BlockGasLimit: "0x7a1200"})
	assert.Equal(t, big.NewInt(8000000), a.BlockGasLimit)
	assert.Equal(t, big.NewInt(7920000), a.SafeGasLimit)
	assert.Equal(t, big.NewInt(7840000), a.SaferGasLimit)
}

func TestBlockGasLimitFallback(t *testing.T) {
	for _, raw := range []string{"", "0x0", "junk", "0"} {
		assert.Equal(t, big.NewInt(DefaultBlockGasLimit), BlockGasLimit(raw), raw)
	}
	assert.Equal(t, big.NewInt(30000000), BlockGasLimit("30000000"))
}

func TestMultiplyByFractionFloors(t *testing.T) {
	assert.Equal(t, big.NewInt(98), MultiplyByFraction(big.NewInt(99), 99, 100))
	assert.Equal(t, big.NewInt(0), MultiplyByFraction(big.NewInt(1), 98, 100))
}

func TestForcedMinGasPrice(t *testing.T) {
	n, ok := ForcedMinGasPrice("0x64")
	require.True(t, ok)
	assert.Equal(t, big.NewInt(110), n)

	_, ok = ForcedMinGasPrice("")
	assert.False(t, ok)

	a := Assess(store.TransactionMeta{LastGasPrice: "0x64"}, Env{})
	assert.Equal(t, big.NewInt(110), a.MinGasPrice)

	a = Assess(store.TransactionMeta{}, Env{})
	assert.Equal(t, 0, a.MinGasPrice.Sign())
}

func TestAssessFees(t *testing.T) {
	meta := store.TransactionMeta{TxParams: store.TxParams{
		To:       strPtr("0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"),
		Value:    "0xde0b6b3a7640000", // 1 ether
		Gas:      "0x5208",            // 21000
		GasPrice: "0x3b9aca00",        // 1 gwei
		Data:     "0xdeadbeef",
	}}
	a := Assess(meta, Env{Balance: "0x1bc16d674ec80000"}) // 2 ether

	assert.Equal(t, big.NewInt(21000*1000000000), a.TxFee)
	want, _ := new(big.Int).SetString("1000021000000000000", 10)
	assert.Equal(t, want, a.MaxCost)
	assert.Equal(t, 4, a.DataLength)
	assert.True(t, a.ValidAddress)
	assert.False(t, a.InsufficientBalance)
	assert.False(t, a.IsError())
	assert.Empty(t, a.Errors())
	assert.False(t, a.SubmitDisabled(true, false))
}

func TestAssessInsufficientBalance(t *testing.T) {
	meta := store.TransactionMeta{TxParams: store.TxParams{
		To:       strPtr("0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"),
		Value:    "0x1",
		Gas:      "0x5208",
		GasPrice: "0x1",
	}}
	a := Assess(meta, Env{Balance: "0x0"})
	assert.True(t, a.InsufficientBalance)
	assert.True(t, a.IsError())
	assert.Equal(t, []string{ErrInsufficientBalance}, a.Errors())
	assert.True(t, a.SubmitDisabled(true, false))
}

func TestAssessInvalidRecipient(t *testing.T) {
	meta := store.TransactionMeta{TxParams: store.TxParams{To: strPtr("0x1234")}}
	a := Assess(meta, Env{})
	assert.False(t, a.ValidAddress)
	assert.True(t, a.SubmitDisabled(true, false))
	assert.Contains(t, a.Errors(), ErrInvalidRecipient)
}

func TestAssessContractDeploy(t *testing.T) {
	a := Assess(store.TransactionMeta{}, Env{})
	assert.True(t, a.IsContractDeploy)
	assert.True(t, a.ValidAddress)

	a = Assess(store.TransactionMeta{TxParams: store.TxParams{To: strPtr("")}}, Env{})
	assert.True(t, a.IsContractDeploy)
	assert.True(t, a.ValidAddress)

	a = Assess(store.TransactionMeta{TxParams: store.TxParams{To: strPtr(recipient)}}, Env{})
	assert.False(t, a.IsContractDeploy)
}

func TestAssessDangerousGasLimit(t *testing.T) {
	meta := store.TransactionMeta{TxParams: store.TxParams{Gas: "0x77a100"}} // 7840000
	a := Assess(meta, Env{BlockGasLimit: "0x7a1200", Balance: "0xffffffff"})
	assert.True(t, a.DangerousGasLimit)
	assert.Equal(t, []string{ErrDangerousGasLimit}, a.Errors())

	meta.GasLimitSpecified = true
	a = Assess(meta, Env{BlockGasLimit: "0x7a1200", Balance: "0xffffffff"})
	assert.True(t, a.DangerousGasLimit)
	assert.False(t, a.IsError())
}

func TestAssessErrorOrder(t *testing.T) {
	meta := store.TransactionMeta{
		SimulationFails: true,
		TxParams: store.TxParams{
			To:    strPtr("nope"),
			Value: "0x10",
			Gas:   "0x7a1200",
		},
	}
	a := Assess(meta, Env{})
	assert.Equal(t, []string{
		ErrSimulationFails,
		ErrInvalidRecipient,
		ErrInsufficientBalance,
		ErrDangerousGasLimit,
	}, a.Errors())
}

func TestSubmitDisabledWhileSubmitting(t *testing.T) {
	a := Assess(store.TransactionMeta{}, Env{})
	assert.False(t, a.SubmitDisabled(true, false))
	assert.True(t, a.SubmitDisabled(true, true))
	assert.True(t, a.SubmitDisabled(false, false))
}

func TestVerifyGasParams(t *testing.T) {
	ok := store.TransactionMeta{TxParams: store.TxParams{Gas: "0x5208", GasPrice: "0x1"}}
	assert.True(t, VerifyGasParams(ok))

	for _, bad := range []string{"", "0x", "0x0", "0", "0x-5208", "-0x5208", "-1"} {
		m := ok
		m.TxParams.GasPrice = bad
		assert.False(t, VerifyGasParams(m), "gasPrice %q", bad)

		m = ok
		m.TxParams.Gas = bad
		assert.False(t, VerifyGasParams(m), "gas %q", bad)
	}
}
