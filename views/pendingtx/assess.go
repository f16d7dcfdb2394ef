package pendingtx

import (
	"math/big"
	"strings"

	"nifty-wallet-tui/helpers"
	"nifty-wallet-tui/store"
)

// DefaultBlockGasLimit is used when the node has not reported a block gas
// limit yet.
const DefaultBlockGasLimit = 8000000

var (
	// MinGasPrice is the floor of the gas price field for fresh transactions.
	MinGasPrice = big.NewInt(0)
	// MinGasLimit is the hard lower limit for gas.
	MinGasLimit = big.NewInt(21000)
)

// Banner messages shown above the form when the transaction is in error.
const (
	ErrSimulationFails     = "Transaction Error. Exception thrown in contract code."
	ErrInvalidRecipient    = "Recipient address is invalid. Sending this transaction will result in a loss of ETH."
	ErrInsufficientBalance = "Insufficient balance for transaction."
	ErrDangerousGasLimit   = "Gas limit set dangerously high. Approving this transaction is liable to fail."
)

// WarnInvalidGasParams is dispatched when submit finds an empty or zero gas
// field.
const WarnInvalidGasParams = "Invalid Gas Parameters"

// Env is the chain context a transaction is assessed against.
type Env struct {
	// BlockGasLimit is hex ("0x7a1200") or decimal.
	BlockGasLimit string
	// Balance is the hex wei balance of the sending account.
	Balance string
}

// Assessment is the fee and validity breakdown of a transaction.
type Assessment struct {
	Gas      *big.Int
	GasPrice *big.Int
	Value    *big.Int
	Balance  *big.Int

	TxFee   *big.Int
	MaxCost *big.Int

	BlockGasLimit *big.Int
	SafeGasLimit  *big.Int
	SaferGasLimit *big.Int
	MinGasPrice   *big.Int

	DataLength int

	SimulationFails     bool
	ValidAddress        bool
	InsufficientBalance bool
	DangerousGasLimit   bool
	GasLimitSpecified   bool
	IsContractDeploy    bool
}

// MultiplyByFraction returns floor(n * numerator / denominator).
func MultiplyByFraction(n *big.Int, numerator, denominator int64) *big.Int {
	out := new(big.Int).Mul(n, big.NewInt(numerator))
	return out.Quo(out, big.NewInt(denominator))
}

// BlockGasLimit parses the node-reported gas limit, falling back to
// DefaultBlockGasLimit when it is missing, malformed or zero.
func BlockGasLimit(raw string) *big.Int {
	n, ok := helpers.ParseQuantity(raw)
	if !ok || n.Sign() <= 0 {
		return big.NewInt(DefaultBlockGasLimit)
	}
	return n
}

// ForcedMinGasPrice is the lowest gas price a retry may use: the previous
// price plus a tenth of it. ok is false when lastGasPrice is unset.
func ForcedMinGasPrice(lastGasPrice string) (*big.Int, bool) {
	if strings.TrimSpace(lastGasPrice) == "" {
		return nil, false
	}
	last := helpers.HexToBig(lastGasPrice)
	bump := new(big.Int).Quo(last, big.NewInt(10))
	return bump.Add(last, bump), true
}

// DataLength is the byte length of 0x-prefixed call data.
func DataLength(data string) int {
	if data == "" {
		return 0
	}
	return (len(data) - 2) / 2
}

// IsContractDeploy reports whether p has no recipient. An empty "to" counts
// as absent.
func IsContractDeploy(p store.TxParams) bool {
	return p.To == nil || *p.To == ""
}

// Assess computes fees and validity flags for meta.
func Assess(meta store.TransactionMeta, env Env) Assessment {
	p := meta.TxParams

	a := Assessment{
		Gas:               helpers.HexToBig(p.Gas),
		GasPrice:          helpers.HexToBig(p.GasPrice),
		Value:             helpers.HexToBig(p.Value),
		Balance:           helpers.HexToBig(env.Balance),
		BlockGasLimit:     BlockGasLimit(env.BlockGasLimit),
		DataLength:        DataLength(p.Data),
		SimulationFails:   meta.SimulationFails,
		GasLimitSpecified: meta.GasLimitSpecified,
		IsContractDeploy:  IsContractDeploy(p),
	}

	a.SafeGasLimit = MultiplyByFraction(a.BlockGasLimit, 99, 100)
	a.SaferGasLimit = MultiplyByFraction(a.BlockGasLimit, 98, 100)

	a.MinGasPrice = new(big.Int).Set(MinGasPrice)
	if forced, ok := ForcedMinGasPrice(meta.LastGasPrice); ok {
		a.MinGasPrice = forced
	}

	a.TxFee = new(big.Int).Mul(a.Gas, a.GasPrice)
	a.MaxCost = new(big.Int).Add(a.TxFee, a.Value)

	a.ValidAddress = a.IsContractDeploy || helpers.IsValidEthAddress(*p.To)
	a.InsufficientBalance = a.Balance.Cmp(a.MaxCost) < 0
	a.DangerousGasLimit = a.Gas.Cmp(a.SaferGasLimit) >= 0

	return a
}

// IsError reports whether the error banner is shown.
func (a Assessment) IsError() bool {
	return a.SimulationFails || !a.ValidAddress || a.InsufficientBalance ||
		(a.DangerousGasLimit && !a.GasLimitSpecified)
}

// Errors lists the banner lines in display order.
func (a Assessment) Errors() []string {
	var out []string
	if a.SimulationFails {
		out = append(out, ErrSimulationFails)
	}
	if !a.ValidAddress {
		out = append(out, ErrInvalidRecipient)
	}
	if a.InsufficientBalance {
		out = append(out, ErrInsufficientBalance)
	}
	if a.DangerousGasLimit && !a.GasLimitSpecified {
		out = append(out, ErrDangerousGasLimit)
	}
	return out
}

// SubmitDisabled reports whether the submit control is inert given the
// form validity and in-flight state.
func (a Assessment) SubmitDisabled(formValid, submitting bool) bool {
	return a.InsufficientBalance || !formValid || !a.ValidAddress || submitting
}

// VerifyGasParams checks that both gas fields of meta hold a positive
// quantity: not empty, not zeroed by an edit and not signed.
func VerifyGasParams(meta store.TransactionMeta) bool {
	return notZeroOrEmpty(meta.TxParams.Gas) && notZeroOrEmpty(meta.TxParams.GasPrice)
}

func notZeroOrEmpty(v string) bool {
	n, ok := helpers.ParseQuantity(v)
	return ok && n.Sign() > 0
}
