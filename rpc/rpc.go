package rpc

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"
	"time"

	"nifty-wallet-tui/helpers"
	"nifty-wallet-tui/store"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

// ErrNoClient is returned by every call made without a connected node.
var ErrNoClient = errors.New("no RPC client (set ETH_RPC_URL)")

// Client wraps an Ethereum RPC client
type Client struct {
	*ethclient.Client
	URL string
}

// ConnectResult holds the result of an RPC connection attempt
type ConnectResult struct {
	Client *Client
	Error  error
}

// Connect attempts to connect to an Ethereum RPC endpoint
func Connect(url string) ConnectResult {
	return ConnectWithTimeout(url, 8*time.Second)
}

// ConnectWithTimeout attempts to connect with a custom timeout
func ConnectWithTimeout(url string, timeout time.Duration) ConnectResult {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := ethclient.DialContext(ctx, url)
	if err != nil {
		return ConnectResult{Client: nil, Error: err}
	}

	return ConnectResult{
		Client: &Client{
			Client: client,
			URL:    url,
		},
		Error: nil,
	}
}

func (c *Client) ok() bool {
	return c != nil && c.Client != nil
}

// ChainState is what the confirmation screen needs from the node.
type ChainState struct {
	ChainID       *big.Int
	NetworkID     *big.Int
	BlockGasLimit uint64
	GasPrice      *big.Int
}

// LoadChainState reads the chain id, the latest block gas limit and the
// suggested gas price.
func LoadChainState(ctx context.Context, client *Client) (ChainState, error) {
	if !client.ok() {
		return ChainState{}, ErrNoClient
	}

	var cs ChainState
	var err error
	if cs.ChainID, err = client.ChainID(ctx); err != nil {
		return cs, fmt.Errorf("chain id: %w", err)
	}
	if cs.NetworkID, err = client.NetworkID(ctx); err != nil {
		// some providers do not serve net_version
		cs.NetworkID = new(big.Int).Set(cs.ChainID)
	}
	head, err := client.HeaderByNumber(ctx, nil)
	if err != nil {
		return cs, fmt.Errorf("latest header: %w", err)
	}
	cs.BlockGasLimit = head.GasLimit
	if cs.GasPrice, err = client.SuggestGasPrice(ctx); err != nil {
		return cs, fmt.Errorf("gas price: %w", err)
	}
	return cs, nil
}

// LoadBalances fetches the ETH balance of every address as hex wei. An
// address that fails is left out and the first error is returned alongside
// whatever did load.
func LoadBalances(ctx context.Context, client *Client, addresses []string) (map[string]store.Account, error) {
	out := make(map[string]store.Account, len(addresses))
	if !client.ok() {
		return out, ErrNoClient
	}

	var firstErr error
	for _, a := range addresses {
		wei, err := client.BalanceAt(ctx, common.HexToAddress(a), nil)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("balance of %s: %w", a, err)
			}
			continue
		}
		out[a] = store.Account{Address: a, Balance: helpers.BigToHex(wei)}
	}
	return out, firstErr
}

// TokenBalance represents an ERC20 token balance
type TokenBalance struct {
	Symbol   string
	Decimals uint8
	Balance  *big.Int
}

// WatchedToken represents a token to query
type WatchedToken struct {
	Symbol   string
	Decimals uint8
	Address  common.Address
}

// AccountDetails contains the balances shown on the account screen
type AccountDetails struct {
	Address    string
	EthWei     *big.Int
	Tokens     []TokenBalance
	LoadedAt   time.Time
	ErrMessage string
}

// LoadAccountDetails fetches ETH and token balances for an address
func LoadAccountDetails(client *Client, addr common.Address, watch []WatchedToken) AccountDetails {
	return LoadAccountDetailsWithTimeout(client, addr, watch, 12*time.Second)
}

// LoadAccountDetailsWithTimeout fetches account details with a custom timeout
func LoadAccountDetailsWithTimeout(client *Client, addr common.Address, watch []WatchedToken, timeout time.Duration) AccountDetails {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	d := AccountDetails{
		Address:  addr.Hex(),
		EthWei:   big.NewInt(0),
		LoadedAt: time.Now(),
	}

	if !client.ok() {
		d.ErrMessage = "No RPC client (set ETH_RPC_URL)."
		return d
	}

	wei, err := client.BalanceAt(ctx, addr, nil)
	if err != nil {
		d.ErrMessage = "Failed to load ETH balance."
		return d
	}
	d.EthWei = wei

	var toks []TokenBalance
	for _, t := range watch {
		bal, err := erc20BalanceOf(ctx, client.Client, t.Address, addr)
		if err != nil {
			continue
		}
		if bal.Sign() > 0 {
			toks = append(toks, TokenBalance{
				Symbol:   t.Symbol,
				Decimals: t.Decimals,
				Balance:  bal,
			})
		}
	}

	sort.Slice(toks, func(i, j int) bool {
		return strings.ToLower(toks[i].Symbol) < strings.ToLower(toks[j].Symbol)
	})
	d.Tokens = toks

	return d
}

// Minimal ERC20 balanceOf via eth_call.
var (
	// balanceOf(address) methodID = keccak256("balanceOf(address)")[:4]
	balanceOfSelector = []byte{0x70, 0xa0, 0x82, 0x31}
)

func erc20BalanceOf(ctx context.Context, client *ethclient.Client, token common.Address, owner common.Address) (*big.Int, error) {
	padded := common.LeftPadBytes(owner.Bytes(), 32)
	data := append(append([]byte{}, balanceOfSelector...), padded...)

	msg := ethereum.CallMsg{
		To:   &token,
		Data: data,
	}
	out, err := client.CallContract(ctx, msg, nil)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return big.NewInt(0), nil
	}
	return new(big.Int).SetBytes(out), nil
}

// CallMsg converts hex transaction params into a go-ethereum call message.
func CallMsg(p store.TxParams) (ethereum.CallMsg, error) {
	msg := ethereum.CallMsg{
		From:     common.HexToAddress(p.From),
		Value:    helpers.HexToBig(p.Value),
		GasPrice: helpers.HexToBig(p.GasPrice),
	}
	if p.To != nil && *p.To != "" {
		if !helpers.IsValidEthAddress(*p.To) {
			return msg, fmt.Errorf("invalid recipient %q", *p.To)
		}
		to := common.HexToAddress(*p.To)
		msg.To = &to
	}
	if p.Data != "" {
		data, err := hexutil.Decode(p.Data)
		if err != nil {
			return msg, fmt.Errorf("decode data: %w", err)
		}
		msg.Data = data
	}
	return msg, nil
}

// Simulate runs gas estimation for p. fails reports that the node rejected
// the call, which is how a reverting contract shows up. gas is the estimate
// when it succeeds.
func Simulate(ctx context.Context, client *Client, p store.TxParams) (gas uint64, fails bool, err error) {
	if !client.ok() {
		return 0, false, ErrNoClient
	}
	msg, err := CallMsg(p)
	if err != nil {
		return 0, true, err
	}
	// estimate without a gas cap so the node finds the real requirement
	msg.Gas = 0
	gas, err = client.EstimateGas(ctx, msg)
	if err != nil {
		return 0, true, fmt.Errorf("estimate gas: %w", err)
	}
	return gas, false, nil
}

// TxPackage is an approved transaction ready for an external signer.
type TxPackage struct {
	// JSON is the unsigned legacy transaction as go-ethereum encodes it.
	JSON string
	// RawHex is the RLP of the unsigned transaction.
	RawHex string
	// EIP681 is a payment URI, empty for contract deployments.
	EIP681 string
}

// PackageTransaction builds the unsigned transaction for meta. The nonce is
// read from the node when a client is available and left at zero otherwise.
func PackageTransaction(ctx context.Context, client *Client, meta store.TransactionMeta, chainID *big.Int) (TxPackage, error) {
	p := meta.TxParams
	msg, err := CallMsg(p)
	if err != nil {
		return TxPackage{}, err
	}

	var nonce uint64
	if client.ok() {
		if nonce, err = client.PendingNonceAt(ctx, msg.From); err != nil {
			return TxPackage{}, fmt.Errorf("pending nonce: %w", err)
		}
	}

	gas := helpers.HexToBig(p.Gas)
	if !gas.IsUint64() {
		return TxPackage{}, fmt.Errorf("gas limit %s out of range", gas)
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       msg.To,
		Value:    msg.Value,
		Gas:      gas.Uint64(),
		GasPrice: msg.GasPrice,
		Data:     msg.Data,
	})

	js, err := tx.MarshalJSON()
	if err != nil {
		return TxPackage{}, fmt.Errorf("encode json: %w", err)
	}
	raw, err := tx.MarshalBinary()
	if err != nil {
		return TxPackage{}, fmt.Errorf("encode rlp: %w", err)
	}

	pkg := TxPackage{JSON: string(js), RawHex: hexutil.Encode(raw)}
	if msg.To != nil {
		pkg.EIP681 = EIP681(*msg.To, chainID, msg.Value, gas, msg.GasPrice)
	}
	return pkg, nil
}

// EIP681 formats ethereum:<address>@<chainId>?value=<wei>&gas=..&gasPrice=..
// Zero gas fields are omitted; a nil chainID drops the @ part.
func EIP681(to common.Address, chainID, value, gas, gasPrice *big.Int) string {
	var b strings.Builder
	b.WriteString("ethereum:")
	b.WriteString(to.Hex())
	if chainID != nil && chainID.Sign() > 0 {
		b.WriteString("@" + chainID.String())
	}
	if value == nil {
		value = new(big.Int)
	}
	b.WriteString("?value=" + value.String())
	if gas != nil && gas.Sign() > 0 {
		b.WriteString("&gas=" + gas.String())
	}
	if gasPrice != nil && gasPrice.Sign() > 0 {
		b.WriteString("&gasPrice=" + gasPrice.String())
	}
	return b.String()
}
