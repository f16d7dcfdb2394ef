// Package txqueue reads transaction requests that other programs drop into
// a JSON queue file and turns them into unapproved transactions.
package txqueue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"nifty-wallet-tui/helpers"
	"nifty-wallet-tui/store"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/fsnotify/fsnotify"
)

// DefaultGas is used when a request carries no gas limit.
const DefaultGas = "0x5208"

// Request is one entry of the queue file. Numeric fields are hex or decimal.
type Request struct {
	ID           string  `json:"id,omitempty"`
	From         string  `json:"from"`
	To           *string `json:"to,omitempty"`
	Value        string  `json:"value,omitempty"`
	Gas          string  `json:"gas,omitempty"`
	GasPrice     string  `json:"gasPrice,omitempty"`
	Data         string  `json:"data,omitempty"`
	LastGasPrice string  `json:"lastGasPrice,omitempty"`
	Time         int64   `json:"time,omitempty"`
}

// Defaults fill fields a request leaves out.
type Defaults struct {
	From     string
	GasPrice string
}

// Parse decodes a queue file body: a JSON array of requests.
func Parse(data []byte) ([]Request, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, nil
	}
	var reqs []Request
	if err := json.Unmarshal(data, &reqs); err != nil {
		return nil, fmt.Errorf("parse queue: %w", err)
	}
	return reqs, nil
}

// Load reads and parses the queue file. A missing file is an empty queue.
func Load(path string) ([]Request, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// id derives a stable identifier from the request contents so re-reading
// the same file does not queue duplicates.
func (r Request) id() string {
	if r.ID != "" {
		return r.ID
	}
	to := ""
	if r.To != nil {
		to = *r.To
	}
	key := strings.ToLower(strings.Join([]string{r.From, to, r.Value, r.Gas, r.GasPrice, r.Data, r.LastGasPrice}, "|"))
	return fmt.Sprintf("%x", crypto.Keccak256([]byte(key))[:8])
}

func normalize(q string) string {
	n, ok := helpers.ParseQuantity(q)
	if !ok {
		return ""
	}
	return helpers.BigToHex(n)
}

// Meta converts r into an unapproved transaction, filling gaps from d.
func (r Request) Meta(d Defaults, now time.Time) (store.TransactionMeta, error) {
	from := r.From
	if from == "" {
		from = d.From
	}
	if !helpers.IsValidEthAddress(from) {
		return store.TransactionMeta{}, fmt.Errorf("request %s: invalid sender %q", r.id(), from)
	}

	meta := store.TransactionMeta{
		ID:           r.id(),
		Time:         r.Time,
		LastGasPrice: normalize(r.LastGasPrice),
		TxParams: store.TxParams{
			From:  from,
			Value: "0x0",
			Gas:   DefaultGas,
			Data:  r.Data,
		},
	}
	if meta.Time == 0 {
		meta.Time = now.UnixMilli()
	}
	if r.To != nil {
		to := *r.To
		meta.TxParams.To = &to
	}
	if r.Value != "" {
		if meta.TxParams.Value = normalize(r.Value); meta.TxParams.Value == "" {
			return store.TransactionMeta{}, fmt.Errorf("request %s: invalid value %q", meta.ID, r.Value)
		}
	}
	if r.Gas != "" {
		if meta.TxParams.Gas = normalize(r.Gas); meta.TxParams.Gas == "" {
			return store.TransactionMeta{}, fmt.Errorf("request %s: invalid gas %q", meta.ID, r.Gas)
		}
		meta.GasLimitSpecified = true
	}
	switch {
	case r.GasPrice != "":
		if meta.TxParams.GasPrice = normalize(r.GasPrice); meta.TxParams.GasPrice == "" {
			return store.TransactionMeta{}, fmt.Errorf("request %s: invalid gasPrice %q", meta.ID, r.GasPrice)
		}
	case d.GasPrice != "":
		meta.TxParams.GasPrice = d.GasPrice
	default:
		meta.TxParams.GasPrice = "0x0"
	}
	return meta, nil
}

// Metas converts every request. Bad entries are skipped and reported
// together in the returned error.
func Metas(reqs []Request, d Defaults, now time.Time) ([]store.TransactionMeta, error) {
	out := make([]store.TransactionMeta, 0, len(reqs))
	var errs []error
	for _, r := range reqs {
		m, err := r.Meta(d, now)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, m)
	}
	return out, errors.Join(errs...)
}

// Actions wraps metas as AddUnapprovedTx actions.
func Actions(metas []store.TransactionMeta) []store.Action {
	out := make([]store.Action, 0, len(metas))
	for _, m := range metas {
		out = append(out, store.AddUnapprovedTxAction{Meta: m})
	}
	return out
}

// Watch calls onChange with the parsed queue every time the file is
// written, created or replaced. It watches the parent directory so editors
// that save via rename are seen. Watch blocks until ctx is done.
func Watch(ctx context.Context, path string, onChange func([]Request), onError func(error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("new watcher: %w", err)
	}
	defer w.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			reqs, err := Load(abs)
			if err != nil {
				if onError != nil {
					onError(err)
				}
				continue
			}
			onChange(reqs)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			if onError != nil {
				onError(err)
			}
		}
	}
}
