// Package mutation derives per-account balance changes from transaction
// metadata.
package mutation

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/LeJamon/goXRPLwallet/internal/core/codec"
	"github.com/LeJamon/goXRPLwallet/internal/core/ledger/entry"
	"github.com/LeJamon/goXRPLwallet/internal/core/meta"
	"github.com/LeJamon/goXRPLwallet/internal/core/tx"
	"github.com/LeJamon/goXRPLwallet/internal/core/types"
)

// ErrNoMetadata is returned when Derive is called without metadata.
var ErrNoMetadata = errors.New("no metadata")

// Option configures Derive.
type Option func(*options)

type options struct {
	excludeFee bool
}

// ExcludeFee leaves the transaction fee out of the sender's native debit,
// so the result shows what was sent rather than what was spent.
func ExcludeFee() Option {
	return func(o *options) { o.excludeFee = true }
}

type balanceKey struct {
	account  string
	currency string
	issuer   string
}

// tally accumulates signed deltas in order of first appearance.
type tally struct {
	order  []balanceKey
	deltas map[balanceKey]decimal.Decimal
}

func newTally() *tally {
	return &tally{deltas: map[balanceKey]decimal.Decimal{}}
}

func (l *tally) add(key balanceKey, delta decimal.Decimal) {
	current, seen := l.deltas[key]
	if !seen {
		l.order = append(l.order, key)
	}
	l.deltas[key] = current.Add(delta)
}

func (l *tally) mutations() []types.BalanceMutation {
	out := make([]types.BalanceMutation, 0, len(l.order))
	for _, key := range l.order {
		delta := l.deltas[key]
		if delta.IsZero() {
			continue
		}
		action := types.ActionIncrease
		if delta.IsNegative() {
			action = types.ActionDecrease
		}
		out = append(out, types.BalanceMutation{
			Account:  key.account,
			Currency: key.currency,
			Issuer:   key.issuer,
			Action:   action,
			Value:    delta.Abs(),
		})
	}
	return out
}

// Derive returns the balance changes recorded in m. Only AccountRoot and
// RippleState nodes carry balances. A trust line change is reported for
// both sides: the low account with the stored delta, issued by the high
// account, and the high account with the delta negated, issued by the low
// account. Changes to the same balance are summed and zero results dropped.
//
// t is only consulted by ExcludeFee and may be nil otherwise.
func Derive(m *meta.Metadata, t tx.Transaction, opts ...Option) ([]types.BalanceMutation, error) {
	if m == nil {
		return nil, ErrNoMetadata
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	l := newTally()
	for i, node := range m.Nodes() {
		var err error
		switch node.LedgerEntryType {
		case entry.TypeAccountRoot.String():
			err = nativeDelta(l, node)
		case entry.TypeRippleState.String():
			err = trustLineDelta(l, node)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: node %d (%s): %v", meta.ErrMalformedMetadata, i, node.LedgerEntryType, err)
		}
	}

	if o.excludeFee && t != nil && m.FeeClaimed() {
		if fee, ok := t.GetCommon().FeeAmount(); ok {
			l.add(balanceKey{account: t.GetCommon().Account, currency: codec.NativeCurrency}, fee.Value())
		}
	}
	return l.mutations(), nil
}

// balanceChange reads the balance before and after the transaction.
// Created entries start at zero and deleted entries end at zero. A modified
// entry without a previous Balance did not change balance.
func balanceChange(node meta.Node) (before, after types.Amount, changed bool, err error) {
	switch node.State {
	case meta.Created:
		after, err = types.AmountFromWire(node.NewFields["Balance"])
		if err != nil {
			return before, after, false, err
		}
		before, err = after.WithValue(decimal.Zero)
		return before, after, true, err
	case meta.Deleted:
		raw, ok := node.PreviousFields["Balance"]
		if !ok {
			raw = node.FinalFields["Balance"]
		}
		before, err = types.AmountFromWire(raw)
		if err != nil {
			return before, after, false, err
		}
		after, err = before.WithValue(decimal.Zero)
		return before, after, true, err
	default:
		raw, ok := node.PreviousFields["Balance"]
		if !ok {
			return before, after, false, nil
		}
		if before, err = types.AmountFromWire(raw); err != nil {
			return before, after, false, err
		}
		after, err = types.AmountFromWire(node.FinalFields["Balance"])
		return before, after, true, err
	}
}

func nativeDelta(l *tally, node meta.Node) error {
	before, after, changed, err := balanceChange(node)
	if err != nil || !changed {
		return err
	}
	e, err := entry.FromMap(node.Current(), node.LedgerEntryType)
	if err != nil {
		return err
	}
	root := e.(*entry.AccountRoot)
	if root.Account == "" {
		return errors.New("AccountRoot without Account")
	}
	l.add(balanceKey{account: root.Account, currency: codec.NativeCurrency}, after.Value().Sub(before.Value()))
	return nil
}

func trustLineDelta(l *tally, node meta.Node) error {
	before, after, changed, err := balanceChange(node)
	if err != nil || !changed {
		return err
	}
	e, err := entry.FromMap(node.Current(), node.LedgerEntryType)
	if err != nil {
		return err
	}
	line := e.(*entry.RippleState)
	low, high := line.LowAccount(), line.HighAccount()
	if low == "" || high == "" {
		return errors.New("RippleState without limits")
	}
	currency := after.Currency()
	if currency == "" {
		currency = before.Currency()
	}

	delta := after.Value().Sub(before.Value())
	l.add(balanceKey{account: low, currency: currency, issuer: high}, delta)
	l.add(balanceKey{account: high, currency: currency, issuer: low}, delta.Neg())
	return nil
}

// ForAccount returns the mutations that belong to account, in order.
func ForAccount(mutations []types.BalanceMutation, account string) []types.BalanceMutation {
	var out []types.BalanceMutation
	for _, m := range mutations {
		if m.Account == account {
			out = append(out, m)
		}
	}
	return out
}

// Net returns the signed total change of one balance. An empty issuer
// matches every issuer of currency.
func Net(mutations []types.BalanceMutation, account, currency, issuer string) decimal.Decimal {
	total := decimal.Zero
	for _, m := range mutations {
		if m.Account != account || m.Currency != currency {
			continue
		}
		if issuer != "" && m.Issuer != issuer {
			continue
		}
		total = total.Add(m.Signed())
	}
	return total
}
