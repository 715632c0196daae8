// Package offer implements OfferCreate and OfferCancel.
package offer

import (
	"github.com/shopspring/decimal"

	"github.com/LeJamon/goXRPLwallet/internal/core/tx"
	"github.com/LeJamon/goXRPLwallet/internal/core/types"
)

func init() {
	tx.Register(tx.TypeOfferCreate, func() tx.Transaction {
		return &OfferCreate{BaseTx: *tx.NewBaseTx(tx.TypeOfferCreate, "")}
	})
	tx.Register(tx.TypeOfferCancel, func() tx.Transaction {
		return &OfferCancel{BaseTx: *tx.NewBaseTx(tx.TypeOfferCancel, "")}
	})
}

// OfferCreate flags
const (
	OfferCreateFlagPassive           uint32 = 0x00010000
	OfferCreateFlagImmediateOrCancel uint32 = 0x00020000
	OfferCreateFlagFillOrKill        uint32 = 0x00040000
	OfferCreateFlagSell              uint32 = 0x00080000
)

// OfferCreate places an offer in the decentralized exchange.
type OfferCreate struct {
	tx.BaseTx

	// TakerGets is what the offer creator gives up
	TakerGets types.Amount `xrpl:"TakerGets"`

	// TakerPays is what the offer creator wants in return
	TakerPays types.Amount `xrpl:"TakerPays"`

	Expiration    *uint32 `xrpl:"Expiration,omitempty"`
	OfferSequence *uint32 `xrpl:"OfferSequence,omitempty"`
}

// NewOfferCreate creates a new OfferCreate transaction
func NewOfferCreate(account string, takerGets, takerPays types.Amount) *OfferCreate {
	return &OfferCreate{
		BaseTx:    *tx.NewBaseTx(tx.TypeOfferCreate, account),
		TakerGets: takerGets,
		TakerPays: takerPays,
	}
}

// Rate returns TakerPays per unit of TakerGets.
func (o *OfferCreate) Rate() (decimal.Decimal, bool) {
	if o.TakerGets.IsZero() {
		return decimal.Zero, false
	}
	return o.TakerPays.Value().DivRound(o.TakerGets.Value(), 16), true
}

// TakerGot sums what account received in the TakerPays asset, according to
// the balance mutations of the executed transaction.
func (o *OfferCreate) TakerGot(account string, mutations []types.BalanceMutation) (types.Amount, bool) {
	return o.sum(account, mutations, o.TakerPays.Issue(), types.ActionIncrease)
}

// TakerPaid sums what account gave up in the TakerGets asset. The fee is
// not part of it.
func (o *OfferCreate) TakerPaid(account string, mutations []types.BalanceMutation) (types.Amount, bool) {
	paid, ok := o.sum(account, mutations, o.TakerGets.Issue(), types.ActionDecrease)
	if !ok || !paid.IsNative() || account != o.Account {
		return paid, ok
	}
	fee, hasFee := o.FeeAmount()
	if !hasFee {
		return paid, ok
	}
	net := paid.Value().Sub(fee.Value())
	if net.Sign() <= 0 {
		return types.Amount{}, false
	}
	out, err := paid.WithValue(net)
	return out, err == nil
}

func (o *OfferCreate) sum(account string, mutations []types.BalanceMutation, issue types.Issue, action types.Action) (types.Amount, bool) {
	total := decimal.Zero
	found := false
	for _, m := range mutations {
		if m.Account != account || m.Action != action || m.Currency != issue.Currency {
			continue
		}
		if !issue.IsNative() && m.Issuer != issue.Issuer {
			continue
		}
		total = total.Add(m.Value)
		found = true
	}
	if !found {
		return types.Amount{}, false
	}
	var template types.Amount
	if issue.IsNative() {
		template = types.MustNative("0")
	} else if action == types.ActionIncrease {
		template = o.TakerPays
	} else {
		template = o.TakerGets
	}
	out, err := template.WithValue(total)
	return out, err == nil
}

// OfferCancel removes an offer.
type OfferCancel struct {
	tx.BaseTx

	OfferSequence uint32 `xrpl:"OfferSequence"`
}

// NewOfferCancel creates a new OfferCancel transaction
func NewOfferCancel(account string, sequence uint32) *OfferCancel {
	return &OfferCancel{BaseTx: *tx.NewBaseTx(tx.TypeOfferCancel, account), OfferSequence: sequence}
}
