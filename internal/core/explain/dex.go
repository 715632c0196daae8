package explain

import (
	"golang.org/x/text/message"

	"github.com/LeJamon/goXRPLwallet/internal/core/meta"
	"github.com/LeJamon/goXRPLwallet/internal/core/tx"
	"github.com/LeJamon/goXRPLwallet/internal/core/tx/amm"
	"github.com/LeJamon/goXRPLwallet/internal/core/tx/clawback"
	"github.com/LeJamon/goXRPLwallet/internal/core/tx/offer"
	"github.com/LeJamon/goXRPLwallet/internal/core/tx/trustset"
	"github.com/LeJamon/goXRPLwallet/internal/core/types"
)

func init() {
	register(tx.TypeTrustSet, handler{
		label: func(t tx.Transaction, _ View) string {
			if t.(*trustset.TrustSet).IsRemoval() {
				return "Trust Line Removed"
			}
			return "Trust Line Updated"
		},
		describe:     describeTrustSet,
		participants: withEnd(func(t tx.Transaction) string { return t.(*trustset.TrustSet).LimitAmount.Issuer() }),
		value: func(t tx.Transaction, _ *meta.Metadata) (types.Amount, bool) {
			return amountOf(t.(*trustset.TrustSet).LimitAmount)
		},
		validate: validateTrustSet,
	})

	register(tx.TypeOfferCreate, handler{
		label: fixedLabel("Offer Created"),
		describe: func(t tx.Transaction, p *message.Printer) []string {
			o := t.(*offer.OfferCreate)
			out := []string{p.Sprintf("%s offers to sell %s in exchange for %s.", o.Account, o.TakerGets.String(), o.TakerPays.String())}
			if rate, ok := o.Rate(); ok {
				out = append(out, p.Sprintf("The rate is %s %s per %s.", rate.String(), o.TakerPays.DisplayCurrency(), o.TakerGets.DisplayCurrency()))
			}
			if o.OfferSequence != nil {
				out = append(out, p.Sprintf("It replaces offer %s.", tag(o.OfferSequence)))
			}
			return out
		},
		value: func(t tx.Transaction, _ *meta.Metadata) (types.Amount, bool) {
			return amountOf(t.(*offer.OfferCreate).TakerGets)
		},
		validate: validateOfferCreate,
	})
	register(tx.TypeOfferCancel, handler{
		label: fixedLabel("Offer Cancelled"),
		describe: func(t tx.Transaction, p *message.Printer) []string {
			o := t.(*offer.OfferCancel)
			return []string{p.Sprintf("%s cancels offer %s.", o.Account, tag(&o.OfferSequence))}
		},
	})

	register(tx.TypeClawback, handler{
		label: fixedLabel("Tokens Clawed Back"),
		describe: func(t tx.Transaction, p *message.Printer) []string {
			c := t.(*clawback.Clawback)
			return []string{p.Sprintf("%s claws back %s from %s.", c.Account, c.Amount.String(), c.HolderAccount())}
		},
		participants: withEnd(func(t tx.Transaction) string { return t.(*clawback.Clawback).HolderAccount() }),
		value:        func(t tx.Transaction, _ *meta.Metadata) (types.Amount, bool) { return amountOf(t.(*clawback.Clawback).Amount) },
	})

	register(tx.TypeAMMCreate, handler{
		label: fixedLabel("AMM Created"),
		describe: func(t tx.Transaction, p *message.Printer) []string {
			a := t.(*amm.AMMCreate)
			return []string{
				p.Sprintf("%s creates an AMM pool with %s and %s.", a.Account, a.Amount.String(), a.Amount2.String()),
				p.Sprintf("The trading fee is %s.", amm.TradingFeeDisplay(a.TradingFee)),
			}
		},
	})
	register(tx.TypeAMMDeposit, handler{
		label: fixedLabel("AMM Deposit"),
		describe: func(t tx.Transaction, p *message.Printer) []string {
			a := t.(*amm.AMMDeposit)
			out := []string{p.Sprintf("%s deposits into the %s pool.", a.Account, pool(a.Asset, a.Asset2))}
			return append(out, poolAmounts(p, a.Amount, a.Amount2)...)
		},
		value: func(t tx.Transaction, _ *meta.Metadata) (types.Amount, bool) { return amountPtr(t.(*amm.AMMDeposit).Amount) },
	})
	register(tx.TypeAMMWithdraw, handler{
		label: fixedLabel("AMM Withdrawal"),
		describe: func(t tx.Transaction, p *message.Printer) []string {
			a := t.(*amm.AMMWithdraw)
			out := []string{p.Sprintf("%s withdraws from the %s pool.", a.Account, pool(a.Asset, a.Asset2))}
			if a.HasFlag(amm.AMMWithdrawFlagWithdrawAll) {
				out = append(out, p.Sprintf("It returns all of its LP tokens."))
			}
			return append(out, poolAmounts(p, a.Amount, a.Amount2)...)
		},
		value: func(t tx.Transaction, _ *meta.Metadata) (types.Amount, bool) { return amountPtr(t.(*amm.AMMWithdraw).Amount) },
	})
	register(tx.TypeAMMVote, handler{
		label: fixedLabel("AMM Fee Vote"),
		describe: func(t tx.Transaction, p *message.Printer) []string {
			a := t.(*amm.AMMVote)
			return []string{p.Sprintf("%s votes for a trading fee of %s on the %s pool.", a.Account, amm.TradingFeeDisplay(a.TradingFee), pool(a.Asset, a.Asset2))}
		},
	})
	register(tx.TypeAMMBid, handler{
		label: fixedLabel("AMM Auction Bid"),
		describe: func(t tx.Transaction, p *message.Printer) []string {
			a := t.(*amm.AMMBid)
			out := []string{p.Sprintf("%s bids for the auction slot of the %s pool.", a.Account, pool(a.Asset, a.Asset2))}
			if bid, ok := amountPtr(a.BidMax); ok {
				out = append(out, p.Sprintf("It bids at most %s.", bid.String()))
			}
			return out
		},
	})
	register(tx.TypeAMMDelete, handler{
		label: fixedLabel("AMM Deleted"),
		describe: func(t tx.Transaction, p *message.Printer) []string {
			a := t.(*amm.AMMDelete)
			return []string{p.Sprintf("%s deletes the empty %s pool.", a.Account, pool(a.Asset, a.Asset2))}
		},
	})
	register(tx.TypeAMMClawback, handler{
		label: fixedLabel("Tokens Clawed Back"),
		describe: func(t tx.Transaction, p *message.Printer) []string {
			a := t.(*amm.AMMClawback)
			return []string{p.Sprintf("%s claws back tokens %s deposited in the %s pool.", a.Account, a.Holder, pool(a.Asset, a.Asset2))}
		},
		participants: withEnd(func(t tx.Transaction) string { return t.(*amm.AMMClawback).Holder }),
		value:        func(t tx.Transaction, _ *meta.Metadata) (types.Amount, bool) { return amountPtr(t.(*amm.AMMClawback).Amount) },
	})
}

func describeTrustSet(t tx.Transaction, p *message.Printer) []string {
	ts := t.(*trustset.TrustSet)
	limit := ts.LimitAmount
	if ts.IsRemoval() {
		return []string{p.Sprintf("%s removes its trust line to %s for %s.", ts.Account, limit.Issuer(), limit.DisplayCurrency())}
	}
	out := []string{p.Sprintf("%s trusts %s for up to %s.", ts.Account, limit.Issuer(), limit.String())}
	switch {
	case ts.HasFlag(trustset.TrustSetFlagSetFreeze):
		out = append(out, p.Sprintf("The trust line is frozen."))
	case ts.HasFlag(trustset.TrustSetFlagClearFreeze):
		out = append(out, p.Sprintf("The trust line is unfrozen."))
	}
	if ts.HasFlag(trustset.TrustSetFlagSetNoRipple) {
		out = append(out, p.Sprintf("Rippling is disabled."))
	}
	return out
}

func pool(asset, asset2 types.Issue) string {
	return asset.DisplayCurrency() + "/" + asset2.DisplayCurrency()
}

func poolAmounts(p *message.Printer, amounts ...*types.Amount) []string {
	var out []string
	for _, a := range amounts {
		if a, ok := amountPtr(a); ok {
			out = append(out, p.Sprintf("The amount is %s.", a.String()))
		}
	}
	return out
}
