package explain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/message"

	"github.com/LeJamon/goXRPLwallet/internal/core/codec"
	"github.com/LeJamon/goXRPLwallet/internal/core/meta"
	"github.com/LeJamon/goXRPLwallet/internal/core/tx"
	"github.com/LeJamon/goXRPLwallet/internal/core/tx/nftoken"
	"github.com/LeJamon/goXRPLwallet/internal/core/types"
)

func init() {
	register(tx.TypeNFTokenMint, handler{
		label: fixedLabel("NFT Minted"),
		describe: func(t tx.Transaction, p *message.Printer) []string {
			n := t.(*nftoken.NFTokenMint)
			out := []string{p.Sprintf("%s mints an NFT with taxon %s.", n.Account, tag(&n.NFTokenTaxon))}
			if n.Issuer != "" {
				out = append(out, p.Sprintf("It is minted on behalf of %s.", n.Issuer))
			}
			if n.URI != "" {
				out = append(out, p.Sprintf("The URI is %s.", codec.ToDisplayableText(n.URI)))
			}
			if n.TransferFee != nil {
				// TransferFee is in units of 1/100,000.
				fee := decimal.New(int64(*n.TransferFee), -3).String() + "%"
				out = append(out, p.Sprintf("The transfer fee is %s.", fee))
			}
			if a, ok := amountPtr(n.Amount); ok && n.Destination != "" {
				out = append(out, p.Sprintf("It is offered to %s for %s.", n.Destination, a.String()))
			}
			return out
		},
		participants: withEnd(func(t tx.Transaction) string { return t.(*nftoken.NFTokenMint).Destination }),
	})
	register(tx.TypeNFTokenBurn, handler{
		label: fixedLabel("NFT Burned"),
		describe: func(t tx.Transaction, p *message.Printer) []string {
			n := t.(*nftoken.NFTokenBurn)
			return []string{p.Sprintf("%s burns NFT %s.", n.Account, n.NFTokenID)}
		},
		participants: withEnd(func(t tx.Transaction) string { return t.(*nftoken.NFTokenBurn).Owner }),
	})
	register(tx.TypeNFTokenCreateOffer, handler{
		label: fixedLabel("NFT Offer Created"),
		describe: func(t tx.Transaction, p *message.Printer) []string {
			n := t.(*nftoken.NFTokenCreateOffer)
			var out []string
			if n.IsSellOffer() {
				out = append(out, p.Sprintf("%s offers to sell NFT %s for %s.", n.Account, n.NFTokenID, n.Amount.String()))
			} else {
				out = append(out, p.Sprintf("%s offers to buy NFT %s from %s for %s.", n.Account, n.NFTokenID, n.Owner, n.Amount.String()))
			}
			if n.Destination != "" {
				out = append(out, p.Sprintf("Only %s can accept the offer.", n.Destination))
			}
			if n.Expiration != nil {
				out = append(out, p.Sprintf("It expires at %s.", rippleTime(*n.Expiration)))
			}
			return out
		},
		participants: withEnd(func(t tx.Transaction) string {
			n := t.(*nftoken.NFTokenCreateOffer)
			if n.Destination != "" {
				return n.Destination
			}
			return n.Owner
		}),
		value: func(t tx.Transaction, _ *meta.Metadata) (types.Amount, bool) {
			return amountOf(t.(*nftoken.NFTokenCreateOffer).Amount)
		},
	})
	register(tx.TypeNFTokenCancelOffer, handler{
		label: fixedLabel("NFT Offers Cancelled"),
		describe: func(t tx.Transaction, p *message.Printer) []string {
			n := t.(*nftoken.NFTokenCancelOffer)
			out := make([]string, 0, len(n.NFTokenOffers)+1)
			out = append(out, p.Sprintf("%s cancels NFT offers.", n.Account))
			for _, id := range n.NFTokenOffers {
				out = append(out, p.Sprintf("Offer %s is cancelled.", id))
			}
			return out
		},
	})
	register(tx.TypeNFTokenAcceptOffer, handler{
		label: fixedLabel("NFT Offer Accepted"),
		describe: func(t tx.Transaction, p *message.Printer) []string {
			n := t.(*nftoken.NFTokenAcceptOffer)
			if n.IsBrokered() {
				out := []string{p.Sprintf("%s brokers the sale of an NFT between offers %s and %s.", n.Account, n.NFTokenSellOffer, n.NFTokenBuyOffer)}
				if fee, ok := amountPtr(n.NFTokenBrokerFee); ok {
					out = append(out, p.Sprintf("The broker fee is %s.", fee.String()))
				}
				return out
			}
			offerID := n.NFTokenSellOffer
			if offerID == "" {
				offerID = n.NFTokenBuyOffer
			}
			return []string{p.Sprintf("%s accepts NFT offer %s.", n.Account, offerID)}
		},
	})
	register(tx.TypeNFTokenModify, handler{
		label: fixedLabel("NFT Modified"),
		describe: func(t tx.Transaction, p *message.Printer) []string {
			n := t.(*nftoken.NFTokenModify)
			out := []string{p.Sprintf("%s modifies NFT %s.", n.Account, n.NFTokenID)}
			if n.URI != "" {
				out = append(out, p.Sprintf("The URI is %s.", codec.ToDisplayableText(n.URI)))
			}
			return out
		},
		participants: withEnd(func(t tx.Transaction) string { return t.(*nftoken.NFTokenModify).Owner }),
	})
}
