package explain

import (
	"golang.org/x/text/message"

	"github.com/LeJamon/goXRPLwallet/internal/core/amendment"
	"github.com/LeJamon/goXRPLwallet/internal/core/codec"
	"github.com/LeJamon/goXRPLwallet/internal/core/meta"
	"github.com/LeJamon/goXRPLwallet/internal/core/tx"
	"github.com/LeJamon/goXRPLwallet/internal/core/tx/mpt"
	"github.com/LeJamon/goXRPLwallet/internal/core/tx/oracle"
	"github.com/LeJamon/goXRPLwallet/internal/core/tx/system"
	"github.com/LeJamon/goXRPLwallet/internal/core/tx/xchain"
	"github.com/LeJamon/goXRPLwallet/internal/core/types"
)

func init() {
	// Pseudo transactions are signed but never submitted.
	register(tx.TypeSignIn, handler{unsupported: true})
	register(tx.TypePaymentChannelAuthorize, handler{unsupported: true})

	register(tx.TypeOracleSet, handler{
		label: fixedLabel("Oracle Updated"),
		describe: func(t tx.Transaction, p *message.Printer) []string {
			o := t.(*oracle.OracleSet)
			out := []string{p.Sprintf("%s publishes prices on oracle %s.", o.Account, tag(&o.OracleDocumentID))}
			if o.Provider != "" {
				out = append(out, p.Sprintf("The provider is %s.", codec.ToDisplayableText(o.Provider)))
			}
			for _, pd := range o.Series() {
				pair := codec.DecodeCurrencyCode(pd.BaseAsset) + "/" + codec.DecodeCurrencyCode(pd.QuoteAsset)
				if price, ok := pd.Price(); ok {
					out = append(out, p.Sprintf("%s is priced at %s.", pair, price))
				} else {
					out = append(out, p.Sprintf("%s is removed.", pair))
				}
			}
			return out
		},
	})
	register(tx.TypeOracleDelete, handler{
		label: fixedLabel("Oracle Deleted"),
		describe: func(t tx.Transaction, p *message.Printer) []string {
			o := t.(*oracle.OracleDelete)
			return []string{p.Sprintf("%s deletes oracle %s.", o.Account, tag(&o.OracleDocumentID))}
		},
	})

	register(tx.TypeMPTokenIssuanceCreate, handler{
		label: fixedLabel("Token Issuance Created"),
		describe: func(t tx.Transaction, p *message.Printer) []string {
			m := t.(*mpt.MPTokenIssuanceCreate)
			out := []string{p.Sprintf("%s creates a multi-purpose token issuance.", m.Account)}
			if m.MaximumAmount != "" {
				out = append(out, p.Sprintf("At most %s tokens can be issued.", m.MaximumAmount))
			}
			return out
		},
	})
	register(tx.TypeMPTokenIssuanceDestroy, handler{
		label: fixedLabel("Token Issuance Destroyed"),
		describe: func(t tx.Transaction, p *message.Printer) []string {
			m := t.(*mpt.MPTokenIssuanceDestroy)
			return []string{p.Sprintf("%s destroys token issuance %s.", m.Account, m.MPTokenIssuanceID)}
		},
	})
	register(tx.TypeMPTokenIssuanceSet, handler{
		label: fixedLabel("Token Issuance Updated"),
		describe: func(t tx.Transaction, p *message.Printer) []string {
			m := t.(*mpt.MPTokenIssuanceSet)
			if m.Holder != "" {
				return []string{p.Sprintf("%s updates the tokens of %s in issuance %s.", m.Account, m.Holder, m.MPTokenIssuanceID)}
			}
			return []string{p.Sprintf("%s updates token issuance %s.", m.Account, m.MPTokenIssuanceID)}
		},
		participants: withEnd(func(t tx.Transaction) string { return t.(*mpt.MPTokenIssuanceSet).Holder }),
	})
	register(tx.TypeMPTokenAuthorize, handler{
		label: fixedLabel("Token Authorized"),
		describe: func(t tx.Transaction, p *message.Printer) []string {
			m := t.(*mpt.MPTokenAuthorize)
			revoke := m.HasFlag(mpt.MPTokenAuthorizeFlagUnauthorize)
			switch {
			case m.Holder != "" && revoke:
				return []string{p.Sprintf("%s revokes %s from holding issuance %s.", m.Account, m.Holder, m.MPTokenIssuanceID)}
			case m.Holder != "":
				return []string{p.Sprintf("%s authorizes %s to hold issuance %s.", m.Account, m.Holder, m.MPTokenIssuanceID)}
			case revoke:
				return []string{p.Sprintf("%s stops holding issuance %s.", m.Account, m.MPTokenIssuanceID)}
			default:
				return []string{p.Sprintf("%s opts in to issuance %s.", m.Account, m.MPTokenIssuanceID)}
			}
		},
		participants: withEnd(func(t tx.Transaction) string { return t.(*mpt.MPTokenAuthorize).Holder }),
	})

	registerXChain()

	register(tx.TypeAmendment, handler{
		label: fixedLabel("Amendment"),
		describe: func(t tx.Transaction, p *message.Printer) []string {
			a := t.(*system.EnableAmendment)
			name := a.Amendment
			if f, ok := amendment.Lookup(a.Amendment); ok {
				name = f.Name
			}
			switch {
			case a.HasFlag(system.EnableAmendmentFlagGotMajority):
				return []string{p.Sprintf("Amendment %s gained majority support.", name)}
			case a.HasFlag(system.EnableAmendmentFlagLostMajority):
				return []string{p.Sprintf("Amendment %s lost majority support.", name)}
			default:
				return []string{p.Sprintf("Amendment %s is enabled.", name)}
			}
		},
	})
	register(tx.TypeFee, handler{
		label: fixedLabel("Fee Change"),
		describe: func(t tx.Transaction, p *message.Printer) []string {
			f := t.(*system.SetFee)
			out := []string{p.Sprintf("The network changes its fees and reserves.")}
			if a, ok := amountPtr(f.ReserveBaseDrops); ok {
				out = append(out, p.Sprintf("The base reserve becomes %s.", a.String()))
			}
			if a, ok := amountPtr(f.ReserveIncrementDrops); ok {
				out = append(out, p.Sprintf("The owner reserve becomes %s.", a.String()))
			}
			return out
		},
	})
	register(tx.TypeUNLModify, handler{
		label: fixedLabel("Negative UNL Change"),
		describe: func(t tx.Transaction, p *message.Printer) []string {
			u := t.(*system.UNLModify)
			if u.UNLModifyDisabling == 1 {
				return []string{p.Sprintf("The network disables validator %s.", u.UNLModifyValidator)}
			}
			return []string{p.Sprintf("The network re-enables validator %s.", u.UNLModifyValidator)}
		},
	})
}

func registerXChain() {
	bridgeDescription := func(key string) func(tx.Transaction, *message.Printer) []string {
		return func(t tx.Transaction, p *message.Printer) []string {
			bridge, _ := tx.Field(t, "XChainBridge")
			b, _ := bridge.(xchain.Bridge)
			locking, issuing := xchain.BridgeDoors(b)
			return []string{p.Sprintf(key, t.GetCommon().Account, locking, issuing)}
		}
	}

	register(tx.TypeXChainCreateBridge, handler{
		label:    fixedLabel("Bridge Created"),
		describe: bridgeDescription("%s creates the bridge between door %s and door %s."),
	})
	register(tx.TypeXChainModifyBridge, handler{
		label:    fixedLabel("Bridge Modified"),
		describe: bridgeDescription("%s modifies the bridge between door %s and door %s."),
	})
	register(tx.TypeXChainCreateClaimID, handler{
		label:    fixedLabel("Bridge Claim Reserved"),
		describe: bridgeDescription("%s reserves a claim ID on the bridge between door %s and door %s."),
	})
	register(tx.TypeXChainAddClaimAttestation, handler{
		label:    fixedLabel("Bridge Attestation"),
		describe: bridgeDescription("%s attests a transfer on the bridge between door %s and door %s."),
	})
	register(tx.TypeXChainAddAccountCreateAttest, handler{
		label:    fixedLabel("Bridge Attestation"),
		describe: bridgeDescription("%s attests an account creation on the bridge between door %s and door %s."),
	})
	register(tx.TypeXChainCommit, handler{
		label: fixedLabel("Bridge Transfer Sent"),
		describe: func(t tx.Transaction, p *message.Printer) []string {
			c := t.(*xchain.XChainCommit)
			out := []string{p.Sprintf("%s commits %s to claim %s on the other chain.", c.Account, c.Amount.String(), c.XChainClaimID)}
			if c.OtherChainDestination != "" {
				out = append(out, p.Sprintf("The funds go to %s.", c.OtherChainDestination))
			}
			return out
		},
		participants: withEnd(func(t tx.Transaction) string { return t.(*xchain.XChainCommit).OtherChainDestination }),
		value:        func(t tx.Transaction, _ *meta.Metadata) (types.Amount, bool) { return amountOf(t.(*xchain.XChainCommit).Amount) },
	})
	register(tx.TypeXChainClaim, handler{
		label: fixedLabel("Bridge Transfer Claimed"),
		describe: func(t tx.Transaction, p *message.Printer) []string {
			c := t.(*xchain.XChainClaim)
			return []string{p.Sprintf("%s claims %s for %s with claim %s.", c.Account, c.Amount.String(), c.Destination, c.XChainClaimID)}
		},
		participants: withEnd(func(t tx.Transaction) string { return t.(*xchain.XChainClaim).Destination }),
		value:        func(t tx.Transaction, _ *meta.Metadata) (types.Amount, bool) { return amountOf(t.(*xchain.XChainClaim).Amount) },
	})
	register(tx.TypeXChainAccountCreateCommit, handler{
		label: fixedLabel("Bridge Account Funded"),
		describe: func(t tx.Transaction, p *message.Printer) []string {
			c := t.(*xchain.XChainAccountCreateCommit)
			return []string{p.Sprintf("%s sends %s to create %s on the other chain.", c.Account, c.Amount.String(), c.Destination)}
		},
		participants: withEnd(func(t tx.Transaction) string { return t.(*xchain.XChainAccountCreateCommit).Destination }),
		value: func(t tx.Transaction, _ *meta.Metadata) (types.Amount, bool) {
			return amountOf(t.(*xchain.XChainAccountCreateCommit).Amount)
		},
	})
}
