package explain

import (
	"golang.org/x/text/message"

	"github.com/LeJamon/goXRPLwallet/internal/core/codec"
	"github.com/LeJamon/goXRPLwallet/internal/core/tx"
	"github.com/LeJamon/goXRPLwallet/internal/core/tx/account"
	"github.com/LeJamon/goXRPLwallet/internal/core/tx/credential"
	"github.com/LeJamon/goXRPLwallet/internal/core/tx/did"
)

var accountSetFlags = map[uint32]string{
	account.AsfRequireDest:               "require destination tag",
	account.AsfRequireAuth:               "require authorization",
	account.AsfDisallowXRP:               "disallow XRP",
	account.AsfDisableMaster:             "disable master key",
	account.AsfAccountTxnID:              "track account transaction ID",
	account.AsfNoFreeze:                  "no freeze",
	account.AsfGlobalFreeze:              "global freeze",
	account.AsfDefaultRipple:             "default ripple",
	account.AsfDepositAuth:               "deposit authorization",
	account.AsfAuthorizedNFTokenMinter:   "authorized NFT minter",
	account.AsfDisallowIncomingNFTOffer:  "disallow incoming NFT offers",
	account.AsfDisallowIncomingCheck:     "disallow incoming checks",
	account.AsfDisallowIncomingPayChan:   "disallow incoming payment channels",
	account.AsfDisallowIncomingTrustline: "disallow incoming trust lines",
	account.AsfAllowTrustLineClawback:    "allow trust line clawback",
}

func flagName(flag uint32) string {
	if name, ok := accountSetFlags[flag]; ok {
		return name
	}
	return tag(&flag)
}

func init() {
	register(tx.TypeAccountSet, handler{
		label:    fixedLabel("Account Settings Updated"),
		describe: describeAccountSet,
	})
	register(tx.TypeAccountDelete, handler{
		label: directional("Account Deleted", "Account Merged In", "Account Deleted", func(t tx.Transaction) string {
			return t.(*account.AccountDelete).Destination
		}),
		describe: func(t tx.Transaction, p *message.Printer) []string {
			d := t.(*account.AccountDelete)
			out := []string{p.Sprintf("%s deletes the account and sends the remaining balance to %s.", d.Account, d.Destination)}
			if d.DestinationTag != nil {
				out = append(out, p.Sprintf("The destination tag is %s.", tag(d.DestinationTag)))
			}
			return out
		},
		participants: withEnd(func(t tx.Transaction) string { return t.(*account.AccountDelete).Destination }),
		validate:     validateAccountDelete,
	})
	register(tx.TypeRegularKeySet, handler{
		label: fixedLabel("Regular Key Updated"),
		describe: func(t tx.Transaction, p *message.Printer) []string {
			k := t.(*account.SetRegularKey)
			if k.RegularKey == "" {
				return []string{p.Sprintf("%s removes its regular key.", k.Account)}
			}
			return []string{p.Sprintf("%s sets its regular key to %s.", k.Account, k.RegularKey)}
		},
		participants: withEnd(func(t tx.Transaction) string { return t.(*account.SetRegularKey).RegularKey }),
	})
	register(tx.TypeSignerListSet, handler{
		label: fixedLabel("Signer List Updated"),
		describe: func(t tx.Transaction, p *message.Printer) []string {
			s := t.(*account.SignerListSet)
			if s.IsDelete() {
				return []string{p.Sprintf("%s removes its signer list.", s.Account)}
			}
			out := []string{p.Sprintf("%s sets a signer list with quorum %s.", s.Account, tag(&s.SignerQuorum))}
			for _, e := range s.SignerEntries {
				weight := uint32(e.SignerWeight)
				out = append(out, p.Sprintf("%s signs with weight %s.", e.Account, tag(&weight)))
			}
			return out
		},
	})
	register(tx.TypeTicketCreate, handler{
		label: fixedLabel("Tickets Created"),
		describe: func(t tx.Transaction, p *message.Printer) []string {
			c := t.(*account.TicketCreate)
			return []string{p.Sprintf("%s sets aside %s tickets.", c.Account, tag(&c.TicketCount))}
		},
	})
	register(tx.TypeDepositPreauth, handler{
		label: fixedLabel("Deposit Preauthorized"),
		describe: func(t tx.Transaction, p *message.Printer) []string {
			d := t.(*account.DepositPreauth)
			switch {
			case d.Authorize != "":
				return []string{p.Sprintf("%s authorizes %s to send it payments.", d.Account, d.Authorize)}
			case d.Unauthorize != "":
				return []string{p.Sprintf("%s revokes the deposit authorization of %s.", d.Account, d.Unauthorize)}
			default:
				return []string{p.Sprintf("%s updates its credential-based deposit authorization.", d.Account)}
			}
		},
		participants: withEnd(func(t tx.Transaction) string {
			d := t.(*account.DepositPreauth)
			if d.Authorize != "" {
				return d.Authorize
			}
			return d.Unauthorize
		}),
	})

	register(tx.TypeDIDSet, handler{
		label: fixedLabel("DID Updated"),
		describe: func(t tx.Transaction, p *message.Printer) []string {
			d := t.(*did.DIDSet)
			out := []string{p.Sprintf("%s sets its decentralized identifier.", d.Account)}
			if d.URI != "" {
				out = append(out, p.Sprintf("The URI is %s.", codec.ToDisplayableText(d.URI)))
			}
			return out
		},
	})
	register(tx.TypeDIDDelete, handler{
		label: fixedLabel("DID Deleted"),
		describe: func(t tx.Transaction, p *message.Printer) []string {
			return []string{p.Sprintf("%s deletes its decentralized identifier.", t.GetCommon().Account)}
		},
	})

	register(tx.TypeCredentialCreate, handler{
		label: directional("Credential Issued", "Credential Received", "Credential Issued", func(t tx.Transaction) string {
			return t.(*credential.CredentialCreate).Subject
		}),
		describe: func(t tx.Transaction, p *message.Printer) []string {
			c := t.(*credential.CredentialCreate)
			out := []string{p.Sprintf("%s issues a %s credential to %s.", c.Account, codec.ToDisplayableText(c.CredentialType), c.Subject)}
			if c.Expiration != nil {
				out = append(out, p.Sprintf("It expires at %s.", rippleTime(*c.Expiration)))
			}
			return out
		},
		participants: withEnd(func(t tx.Transaction) string { return t.(*credential.CredentialCreate).Subject }),
	})
	register(tx.TypeCredentialAccept, handler{
		label: fixedLabel("Credential Accepted"),
		describe: func(t tx.Transaction, p *message.Printer) []string {
			c := t.(*credential.CredentialAccept)
			return []string{p.Sprintf("%s accepts the %s credential issued by %s.", c.Account, codec.ToDisplayableText(c.CredentialType), c.Issuer)}
		},
		participants: withEnd(func(t tx.Transaction) string { return t.(*credential.CredentialAccept).Issuer }),
	})
	register(tx.TypeCredentialDelete, handler{
		label: fixedLabel("Credential Deleted"),
		describe: func(t tx.Transaction, p *message.Printer) []string {
			c := t.(*credential.CredentialDelete)
			return []string{p.Sprintf("%s deletes a %s credential.", c.Account, codec.ToDisplayableText(c.CredentialType))}
		},
		participants: withEnd(func(t tx.Transaction) string {
			c := t.(*credential.CredentialDelete)
			if c.Subject != "" && c.Subject != c.Account {
				return c.Subject
			}
			return c.Issuer
		}),
	})
}

func describeAccountSet(t tx.Transaction, p *message.Printer) []string {
	a := t.(*account.AccountSet)
	if a.IsNoOp() {
		return []string{p.Sprintf("%s sends an account update that changes no settings.", a.Account)}
	}
	out := []string{p.Sprintf("%s updates its account settings.", a.Account)}
	if a.SetFlag != nil {
		out = append(out, p.Sprintf("It enables %s.", flagName(*a.SetFlag)))
	}
	if a.ClearFlag != nil {
		out = append(out, p.Sprintf("It disables %s.", flagName(*a.ClearFlag)))
	}
	if a.Domain != "" {
		out = append(out, p.Sprintf("It sets the domain to %s.", codec.ToDisplayableText(a.Domain)))
	}
	if a.TransferRate != nil {
		out = append(out, p.Sprintf("It sets the transfer rate to %s.", tag(a.TransferRate)))
	}
	if a.NFTokenMinter != "" {
		out = append(out, p.Sprintf("It authorizes %s to mint NFTs for it.", a.NFTokenMinter))
	}
	return out
}
