package explain

import (
	"fmt"

	"golang.org/x/text/message"

	"github.com/LeJamon/goXRPLwallet/internal/core/codec"
	"github.com/LeJamon/goXRPLwallet/internal/core/ledger/entry"
)

// entryHandler explains a ledger entry in an account's object list.
type entryHandler struct {
	label    string
	describe func(e entry.Entry, v View, p *message.Printer) string
}

var entryHandlers = map[entry.Type]entryHandler{
	entry.TypeAccountRoot: {"Account", func(e entry.Entry, _ View, p *message.Printer) string {
		a := e.(*entry.AccountRoot)
		return p.Sprintf("Account %s holds %s and owns %s objects.", a.Account, a.Balance.String(), tag(&a.OwnerCount))
	}},
	entry.TypeRippleState: {"Trust Line", describeRippleState},
	entry.TypeOffer: {"Offer", func(e entry.Entry, _ View, p *message.Printer) string {
		o := e.(*entry.Offer)
		return p.Sprintf("%s offers to sell %s in exchange for %s.", o.Account, o.TakerGets.String(), o.TakerPays.String())
	}},
	entry.TypeEscrow: {"Escrow", func(e entry.Entry, _ View, p *message.Printer) string {
		x := e.(*entry.Escrow)
		amount, ok := x.EffectiveAmount()
		if !ok {
			amount = x.Amount
		}
		return p.Sprintf("%s escrows %s for %s.", x.Account, amount.String(), x.Destination)
	}},
	entry.TypeCheck: {"Check", func(e entry.Entry, _ View, p *message.Printer) string {
		c := e.(*entry.Check)
		return p.Sprintf("%s writes a check to %s for up to %s.", c.Account, c.Destination, c.SendMax.String())
	}},
	entry.TypePayChannel: {"Payment Channel", func(e entry.Entry, _ View, p *message.Printer) string {
		c := e.(*entry.PayChannel)
		remaining, err := c.Remaining()
		if err != nil {
			remaining = c.Amount
		}
		return p.Sprintf("Payment channel from %s to %s has %s left.", c.Account, c.Destination, remaining.String())
	}},
	entry.TypeSignerList: {"Signer List", func(e entry.Entry, _ View, p *message.Printer) string {
		s := e.(*entry.SignerList)
		total := s.TotalWeight()
		return p.Sprintf("A signer list with quorum %s out of a total weight of %s.", tag(&s.SignerQuorum), tag(&total))
	}},
	entry.TypeTicket: {"Ticket", func(e entry.Entry, _ View, p *message.Printer) string {
		t := e.(*entry.Ticket)
		return p.Sprintf("Ticket %s of %s.", tag(&t.TicketSequence), t.Account)
	}},
	entry.TypeDepositPreauth: {"Deposit Preauthorization", func(e entry.Entry, _ View, p *message.Printer) string {
		d := e.(*entry.DepositPreauth)
		return p.Sprintf("%s authorizes %s to send it payments.", d.Account, d.Authorize)
	}},
	entry.TypeDID: {"DID", func(e entry.Entry, _ View, p *message.Printer) string {
		d := e.(*entry.DID)
		return p.Sprintf("The decentralized identifier of %s.", d.Account)
	}},
	entry.TypeCredential: {"Credential", func(e entry.Entry, _ View, p *message.Printer) string {
		c := e.(*entry.Credential)
		if c.IsAccepted() {
			return p.Sprintf("%s holds an accepted %s credential issued by %s.", c.Subject, c.DisplayType(), c.Issuer)
		}
		return p.Sprintf("%s was offered a %s credential by %s.", c.Subject, c.DisplayType(), c.Issuer)
	}},
	entry.TypeDirectoryNode: {"Directory", func(e entry.Entry, _ View, p *message.Printer) string {
		d := e.(*entry.DirectoryNode)
		count := uint32(len(d.Indexes))
		if d.IsBookDirectory() {
			return p.Sprintf("An order book page listing %s offers.", tag(&count))
		}
		return p.Sprintf("An owner directory page of %s listing %s objects.", d.Owner, tag(&count))
	}},
	entry.TypeAMM: {"AMM", func(e entry.Entry, _ View, p *message.Printer) string {
		a := e.(*entry.AMM)
		return p.Sprintf("The %s pool with a trading fee of %s.", pool(a.Asset, a.Asset2), a.TradingFeePercent().String()+"%")
	}},
	entry.TypeNFTokenOffer: {"NFT Offer", func(e entry.Entry, _ View, p *message.Printer) string {
		o := e.(*entry.NFTokenOffer)
		if o.IsSellOffer() {
			return p.Sprintf("%s offers to sell NFT %s for %s.", o.Owner, o.NFTokenID, o.Amount.String())
		}
		return p.Sprintf("%s offers to buy NFT %s for %s.", o.Owner, o.NFTokenID, o.Amount.String())
	}},
	entry.TypeNFTokenPage: {"NFT Page", func(e entry.Entry, _ View, p *message.Printer) string {
		count := uint32(len(e.(*entry.NFTokenPage).TokenIDs()))
		return p.Sprintf("A page holding %s NFTs.", tag(&count))
	}},
	entry.TypeOracle: {"Oracle", func(e entry.Entry, _ View, p *message.Printer) string {
		o := e.(*entry.Oracle)
		count := uint32(len(o.Series()))
		return p.Sprintf("An oracle of %s by %s publishing %s prices.", o.Owner, codec.ToDisplayableText(o.Provider), tag(&count))
	}},
	entry.TypeBridge: {"Bridge", func(e entry.Entry, _ View, p *message.Printer) string {
		locking, issuing := e.(*entry.Bridge).Doors()
		return p.Sprintf("A bridge between door %s and door %s.", locking, issuing)
	}},
	entry.TypeMPTokenIssuance: {"Token Issuance", func(e entry.Entry, _ View, p *message.Printer) string {
		m := e.(*entry.MPTokenIssuance)
		outstanding, err := m.Outstanding()
		if err != nil {
			return p.Sprintf("A multi-purpose token issued by %s.", m.Issuer)
		}
		return p.Sprintf("A multi-purpose token issued by %s with %s outstanding.", m.Issuer, outstanding.String())
	}},
	entry.TypeMPToken: {"Token Holding", func(e entry.Entry, _ View, p *message.Printer) string {
		m := e.(*entry.MPToken)
		amount := m.MPTAmount
		if amount == "" {
			amount = "0"
		}
		return p.Sprintf("%s holds %s of token issuance %s.", m.Account, amount, m.MPTokenIssuanceID)
	}},
}

func entryHandlerFor(e entry.Entry) (entryHandler, error) {
	h, ok := entryHandlers[e.EntryType()]
	if !ok {
		return entryHandler{}, fmt.Errorf("%w: ledger entry %s", ErrUnsupportedOperation, e.TypeName())
	}
	return h, nil
}

// LabelEntry returns a short localized tag for a ledger entry.
func LabelEntry(e entry.Entry, v View) (string, error) {
	h, err := entryHandlerFor(e)
	if err != nil {
		return "", err
	}
	return printer(v).Sprintf(h.label), nil
}

// DescribeEntry returns a localized description of a ledger entry. Trust
// lines are described from the view account's side when it is a party.
func DescribeEntry(e entry.Entry, v View) (string, error) {
	h, err := entryHandlerFor(e)
	if err != nil {
		return "", err
	}
	return h.describe(e, v, printer(v)), nil
}

func describeRippleState(e entry.Entry, v View, p *message.Printer) string {
	r := e.(*entry.RippleState)
	account := v.Account
	if _, ok := r.Counterparty(account); !ok {
		account = r.LowAccount()
	}
	balance, ok := r.BalanceFor(account)
	if !ok {
		return p.Sprintf("A trust line for %s.", r.Balance.DisplayCurrency())
	}
	limit, _ := r.LimitFor(account)
	return p.Sprintf("%s holds %s issued by %s with a limit of %s.",
		account, balance.String(), balance.Issuer(), limit.Normalized())
}
