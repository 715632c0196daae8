package explain

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/LeJamon/goXRPLwallet/internal/core/ledger/entry"
	"github.com/LeJamon/goXRPLwallet/internal/core/tx"
	"github.com/LeJamon/goXRPLwallet/internal/core/tx/account"
	"github.com/LeJamon/goXRPLwallet/internal/core/tx/check"
	"github.com/LeJamon/goXRPLwallet/internal/core/tx/escrow"
	"github.com/LeJamon/goXRPLwallet/internal/core/tx/offer"
	"github.com/LeJamon/goXRPLwallet/internal/core/tx/paychan"
	"github.com/LeJamon/goXRPLwallet/internal/core/tx/payment"
	"github.com/LeJamon/goXRPLwallet/internal/core/tx/trustset"
	"github.com/LeJamon/goXRPLwallet/internal/core/types"
)

// LedgerLookup reads the ledger state validation depends on. Amounts are in
// display units.
type LedgerLookup interface {
	// AccountInfo returns an error wrapping ErrAccountNotFound for accounts
	// that do not exist.
	AccountInfo(ctx context.Context, account string) (*AccountInfo, error)
	TrustLines(ctx context.Context, account string) ([]TrustLine, error)
	Reserves(ctx context.Context) (*Reserves, error)
}

// AccountInfo is the root state of an account.
type AccountInfo struct {
	Account    string
	Balance    decimal.Decimal
	OwnerCount uint32
	Flags      uint32
}

// TrustLine is a trust line seen from the account it was listed for.
// Account is the counterparty.
type TrustLine struct {
	Account   string
	Currency  string
	Balance   decimal.Decimal
	Limit     decimal.Decimal
	LimitPeer decimal.Decimal
}

// Reserves are the current base and owner reserves.
type Reserves struct {
	Base      decimal.Decimal
	Increment decimal.Decimal
}

// Reserve returns the reserve an account with ownerCount objects must hold.
func (r *Reserves) Reserve(ownerCount uint32) decimal.Decimal {
	return r.Base.Add(r.Increment.Mul(decimal.NewFromInt(int64(ownerCount))))
}

// snapshot is the ledger state one validation reads.
type snapshot struct {
	source      *AccountInfo
	destination *AccountInfo
	reserves    *Reserves
	sourceLines []TrustLine
	destLines   []TrustLine
}

// query names what to fetch. Independent lookups run concurrently and the
// first failure cancels the rest.
type query struct {
	source      string
	destination string
	sourceLines bool
	destLines   bool
}

func fetch(ctx context.Context, l LedgerLookup, q query) (*snapshot, error) {
	var s snapshot
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		s.source, err = accountInfo(ctx, l, q.source)
		return err
	})
	g.Go(func() error {
		r, err := l.Reserves(ctx)
		if err != nil {
			return lookupFailure("reserves", "", err)
		}
		s.reserves = r
		return nil
	})
	if q.destination != "" {
		g.Go(func() (err error) {
			s.destination, err = accountInfo(ctx, l, q.destination)
			return err
		})
	}
	if q.sourceLines {
		g.Go(func() (err error) {
			s.sourceLines, err = trustLines(ctx, l, q.source)
			return err
		})
	}
	if q.destLines && q.destination != "" {
		g.Go(func() (err error) {
			s.destLines, err = trustLines(ctx, l, q.destination)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if s.source == nil {
		return nil, invalid(KindInsufficientBalance, "account %s is not funded", q.source)
	}
	return &s, nil
}

// accountInfo returns nil without error for accounts that do not exist.
func accountInfo(ctx context.Context, l LedgerLookup, account string) (*AccountInfo, error) {
	info, err := l.AccountInfo(ctx, account)
	if errors.Is(err, ErrAccountNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, lookupFailure("account_info", account, err)
	}
	return info, nil
}

func trustLines(ctx context.Context, l LedgerLookup, account string) ([]TrustLine, error) {
	lines, err := l.TrustLines(ctx, account)
	if errors.Is(err, ErrAccountNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, lookupFailure("account_lines", account, err)
	}
	return lines, nil
}

func lookupFailure(op, account string, err error) error {
	var le *LookupError
	if errors.As(err, &le) {
		return err
	}
	return &LookupError{Op: op, Account: account, Err: err}
}

// spendable is the native balance left after the reserve for the account's
// objects plus newObjects more.
func (s *snapshot) spendable(newObjects uint32) decimal.Decimal {
	return s.source.Balance.Sub(s.reserves.Reserve(s.source.OwnerCount + newObjects))
}

func findLine(lines []TrustLine, counterparty, currency string) (TrustLine, bool) {
	for _, line := range lines {
		if line.Account == counterparty && line.Currency == currency {
			return line, true
		}
	}
	return TrustLine{}, false
}

func positive(a types.Amount, field string) error {
	if !a.IsSet() || !a.Value().IsPositive() {
		return invalid(KindInvalidAmount, "%s must be a positive amount", field)
	}
	return nil
}

// fee returns the declared fee in display units.
func fee(t tx.Transaction) decimal.Decimal {
	if f, ok := t.GetCommon().FeeAmount(); ok {
		return f.Value()
	}
	return decimal.Zero
}

// canSpend checks that the source holds amount. Issuers spend their own
// tokens without limit.
func (s *snapshot) canSpend(amount types.Amount, extra decimal.Decimal, newObjects uint32) error {
	switch {
	case amount.IsNative():
		available := s.spendable(newObjects)
		if available.LessThan(amount.Value().Add(extra)) {
			return invalid(KindInsufficientBalance, "%s can spend %s XRP, %s is required",
				s.source.Account, decimal.Max(available, decimal.Zero).String(), amount.Value().Add(extra).String())
		}
	case amount.IsMPT():
	case amount.Issuer() == s.source.Account:
	default:
		line, ok := findLine(s.sourceLines, amount.Issuer(), amount.Currency())
		if !ok {
			return invalid(KindMissingTrustLine, "%s has no trust line for %s", s.source.Account, amount.Issue().String())
		}
		if line.Balance.LessThan(amount.Value()) {
			return invalid(KindInsufficientBalance, "%s holds %s %s, %s is required",
				s.source.Account, line.Balance.String(), amount.DisplayCurrency(), amount.Value().String())
		}
		if extra.IsPositive() && s.spendable(newObjects).LessThan(extra) {
			return invalid(KindInsufficientBalance, "%s cannot pay the fee", s.source.Account)
		}
	}
	return nil
}

// canReceive checks that the destination can hold amount.
func (s *snapshot) canReceive(destination string, amount types.Amount) error {
	if amount.IsNative() || amount.IsMPT() || amount.Issuer() == destination {
		return nil
	}
	line, ok := findLine(s.destLines, amount.Issuer(), amount.Currency())
	if !ok {
		return invalid(KindMissingTrustLine, "%s has no trust line for %s", destination, amount.Issue().String())
	}
	if line.Balance.Add(amount.Value()).GreaterThan(line.Limit) {
		return invalid(KindTrustLineLimitExceeded, "%s can receive at most %s %s",
			destination, decimal.Max(line.Limit.Sub(line.Balance), decimal.Zero).String(), amount.DisplayCurrency())
	}
	return nil
}

// destinationExists requires the destination account, except for native
// payments large enough to create it.
func (s *snapshot) destinationExists(destination string, creating *types.Amount) error {
	if s.destination != nil {
		return nil
	}
	if creating != nil && creating.IsNative() && !creating.Value().LessThan(s.reserves.Base) {
		return nil
	}
	if creating != nil && creating.IsNative() {
		return invalid(KindDestinationNotFound, "%s does not exist and at least %s XRP is needed to create it",
			destination, s.reserves.Base.String())
	}
	return invalid(KindDestinationNotFound, "%s does not exist", destination)
}

// tagged fails when an existing destination requires a destination tag and
// tag is absent.
func (s *snapshot) tagged(destination string, tag *uint32) error {
	if s.destination != nil && s.destination.Flags&entry.LsfRequireDestTag != 0 && tag == nil {
		return invalid(KindDestinationTagRequired, "%s requires a destination tag", destination)
	}
	return nil
}

func validatePayment(ctx context.Context, t tx.Transaction, l LedgerLookup) error {
	p := t.(*payment.Payment)
	amount := p.SendAmount()
	if err := positive(amount, "Amount"); err != nil {
		return err
	}
	if p.Destination == p.Account && !p.IsCrossCurrency() {
		return invalid(KindSelfPayment, "a payment to the sending account must convert currencies")
	}
	spend := amount
	if p.SendMax != nil {
		if err := positive(*p.SendMax, "SendMax"); err != nil {
			return err
		}
		spend = *p.SendMax
	}

	s, err := fetch(ctx, l, query{
		source:      p.Account,
		destination: p.Destination,
		sourceLines: !spend.IsNative(),
		destLines:   !amount.IsNative(),
	})
	if err != nil {
		return err
	}
	if err := s.destinationExists(p.Destination, &amount); err != nil {
		return err
	}
	if err := s.tagged(p.Destination, p.DestinationTag); err != nil {
		return err
	}
	if err := s.canSpend(spend, fee(t), 0); err != nil {
		return err
	}
	return s.canReceive(p.Destination, amount)
}

func validateTrustSet(ctx context.Context, t tx.Transaction, l LedgerLookup) error {
	ts := t.(*trustset.TrustSet)
	limit := ts.LimitAmount
	if !limit.IsSet() || limit.IsNative() || limit.Value().IsNegative() {
		return invalid(KindInvalidAmount, "LimitAmount must be a non-negative issued amount")
	}
	if limit.Issuer() == ts.Account {
		return invalid(KindInvalidAmount, "an account cannot trust itself")
	}

	s, err := fetch(ctx, l, query{source: ts.Account, destination: limit.Issuer(), sourceLines: true})
	if err != nil {
		return err
	}
	if err := s.destinationExists(limit.Issuer(), nil); err != nil {
		return err
	}
	if _, exists := findLine(s.sourceLines, limit.Issuer(), limit.Currency()); exists || ts.IsRemoval() {
		return nil
	}
	// A new line is an owned object.
	if s.spendable(1).LessThan(fee(t)) {
		return invalid(KindInsufficientBalance, "%s cannot cover the reserve of a new trust line", ts.Account)
	}
	return nil
}

func validateOfferCreate(ctx context.Context, t tx.Transaction, l LedgerLookup) error {
	o := t.(*offer.OfferCreate)
	if err := positive(o.TakerGets, "TakerGets"); err != nil {
		return err
	}
	if err := positive(o.TakerPays, "TakerPays"); err != nil {
		return err
	}
	if o.TakerGets.Issue() == o.TakerPays.Issue() {
		return invalid(KindInvalidAmount, "an offer must exchange two different assets")
	}

	s, err := fetch(ctx, l, query{source: o.Account, sourceLines: !o.TakerGets.IsNative()})
	if err != nil {
		return err
	}
	// Offers may be partially funded; the account must hold some of what it
	// sells and the reserve of the offer.
	if s.spendable(1).LessThan(fee(t)) {
		return invalid(KindInsufficientBalance, "%s cannot cover the reserve of a new offer", o.Account)
	}
	gets := o.TakerGets
	switch {
	case gets.IsNative():
		if !s.spendable(1).Sub(fee(t)).IsPositive() {
			return invalid(KindInsufficientBalance, "%s has no XRP to sell", o.Account)
		}
	case gets.IsMPT(), gets.Issuer() == o.Account:
	default:
		line, ok := findLine(s.sourceLines, gets.Issuer(), gets.Currency())
		if !ok {
			return invalid(KindMissingTrustLine, "%s has no trust line for %s", o.Account, gets.Issue().String())
		}
		if !line.Balance.IsPositive() {
			return invalid(KindInsufficientBalance, "%s holds no %s to sell", o.Account, gets.DisplayCurrency())
		}
	}
	return nil
}

func validateEscrowCreate(ctx context.Context, t tx.Transaction, l LedgerLookup) error {
	e := t.(*escrow.EscrowCreate)
	return validateLock(ctx, l, t, e.Destination, e.DestinationTag, e.Amount)
}

func validateChannelCreate(ctx context.Context, t tx.Transaction, l LedgerLookup) error {
	c := t.(*paychan.PaymentChannelCreate)
	return validateLock(ctx, l, t, c.Destination, c.DestinationTag, c.Amount)
}

// validateLock checks transactions that move funds into a new owned object
// for a destination.
func validateLock(ctx context.Context, l LedgerLookup, t tx.Transaction, destination string, tag *uint32, amount types.Amount) error {
	source := t.GetCommon().Account
	if err := positive(amount, "Amount"); err != nil {
		return err
	}
	if destination == source {
		return invalid(KindSelfPayment, "the destination must differ from the sending account")
	}
	s, err := fetch(ctx, l, query{source: source, destination: destination, sourceLines: !amount.IsNative()})
	if err != nil {
		return err
	}
	if err := s.destinationExists(destination, nil); err != nil {
		return err
	}
	if err := s.tagged(destination, tag); err != nil {
		return err
	}
	return s.canSpend(amount, fee(t), 1)
}

func validateChannelFund(ctx context.Context, t tx.Transaction, l LedgerLookup) error {
	c := t.(*paychan.PaymentChannelFund)
	if err := positive(c.Amount, "Amount"); err != nil {
		return err
	}
	s, err := fetch(ctx, l, query{source: c.Account})
	if err != nil {
		return err
	}
	return s.canSpend(c.Amount, fee(t), 0)
}

func validateCheckCreate(ctx context.Context, t tx.Transaction, l LedgerLookup) error {
	c := t.(*check.CheckCreate)
	if err := positive(c.SendMax, "SendMax"); err != nil {
		return err
	}
	if c.Destination == c.Account {
		return invalid(KindSelfPayment, "a check cannot be written to the sending account")
	}
	s, err := fetch(ctx, l, query{source: c.Account, destination: c.Destination})
	if err != nil {
		return err
	}
	if err := s.destinationExists(c.Destination, nil); err != nil {
		return err
	}
	if err := s.tagged(c.Destination, c.DestinationTag); err != nil {
		return err
	}
	// Checks are not funded until cashed; only the reserve is due now.
	if s.spendable(1).LessThan(fee(t)) {
		return invalid(KindInsufficientBalance, "%s cannot cover the reserve of a new check", c.Account)
	}
	return nil
}

func validateAccountDelete(ctx context.Context, t tx.Transaction, l LedgerLookup) error {
	d := t.(*account.AccountDelete)
	if d.Destination == d.Account {
		return invalid(KindSelfPayment, "the remaining balance must go to another account")
	}
	s, err := fetch(ctx, l, query{source: d.Account, destination: d.Destination})
	if err != nil {
		return err
	}
	return s.destinationExists(d.Destination, nil)
}
