package explain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goXRPLwallet/internal/core/explain"
	"github.com/LeJamon/goXRPLwallet/internal/core/ledger/entry"
	"github.com/LeJamon/goXRPLwallet/internal/core/tx"
	"github.com/LeJamon/goXRPLwallet/internal/core/tx/account"
	"github.com/LeJamon/goXRPLwallet/internal/core/tx/offer"
	"github.com/LeJamon/goXRPLwallet/internal/core/tx/payment"
	"github.com/LeJamon/goXRPLwallet/internal/core/tx/trustset"
	"github.com/LeJamon/goXRPLwallet/internal/core/types"
)

var reserves = &explain.Reserves{Base: decimal.NewFromInt(10), Increment: decimal.NewFromInt(2)}

func funded(account string, balance int64, owners uint32) *explain.AccountInfo {
	return &explain.AccountInfo{Account: account, Balance: decimal.NewFromInt(balance), OwnerCount: owners}
}

func notFound(account string) error {
	return fmt.Errorf("%w: %s", explain.ErrAccountNotFound, account)
}

func line(counterparty, currency string, balance, limit int64) explain.TrustLine {
	return explain.TrustLine{
		Account:  counterparty,
		Currency: currency,
		Balance:  decimal.NewFromInt(balance),
		Limit:    decimal.NewFromInt(limit),
	}
}

func newLookup(t *testing.T) *MockLedgerLookup {
	return NewMockLedgerLookup(gomock.NewController(t))
}

func TestValidateNativePayment(t *testing.T) {
	tests := []struct {
		name        string
		amount      string
		destination *explain.AccountInfo
		kind        explain.ValidationKind
	}{
		{name: "spendable", amount: "50", destination: funded(bob, 20, 0)},
		{name: "above spendable", amount: "95", destination: funded(bob, 20, 0), kind: explain.KindInsufficientBalance},
		{name: "exactly spendable leaves no fee", amount: "90", destination: funded(bob, 20, 0), kind: explain.KindInsufficientBalance},
		{name: "creates destination", amount: "20"},
		{name: "too small to create destination", amount: "5", kind: explain.KindDestinationNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookup := newLookup(t)
			lookup.EXPECT().AccountInfo(gomock.Any(), alice).Return(funded(alice, 100, 0), nil)
			lookup.EXPECT().Reserves(gomock.Any()).Return(reserves, nil)
			if tt.destination != nil {
				lookup.EXPECT().AccountInfo(gomock.Any(), bob).Return(tt.destination, nil)
			} else {
				lookup.EXPECT().AccountInfo(gomock.Any(), bob).Return(nil, notFound(bob))
			}

			p := payment.NewPayment(alice, bob, types.MustNative(tt.amount))
			p.Fee = "10"

			err := explain.Validate(t.Context(), p, lookup)
			if tt.kind == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, explain.IsKind(err, tt.kind), "got %v", err)
		})
	}
}

func TestValidateIssuedPayment(t *testing.T) {
	usd := types.MustIssued("20", "USD", gw)

	tests := []struct {
		name        string
		senderLines []explain.TrustLine
		destLines   []explain.TrustLine
		kind        explain.ValidationKind
	}{
		{
			name:        "delivered",
			senderLines: []explain.TrustLine{line(gw, "USD", 50, 100)},
			destLines:   []explain.TrustLine{line(gw, "USD", 0, 100)},
		},
		{
			name:        "sender lacks the line",
			senderLines: []explain.TrustLine{line(gw, "EUR", 50, 100)},
			destLines:   []explain.TrustLine{line(gw, "USD", 0, 100)},
			kind:        explain.KindMissingTrustLine,
		},
		{
			name:        "sender holds too little",
			senderLines: []explain.TrustLine{line(gw, "USD", 10, 100)},
			destLines:   []explain.TrustLine{line(gw, "USD", 0, 100)},
			kind:        explain.KindInsufficientBalance,
		},
		{
			name:        "receiver lacks the line",
			senderLines: []explain.TrustLine{line(gw, "USD", 50, 100)},
			kind:        explain.KindMissingTrustLine,
		},
		{
			name:        "receiver limit exceeded",
			senderLines: []explain.TrustLine{line(gw, "USD", 50, 100)},
			destLines:   []explain.TrustLine{line(gw, "USD", 5, 10)},
			kind:        explain.KindTrustLineLimitExceeded,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookup := newLookup(t)
			lookup.EXPECT().AccountInfo(gomock.Any(), alice).Return(funded(alice, 100, 1), nil)
			lookup.EXPECT().AccountInfo(gomock.Any(), bob).Return(funded(bob, 100, 1), nil)
			lookup.EXPECT().Reserves(gomock.Any()).Return(reserves, nil)
			lookup.EXPECT().TrustLines(gomock.Any(), alice).Return(tt.senderLines, nil)
			lookup.EXPECT().TrustLines(gomock.Any(), bob).Return(tt.destLines, nil)

			err := explain.Validate(t.Context(), payment.NewPayment(alice, bob, usd), lookup)
			if tt.kind == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, explain.IsKind(err, tt.kind), "got %v", err)
		})
	}
}

func TestValidateIssuerSendsOwnTokens(t *testing.T) {
	lookup := newLookup(t)
	lookup.EXPECT().AccountInfo(gomock.Any(), gw).Return(funded(gw, 100, 0), nil)
	lookup.EXPECT().AccountInfo(gomock.Any(), bob).Return(funded(bob, 100, 1), nil)
	lookup.EXPECT().Reserves(gomock.Any()).Return(reserves, nil)
	lookup.EXPECT().TrustLines(gomock.Any(), gw).Return(nil, nil)
	lookup.EXPECT().TrustLines(gomock.Any(), bob).Return([]explain.TrustLine{line(gw, "USD", 0, 1000)}, nil)

	err := explain.Validate(t.Context(), payment.NewPayment(gw, bob, types.MustIssued("500", "USD", gw)), lookup)
	assert.NoError(t, err)
}

func TestValidateWithoutLookups(t *testing.T) {
	tests := []struct {
		name string
		txn  tx.Transaction
		kind explain.ValidationKind
	}{
		{"zero payment", payment.NewPayment(alice, bob, types.MustNative("0")), explain.KindInvalidAmount},
		{"self payment", payment.NewPayment(alice, alice, types.MustNative("1")), explain.KindSelfPayment},
		{"trust in self", trustset.NewTrustSet(alice, types.MustIssued("10", "USD", alice)), explain.KindInvalidAmount},
		{"negative limit", trustset.NewTrustSet(alice, types.MustIssued("-1", "USD", gw)), explain.KindInvalidAmount},
		{"offer of one asset", offer.NewOfferCreate(alice, types.MustNative("1"), types.MustNative("2")), explain.KindInvalidAmount},
		{"delete into self", account.NewAccountDelete(alice, alice), explain.KindSelfPayment},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// A mock without expectations fails the test on any call.
			err := explain.Validate(t.Context(), tt.txn, newLookup(t))
			assert.True(t, explain.IsKind(err, tt.kind), "got %v", err)
		})
	}
}

func TestValidateTypesWithoutRules(t *testing.T) {
	for _, txn := range []tx.Transaction{
		offer.NewOfferCancel(alice, 4),
		account.NewAccountSet(alice),
	} {
		assert.NoError(t, explain.Validate(t.Context(), txn, newLookup(t)))
	}
}

func TestValidateLookupFailure(t *testing.T) {
	lookup := newLookup(t)
	timeout := errors.New("i/o timeout")
	lookup.EXPECT().AccountInfo(gomock.Any(), alice).Return(nil, timeout)
	lookup.EXPECT().AccountInfo(gomock.Any(), bob).Return(funded(bob, 100, 0), nil).AnyTimes()
	lookup.EXPECT().Reserves(gomock.Any()).Return(reserves, nil).AnyTimes()

	err := explain.Validate(t.Context(), payment.NewPayment(alice, bob, types.MustNative("1")), lookup)

	var lookupErr *explain.LookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, "account_info", lookupErr.Op)
	assert.Equal(t, alice, lookupErr.Account)
	assert.ErrorIs(t, err, timeout)

	var validationErr *explain.ValidationError
	assert.False(t, errors.As(err, &validationErr))
}

func TestValidateUnfundedSource(t *testing.T) {
	lookup := newLookup(t)
	lookup.EXPECT().AccountInfo(gomock.Any(), alice).Return(nil, notFound(alice))
	lookup.EXPECT().AccountInfo(gomock.Any(), bob).Return(funded(bob, 100, 0), nil)
	lookup.EXPECT().Reserves(gomock.Any()).Return(reserves, nil)

	err := explain.Validate(t.Context(), payment.NewPayment(alice, bob, types.MustNative("1")), lookup)
	assert.True(t, explain.IsKind(err, explain.KindInsufficientBalance), "got %v", err)
}

func TestValidateTrustSetReserve(t *testing.T) {
	tests := []struct {
		name    string
		balance int64
		lines   []explain.TrustLine
		kind    explain.ValidationKind
	}{
		{name: "covers the new line", balance: 13},
		{name: "cannot cover the new line", balance: 11, kind: explain.KindInsufficientBalance},
		{name: "existing line needs no reserve", balance: 11, lines: []explain.TrustLine{line(gw, "USD", 0, 5)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookup := newLookup(t)
			lookup.EXPECT().AccountInfo(gomock.Any(), alice).Return(funded(alice, tt.balance, 0), nil)
			lookup.EXPECT().AccountInfo(gomock.Any(), gw).Return(funded(gw, 100, 0), nil)
			lookup.EXPECT().Reserves(gomock.Any()).Return(reserves, nil)
			lookup.EXPECT().TrustLines(gomock.Any(), alice).Return(tt.lines, nil)

			ts := trustset.NewTrustSet(alice, types.MustIssued("100", "USD", gw))
			ts.Fee = "12"

			err := explain.Validate(t.Context(), ts, lookup)
			if tt.kind == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, explain.IsKind(err, tt.kind), "got %v", err)
		})
	}
}

func TestValidateAccountDeleteDestination(t *testing.T) {
	lookup := newLookup(t)
	lookup.EXPECT().AccountInfo(gomock.Any(), alice).Return(funded(alice, 100, 0), nil)
	lookup.EXPECT().AccountInfo(gomock.Any(), carol).Return(nil, notFound(carol))
	lookup.EXPECT().Reserves(gomock.Any()).Return(reserves, nil)

	err := explain.Validate(t.Context(), account.NewAccountDelete(alice, carol), lookup)
	assert.True(t, explain.IsKind(err, explain.KindDestinationNotFound), "got %v", err)

	var validationErr *explain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Message, carol)
}

func TestValidateDestinationTagRequired(t *testing.T) {
	requireTag := funded(bob, 100, 0)
	requireTag.Flags = entry.LsfRequireDestTag

	tagged := payment.NewPayment(alice, bob, types.MustNative("1"))
	tag := uint32(7)
	tagged.DestinationTag = &tag

	tests := []struct {
		name string
		txn  tx.Transaction
		kind explain.ValidationKind
	}{
		{name: "missing tag", txn: payment.NewPayment(alice, bob, types.MustNative("1")), kind: explain.KindDestinationTagRequired},
		{name: "tag given", txn: tagged},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookup := newLookup(t)
			lookup.EXPECT().AccountInfo(gomock.Any(), alice).Return(funded(alice, 100, 0), nil)
			lookup.EXPECT().AccountInfo(gomock.Any(), bob).Return(requireTag, nil)
			lookup.EXPECT().Reserves(gomock.Any()).Return(reserves, nil)

			err := explain.Validate(t.Context(), tt.txn, lookup)
			if tt.kind == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, explain.IsKind(err, tt.kind), "got %v", err)
		})
	}
}
