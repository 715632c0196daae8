// Package explain turns modeled transactions into what a wallet shows: a
// short label, a sentence describing the transaction, its counterparties and
// its monetary effect. It also holds the pre-submission checks for the types
// that have one.
//
// Every transaction type has an entry in the dispatch table. Pseudo
// transactions are marked unsupported: the four queries return
// ErrUnsupportedOperation and Validate accepts them.
package explain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/LeJamon/goXRPLwallet/internal/core/meta"
	"github.com/LeJamon/goXRPLwallet/internal/core/mutation"
	"github.com/LeJamon/goXRPLwallet/internal/core/tx"
	"github.com/LeJamon/goXRPLwallet/internal/core/types"
)

// View is the viewpoint of an explanation: the account looking at the
// transaction and the language to explain it in.
type View struct {
	Account  string
	Language language.Tag
}

// Participants are the source and destination of a transaction. End is
// empty for transactions without a counterparty.
type Participants struct {
	Start string `json:"start"`
	End   string `json:"end,omitempty"`
}

// MonetaryDetails is the monetary effect of a transaction.
type MonetaryDetails struct {
	// Mutations holds every balance change, empty without metadata.
	Mutations []types.BalanceMutation `json:"mutations"`

	// Own holds the changes of the view account.
	Own []types.BalanceMutation `json:"own,omitempty"`

	// Value is the headline amount for types with a single dominant amount.
	Value *types.Amount `json:"value,omitempty"`
}

// handler is the dispatch entry of one transaction type. Labels and
// sentences are catalog keys.
type handler struct {
	unsupported  bool
	label        func(t tx.Transaction, v View) string
	describe     func(t tx.Transaction, p *message.Printer) []string
	participants func(t tx.Transaction) Participants
	value        func(t tx.Transaction, m *meta.Metadata) (types.Amount, bool)
	validate     func(ctx context.Context, t tx.Transaction, l LedgerLookup) error
}

var handlers = make(map[tx.Type]handler)

func register(typ tx.Type, h handler) {
	if _, dup := handlers[typ]; dup {
		panic(fmt.Sprintf("explain: duplicate handler for %s", typ))
	}
	if h.participants == nil {
		h.participants = sourceOnly
	}
	handlers[typ] = h
}

// fallback explains types outside the table, such as transactions of a
// type this build does not know.
var fallback = handler{
	label:        fixedLabel("Unknown Transaction"),
	describe:     genericDescription,
	participants: sourceOnly,
}

func handlerFor(t tx.Transaction) (handler, error) {
	h, ok := handlers[t.TxType()]
	if !ok {
		h = fallback
	}
	if h.unsupported {
		return handler{}, fmt.Errorf("%w: %s", ErrUnsupportedOperation, t.TypeName())
	}
	return h, nil
}

// Supported reports whether the queries are defined for a type.
func Supported(typ tx.Type) bool {
	h, ok := handlers[typ]
	return !ok || !h.unsupported
}

// Label returns a short localized tag such as "Payment Sent".
func Label(t tx.Transaction, v View) (string, error) {
	h, err := handlerFor(t)
	if err != nil {
		return "", err
	}
	return printer(v).Sprintf(h.label(t, v)), nil
}

// Describe returns a localized description built from the transaction's
// normalized fields.
func Describe(t tx.Transaction, v View) (string, error) {
	h, err := handlerFor(t)
	if err != nil {
		return "", err
	}
	p := printer(v)
	sentences := h.describe(t, p)
	for _, memo := range t.GetCommon().Memos {
		if data := memo.DisplayData(); data != "" {
			sentences = append(sentences, p.Sprintf("The memo reads %s.", data))
		}
	}
	return strings.Join(sentences, " "), nil
}

// ParticipantsOf returns the source and destination of the transaction.
func ParticipantsOf(t tx.Transaction) (Participants, error) {
	h, err := handlerFor(t)
	if err != nil {
		return Participants{}, err
	}
	return h.participants(t), nil
}

// MonetaryDetailsOf returns the balance mutations recorded in m and, for types
// with a dominant amount, the headline value. m may be nil.
func MonetaryDetailsOf(t tx.Transaction, m *meta.Metadata, v View) (MonetaryDetails, error) {
	h, err := handlerFor(t)
	if err != nil {
		return MonetaryDetails{}, err
	}
	var details MonetaryDetails
	if m != nil {
		muts, err := mutation.Derive(m, t)
		if err != nil {
			return MonetaryDetails{}, err
		}
		details.Mutations = muts
		if v.Account != "" {
			details.Own = mutation.ForAccount(muts, v.Account)
		}
	}
	if h.value != nil {
		if value, ok := h.value(t, m); ok {
			details.Value = &value
		}
	}
	return details, nil
}

// Validate runs the pre-submission checks of the transaction's type against
// the ledger state behind l. Types without checks are valid. Rule violations
// are *ValidationError; lookup failures are *LookupError.
func Validate(ctx context.Context, t tx.Transaction, l LedgerLookup) error {
	h, ok := handlers[t.TxType()]
	if !ok || h.unsupported || h.validate == nil {
		return nil
	}
	return h.validate(ctx, t, l)
}

func fixedLabel(key string) func(tx.Transaction, View) string {
	return func(tx.Transaction, View) string { return key }
}

// directional picks a label by whether the view account sent or received.
func directional(sent, received, neutral string, destination func(tx.Transaction) string) func(tx.Transaction, View) string {
	return func(t tx.Transaction, v View) string {
		switch v.Account {
		case "":
			return neutral
		case t.GetCommon().Account:
			return sent
		case destination(t):
			return received
		default:
			return neutral
		}
	}
}

func genericDescription(t tx.Transaction, p *message.Printer) []string {
	out := []string{p.Sprintf("This is a %s transaction.", t.TypeName())}
	if account := t.GetCommon().Account; account != "" {
		out = append(out, p.Sprintf("It was sent by %s.", account))
	}
	return out
}

func sourceOnly(t tx.Transaction) Participants {
	return Participants{Start: t.GetCommon().Account}
}

func withEnd(end func(tx.Transaction) string) func(tx.Transaction) Participants {
	return func(t tx.Transaction) Participants {
		return Participants{Start: t.GetCommon().Account, End: end(t)}
	}
}

func tag(v *uint32) string {
	return fmt.Sprintf("%d", *v)
}

func amountPtr(a *types.Amount) (types.Amount, bool) {
	if a == nil || !a.IsSet() {
		return types.Amount{}, false
	}
	return *a, true
}

func amountOf(a types.Amount) (types.Amount, bool) {
	return a, a.IsSet()
}

// rippleEpoch is 2000-01-01T00:00:00Z, the origin of ledger timestamps.
const rippleEpoch = 946684800

func rippleTime(seconds uint32) string {
	return time.Unix(rippleEpoch+int64(seconds), 0).UTC().Format(time.RFC3339)
}
