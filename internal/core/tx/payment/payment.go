// Package payment implements the Payment transaction.
package payment

import (
	"github.com/LeJamon/goXRPLwallet/internal/core/meta"
	"github.com/LeJamon/goXRPLwallet/internal/core/tx"
	"github.com/LeJamon/goXRPLwallet/internal/core/types"
)

func init() {
	tx.Register(tx.TypePayment, func() tx.Transaction {
		return &Payment{BaseTx: *tx.NewBaseTx(tx.TypePayment, "")}
	})
}

// Payment flags
const (
	// tfNoRippleDirect: do not use the default path
	PaymentFlagNoDirectRipple uint32 = 0x00010000
	// tfPartialPayment: allow delivering less than Amount
	PaymentFlagPartialPayment uint32 = 0x00020000
	// tfLimitQuality: only take paths at or above the SendMax/Amount ratio
	PaymentFlagLimitQuality uint32 = 0x00040000
)

// Payment transfers value from one account to another.
type Payment struct {
	tx.BaseTx

	// Amount is the amount to deliver (required unless DeliverMax is used)
	Amount types.Amount `xrpl:"Amount,omitempty"`

	// DeliverMax is the API v2 name of Amount
	DeliverMax *types.Amount `xrpl:"DeliverMax,omitempty"`

	Destination    string        `xrpl:"Destination"`
	DestinationTag *uint32       `xrpl:"DestinationTag,omitempty"`
	InvoiceID      string        `xrpl:"InvoiceID,omitempty"`
	SendMax        *types.Amount `xrpl:"SendMax,omitempty"`
	DeliverMin     *types.Amount `xrpl:"DeliverMin,omitempty"`
	Paths          []any         `xrpl:"Paths,omitempty"`
	CredentialIDs  []string      `xrpl:"CredentialIDs,omitempty"`
}

// NewPayment creates a new Payment transaction
func NewPayment(account, destination string, amount types.Amount) *Payment {
	return &Payment{
		BaseTx:      *tx.NewBaseTx(tx.TypePayment, account),
		Amount:      amount,
		Destination: destination,
	}
}

// SendAmount returns Amount, falling back to DeliverMax.
func (p *Payment) SendAmount() types.Amount {
	if !p.Amount.IsSet() && p.DeliverMax != nil {
		return *p.DeliverMax
	}
	return p.Amount
}

// IsPartialPayment reports whether tfPartialPayment is set.
func (p *Payment) IsPartialPayment() bool {
	return p.HasFlag(PaymentFlagPartialPayment)
}

// IsCrossCurrency reports whether the source spends a different asset than
// the destination receives.
func (p *Payment) IsCrossCurrency() bool {
	return p.SendMax != nil && p.SendMax.Issue() != p.SendAmount().Issue()
}

// DeliveredAmount returns what the payment actually delivered. Without
// metadata, or when the metadata omits it, a non-partial payment is assumed
// to deliver Amount. Failed payments deliver nothing.
func (p *Payment) DeliveredAmount(m *meta.Metadata) (types.Amount, bool) {
	if m != nil {
		if !m.Succeeded() {
			return types.Amount{}, false
		}
		if delivered, ok := m.Delivered(); ok {
			return delivered, true
		}
	}
	if p.IsPartialPayment() {
		return types.Amount{}, false
	}
	amount := p.SendAmount()
	return amount, amount.IsSet()
}
