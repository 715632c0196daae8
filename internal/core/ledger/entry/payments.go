package entry

import (
	"github.com/shopspring/decimal"

	"github.com/LeJamon/goXRPLwallet/internal/core/types"
)

// transferRateParity is the TransferRate meaning no fee.
const transferRateParity = 1_000_000_000

// Escrow holds funds until a condition or time is met.
type Escrow struct {
	BaseEntry

	Account         string       `xrpl:"Account"`
	Destination     string       `xrpl:"Destination"`
	Amount          types.Amount `xrpl:"Amount"`
	Condition       string       `xrpl:"Condition,omitempty"`
	CancelAfter     *uint32      `xrpl:"CancelAfter,omitempty"`
	FinishAfter     *uint32      `xrpl:"FinishAfter,omitempty"`
	SourceTag       *uint32      `xrpl:"SourceTag,omitempty"`
	DestinationTag  *uint32      `xrpl:"DestinationTag,omitempty"`
	TransferRate    *uint32      `xrpl:"TransferRate,omitempty"`
	OwnerNode       string       `xrpl:"OwnerNode,omitempty"`
	DestinationNode string       `xrpl:"DestinationNode,omitempty"`
}

// EffectiveAmount returns what the destination receives when the escrow
// finishes. Token escrows lock the issuer's transfer rate at creation and
// deliver the held amount net of that fee.
func (e *Escrow) EffectiveAmount() (types.Amount, bool) {
	if !e.Amount.IsSet() {
		return types.Amount{}, false
	}
	if e.Amount.IsNative() || e.TransferRate == nil || *e.TransferRate <= transferRateParity {
		return e.Amount, true
	}
	rate := decimal.New(int64(*e.TransferRate), -9)
	net, err := e.Amount.WithValue(e.Amount.Value().DivRound(rate, 15))
	if err != nil {
		return e.Amount, true
	}
	return net, true
}

// Check is a deferred payment the destination can cash.
type Check struct {
	BaseEntry

	Account         string       `xrpl:"Account"`
	Destination     string       `xrpl:"Destination"`
	SendMax         types.Amount `xrpl:"SendMax"`
	Sequence        uint32       `xrpl:"Sequence"`
	Expiration      *uint32      `xrpl:"Expiration,omitempty"`
	InvoiceID       string       `xrpl:"InvoiceID,omitempty"`
	SourceTag       *uint32      `xrpl:"SourceTag,omitempty"`
	DestinationTag  *uint32      `xrpl:"DestinationTag,omitempty"`
	OwnerNode       string       `xrpl:"OwnerNode,omitempty"`
	DestinationNode string       `xrpl:"DestinationNode,omitempty"`
}

// PayChannel is a unidirectional native payment channel.
type PayChannel struct {
	BaseEntry

	Account         string       `xrpl:"Account"`
	Destination     string       `xrpl:"Destination"`
	Amount          types.Amount `xrpl:"Amount"`
	Balance         types.Amount `xrpl:"Balance"`
	PublicKey       string       `xrpl:"PublicKey"`
	SettleDelay     uint32       `xrpl:"SettleDelay"`
	Expiration      *uint32      `xrpl:"Expiration,omitempty"`
	CancelAfter     *uint32      `xrpl:"CancelAfter,omitempty"`
	SourceTag       *uint32      `xrpl:"SourceTag,omitempty"`
	DestinationTag  *uint32      `xrpl:"DestinationTag,omitempty"`
	OwnerNode       string       `xrpl:"OwnerNode,omitempty"`
	DestinationNode string       `xrpl:"DestinationNode,omitempty"`
}

// Remaining returns the funds not yet paid out of the channel.
func (p *PayChannel) Remaining() (types.Amount, error) {
	return p.Amount.WithValue(p.Amount.Value().Sub(p.Balance.Value()))
}
