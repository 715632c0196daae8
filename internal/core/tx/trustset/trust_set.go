// Package trustset implements the TrustSet transaction.
package trustset

import (
	"github.com/LeJamon/goXRPLwallet/internal/core/tx"
	"github.com/LeJamon/goXRPLwallet/internal/core/types"
)

func init() {
	tx.Register(tx.TypeTrustSet, func() tx.Transaction {
		return &TrustSet{BaseTx: *tx.NewBaseTx(tx.TypeTrustSet, "")}
	})
}

// TrustSet flags
const (
	TrustSetFlagSetfAuth        uint32 = 0x00010000
	TrustSetFlagSetNoRipple     uint32 = 0x00020000
	TrustSetFlagClearNoRipple   uint32 = 0x00040000
	TrustSetFlagSetFreeze       uint32 = 0x00100000
	TrustSetFlagClearFreeze     uint32 = 0x00200000
	TrustSetFlagSetDeepFreeze   uint32 = 0x00400000
	TrustSetFlagClearDeepFreeze uint32 = 0x00800000
)

// TrustSet creates or modifies a trust line.
type TrustSet struct {
	tx.BaseTx

	// LimitAmount names the currency, the counterparty (issuer) and the limit
	LimitAmount types.Amount `xrpl:"LimitAmount"`

	QualityIn  *uint32 `xrpl:"QualityIn,omitempty"`
	QualityOut *uint32 `xrpl:"QualityOut,omitempty"`
}

// NewTrustSet creates a new TrustSet transaction
func NewTrustSet(account string, limit types.Amount) *TrustSet {
	return &TrustSet{BaseTx: *tx.NewBaseTx(tx.TypeTrustSet, account), LimitAmount: limit}
}

// IsRemoval reports whether the transaction sets the limit to zero, which
// removes a line that carries no balance.
func (t *TrustSet) IsRemoval() bool {
	return t.LimitAmount.IsSet() && t.LimitAmount.IsZero()
}
