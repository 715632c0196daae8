// Package clawback implements the Clawback transaction.
package clawback

import (
	"github.com/LeJamon/goXRPLwallet/internal/core/tx"
	"github.com/LeJamon/goXRPLwallet/internal/core/types"
)

func init() {
	tx.Register(tx.TypeClawback, func() tx.Transaction {
		return &Clawback{BaseTx: *tx.NewBaseTx(tx.TypeClawback, "")}
	})
}

// Clawback claws back issued tokens from a holder. For trust line tokens the
// holder is the issuer field of Amount; for MPTs it is Holder.
type Clawback struct {
	tx.BaseTx

	Amount types.Amount `xrpl:"Amount"`
	Holder string       `xrpl:"Holder,omitempty"`
}

// NewClawback creates a new Clawback transaction
func NewClawback(account string, amount types.Amount) *Clawback {
	return &Clawback{BaseTx: *tx.NewBaseTx(tx.TypeClawback, account), Amount: amount}
}

// HolderAccount returns the account the tokens are taken from.
func (c *Clawback) HolderAccount() string {
	if c.Holder != "" {
		return c.Holder
	}
	return c.Amount.Issuer()
}
