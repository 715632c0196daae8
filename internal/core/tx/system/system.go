// Package system implements the ledger-generated transactions:
// EnableAmendment, SetFee and UNLModify.
package system

import (
	"github.com/LeJamon/goXRPLwallet/internal/core/tx"
	"github.com/LeJamon/goXRPLwallet/internal/core/types"
)

func init() {
	tx.Register(tx.TypeAmendment, func() tx.Transaction {
		return &EnableAmendment{BaseTx: *tx.NewBaseTx(tx.TypeAmendment, "")}
	})
	tx.Register(tx.TypeFee, func() tx.Transaction {
		return &SetFee{BaseTx: *tx.NewBaseTx(tx.TypeFee, "")}
	})
	tx.Register(tx.TypeUNLModify, func() tx.Transaction {
		return &UNLModify{BaseTx: *tx.NewBaseTx(tx.TypeUNLModify, "")}
	})
}

// EnableAmendment flags
const (
	EnableAmendmentFlagGotMajority  uint32 = 0x00010000
	EnableAmendmentFlagLostMajority uint32 = 0x00020000
)

// EnableAmendment records amendment voting progress or activation.
type EnableAmendment struct {
	tx.BaseTx

	Amendment      string `xrpl:"Amendment"`
	LedgerSequence uint32 `xrpl:"LedgerSequence"`
}

// SetFee records a change of the transaction cost or reserves.
type SetFee struct {
	tx.BaseTx

	LedgerSequence    *uint32 `xrpl:"LedgerSequence,omitempty"`
	BaseFee           string  `xrpl:"BaseFee,omitempty"`
	ReferenceFeeUnits *uint32 `xrpl:"ReferenceFeeUnits,omitempty"`
	ReserveBase       *uint32 `xrpl:"ReserveBase,omitempty"`
	ReserveIncrement  *uint32 `xrpl:"ReserveIncrement,omitempty"`

	BaseFeeDrops          *types.Amount `xrpl:"BaseFeeDrops,omitempty"`
	ReserveBaseDrops      *types.Amount `xrpl:"ReserveBaseDrops,omitempty"`
	ReserveIncrementDrops *types.Amount `xrpl:"ReserveIncrementDrops,omitempty"`
}

// UNLModify disables or re-enables a validator on the negative UNL.
type UNLModify struct {
	tx.BaseTx

	UNLModifyDisabling uint8  `xrpl:"UNLModifyDisabling"`
	LedgerSequence     uint32 `xrpl:"LedgerSequence"`
	UNLModifyValidator string `xrpl:"UNLModifyValidator"`
}
