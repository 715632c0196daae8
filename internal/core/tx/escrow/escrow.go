// Package escrow implements EscrowCreate, EscrowFinish, and EscrowCancel transactions.
package escrow

import (
	"github.com/LeJamon/goXRPLwallet/internal/core/meta"
	"github.com/LeJamon/goXRPLwallet/internal/core/tx"
	"github.com/LeJamon/goXRPLwallet/internal/core/types"
)

func init() {
	tx.Register(tx.TypeEscrowCreate, func() tx.Transaction {
		return &EscrowCreate{BaseTx: *tx.NewBaseTx(tx.TypeEscrowCreate, "")}
	})
	tx.Register(tx.TypeEscrowFinish, func() tx.Transaction {
		return &EscrowFinish{BaseTx: *tx.NewBaseTx(tx.TypeEscrowFinish, "")}
	})
	tx.Register(tx.TypeEscrowCancel, func() tx.Transaction {
		return &EscrowCancel{BaseTx: *tx.NewBaseTx(tx.TypeEscrowCancel, "")}
	})
}

// EscrowCreate creates an escrow that holds funds until certain conditions are met.
type EscrowCreate struct {
	tx.BaseTx

	// Amount is the amount to escrow (required)
	Amount types.Amount `xrpl:"Amount"`

	// Destination is the account to receive the funds (required)
	Destination string `xrpl:"Destination"`

	DestinationTag *uint32 `xrpl:"DestinationTag,omitempty"`

	// CancelAfter is the time after which the escrow can be cancelled (optional)
	CancelAfter *uint32 `xrpl:"CancelAfter,omitempty"`

	// FinishAfter is the time after which the escrow can be finished (optional)
	FinishAfter *uint32 `xrpl:"FinishAfter,omitempty"`

	// Condition is the crypto-condition that must be fulfilled (optional)
	Condition string `xrpl:"Condition,omitempty"`
}

// NewEscrowCreate creates a new EscrowCreate transaction
func NewEscrowCreate(account, destination string, amount types.Amount) *EscrowCreate {
	return &EscrowCreate{
		BaseTx:      *tx.NewBaseTx(tx.TypeEscrowCreate, account),
		Amount:      amount,
		Destination: destination,
	}
}

// EscrowFinish delivers escrowed funds to the destination.
type EscrowFinish struct {
	tx.BaseTx

	Owner         string   `xrpl:"Owner"`
	OfferSequence uint32   `xrpl:"OfferSequence"`
	Condition     string   `xrpl:"Condition,omitempty"`
	Fulfillment   string   `xrpl:"Fulfillment,omitempty"`
	CredentialIDs []string `xrpl:"CredentialIDs,omitempty"`
}

// NewEscrowFinish creates a new EscrowFinish transaction
func NewEscrowFinish(account, owner string, sequence uint32) *EscrowFinish {
	return &EscrowFinish{BaseTx: *tx.NewBaseTx(tx.TypeEscrowFinish, account), Owner: owner, OfferSequence: sequence}
}

// EscrowAmount returns the amount released, read from the deleted Escrow
// entry in the metadata.
func (e *EscrowFinish) EscrowAmount(m *meta.Metadata) (types.Amount, bool) {
	return deletedEscrowAmount(m)
}

// EscrowCancel returns escrowed funds to the owner.
type EscrowCancel struct {
	tx.BaseTx

	Owner         string `xrpl:"Owner"`
	OfferSequence uint32 `xrpl:"OfferSequence"`
}

// NewEscrowCancel creates a new EscrowCancel transaction
func NewEscrowCancel(account, owner string, sequence uint32) *EscrowCancel {
	return &EscrowCancel{BaseTx: *tx.NewBaseTx(tx.TypeEscrowCancel, account), Owner: owner, OfferSequence: sequence}
}

// EscrowAmount returns the amount returned to the owner.
func (e *EscrowCancel) EscrowAmount(m *meta.Metadata) (types.Amount, bool) {
	return deletedEscrowAmount(m)
}

func deletedEscrowAmount(m *meta.Metadata) (types.Amount, bool) {
	if m == nil {
		return types.Amount{}, false
	}
	for _, node := range m.Nodes() {
		if node.State != meta.Deleted || node.LedgerEntryType != "Escrow" {
			continue
		}
		amount, err := types.AmountFromWire(node.FinalFields["Amount"])
		if err != nil {
			return types.Amount{}, false
		}
		return amount, true
	}
	return types.Amount{}, false
}
