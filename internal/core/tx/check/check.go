// Package check implements CheckCreate, CheckCash and CheckCancel.
package check

import (
	"github.com/LeJamon/goXRPLwallet/internal/core/tx"
	"github.com/LeJamon/goXRPLwallet/internal/core/types"
)

func init() {
	tx.Register(tx.TypeCheckCreate, func() tx.Transaction {
		return &CheckCreate{BaseTx: *tx.NewBaseTx(tx.TypeCheckCreate, "")}
	})
	tx.Register(tx.TypeCheckCash, func() tx.Transaction {
		return &CheckCash{BaseTx: *tx.NewBaseTx(tx.TypeCheckCash, "")}
	})
	tx.Register(tx.TypeCheckCancel, func() tx.Transaction {
		return &CheckCancel{BaseTx: *tx.NewBaseTx(tx.TypeCheckCancel, "")}
	})
}

// CheckCreate creates a deferred payment that the destination can cash.
type CheckCreate struct {
	tx.BaseTx

	Destination    string       `xrpl:"Destination"`
	SendMax        types.Amount `xrpl:"SendMax"`
	DestinationTag *uint32      `xrpl:"DestinationTag,omitempty"`
	Expiration     *uint32      `xrpl:"Expiration,omitempty"`
	InvoiceID      string       `xrpl:"InvoiceID,omitempty"`
}

// NewCheckCreate creates a new CheckCreate transaction
func NewCheckCreate(account, destination string, sendMax types.Amount) *CheckCreate {
	return &CheckCreate{BaseTx: *tx.NewBaseTx(tx.TypeCheckCreate, account), Destination: destination, SendMax: sendMax}
}

// CheckCash redeems a check for an exact Amount or at least DeliverMin.
type CheckCash struct {
	tx.BaseTx

	CheckID    string        `xrpl:"CheckID"`
	Amount     *types.Amount `xrpl:"Amount,omitempty"`
	DeliverMin *types.Amount `xrpl:"DeliverMin,omitempty"`
}

// NewCheckCash creates a new CheckCash transaction for an exact amount
func NewCheckCash(account, checkID string, amount types.Amount) *CheckCash {
	return &CheckCash{BaseTx: *tx.NewBaseTx(tx.TypeCheckCash, account), CheckID: checkID, Amount: &amount}
}

// CheckCancel removes a check without cashing it.
type CheckCancel struct {
	tx.BaseTx

	CheckID string `xrpl:"CheckID"`
}

// NewCheckCancel creates a new CheckCancel transaction
func NewCheckCancel(account, checkID string) *CheckCancel {
	return &CheckCancel{BaseTx: *tx.NewBaseTx(tx.TypeCheckCancel, account), CheckID: checkID}
}
