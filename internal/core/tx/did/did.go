// Package did implements DIDSet and DIDDelete.
package did

import (
	"github.com/LeJamon/goXRPLwallet/internal/core/tx"
)

func init() {
	tx.Register(tx.TypeDIDSet, func() tx.Transaction {
		return &DIDSet{BaseTx: *tx.NewBaseTx(tx.TypeDIDSet, "")}
	})
	tx.Register(tx.TypeDIDDelete, func() tx.Transaction {
		return &DIDDelete{BaseTx: *tx.NewBaseTx(tx.TypeDIDDelete, "")}
	})
}

// DIDSet creates or updates the DID of an account. Fields are hex.
type DIDSet struct {
	tx.BaseTx

	DIDDocument string `xrpl:"DIDDocument,omitempty"`
	Data        string `xrpl:"Data,omitempty"`
	URI         string `xrpl:"URI,omitempty"`
}

// NewDIDSet creates a new DIDSet transaction
func NewDIDSet(account string) *DIDSet {
	return &DIDSet{BaseTx: *tx.NewBaseTx(tx.TypeDIDSet, account)}
}

// DIDDelete removes the DID of an account.
type DIDDelete struct {
	tx.BaseTx
}

// NewDIDDelete creates a new DIDDelete transaction
func NewDIDDelete(account string) *DIDDelete {
	return &DIDDelete{BaseTx: *tx.NewBaseTx(tx.TypeDIDDelete, account)}
}
