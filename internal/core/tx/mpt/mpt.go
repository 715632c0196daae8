// Package mpt implements the multi-purpose token transactions.
package mpt

import (
	"github.com/LeJamon/goXRPLwallet/internal/core/tx"
)

func init() {
	tx.Register(tx.TypeMPTokenIssuanceCreate, func() tx.Transaction {
		return &MPTokenIssuanceCreate{BaseTx: *tx.NewBaseTx(tx.TypeMPTokenIssuanceCreate, "")}
	})
	tx.Register(tx.TypeMPTokenIssuanceDestroy, func() tx.Transaction {
		return &MPTokenIssuanceDestroy{BaseTx: *tx.NewBaseTx(tx.TypeMPTokenIssuanceDestroy, "")}
	})
	tx.Register(tx.TypeMPTokenIssuanceSet, func() tx.Transaction {
		return &MPTokenIssuanceSet{BaseTx: *tx.NewBaseTx(tx.TypeMPTokenIssuanceSet, "")}
	})
	tx.Register(tx.TypeMPTokenAuthorize, func() tx.Transaction {
		return &MPTokenAuthorize{BaseTx: *tx.NewBaseTx(tx.TypeMPTokenAuthorize, "")}
	})
}

// MPTokenIssuanceSet flags
const (
	MPTokenIssuanceSetFlagLock   uint32 = 0x00000001
	MPTokenIssuanceSetFlagUnlock uint32 = 0x00000002
)

// MPTokenAuthorize flags
const (
	MPTokenAuthorizeFlagUnauthorize uint32 = 0x00000001
)

// MPTokenIssuanceCreate defines a new multi-purpose token.
type MPTokenIssuanceCreate struct {
	tx.BaseTx

	AssetScale      *uint8  `xrpl:"AssetScale,omitempty"`
	TransferFee     *uint16 `xrpl:"TransferFee,omitempty"`
	MaximumAmount   string  `xrpl:"MaximumAmount,omitempty"`
	MPTokenMetadata string  `xrpl:"MPTokenMetadata,omitempty"`
}

// NewMPTokenIssuanceCreate creates a new MPTokenIssuanceCreate transaction
func NewMPTokenIssuanceCreate(account string) *MPTokenIssuanceCreate {
	return &MPTokenIssuanceCreate{BaseTx: *tx.NewBaseTx(tx.TypeMPTokenIssuanceCreate, account)}
}

// MPTokenIssuanceDestroy removes an issuance with no outstanding tokens.
type MPTokenIssuanceDestroy struct {
	tx.BaseTx

	MPTokenIssuanceID string `xrpl:"MPTokenIssuanceID"`
}

// NewMPTokenIssuanceDestroy creates a new MPTokenIssuanceDestroy transaction
func NewMPTokenIssuanceDestroy(account, issuanceID string) *MPTokenIssuanceDestroy {
	return &MPTokenIssuanceDestroy{BaseTx: *tx.NewBaseTx(tx.TypeMPTokenIssuanceDestroy, account), MPTokenIssuanceID: issuanceID}
}

// MPTokenIssuanceSet locks or unlocks an issuance or a single holder.
type MPTokenIssuanceSet struct {
	tx.BaseTx

	MPTokenIssuanceID string `xrpl:"MPTokenIssuanceID"`
	Holder            string `xrpl:"Holder,omitempty"`
}

// NewMPTokenIssuanceSet creates a new MPTokenIssuanceSet transaction
func NewMPTokenIssuanceSet(account, issuanceID string) *MPTokenIssuanceSet {
	return &MPTokenIssuanceSet{BaseTx: *tx.NewBaseTx(tx.TypeMPTokenIssuanceSet, account), MPTokenIssuanceID: issuanceID}
}

// MPTokenAuthorize opts a holder in to an issuance, or lets the issuer
// authorize a holder.
type MPTokenAuthorize struct {
	tx.BaseTx

	MPTokenIssuanceID string `xrpl:"MPTokenIssuanceID"`
	Holder            string `xrpl:"Holder,omitempty"`
}

// NewMPTokenAuthorize creates a new MPTokenAuthorize transaction
func NewMPTokenAuthorize(account, issuanceID string) *MPTokenAuthorize {
	return &MPTokenAuthorize{BaseTx: *tx.NewBaseTx(tx.TypeMPTokenAuthorize, account), MPTokenIssuanceID: issuanceID}
}
