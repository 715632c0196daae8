// Package xchain implements the cross-chain bridge transactions.
package xchain

import (
	"github.com/LeJamon/goXRPLwallet/internal/core/tx"
	"github.com/LeJamon/goXRPLwallet/internal/core/types"
)

func init() {
	tx.Register(tx.TypeXChainCreateBridge, func() tx.Transaction {
		return &XChainCreateBridge{BaseTx: *tx.NewBaseTx(tx.TypeXChainCreateBridge, "")}
	})
	tx.Register(tx.TypeXChainModifyBridge, func() tx.Transaction {
		return &XChainModifyBridge{BaseTx: *tx.NewBaseTx(tx.TypeXChainModifyBridge, "")}
	})
	tx.Register(tx.TypeXChainCreateClaimID, func() tx.Transaction {
		return &XChainCreateClaimID{BaseTx: *tx.NewBaseTx(tx.TypeXChainCreateClaimID, "")}
	})
	tx.Register(tx.TypeXChainCommit, func() tx.Transaction {
		return &XChainCommit{BaseTx: *tx.NewBaseTx(tx.TypeXChainCommit, "")}
	})
	tx.Register(tx.TypeXChainClaim, func() tx.Transaction {
		return &XChainClaim{BaseTx: *tx.NewBaseTx(tx.TypeXChainClaim, "")}
	})
	tx.Register(tx.TypeXChainAccountCreateCommit, func() tx.Transaction {
		return &XChainAccountCreateCommit{BaseTx: *tx.NewBaseTx(tx.TypeXChainAccountCreateCommit, "")}
	})
	tx.Register(tx.TypeXChainAddClaimAttestation, func() tx.Transaction {
		return &XChainAddClaimAttestation{BaseTx: *tx.NewBaseTx(tx.TypeXChainAddClaimAttestation, "")}
	})
	tx.Register(tx.TypeXChainAddAccountCreateAttest, func() tx.Transaction {
		return &XChainAddAccountCreateAttestation{BaseTx: *tx.NewBaseTx(tx.TypeXChainAddAccountCreateAttest, "")}
	})
}

// Bridge is the XChainBridge object: a door account and issue on each chain.
type Bridge = map[string]any

// BridgeDoors returns the locking and issuing door accounts of a bridge.
func BridgeDoors(b Bridge) (locking, issuing string) {
	locking, _ = b["LockingChainDoor"].(string)
	issuing, _ = b["IssuingChainDoor"].(string)
	return locking, issuing
}

// XChainCreateBridge creates a bridge on one chain.
type XChainCreateBridge struct {
	tx.BaseTx

	XChainBridge           Bridge        `xrpl:"XChainBridge"`
	SignatureReward        types.Amount  `xrpl:"SignatureReward"`
	MinAccountCreateAmount *types.Amount `xrpl:"MinAccountCreateAmount,omitempty"`
}

// XChainModifyBridge changes the parameters of a bridge.
type XChainModifyBridge struct {
	tx.BaseTx

	XChainBridge           Bridge        `xrpl:"XChainBridge"`
	SignatureReward        *types.Amount `xrpl:"SignatureReward,omitempty"`
	MinAccountCreateAmount *types.Amount `xrpl:"MinAccountCreateAmount,omitempty"`
}

// XChainCreateClaimID reserves a claim ID on the destination chain.
type XChainCreateClaimID struct {
	tx.BaseTx

	XChainBridge     Bridge       `xrpl:"XChainBridge"`
	SignatureReward  types.Amount `xrpl:"SignatureReward"`
	OtherChainSource string       `xrpl:"OtherChainSource"`
}

// XChainCommit locks or burns funds on the source chain.
type XChainCommit struct {
	tx.BaseTx

	XChainBridge          Bridge       `xrpl:"XChainBridge"`
	XChainClaimID         string       `xrpl:"XChainClaimID"`
	Amount                types.Amount `xrpl:"Amount"`
	OtherChainDestination string       `xrpl:"OtherChainDestination,omitempty"`
}

// XChainClaim completes a transfer on the destination chain.
type XChainClaim struct {
	tx.BaseTx

	XChainBridge   Bridge       `xrpl:"XChainBridge"`
	XChainClaimID  string       `xrpl:"XChainClaimID"`
	Destination    string       `xrpl:"Destination"`
	DestinationTag *uint32      `xrpl:"DestinationTag,omitempty"`
	Amount         types.Amount `xrpl:"Amount"`
}

// XChainAccountCreateCommit funds a new account on the other chain.
type XChainAccountCreateCommit struct {
	tx.BaseTx

	XChainBridge    Bridge       `xrpl:"XChainBridge"`
	Destination     string       `xrpl:"Destination"`
	Amount          types.Amount `xrpl:"Amount"`
	SignatureReward types.Amount `xrpl:"SignatureReward"`
}

// XChainAddClaimAttestation submits a witness attestation for a claim.
type XChainAddClaimAttestation struct {
	tx.BaseTx

	XChainBridge             Bridge       `xrpl:"XChainBridge"`
	Amount                   types.Amount `xrpl:"Amount"`
	AttestationRewardAccount string       `xrpl:"AttestationRewardAccount"`
	AttestationSignerAccount string       `xrpl:"AttestationSignerAccount"`
	Destination              string       `xrpl:"Destination,omitempty"`
	OtherChainSource         string       `xrpl:"OtherChainSource"`
	PublicKey                string       `xrpl:"PublicKey"`
	Signature                string       `xrpl:"Signature"`
	WasLockingChainSend      uint8        `xrpl:"WasLockingChainSend"`
	XChainClaimID            string       `xrpl:"XChainClaimID"`
}

// XChainAddAccountCreateAttestation submits a witness attestation for an
// account creation.
type XChainAddAccountCreateAttestation struct {
	tx.BaseTx

	XChainBridge             Bridge       `xrpl:"XChainBridge"`
	Amount                   types.Amount `xrpl:"Amount"`
	AttestationRewardAccount string       `xrpl:"AttestationRewardAccount"`
	AttestationSignerAccount string       `xrpl:"AttestationSignerAccount"`
	Destination              string       `xrpl:"Destination"`
	OtherChainSource         string       `xrpl:"OtherChainSource"`
	PublicKey                string       `xrpl:"PublicKey"`
	Signature                string       `xrpl:"Signature"`
	SignatureReward          types.Amount `xrpl:"SignatureReward"`
	WasLockingChainSend      uint8        `xrpl:"WasLockingChainSend"`
	XChainAccountCreateCount string       `xrpl:"XChainAccountCreateCount"`
}
