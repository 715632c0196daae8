package entry

import (
	"github.com/LeJamon/goXRPLwallet/internal/core/types"
)

// Bridge is one door of a cross-chain bridge.
type Bridge struct {
	BaseEntry

	Account                  string         `xrpl:"Account"`
	XChainBridge             map[string]any `xrpl:"XChainBridge"`
	SignatureReward          types.Amount   `xrpl:"SignatureReward"`
	MinAccountCreateAmount   *types.Amount  `xrpl:"MinAccountCreateAmount,omitempty"`
	XChainClaimID            string         `xrpl:"XChainClaimID,omitempty"`
	XChainAccountCreateCount string         `xrpl:"XChainAccountCreateCount,omitempty"`
	XChainAccountClaimCount  string         `xrpl:"XChainAccountClaimCount,omitempty"`
	OwnerNode                string         `xrpl:"OwnerNode,omitempty"`
}

// Doors returns the locking and issuing chain door accounts.
func (b *Bridge) Doors() (locking, issuing string) {
	locking, _ = b.XChainBridge["LockingChainDoor"].(string)
	issuing, _ = b.XChainBridge["IssuingChainDoor"].(string)
	return locking, issuing
}
