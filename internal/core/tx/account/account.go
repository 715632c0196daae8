// Package account implements the account management transactions:
// AccountSet, AccountDelete, SetRegularKey, SignerListSet, TicketCreate and
// DepositPreauth.
package account

import (
	"github.com/LeJamon/goXRPLwallet/internal/core/tx"
	"github.com/LeJamon/goXRPLwallet/internal/core/types"
)

func init() {
	tx.Register(tx.TypeAccountSet, func() tx.Transaction {
		return &AccountSet{BaseTx: *tx.NewBaseTx(tx.TypeAccountSet, "")}
	})
	tx.Register(tx.TypeAccountDelete, func() tx.Transaction {
		return &AccountDelete{BaseTx: *tx.NewBaseTx(tx.TypeAccountDelete, "")}
	})
	tx.Register(tx.TypeRegularKeySet, func() tx.Transaction {
		return &SetRegularKey{BaseTx: *tx.NewBaseTx(tx.TypeRegularKeySet, "")}
	})
	tx.Register(tx.TypeSignerListSet, func() tx.Transaction {
		return &SignerListSet{BaseTx: *tx.NewBaseTx(tx.TypeSignerListSet, "")}
	})
	tx.Register(tx.TypeTicketCreate, func() tx.Transaction {
		return &TicketCreate{BaseTx: *tx.NewBaseTx(tx.TypeTicketCreate, "")}
	})
	tx.Register(tx.TypeDepositPreauth, func() tx.Transaction {
		return &DepositPreauth{BaseTx: *tx.NewBaseTx(tx.TypeDepositPreauth, "")}
	})
}

// AccountSet flag values for SetFlag and ClearFlag.
const (
	AsfRequireDest               uint32 = 1
	AsfRequireAuth               uint32 = 2
	AsfDisallowXRP               uint32 = 3
	AsfDisableMaster             uint32 = 4
	AsfAccountTxnID              uint32 = 5
	AsfNoFreeze                  uint32 = 6
	AsfGlobalFreeze              uint32 = 7
	AsfDefaultRipple             uint32 = 8
	AsfDepositAuth               uint32 = 9
	AsfAuthorizedNFTokenMinter   uint32 = 10
	AsfDisallowIncomingNFTOffer  uint32 = 12
	AsfDisallowIncomingCheck     uint32 = 13
	AsfDisallowIncomingPayChan   uint32 = 14
	AsfDisallowIncomingTrustline uint32 = 15
	AsfAllowTrustLineClawback    uint32 = 16
)

// AccountSet modifies the properties of an account.
type AccountSet struct {
	tx.BaseTx

	ClearFlag     *uint32 `xrpl:"ClearFlag,omitempty"`
	SetFlag       *uint32 `xrpl:"SetFlag,omitempty"`
	Domain        string  `xrpl:"Domain,omitempty"`
	EmailHash     string  `xrpl:"EmailHash,omitempty"`
	MessageKey    string  `xrpl:"MessageKey,omitempty"`
	TransferRate  *uint32 `xrpl:"TransferRate,omitempty"`
	TickSize      *uint8  `xrpl:"TickSize,omitempty"`
	NFTokenMinter string  `xrpl:"NFTokenMinter,omitempty"`
	WalletLocator string  `xrpl:"WalletLocator,omitempty"`
}

// NewAccountSet creates a new AccountSet transaction
func NewAccountSet(account string) *AccountSet {
	return &AccountSet{BaseTx: *tx.NewBaseTx(tx.TypeAccountSet, account)}
}

// IsNoOp reports whether the transaction changes nothing but the sequence.
func (a *AccountSet) IsNoOp() bool {
	return a.ClearFlag == nil && a.SetFlag == nil && a.Domain == "" && a.EmailHash == "" &&
		a.MessageKey == "" && a.TransferRate == nil && a.TickSize == nil && a.NFTokenMinter == ""
}

// AccountDelete removes an account, sending its remaining XRP to Destination.
type AccountDelete struct {
	tx.BaseTx

	Destination    string   `xrpl:"Destination"`
	DestinationTag *uint32  `xrpl:"DestinationTag,omitempty"`
	CredentialIDs  []string `xrpl:"CredentialIDs,omitempty"`
}

// NewAccountDelete creates a new AccountDelete transaction
func NewAccountDelete(account, destination string) *AccountDelete {
	return &AccountDelete{BaseTx: *tx.NewBaseTx(tx.TypeAccountDelete, account), Destination: destination}
}

// SetRegularKey assigns, changes or removes the regular key pair.
type SetRegularKey struct {
	tx.BaseTx

	// RegularKey is absent when the key is being removed.
	RegularKey string `xrpl:"RegularKey,omitempty"`
}

// NewSetRegularKey creates a new SetRegularKey transaction
func NewSetRegularKey(account, regularKey string) *SetRegularKey {
	return &SetRegularKey{BaseTx: *tx.NewBaseTx(tx.TypeRegularKeySet, account), RegularKey: regularKey}
}

// SignerListSet creates, replaces or removes the signer list of an account.
type SignerListSet struct {
	tx.BaseTx

	// SignerQuorum of zero together with no entries deletes the list.
	SignerQuorum  uint32              `xrpl:"SignerQuorum"`
	SignerEntries []types.SignerEntry `xrpl:"SignerEntries,omitempty"`
}

// NewSignerListSet creates a new SignerListSet transaction
func NewSignerListSet(account string, quorum uint32, entries []types.SignerEntry) *SignerListSet {
	return &SignerListSet{BaseTx: *tx.NewBaseTx(tx.TypeSignerListSet, account), SignerQuorum: quorum, SignerEntries: entries}
}

// IsDelete reports whether the transaction removes the signer list.
func (s *SignerListSet) IsDelete() bool {
	return s.SignerQuorum == 0 && len(s.SignerEntries) == 0
}

// TicketCreate sets aside sequence numbers as tickets.
type TicketCreate struct {
	tx.BaseTx

	TicketCount uint32 `xrpl:"TicketCount"`
}

// NewTicketCreate creates a new TicketCreate transaction
func NewTicketCreate(account string, count uint32) *TicketCreate {
	return &TicketCreate{BaseTx: *tx.NewBaseTx(tx.TypeTicketCreate, account), TicketCount: count}
}

// DepositPreauth grants or revokes permission to deliver funds to an account
// that requires deposit authorization.
type DepositPreauth struct {
	tx.BaseTx

	Authorize              string `xrpl:"Authorize,omitempty"`
	Unauthorize            string `xrpl:"Unauthorize,omitempty"`
	AuthorizeCredentials   []any  `xrpl:"AuthorizeCredentials,omitempty"`
	UnauthorizeCredentials []any  `xrpl:"UnauthorizeCredentials,omitempty"`
}

// NewDepositPreauth creates a new DepositPreauth transaction authorizing
// another account.
func NewDepositPreauth(account, authorize string) *DepositPreauth {
	return &DepositPreauth{BaseTx: *tx.NewBaseTx(tx.TypeDepositPreauth, account), Authorize: authorize}
}
