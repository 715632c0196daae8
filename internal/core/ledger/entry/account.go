package entry

import (
	"github.com/LeJamon/goXRPLwallet/internal/core/codec"
	"github.com/LeJamon/goXRPLwallet/internal/core/types"
)

// AccountRoot flags
const (
	LsfPasswordSpent  uint32 = 0x00010000
	LsfRequireDestTag uint32 = 0x00020000
	LsfRequireAuth    uint32 = 0x00040000
	LsfDisallowXRP    uint32 = 0x00080000
	LsfDisableMaster  uint32 = 0x00100000
	LsfNoFreeze       uint32 = 0x00200000
	LsfGlobalFreeze   uint32 = 0x00400000
	LsfDefaultRipple  uint32 = 0x00800000
	LsfDepositAuth    uint32 = 0x01000000
)

// AccountRoot describes a single account, its settings, and native balance.
type AccountRoot struct {
	BaseEntry

	Account        string       `xrpl:"Account"`
	Balance        types.Amount `xrpl:"Balance"`
	Sequence       uint32       `xrpl:"Sequence"`
	OwnerCount     uint32       `xrpl:"OwnerCount"`
	AccountTxnID   string       `xrpl:"AccountTxnID,omitempty"`
	Domain         string       `xrpl:"Domain,omitempty"`
	EmailHash      string       `xrpl:"EmailHash,omitempty"`
	MessageKey     string       `xrpl:"MessageKey,omitempty"`
	RegularKey     string       `xrpl:"RegularKey,omitempty"`
	NFTokenMinter  string       `xrpl:"NFTokenMinter,omitempty"`
	TransferRate   *uint32      `xrpl:"TransferRate,omitempty"`
	TickSize       *uint8       `xrpl:"TickSize,omitempty"`
	MintedNFTokens *uint32      `xrpl:"MintedNFTokens,omitempty"`
	BurnedNFTokens *uint32      `xrpl:"BurnedNFTokens,omitempty"`
}

// DisplayDomain returns the hex Domain decoded to text when printable.
func (a *AccountRoot) DisplayDomain() string {
	return codec.ToDisplayableText(a.Domain)
}

// SignerList describes the multi-signing setup of an account.
type SignerList struct {
	BaseEntry

	OwnerNode     string              `xrpl:"OwnerNode,omitempty"`
	SignerQuorum  uint32              `xrpl:"SignerQuorum"`
	SignerEntries []types.SignerEntry `xrpl:"SignerEntries"`
	SignerListID  uint32              `xrpl:"SignerListID"`
}

// TotalWeight sums the weights of all signers.
func (s *SignerList) TotalWeight() uint32 {
	var total uint32
	for _, e := range s.SignerEntries {
		total += uint32(e.SignerWeight)
	}
	return total
}

// Ticket is a reserved sequence number.
type Ticket struct {
	BaseEntry

	Account        string `xrpl:"Account"`
	OwnerNode      string `xrpl:"OwnerNode,omitempty"`
	TicketSequence uint32 `xrpl:"TicketSequence"`
}

// DepositPreauth records a preauthorization granted by Account.
type DepositPreauth struct {
	BaseEntry

	Account              string `xrpl:"Account"`
	Authorize            string `xrpl:"Authorize,omitempty"`
	AuthorizeCredentials []any  `xrpl:"AuthorizeCredentials,omitempty"`
	OwnerNode            string `xrpl:"OwnerNode,omitempty"`
}

// DID holds a decentralized identifier document.
type DID struct {
	BaseEntry

	Account     string `xrpl:"Account"`
	DIDDocument string `xrpl:"DIDDocument,omitempty"`
	Data        string `xrpl:"Data,omitempty"`
	URI         string `xrpl:"URI,omitempty"`
	OwnerNode   string `xrpl:"OwnerNode,omitempty"`
}

// Credential flags
const (
	LsfAccepted uint32 = 0x00010000
)

// Credential is a credential issued to Subject by Issuer.
type Credential struct {
	BaseEntry

	Subject        string  `xrpl:"Subject"`
	Issuer         string  `xrpl:"Issuer"`
	CredentialType string  `xrpl:"CredentialType"`
	Expiration     *uint32 `xrpl:"Expiration,omitempty"`
	URI            string  `xrpl:"URI,omitempty"`
	IssuerNode     string  `xrpl:"IssuerNode,omitempty"`
	SubjectNode    string  `xrpl:"SubjectNode,omitempty"`
}

// IsAccepted reports whether the subject accepted the credential.
func (c *Credential) IsAccepted() bool { return c.HasFlag(LsfAccepted) }

// DisplayType returns the credential type as text when printable.
func (c *Credential) DisplayType() string {
	return codec.ToDisplayableText(c.CredentialType)
}
