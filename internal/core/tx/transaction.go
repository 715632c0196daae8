package tx

import (
	"errors"

	"github.com/LeJamon/goXRPLwallet/internal/core/schema"
	"github.com/LeJamon/goXRPLwallet/internal/core/types"
)

// Common errors
var (
	ErrMissingRequiredField   = errors.New("missing required field")
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrMalformedField         = schema.ErrMalformedField
	ErrUndeclaredField        = errors.New("field not declared for transaction type")
	ErrUnsupportedOperation   = errors.New("operation not supported for this transaction type")
	ErrNotAnObject            = errors.New("transaction must be a JSON object")
)

// Transaction is the interface that all transaction types implement.
// It is sealed: only types embedding BaseTx satisfy it.
type Transaction interface {
	// TxType returns the transaction type
	TxType() Type

	// TypeName returns the wire name, which for unknown types is the name
	// found in the input.
	TypeName() string

	// GetCommon returns the common transaction fields
	GetCommon() *Common

	// Raw returns the wire map the transaction was read from, kept in sync
	// by SetField.
	Raw() map[string]any

	base() *BaseTx
}

// Common contains fields common to all transaction types
type Common struct {
	Account         string `xrpl:"Account,omitempty"`
	TransactionType string `xrpl:"TransactionType,omitempty"`

	// Fee in drops
	Fee string `xrpl:"Fee,omitempty"`

	Sequence           *uint32 `xrpl:"Sequence,omitempty"`
	Flags              *uint32 `xrpl:"Flags,omitempty"`
	LastLedgerSequence *uint32 `xrpl:"LastLedgerSequence,omitempty"`
	SourceTag          *uint32 `xrpl:"SourceTag,omitempty"`
	TicketSequence     *uint32 `xrpl:"TicketSequence,omitempty"`
	NetworkID          *uint32 `xrpl:"NetworkID,omitempty"`

	AccountTxnID  string `xrpl:"AccountTxnID,omitempty"`
	SigningPubKey string `xrpl:"SigningPubKey,omitempty"`
	TxnSignature  string `xrpl:"TxnSignature,omitempty"`

	Memos   []types.Memo   `xrpl:"Memos,omitempty"`
	Signers []types.Signer `xrpl:"Signers,omitempty"`
}

// FeeAmount returns the fee as a native amount, or false if no fee is set.
func (c *Common) FeeAmount() (types.Amount, bool) {
	if c.Fee == "" {
		return types.Amount{}, false
	}
	fee, err := types.NewNativeAmount(c.Fee)
	if err != nil {
		return types.Amount{}, false
	}
	return fee, true
}

// HasFlag reports whether flag is set.
func (c *Common) HasFlag(flag uint32) bool {
	return c.Flags != nil && *c.Flags&flag == flag
}

// IsMultiSigned reports whether the transaction carries a signer list.
func (c *Common) IsMultiSigned() bool {
	return len(c.Signers) > 0
}

// BaseTx is embedded by every transaction variant.
type BaseTx struct {
	Common
	txType   Type
	typeName string
	raw      map[string]any
}

// NewBaseTx creates a new base transaction of the given type.
func NewBaseTx(txType Type, account string) *BaseTx {
	b := &BaseTx{txType: txType, typeName: txType.String(), raw: map[string]any{}}
	b.Account = account
	if !txType.IsPseudo() {
		b.TransactionType = b.typeName
	}
	return b
}

// TxType returns the transaction type
func (b *BaseTx) TxType() Type { return b.txType }

// TypeName returns the wire name of the transaction type.
func (b *BaseTx) TypeName() string { return b.typeName }

// GetCommon returns the common fields
func (b *BaseTx) GetCommon() *Common { return &b.Common }

// Raw returns the preserved wire map.
func (b *BaseTx) Raw() map[string]any { return b.raw }

func (b *BaseTx) base() *BaseTx { return b }

// Unknown holds a transaction of an unrecognized type. Only the common
// fields are typed; everything else stays in the raw map.
type Unknown struct {
	BaseTx
}

// SignerAccount returns the classic address derived from SigningPubKey.
// Multi-signed and unsigned transactions report no single signer.
func (b *BaseTx) SignerAccount() (string, bool) {
	if b.SigningPubKey == "" || b.IsMultiSigned() {
		return "", false
	}
	signer, err := accountFromPublicKey(b.SigningPubKey)
	if err != nil {
		return "", false
	}
	return signer, true
}

// IsRegularKeySigned reports whether the signing key belongs to an account
// other than the transaction's Account, as it does for regular keys.
func (b *BaseTx) IsRegularKeySigned() bool {
	signer, ok := b.SignerAccount()
	return ok && signer != b.Account
}
