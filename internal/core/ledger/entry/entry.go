// Package entry models ledger objects as returned by account_objects,
// ledger_entry and transaction metadata.
package entry

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/LeJamon/goXRPLwallet/internal/core/schema"
	"github.com/LeJamon/goXRPLwallet/internal/core/tx"
)

// Type represents a ledger entry type
type Type uint16

// Ledger entry type codes.
// Reference: rippled/include/xrpl/protocol/detail/ledger_entries.macro
const (
	TypeNFTokenOffer    Type = 0x0037
	TypeCheck           Type = 0x0043
	TypeDID             Type = 0x0049
	TypeNFTokenPage     Type = 0x0050
	TypeSignerList      Type = 0x0053
	TypeTicket          Type = 0x0054
	TypeAccountRoot     Type = 0x0061
	TypeDirectoryNode   Type = 0x0064
	TypeBridge          Type = 0x0069
	TypeOffer           Type = 0x006f
	TypeDepositPreauth  Type = 0x0070
	TypeRippleState     Type = 0x0072
	TypeEscrow          Type = 0x0075
	TypePayChannel      Type = 0x0078
	TypeAMM             Type = 0x0079
	TypeMPTokenIssuance Type = 0x007e
	TypeMPToken         Type = 0x007f
	TypeOracle          Type = 0x0080
	TypeCredential      Type = 0x0081

	TypeUnknown Type = 0xFFFF
)

var typeNames = map[Type]string{
	TypeNFTokenOffer:    "NFTokenOffer",
	TypeCheck:           "Check",
	TypeDID:             "DID",
	TypeNFTokenPage:     "NFTokenPage",
	TypeSignerList:      "SignerList",
	TypeTicket:          "Ticket",
	TypeAccountRoot:     "AccountRoot",
	TypeDirectoryNode:   "DirectoryNode",
	TypeBridge:          "Bridge",
	TypeOffer:           "Offer",
	TypeDepositPreauth:  "DepositPreauth",
	TypeRippleState:     "RippleState",
	TypeEscrow:          "Escrow",
	TypePayChannel:      "PayChannel",
	TypeAMM:             "AMM",
	TypeMPTokenIssuance: "MPTokenIssuance",
	TypeMPToken:         "MPToken",
	TypeOracle:          "Oracle",
	TypeCredential:      "Credential",
}

var typeNameMap = func() map[string]Type {
	m := make(map[string]Type, len(typeNames))
	for t, name := range typeNames {
		m[name] = t
	}
	return m
}()

// String returns the string representation of the Type
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%#x)", uint16(t))
}

// TypeFromName returns the entry type for a LedgerEntryType name.
func TypeFromName(name string) (Type, bool) {
	t, ok := typeNameMap[name]
	return t, ok
}

var (
	// ErrMissingEntryType is returned when an object has no LedgerEntryType
	// and no type hint was given.
	ErrMissingEntryType = errors.New("missing LedgerEntryType")
	ErrUndeclaredField  = errors.New("field not declared for ledger entry type")

	// ErrNotAnObject is shared with transaction decoding.
	ErrNotAnObject = tx.ErrNotAnObject
)

// Entry is implemented by every ledger entry variant. It is sealed: only
// types embedding BaseEntry satisfy it.
type Entry interface {
	EntryType() Type
	TypeName() string
	GetBase() *BaseEntry
	Raw() map[string]any
	base() *BaseEntry
}

// BaseEntry contains fields common to all entries
type BaseEntry struct {
	LedgerEntryType   string  `xrpl:"LedgerEntryType,omitempty"`
	Flags             uint32  `xrpl:"Flags,omitempty"`
	Index             string  `xrpl:"index,omitempty"`
	PreviousTxnID     string  `xrpl:"PreviousTxnID,omitempty"`
	PreviousTxnLgrSeq *uint32 `xrpl:"PreviousTxnLgrSeq,omitempty"`

	entryType Type
	typeName  string
	raw       map[string]any
}

// EntryType returns the entry type
func (b *BaseEntry) EntryType() Type { return b.entryType }

// TypeName returns the wire name, which for unknown entries is the name
// found in the input.
func (b *BaseEntry) TypeName() string { return b.typeName }

// GetBase returns the common fields
func (b *BaseEntry) GetBase() *BaseEntry { return b }

// Raw returns the preserved wire map.
func (b *BaseEntry) Raw() map[string]any { return b.raw }

// HasFlag reports whether flag is set.
func (b *BaseEntry) HasFlag(flag uint32) bool { return b.Flags&flag == flag }

func (b *BaseEntry) base() *BaseEntry { return b }

// Unknown holds an entry of an unrecognized type.
type Unknown struct {
	BaseEntry
}

var factories = map[Type]func() Entry{
	TypeAccountRoot:     func() Entry { return &AccountRoot{} },
	TypeRippleState:     func() Entry { return &RippleState{} },
	TypeOffer:           func() Entry { return &Offer{} },
	TypeEscrow:          func() Entry { return &Escrow{} },
	TypeCheck:           func() Entry { return &Check{} },
	TypePayChannel:      func() Entry { return &PayChannel{} },
	TypeNFTokenOffer:    func() Entry { return &NFTokenOffer{} },
	TypeNFTokenPage:     func() Entry { return &NFTokenPage{} },
	TypeSignerList:      func() Entry { return &SignerList{} },
	TypeTicket:          func() Entry { return &Ticket{} },
	TypeDepositPreauth:  func() Entry { return &DepositPreauth{} },
	TypeDirectoryNode:   func() Entry { return &DirectoryNode{} },
	TypeAMM:             func() Entry { return &AMM{} },
	TypeDID:             func() Entry { return &DID{} },
	TypeOracle:          func() Entry { return &Oracle{} },
	TypeBridge:          func() Entry { return &Bridge{} },
	TypeCredential:      func() Entry { return &Credential{} },
	TypeMPTokenIssuance: func() Entry { return &MPTokenIssuance{} },
	TypeMPToken:         func() Entry { return &MPToken{} },
}

// AllTypes returns every entry type with a variant.
func AllTypes() []Type {
	out := make([]Type, 0, len(factories))
	for t := range factories {
		out = append(out, t)
	}
	return out
}

// FromJSON parses a ledger entry from JSON.
func FromJSON(data []byte, hint string) (Entry, error) {
	raw, err := tx.DecodeObject(data)
	if err != nil {
		return nil, err
	}
	return FromMap(raw, hint)
}

// FromMap builds an entry from a decoded wire map. LedgerEntryType selects
// the variant; hint is used when the object does not carry one, as in
// metadata node fields.
func FromMap(raw map[string]any, hint string) (Entry, error) {
	if raw == nil {
		return nil, ErrNotAnObject
	}
	name, _ := raw["LedgerEntryType"].(string)
	if name == "" {
		name = hint
	}
	if name == "" {
		return nil, ErrMissingEntryType
	}

	var e Entry
	t, known := TypeFromName(name)
	if known {
		e = factories[t]()
	} else {
		t = TypeUnknown
		e = &Unknown{}
	}
	b := e.base()
	b.entryType = t
	b.typeName = name

	if err := schema.Populate(e, raw); err != nil {
		return nil, err
	}
	b.raw = raw
	return e, nil
}

// Flatten returns the wire map for e.
func Flatten(e Entry) map[string]any {
	return schema.Flatten(e, e.base().raw)
}

// ToJSON serializes e to its wire JSON.
func ToJSON(e Entry) ([]byte, error) {
	return json.Marshal(Flatten(e))
}

// Field returns the typed value of a declared field.
func Field(e Entry, name string) (any, error) {
	v, ok := schema.Get(e, name)
	if !ok {
		return nil, fmt.Errorf("%w: %s has no field %q", ErrUndeclaredField, e.TypeName(), name)
	}
	return v, nil
}

// SetField writes a declared field and updates the wire map.
func SetField(e Entry, name string, value any) error {
	if e.base().raw == nil {
		e.base().raw = map[string]any{}
	}
	declared, err := schema.Set(e, e.base().raw, name, value)
	if !declared {
		return fmt.Errorf("%w: %s has no field %q", ErrUndeclaredField, e.TypeName(), name)
	}
	return err
}
