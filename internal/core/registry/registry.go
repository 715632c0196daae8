// Package registry turns raw protocol objects into typed transactions or
// ledger entries, with their metadata when present.
package registry

import (
	"errors"
	"fmt"

	"github.com/LeJamon/goXRPLwallet/internal/core/ledger/entry"
	"github.com/LeJamon/goXRPLwallet/internal/core/meta"
	"github.com/LeJamon/goXRPLwallet/internal/core/tx"
	_ "github.com/LeJamon/goXRPLwallet/internal/core/tx/all"
)

// ErrConflictingMetadata is returned when metadata is both embedded in the
// object and passed separately.
var ErrConflictingMetadata = errors.New("metadata given twice")

// Kind tells which variant family an Object holds.
type Kind uint8

const (
	KindTransaction Kind = iota + 1
	KindLedgerEntry
)

func (k Kind) String() string {
	switch k {
	case KindTransaction:
		return "transaction"
	case KindLedgerEntry:
		return "ledger_entry"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Object is a parsed protocol object.
type Object struct {
	kind        Kind
	transaction tx.Transaction
	entry       entry.Entry
	metadata    *meta.Metadata
	raw         map[string]any
}

// Kind returns the variant family.
func (o *Object) Kind() Kind { return o.kind }

// Transaction returns the transaction, nil for ledger entries.
func (o *Object) Transaction() tx.Transaction { return o.transaction }

// LedgerEntry returns the ledger entry, nil for transactions.
func (o *Object) LedgerEntry() entry.Entry { return o.entry }

// Metadata returns the attached metadata, if any.
func (o *Object) Metadata() *meta.Metadata { return o.metadata }

// Raw returns the field map the object was read from. Storage layers persist
// this map; it re-parses to an equal object.
func (o *Object) Raw() map[string]any { return o.raw }

// Option configures Parse.
type Option func(*options)

type options struct {
	entryHint string
}

// WithEntryHint parses the object as a ledger entry of the named type when
// it carries no LedgerEntryType, as metadata node fields do.
func WithEntryHint(name string) Option {
	return func(o *options) { o.entryHint = name }
}

// Parse decodes raw and, when given, rawMeta.
func Parse(raw, rawMeta []byte, opts ...Option) (*Object, error) {
	obj, err := tx.DecodeObject(raw)
	if err != nil {
		return nil, err
	}
	var metaMap map[string]any
	if len(rawMeta) > 0 {
		if metaMap, err = tx.DecodeObject(rawMeta); err != nil {
			return nil, fmt.Errorf("%w: %v", meta.ErrMalformedMetadata, err)
		}
	}
	return ParseMap(obj, metaMap, opts...)
}

// ParseMap builds an Object from decoded maps. API responses that wrap the
// transaction in tx_json or embed meta/metaData are unwrapped.
func ParseMap(raw map[string]any, rawMeta map[string]any, opts ...Option) (*Object, error) {
	if raw == nil {
		return nil, tx.ErrNotAnObject
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if _, isEntry := raw["LedgerEntryType"]; isEntry || o.entryHint != "" {
		e, err := entry.FromMap(raw, o.entryHint)
		if err != nil {
			return nil, err
		}
		return &Object{kind: KindLedgerEntry, entry: e, raw: raw}, nil
	}

	body := raw
	if inner, ok := raw["tx_json"].(map[string]any); ok {
		body = inner
	}
	embedded := embeddedMeta(raw)
	if embedded != nil && rawMeta != nil {
		return nil, ErrConflictingMetadata
	}
	if rawMeta == nil {
		rawMeta = embedded
	}

	t, err := tx.FromMap(body)
	if err != nil {
		return nil, err
	}
	out := &Object{kind: KindTransaction, transaction: t, raw: raw}
	if rawMeta != nil {
		if out.metadata, err = meta.FromMap(rawMeta); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func embeddedMeta(raw map[string]any) map[string]any {
	for _, key := range []string{"meta", "metaData"} {
		if m, ok := raw[key].(map[string]any); ok {
			return m
		}
	}
	return nil
}
