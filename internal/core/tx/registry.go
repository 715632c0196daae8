package tx

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/LeJamon/goXRPLwallet/internal/core/schema"
)

// Factory creates a zero transaction of one type.
type Factory func() Transaction

var (
	registryMu sync.RWMutex
	registry   = map[Type]Factory{}
)

// Register associates a factory with a transaction type. Variant packages
// call it from init; registering a type twice panics.
func Register(t Type, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[t]; dup {
		panic(fmt.Sprintf("tx: type %s registered twice", t))
	}
	registry[t] = f
}

// RegisteredTypes returns the types that have a factory.
func RegisteredTypes() []Type {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]Type, 0, len(registry))
	for _, t := range AllTypes() {
		if _, ok := registry[t]; ok {
			out = append(out, t)
		}
	}
	return out
}

// NewFromType creates a new, empty transaction of the given type.
func NewFromType(t Type) (Transaction, error) {
	registryMu.RLock()
	f, ok := registry[t]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s has no registered variant", ErrInvalidTransactionType, t)
	}
	tx := f()
	b := tx.base()
	b.txType = t
	b.typeName = t.String()
	if b.raw == nil {
		b.raw = map[string]any{}
	}
	return tx, nil
}

// FromJSON parses a transaction from its JSON wire form.
func FromJSON(data []byte) (Transaction, error) {
	raw, err := DecodeObject(data)
	if err != nil {
		return nil, err
	}
	return FromMap(raw)
}

// DecodeObject decodes a JSON object keeping numbers as json.Number, so
// that re-serializing yields the same digits.
func DecodeObject(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotAnObject, err)
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, ErrNotAnObject
	}
	return m, nil
}

// DetectType resolves the transaction type of a wire map. Objects without a
// TransactionType are wallet pseudo-transactions: a Channel with an Amount
// is a channel authorization, anything else a sign-in request.
func DetectType(raw map[string]any) (Type, string, error) {
	value, has := raw["TransactionType"]
	if !has {
		_, hasChannel := raw["Channel"]
		_, hasAmount := raw["Amount"]
		if hasChannel && hasAmount {
			return TypePaymentChannelAuthorize, TypePaymentChannelAuthorize.String(), nil
		}
		return TypeSignIn, TypeSignIn.String(), nil
	}
	name, ok := value.(string)
	if !ok || name == "" {
		return TypeUnknown, "", fmt.Errorf("%w: TransactionType must be a non-empty string", ErrInvalidTransactionType)
	}
	if t, ok := TypeFromName(name); ok {
		return t, name, nil
	}
	return TypeUnknown, name, nil
}

// FromMap builds a transaction from a decoded wire map. The map is retained
// and re-emitted by Flatten, so unknown fields survive a round trip.
func FromMap(raw map[string]any) (Transaction, error) {
	if raw == nil {
		return nil, ErrNotAnObject
	}
	t, name, err := DetectType(raw)
	if err != nil {
		return nil, err
	}

	var tx Transaction
	if t == TypeUnknown {
		tx = &Unknown{BaseTx: BaseTx{txType: TypeUnknown, typeName: name}}
	} else if tx, err = NewFromType(t); err != nil {
		return nil, err
	}

	if err := schema.Populate(tx, raw); err != nil {
		return nil, err
	}
	tx.base().raw = raw
	return tx, nil
}
