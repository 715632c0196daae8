package tx

import (
	"encoding/json"
	"fmt"

	"github.com/LeJamon/goXRPLwallet/internal/core/schema"
)

// Flatten returns the wire map for t: the preserved input overlaid with the
// current typed field values.
func Flatten(t Transaction) map[string]any {
	return schema.Flatten(t, t.base().raw)
}

// ToJSON serializes t to its wire JSON.
func ToJSON(t Transaction) ([]byte, error) {
	return json.Marshal(Flatten(t))
}

// Fields returns the wire names of the fields declared for t, common fields
// first.
func Fields(t Transaction) []string {
	return schema.Fields(t)
}

// Field returns the typed value of a declared field. Unset optional fields
// return nil; pointers are dereferenced.
func Field(t Transaction, name string) (any, error) {
	v, ok := schema.Get(t, name)
	if !ok {
		return nil, fmt.Errorf("%w: %s has no field %q", ErrUndeclaredField, t.TypeName(), name)
	}
	return v, nil
}

// MustField is Field for callers that know the field is declared.
func MustField(t Transaction, name string) any {
	v, err := Field(t, name)
	if err != nil {
		panic(err)
	}
	return v
}

// SetField writes a declared field through the codec and updates the wire
// map. A nil value clears the field. Amount fields accept the same inputs as
// types.ParseAmount: a plain value is a native amount in native units.
func SetField(t Transaction, name string, value any) error {
	declared, err := schema.Set(t, t.base().raw, name, value)
	if !declared {
		return fmt.Errorf("%w: %s has no field %q", ErrUndeclaredField, t.TypeName(), name)
	}
	return err
}

// Validate checks that every required field of t is populated.
func Validate(t Transaction) error {
	missing := schema.Missing(t)
	if !t.TxType().IsPseudo() && t.GetCommon().Account == "" {
		missing = append([]string{"Account"}, missing...)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s requires %v", ErrMissingRequiredField, t.TypeName(), missing)
	}
	return nil
}
