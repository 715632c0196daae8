package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/LeJamon/goXRPLwallet/internal/core/codec"
)

var (
	// ErrInvalidAmount is returned when an amount cannot be read or written.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrMissingAmountField is returned when an issued amount lacks one of
	// currency, issuer or value.
	ErrMissingAmountField = errors.New("issued amount requires currency, issuer and value")
)

// Amount is either a native amount or an issued-currency amount.
//
// The wire value is kept verbatim (drops for native, the issued value
// string otherwise) so re-serialization is exact; the display value is
// derived through the codec.
type Amount struct {
	currency string
	issuer   string
	mptID    string
	raw      string
	value    decimal.Decimal
}

// NewNativeAmount creates a native amount from a drops string.
func NewNativeAmount(drops string) (Amount, error) {
	value, err := codec.DropsToNative(drops)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}
	return Amount{currency: codec.NativeCurrency, raw: drops, value: value}, nil
}

// NativeFromDecimal creates a native amount from a value in native units.
func NativeFromDecimal(value decimal.Decimal) (Amount, error) {
	drops, err := codec.NativeToDrops(value)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}
	return Amount{currency: codec.NativeCurrency, raw: drops, value: value}, nil
}

// MustNative is NativeFromDecimal for constants; it panics on bad input.
func MustNative(value string) Amount {
	a, err := NativeFromDecimal(decimal.RequireFromString(value))
	if err != nil {
		panic(err)
	}
	return a
}

// NewIssuedAmount creates an issued-currency amount after validating its parts.
func NewIssuedAmount(value, currency, issuer string) (Amount, error) {
	if value == "" || currency == "" || issuer == "" {
		return Amount{}, ErrMissingAmountField
	}
	if !codec.IsValidCurrencyCode(currency) {
		return Amount{}, fmt.Errorf("%w: bad currency %q", ErrInvalidAmount, currency)
	}
	if !IsValidAddress(issuer) {
		return Amount{}, fmt.Errorf("%w: bad issuer %q", ErrInvalidAmount, issuer)
	}
	d, err := codec.ParseDecimal(value)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}
	return Amount{currency: currency, issuer: issuer, raw: value, value: d}, nil
}

// MustIssued is NewIssuedAmount for constants; it panics on bad input.
func MustIssued(value, currency, issuer string) Amount {
	a, err := NewIssuedAmount(value, currency, issuer)
	if err != nil {
		panic(err)
	}
	return a
}

// NewMPTAmount creates a multi-purpose token amount.
func NewMPTAmount(value, issuanceID string) (Amount, error) {
	if len(issuanceID) != 48 {
		return Amount{}, fmt.Errorf("%w: bad mpt_issuance_id %q", ErrInvalidAmount, issuanceID)
	}
	d, err := codec.ParseDecimal(value)
	if err != nil || !d.IsInteger() {
		return Amount{}, fmt.Errorf("%w: mpt value %q must be an integer", ErrInvalidAmount, value)
	}
	return Amount{mptID: issuanceID, raw: value, value: d}, nil
}

// AmountFromWire reads an amount in its wire form: a drops string for the
// native asset, an object otherwise.
func AmountFromWire(v any) (Amount, error) {
	switch val := v.(type) {
	case string:
		return NewNativeAmount(val)
	case json.Number:
		return NewNativeAmount(val.String())
	case map[string]any:
		return amountFromObject(val)
	case Amount:
		return val, nil
	default:
		return Amount{}, fmt.Errorf("%w: unexpected wire type %T", ErrInvalidAmount, v)
	}
}

// ParseAmount is the write path for amount fields. A plain string or number
// is a native amount expressed in native units (not drops); an object is an
// issued amount stored verbatim once its parts are validated.
func ParseAmount(v any) (Amount, error) {
	switch val := v.(type) {
	case Amount:
		return val, nil
	case *Amount:
		if val == nil {
			return Amount{}, fmt.Errorf("%w: nil amount", ErrInvalidAmount)
		}
		return *val, nil
	case decimal.Decimal:
		return NativeFromDecimal(val)
	case string:
		d, err := codec.ParseDecimal(val)
		if err != nil {
			return Amount{}, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
		}
		return NativeFromDecimal(d)
	case json.Number:
		return ParseAmount(val.String())
	case float64:
		return ParseAmount(strconv.FormatFloat(val, 'f', -1, 64))
	case int:
		return NativeFromDecimal(decimal.NewFromInt(int64(val)))
	case int64:
		return NativeFromDecimal(decimal.NewFromInt(val))
	case uint32:
		return NativeFromDecimal(decimal.NewFromInt(int64(val)))
	case map[string]any:
		return amountFromObject(val)
	case map[string]string:
		m := make(map[string]any, len(val))
		for k, s := range val {
			m[k] = s
		}
		return amountFromObject(m)
	default:
		return Amount{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidAmount, v)
	}
}

func amountFromObject(m map[string]any) (Amount, error) {
	value := stringField(m, "value")
	if id := stringField(m, "mpt_issuance_id"); id != "" {
		return NewMPTAmount(value, id)
	}
	currency := stringField(m, "currency")
	if currency == codec.NativeCurrency && stringField(m, "issuer") == "" {
		d, err := codec.ParseDecimal(value)
		if err != nil {
			return Amount{}, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
		}
		return NativeFromDecimal(d)
	}
	return NewIssuedAmount(value, currency, stringField(m, "issuer"))
}

func stringField(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return ""
	}
}

// IsNative reports whether a is denominated in the native asset.
func (a Amount) IsNative() bool {
	return a.currency == codec.NativeCurrency && a.issuer == ""
}

// IsMPT reports whether a is a multi-purpose token amount.
func (a Amount) IsMPT() bool {
	return a.mptID != ""
}

// IsZero reports whether the amount is zero or unset.
func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// IsSet reports whether the amount has been populated.
func (a Amount) IsSet() bool {
	return a.raw != ""
}

// Currency returns the raw currency code.
func (a Amount) Currency() string { return a.currency }

// Issuer returns the issuing account, empty for native amounts.
func (a Amount) Issuer() string { return a.issuer }

// MPTIssuanceID returns the issuance for MPT amounts.
func (a Amount) MPTIssuanceID() string { return a.mptID }

// Raw returns the wire value: drops for native amounts.
func (a Amount) Raw() string { return a.raw }

// Value returns the amount in display units.
func (a Amount) Value() decimal.Decimal { return a.value }

// Normalized returns the display value after codec normalization.
func (a Amount) Normalized() string {
	return codec.NormalizeAmount(a.value).String()
}

// DisplayCurrency returns the decoded currency code.
func (a Amount) DisplayCurrency() string {
	if a.IsMPT() {
		return "MPT"
	}
	return codec.DecodeCurrencyCode(a.currency)
}

// Issue returns the currency/issuer pair of the amount.
func (a Amount) Issue() Issue {
	return Issue{Currency: a.currency, Issuer: a.issuer, MPTIssuanceID: a.mptID}
}

// Equal compares currency, issuer and value.
func (a Amount) Equal(b Amount) bool {
	return a.currency == b.currency && a.issuer == b.issuer && a.mptID == b.mptID && a.value.Equal(b.value)
}

// WithValue returns a copy of a carrying a new display value.
func (a Amount) WithValue(value decimal.Decimal) (Amount, error) {
	switch {
	case a.IsNative():
		return NativeFromDecimal(value)
	case a.IsMPT():
		return NewMPTAmount(value.String(), a.mptID)
	default:
		return Amount{currency: a.currency, issuer: a.issuer, raw: value.String(), value: value}, nil
	}
}

// String formats the amount as "<value> <currency>".
func (a Amount) String() string {
	return a.Normalized() + " " + a.DisplayCurrency()
}

// Wire returns the wire representation of the amount.
func (a Amount) Wire() any {
	switch {
	case a.IsNative():
		return a.raw
	case a.IsMPT():
		return map[string]any{"mpt_issuance_id": a.mptID, "value": a.raw}
	default:
		return map[string]any{"currency": a.currency, "issuer": a.issuer, "value": a.raw}
	}
}

// MarshalJSON writes the wire form.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Wire())
}

// UnmarshalJSON reads the wire form.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	parsed, err := AmountFromWire(v)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
