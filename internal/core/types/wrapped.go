package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/LeJamon/goXRPLwallet/internal/core/codec"
)

// ErrMalformedArray is returned when an array of single-key wrapper objects
// does not have the expected shape.
var ErrMalformedArray = errors.New("malformed wrapped array")

// UnwrapArray strips the single-key wrapper from each element of an array
// such as [{"Memo": {...}}, ...] and returns the inner objects.
func UnwrapArray(raw any, key string) ([]map[string]any, error) {
	if raw == nil {
		return nil, nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s array expected, got %T", ErrMalformedArray, key, raw)
	}
	out := make([]map[string]any, 0, len(items))
	for i, item := range items {
		wrapper, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s[%d] is %T", ErrMalformedArray, key, i, item)
		}
		inner, ok := wrapper[key].(map[string]any)
		if !ok || len(wrapper) != 1 {
			return nil, fmt.Errorf("%w: %s[%d] must be {%q: {...}}", ErrMalformedArray, key, i, key)
		}
		out = append(out, inner)
	}
	return out, nil
}

// WrapArray is the inverse of UnwrapArray.
func WrapArray(key string, inner []map[string]any) []any {
	out := make([]any, len(inner))
	for i, obj := range inner {
		out[i] = map[string]any{key: obj}
	}
	return out
}

// Memo is an arbitrary payload attached to a transaction. Fields hold hex.
type Memo struct {
	Type   string
	Data   string
	Format string
}

// DisplayType returns the memo type as text when it is printable.
func (m Memo) DisplayType() string { return codec.ToDisplayableText(m.Type) }

// DisplayData returns the memo data as text when it is printable.
func (m Memo) DisplayData() string { return codec.ToDisplayableText(m.Data) }

// Signer is one signature of a multi-signed transaction.
type Signer struct {
	Account       string
	SigningPubKey string
	TxnSignature  string
}

// SignerEntry is a member of a signer list.
type SignerEntry struct {
	Account       string
	SignerWeight  uint16
	WalletLocator string
}

// PriceData is one entry of an oracle price series. AssetPrice is the
// hex-encoded UInt64 as carried on the wire and is absent on deletion.
type PriceData struct {
	BaseAsset  string
	QuoteAsset string
	AssetPrice string
	Scale      *uint8
}

// Price returns AssetPrice scaled down by Scale as a display string.
func (p PriceData) Price() (string, bool) {
	if p.AssetPrice == "" {
		return "", false
	}
	v, err := strconv.ParseUint(p.AssetPrice, 16, 64)
	if err != nil {
		return "", false
	}
	scale := 0
	if p.Scale != nil {
		scale = int(*p.Scale)
	}
	d, err := codec.ParseDecimal(strconv.FormatUint(v, 10))
	if err != nil {
		return "", false
	}
	return d.Shift(int32(-scale)).String(), true
}

// UnwrapMemos reads a Memos array.
func UnwrapMemos(raw any) ([]Memo, error) {
	inner, err := UnwrapArray(raw, "Memo")
	if err != nil {
		return nil, err
	}
	out := make([]Memo, len(inner))
	for i, m := range inner {
		out[i] = Memo{Type: stringField(m, "MemoType"), Data: stringField(m, "MemoData"), Format: stringField(m, "MemoFormat")}
	}
	return out, nil
}

// WrapMemos writes a Memos array.
func WrapMemos(memos []Memo) []any {
	inner := make([]map[string]any, len(memos))
	for i, m := range memos {
		obj := map[string]any{}
		putString(obj, "MemoType", m.Type)
		putString(obj, "MemoData", m.Data)
		putString(obj, "MemoFormat", m.Format)
		inner[i] = obj
	}
	return WrapArray("Memo", inner)
}

// UnwrapSigners reads a Signers array.
func UnwrapSigners(raw any) ([]Signer, error) {
	inner, err := UnwrapArray(raw, "Signer")
	if err != nil {
		return nil, err
	}
	out := make([]Signer, len(inner))
	for i, s := range inner {
		out[i] = Signer{
			Account:       stringField(s, "Account"),
			SigningPubKey: stringField(s, "SigningPubKey"),
			TxnSignature:  stringField(s, "TxnSignature"),
		}
	}
	return out, nil
}

// WrapSigners writes a Signers array.
func WrapSigners(signers []Signer) []any {
	inner := make([]map[string]any, len(signers))
	for i, s := range signers {
		obj := map[string]any{"Account": s.Account}
		putString(obj, "SigningPubKey", s.SigningPubKey)
		putString(obj, "TxnSignature", s.TxnSignature)
		inner[i] = obj
	}
	return WrapArray("Signer", inner)
}

// UnwrapSignerEntries reads a SignerEntries array.
func UnwrapSignerEntries(raw any) ([]SignerEntry, error) {
	inner, err := UnwrapArray(raw, "SignerEntry")
	if err != nil {
		return nil, err
	}
	out := make([]SignerEntry, len(inner))
	for i, e := range inner {
		weight, err := uintField(e, "SignerWeight", 16)
		if err != nil {
			return nil, err
		}
		out[i] = SignerEntry{
			Account:       stringField(e, "Account"),
			SignerWeight:  uint16(weight),
			WalletLocator: stringField(e, "WalletLocator"),
		}
	}
	return out, nil
}

// WrapSignerEntries writes a SignerEntries array.
func WrapSignerEntries(entries []SignerEntry) []any {
	inner := make([]map[string]any, len(entries))
	for i, e := range entries {
		obj := map[string]any{"Account": e.Account, "SignerWeight": e.SignerWeight}
		putString(obj, "WalletLocator", e.WalletLocator)
		inner[i] = obj
	}
	return WrapArray("SignerEntry", inner)
}

// UnwrapPriceDataSeries reads an oracle PriceDataSeries array.
func UnwrapPriceDataSeries(raw any) ([]PriceData, error) {
	inner, err := UnwrapArray(raw, "PriceData")
	if err != nil {
		return nil, err
	}
	out := make([]PriceData, len(inner))
	for i, p := range inner {
		pd := PriceData{
			BaseAsset:  stringField(p, "BaseAsset"),
			QuoteAsset: stringField(p, "QuoteAsset"),
			AssetPrice: stringField(p, "AssetPrice"),
		}
		if _, ok := p["Scale"]; ok {
			scale, err := uintField(p, "Scale", 8)
			if err != nil {
				return nil, err
			}
			s := uint8(scale)
			pd.Scale = &s
		}
		out[i] = pd
	}
	return out, nil
}

// WrapPriceDataSeries writes an oracle PriceDataSeries array.
func WrapPriceDataSeries(series []PriceData) []any {
	inner := make([]map[string]any, len(series))
	for i, p := range series {
		obj := map[string]any{"BaseAsset": p.BaseAsset, "QuoteAsset": p.QuoteAsset}
		putString(obj, "AssetPrice", p.AssetPrice)
		if p.Scale != nil {
			obj["Scale"] = *p.Scale
		}
		inner[i] = obj
	}
	return WrapArray("PriceData", inner)
}

func putString(obj map[string]any, key, value string) {
	if value != "" {
		obj[key] = value
	}
}

func uintField(m map[string]any, key string, bits int) (uint64, error) {
	var s string
	switch v := m[key].(type) {
	case nil:
		return 0, nil
	case json.Number:
		s = v.String()
	case float64:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		s = v
	default:
		return 0, fmt.Errorf("%w: %s is %T", ErrMalformedArray, key, v)
	}
	n, err := strconv.ParseUint(s, 10, bits)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrMalformedArray, key, err)
	}
	return n, nil
}
