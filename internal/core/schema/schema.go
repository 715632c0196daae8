// Package schema maps between wire objects and Go structs described by
// xrpl struct tags. The wire map a struct was read from is preserved by the
// caller and overlaid on output, so fields the struct does not declare
// survive a round trip.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/LeJamon/goXRPLwallet/internal/core/types"
)

// ErrMalformedField is returned when a wire value does not fit its field.
var ErrMalformedField = errors.New("malformed field")

// fieldKind selects the wire converter for a field.
type fieldKind int

const (
	kindPlain fieldKind = iota
	kindString
	kindUint
	kindAmount
	kindIssue
	kindMemos
	kindSigners
	kindSignerEntries
	kindPriceData
	kindStrings
)

// flattenField holds pre-computed metadata for a single struct field.
type flattenField struct {
	index     []int
	name      string
	omitempty bool
	kind      fieldKind
	typ       reflect.Type
}

// flattenInfo holds cached metadata for a struct type.
type flattenInfo struct {
	fields []flattenField
	byName map[string]*flattenField
}

// flattenCache stores pre-computed flattenInfo per type to avoid repeated reflection.
var flattenCache sync.Map // map[reflect.Type]*flattenInfo

var (
	amountType      = reflect.TypeOf(types.Amount{})
	issueType       = reflect.TypeOf(types.Issue{})
	memosType       = reflect.TypeOf([]types.Memo{})
	signersType     = reflect.TypeOf([]types.Signer{})
	signerEntryType = reflect.TypeOf([]types.SignerEntry{})
	priceDataType   = reflect.TypeOf([]types.PriceData{})
	stringsType     = reflect.TypeOf([]string{})
)

// parseXRPLTag parses an xrpl struct tag.
// Format: "FieldName,opt" where the only option is omitempty.
// Returns skip for tags that should be ignored ("-").
func parseXRPLTag(tag string) (name string, omitempty bool, skip bool) {
	if tag == "" || tag == "-" {
		return "", false, true
	}
	parts := strings.Split(tag, ",")
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			omitempty = true
		}
	}
	return parts[0], omitempty, false
}

func kindOf(t reflect.Type) fieldKind {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t {
	case amountType:
		return kindAmount
	case issueType:
		return kindIssue
	case memosType:
		return kindMemos
	case signersType:
		return kindSigners
	case signerEntryType:
		return kindSignerEntries
	case priceDataType:
		return kindPriceData
	case stringsType:
		return kindStrings
	}
	switch t.Kind() {
	case reflect.String:
		return kindString
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return kindUint
	}
	return kindPlain
}

// getFlattenInfo returns the cached flattenInfo for a struct type.
// Embedded structs (BaseTx, Common) contribute their fields first.
func getFlattenInfo(t reflect.Type) *flattenInfo {
	if cached, ok := flattenCache.Load(t); ok {
		return cached.(*flattenInfo)
	}

	info := &flattenInfo{byName: map[string]*flattenField{}}
	collectFields(t, nil, info)
	for i := range info.fields {
		info.byName[info.fields[i].name] = &info.fields[i]
	}

	flattenCache.Store(t, info)
	return info
}

func collectFields(t reflect.Type, prefix []int, info *flattenInfo) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		index := append(append([]int{}, prefix...), i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			collectFields(field.Type, index, info)
			continue
		}
		if !field.IsExported() {
			continue
		}

		name, omitempty, skip := parseXRPLTag(field.Tag.Get("xrpl"))
		if skip {
			continue
		}
		info.fields = append(info.fields, flattenField{
			index:     index,
			name:      name,
			omitempty: omitempty,
			kind:      kindOf(field.Type),
			typ:       field.Type,
		})
	}
}

func structValue(target any) reflect.Value {
	v := reflect.ValueOf(target)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	return v
}

// isEmptyValue returns true if the reflect.Value should be considered empty.
func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	case reflect.String:
		return v.String() == ""
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Struct:
		switch v.Type() {
		case amountType:
			return !v.Interface().(types.Amount).IsSet()
		case issueType:
			i := v.Interface().(types.Issue)
			return i.Currency == "" && i.MPTIssuanceID == ""
		}
		return false
	default:
		return false
	}
}

// Flatten returns the wire map for target: raw overlaid with the current
// typed field values. Fields that were never present stay absent while
// empty; cleared pointer and amount fields are removed.
func Flatten(target any, raw map[string]any) map[string]any {
	out := make(map[string]any, len(raw)+4)
	for k, v := range raw {
		out[k] = v
	}

	v := structValue(target)
	for _, f := range getFlattenInfo(v.Type()).fields {
		val := v.FieldByIndex(f.index)
		_, present := raw[f.name]
		if isEmptyValue(val) {
			if !present {
				continue
			}
			if val.Kind() == reflect.Ptr || f.kind == kindAmount || f.kind == kindIssue {
				delete(out, f.name)
				continue
			}
		}
		out[f.name] = toWire(f.kind, val)
	}
	return out
}

// toWire converts a typed field value to its wire representation.
func toWire(kind fieldKind, val reflect.Value) any {
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	switch kind {
	case kindAmount:
		return val.Interface().(types.Amount).Wire()
	case kindIssue:
		return val.Interface().(types.Issue).Wire()
	case kindMemos:
		return types.WrapMemos(val.Interface().([]types.Memo))
	case kindSigners:
		return types.WrapSigners(val.Interface().([]types.Signer))
	case kindSignerEntries:
		return types.WrapSignerEntries(val.Interface().([]types.SignerEntry))
	case kindPriceData:
		return types.WrapPriceDataSeries(val.Interface().([]types.PriceData))
	case kindStrings:
		strs := val.Interface().([]string)
		out := make([]any, len(strs))
		for i, s := range strs {
			out[i] = s
		}
		return out
	default:
		return val.Interface()
	}
}

// decodeField converts a wire (or user supplied) value into the Go type of
// f. userInput selects the amount write path, where plain values denote
// native units rather than drops.
func decodeField(f *flattenField, raw any, userInput bool) (reflect.Value, error) {
	elemType := f.typ
	isPtr := elemType.Kind() == reflect.Ptr
	if isPtr {
		elemType = elemType.Elem()
	}

	decoded, err := decodeValue(f, elemType, raw, userInput)
	if err != nil {
		return reflect.Value{}, fmt.Errorf("%w: %s: %w", ErrMalformedField, f.name, err)
	}
	if !isPtr {
		return decoded, nil
	}
	ptr := reflect.New(elemType)
	ptr.Elem().Set(decoded)
	return ptr, nil
}

func decodeValue(f *flattenField, elemType reflect.Type, raw any, userInput bool) (reflect.Value, error) {
	switch f.kind {
	case kindString:
		s, ok := raw.(string)
		if !ok {
			return reflect.Value{}, fmt.Errorf("expected string, got %T", raw)
		}
		return reflect.ValueOf(s).Convert(elemType), nil
	case kindUint:
		n, err := parseUint(raw, elemType.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		v := reflect.New(elemType).Elem()
		v.SetUint(n)
		return v, nil
	case kindAmount:
		var (
			a   types.Amount
			err error
		)
		if userInput {
			a, err = types.ParseAmount(raw)
		} else {
			a, err = types.AmountFromWire(raw)
		}
		return reflect.ValueOf(a), err
	case kindIssue:
		if i, ok := raw.(types.Issue); ok {
			return reflect.ValueOf(i), nil
		}
		i, err := types.IssueFromWire(raw)
		return reflect.ValueOf(i), err
	case kindMemos:
		if m, ok := raw.([]types.Memo); ok {
			return reflect.ValueOf(m), nil
		}
		m, err := types.UnwrapMemos(raw)
		return reflect.ValueOf(m), err
	case kindSigners:
		if s, ok := raw.([]types.Signer); ok {
			return reflect.ValueOf(s), nil
		}
		s, err := types.UnwrapSigners(raw)
		return reflect.ValueOf(s), err
	case kindSignerEntries:
		if e, ok := raw.([]types.SignerEntry); ok {
			return reflect.ValueOf(e), nil
		}
		e, err := types.UnwrapSignerEntries(raw)
		return reflect.ValueOf(e), err
	case kindPriceData:
		if p, ok := raw.([]types.PriceData); ok {
			return reflect.ValueOf(p), nil
		}
		p, err := types.UnwrapPriceDataSeries(raw)
		return reflect.ValueOf(p), err
	case kindStrings:
		return decodeStrings(raw)
	default:
		v := reflect.ValueOf(raw)
		if !v.IsValid() {
			return reflect.Zero(elemType), nil
		}
		if !v.Type().AssignableTo(elemType) {
			return reflect.Value{}, fmt.Errorf("expected %s, got %T", elemType, raw)
		}
		out := reflect.New(elemType).Elem()
		out.Set(v)
		return out, nil
	}
}

func decodeStrings(raw any) (reflect.Value, error) {
	switch v := raw.(type) {
	case []string:
		return reflect.ValueOf(v), nil
	case []any:
		out := make([]string, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return reflect.Value{}, fmt.Errorf("element %d is %T", i, item)
			}
			out[i] = s
		}
		return reflect.ValueOf(out), nil
	default:
		return reflect.Value{}, fmt.Errorf("expected array, got %T", raw)
	}
}

func parseUint(raw any, bits int) (uint64, error) {
	var s string
	switch v := raw.(type) {
	case json.Number:
		s = v.String()
	case float64:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		s = v
	case int:
		if v < 0 {
			return 0, fmt.Errorf("negative value %d", v)
		}
		return checkBits(uint64(v), bits)
	case int64:
		if v < 0 {
			return 0, fmt.Errorf("negative value %d", v)
		}
		return checkBits(uint64(v), bits)
	case uint8:
		return uint64(v), nil
	case uint16:
		return checkBits(uint64(v), bits)
	case uint32:
		return checkBits(uint64(v), bits)
	case uint64:
		return checkBits(v, bits)
	default:
		return 0, fmt.Errorf("expected number, got %T", raw)
	}
	return strconv.ParseUint(s, 10, bits)
}

func checkBits(n uint64, bits int) (uint64, error) {
	if bits < 64 && n >= 1<<uint(bits) {
		return 0, fmt.Errorf("value %d overflows uint%d", n, bits)
	}
	return n, nil
}

// Populate fills the typed fields of target from raw.
func Populate(target any, raw map[string]any) error {
	v := structValue(target)
	info := getFlattenInfo(v.Type())
	for i := range info.fields {
		f := &info.fields[i]
		value, ok := raw[f.name]
		if !ok || value == nil {
			continue
		}
		decoded, err := decodeField(f, value, false)
		if err != nil {
			return err
		}
		v.FieldByIndex(f.index).Set(decoded)
	}
	return nil
}

// Fields returns the wire names declared by target, embedded fields first.
func Fields(target any) []string {
	info := getFlattenInfo(structValue(target).Type())
	out := make([]string, len(info.fields))
	for i, f := range info.fields {
		out[i] = f.name
	}
	return out
}

// Get returns the typed value of a declared field. Unset optional fields
// return nil; pointers are dereferenced.
func Get(target any, name string) (any, bool) {
	v := structValue(target)
	f, ok := getFlattenInfo(v.Type()).byName[name]
	if !ok {
		return nil, false
	}
	val := v.FieldByIndex(f.index)
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil, true
		}
		val = val.Elem()
	}
	return val.Interface(), true
}

// Set writes a declared field from user input and mirrors the result into
// raw. A nil value clears the field. It reports false for undeclared names.
func Set(target any, raw map[string]any, name string, value any) (bool, error) {
	v := structValue(target)
	f, ok := getFlattenInfo(v.Type()).byName[name]
	if !ok {
		return false, nil
	}
	field := v.FieldByIndex(f.index)

	if value == nil {
		field.Set(reflect.Zero(f.typ))
		delete(raw, f.name)
		return true, nil
	}

	decoded, err := decodeField(f, value, true)
	if err != nil {
		return true, err
	}
	field.Set(decoded)
	raw[f.name] = toWire(f.kind, field)
	return true, nil
}

// Missing returns the required fields of target that are empty, sorted.
// Integer fields always hold a value and are never reported.
func Missing(target any) []string {
	v := structValue(target)
	var missing []string
	for _, f := range getFlattenInfo(v.Type()).fields {
		if f.omitempty || (f.kind == kindUint && f.typ.Kind() != reflect.Ptr) {
			continue
		}
		if isEmptyValue(v.FieldByIndex(f.index)) {
			missing = append(missing, f.name)
		}
	}
	sort.Strings(missing)
	return missing
}
