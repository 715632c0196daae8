package types

import (
	"fmt"

	"github.com/LeJamon/goXRPLwallet/internal/core/codec"
)

// Issue identifies an asset without a quantity: the native asset, an issued
// currency (currency plus issuer) or an MPT issuance.
type Issue struct {
	Currency      string
	Issuer        string
	MPTIssuanceID string
}

// NativeIssue is the native asset.
var NativeIssue = Issue{Currency: codec.NativeCurrency}

// IssueFromWire reads an asset object such as the AMM Asset fields.
func IssueFromWire(v any) (Issue, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return Issue{}, fmt.Errorf("%w: asset must be an object, got %T", ErrInvalidAmount, v)
	}
	if id := stringField(m, "mpt_issuance_id"); id != "" {
		return Issue{MPTIssuanceID: id}, nil
	}
	issue := Issue{Currency: stringField(m, "currency"), Issuer: stringField(m, "issuer")}
	if issue.Currency == "" {
		return Issue{}, fmt.Errorf("%w: asset has no currency", ErrInvalidAmount)
	}
	if !issue.IsNative() && !IsValidAddress(issue.Issuer) {
		return Issue{}, fmt.Errorf("%w: bad asset issuer %q", ErrInvalidAmount, issue.Issuer)
	}
	return issue, nil
}

// IsNative reports whether the issue is the native asset.
func (i Issue) IsNative() bool {
	return i.Currency == codec.NativeCurrency && i.Issuer == ""
}

// DisplayCurrency returns the decoded currency code.
func (i Issue) DisplayCurrency() string {
	if i.MPTIssuanceID != "" {
		return "MPT"
	}
	return codec.DecodeCurrencyCode(i.Currency)
}

// Wire returns the wire object.
func (i Issue) Wire() any {
	switch {
	case i.MPTIssuanceID != "":
		return map[string]any{"mpt_issuance_id": i.MPTIssuanceID}
	case i.IsNative():
		return map[string]any{"currency": i.Currency}
	default:
		return map[string]any{"currency": i.Currency, "issuer": i.Issuer}
	}
}

func (i Issue) String() string {
	if i.IsNative() || i.Issuer == "" {
		return i.DisplayCurrency()
	}
	return i.DisplayCurrency() + "/" + i.Issuer
}
