// Package codec converts between the wire encodings of XRPL amounts and
// currency codes and the values shown to a wallet user.
//
// Every function in this package is pure. Amount arithmetic is done on
// shopspring decimals, never on float64.
package codec

import "errors"

var (
	// ErrDecodeFailure is returned when codec input is structurally invalid
	// (odd-length hex, unparsable decimal). Display paths never surface it.
	ErrDecodeFailure = errors.New("decode failure")

	// ErrInvalidInput is returned by round-trip sensitive operations when the
	// input cannot be encoded (non-digit serial, scientific notation...).
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotSentinelCompatible is returned when an NFT sentinel is requested
	// against a balance that is not itself a sentinel value.
	ErrNotSentinelCompatible = errors.New("balance is not sentinel compatible")
)

const (
	// NativeCurrency is the ledger's built-in asset.
	NativeCurrency = "XRP"

	// FakeNativeCurrency marks an issued currency whose code decodes to the
	// native symbol.
	FakeNativeCurrency = "FakeXRP"

	// DropsPerNative is the number of drops in one unit of the native asset.
	DropsPerNative int64 = 1_000_000

	// NativeDecimals is the number of fractional digits a native amount may carry.
	NativeDecimals = 6

	// DisplayDecimals is the precision amounts are rounded to for display.
	DisplayDecimals = 8
)
