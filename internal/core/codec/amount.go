package codec

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// NormalizeAmount returns the display value of a raw amount.
// NFT sentinel values decode to their integer serial; everything else is
// rounded to DisplayDecimals places (half away from zero) without ever
// leaving decimal arithmetic.
func NormalizeAmount(raw decimal.Decimal) decimal.Decimal {
	if serial, ok := DecodeNFTSentinel(raw); ok {
		return decimal.RequireFromString(serial)
	}
	return raw.Round(DisplayDecimals)
}

// NormalizeAmountString parses value and normalizes it.
func NormalizeAmountString(value string) (decimal.Decimal, error) {
	d, err := ParseDecimal(value)
	if err != nil {
		return decimal.Zero, err
	}
	return NormalizeAmount(d), nil
}

// ParseDecimal parses a decimal string, accepting plain and scientific
// notation as found in issued-currency values on the wire.
func ParseDecimal(value string) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero, fmt.Errorf("%w: empty decimal", ErrDecodeFailure)
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a decimal", ErrDecodeFailure, value)
	}
	return d, nil
}

// PlainString renders d without scientific notation.
func PlainString(d decimal.Decimal) string {
	return d.String()
}

// DropsToNative converts a drops string into native units.
func DropsToNative(drops string) (decimal.Decimal, error) {
	d, err := ParseDecimal(drops)
	if err != nil {
		return decimal.Zero, err
	}
	if !d.IsInteger() {
		return decimal.Zero, fmt.Errorf("%w: drops must be an integer, got %q", ErrDecodeFailure, drops)
	}
	return d.Shift(-NativeDecimals), nil
}

// NativeToDrops converts a native amount into its drops string.
// Amounts with more than NativeDecimals fractional digits are rejected
// rather than rounded.
func NativeToDrops(value decimal.Decimal) (string, error) {
	drops := value.Shift(NativeDecimals)
	if !drops.IsInteger() {
		return "", fmt.Errorf("%w: %s has more than %d decimals", ErrInvalidInput, value.String(), NativeDecimals)
	}
	return drops.Truncate(0).String(), nil
}
