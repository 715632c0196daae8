package codec

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// Sentinel constants. These mirror the historical convention used by
// wallets to carry NFT serials in issued-currency values and are kept
// bit-exact.
const (
	// sentinelExponent is the scientific exponent a value must be below.
	sentinelExponent = -70

	// sentinelMaxLength caps the unsigned plain-notation length ("0." included).
	sentinelMaxLength = 83

	// sentinelFractionDigits is the number of fractional digits of the
	// encoded form: 83 minus the "0." prefix.
	sentinelFractionDigits = sentinelMaxLength - 2

	// MaxSentinelSerialDigits is the longest serial that still classifies as
	// a sentinel once encoded.
	MaxSentinelSerialDigits = sentinelFractionDigits + sentinelExponent
)

// EncodeNFTSentinel turns an integer serial into its sentinel decimal form:
// "0." followed by (81 - len(serial)) zeros and the serial, sign preserved.
//
// When priorBalance is given it must itself be a sentinel, otherwise
// ErrNotSentinelCompatible is returned. A zero balance is not a sentinel.
func EncodeNFTSentinel(serial string, priorBalance ...decimal.Decimal) (string, error) {
	for _, balance := range priorBalance {
		if _, ok := DecodeNFTSentinel(balance); !ok {
			return "", fmt.Errorf("%w: %s", ErrNotSentinelCompatible, balance.String())
		}
	}

	sign := ""
	digits := serial
	if strings.HasPrefix(digits, "-") {
		sign = "-"
		digits = digits[1:]
	}
	if digits == "" || strings.IndexFunc(digits, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return "", fmt.Errorf("%w: serial %q must be a plain unsigned integer", ErrInvalidInput, serial)
	}

	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return "", fmt.Errorf("%w: serial must not be zero", ErrInvalidInput)
	}
	if len(digits) > MaxSentinelSerialDigits {
		return "", fmt.Errorf("%w: serial %q exceeds %d digits", ErrInvalidInput, serial, MaxSentinelSerialDigits)
	}

	return sign + "0." + strings.Repeat("0", sentinelFractionDigits-len(digits)) + digits, nil
}

// DecodeNFTSentinel classifies value. When it is a sentinel the integer
// serial is returned with ok set; otherwise ok is false. A false result is
// a classification, not an error.
func DecodeNFTSentinel(value decimal.Decimal) (serial string, ok bool) {
	if value.IsZero() {
		return "", false
	}

	coefficient, exp := canonical(value)
	digits := new(big.Int).Abs(coefficient).String()

	if int(exp)+len(digits)-1 >= sentinelExponent {
		return "", false
	}
	// Unsigned plain form is "0." plus -exp fractional digits.
	if 2-int(exp) > sentinelMaxLength {
		return "", false
	}

	serial = digits + strings.Repeat("0", sentinelFractionDigits+int(exp))
	if value.Sign() < 0 {
		serial = "-" + serial
	}
	return serial, true
}

// SentinelCanonicalForm is the encoded form of a sentinel value, i.e. the
// value written with exactly 81 fractional digits.
func SentinelCanonicalForm(value decimal.Decimal) string {
	return value.StringFixed(sentinelFractionDigits)
}

// IsNFTSentinel reports whether value carries an NFT serial.
func IsNFTSentinel(value decimal.Decimal) bool {
	_, ok := DecodeNFTSentinel(value)
	return ok
}

// canonical strips trailing zeros from the coefficient.
func canonical(value decimal.Decimal) (*big.Int, int32) {
	coefficient := new(big.Int).Set(value.Coefficient())
	exp := value.Exponent()
	ten := big.NewInt(10)
	rem := new(big.Int)
	for coefficient.Sign() != 0 {
		q, r := new(big.Int).QuoRem(coefficient, ten, rem)
		if r.Sign() != 0 {
			break
		}
		coefficient = q
		exp++
	}
	return coefficient, exp
}
