package codec

import (
	"strings"
	"unicode/utf8"
)

// currencyHexLength is the length of a 160-bit currency code in hex.
const currencyHexLength = 40

// xls15dPrefix marks a currency code using the alternate XLS-15d scheme:
// an 8 byte header followed by UTF-8 text.
const xls15dPrefix = 0x02

const xls15dHeaderLength = 8

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// DecodeCurrencyCode returns the display form of a currency code.
// It never fails: undecodable hex degrades to a truncated placeholder and a
// code that decodes to the native symbol is reported as FakeNativeCurrency.
func DecodeCurrencyCode(code string) string {
	if code == "" {
		return ""
	}
	if code == NativeCurrency {
		return code
	}
	if strings.EqualFold(code, NativeCurrency) {
		return FakeNativeCurrency
	}
	if !IsHexCurrency(code) {
		return code
	}

	raw, err := HexToBytes(code)
	if err != nil {
		return code[:4] + "..."
	}

	var decoded string
	if raw[0] == xls15dPrefix && utf8.Valid(raw[xls15dHeaderLength:]) {
		decoded = string(raw[xls15dHeaderLength:])
	} else {
		decoded = asciiDecode(raw)
	}

	clean := lineBreaks.Replace(strings.ReplaceAll(decoded, "\x00", ""))
	if strings.EqualFold(strings.TrimSpace(clean), NativeCurrency) {
		return FakeNativeCurrency
	}
	if strings.TrimSpace(clean) == "" {
		return code[:4] + "..."
	}
	return clean
}

// IsHexCurrency reports whether code is a 40 hex character currency code.
// Lower-case digits are accepted although the wire form is upper case.
func IsHexCurrency(code string) bool {
	if len(code) != currencyHexLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		if !isHexDigit(code[i]) {
			return false
		}
	}
	return true
}

// IsStandardCurrency reports whether code is a 3 character ISO-style code.
func IsStandardCurrency(code string) bool {
	if len(code) != 3 {
		return false
	}
	for i := 0; i < len(code); i++ {
		c := code[i]
		if !(c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c >= '0' && c <= '9') {
			return false
		}
	}
	return true
}

// IsValidCurrencyCode reports whether code is acceptable as an issued
// currency: a 3 character code other than the native symbol, or 40 hex.
func IsValidCurrencyCode(code string) bool {
	if code == NativeCurrency {
		return false
	}
	return IsStandardCurrency(code) || IsHexCurrency(code)
}

// asciiDecode maps each byte to a rune, replacing bytes outside ASCII.
func asciiDecode(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	var b strings.Builder
	b.Grow(len(raw))
	for _, c := range raw {
		if c < utf8.RuneSelf {
			b.WriteByte(c)
			continue
		}
		b.WriteRune(utf8.RuneError)
	}
	return b.String()
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}
