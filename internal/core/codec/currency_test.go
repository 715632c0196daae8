package codec

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeCurrencyCode(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected string
	}{
		{name: "native", code: "XRP", expected: "XRP"},
		{name: "lower case native is fake", code: "xrp", expected: FakeNativeCurrency},
		{name: "mixed case native is fake", code: "xRp", expected: FakeNativeCurrency},
		{name: "standard code", code: "USD", expected: "USD"},
		{name: "hex text", code: "4D79417765736F6D6543757272656E6379000000", expected: "MyAwesomeCurrency"},
		{name: "hex that decodes to native", code: "5852500000000000000000000000000000000000", expected: FakeNativeCurrency},
		{name: "hex that decodes to lower native", code: "7872700000000000000000000000000000000000", expected: FakeNativeCurrency},
		{name: "all zero hex", code: "0000000000000000000000000000000000000000", expected: "0000..."},
		{name: "line breaks normalized", code: "410D0A4200000000000000000000000000000000", expected: "A B"},
		{name: "xls15d prefix", code: "02000000000000004C6F6E67436F696E00000000", expected: "LongCoin"},
		{name: "empty", code: "", expected: ""},
		{name: "not hex falls through", code: "SOMETHING", expected: "SOMETHING"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, DecodeCurrencyCode(tc.code))
		})
	}
}

func TestDecodeCurrencyCodeTotal(t *testing.T) {
	const alphabet = "0123456789ABCDEFabcdefXYZ"
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		var b strings.Builder
		for j := 0; j < currencyHexLength; j++ {
			b.WriteByte(alphabet[rng.Intn(len(alphabet))])
		}
		code := b.String()
		assert.NotPanics(t, func() {
			assert.NotEmpty(t, DecodeCurrencyCode(code), code)
		})
	}
}

func TestIsValidCurrencyCode(t *testing.T) {
	assert.True(t, IsValidCurrencyCode("USD"))
	assert.True(t, IsValidCurrencyCode("4D79417765736F6D6543757272656E6379000000"))
	assert.False(t, IsValidCurrencyCode("XRP"))
	assert.False(t, IsValidCurrencyCode("US"))
	assert.False(t, IsValidCurrencyCode("U$D"))
}

func TestIsHexCurrency(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"4D79417765736F6D6543757272656E6379000000", true},
		{"4d79417765736f6d6543757272656e6379000000", true},
		{"4D79417765736F6D6543757272656E637900000", false},
		{"4D79417765736F6D6543757272656E63790000ZZ", false},
		{"USD", false},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, IsHexCurrency(tt.code))
		})
	}
}
