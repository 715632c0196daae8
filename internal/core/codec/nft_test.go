package codec

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sentinel31 = "0.000000000000000000000000000000000000000000000000000000000000000000000000000000031"

func TestDecodeNFTSentinel(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		serial string
		ok     bool
	}{
		{name: "serial 31", value: sentinel31, serial: "31", ok: true},
		{name: "scientific input", value: "3.1e-80", serial: "31", ok: true},
		{name: "serial 1", value: "1e-81", serial: "1", ok: true},
		{name: "trailing zero serial", value: "3e-80", serial: "30", ok: true},
		{name: "negative serial", value: "-" + sentinel31, serial: "-31", ok: true},
		{name: "regular amount", value: "12.5", ok: false},
		{name: "small but regular", value: "0.00000001", ok: false},
		{name: "exponent -70 is not enough", value: "1e-70", ok: false},
		{name: "exponent -71 qualifies", value: "1e-71", serial: "10000000000", ok: true},
		{name: "too long", value: "1.23e-80", ok: false},
		{name: "zero", value: "0", ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			serial, ok := DecodeNFTSentinel(decimal.RequireFromString(tc.value))
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.serial, serial)
		})
	}
}

func TestEncodeNFTSentinel(t *testing.T) {
	t.Run("serial 31", func(t *testing.T) {
		encoded, err := EncodeNFTSentinel("31")
		require.NoError(t, err)
		assert.Equal(t, sentinel31, encoded)
		assert.Len(t, encoded, 83)
	})

	t.Run("sign is preserved", func(t *testing.T) {
		encoded, err := EncodeNFTSentinel("-31")
		require.NoError(t, err)
		assert.Equal(t, "-"+sentinel31, encoded)
	})

	t.Run("leading zeros are dropped", func(t *testing.T) {
		encoded, err := EncodeNFTSentinel("0031")
		require.NoError(t, err)
		assert.Equal(t, sentinel31, encoded)
	})

	invalid := []string{"", "-", "1.5", "1e5", "abc", "12 3", "0", "000", "123456789012"}
	for _, serial := range invalid {
		t.Run("invalid "+serial, func(t *testing.T) {
			_, err := EncodeNFTSentinel(serial)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	t.Run("prior balance must be a sentinel", func(t *testing.T) {
		_, err := EncodeNFTSentinel("1", decimal.RequireFromString("10.5"))
		require.ErrorIs(t, err, ErrNotSentinelCompatible)
	})

	t.Run("sentinel prior balance accepted", func(t *testing.T) {
		encoded, err := EncodeNFTSentinel("1", decimal.RequireFromString(sentinel31))
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(encoded, "01"))
	})

	t.Run("zero prior balance is not a sentinel", func(t *testing.T) {
		_, ok := DecodeNFTSentinel(decimal.Zero)
		require.False(t, ok)

		_, err := EncodeNFTSentinel("31", decimal.Zero)
		require.ErrorIs(t, err, ErrNotSentinelCompatible)
	})
}

func TestNFTSentinelRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		digits := 1 + rng.Intn(MaxSentinelSerialDigits)
		var b strings.Builder
		b.WriteByte(byte('1' + rng.Intn(9)))
		for j := 1; j < digits; j++ {
			b.WriteByte(byte('0' + rng.Intn(10)))
		}
		serial := b.String()
		if rng.Intn(4) == 0 {
			serial = "-" + serial
		}

		encoded, err := EncodeNFTSentinel(serial)
		require.NoError(t, err, serial)

		value := decimal.RequireFromString(encoded)
		decoded, ok := DecodeNFTSentinel(value)
		require.True(t, ok, encoded)
		require.Equal(t, serial, decoded)

		reencoded, err := EncodeNFTSentinel(decoded)
		require.NoError(t, err)
		require.Equal(t, SentinelCanonicalForm(value), reencoded)
	}
}

func TestMaxSentinelSerialDigits(t *testing.T) {
	serial := strings.Repeat("9", MaxSentinelSerialDigits)
	encoded, err := EncodeNFTSentinel(serial)
	require.NoError(t, err)

	decoded, ok := DecodeNFTSentinel(decimal.RequireFromString(encoded))
	require.True(t, ok)
	assert.Equal(t, serial, decoded)

	_, err = EncodeNFTSentinel(serial + "9")
	require.ErrorIs(t, err, ErrInvalidInput)
}
