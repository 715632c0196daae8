package types

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	alice  = "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"
	issuer = "rf1BiGeXwwQoi8Z2ueFYTEXSwuJYfV2Jpn"
)

func TestAmountFromWire(t *testing.T) {
	t.Run("native drops", func(t *testing.T) {
		a, err := AmountFromWire("85532100")
		require.NoError(t, err)
		assert.True(t, a.IsNative())
		assert.Equal(t, "85.5321", a.Value().String())
		assert.Equal(t, "85532100", a.Raw())
		assert.Equal(t, "85.5321 XRP", a.String())
	})

	t.Run("issued", func(t *testing.T) {
		a, err := AmountFromWire(map[string]any{"currency": "USD", "issuer": issuer, "value": "1.5e2"})
		require.NoError(t, err)
		assert.False(t, a.IsNative())
		assert.Equal(t, "150", a.Value().String())
		assert.Equal(t, "1.5e2", a.Raw(), "wire value is stored verbatim")
		assert.Equal(t, "USD", a.DisplayCurrency())
	})

	t.Run("hex currency decodes for display", func(t *testing.T) {
		a, err := AmountFromWire(map[string]any{
			"currency": "4D79417765736F6D6543757272656E6379000000", "issuer": issuer, "value": "1",
		})
		require.NoError(t, err)
		assert.Equal(t, "MyAwesomeCurrency", a.DisplayCurrency())
	})

	t.Run("fractional drops rejected", func(t *testing.T) {
		_, err := AmountFromWire("1.5")
		require.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("array rejected", func(t *testing.T) {
		_, err := AmountFromWire([]any{"1"})
		require.ErrorIs(t, err, ErrInvalidAmount)
	})
}

func TestParseAmount(t *testing.T) {
	t.Run("plain value is native units", func(t *testing.T) {
		a, err := ParseAmount("10")
		require.NoError(t, err)
		assert.True(t, a.IsNative())
		assert.Equal(t, "10000000", a.Wire())
	})

	t.Run("number is native units", func(t *testing.T) {
		a, err := ParseAmount(json.Number("0.5"))
		require.NoError(t, err)
		assert.Equal(t, "500000", a.Raw())
	})

	t.Run("issued object", func(t *testing.T) {
		a, err := ParseAmount(map[string]any{"currency": "EUR", "issuer": issuer, "value": "3"})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"currency": "EUR", "issuer": issuer, "value": "3"}, a.Wire())
	})

	t.Run("missing issuer", func(t *testing.T) {
		_, err := ParseAmount(map[string]any{"currency": "EUR", "value": "3"})
		require.ErrorIs(t, err, ErrMissingAmountField)
	})

	t.Run("bad issuer", func(t *testing.T) {
		_, err := ParseAmount(map[string]any{"currency": "EUR", "issuer": "rNotAnAddress", "value": "3"})
		require.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("too many native decimals", func(t *testing.T) {
		_, err := ParseAmount("0.0000001")
		require.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseAmount("ten")
		require.ErrorIs(t, err, ErrInvalidAmount)
	})
}

func TestAmountJSON(t *testing.T) {
	var a Amount
	require.NoError(t, json.Unmarshal([]byte(`{"currency":"USD","issuer":"`+issuer+`","value":"12.30"}`), &a))
	out, err := json.Marshal(a)
	require.NoError(t, err)
	assert.JSONEq(t, `{"currency":"USD","issuer":"`+issuer+`","value":"12.30"}`, string(out))
}

func TestAmountWithValue(t *testing.T) {
	a := MustNative("1")
	b, err := a.WithValue(decimal.RequireFromString("2.5"))
	require.NoError(t, err)
	assert.Equal(t, "2500000", b.Raw())

	u := MustIssued("1", "USD", issuer)
	v, err := u.WithValue(decimal.RequireFromString("7"))
	require.NoError(t, err)
	assert.Equal(t, issuer, v.Issuer())
	assert.True(t, v.Equal(MustIssued("7", "USD", issuer)))
}

func TestMPTAmount(t *testing.T) {
	id := "00000001A407AF5856CCF3C42619DAA925813FC955C72983"
	a, err := AmountFromWire(map[string]any{"mpt_issuance_id": id, "value": "100"})
	require.NoError(t, err)
	assert.True(t, a.IsMPT())
	assert.Equal(t, "MPT", a.DisplayCurrency())

	_, err = NewMPTAmount("1.5", id)
	require.ErrorIs(t, err, ErrInvalidAmount)
}

func TestIsValidAddress(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    bool
	}{
		{"valid", alice, true},
		{"account zero", "rrrrrrrrrrrrrrrrrrrrrhoLvTp", true},
		{"empty", "", false},
		{"checksum x", "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTx", false},
		{"checksum i", "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTi", false},
		{"not base58", "rHb9CJAWyB4rj91VRWn96DkukG4bwdty0l", false},
		{"truncated", "rHb9CJAWyB4rj91VRWn96Dkuk", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidAddress(tt.address))
		})
	}
}

func TestIssuedAmountRejectsCorruptIssuer(t *testing.T) {
	_, err := NewIssuedAmount("1", "USD", "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTx")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}
