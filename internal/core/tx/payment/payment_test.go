package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goXRPLwallet/internal/core/meta"
	"github.com/LeJamon/goXRPLwallet/internal/core/tx"
	"github.com/LeJamon/goXRPLwallet/internal/core/types"
)

const (
	alice = "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"
	bob   = "rf1BiGeXwwQoi8Z2ueFYTEXSwuJYfV2Jpn"
	gw    = "ra5nK24KXen9AHvsdFTKHSANinZseWnPcX"
)

func mustMeta(t *testing.T, data string) *meta.Metadata {
	t.Helper()
	m, err := meta.FromJSON([]byte(data))
	require.NoError(t, err)
	return m
}

func TestDeliveredAmount(t *testing.T) {
	usd := types.MustIssued("100", "USD", gw)

	tests := []struct {
		name     string
		partial  bool
		meta     string
		expected string
		ok       bool
	}{
		{name: "no metadata", expected: "100 USD", ok: true},
		{name: "no metadata partial", partial: true, ok: false},
		{
			name:     "metadata delivered amount wins",
			partial:  true,
			meta:     `{"AffectedNodes":[],"TransactionResult":"tesSUCCESS","delivered_amount":{"currency":"USD","issuer":"` + gw + `","value":"40"}}`,
			expected: "40 USD",
			ok:       true,
		},
		{
			name:     "unavailable falls back to amount",
			meta:     `{"AffectedNodes":[],"TransactionResult":"tesSUCCESS","delivered_amount":"unavailable"}`,
			expected: "100 USD",
			ok:       true,
		},
		{
			name: "failed payment delivers nothing",
			meta: `{"AffectedNodes":[],"TransactionResult":"tecPATH_DRY"}`,
			ok:   false,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPayment(alice, bob, usd)
			if tc.partial {
				require.NoError(t, tx.SetField(p, "Flags", PaymentFlagPartialPayment))
			}
			var m *meta.Metadata
			if tc.meta != "" {
				m = mustMeta(t, tc.meta)
			}
			got, ok := p.DeliveredAmount(m)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.expected, got.String())
			}
		})
	}
}

func TestDeliverMax(t *testing.T) {
	parsed, err := tx.FromJSON([]byte(`{
		"TransactionType": "Payment",
		"Account": "` + alice + `",
		"Destination": "` + bob + `",
		"DeliverMax": "2000000"
	}`))
	require.NoError(t, err)
	p := parsed.(*Payment)

	assert.False(t, p.Amount.IsSet())
	assert.Equal(t, "2 XRP", p.SendAmount().String())
	assert.NotContains(t, tx.Flatten(p), "Amount")
}

func TestCrossCurrency(t *testing.T) {
	p := NewPayment(alice, bob, types.MustIssued("10", "USD", gw))
	assert.False(t, p.IsCrossCurrency())

	sendMax := types.MustNative("25")
	p.SendMax = &sendMax
	assert.True(t, p.IsCrossCurrency())
}
