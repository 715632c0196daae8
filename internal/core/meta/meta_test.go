package meta

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const paymentMeta = `{
	"AffectedNodes": [
		{"ModifiedNode": {
			"LedgerEntryType": "AccountRoot",
			"LedgerIndex": "13F1A95D7AAB7108D5CE7EEAF504B2894B8C674E6D68499076441C4837282BF8",
			"FinalFields": {"Account": "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", "Balance": "914467890", "Sequence": 6},
			"PreviousFields": {"Balance": "1000010000", "Sequence": 5},
			"PreviousTxnID": "1E8AF4EBF1C9A0E0E4CFA6E7F5C5D2C0B0E5F9C7C9A3D3D6D1C2C8C1E0F6A5B4",
			"PreviousTxnLgrSeq": 87999990
		}},
		{"CreatedNode": {
			"LedgerEntryType": "AccountRoot",
			"LedgerIndex": "4E2E3A0E3B4F1D1B2A6E7F0D3C2B1A09F8E7D6C5B4A39281706F5E4D3C2B1A09",
			"NewFields": {"Account": "rf1BiGeXwwQoi8Z2ueFYTEXSwuJYfV2Jpn", "Balance": "85532100", "Sequence": 88000000}
		}}
	],
	"TransactionIndex": 3,
	"TransactionResult": "tesSUCCESS",
	"delivered_amount": "85532100"
}`

func TestFromJSON(t *testing.T) {
	m, err := FromJSON([]byte(paymentMeta))
	require.NoError(t, err)

	assert.Equal(t, uint32(3), m.TransactionIndex)
	assert.True(t, m.Succeeded())
	assert.False(t, m.Claimed())
	assert.True(t, m.FeeClaimed())

	nodes := m.Nodes()
	require.Len(t, nodes, 2)
	assert.Equal(t, Modified, nodes[0].State)
	assert.Equal(t, "AccountRoot", nodes[0].LedgerEntryType)
	require.NotNil(t, nodes[0].PreviousTxnLgrSeq)
	assert.Equal(t, uint32(87999990), *nodes[0].PreviousTxnLgrSeq)
	assert.Equal(t, "914467890", nodes[0].Current()["Balance"])

	assert.Equal(t, Created, nodes[1].State)
	assert.Equal(t, "85532100", nodes[1].Current()["Balance"])

	delivered, ok := m.Delivered()
	require.True(t, ok)
	assert.Equal(t, "85.5321", delivered.Normalized())
}

func TestMarshalRewrapsNodes(t *testing.T) {
	m, err := FromJSON([]byte(paymentMeta))
	require.NoError(t, err)

	out, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, paymentMeta, string(out))
}

func TestFromJSONErrors(t *testing.T) {
	_, err := FromJSON([]byte(`{"AffectedNodes": []}`))
	require.ErrorIs(t, err, ErrMalformedMetadata)

	_, err = FromJSON([]byte(`[]`))
	require.ErrorIs(t, err, ErrMalformedMetadata)

	_, err = FromMap(map[string]any{"TransactionResult": "tesSUCCESS", "TransactionIndex": "x"})
	require.ErrorIs(t, err, ErrMalformedMetadata)
}

func TestDeliveredUnavailable(t *testing.T) {
	m, err := FromJSON([]byte(`{"AffectedNodes": [], "TransactionResult": "tesSUCCESS", "delivered_amount": "unavailable"}`))
	require.NoError(t, err)
	_, ok := m.Delivered()
	assert.False(t, ok)

	m, err = FromJSON([]byte(`{"AffectedNodes": [], "TransactionResult": "tesSUCCESS",
		"DeliveredAmount": {"currency": "USD", "issuer": "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", "value": "3"}}`))
	require.NoError(t, err)
	a, ok := m.Delivered()
	require.True(t, ok)
	assert.Equal(t, "3 USD", a.String())
}

func TestResultClass(t *testing.T) {
	tests := []struct {
		code    string
		class   string
		claimed bool
		fee     bool
	}{
		{code: "tesSUCCESS", class: "tes", fee: true},
		{code: "tecUNFUNDED_PAYMENT", class: "tec", claimed: true, fee: true},
		{code: "tefPAST_SEQ", class: "tef"},
		{code: "x", class: ""},
	}
	for _, tc := range tests {
		t.Run(tc.code, func(t *testing.T) {
			m := &Metadata{TransactionResult: tc.code}
			assert.Equal(t, tc.class, m.ResultClass())
			assert.Equal(t, tc.claimed, m.Claimed())
			assert.Equal(t, tc.fee, m.FeeClaimed())
		})
	}
}
