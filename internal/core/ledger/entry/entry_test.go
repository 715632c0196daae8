package entry

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goXRPLwallet/internal/core/types"
)

const (
	lowAccount  = "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"
	highAccount = "rf1BiGeXwwQoi8Z2ueFYTEXSwuJYfV2Jpn"
	outsider    = "ra5nK24KXen9AHvsdFTKHSANinZseWnPcX"
)

const rippleStateJSON = `{
	"LedgerEntryType": "RippleState",
	"Flags": 1114112,
	"Balance": {"currency": "USD", "issuer": "rrrrrrrrrrrrrrrrrrrrBZbvji", "value": "-12.5"},
	"LowLimit": {"currency": "USD", "issuer": "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", "value": "0"},
	"HighLimit": {"currency": "USD", "issuer": "rf1BiGeXwwQoi8Z2ueFYTEXSwuJYfV2Jpn", "value": "100"},
	"LowNode": "0",
	"HighNode": "0",
	"PreviousTxnID": "E3FE6EA3D48F0C2B639448020EA4F03D4F4F8FFDB243A852A0F59177921B4879",
	"PreviousTxnLgrSeq": 14090896,
	"index": "9CA88CDEDFF9252B3DE183CE35B038F57282BC9503CDFA1923EF9A95DF0D6F7B"
}`

func TestFromJSONDispatch(t *testing.T) {
	e, err := FromJSON([]byte(rippleStateJSON), "")
	require.NoError(t, err)

	rs, ok := e.(*RippleState)
	require.True(t, ok)
	assert.Equal(t, TypeRippleState, rs.EntryType())
	assert.Equal(t, "RippleState", rs.TypeName())
	assert.Equal(t, lowAccount, rs.LowAccount())
	assert.Equal(t, highAccount, rs.HighAccount())
	require.NotNil(t, rs.PreviousTxnLgrSeq)
	assert.Equal(t, uint32(14090896), *rs.PreviousTxnLgrSeq)
	assert.True(t, rs.NoRipple(lowAccount))
	assert.False(t, rs.NoRipple(highAccount))
}

func TestRoundTripIsIdentity(t *testing.T) {
	e, err := FromJSON([]byte(rippleStateJSON), "")
	require.NoError(t, err)

	out, err := ToJSON(e)
	require.NoError(t, err)
	assert.JSONEq(t, rippleStateJSON, string(out))
}

func TestRippleStatePerspective(t *testing.T) {
	e, err := FromJSON([]byte(rippleStateJSON), "")
	require.NoError(t, err)
	rs := e.(*RippleState)

	low, ok := rs.BalanceFor(lowAccount)
	require.True(t, ok)
	assert.True(t, low.Value().Equal(decimal.RequireFromString("-12.5")))
	assert.Equal(t, highAccount, low.Issuer())

	high, ok := rs.BalanceFor(highAccount)
	require.True(t, ok)
	assert.True(t, high.Value().Equal(decimal.RequireFromString("12.5")))
	assert.Equal(t, lowAccount, high.Issuer())
	assert.Equal(t, "USD", high.Currency())

	_, ok = rs.BalanceFor(outsider)
	assert.False(t, ok)

	cp, ok := rs.Counterparty(highAccount)
	require.True(t, ok)
	assert.Equal(t, lowAccount, cp)
	_, ok = rs.Counterparty(outsider)
	assert.False(t, ok)

	limit, ok := rs.LimitFor(highAccount)
	require.True(t, ok)
	assert.Equal(t, "100", limit.Raw())
}

func TestTypeHint(t *testing.T) {
	raw := map[string]any{
		"Account":    lowAccount,
		"Balance":    "25000000",
		"Sequence":   float64(7),
		"OwnerCount": float64(1),
		"Domain":     "6578616D706C652E636F6D",
	}

	_, err := FromMap(raw, "")
	require.ErrorIs(t, err, ErrMissingEntryType)

	e, err := FromMap(raw, "AccountRoot")
	require.NoError(t, err)
	ar, ok := e.(*AccountRoot)
	require.True(t, ok)
	assert.Equal(t, "25", ar.Balance.Normalized())
	assert.Equal(t, uint32(7), ar.Sequence)
	assert.Equal(t, "example.com", ar.DisplayDomain())
}

func TestUnknownEntryType(t *testing.T) {
	e, err := FromJSON([]byte(`{"LedgerEntryType":"Vault","Owner":"x","Flags":0}`), "")
	require.NoError(t, err)

	_, ok := e.(*Unknown)
	require.True(t, ok)
	assert.Equal(t, TypeUnknown, e.EntryType())
	assert.Equal(t, "Vault", e.TypeName())
	assert.Equal(t, "x", Flatten(e)["Owner"])
}

func TestFromJSONErrors(t *testing.T) {
	_, err := FromJSON([]byte(`[1,2]`), "")
	require.ErrorIs(t, err, ErrNotAnObject)

	_, err = FromJSON([]byte(`{"LedgerEntryType":"Offer","Sequence":"abc"}`), "")
	require.Error(t, err)
}

func TestFieldAccess(t *testing.T) {
	e, err := FromJSON([]byte(`{"LedgerEntryType":"Check","Account":"`+lowAccount+`","Destination":"`+highAccount+`","SendMax":"1000000","Sequence":3}`), "")
	require.NoError(t, err)

	v, err := Field(e, "SendMax")
	require.NoError(t, err)
	assert.Equal(t, "1", v.(types.Amount).Normalized())

	_, err = Field(e, "TakerPays")
	require.ErrorIs(t, err, ErrUndeclaredField)

	require.NoError(t, SetField(e, "SendMax", "2.5"))
	assert.Equal(t, "2500000", Flatten(e)["SendMax"])

	require.NoError(t, SetField(e, "Expiration", 800000000))
	require.NotNil(t, e.(*Check).Expiration)

	require.NoError(t, SetField(e, "Expiration", nil))
	_, present := Flatten(e)["Expiration"]
	assert.False(t, present)

	require.ErrorIs(t, SetField(e, "Nope", 1), ErrUndeclaredField)
}

func TestEscrowEffectiveAmount(t *testing.T) {
	tests := []struct {
		name     string
		json     string
		expected string
	}{
		{
			name:     "native",
			json:     `{"LedgerEntryType":"Escrow","Account":"` + lowAccount + `","Destination":"` + highAccount + `","Amount":"10000000"}`,
			expected: "10",
		},
		{
			name:     "token without transfer rate",
			json:     `{"LedgerEntryType":"Escrow","Account":"` + lowAccount + `","Destination":"` + highAccount + `","Amount":{"currency":"USD","issuer":"` + outsider + `","value":"101"}}`,
			expected: "101",
		},
		{
			name:     "token with locked transfer rate",
			json:     `{"LedgerEntryType":"Escrow","Account":"` + lowAccount + `","Destination":"` + highAccount + `","TransferRate":1010000000,"Amount":{"currency":"USD","issuer":"` + outsider + `","value":"101"}}`,
			expected: "100",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e, err := FromJSON([]byte(tc.json), "")
			require.NoError(t, err)
			amount, ok := e.(*Escrow).EffectiveAmount()
			require.True(t, ok)
			assert.True(t, amount.Value().Equal(decimal.RequireFromString(tc.expected)), amount.Value().String())
		})
	}

	var empty Escrow
	_, ok := empty.EffectiveAmount()
	assert.False(t, ok)
}

func TestOfferQuality(t *testing.T) {
	e, err := FromJSON([]byte(`{
		"LedgerEntryType": "Offer",
		"Flags": 131072,
		"Account": "`+lowAccount+`",
		"Sequence": 12,
		"TakerPays": {"currency": "USD", "issuer": "`+outsider+`", "value": "10"},
		"TakerGets": "20000000"
	}`), "")
	require.NoError(t, err)
	o := e.(*Offer)

	q, ok := o.Quality()
	require.True(t, ok)
	assert.True(t, q.Equal(decimal.RequireFromString("0.5")))
	assert.True(t, o.IsSell())

	o.TakerGets = types.MustNative("0")
	_, ok = o.Quality()
	assert.False(t, ok)
}

func TestPayChannelRemaining(t *testing.T) {
	e, err := FromJSON([]byte(`{
		"LedgerEntryType": "PayChannel",
		"Account": "`+lowAccount+`",
		"Destination": "`+highAccount+`",
		"Amount": "10000000",
		"Balance": "2500000",
		"PublicKey": "aB44YfzW24VDEJQ2UuLPV2PvqcPCSoLnL7y5M1EzhdW4LnK5xMS3",
		"SettleDelay": 86400
	}`), "")
	require.NoError(t, err)

	remaining, err := e.(*PayChannel).Remaining()
	require.NoError(t, err)
	assert.True(t, remaining.IsNative())
	assert.Equal(t, "7500000", remaining.Raw())
}

func TestOracleSeries(t *testing.T) {
	e, err := FromJSON([]byte(`{
		"LedgerEntryType": "Oracle",
		"Owner": "`+lowAccount+`",
		"Provider": "70726F7669646572",
		"AssetClass": "63757272656E6379",
		"LastUpdateTime": 1724871860,
		"PriceDataSeries": [
			{"PriceData": {"BaseAsset": "XRP", "QuoteAsset": "USD", "AssetPrice": "2E44", "Scale": 3}}
		]
	}`), "")
	require.NoError(t, err)

	series := e.(*Oracle).Series()
	require.Len(t, series, 1)
	price, ok := series[0].Price()
	require.True(t, ok)
	assert.Equal(t, "11.844", price)
}

func TestNFTokenPageTokenIDs(t *testing.T) {
	e, err := FromJSON([]byte(`{
		"LedgerEntryType": "NFTokenPage",
		"NFTokens": [
			{"NFToken": {"NFTokenID": "000800006203F49C21D5D6E022CB16DE3538F248662FC73C00000001", "URI": "00"}},
			{"NFToken": {"NFTokenID": "000800006203F49C21D5D6E022CB16DE3538F248662FC73C00000002"}}
		]
	}`), "")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"000800006203F49C21D5D6E022CB16DE3538F248662FC73C00000001",
		"000800006203F49C21D5D6E022CB16DE3538F248662FC73C00000002",
	}, e.(*NFTokenPage).TokenIDs())
}

func TestSignerListTotalWeight(t *testing.T) {
	e, err := FromJSON([]byte(`{
		"LedgerEntryType": "SignerList",
		"SignerQuorum": 3,
		"SignerListID": 0,
		"SignerEntries": [
			{"SignerEntry": {"Account": "`+lowAccount+`", "SignerWeight": 2}},
			{"SignerEntry": {"Account": "`+highAccount+`", "SignerWeight": 1}}
		]
	}`), "")
	require.NoError(t, err)
	assert.Equal(t, uint32(3), e.(*SignerList).TotalWeight())
}

func TestEveryTypeHasAVariant(t *testing.T) {
	for _, typ := range AllTypes() {
		t.Run(typ.String(), func(t *testing.T) {
			e, err := FromMap(map[string]any{"LedgerEntryType": typ.String()}, "")
			require.NoError(t, err)
			assert.Equal(t, typ, e.EntryType())
			_, unknown := e.(*Unknown)
			assert.False(t, unknown)

			back, ok := TypeFromName(typ.String())
			require.True(t, ok)
			assert.Equal(t, typ, back)
		})
	}
	assert.Len(t, AllTypes(), 19)
}
