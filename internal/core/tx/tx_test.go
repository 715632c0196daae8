package tx_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goXRPLwallet/internal/core/tx"
	_ "github.com/LeJamon/goXRPLwallet/internal/core/tx/all"
	"github.com/LeJamon/goXRPLwallet/internal/core/tx/payment"
	"github.com/LeJamon/goXRPLwallet/internal/core/tx/pseudo"
	"github.com/LeJamon/goXRPLwallet/internal/core/types"
)

const (
	alice = "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"
	bob   = "rf1BiGeXwwQoi8Z2ueFYTEXSwuJYfV2Jpn"

	// master key of alice
	alicePubKey = "0330E7FC9D56BB25D6893BA3F317AE5BCF33B3291BD63DB32654A313222F7FD020"
)

const paymentJSON = `{
	"TransactionType": "Payment",
	"Account": "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh",
	"Destination": "rf1BiGeXwwQoi8Z2ueFYTEXSwuJYfV2Jpn",
	"Amount": "85532100",
	"Fee": "10",
	"Sequence": 5,
	"Flags": 0,
	"SigningPubKey": "0330E7FC9D56BB25D6893BA3F317AE5BCF33B3291BD63DB32654A313222F7FD020",
	"Memos": [{"Memo": {"MemoType": "74657374", "MemoData": "68656C6C6F"}}],
	"hash": "0F3A7E0B79C09F1A4C4EE8B5FC5B08DD18ABAC3B6E9A8D6B69F6F4C95E4A3D21",
	"ledger_index": 88000000,
	"FutureField": {"nested": [1, 2.50, "x"]}
}`

func parsePayment(t *testing.T) *payment.Payment {
	t.Helper()
	parsed, err := tx.FromJSON([]byte(paymentJSON))
	require.NoError(t, err)
	p, ok := parsed.(*payment.Payment)
	require.True(t, ok, "got %T", parsed)
	return p
}

func TestEveryTypeIsRegistered(t *testing.T) {
	assert.Equal(t, tx.AllTypes(), tx.RegisteredTypes())

	for _, typ := range tx.AllTypes() {
		t.Run(typ.String(), func(t *testing.T) {
			back, ok := tx.TypeFromName(typ.String())
			require.True(t, ok)
			assert.Equal(t, typ, back)

			created, err := tx.NewFromType(typ)
			require.NoError(t, err)
			assert.Equal(t, typ, created.TxType())
		})
	}
}

func TestRoundTripIsIdentity(t *testing.T) {
	p := parsePayment(t)

	out, err := tx.ToJSON(p)
	require.NoError(t, err)
	assert.JSONEq(t, paymentJSON, string(out))
}

func TestTypedFields(t *testing.T) {
	p := parsePayment(t)

	assert.Equal(t, tx.TypePayment, p.TxType())
	assert.Equal(t, alice, p.Account)
	assert.Equal(t, bob, p.Destination)
	assert.Equal(t, "85.5321", p.Amount.Normalized())
	require.NotNil(t, p.Sequence)
	assert.Equal(t, uint32(5), *p.Sequence)
	require.Len(t, p.Memos, 1)
	assert.Equal(t, "test", p.Memos[0].DisplayType())

	fee, ok := p.FeeAmount()
	require.True(t, ok)
	assert.Equal(t, "0.00001", fee.Normalized())
}

func TestDetectType(t *testing.T) {
	tests := []struct {
		name     string
		json     string
		expected tx.Type
		typeName string
	}{
		{name: "genuine", json: `{"TransactionType":"TrustSet"}`, expected: tx.TypeTrustSet, typeName: "TrustSet"},
		{name: "no type is sign-in", json: `{}`, expected: tx.TypeSignIn, typeName: "SignIn"},
		{name: "channel claim", json: `{"Channel":"AB","Amount":"1000"}`, expected: tx.TypePaymentChannelAuthorize, typeName: "PaymentChannelAuthorize"},
		{name: "channel without amount is sign-in", json: `{"Channel":"AB"}`, expected: tx.TypeSignIn, typeName: "SignIn"},
		{name: "unrecognized name", json: `{"TransactionType":"Teleport"}`, expected: tx.TypeUnknown, typeName: "Teleport"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			raw, err := tx.DecodeObject([]byte(tc.json))
			require.NoError(t, err)
			typ, name, err := tx.DetectType(raw)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, typ)
			assert.Equal(t, tc.typeName, name)
		})
	}
}

func TestFromJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
		err  error
	}{
		{name: "array", json: `[1]`, err: tx.ErrNotAnObject},
		{name: "not json", json: `{"a":`, err: tx.ErrNotAnObject},
		{name: "numeric type", json: `{"TransactionType":3}`, err: tx.ErrInvalidTransactionType},
		{name: "empty type", json: `{"TransactionType":""}`, err: tx.ErrInvalidTransactionType},
		{name: "bad sequence", json: `{"TransactionType":"Payment","Sequence":"five"}`, err: tx.ErrMalformedField},
		{name: "bad amount", json: `{"TransactionType":"Payment","Amount":{"currency":"USD","value":"1"}}`, err: tx.ErrMalformedField},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := tx.FromJSON([]byte(tc.json))
			require.ErrorIs(t, err, tc.err)
			assert.Nil(t, parsed)
		})
	}
}

func TestUnknownTransactionKeepsFields(t *testing.T) {
	const in = `{"TransactionType":"Teleport","Account":"rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh","Fee":"12","Where":"moon"}`
	parsed, err := tx.FromJSON([]byte(in))
	require.NoError(t, err)

	_, ok := parsed.(*tx.Unknown)
	require.True(t, ok)
	assert.Equal(t, "Teleport", parsed.TypeName())
	assert.Equal(t, alice, parsed.GetCommon().Account)

	out, err := tx.ToJSON(parsed)
	require.NoError(t, err)
	assert.JSONEq(t, in, string(out))

	_, err = tx.Field(parsed, "Where")
	require.ErrorIs(t, err, tx.ErrUndeclaredField)

	_, err = tx.SigningPayload(parsed)
	require.ErrorIs(t, err, tx.ErrUnsupportedOperation)
}

func TestPseudoTransactions(t *testing.T) {
	t.Run("sign-in", func(t *testing.T) {
		parsed, err := tx.FromJSON([]byte(`{"Account":"rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"}`))
		require.NoError(t, err)
		_, ok := parsed.(*pseudo.SignIn)
		require.True(t, ok)
		assert.True(t, parsed.TxType().IsPseudo())
		assert.NotContains(t, tx.Flatten(parsed), "TransactionType")

		_, err = tx.SigningPayload(parsed)
		require.ErrorIs(t, err, tx.ErrUnsupportedOperation)
	})

	t.Run("new sign-in has no transaction type", func(t *testing.T) {
		assert.NotContains(t, tx.Flatten(pseudo.NewSignIn()), "TransactionType")
	})

	t.Run("channel claim", func(t *testing.T) {
		parsed, err := tx.FromJSON([]byte(`{
			"Channel": "43904CBFCDCEC530B4037871F86EE90BF799DF8D2E0EA564BC8A3F332E4F5FB1",
			"Amount": "1000"
		}`))
		require.NoError(t, err)
		claim, ok := parsed.(*pseudo.PaymentChannelAuthorize)
		require.True(t, ok)
		assert.Equal(t, "1000", claim.Amount.Raw())

		payload, err := tx.SigningPayload(parsed)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(strings.ToUpper(payload), "434C4D00"), payload)
	})
}

func TestFieldAccess(t *testing.T) {
	p := parsePayment(t)

	v, err := tx.Field(p, "Amount")
	require.NoError(t, err)
	assert.Equal(t, "85532100", v.(types.Amount).Raw())

	v, err = tx.Field(p, "DestinationTag")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = tx.Field(p, "Sequence")
	require.NoError(t, err)
	assert.Equal(t, uint32(5), v)

	_, err = tx.Field(p, "TakerGets")
	require.ErrorIs(t, err, tx.ErrUndeclaredField)

	assert.Panics(t, func() { tx.MustField(p, "TakerGets") })
	assert.Contains(t, tx.Fields(p), "Destination")
	assert.Contains(t, tx.Fields(p), "Account")
}

func TestSetField(t *testing.T) {
	p := parsePayment(t)

	require.NoError(t, tx.SetField(p, "Amount", "1.5"))
	assert.Equal(t, "1500000", p.Amount.Raw())
	assert.Equal(t, "1500000", tx.Flatten(p)["Amount"])

	require.NoError(t, tx.SetField(p, "Amount", map[string]any{"currency": "USD", "issuer": bob, "value": "12.25"}))
	assert.Equal(t, "USD", p.Amount.Currency())
	assert.Equal(t, map[string]any{"currency": "USD", "issuer": bob, "value": "12.25"}, tx.Flatten(p)["Amount"])

	err := tx.SetField(p, "Amount", map[string]any{"currency": "USD", "issuer": "nope", "value": "1"})
	require.ErrorIs(t, err, types.ErrInvalidAmount)

	err = tx.SetField(p, "Amount", map[string]any{"currency": "USD", "value": "1"})
	require.ErrorIs(t, err, types.ErrMissingAmountField)

	require.NoError(t, tx.SetField(p, "DestinationTag", 42))
	require.NotNil(t, p.DestinationTag)
	assert.Equal(t, uint32(42), *p.DestinationTag)

	require.NoError(t, tx.SetField(p, "DestinationTag", nil))
	assert.Nil(t, p.DestinationTag)
	assert.NotContains(t, tx.Flatten(p), "DestinationTag")

	require.ErrorIs(t, tx.SetField(p, "Bogus", 1), tx.ErrUndeclaredField)
}

func TestValidate(t *testing.T) {
	require.NoError(t, tx.Validate(parsePayment(t)))

	incomplete := payment.NewPayment(alice, "", types.MustNative("1"))
	err := tx.Validate(incomplete)
	require.ErrorIs(t, err, tx.ErrMissingRequiredField)
	assert.Contains(t, err.Error(), "Destination")

	noAccount := payment.NewPayment("", bob, types.MustNative("1"))
	require.ErrorIs(t, tx.Validate(noAccount), tx.ErrMissingRequiredField)

	require.NoError(t, tx.Validate(pseudo.NewSignIn()))
}

func TestSignerAccount(t *testing.T) {
	p := parsePayment(t)

	signer, ok := p.SignerAccount()
	require.True(t, ok)
	assert.Equal(t, alice, signer)
	assert.False(t, p.IsRegularKeySigned())

	p.Account = bob
	assert.True(t, p.IsRegularKeySigned())

	p.SigningPubKey = ""
	_, ok = p.SignerAccount()
	assert.False(t, ok)
}

func TestSigningPayload(t *testing.T) {
	p := parsePayment(t)
	delete(p.Raw(), "FutureField")

	payload, err := tx.SigningPayload(p)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.ToUpper(payload), "53545800"), payload)

	_, err = tx.MultisigningPayload(p, "")
	require.ErrorIs(t, err, tx.ErrMissingRequiredField)

	multi, err := tx.MultisigningPayload(p, bob)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.ToUpper(multi), "534D5400"), multi)
}
