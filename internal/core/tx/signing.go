package tx

import (
	"encoding/json"
	"fmt"
	"strconv"

	addresscodec "github.com/Peersyst/xrpl-go/address-codec"
	binarycodec "github.com/Peersyst/xrpl-go/binary-codec"
)

// apiOnlyFields are added by servers to transactions they return and are
// not part of the signed object.
var apiOnlyFields = []string{
	"hash", "meta", "metaData", "date", "ledger_index", "ledger_hash",
	"inLedger", "validated", "ctid", "DeliverMax", "close_time_iso",
}

// SigningPayload returns the hex-encoded bytes a signer signs for t.
// Channel authorizations encode as a claim; sign-in requests have no
// payload.
func SigningPayload(t Transaction) (string, error) {
	return signingPayload(t, "")
}

// MultisigningPayload returns the bytes signer signs to add its signature
// to a multi-signed t.
func MultisigningPayload(t Transaction, signer string) (string, error) {
	if signer == "" {
		return "", fmt.Errorf("%w: multisigning requires a signer account", ErrMissingRequiredField)
	}
	return signingPayload(t, signer)
}

func signingPayload(t Transaction, multisignAs string) (string, error) {
	switch t.TxType() {
	case TypeSignIn, TypeUnknown:
		return "", fmt.Errorf("%w: %s has no signing payload", ErrUnsupportedOperation, t.TypeName())
	}

	obj, err := codecObject(t)
	if err != nil {
		return "", err
	}

	switch {
	case t.TxType() == TypePaymentChannelAuthorize:
		return binarycodec.EncodeForSigningClaim(map[string]any{
			"Channel": obj["Channel"],
			"Amount":  obj["Amount"],
		})
	case multisignAs != "":
		return binarycodec.EncodeForMultisigning(obj, multisignAs)
	default:
		return binarycodec.EncodeForSigning(obj)
	}
}

// Encode returns the hex-encoded binary form of t, including signatures.
func Encode(t Transaction) (string, error) {
	if t.TxType().IsPseudo() || t.TxType() == TypeUnknown {
		return "", fmt.Errorf("%w: %s cannot be binary encoded", ErrUnsupportedOperation, t.TypeName())
	}
	obj, err := codecObject(t)
	if err != nil {
		return "", err
	}
	return binarycodec.Encode(obj)
}

// codecObject prepares the flattened map for the binary codec. Declared
// fields already carry their Go integer types; numbers kept verbatim from
// the input are converted to int.
func codecObject(t Transaction) (map[string]any, error) {
	flat := Flatten(t)
	for _, k := range apiOnlyFields {
		delete(flat, k)
	}
	out, err := codecValue(flat)
	if err != nil {
		return nil, err
	}
	return out.(map[string]any), nil
}

func codecValue(v any) (any, error) {
	switch val := v.(type) {
	case json.Number:
		n, err := strconv.ParseInt(val.String(), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: non-integer number %s", ErrMalformedField, val)
		}
		return int(n), nil
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			converted, err := codecValue(item)
			if err != nil {
				return nil, err
			}
			out[k] = converted
		}
		return out, nil
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			converted, err := codecValue(item)
			if err != nil {
				return nil, err
			}
			out[i] = converted
		}
		return out, nil
	default:
		return v, nil
	}
}

func accountFromPublicKey(pubKeyHex string) (string, error) {
	return addresscodec.EncodeClassicAddressFromPublicKeyHex(pubKeyHex)
}
