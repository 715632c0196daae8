package codec

import (
	"encoding/hex"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// HexToBytes decodes a hex string of either case.
func HexToBytes(h string) ([]byte, error) {
	b, err := hex.DecodeString(h)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailure, err)
	}
	return b, nil
}

// BytesToHex encodes b as upper-case hex, the XRPL convention.
func BytesToHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

// HexToText decodes hex into UTF-8 text.
func HexToText(h string) (string, error) {
	b, err := HexToBytes(h)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: not valid UTF-8", ErrDecodeFailure)
	}
	return string(b), nil
}

// TextToHex encodes text as upper-case hex.
func TextToHex(text string) string {
	return BytesToHex([]byte(text))
}

// ToDisplayableText returns the text encoded by h when it round-trips
// exactly through UTF-8 and is printable. Otherwise h is returned
// unchanged so garbage is never shown as text.
func ToDisplayableText(h string) string {
	text, err := HexToText(h)
	if err != nil || text == "" {
		return h
	}
	if !strings.EqualFold(TextToHex(text), h) {
		return h
	}
	for _, r := range text {
		if r == '\n' || r == '\r' || r == '\t' {
			continue
		}
		if !unicode.IsPrint(r) {
			return h
		}
	}
	return text
}
