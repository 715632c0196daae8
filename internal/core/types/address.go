package types

import (
	addresscodec "github.com/Peersyst/xrpl-go/address-codec"
)

const (
	accountIDLength      = 20
	accountAddressPrefix = 0x00
)

// IsValidAddress reports whether s is a checksummed classic r-address.
func IsValidAddress(s string) bool {
	if s == "" {
		return false
	}
	payload, err := addresscodec.Base58CheckDecode(s)
	if err != nil {
		return false
	}
	return len(payload) == accountIDLength+1 && payload[0] == accountAddressPrefix
}
