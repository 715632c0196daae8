// Package amendment names the protocol amendments a ledger can enable, so
// amendment transactions can show a name instead of a hash.
package amendment

import (
	"crypto/sha512"
	"encoding/hex"
	"strings"
)

// Status is where an amendment stands in its lifecycle.
type Status int

const (
	// StatusActive amendments are voted on or enabled.
	StatusActive Status = iota
	// StatusObsolete amendments are no longer voted on.
	StatusObsolete
	// StatusRetired amendments have been enabled for at least two years.
	StatusRetired
)

func (s Status) String() string {
	switch s {
	case StatusObsolete:
		return "obsolete"
	case StatusRetired:
		return "retired"
	default:
		return "active"
	}
}

// Feature is a known amendment.
type Feature struct {
	// Name is the human-readable name of the feature.
	Name string
	// ID is the SHA-512 half of the feature name.
	ID     [32]byte
	Status Status
}

// SHA512Half computes the SHA-512 hash and returns the first 32 bytes.
func SHA512Half(data []byte) [32]byte {
	hash := sha512.Sum512(data)
	var result [32]byte
	copy(result[:], hash[:32])
	return result
}

// FeatureID computes the feature ID from a feature name.
func FeatureID(name string) [32]byte {
	return SHA512Half([]byte(name))
}

// IDHex returns the ID in the upper-case hex used by transactions.
func (f *Feature) IDHex() string {
	return strings.ToUpper(hex.EncodeToString(f.ID[:]))
}

// String returns the feature name.
func (f *Feature) String() string {
	return f.Name
}
