package entry

import (
	"github.com/LeJamon/goXRPLwallet/internal/core/types"
)

// RippleState flags
const (
	LsfLowReserve   uint32 = 0x00010000
	LsfHighReserve  uint32 = 0x00020000
	LsfLowAuth      uint32 = 0x00040000
	LsfHighAuth     uint32 = 0x00080000
	LsfLowNoRipple  uint32 = 0x00100000
	LsfHighNoRipple uint32 = 0x00200000
	LsfLowFreeze    uint32 = 0x00400000
	LsfHighFreeze   uint32 = 0x00800000
)

// RippleState is a trust line between two accounts. Balance is stored from
// the low account's perspective: positive means the high account owes the
// low account.
type RippleState struct {
	BaseEntry

	Balance        types.Amount `xrpl:"Balance"`
	LowLimit       types.Amount `xrpl:"LowLimit"`
	HighLimit      types.Amount `xrpl:"HighLimit"`
	LowNode        string       `xrpl:"LowNode,omitempty"`
	HighNode       string       `xrpl:"HighNode,omitempty"`
	LowQualityIn   *uint32      `xrpl:"LowQualityIn,omitempty"`
	LowQualityOut  *uint32      `xrpl:"LowQualityOut,omitempty"`
	HighQualityIn  *uint32      `xrpl:"HighQualityIn,omitempty"`
	HighQualityOut *uint32      `xrpl:"HighQualityOut,omitempty"`
}

// LowAccount returns the account on the low side of the line.
func (r *RippleState) LowAccount() string { return r.LowLimit.Issuer() }

// HighAccount returns the account on the high side of the line.
func (r *RippleState) HighAccount() string { return r.HighLimit.Issuer() }

// Counterparty returns the other side of the line for account.
func (r *RippleState) Counterparty(account string) (string, bool) {
	switch account {
	case r.LowAccount():
		return r.HighAccount(), true
	case r.HighAccount():
		return r.LowAccount(), true
	default:
		return "", false
	}
}

// BalanceFor returns the balance held by account, issued by its
// counterparty. The high side sees the stored balance negated.
func (r *RippleState) BalanceFor(account string) (types.Amount, bool) {
	counterparty, ok := r.Counterparty(account)
	if !ok {
		return types.Amount{}, false
	}
	value := r.Balance.Value()
	if account == r.HighAccount() {
		value = value.Neg()
	}
	a, err := types.NewIssuedAmount(value.String(), r.Balance.Currency(), counterparty)
	if err != nil {
		return types.Amount{}, false
	}
	return a, true
}

// LimitFor returns the limit account extends to its counterparty.
func (r *RippleState) LimitFor(account string) (types.Amount, bool) {
	switch account {
	case r.LowAccount():
		return r.LowLimit, true
	case r.HighAccount():
		return r.HighLimit, true
	default:
		return types.Amount{}, false
	}
}

// IsFrozenBy reports whether account has frozen the line.
func (r *RippleState) IsFrozenBy(account string) bool {
	switch account {
	case r.LowAccount():
		return r.HasFlag(LsfLowFreeze)
	case r.HighAccount():
		return r.HasFlag(LsfHighFreeze)
	default:
		return false
	}
}

// NoRipple reports whether account has set no-ripple on its side.
func (r *RippleState) NoRipple(account string) bool {
	switch account {
	case r.LowAccount():
		return r.HasFlag(LsfLowNoRipple)
	case r.HighAccount():
		return r.HasFlag(LsfHighNoRipple)
	default:
		return false
	}
}
