package types

import (
	"github.com/shopspring/decimal"
)

// Action is the direction of a balance change.
type Action string

const (
	ActionIncrease Action = "INC"
	ActionDecrease Action = "DEC"
)

// BalanceMutation is the signed effect of a transaction on one balance,
// expressed as a direction and a positive magnitude.
type BalanceMutation struct {
	Account  string          `json:"account"`
	Currency string          `json:"currency"`
	Issuer   string          `json:"issuer,omitempty"`
	Action   Action          `json:"action"`
	Value    decimal.Decimal `json:"value"`
}

// Signed returns the mutation value with the sign of its action.
func (m BalanceMutation) Signed() decimal.Decimal {
	if m.Action == ActionDecrease {
		return m.Value.Neg()
	}
	return m.Value
}

// Amount returns the mutation as an amount, when the currency is valid.
func (m BalanceMutation) Amount() (Amount, error) {
	if m.Issuer == "" {
		return NativeFromDecimal(m.Value)
	}
	return Amount{currency: m.Currency, issuer: m.Issuer, raw: m.Value.String(), value: m.Value}, nil
}
