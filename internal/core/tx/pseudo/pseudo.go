// Package pseudo implements the wallet pseudo-transactions: signable
// requests that carry no TransactionType and never reach the ledger.
package pseudo

import (
	"github.com/LeJamon/goXRPLwallet/internal/core/tx"
	"github.com/LeJamon/goXRPLwallet/internal/core/types"
)

func init() {
	tx.Register(tx.TypeSignIn, func() tx.Transaction {
		return &SignIn{BaseTx: *tx.NewBaseTx(tx.TypeSignIn, "")}
	})
	tx.Register(tx.TypePaymentChannelAuthorize, func() tx.Transaction {
		return &PaymentChannelAuthorize{BaseTx: *tx.NewBaseTx(tx.TypePaymentChannelAuthorize, "")}
	})
}

// SignIn proves control of an account by signing an empty request.
type SignIn struct {
	tx.BaseTx
}

// NewSignIn creates a new sign-in request
func NewSignIn() *SignIn {
	return &SignIn{BaseTx: *tx.NewBaseTx(tx.TypeSignIn, "")}
}

// PaymentChannelAuthorize signs an off-ledger claim against a channel.
type PaymentChannelAuthorize struct {
	tx.BaseTx

	Channel string       `xrpl:"Channel"`
	Amount  types.Amount `xrpl:"Amount"`
}

// NewPaymentChannelAuthorize creates a new channel claim authorization
func NewPaymentChannelAuthorize(channel string, amount types.Amount) *PaymentChannelAuthorize {
	return &PaymentChannelAuthorize{
		BaseTx:  *tx.NewBaseTx(tx.TypePaymentChannelAuthorize, ""),
		Channel: channel,
		Amount:  amount,
	}
}
