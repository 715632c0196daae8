// Package paychan implements the payment channel transactions.
package paychan

import (
	"github.com/LeJamon/goXRPLwallet/internal/core/tx"
	"github.com/LeJamon/goXRPLwallet/internal/core/types"
)

func init() {
	tx.Register(tx.TypePaymentChannelCreate, func() tx.Transaction {
		return &PaymentChannelCreate{BaseTx: *tx.NewBaseTx(tx.TypePaymentChannelCreate, "")}
	})
	tx.Register(tx.TypePaymentChannelFund, func() tx.Transaction {
		return &PaymentChannelFund{BaseTx: *tx.NewBaseTx(tx.TypePaymentChannelFund, "")}
	})
	tx.Register(tx.TypePaymentChannelClaim, func() tx.Transaction {
		return &PaymentChannelClaim{BaseTx: *tx.NewBaseTx(tx.TypePaymentChannelClaim, "")}
	})
}

// PaymentChannelClaim flags
const (
	PaymentChannelClaimFlagRenew uint32 = 0x00010000
	PaymentChannelClaimFlagClose uint32 = 0x00020000
)

// PaymentChannelCreate opens a channel and funds it.
type PaymentChannelCreate struct {
	tx.BaseTx

	Amount         types.Amount `xrpl:"Amount"`
	Destination    string       `xrpl:"Destination"`
	SettleDelay    uint32       `xrpl:"SettleDelay"`
	PublicKey      string       `xrpl:"PublicKey"`
	CancelAfter    *uint32      `xrpl:"CancelAfter,omitempty"`
	DestinationTag *uint32      `xrpl:"DestinationTag,omitempty"`
}

// NewPaymentChannelCreate creates a new PaymentChannelCreate transaction
func NewPaymentChannelCreate(account, destination string, amount types.Amount, settleDelay uint32, publicKey string) *PaymentChannelCreate {
	return &PaymentChannelCreate{
		BaseTx:      *tx.NewBaseTx(tx.TypePaymentChannelCreate, account),
		Amount:      amount,
		Destination: destination,
		SettleDelay: settleDelay,
		PublicKey:   publicKey,
	}
}

// PaymentChannelFund adds funds to a channel and optionally extends it.
type PaymentChannelFund struct {
	tx.BaseTx

	Channel    string       `xrpl:"Channel"`
	Amount     types.Amount `xrpl:"Amount"`
	Expiration *uint32      `xrpl:"Expiration,omitempty"`
}

// NewPaymentChannelFund creates a new PaymentChannelFund transaction
func NewPaymentChannelFund(account, channel string, amount types.Amount) *PaymentChannelFund {
	return &PaymentChannelFund{BaseTx: *tx.NewBaseTx(tx.TypePaymentChannelFund, account), Channel: channel, Amount: amount}
}

// PaymentChannelClaim redeems a signed claim, or closes the channel.
type PaymentChannelClaim struct {
	tx.BaseTx

	Channel       string        `xrpl:"Channel"`
	Balance       *types.Amount `xrpl:"Balance,omitempty"`
	Amount        *types.Amount `xrpl:"Amount,omitempty"`
	Signature     string        `xrpl:"Signature,omitempty"`
	PublicKey     string        `xrpl:"PublicKey,omitempty"`
	CredentialIDs []string      `xrpl:"CredentialIDs,omitempty"`
}

// NewPaymentChannelClaim creates a new PaymentChannelClaim transaction
func NewPaymentChannelClaim(account, channel string) *PaymentChannelClaim {
	return &PaymentChannelClaim{BaseTx: *tx.NewBaseTx(tx.TypePaymentChannelClaim, account), Channel: channel}
}

// IsClose reports whether the claim requests closing the channel.
func (p *PaymentChannelClaim) IsClose() bool {
	return p.HasFlag(PaymentChannelClaimFlagClose)
}
