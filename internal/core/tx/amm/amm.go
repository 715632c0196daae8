// Package amm implements the automated market maker transactions.
package amm

import (
	"github.com/shopspring/decimal"

	"github.com/LeJamon/goXRPLwallet/internal/core/tx"
	"github.com/LeJamon/goXRPLwallet/internal/core/types"
)

func init() {
	tx.Register(tx.TypeAMMCreate, func() tx.Transaction {
		return &AMMCreate{BaseTx: *tx.NewBaseTx(tx.TypeAMMCreate, "")}
	})
	tx.Register(tx.TypeAMMDeposit, func() tx.Transaction {
		return &AMMDeposit{BaseTx: *tx.NewBaseTx(tx.TypeAMMDeposit, "")}
	})
	tx.Register(tx.TypeAMMWithdraw, func() tx.Transaction {
		return &AMMWithdraw{BaseTx: *tx.NewBaseTx(tx.TypeAMMWithdraw, "")}
	})
	tx.Register(tx.TypeAMMVote, func() tx.Transaction {
		return &AMMVote{BaseTx: *tx.NewBaseTx(tx.TypeAMMVote, "")}
	})
	tx.Register(tx.TypeAMMBid, func() tx.Transaction {
		return &AMMBid{BaseTx: *tx.NewBaseTx(tx.TypeAMMBid, "")}
	})
	tx.Register(tx.TypeAMMDelete, func() tx.Transaction {
		return &AMMDelete{BaseTx: *tx.NewBaseTx(tx.TypeAMMDelete, "")}
	})
	tx.Register(tx.TypeAMMClawback, func() tx.Transaction {
		return &AMMClawback{BaseTx: *tx.NewBaseTx(tx.TypeAMMClawback, "")}
	})
}

// AMMWithdraw flags
const (
	AMMWithdrawFlagWithdrawAll       uint32 = 0x00020000
	AMMWithdrawFlagWithdrawAllSingle uint32 = 0x00040000
)

// TradingFeeDisplay converts a trading fee in units of 1/100,000 into a
// percentage string.
func TradingFeeDisplay(fee uint16) string {
	return decimal.New(int64(fee), -3).String() + "%"
}

// AMMCreate creates a pool for a pair of assets.
type AMMCreate struct {
	tx.BaseTx

	Amount     types.Amount `xrpl:"Amount"`
	Amount2    types.Amount `xrpl:"Amount2"`
	TradingFee uint16       `xrpl:"TradingFee"`
}

// NewAMMCreate creates a new AMMCreate transaction
func NewAMMCreate(account string, amount, amount2 types.Amount, fee uint16) *AMMCreate {
	return &AMMCreate{BaseTx: *tx.NewBaseTx(tx.TypeAMMCreate, account), Amount: amount, Amount2: amount2, TradingFee: fee}
}

// AMMDeposit adds liquidity to a pool.
type AMMDeposit struct {
	tx.BaseTx

	Asset      types.Issue   `xrpl:"Asset"`
	Asset2     types.Issue   `xrpl:"Asset2"`
	Amount     *types.Amount `xrpl:"Amount,omitempty"`
	Amount2    *types.Amount `xrpl:"Amount2,omitempty"`
	EPrice     *types.Amount `xrpl:"EPrice,omitempty"`
	LPTokenOut *types.Amount `xrpl:"LPTokenOut,omitempty"`
	TradingFee *uint16       `xrpl:"TradingFee,omitempty"`
}

// NewAMMDeposit creates a new AMMDeposit transaction
func NewAMMDeposit(account string, asset, asset2 types.Issue) *AMMDeposit {
	return &AMMDeposit{BaseTx: *tx.NewBaseTx(tx.TypeAMMDeposit, account), Asset: asset, Asset2: asset2}
}

// AMMWithdraw removes liquidity from a pool.
type AMMWithdraw struct {
	tx.BaseTx

	Asset     types.Issue   `xrpl:"Asset"`
	Asset2    types.Issue   `xrpl:"Asset2"`
	Amount    *types.Amount `xrpl:"Amount,omitempty"`
	Amount2   *types.Amount `xrpl:"Amount2,omitempty"`
	EPrice    *types.Amount `xrpl:"EPrice,omitempty"`
	LPTokenIn *types.Amount `xrpl:"LPTokenIn,omitempty"`
}

// NewAMMWithdraw creates a new AMMWithdraw transaction
func NewAMMWithdraw(account string, asset, asset2 types.Issue) *AMMWithdraw {
	return &AMMWithdraw{BaseTx: *tx.NewBaseTx(tx.TypeAMMWithdraw, account), Asset: asset, Asset2: asset2}
}

// AMMVote votes on the trading fee of a pool.
type AMMVote struct {
	tx.BaseTx

	Asset      types.Issue `xrpl:"Asset"`
	Asset2     types.Issue `xrpl:"Asset2"`
	TradingFee uint16      `xrpl:"TradingFee"`
}

// NewAMMVote creates a new AMMVote transaction
func NewAMMVote(account string, asset, asset2 types.Issue, fee uint16) *AMMVote {
	return &AMMVote{BaseTx: *tx.NewBaseTx(tx.TypeAMMVote, account), Asset: asset, Asset2: asset2, TradingFee: fee}
}

// AMMBid bids for the pool's auction slot.
type AMMBid struct {
	tx.BaseTx

	Asset        types.Issue   `xrpl:"Asset"`
	Asset2       types.Issue   `xrpl:"Asset2"`
	BidMin       *types.Amount `xrpl:"BidMin,omitempty"`
	BidMax       *types.Amount `xrpl:"BidMax,omitempty"`
	AuthAccounts []any         `xrpl:"AuthAccounts,omitempty"`
}

// NewAMMBid creates a new AMMBid transaction
func NewAMMBid(account string, asset, asset2 types.Issue) *AMMBid {
	return &AMMBid{BaseTx: *tx.NewBaseTx(tx.TypeAMMBid, account), Asset: asset, Asset2: asset2}
}

// AMMDelete deletes an empty pool.
type AMMDelete struct {
	tx.BaseTx

	Asset  types.Issue `xrpl:"Asset"`
	Asset2 types.Issue `xrpl:"Asset2"`
}

// NewAMMDelete creates a new AMMDelete transaction
func NewAMMDelete(account string, asset, asset2 types.Issue) *AMMDelete {
	return &AMMDelete{BaseTx: *tx.NewBaseTx(tx.TypeAMMDelete, account), Asset: asset, Asset2: asset2}
}

// AMMClawback claws back tokens a holder deposited into a pool.
type AMMClawback struct {
	tx.BaseTx

	Holder string        `xrpl:"Holder"`
	Asset  types.Issue   `xrpl:"Asset"`
	Asset2 types.Issue   `xrpl:"Asset2"`
	Amount *types.Amount `xrpl:"Amount,omitempty"`
}

// NewAMMClawback creates a new AMMClawback transaction
func NewAMMClawback(account, holder string, asset, asset2 types.Issue) *AMMClawback {
	return &AMMClawback{BaseTx: *tx.NewBaseTx(tx.TypeAMMClawback, account), Holder: holder, Asset: asset, Asset2: asset2}
}
