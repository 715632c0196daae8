package entry

import (
	"github.com/shopspring/decimal"

	"github.com/LeJamon/goXRPLwallet/internal/core/types"
)

// Offer flags
const (
	LsfPassive uint32 = 0x00010000
	LsfSell    uint32 = 0x00020000
)

// Offer is an order on the decentralized exchange.
type Offer struct {
	BaseEntry

	Account       string       `xrpl:"Account"`
	Sequence      uint32       `xrpl:"Sequence"`
	TakerPays     types.Amount `xrpl:"TakerPays"`
	TakerGets     types.Amount `xrpl:"TakerGets"`
	BookDirectory string       `xrpl:"BookDirectory,omitempty"`
	BookNode      string       `xrpl:"BookNode,omitempty"`
	OwnerNode     string       `xrpl:"OwnerNode,omitempty"`
	Expiration    *uint32      `xrpl:"Expiration,omitempty"`
}

// Quality returns the exchange rate TakerPays/TakerGets in display units.
// It reports false when TakerGets is zero.
func (o *Offer) Quality() (decimal.Decimal, bool) {
	gets := o.TakerGets.Value()
	if gets.IsZero() {
		return decimal.Zero, false
	}
	return o.TakerPays.Value().Div(gets), true
}

// IsSell reports whether the offer was placed with the sell flag.
func (o *Offer) IsSell() bool { return o.HasFlag(LsfSell) }

// DirectoryNode is an owner or order book directory page.
type DirectoryNode struct {
	BaseEntry

	Owner             string   `xrpl:"Owner,omitempty"`
	RootIndex         string   `xrpl:"RootIndex"`
	Indexes           []string `xrpl:"Indexes"`
	IndexNext         string   `xrpl:"IndexNext,omitempty"`
	IndexPrevious     string   `xrpl:"IndexPrevious,omitempty"`
	TakerPaysCurrency string   `xrpl:"TakerPaysCurrency,omitempty"`
	TakerPaysIssuer   string   `xrpl:"TakerPaysIssuer,omitempty"`
	TakerGetsCurrency string   `xrpl:"TakerGetsCurrency,omitempty"`
	TakerGetsIssuer   string   `xrpl:"TakerGetsIssuer,omitempty"`
	ExchangeRate      string   `xrpl:"ExchangeRate,omitempty"`
}

// IsBookDirectory reports whether the page belongs to an order book.
func (d *DirectoryNode) IsBookDirectory() bool { return d.Owner == "" && d.TakerPaysCurrency != "" }

// AMM is an automated market maker instance.
type AMM struct {
	BaseEntry

	Account        string         `xrpl:"Account"`
	Asset          types.Issue    `xrpl:"Asset"`
	Asset2         types.Issue    `xrpl:"Asset2"`
	LPTokenBalance types.Amount   `xrpl:"LPTokenBalance"`
	TradingFee     uint16         `xrpl:"TradingFee"`
	VoteSlots      []any          `xrpl:"VoteSlots,omitempty"`
	AuctionSlot    map[string]any `xrpl:"AuctionSlot,omitempty"`
	OwnerNode      string         `xrpl:"OwnerNode,omitempty"`
}

// TradingFeePercent returns the fee in percent; the wire unit is 1/100000.
func (a *AMM) TradingFeePercent() decimal.Decimal {
	return decimal.New(int64(a.TradingFee), -3)
}
