package entry

import (
	"github.com/LeJamon/goXRPLwallet/internal/core/types"
)

// Oracle is a price oracle published by Owner.
type Oracle struct {
	BaseEntry

	Owner           string            `xrpl:"Owner"`
	Provider        string            `xrpl:"Provider"`
	AssetClass      string            `xrpl:"AssetClass"`
	URI             string            `xrpl:"URI,omitempty"`
	LastUpdateTime  uint32            `xrpl:"LastUpdateTime"`
	PriceDataSeries []types.PriceData `xrpl:"PriceDataSeries"`
	OwnerNode       string            `xrpl:"OwnerNode,omitempty"`
}

// Series returns the unwrapped price data.
func (o *Oracle) Series() []types.PriceData { return o.PriceDataSeries }
