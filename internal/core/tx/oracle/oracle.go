// Package oracle implements OracleSet and OracleDelete.
package oracle

import (
	"github.com/LeJamon/goXRPLwallet/internal/core/tx"
	"github.com/LeJamon/goXRPLwallet/internal/core/types"
)

func init() {
	tx.Register(tx.TypeOracleSet, func() tx.Transaction {
		return &OracleSet{BaseTx: *tx.NewBaseTx(tx.TypeOracleSet, "")}
	})
	tx.Register(tx.TypeOracleDelete, func() tx.Transaction {
		return &OracleDelete{BaseTx: *tx.NewBaseTx(tx.TypeOracleDelete, "")}
	})
}

// MaxPriceDataSeries is the largest number of pairs one oracle can hold.
const MaxPriceDataSeries = 10

// OracleSet creates or updates a price oracle.
type OracleSet struct {
	tx.BaseTx

	OracleDocumentID uint32            `xrpl:"OracleDocumentID"`
	Provider         string            `xrpl:"Provider,omitempty"`
	URI              string            `xrpl:"URI,omitempty"`
	AssetClass       string            `xrpl:"AssetClass,omitempty"`
	LastUpdateTime   uint32            `xrpl:"LastUpdateTime"`
	PriceDataSeries  []types.PriceData `xrpl:"PriceDataSeries"`
}

// NewOracleSet creates a new OracleSet transaction
func NewOracleSet(account string, documentID, lastUpdate uint32, series []types.PriceData) *OracleSet {
	return &OracleSet{
		BaseTx:           *tx.NewBaseTx(tx.TypeOracleSet, account),
		OracleDocumentID: documentID,
		LastUpdateTime:   lastUpdate,
		PriceDataSeries:  series,
	}
}

// Series returns the price pairs without their wire wrappers.
func (o *OracleSet) Series() []types.PriceData {
	return o.PriceDataSeries
}

// SetSeries replaces the price pairs.
func (o *OracleSet) SetSeries(series []types.PriceData) error {
	return tx.SetField(o, "PriceDataSeries", series)
}

// OracleDelete removes a price oracle.
type OracleDelete struct {
	tx.BaseTx

	OracleDocumentID uint32 `xrpl:"OracleDocumentID"`
}

// NewOracleDelete creates a new OracleDelete transaction
func NewOracleDelete(account string, documentID uint32) *OracleDelete {
	return &OracleDelete{BaseTx: *tx.NewBaseTx(tx.TypeOracleDelete, account), OracleDocumentID: documentID}
}
