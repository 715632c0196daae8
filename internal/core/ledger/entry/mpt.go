package entry

import (
	"github.com/shopspring/decimal"

	"github.com/LeJamon/goXRPLwallet/internal/core/codec"
)

// MPTokenIssuance defines a multi-purpose token.
type MPTokenIssuance struct {
	BaseEntry

	Issuer            string  `xrpl:"Issuer"`
	Sequence          uint32  `xrpl:"Sequence"`
	AssetScale        *uint8  `xrpl:"AssetScale,omitempty"`
	MaximumAmount     string  `xrpl:"MaximumAmount,omitempty"`
	OutstandingAmount string  `xrpl:"OutstandingAmount"`
	TransferFee       *uint16 `xrpl:"TransferFee,omitempty"`
	MPTokenMetadata   string  `xrpl:"MPTokenMetadata,omitempty"`
	OwnerNode         string  `xrpl:"OwnerNode,omitempty"`
}

// Outstanding returns the outstanding supply scaled by AssetScale.
func (m *MPTokenIssuance) Outstanding() (decimal.Decimal, error) {
	d, err := codec.ParseDecimal(m.OutstandingAmount)
	if err != nil {
		return decimal.Zero, err
	}
	if m.AssetScale != nil {
		d = d.Shift(-int32(*m.AssetScale))
	}
	return d, nil
}

// MPToken is one holder's balance of a multi-purpose token.
type MPToken struct {
	BaseEntry

	Account           string `xrpl:"Account"`
	MPTokenIssuanceID string `xrpl:"MPTokenIssuanceID"`
	MPTAmount         string `xrpl:"MPTAmount,omitempty"`
	OwnerNode         string `xrpl:"OwnerNode,omitempty"`
}
