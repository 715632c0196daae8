// Package nftoken implements the NFToken transactions.
package nftoken

import (
	"github.com/LeJamon/goXRPLwallet/internal/core/meta"
	"github.com/LeJamon/goXRPLwallet/internal/core/tx"
	"github.com/LeJamon/goXRPLwallet/internal/core/types"
)

func init() {
	tx.Register(tx.TypeNFTokenMint, func() tx.Transaction {
		return &NFTokenMint{BaseTx: *tx.NewBaseTx(tx.TypeNFTokenMint, "")}
	})
	tx.Register(tx.TypeNFTokenBurn, func() tx.Transaction {
		return &NFTokenBurn{BaseTx: *tx.NewBaseTx(tx.TypeNFTokenBurn, "")}
	})
	tx.Register(tx.TypeNFTokenCreateOffer, func() tx.Transaction {
		return &NFTokenCreateOffer{BaseTx: *tx.NewBaseTx(tx.TypeNFTokenCreateOffer, "")}
	})
	tx.Register(tx.TypeNFTokenCancelOffer, func() tx.Transaction {
		return &NFTokenCancelOffer{BaseTx: *tx.NewBaseTx(tx.TypeNFTokenCancelOffer, "")}
	})
	tx.Register(tx.TypeNFTokenAcceptOffer, func() tx.Transaction {
		return &NFTokenAcceptOffer{BaseTx: *tx.NewBaseTx(tx.TypeNFTokenAcceptOffer, "")}
	})
	tx.Register(tx.TypeNFTokenModify, func() tx.Transaction {
		return &NFTokenModify{BaseTx: *tx.NewBaseTx(tx.TypeNFTokenModify, "")}
	})
}

// NFTokenMint flags
const (
	NFTokenFlagBurnable     uint32 = 0x00000001
	NFTokenFlagOnlyXRP      uint32 = 0x00000002
	NFTokenFlagTrustLine    uint32 = 0x00000004
	NFTokenFlagTransferable uint32 = 0x00000008
	NFTokenFlagMutable      uint32 = 0x00000010
)

// NFTokenCreateOffer flags
const (
	NFTokenCreateOfferFlagSellNFToken uint32 = 0x00000001
)

// NFTokenMint creates a non-fungible token.
type NFTokenMint struct {
	tx.BaseTx

	NFTokenTaxon uint32        `xrpl:"NFTokenTaxon"`
	Issuer       string        `xrpl:"Issuer,omitempty"`
	TransferFee  *uint16       `xrpl:"TransferFee,omitempty"`
	URI          string        `xrpl:"URI,omitempty"`
	Amount       *types.Amount `xrpl:"Amount,omitempty"`
	Destination  string        `xrpl:"Destination,omitempty"`
	Expiration   *uint32       `xrpl:"Expiration,omitempty"`
}

// NewNFTokenMint creates a new NFTokenMint transaction
func NewNFTokenMint(account string, taxon uint32) *NFTokenMint {
	return &NFTokenMint{BaseTx: *tx.NewBaseTx(tx.TypeNFTokenMint, account), NFTokenTaxon: taxon}
}

// TokenID returns the identifier of the minted token. Servers report it
// as nftoken_id; older metadata only shows it as the one token that appears
// in a NFTokenPage without having been there before.
func (n *NFTokenMint) TokenID(m *meta.Metadata) (string, bool) {
	if m == nil {
		return "", false
	}
	if m.NFTokenID != "" {
		return m.NFTokenID, true
	}
	before := map[string]bool{}
	var after []string
	for _, node := range m.Nodes() {
		if node.LedgerEntryType != "NFTokenPage" {
			continue
		}
		for _, id := range pageTokens(node.PreviousFields) {
			before[id] = true
		}
		if node.State == meta.Deleted {
			for _, id := range pageTokens(node.FinalFields) {
				before[id] = true
			}
			continue
		}
		if _, changed := node.PreviousFields["NFTokens"]; node.State == meta.Modified && !changed {
			continue
		}
		after = append(after, pageTokens(node.Current())...)
	}
	for _, id := range after {
		if !before[id] {
			return id, true
		}
	}
	return "", false
}

func pageTokens(fields map[string]any) []string {
	wrapped, err := types.UnwrapArray(fields["NFTokens"], "NFToken")
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(wrapped))
	for _, token := range wrapped {
		if id, ok := token["NFTokenID"].(string); ok {
			out = append(out, id)
		}
	}
	return out
}

// NFTokenBurn destroys a token.
type NFTokenBurn struct {
	tx.BaseTx

	NFTokenID string `xrpl:"NFTokenID"`
	Owner     string `xrpl:"Owner,omitempty"`
}

// NewNFTokenBurn creates a new NFTokenBurn transaction
func NewNFTokenBurn(account, tokenID string) *NFTokenBurn {
	return &NFTokenBurn{BaseTx: *tx.NewBaseTx(tx.TypeNFTokenBurn, account), NFTokenID: tokenID}
}

// NFTokenCreateOffer offers to buy or sell a token.
type NFTokenCreateOffer struct {
	tx.BaseTx

	NFTokenID   string       `xrpl:"NFTokenID"`
	Amount      types.Amount `xrpl:"Amount"`
	Owner       string       `xrpl:"Owner,omitempty"`
	Destination string       `xrpl:"Destination,omitempty"`
	Expiration  *uint32      `xrpl:"Expiration,omitempty"`
}

// NewNFTokenCreateOffer creates a new NFTokenCreateOffer transaction
func NewNFTokenCreateOffer(account, tokenID string, amount types.Amount) *NFTokenCreateOffer {
	return &NFTokenCreateOffer{BaseTx: *tx.NewBaseTx(tx.TypeNFTokenCreateOffer, account), NFTokenID: tokenID, Amount: amount}
}

// IsSellOffer reports whether the offer sells a token the account owns.
func (n *NFTokenCreateOffer) IsSellOffer() bool {
	return n.HasFlag(NFTokenCreateOfferFlagSellNFToken)
}

// NFTokenCancelOffer withdraws token offers.
type NFTokenCancelOffer struct {
	tx.BaseTx

	NFTokenOffers []string `xrpl:"NFTokenOffers"`
}

// NewNFTokenCancelOffer creates a new NFTokenCancelOffer transaction
func NewNFTokenCancelOffer(account string, offers ...string) *NFTokenCancelOffer {
	return &NFTokenCancelOffer{BaseTx: *tx.NewBaseTx(tx.TypeNFTokenCancelOffer, account), NFTokenOffers: offers}
}

// NFTokenAcceptOffer accepts a buy or sell offer, or brokers a pair.
type NFTokenAcceptOffer struct {
	tx.BaseTx

	NFTokenSellOffer string        `xrpl:"NFTokenSellOffer,omitempty"`
	NFTokenBuyOffer  string        `xrpl:"NFTokenBuyOffer,omitempty"`
	NFTokenBrokerFee *types.Amount `xrpl:"NFTokenBrokerFee,omitempty"`
}

// NewNFTokenAcceptOffer creates a new NFTokenAcceptOffer transaction
func NewNFTokenAcceptOffer(account string) *NFTokenAcceptOffer {
	return &NFTokenAcceptOffer{BaseTx: *tx.NewBaseTx(tx.TypeNFTokenAcceptOffer, account)}
}

// IsBrokered reports whether both a buy and a sell offer are matched.
func (n *NFTokenAcceptOffer) IsBrokered() bool {
	return n.NFTokenSellOffer != "" && n.NFTokenBuyOffer != ""
}

// NFTokenModify updates the URI of a mutable token.
type NFTokenModify struct {
	tx.BaseTx

	NFTokenID string `xrpl:"NFTokenID"`
	Owner     string `xrpl:"Owner,omitempty"`
	URI       string `xrpl:"URI,omitempty"`
}

// NewNFTokenModify creates a new NFTokenModify transaction
func NewNFTokenModify(account, tokenID, uri string) *NFTokenModify {
	return &NFTokenModify{BaseTx: *tx.NewBaseTx(tx.TypeNFTokenModify, account), NFTokenID: tokenID, URI: uri}
}
