package entry

import (
	"github.com/LeJamon/goXRPLwallet/internal/core/types"
)

// NFTokenOffer flags
const (
	LsfSellNFToken uint32 = 0x00000001
)

// NFTokenOffer is a buy or sell offer for an NFT.
type NFTokenOffer struct {
	BaseEntry

	Owner            string       `xrpl:"Owner"`
	NFTokenID        string       `xrpl:"NFTokenID"`
	Amount           types.Amount `xrpl:"Amount"`
	Destination      string       `xrpl:"Destination,omitempty"`
	Expiration       *uint32      `xrpl:"Expiration,omitempty"`
	OwnerNode        string       `xrpl:"OwnerNode,omitempty"`
	NFTokenOfferNode string       `xrpl:"NFTokenOfferNode,omitempty"`
}

// IsSellOffer reports whether the owner is selling the token.
func (o *NFTokenOffer) IsSellOffer() bool { return o.HasFlag(LsfSellNFToken) }

// NFTokenPage holds up to 32 NFTs of one owner.
type NFTokenPage struct {
	BaseEntry

	NFTokens        []any  `xrpl:"NFTokens"`
	PreviousPageMin string `xrpl:"PreviousPageMin,omitempty"`
	NextPageMin     string `xrpl:"NextPageMin,omitempty"`
}

// TokenIDs returns the NFTokenID of every token on the page, in order.
func (p *NFTokenPage) TokenIDs() []string {
	ids := make([]string, 0, len(p.NFTokens))
	for _, item := range p.NFTokens {
		wrapper, ok := item.(map[string]any)
		if !ok {
			continue
		}
		token, ok := wrapper["NFToken"].(map[string]any)
		if !ok {
			continue
		}
		if id, ok := token["NFTokenID"].(string); ok {
			ids = append(ids, id)
		}
	}
	return ids
}
