// Package meta models transaction metadata: the result code and the ledger
// entries a transaction created, modified or deleted.
package meta

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/LeJamon/goXRPLwallet/internal/core/types"
)

// ErrMalformedMetadata is returned when metadata cannot be decoded.
var ErrMalformedMetadata = errors.New("malformed metadata")

// LedgerEntryState is the effect a transaction had on a ledger entry.
type LedgerEntryState uint8

const (
	Created LedgerEntryState = iota
	Modified
	Deleted
)

func (s LedgerEntryState) String() string {
	switch s {
	case Created:
		return "CreatedNode"
	case Modified:
		return "ModifiedNode"
	case Deleted:
		return "DeletedNode"
	default:
		return fmt.Sprintf("LedgerEntryState(%d)", s)
	}
}

// AffectedNode represents a ledger entry affected by a transaction
type AffectedNode struct {
	LedgerEntryType   string         `json:"LedgerEntryType"`
	LedgerIndex       string         `json:"LedgerIndex,omitempty"`
	FinalFields       map[string]any `json:"FinalFields,omitempty"`
	PreviousFields    map[string]any `json:"PreviousFields,omitempty"`
	NewFields         map[string]any `json:"NewFields,omitempty"`
	PreviousTxnID     string         `json:"PreviousTxnID,omitempty"`
	PreviousTxnLgrSeq *uint32        `json:"PreviousTxnLgrSeq,omitempty"`
}

// NodeEffect wraps an AffectedNode in the key naming its effect.
type NodeEffect struct {
	ModifiedNode *AffectedNode `json:"ModifiedNode,omitempty"`
	CreatedNode  *AffectedNode `json:"CreatedNode,omitempty"`
	DeletedNode  *AffectedNode `json:"DeletedNode,omitempty"`
}

// AffectedNode returns the wrapped node and its state.
func (e NodeEffect) AffectedNode() (*AffectedNode, LedgerEntryState, bool) {
	switch {
	case e.CreatedNode != nil:
		return e.CreatedNode, Created, true
	case e.ModifiedNode != nil:
		return e.ModifiedNode, Modified, true
	case e.DeletedNode != nil:
		return e.DeletedNode, Deleted, true
	default:
		return nil, 0, false
	}
}

// Current returns the entry's fields after the transaction: NewFields for
// created entries, FinalFields otherwise.
func (n *AffectedNode) Current() map[string]any {
	if n.NewFields != nil {
		return n.NewFields
	}
	return n.FinalFields
}

// Metadata is the outcome of an applied transaction.
type Metadata struct {
	AffectedNodes     []NodeEffect `json:"AffectedNodes"`
	TransactionIndex  uint32       `json:"TransactionIndex"`
	TransactionResult string       `json:"TransactionResult"`

	// delivered_amount is added by servers; DeliveredAmount is the
	// protocol field. Either may hold the string "unavailable".
	DeliveredAmountAPI any `json:"delivered_amount,omitempty"`
	DeliveredAmount    any `json:"DeliveredAmount,omitempty"`

	// Server-side synthetic fields.
	NFTokenID  string   `json:"nftoken_id,omitempty"`
	NFTokenIDs []string `json:"nftoken_ids,omitempty"`
	OfferID    string   `json:"offer_id,omitempty"`
}

// FromJSON decodes metadata from JSON.
func FromJSON(data []byte) (*Metadata, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var m Metadata
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMetadata, err)
	}
	if m.TransactionResult == "" {
		return nil, fmt.Errorf("%w: missing TransactionResult", ErrMalformedMetadata)
	}
	return &m, nil
}

// FromMap decodes metadata from an already decoded JSON object.
func FromMap(raw map[string]any) (*Metadata, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMetadata, err)
	}
	return FromJSON(data)
}

// Nodes returns every affected node with its state, in metadata order.
func (m *Metadata) Nodes() []Node {
	out := make([]Node, 0, len(m.AffectedNodes))
	for _, effect := range m.AffectedNodes {
		if node, state, ok := effect.AffectedNode(); ok {
			out = append(out, Node{AffectedNode: node, State: state})
		}
	}
	return out
}

// Node pairs an affected node with its state.
type Node struct {
	*AffectedNode
	State LedgerEntryState
}

// Delivered returns the amount the transaction delivered, when the metadata
// records one.
func (m *Metadata) Delivered() (types.Amount, bool) {
	for _, v := range []any{m.DeliveredAmountAPI, m.DeliveredAmount} {
		if v == nil {
			continue
		}
		if s, ok := v.(string); ok && s == "unavailable" {
			continue
		}
		if a, err := types.AmountFromWire(v); err == nil {
			return a, true
		}
	}
	return types.Amount{}, false
}

// Succeeded reports whether the transaction result is tesSUCCESS.
func (m *Metadata) Succeeded() bool {
	return m.TransactionResult == "tesSUCCESS"
}

// ResultClass returns the three letter class prefix of the result code.
func (m *Metadata) ResultClass() string {
	return ResultClass(m.TransactionResult)
}

// Claimed reports whether the transaction failed with a tec result, which
// still consumes the fee.
func (m *Metadata) Claimed() bool {
	return m.ResultClass() == "tec"
}

// FeeClaimed reports whether the fee was taken: on success and on every
// tec result.
func (m *Metadata) FeeClaimed() bool {
	class := m.ResultClass()
	return class == "tes" || class == "tec"
}

// ResultClass returns the class prefix of a result code such as "tec".
func ResultClass(code string) string {
	if len(code) < 3 {
		return ""
	}
	return strings.ToLower(code[:3])
}

// MarshalJSON writes the protocol field names.
func (n NodeEffect) MarshalJSON() ([]byte, error) {
	node, state, ok := n.AffectedNode()
	if !ok {
		return []byte("{}"), nil
	}
	return json.Marshal(map[string]*AffectedNode{state.String(): node})
}
