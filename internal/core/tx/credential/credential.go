// Package credential implements the credential transactions.
package credential

import (
	"github.com/LeJamon/goXRPLwallet/internal/core/tx"
)

func init() {
	tx.Register(tx.TypeCredentialCreate, func() tx.Transaction {
		return &CredentialCreate{BaseTx: *tx.NewBaseTx(tx.TypeCredentialCreate, "")}
	})
	tx.Register(tx.TypeCredentialAccept, func() tx.Transaction {
		return &CredentialAccept{BaseTx: *tx.NewBaseTx(tx.TypeCredentialAccept, "")}
	})
	tx.Register(tx.TypeCredentialDelete, func() tx.Transaction {
		return &CredentialDelete{BaseTx: *tx.NewBaseTx(tx.TypeCredentialDelete, "")}
	})
}

// CredentialCreate issues a credential to a subject.
type CredentialCreate struct {
	tx.BaseTx

	Subject        string  `xrpl:"Subject"`
	CredentialType string  `xrpl:"CredentialType"`
	Expiration     *uint32 `xrpl:"Expiration,omitempty"`
	URI            string  `xrpl:"URI,omitempty"`
}

// NewCredentialCreate creates a new CredentialCreate transaction
func NewCredentialCreate(account, subject, credentialType string) *CredentialCreate {
	return &CredentialCreate{BaseTx: *tx.NewBaseTx(tx.TypeCredentialCreate, account), Subject: subject, CredentialType: credentialType}
}

// CredentialAccept accepts a credential issued to the account.
type CredentialAccept struct {
	tx.BaseTx

	Issuer         string `xrpl:"Issuer"`
	CredentialType string `xrpl:"CredentialType"`
}

// NewCredentialAccept creates a new CredentialAccept transaction
func NewCredentialAccept(account, issuer, credentialType string) *CredentialAccept {
	return &CredentialAccept{BaseTx: *tx.NewBaseTx(tx.TypeCredentialAccept, account), Issuer: issuer, CredentialType: credentialType}
}

// CredentialDelete removes a credential; either party may delete it.
type CredentialDelete struct {
	tx.BaseTx

	Subject        string `xrpl:"Subject,omitempty"`
	Issuer         string `xrpl:"Issuer,omitempty"`
	CredentialType string `xrpl:"CredentialType"`
}

// NewCredentialDelete creates a new CredentialDelete transaction
func NewCredentialDelete(account, credentialType string) *CredentialDelete {
	return &CredentialDelete{BaseTx: *tx.NewBaseTx(tx.TypeCredentialDelete, account), CredentialType: credentialType}
}
