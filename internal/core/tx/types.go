package tx

import (
	"fmt"
	"slices"
)

// Type represents a transaction type code
type Type uint16

// Transaction type codes as assigned by rippled. The wallet pseudo types
// (SignIn, PaymentChannelAuthorize) never reach the ledger and live outside
// the protocol range.
const (
	TypePayment                      Type = 0  // ttPAYMENT
	TypeEscrowCreate                 Type = 1  // ttESCROW_CREATE
	TypeEscrowFinish                 Type = 2  // ttESCROW_FINISH
	TypeAccountSet                   Type = 3  // ttACCOUNT_SET
	TypeEscrowCancel                 Type = 4  // ttESCROW_CANCEL
	TypeRegularKeySet                Type = 5  // ttREGULAR_KEY_SET
	TypeOfferCreate                  Type = 7  // ttOFFER_CREATE
	TypeOfferCancel                  Type = 8  // ttOFFER_CANCEL
	TypeTicketCreate                 Type = 10 // ttTICKET_CREATE
	TypeSignerListSet                Type = 12 // ttSIGNER_LIST_SET
	TypePaymentChannelCreate         Type = 13 // ttPAYCHAN_CREATE
	TypePaymentChannelFund           Type = 14 // ttPAYCHAN_FUND
	TypePaymentChannelClaim          Type = 15 // ttPAYCHAN_CLAIM
	TypeCheckCreate                  Type = 16 // ttCHECK_CREATE
	TypeCheckCash                    Type = 17 // ttCHECK_CASH
	TypeCheckCancel                  Type = 18 // ttCHECK_CANCEL
	TypeDepositPreauth               Type = 19 // ttDEPOSIT_PREAUTH
	TypeTrustSet                     Type = 20 // ttTRUST_SET
	TypeAccountDelete                Type = 21 // ttACCOUNT_DELETE
	TypeNFTokenMint                  Type = 25 // ttNFTOKEN_MINT
	TypeNFTokenBurn                  Type = 26 // ttNFTOKEN_BURN
	TypeNFTokenCreateOffer           Type = 27 // ttNFTOKEN_CREATE_OFFER
	TypeNFTokenCancelOffer           Type = 28 // ttNFTOKEN_CANCEL_OFFER
	TypeNFTokenAcceptOffer           Type = 29 // ttNFTOKEN_ACCEPT_OFFER
	TypeClawback                     Type = 30 // ttCLAWBACK
	TypeAMMClawback                  Type = 31 // ttAMM_CLAWBACK
	TypeAMMCreate                    Type = 35 // ttAMM_CREATE
	TypeAMMDeposit                   Type = 36 // ttAMM_DEPOSIT
	TypeAMMWithdraw                  Type = 37 // ttAMM_WITHDRAW
	TypeAMMVote                      Type = 38 // ttAMM_VOTE
	TypeAMMBid                       Type = 39 // ttAMM_BID
	TypeAMMDelete                    Type = 40 // ttAMM_DELETE
	TypeXChainCreateClaimID          Type = 41 // ttXCHAIN_CREATE_CLAIM_ID
	TypeXChainCommit                 Type = 42 // ttXCHAIN_COMMIT
	TypeXChainClaim                  Type = 43 // ttXCHAIN_CLAIM
	TypeXChainAccountCreateCommit    Type = 44 // ttXCHAIN_ACCOUNT_CREATE_COMMIT
	TypeXChainAddClaimAttestation    Type = 45 // ttXCHAIN_ADD_CLAIM_ATTESTATION
	TypeXChainAddAccountCreateAttest Type = 46 // ttXCHAIN_ADD_ACCOUNT_CREATE_ATTESTATION
	TypeXChainModifyBridge           Type = 47 // ttXCHAIN_MODIFY_BRIDGE
	TypeXChainCreateBridge           Type = 48 // ttXCHAIN_CREATE_BRIDGE
	TypeDIDSet                       Type = 49 // ttDID_SET
	TypeDIDDelete                    Type = 50 // ttDID_DELETE
	TypeOracleSet                    Type = 51 // ttORACLE_SET
	TypeOracleDelete                 Type = 52 // ttORACLE_DELETE
	TypeMPTokenIssuanceCreate        Type = 54 // ttMPTOKEN_ISSUANCE_CREATE
	TypeMPTokenIssuanceDestroy       Type = 55 // ttMPTOKEN_ISSUANCE_DESTROY
	TypeMPTokenIssuanceSet           Type = 56 // ttMPTOKEN_ISSUANCE_SET
	TypeMPTokenAuthorize             Type = 57 // ttMPTOKEN_AUTHORIZE
	TypeCredentialCreate             Type = 58 // ttCREDENTIAL_CREATE
	TypeCredentialAccept             Type = 59 // ttCREDENTIAL_ACCEPT
	TypeCredentialDelete             Type = 60 // ttCREDENTIAL_DELETE
	TypeNFTokenModify                Type = 61 // ttNFTOKEN_MODIFY

	// System-generated transaction types
	TypeAmendment Type = 100 // ttAMENDMENT
	TypeFee       Type = 101 // ttFEE
	TypeUNLModify Type = 102 // ttUNL_MODIFY

	// Wallet pseudo-transactions
	TypeSignIn                  Type = 0xFF00
	TypePaymentChannelAuthorize Type = 0xFF01

	// TypeUnknown marks a transaction whose TransactionType is not recognized.
	TypeUnknown Type = 0xFFFF
)

var typeNames = map[Type]string{
	TypePayment:                      "Payment",
	TypeEscrowCreate:                 "EscrowCreate",
	TypeEscrowFinish:                 "EscrowFinish",
	TypeAccountSet:                   "AccountSet",
	TypeEscrowCancel:                 "EscrowCancel",
	TypeRegularKeySet:                "SetRegularKey",
	TypeOfferCreate:                  "OfferCreate",
	TypeOfferCancel:                  "OfferCancel",
	TypeTicketCreate:                 "TicketCreate",
	TypeSignerListSet:                "SignerListSet",
	TypePaymentChannelCreate:         "PaymentChannelCreate",
	TypePaymentChannelFund:           "PaymentChannelFund",
	TypePaymentChannelClaim:          "PaymentChannelClaim",
	TypeCheckCreate:                  "CheckCreate",
	TypeCheckCash:                    "CheckCash",
	TypeCheckCancel:                  "CheckCancel",
	TypeDepositPreauth:               "DepositPreauth",
	TypeTrustSet:                     "TrustSet",
	TypeAccountDelete:                "AccountDelete",
	TypeNFTokenMint:                  "NFTokenMint",
	TypeNFTokenBurn:                  "NFTokenBurn",
	TypeNFTokenCreateOffer:           "NFTokenCreateOffer",
	TypeNFTokenCancelOffer:           "NFTokenCancelOffer",
	TypeNFTokenAcceptOffer:           "NFTokenAcceptOffer",
	TypeNFTokenModify:                "NFTokenModify",
	TypeClawback:                     "Clawback",
	TypeAMMClawback:                  "AMMClawback",
	TypeAMMCreate:                    "AMMCreate",
	TypeAMMDeposit:                   "AMMDeposit",
	TypeAMMWithdraw:                  "AMMWithdraw",
	TypeAMMVote:                      "AMMVote",
	TypeAMMBid:                       "AMMBid",
	TypeAMMDelete:                    "AMMDelete",
	TypeXChainCreateClaimID:          "XChainCreateClaimID",
	TypeXChainCommit:                 "XChainCommit",
	TypeXChainClaim:                  "XChainClaim",
	TypeXChainAccountCreateCommit:    "XChainAccountCreateCommit",
	TypeXChainAddClaimAttestation:    "XChainAddClaimAttestation",
	TypeXChainAddAccountCreateAttest: "XChainAddAccountCreateAttestation",
	TypeXChainModifyBridge:           "XChainModifyBridge",
	TypeXChainCreateBridge:           "XChainCreateBridge",
	TypeDIDSet:                       "DIDSet",
	TypeDIDDelete:                    "DIDDelete",
	TypeOracleSet:                    "OracleSet",
	TypeOracleDelete:                 "OracleDelete",
	TypeMPTokenIssuanceCreate:        "MPTokenIssuanceCreate",
	TypeMPTokenIssuanceDestroy:       "MPTokenIssuanceDestroy",
	TypeMPTokenIssuanceSet:           "MPTokenIssuanceSet",
	TypeMPTokenAuthorize:             "MPTokenAuthorize",
	TypeCredentialCreate:             "CredentialCreate",
	TypeCredentialAccept:             "CredentialAccept",
	TypeCredentialDelete:             "CredentialDelete",
	TypeAmendment:                    "EnableAmendment",
	TypeFee:                          "SetFee",
	TypeUNLModify:                    "UNLModify",
	TypeSignIn:                       "SignIn",
	TypePaymentChannelAuthorize:      "PaymentChannelAuthorize",
}

var typeNameMap = func() map[string]Type {
	m := make(map[string]Type, len(typeNames))
	for t, name := range typeNames {
		m[name] = t
	}
	return m
}()

// String returns the string name of the transaction type
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	if t == TypeUnknown {
		return "Unknown"
	}
	return fmt.Sprintf("Unknown(%d)", t)
}

// TypeFromName returns the transaction type for a given name
func TypeFromName(name string) (Type, bool) {
	t, ok := typeNameMap[name]
	return t, ok
}

// IsPseudo reports whether t is a wallet pseudo-transaction: a signable
// request that is never submitted to the ledger.
func (t Type) IsPseudo() bool {
	return t == TypeSignIn || t == TypePaymentChannelAuthorize
}

// IsSystem returns true for ledger-generated transactions that no account
// ever signs.
func (t Type) IsSystem() bool {
	return t == TypeAmendment || t == TypeFee || t == TypeUNLModify
}

// AllTypes returns every recognized type, genuine and pseudo, in code order.
func AllTypes() []Type {
	out := make([]Type, 0, len(typeNames))
	for t := range typeNames {
		out = append(out, t)
	}
	slices.Sort(out)
	return out
}
