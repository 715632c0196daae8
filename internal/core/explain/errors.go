package explain

import (
	"errors"
	"fmt"

	"github.com/LeJamon/goXRPLwallet/internal/core/tx"
)

// ErrUnsupportedOperation is returned for queries a variant does not
// support, such as describing a pseudo-transaction.
var ErrUnsupportedOperation = tx.ErrUnsupportedOperation

// ErrAccountNotFound is returned by a LedgerLookup for accounts that do not
// exist in the ledger.
var ErrAccountNotFound = errors.New("account not found")

// ValidationKind names a business rule a transaction violates.
type ValidationKind string

const (
	KindInsufficientBalance    ValidationKind = "InsufficientBalance"
	KindMissingTrustLine       ValidationKind = "MissingTrustLine"
	KindTrustLineLimitExceeded ValidationKind = "TrustLineLimitExceeded"
	KindInvalidAmount          ValidationKind = "InvalidAmount"
	KindSelfPayment            ValidationKind = "SelfPayment"
	KindDestinationNotFound    ValidationKind = "DestinationNotFound"
	KindDestinationTagRequired ValidationKind = "DestinationTagRequired"
)

// ValidationError is a rule violation found by Validate. Its message is
// meant for the end user.
type ValidationError struct {
	Kind    ValidationKind
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func invalid(kind ValidationKind, format string, args ...any) error {
	return &ValidationError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// LookupError reports a failed ledger lookup. Callers may retry.
type LookupError struct {
	Op      string
	Account string
	Err     error
}

func (e *LookupError) Error() string {
	if e.Account == "" {
		return fmt.Sprintf("lookup %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("lookup %s %s: %v", e.Op, e.Account, e.Err)
}

func (e *LookupError) Unwrap() error { return e.Err }

// IsKind reports whether err is a ValidationError of the given kind.
func IsKind(err error, kind ValidationKind) bool {
	var v *ValidationError
	return errors.As(err, &v) && v.Kind == kind
}
