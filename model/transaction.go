package model

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	// DescriptionMaxLen bounds the free-text description on every transaction.
	DescriptionMaxLen = 10

	// StatementWindow is how many records a statement reports, newest first.
	StatementWindow = 10
)

// ErrInvalidInput is returned for malformed caller input: an unknown
// transaction kind, a non-positive amount, or an out-of-bounds description.
var ErrInvalidInput = errors.New("invalid transaction input")

// TransactionKind tags a record as a credit or a debit. On the wire the kind
// travels as the single-letter codes "c" and "d".
type TransactionKind string

const (
	Credit TransactionKind = "credit"
	Debit  TransactionKind = "debit"
)

// ParseTransactionKind maps a wire code to its kind.
func ParseTransactionKind(code string) (TransactionKind, error) {
	switch code {
	case "c":
		return Credit, nil
	case "d":
		return Debit, nil
	}
	return "", fmt.Errorf("%w: unknown kind %q", ErrInvalidInput, code)
}

// Code returns the wire form of the kind.
func (k TransactionKind) Code() string {
	if k == Debit {
		return "d"
	}
	return "c"
}

// Valid reports whether the kind is one of the two known kinds.
func (k TransactionKind) Valid() bool {
	return k == Credit || k == Debit
}

// TransactionRecord is one committed entry in the ledger log. Records are
// created exactly once, when a transaction is accepted, and never mutated.
// The amount is always a positive magnitude; the kind carries the sign.
type TransactionRecord struct {
	SequenceID  int64           `json:"-"`
	RecordRef   string          `json:"id"`
	AccountID   int64           `json:"cliente_id"`
	Amount      int64           `json:"valor"`
	Kind        TransactionKind `json:"tipo"`
	Description string          `json:"descricao"`
	CreatedAt   time.Time       `json:"realizada_em"`
}

// NewRecordRef returns a unique external reference for a ledger record: a
// "txn_" prefixed UUID. Sequence ids order the log; the ref is what
// integrators store and quote back.
func NewRecordRef() string {
	return fmt.Sprintf("txn_%s", uuid.New())
}

// ValidateDescription enforces the 1 to DescriptionMaxLen character bound,
// counting runes rather than bytes.
func ValidateDescription(description string) error {
	n := utf8.RuneCountInString(description)
	if n < 1 || n > DescriptionMaxLen {
		return fmt.Errorf("%w: descricao must be 1 to %d characters", ErrInvalidInput, DescriptionMaxLen)
	}
	return nil
}
