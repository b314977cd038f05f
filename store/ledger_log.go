package store

import (
	"sync/atomic"

	"github.com/caixinha/caixinha/model"
)

// LedgerLog is the append-only transaction history, indexed per account.
// Entries are never mutated or removed once appended.
//
// Like AccountStore, the log relies on the owning ledger for serialization
// of appends against reads.
type LedgerLog struct {
	seq       atomic.Int64
	byAccount map[int64][]model.TransactionRecord
}

// NewLedgerLog returns an empty log.
func NewLedgerLog() *LedgerLog {
	return &LedgerLog{byAccount: make(map[int64][]model.TransactionRecord)}
}

// Append assigns the next sequence id and stores the record, returning the
// stored form. Sequence ids come from an atomic counter, so they stay
// unique and monotonically increasing even if appends ever race; they are
// never derived from the log length.
func (l *LedgerLog) Append(record model.TransactionRecord) model.TransactionRecord {
	record.SequenceID = l.seq.Add(1)
	l.byAccount[record.AccountID] = append(l.byAccount[record.AccountID], record)
	return record
}

// Recent returns up to limit records for the account, most recent first.
// The result is a fresh copy reflecting every append that happened before
// the call; an account with no history yields an empty slice, not an error.
func (l *LedgerLog) Recent(accountID int64, limit int) []model.TransactionRecord {
	history := l.byAccount[accountID]
	if limit > len(history) {
		limit = len(history)
	}
	out := make([]model.TransactionRecord, 0, limit)
	for i := len(history) - 1; i >= len(history)-limit; i-- {
		out = append(out, history[i])
	}
	return out
}

// Size returns the number of records held for the account.
func (l *LedgerLog) Size(accountID int64) int {
	return len(l.byAccount[accountID])
}
