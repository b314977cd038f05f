package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/caixinha/caixinha/model"
)

func TestAccountStore_Get(t *testing.T) {
	s := NewAccountStore(model.Account{ID: 1, Limit: 100000})

	account, err := s.Get(1)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), account.ID)
	assert.Equal(t, int64(100000), account.Limit)

	_, err = s.Get(999)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestAccountStore_GetReturnsSnapshot(t *testing.T) {
	s := NewAccountStore(model.Account{ID: 1, Limit: 100000})

	snapshot, err := s.Get(1)
	assert.NoError(t, err)
	snapshot.Balance = 99999

	// mutating the snapshot must not reach the stored account
	fresh, err := s.Get(1)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), fresh.Balance)
}

func TestAccountStore_ApplyCredit(t *testing.T) {
	s := NewAccountStore(model.Account{ID: 1, Limit: 100000})

	balance, err := s.ApplyCredit(1, 5000)
	assert.NoError(t, err)
	assert.Equal(t, int64(5000), balance)

	_, err = s.ApplyCredit(999, 5000)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestAccountStore_ApplyDebit(t *testing.T) {
	s := NewAccountStore(model.Account{ID: 1, Limit: 100000})

	balance, err := s.ApplyDebit(1, 1000)
	assert.NoError(t, err)
	assert.Equal(t, int64(-1000), balance)

	_, err = s.ApplyDebit(1, 200000)
	assert.ErrorIs(t, err, model.ErrExceedsLimit)

	account, err := s.Get(1)
	assert.NoError(t, err)
	assert.Equal(t, int64(-1000), account.Balance)

	_, err = s.ApplyDebit(999, 1000)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestLedgerLog_AppendAssignsSequence(t *testing.T) {
	l := NewLedgerLog()

	first := l.Append(model.TransactionRecord{AccountID: 1, Amount: 100, Kind: model.Credit})
	second := l.Append(model.TransactionRecord{AccountID: 2, Amount: 200, Kind: model.Debit})
	third := l.Append(model.TransactionRecord{AccountID: 1, Amount: 300, Kind: model.Credit})

	assert.Equal(t, int64(1), first.SequenceID)
	assert.Equal(t, int64(2), second.SequenceID)
	assert.Equal(t, int64(3), third.SequenceID)

	assert.Equal(t, 2, l.Size(1))
	assert.Equal(t, 1, l.Size(2))
}

func TestLedgerLog_RecentOrdering(t *testing.T) {
	l := NewLedgerLog()
	for i := int64(1); i <= 15; i++ {
		l.Append(model.TransactionRecord{AccountID: 1, Amount: i, Kind: model.Credit})
	}

	recent := l.Recent(1, 10)
	assert.Len(t, recent, 10)
	// newest first: amounts 15 down to 6
	for i, record := range recent {
		assert.Equal(t, int64(15-i), record.Amount)
	}
}

func TestLedgerLog_RecentShortHistory(t *testing.T) {
	l := NewLedgerLog()
	l.Append(model.TransactionRecord{AccountID: 1, Amount: 100, Kind: model.Credit})

	recent := l.Recent(1, 10)
	assert.Len(t, recent, 1)
}

func TestLedgerLog_RecentEmptyAccount(t *testing.T) {
	l := NewLedgerLog()

	recent := l.Recent(42, 10)
	assert.NotNil(t, recent)
	assert.Empty(t, recent)
}

func TestLedgerLog_RecentReturnsCopy(t *testing.T) {
	l := NewLedgerLog()
	l.Append(model.TransactionRecord{AccountID: 1, Amount: 100, Kind: model.Credit})

	recent := l.Recent(1, 10)
	recent[0].Amount = 999

	again := l.Recent(1, 10)
	assert.Equal(t, int64(100), again[0].Amount)
}
