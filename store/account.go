package store

import (
	"errors"

	"github.com/caixinha/caixinha/model"
)

// ErrAccountNotFound is returned for lookups and mutations against an
// account id that was never provisioned.
var ErrAccountNotFound = errors.New("cliente not found")

// AccountStore holds the account table for the process lifetime. Accounts
// are registered once at provisioning and never removed.
//
// The store does not lock on its own: the ledger serializes every access
// together with the log, so a balance update and its record land as one
// unit (see caixinha.Caixinha).
type AccountStore struct {
	accounts map[int64]*model.Account
}

// NewAccountStore provisions the given accounts.
func NewAccountStore(accounts ...model.Account) *AccountStore {
	s := &AccountStore{accounts: make(map[int64]*model.Account, len(accounts))}
	for _, a := range accounts {
		cp := a
		s.accounts[a.ID] = &cp
	}
	return s
}

// Get returns a snapshot copy of the account, so callers cannot reach the
// stored balance behind the ledger's back.
func (s *AccountStore) Get(id int64) (model.Account, error) {
	a, ok := s.accounts[id]
	if !ok {
		return model.Account{}, ErrAccountNotFound
	}
	return *a, nil
}

// ApplyCredit adds amount to the account balance and returns the new
// balance. Credits always succeed when the account exists.
func (s *AccountStore) ApplyCredit(id, amount int64) (int64, error) {
	a, ok := s.accounts[id]
	if !ok {
		return 0, ErrAccountNotFound
	}
	return a.ApplyCredit(amount), nil
}

// ApplyDebit subtracts amount from the account balance and returns the new
// balance. It returns model.ErrExceedsLimit, mutating nothing, when the
// candidate balance would breach the overdraft limit.
func (s *AccountStore) ApplyDebit(id, amount int64) (int64, error) {
	a, ok := s.accounts[id]
	if !ok {
		return 0, ErrAccountNotFound
	}
	return a.ApplyDebit(amount)
}
