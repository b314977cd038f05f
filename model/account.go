package model

import "errors"

// ErrExceedsLimit is returned when a debit would push the balance past the
// account's overdraft limit. The account is left untouched.
var ErrExceedsLimit = errors.New("transaction exceeds overdraft limit")

// Account holds the authoritative position of a single client account. The
// id and overdraft limit are fixed at provisioning; the balance changes only
// through ApplyCredit and ApplyDebit.
//
// Account carries no lock of its own. The owning ledger serializes access,
// which makes the check-then-commit inside ApplyDebit atomic relative to
// every other mutation on the same account.
type Account struct {
	ID      int64 `json:"id"`
	Limit   int64 `json:"limite"`
	Balance int64 `json:"saldo"`
}

// ApplyCredit adds amount to the balance and returns the new balance.
// Credits are never bounded by the overdraft limit.
func (a *Account) ApplyCredit(amount int64) int64 {
	a.Balance += amount
	return a.Balance
}

// ApplyDebit subtracts amount from the balance, keeping the invariant
// balance >= -limit. When the candidate balance would breach the limit it
// returns ErrExceedsLimit and commits nothing.
func (a *Account) ApplyDebit(amount int64) (int64, error) {
	candidate := a.Balance - amount
	if candidate < -a.Limit {
		return a.Balance, ErrExceedsLimit
	}
	a.Balance = candidate
	return a.Balance, nil
}

// WithinLimit reports whether the account currently honors balance >= -limit.
func (a *Account) WithinLimit() bool {
	return a.Balance >= -a.Limit
}
