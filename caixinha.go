/*
Copyright 2026 Caixinha Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package caixinha

import (
	"sync"
	"time"

	"github.com/caixinha/caixinha/model"
	"github.com/caixinha/caixinha/store"
)

// Caixinha is the ledger engine. It owns the account table and the
// transaction log and is the only component allowed to mutate them.
//
// One mutex guards both stores. A transaction's validate-commit-append
// sequence and a statement's balance+history read each run inside a single
// critical section, so no caller can observe a balance update without its
// record, or a torn mix of pre- and post-transaction state.
type Caixinha struct {
	mu       sync.Mutex
	accounts *store.AccountStore
	log      *store.LedgerLog

	// now stamps records and statements; tests swap in a fixed clock.
	now func() time.Time
}

// NewCaixinha builds a ledger holding the fixed provisioning list: five
// accounts with distinct overdraft limits, every balance starting at zero.
func NewCaixinha() *Caixinha {
	return NewWithAccounts(DefaultAccounts()...)
}

// NewWithAccounts builds a ledger holding the given accounts instead of the
// default provisioning list.
func NewWithAccounts(accounts ...model.Account) *Caixinha {
	return &Caixinha{
		accounts: store.NewAccountStore(accounts...),
		log:      store.NewLedgerLog(),
		now:      time.Now,
	}
}

// SetClock replaces the wall clock used for record and statement
// timestamps. Tests install a fixed clock so timestamps assert exactly.
func (c *Caixinha) SetClock(now func() time.Time) {
	c.now = now
}

// DefaultAccounts is the provisioning list the ledger boots with. Limits
// follow the published contract and are not configurable at runtime.
func DefaultAccounts() []model.Account {
	return []model.Account{
		{ID: 1, Limit: 100000},
		{ID: 2, Limit: 80000},
		{ID: 3, Limit: 1000000},
		{ID: 4, Limit: 10000000},
		{ID: 5, Limit: 500000},
	}
}
