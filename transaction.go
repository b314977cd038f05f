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
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/caixinha/caixinha/model"
)

// RecordTransaction validates and applies one credit or debit against the
// account, appends the resulting record to the log, and returns the
// post-transaction position.
//
// The resolve-commit-append sequence holds the ledger lock for its whole
// duration and releases it on every exit path. A rejected request leaves
// both the balance and the log untouched; there is no retry and no partial
// commit.
func (c *Caixinha) RecordTransaction(accountID int64, kind model.TransactionKind, amount int64, description string) (model.TransactionResult, error) {
	if !kind.Valid() {
		return model.TransactionResult{}, errors.Wrapf(model.ErrInvalidInput, "unknown transaction kind %q", kind)
	}
	if amount <= 0 {
		return model.TransactionResult{}, errors.Wrap(model.ErrInvalidInput, "valor must be a positive integer")
	}
	if err := model.ValidateDescription(description); err != nil {
		return model.TransactionResult{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	account, err := c.accounts.Get(accountID)
	if err != nil {
		return model.TransactionResult{}, err
	}

	var balance int64
	switch kind {
	case model.Credit:
		balance, err = c.accounts.ApplyCredit(accountID, amount)
	case model.Debit:
		balance, err = c.accounts.ApplyDebit(accountID, amount)
	}
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"cliente": accountID,
			"tipo":    kind.Code(),
			"valor":   amount,
		}).Debugf("transaction rejected: %v", err)
		return model.TransactionResult{}, err
	}

	c.log.Append(model.TransactionRecord{
		RecordRef:   model.NewRecordRef(),
		AccountID:   accountID,
		Amount:      amount,
		Kind:        kind,
		Description: description,
		CreatedAt:   c.now(),
	})

	return model.TransactionResult{Limite: account.Limit, Saldo: balance}, nil
}
