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
	"github.com/caixinha/caixinha/model"
)

// GetStatement returns the account's current position plus its most recent
// transactions, newest first. Balance and history are read under the same
// lock that transactions commit under, so the pair is always mutually
// consistent: a statement never shows a balance without its record, nor a
// record without its balance.
func (c *Caixinha) GetStatement(accountID int64) (model.Statement, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	account, err := c.accounts.Get(accountID)
	if err != nil {
		return model.Statement{}, err
	}

	recent := c.log.Recent(accountID, model.StatementWindow)
	entries := make([]model.StatementEntry, 0, len(recent))
	for _, record := range recent {
		entries = append(entries, record.AsStatementEntry())
	}

	return model.Statement{
		Saldo: model.StatementBalance{
			Total:       account.Balance,
			DataExtrato: c.now(),
			Limite:      account.Limit,
		},
		UltimasTransacoes: entries,
	}, nil
}
