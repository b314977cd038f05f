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
package api

import (
	"net/http"

	"github.com/sirupsen/logrus"

	model2 "github.com/caixinha/caixinha/api/model"
	"github.com/caixinha/caixinha/internal/apierror"

	"github.com/gin-gonic/gin"
)

// RecordTransaction handles POST /clientes/:id/transacoes.
// It binds the incoming JSON request to a RecordTransaction object,
// validates it, and hands the transaction to the ledger.
//
// Responses:
// - 200 OK: the post-transaction {limite, saldo} pair.
// - 404 Not Found: the client id is unknown.
// - 422 Unprocessable Entity: the body is invalid or the debit would breach the overdraft limit.
func (a Api) RecordTransaction(c *gin.Context) {
	accountID, err := clienteID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "cliente not found"})
		return
	}

	var newTransaction model2.RecordTransaction
	// Bind the incoming JSON request to the newTransaction model
	if err := c.ShouldBindJSON(&newTransaction); err != nil {
		logrus.Error(err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid input"})
		return
	}

	// Validate the transaction data
	if err := newTransaction.ValidateRecordTransaction(); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	// Record the transaction using the ledger engine
	resp, err := a.ledger.RecordTransaction(accountID, newTransaction.Kind(), newTransaction.Amount(), newTransaction.Descricao)
	if err != nil {
		apiErr := apierror.FromDomain(err)
		c.JSON(apierror.MapErrorToHTTPStatus(apiErr), apiErr)
		return
	}

	c.JSON(http.StatusOK, resp)
}
