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
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/caixinha/caixinha/model"
)

func TestGetStatementAPI_EmptyAccount(t *testing.T) {
	router, _ := setupRouter()

	var response model.Statement
	resp, err := SetUpTestRequest(TestRequest{
		Response: &response,
		Method:   http.MethodGet,
		Route:    "/clientes/1/extrato",
		Router:   router,
	})
	assert.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, int64(0), response.Saldo.Total)
	assert.Equal(t, int64(100000), response.Saldo.Limite)
	assert.Empty(t, response.UltimasTransacoes)
}

func TestGetStatementAPI_EmptyHistoryIsArray(t *testing.T) {
	router, _ := setupRouter()

	var raw map[string]json.RawMessage
	resp, err := SetUpTestRequest(TestRequest{
		Response: &raw,
		Method:   http.MethodGet,
		Route:    "/clientes/1/extrato",
		Router:   router,
	})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Code)

	// ultimas_transacoes must serialize as [], never null
	assert.Equal(t, "[]", string(raw["ultimas_transacoes"]))
}

func TestGetStatementAPI_AfterTransactions(t *testing.T) {
	router, _ := setupRouter()

	for i := 1; i <= 12; i++ {
		payload := fmt.Sprintf(`{"valor": %d, "tipo": "c", "descricao": "dep %d"}`, i, i)
		var ignored map[string]interface{}
		resp, err := SetUpTestRequest(TestRequest{
			Payload:  strings.NewReader(payload),
			Response: &ignored,
			Method:   http.MethodPost,
			Route:    "/clientes/1/transacoes",
			Router:   router,
		})
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.Code)
	}

	var response model.Statement
	resp, err := SetUpTestRequest(TestRequest{
		Response: &response,
		Method:   http.MethodGet,
		Route:    "/clientes/1/extrato",
		Router:   router,
	})
	assert.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, int64(78), response.Saldo.Total) // 1+2+...+12
	assert.Len(t, response.UltimasTransacoes, model.StatementWindow)
	assert.Equal(t, int64(12), response.UltimasTransacoes[0].Valor)
	assert.Equal(t, int64(3), response.UltimasTransacoes[9].Valor)
}

func TestGetStatementAPI_UnknownClient(t *testing.T) {
	router, _ := setupRouter()

	var response map[string]interface{}
	resp, err := SetUpTestRequest(TestRequest{
		Response: &response,
		Method:   http.MethodGet,
		Route:    "/clientes/999/extrato",
		Router:   router,
	})
	assert.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestGetStatementAPI_NonNumericClient(t *testing.T) {
	router, _ := setupRouter()

	var response map[string]interface{}
	resp, err := SetUpTestRequest(TestRequest{
		Response: &response,
		Method:   http.MethodGet,
		Route:    "/clientes/abc/extrato",
		Router:   router,
	})
	assert.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
