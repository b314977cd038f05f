package model

import (
	"encoding/json"

	"github.com/caixinha/caixinha/model"
)

// RecordTransaction is the POST /clientes/:id/transacoes payload. Valor is
// decoded as json.Number so a fractional or quoted amount is rejected as
// invalid input instead of being truncated.
type RecordTransaction struct {
	Valor     json.Number `json:"valor"`
	Tipo      string      `json:"tipo"`
	Descricao string      `json:"descricao"`
}

// Amount returns the integer amount. Only meaningful after
// ValidateRecordTransaction has accepted the payload.
func (t *RecordTransaction) Amount() int64 {
	v, _ := t.Valor.Int64()
	return v
}

// Kind returns the domain transaction kind for the wire tipo. Only
// meaningful after ValidateRecordTransaction has accepted the payload.
func (t *RecordTransaction) Kind() model.TransactionKind {
	kind, _ := model.ParseTransactionKind(t.Tipo)
	return kind
}
