package model

import "time"

// StatementBalance is the balance block of a statement: the position at the
// instant the statement was produced.
type StatementBalance struct {
	Total       int64     `json:"total"`
	DataExtrato time.Time `json:"data_extrato"`
	Limite      int64     `json:"limite"`
}

// StatementEntry is the projection of a TransactionRecord reported on a
// statement.
type StatementEntry struct {
	Valor       int64     `json:"valor"`
	Tipo        string    `json:"tipo"`
	Descricao   string    `json:"descricao"`
	RealizadoEm time.Time `json:"realizado_em"`
}

// Statement is the client-facing snapshot: the current balance plus up to
// StatementWindow recent transactions, newest first.
type Statement struct {
	Saldo             StatementBalance `json:"saldo"`
	UltimasTransacoes []StatementEntry `json:"ultimas_transacoes"`
}

// TransactionResult is the post-commit position returned for an accepted
// transaction.
type TransactionResult struct {
	Limite int64 `json:"limite"`
	Saldo  int64 `json:"saldo"`
}

// AsStatementEntry projects the record into its statement form, mapping the
// kind back to its wire code.
func (r TransactionRecord) AsStatementEntry() StatementEntry {
	return StatementEntry{
		Valor:       r.Amount,
		Tipo:        r.Kind.Code(),
		Descricao:   r.Description,
		RealizadoEm: r.CreatedAt,
	}
}
