package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTransactionKind(t *testing.T) {
	kind, err := ParseTransactionKind("c")
	assert.NoError(t, err)
	assert.Equal(t, Credit, kind)

	kind, err = ParseTransactionKind("d")
	assert.NoError(t, err)
	assert.Equal(t, Debit, kind)

	for _, code := range []string{"", "x", "C", "D", "credit"} {
		_, err := ParseTransactionKind(code)
		assert.ErrorIs(t, err, ErrInvalidInput, "code %q", code)
	}
}

func TestTransactionKind_Code(t *testing.T) {
	assert.Equal(t, "c", Credit.Code())
	assert.Equal(t, "d", Debit.Code())
}

func TestTransactionKind_Valid(t *testing.T) {
	assert.True(t, Credit.Valid())
	assert.True(t, Debit.Valid())
	assert.False(t, TransactionKind("").Valid())
	assert.False(t, TransactionKind("x").Valid())
}

func TestNewRecordRef(t *testing.T) {
	ref := NewRecordRef()
	assert.True(t, strings.HasPrefix(ref, "txn_"))
	assert.NotEqual(t, ref, NewRecordRef())
}

func TestValidateDescription(t *testing.T) {
	assert.NoError(t, ValidateDescription("pix"))
	assert.NoError(t, ValidateDescription("1234567890"))
	// ten runes, more than ten bytes
	assert.NoError(t, ValidateDescription("çãoçãoçãoç"))

	assert.ErrorIs(t, ValidateDescription(""), ErrInvalidInput)
	assert.ErrorIs(t, ValidateDescription("12345678901"), ErrInvalidInput)
}

func TestTransactionRecord_AsStatementEntry(t *testing.T) {
	record := TransactionRecord{
		Amount:      1000,
		Kind:        Debit,
		Description: "pix",
	}
	entry := record.AsStatementEntry()
	assert.Equal(t, int64(1000), entry.Valor)
	assert.Equal(t, "d", entry.Tipo)
	assert.Equal(t, "pix", entry.Descricao)
	assert.Equal(t, record.CreatedAt, entry.RealizadoEm)
}
