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
package model

import (
	"encoding/json"
	"errors"

	"github.com/caixinha/caixinha/model"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

func positiveIntegerAmount(value interface{}) error {
	amount, ok := value.(json.Number)
	if !ok {
		return errors.New("valor must be an integer")
	}
	v, err := amount.Int64()
	if err != nil || v <= 0 {
		return errors.New("valor must be a positive integer")
	}
	return nil
}

func (t *RecordTransaction) ValidateRecordTransaction() error {
	return validation.ValidateStruct(t,
		validation.Field(&t.Valor, validation.Required, validation.By(positiveIntegerAmount)),
		validation.Field(&t.Tipo, validation.Required, validation.In("c", "d")),
		validation.Field(&t.Descricao, validation.Required, validation.RuneLength(1, model.DescriptionMaxLen)),
	)
}
