package api

import (
	"encoding/json"
	"fmt"
)

// RawCollection тело с коллекцией записей, которые декодируются по одной.
// Портал читает так push, клиент читает так pull.
type RawCollection struct {
	Message string            `json:"message,omitempty"`
	Users   []json.RawMessage `json:"users,omitempty"`
	Tickets []json.RawMessage `json:"tickets,omitempty"`
}

// RecordError ошибка декодирования одной записи коллекции
type RecordError struct {
	Err   error
	Index int
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d: %v", e.Index, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// DecodeRecords декодирует элементы по одному. Испорченная запись не
// прерывает остальные: она пропускается и попадает в список ошибок.
func DecodeRecords[T any](raw []json.RawMessage) ([]T, []*RecordError) {
	records := make([]T, 0, len(raw))
	var errs []*RecordError
	for i, item := range raw {
		var rec T
		if err := json.Unmarshal(item, &rec); err != nil {
			errs = append(errs, &RecordError{Index: i, Err: err})
			continue
		}
		records = append(records, rec)
	}
	return records, errs
}
