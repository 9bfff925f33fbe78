// Package models defines the transaction model shared by the ingress and
// fraud analysis services.
package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Transaction is a financial event record. ID, Amount and Timestamp are
// required; every other attribute submitted by the client is carried
// verbatim in Extras and never inspected.
type Transaction struct {
	ID        string
	Amount    float64
	Timestamp string

	// Extras holds additional attributes of unknown shape.
	Extras map[string]any
}

// ValidationError reports the required fields missing from a submitted
// record. It is terminal: incomplete transactions are never retried.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "Missing required transaction fields: " + strings.Join(e.Missing, ", ")
}

// DecodeRecord parses raw JSON into an untyped record. A decode error means
// the payload is malformed, which is distinct from a validation failure.
func DecodeRecord(data []byte) (map[string]any, error) {
	var record map[string]any
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("decode transaction payload: %w", err)
	}
	return record, nil
}

// FromRecord checks an untyped record for the required fields and returns a
// typed Transaction carrying all original attributes. A field is present when
// the key appeared with a usable value: id and timestamp must be non-empty
// strings, amount must be a number. A zero amount is valid.
//
// On failure the ValidationError lists every missing field, in the order
// id, amount, timestamp. No partial transaction is ever returned.
func FromRecord(record map[string]any) (*Transaction, *ValidationError) {
	var missing []string

	id, ok := record["id"].(string)
	if !ok || id == "" {
		missing = append(missing, "id")
	}

	amount, ok := numeric(record["amount"])
	if !ok {
		missing = append(missing, "amount")
	}

	timestamp, ok := record["timestamp"].(string)
	if !ok || timestamp == "" {
		missing = append(missing, "timestamp")
	}

	if len(missing) > 0 {
		return nil, &ValidationError{Missing: missing}
	}

	txn := &Transaction{
		ID:        id,
		Amount:    amount,
		Timestamp: timestamp,
	}
	for k, v := range record {
		switch k {
		case "id", "amount", "timestamp":
		default:
			if txn.Extras == nil {
				txn.Extras = make(map[string]any)
			}
			txn.Extras[k] = v
		}
	}
	return txn, nil
}

// numeric accepts the JSON number representations a decoded record can carry.
func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// MarshalJSON flattens the required fields and extras into a single object,
// matching the shape the client originally submitted.
func (t *Transaction) MarshalJSON() ([]byte, error) {
	record := make(map[string]any, len(t.Extras)+3)
	for k, v := range t.Extras {
		record[k] = v
	}
	record["id"] = t.ID
	record["amount"] = t.Amount
	record["timestamp"] = t.Timestamp
	return json.Marshal(record)
}

// UnmarshalJSON decodes and validates in one step. It fails on malformed
// JSON and on records missing required fields, so a Transaction in Go code
// is always complete.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	record, err := DecodeRecord(data)
	if err != nil {
		return err
	}
	txn, verr := FromRecord(record)
	if verr != nil {
		return verr
	}
	*t = *txn
	return nil
}
