package logging

import (
	"errors"
	"testing"
)

func TestFieldHelpers(t *testing.T) {
	if attr := Service("fraud"); attr.Key != FieldService || attr.Value.String() != "fraud" {
		t.Errorf("Service attr mismatch: %v", attr)
	}
	if attr := TransactionID("tx1"); attr.Key != FieldTransactionID || attr.Value.String() != "tx1" {
		t.Errorf("TransactionID attr mismatch: %v", attr)
	}
	if attr := FraudScore(0.9); attr.Key != FieldFraudScore || attr.Value.Float64() != 0.9 {
		t.Errorf("FraudScore attr mismatch: %v", attr)
	}
	if attr := Error(errors.New("boom")); attr.Key != FieldError || attr.Value.String() != "boom" {
		t.Errorf("Error attr mismatch: %v", attr)
	}
}
