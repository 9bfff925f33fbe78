package logging

import "log/slog"

// Common field names for consistent logging across services.
const (
	FieldService       = "service"
	FieldTransactionID = "transaction_id"
	FieldFraudScore    = "fraud_score"
	FieldThreshold     = "threshold"
	FieldSubject       = "subject"
	FieldEntity        = "entity"
	FieldMethod        = "method"
	FieldPath          = "path"
	FieldStatus        = "status"
	FieldDuration      = "duration_ms"
	FieldError         = "error"
)

// Service returns a slog attribute for the service name.
func Service(name string) slog.Attr {
	return slog.String(FieldService, name)
}

// TransactionID returns a slog attribute for a transaction ID.
func TransactionID(id string) slog.Attr {
	return slog.String(FieldTransactionID, id)
}

// FraudScore returns a slog attribute for a fraud score.
func FraudScore(score float64) slog.Attr {
	return slog.Float64(FieldFraudScore, score)
}

// Threshold returns a slog attribute for the fraud threshold.
func Threshold(threshold float64) slog.Attr {
	return slog.Float64(FieldThreshold, threshold)
}

// Subject returns a slog attribute for a message bus subject.
func Subject(subject string) slog.Attr {
	return slog.String(FieldSubject, subject)
}

// Entity returns a slog attribute for a related entity name.
func Entity(name string) slog.Attr {
	return slog.String(FieldEntity, name)
}

// Method returns a slog attribute for the HTTP method.
func Method(method string) slog.Attr {
	return slog.String(FieldMethod, method)
}

// Path returns a slog attribute for the HTTP path.
func Path(path string) slog.Attr {
	return slog.String(FieldPath, path)
}

// Status returns a slog attribute for the HTTP status code.
func Status(code int) slog.Attr {
	return slog.Int(FieldStatus, code)
}

// Duration returns a slog attribute for duration in milliseconds.
func Duration(ms int64) slog.Attr {
	return slog.Int64(FieldDuration, ms)
}

// Error returns a slog attribute for an error.
func Error(err error) slog.Attr {
	return slog.String(FieldError, err.Error())
}
