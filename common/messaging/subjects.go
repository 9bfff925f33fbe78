package messaging

// Subject constants for the RiskStream message bus.
// Subjects follow the pattern: {domain}.{action}.
const (
	// SubjectTransactionsCreated carries JSON-serialized transactions
	// accepted by the ingress service.
	SubjectTransactionsCreated = "transactions.created"
)

// Stream and consumer names for durable, at-least-once delivery.
const (
	// StreamTransactions is the JetStream stream capturing transaction subjects.
	StreamTransactions = "TRANSACTIONS"

	// DurableFraudAnalysis is the durable consumer used by the fraud service.
	// All fraud service instances share it, so each message is delivered to
	// exactly one instance at a time.
	DurableFraudAnalysis = "fraud-analysis"
)
