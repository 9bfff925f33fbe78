// Package messaging provides abstractions for message broker communication.
// Services publish through these interfaces without coupling to a specific
// broker implementation; durable consumption goes through the JetStream
// layer directly, since at-least-once delivery is broker-specific.
package messaging

import "context"

// Publisher publishes messages to subjects.
type Publisher interface {
	// Publish sends a message to the specified subject. Durability depends
	// on the implementation; the JetStream client blocks for a server ack.
	Publish(ctx context.Context, subject string, data []byte) error

	// Close releases any resources held by the publisher.
	Close() error
}

// Client is a broker connection with lifecycle control beyond publishing.
type Client interface {
	Publisher

	// Drain gracefully closes the connection, letting in-flight messages finish.
	Drain() error

	// IsConnected reports whether the client is connected to the broker.
	IsConnected() bool
}
