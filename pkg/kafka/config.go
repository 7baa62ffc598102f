package kafka

// Config holds the broker connection settings shared by the event producer
// and the payment instruction consumer.
type Config struct {
	// ConsumerGroup identifies this service's consumer group; all instances
	// of the origination service share one group so each instruction is
	// applied once.
	ConsumerGroup string

	// SASLMechanism is "PLAIN", "SCRAM-SHA-256" or "SCRAM-SHA-512".
	SASLMechanism string
	SASLUsername  string
	SASLPassword  string

	Brokers []string

	// TLS enables encrypted broker connections.
	TLS         bool
	SASLEnabled bool
}
