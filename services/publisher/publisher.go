package publisher

// Publisher feeds successfully extracted listings to downstream consumers
// (the household-finance front end reads them off the stream).
type Publisher interface {
	// Publish publishes one serialized listing under its source portal key
	Publish(source string, payload []byte) error

	// TrimStreams trims all streams to the configured maximum length
	TrimStreams() error

	// Close closes the publisher connection
	Close() error
}
