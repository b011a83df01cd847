package messagequeue

// MessageQueue defines the interface for message queue services.
type MessageQueue interface {
	Publish(queueName string, body []byte) error
	Close() error
}

// NoopQueue discards every message. It stands in for a broker when no
// AMQP URL is configured (synthetic sessions, tests).
type NoopQueue struct{}

func (NoopQueue) Publish(string, []byte) error { return nil }
func (NoopQueue) Close() error                 { return nil }
