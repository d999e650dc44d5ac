package pubsub

import (
	"context"
	"fmt"

	"cloud.google.com/go/pubsub"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
	"google.golang.org/api/option"
)

// ContentType is set as an attribute on every published message.
const ContentType = "application/msgpack"

// New connects to Pub/Sub in projectID. Topic handles are created lazily,
// one per event type, and stopped by Close.
func New(ctx context.Context, projectID string, opts ...option.ClientOption) (PubSubClient, error) {
	pubSubC, err := pubsub.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create pubsub client: %w", err)
	}
	return &client{
		client: pubSubC,
		topics: make(map[EventType]*pubsub.Topic),
	}, nil
}

func (c *client) topic(event EventType) *pubsub.Topic {
	c.mu.Lock()
	defer c.mu.Unlock()
	t, ok := c.topics[event]
	if !ok {
		t = c.client.Topic(string(event))
		c.topics[event] = t
	}
	return t
}

// Close flushes pending publishes and releases the connection.
func (c *client) Close() {
	c.mu.Lock()
	for _, t := range c.topics {
		t.Stop()
	}
	c.topics = map[EventType]*pubsub.Topic{}
	c.mu.Unlock()

	if err := c.client.Close(); err != nil {
		log.Error("Failed to close pubsub client", "error", err)
	}
}

// SendMessage encodes data with MessagePack and publishes it on the topic
// named after event, blocking until the server acknowledges it.
func (c *client) SendMessage(ctx context.Context, event EventType, data any) error {
	payload, err := msgpack.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode %s payload: %w", event, err)
	}
	result := c.topic(event).Publish(ctx, &pubsub.Message{
		Data: payload,
		Attributes: map[string]string{
			"event":        string(event),
			"content-type": ContentType,
		},
	})
	serverID, err := result.Get(ctx)
	if err != nil {
		log.Error("Failed to publish message", "error", err, "topic", event)
		return fmt.Errorf("failed to publish %s: %w", event, err)
	}
	log.Info("Published message", "topic", event, "serverID", serverID, "bytes", len(payload))
	return nil
}

func (c *client) ProcessMessage(data []byte, returnValue any) error {
	return Decode(data, returnValue)
}

// Decode unmarshals a MessagePack payload into returnValue.
func Decode(data []byte, returnValue any) error {
	if err := msgpack.Unmarshal(data, returnValue); err != nil {
		return fmt.Errorf("failed to decode payload: %w", err)
	}
	return nil
}
