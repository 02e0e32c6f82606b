package record

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/kafscope/kafscope/v1/deserializer"
)

// Record is one consumed Kafka message after decoding, ready for display or
// export.
type Record struct {
	// Topic the record was consumed from.
	Topic string `json:"topic"`

	// Partition the record was consumed from.
	Partition int `json:"partition"`

	// Offset of the record within its partition.
	Offset int64 `json:"offset"`

	// Key is the decoded key text. Empty for records without a key.
	Key string `json:"key"`

	// Headers of the record. Header values that are not valid UTF-8 are
	// shown with invalid bytes replaced.
	Headers map[string]string `json:"headers"`

	// Value is the decoded value text. Empty for tombstones.
	Value string `json:"value"`

	// Timestamp the broker assigned to the record.
	Timestamp time.Time `json:"timestamp"`
}

// FromMessage decodes a consumed message into a Record using the session's
// deserializer pair.
func FromMessage(ctx context.Context, msg kafka.Message, d deserializer.Deserializers) (Record, error) {
	key, err := d.Key.Deserialize(ctx, deserializer.SerializationContext{
		Topic:   msg.Topic,
		Field:   deserializer.FieldKey,
		Headers: msg.Headers,
	}, msg.Key)
	if err != nil {
		return Record{}, fmt.Errorf("deserialize key of %s[%d]@%d: %w", msg.Topic, msg.Partition, msg.Offset, err)
	}

	value, err := d.Value.Deserialize(ctx, deserializer.SerializationContext{
		Topic:   msg.Topic,
		Field:   deserializer.FieldValue,
		Headers: msg.Headers,
	}, msg.Value)
	if err != nil {
		return Record{}, fmt.Errorf("deserialize value of %s[%d]@%d: %w", msg.Topic, msg.Partition, msg.Offset, err)
	}

	headers := make(map[string]string, len(msg.Headers))
	for _, h := range msg.Headers {
		headers[h.Key] = strings.ToValidUTF8(string(h.Value), "�")
	}

	return Record{
		Topic:     msg.Topic,
		Partition: msg.Partition,
		Offset:    msg.Offset,
		Key:       key,
		Headers:   headers,
		Value:     value,
		Timestamp: msg.Time,
	}, nil
}
