package deserializer

import (
	"context"

	"github.com/segmentio/kafka-go"

	"github.com/kafscope/kafscope/v1/schemaregistry"
)

// Field identifies which side of a record is being deserialized.
type Field string

const (
	// FieldKey marks the record key.
	FieldKey Field = "key"

	// FieldValue marks the record value.
	FieldValue Field = "value"
)

// SerializationContext carries the record metadata a deserializer may need
// beyond the raw bytes: the topic the record came from, which side of the
// record is being decoded, and the record headers.
type SerializationContext struct {
	Topic   string
	Field   Field
	Headers []kafka.Header
}

// Deserializer decodes one side of a Kafka record into display text.
//
// Implementations must be safe for concurrent use; the same instance decodes
// every record of a consuming session, and is shared between key and value
// when both sides use the same format.
type Deserializer interface {
	Deserialize(ctx context.Context, sc SerializationContext, data []byte) (string, error)
}

// SchemaProvider resolves schemas by their registry-assigned id, as embedded
// in framed payloads. It is satisfied by schemaregistry.Client.
type SchemaProvider interface {
	SchemaByID(ctx context.Context, id int) (schemaregistry.Schema, error)
}
