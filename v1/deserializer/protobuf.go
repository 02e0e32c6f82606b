package deserializer

import (
	"context"
	"fmt"

	"github.com/kafscope/kafscope/v1/protobuf"
)

// ProtoDeserializer decodes registry-framed Protobuf payloads against the
// message descriptors built from local schema files. The message type is
// fixed per record side at configuration time; the framing's schema id is
// not consulted.
//
// ProtoDeserializer implements the Deserializer interface.
type ProtoDeserializer struct {
	store            *protobuf.DescriptorStore
	keyMessageType   string
	valueMessageType string
}

// NewProtoDeserializer creates a deserializer decoding keys and values with
// the given message types. Either type may be empty when the corresponding
// record side does not use the protobuf format.
func NewProtoDeserializer(store *protobuf.DescriptorStore, keyMessageType, valueMessageType string) *ProtoDeserializer {
	return &ProtoDeserializer{
		store:            store,
		keyMessageType:   keyMessageType,
		valueMessageType: valueMessageType,
	}
}

// Deserialize decodes the framed payload against the message type configured
// for the record side being decoded. Empty payloads (tombstones) deserialize
// to the empty string.
func (d *ProtoDeserializer) Deserialize(_ context.Context, sc SerializationContext, data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}

	messageType := d.valueMessageType
	if sc.Field == FieldKey {
		messageType = d.keyMessageType
	}
	if messageType == "" {
		return "", fmt.Errorf("%w for record %s", ErrMissingMessageType, sc.Field)
	}

	return d.store.Decode(data, messageType)
}
