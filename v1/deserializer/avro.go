package deserializer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/linkedin/goavro/v2"
	"go.uber.org/zap"
)

// AvroDeserializer decodes registry-framed Avro payloads. The writer schema
// is resolved by the id embedded in the framing, and the decoded datum is
// rendered as indented JSON text.
//
// Compiled codecs are kept per schema id; ids are immutable in the registry,
// so a compiled codec never goes stale.
//
// AvroDeserializer implements the Deserializer interface.
type AvroDeserializer struct {
	provider SchemaProvider
	logger   *zap.Logger

	mu     sync.Mutex
	codecs map[int]*goavro.Codec
}

// NewAvroDeserializer creates a deserializer for registry-framed Avro.
func NewAvroDeserializer(provider SchemaProvider, logger *zap.Logger) *AvroDeserializer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AvroDeserializer{
		provider: provider,
		logger:   logger,
		codecs:   make(map[int]*goavro.Codec),
	}
}

// Deserialize decodes the framed payload with its writer schema and returns
// indented JSON text. Empty payloads (tombstones) deserialize to the empty
// string.
func (d *AvroDeserializer) Deserialize(ctx context.Context, sc SerializationContext, data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}

	id, payload, err := schemaID(data)
	if err != nil {
		return "", err
	}

	codec, err := d.codec(ctx, id)
	if err != nil {
		return "", err
	}

	native, _, err := codec.NativeFromBinary(payload)
	if err != nil {
		return "", fmt.Errorf("decode avro %s with schema id %d: %w", sc.Field, id, err)
	}

	textual, err := codec.TextualFromNative(nil, native)
	if err != nil {
		return "", fmt.Errorf("render avro %s with schema id %d: %w", sc.Field, id, err)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, textual, "", "  "); err != nil {
		// Avro textual encoding of a bare scalar is valid JSON but may not
		// re-indent; show it as produced.
		return string(textual), nil
	}
	return buf.String(), nil
}

func (d *AvroDeserializer) codec(ctx context.Context, id int) (*goavro.Codec, error) {
	d.mu.Lock()
	codec, ok := d.codecs[id]
	d.mu.Unlock()
	if ok {
		return codec, nil
	}

	schema, err := d.provider.SchemaByID(ctx, id)
	if err != nil {
		return nil, err
	}

	codec, err = goavro.NewCodec(schema.Schema)
	if err != nil {
		return nil, fmt.Errorf("compile avro schema id %d: %w", id, err)
	}

	d.logger.Debug("compiled avro codec", zap.Int("schemaId", id))

	d.mu.Lock()
	d.codecs[id] = codec
	d.mu.Unlock()
	return codec, nil
}
