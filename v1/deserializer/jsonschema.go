package deserializer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"go.uber.org/zap"
)

// JSONSchemaDeserializer decodes registry-framed JSON payloads and validates
// them against the JSON Schema resolved by the id embedded in the framing.
// Used for the "json" format when a schema registry is configured.
//
// Compiled schemas are kept per schema id, like Avro codecs.
//
// JSONSchemaDeserializer implements the Deserializer interface.
type JSONSchemaDeserializer struct {
	provider SchemaProvider
	logger   *zap.Logger

	mu       sync.Mutex
	compiled map[int]*jsonschema.Schema
}

// NewJSONSchemaDeserializer creates a deserializer for registry-framed JSON.
func NewJSONSchemaDeserializer(provider SchemaProvider, logger *zap.Logger) *JSONSchemaDeserializer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JSONSchemaDeserializer{
		provider: provider,
		logger:   logger,
		compiled: make(map[int]*jsonschema.Schema),
	}
}

// Deserialize validates the framed payload against its schema and returns it
// as indented JSON text. Empty payloads (tombstones) deserialize to the
// empty string.
func (d *JSONSchemaDeserializer) Deserialize(ctx context.Context, sc SerializationContext, data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}

	id, payload, err := schemaID(data)
	if err != nil {
		return "", err
	}

	schema, err := d.schema(ctx, id)
	if err != nil {
		return "", err
	}

	var doc interface{}
	if err := json.Unmarshal(payload, &doc); err != nil {
		return "", fmt.Errorf("parse json %s framed with schema id %d: %w", sc.Field, id, ErrInvalidJSON)
	}

	if err := schema.Validate(doc); err != nil {
		return "", fmt.Errorf("validate json %s against schema id %d: %w", sc.Field, id, err)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, payload, "", "  "); err != nil {
		return string(payload), nil
	}
	return buf.String(), nil
}

func (d *JSONSchemaDeserializer) schema(ctx context.Context, id int) (*jsonschema.Schema, error) {
	d.mu.Lock()
	schema, ok := d.compiled[id]
	d.mu.Unlock()
	if ok {
		return schema, nil
	}

	fetched, err := d.provider.SchemaByID(ctx, id)
	if err != nil {
		return nil, err
	}

	schema, err = jsonschema.CompileString("schema.json", fetched.Schema)
	if err != nil {
		return nil, fmt.Errorf("compile json schema id %d: %w", id, err)
	}

	d.logger.Debug("compiled json schema", zap.Int("schemaId", id))

	d.mu.Lock()
	d.compiled[id] = schema
	d.mu.Unlock()
	return schema, nil
}
