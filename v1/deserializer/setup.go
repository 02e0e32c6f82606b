package deserializer

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kafscope/kafscope/v1/metrics"
	"github.com/kafscope/kafscope/v1/protobuf"
)

// Deserializers holds the deserializer pair for one consuming session. When
// key and value use the same format, both fields hold the same instance so
// codec and schema caches are shared.
type Deserializers struct {
	Key   Deserializer
	Value Deserializer
}

// New builds the key and value deserializers for the given configuration.
//
// The provider may be nil when no schema registry is configured; the "json"
// format then falls back to schemaless parsing, and the "avro" format fails
// construction. The store may be nil unless a protobuf format is configured.
func New(cfg Config, provider SchemaProvider, store *protobuf.DescriptorStore, logger *zap.Logger, collector *metrics.Metrics) (Deserializers, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	keyFormat, err := ParseFormat(string(cfg.KeyFormat))
	if err != nil {
		return Deserializers{}, fmt.Errorf("key format: %w", err)
	}
	valueFormat, err := ParseFormat(string(cfg.ValueFormat))
	if err != nil {
		return Deserializers{}, fmt.Errorf("value format: %w", err)
	}

	if keyFormat == FormatProtobuf && cfg.KeyMessageType == "" {
		return Deserializers{}, fmt.Errorf("%w for record key", ErrMissingMessageType)
	}
	if valueFormat == FormatProtobuf && cfg.ValueMessageType == "" {
		return Deserializers{}, fmt.Errorf("%w for record value", ErrMissingMessageType)
	}

	build := func(format Format) (Deserializer, error) {
		switch format {
		case FormatNone:
			return NewStringDeserializer(), nil

		case FormatJSON:
			if provider == nil {
				return NewJSONDeserializer(), nil
			}
			return NewJSONSchemaDeserializer(provider, logger), nil

		case FormatAvro:
			if provider == nil {
				return nil, fmt.Errorf("%w: %s", ErrMissingRegistry, format)
			}
			return NewAvroDeserializer(provider, logger), nil

		case FormatProtobuf:
			if store == nil {
				return nil, ErrMissingDescriptorStore
			}
			return NewProtoDeserializer(store, cfg.KeyMessageType, cfg.ValueMessageType), nil

		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
		}
	}

	key, err := build(keyFormat)
	if err != nil {
		return Deserializers{}, fmt.Errorf("build key deserializer: %w", err)
	}
	key = &instrumented{inner: key, format: keyFormat, collector: collector}

	value := key
	if valueFormat != keyFormat {
		inner, err := build(valueFormat)
		if err != nil {
			return Deserializers{}, fmt.Errorf("build value deserializer: %w", err)
		}
		value = &instrumented{inner: inner, format: valueFormat, collector: collector}
	}

	logger.Info("deserializers configured",
		zap.String("keyFormat", string(keyFormat)),
		zap.String("valueFormat", string(valueFormat)),
		zap.Bool("shared", keyFormat == valueFormat))

	return Deserializers{Key: key, Value: value}, nil
}

// instrumented counts decode failures by format around an inner deserializer.
type instrumented struct {
	inner     Deserializer
	format    Format
	collector *metrics.Metrics
}

func (d *instrumented) Deserialize(ctx context.Context, sc SerializationContext, data []byte) (string, error) {
	out, err := d.inner.Deserialize(ctx, sc, data)
	if err != nil {
		d.collector.ObserveDecodeFailure(string(d.format))
	}
	return out, err
}
