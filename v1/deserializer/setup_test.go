package deserializer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kafscope/kafscope/v1/metrics"
)

func TestParseFormat(t *testing.T) {
	for name, want := range map[string]Format{
		"":         FormatNone,
		"none":     FormatNone,
		"json":     FormatJSON,
		"AVRO":     FormatAvro,
		"Protobuf": FormatProtobuf,
	} {
		got, err := ParseFormat(name)
		require.NoError(t, err, "format %q", name)
		assert.Equal(t, want, got, "format %q", name)
	}

	_, err := ParseFormat("xml")
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestNewSharesInstanceWhenFormatsMatch(t *testing.T) {
	d, err := New(Config{KeyFormat: FormatJSON, ValueFormat: FormatJSON}, nil, nil, nil, nil)
	require.NoError(t, err)
	assert.Same(t, d.Key, d.Value, "expected key and value to share one deserializer")
}

func TestNewDistinctInstancesWhenFormatsDiffer(t *testing.T) {
	d, err := New(Config{KeyFormat: FormatNone, ValueFormat: FormatJSON}, nil, nil, nil, nil)
	require.NoError(t, err)
	assert.NotSame(t, d.Key, d.Value)
}

func TestNewDefaultsToStringDeserializer(t *testing.T) {
	d, err := New(Config{}, nil, nil, nil, nil)
	require.NoError(t, err)

	out, err := d.Value.Deserialize(context.Background(), SerializationContext{Field: FieldValue}, []byte("raw"))
	require.NoError(t, err)
	assert.Equal(t, "raw", out)
}

func TestNewJSONWithoutRegistryIsSchemaless(t *testing.T) {
	d, err := New(Config{ValueFormat: FormatJSON}, nil, nil, nil, nil)
	require.NoError(t, err)

	// No framing, no schema id: plain JSON bytes decode directly.
	out, err := d.Value.Deserialize(context.Background(), SerializationContext{Field: FieldValue}, []byte(`{"id":1}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": 1}`, out)
}

func TestNewJSONWithRegistryExpectsFraming(t *testing.T) {
	d, err := New(Config{ValueFormat: FormatJSON}, newJSONSchemaProvider(), nil, nil, nil)
	require.NoError(t, err)

	_, err = d.Value.Deserialize(context.Background(), SerializationContext{Field: FieldValue}, []byte(`{"id":1}`))
	require.ErrorIs(t, err, ErrInvalidMagic)

	out, err := d.Value.Deserialize(context.Background(), SerializationContext{Field: FieldValue}, frame(9, []byte(`{"id":1}`)))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": 1}`, out)
}

func TestNewAvroRequiresRegistry(t *testing.T) {
	_, err := New(Config{ValueFormat: FormatAvro}, nil, nil, nil, nil)
	require.ErrorIs(t, err, ErrMissingRegistry)
}

func TestNewProtobufRequiresStore(t *testing.T) {
	_, err := New(Config{ValueFormat: FormatProtobuf, ValueMessageType: "geo.Point"}, nil, nil, nil, nil)
	require.ErrorIs(t, err, ErrMissingDescriptorStore)
}

func TestNewProtobufRequiresMessageType(t *testing.T) {
	_, err := New(Config{ValueFormat: FormatProtobuf}, nil, newDescriptorStore(t), nil, nil)
	require.ErrorIs(t, err, ErrMissingMessageType)

	_, err = New(Config{KeyFormat: FormatProtobuf, ValueMessageType: "geo.Point"}, nil, newDescriptorStore(t), nil, nil)
	require.ErrorIs(t, err, ErrMissingMessageType)
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	_, err := New(Config{KeyFormat: "xml"}, nil, nil, nil, nil)
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestDecodeFailuresAreCounted(t *testing.T) {
	collector := metrics.NewMetrics(metrics.Config{})

	d, err := New(Config{ValueFormat: FormatJSON}, nil, nil, nil, collector)
	require.NoError(t, err)

	_, err = d.Value.Deserialize(context.Background(), SerializationContext{Field: FieldValue}, []byte("not json"))
	require.Error(t, err)

	assert.Equal(t, 1.0, counterValue(t, collector, "record_decode_failures_total", "format", "json"))
}

// counterValue reads one labeled counter out of the collector's registry.
func counterValue(t *testing.T, collector *metrics.Metrics, name, labelName, labelValue string) float64 {
	t.Helper()

	families, err := collector.Registry.Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == labelName && label.GetValue() == labelValue {
					return metric.GetCounter().GetValue()
				}
			}
		}
	}

	t.Fatalf("counter %s{%s=%q} not found", name, labelName, labelValue)
	return 0
}
