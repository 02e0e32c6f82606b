package deserializer

import (
	"context"
	"encoding/binary"
	"errors"
	"sync"
	"testing"

	"github.com/linkedin/goavro/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kafscope/kafscope/v1/schemaregistry"
)

const orderAvroSchema = `{"type":"record","name":"Order","fields":[{"name":"id","type":"int"},{"name":"note","type":"string"}]}`

// fakeProvider is a controllable SchemaProvider test double that counts
// calls.
type fakeProvider struct {
	mu     sync.Mutex
	calls  int
	schema schemaregistry.Schema
	err    error
}

func (f *fakeProvider) SchemaByID(_ context.Context, id int) (schemaregistry.Schema, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.err != nil {
		return schemaregistry.Schema{}, f.err
	}
	return f.schema, nil
}

func (f *fakeProvider) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// frame prefixes a payload with the registry framing for the given schema id.
func frame(id int, payload []byte) []byte {
	framed := make([]byte, frameLen, frameLen+len(payload))
	binary.BigEndian.PutUint32(framed[1:], uint32(id))
	return append(framed, payload...)
}

// encodeOrder produces the Avro binary encoding of one Order datum.
func encodeOrder(t *testing.T, id int, note string) []byte {
	t.Helper()

	codec, err := goavro.NewCodec(orderAvroSchema)
	require.NoError(t, err)

	payload, err := codec.BinaryFromNative(nil, map[string]interface{}{
		"id":   id,
		"note": note,
	})
	require.NoError(t, err)
	return payload
}

func TestAvroDeserializerDecodes(t *testing.T) {
	provider := &fakeProvider{
		schema: schemaregistry.Schema{ID: 7, Kind: schemaregistry.KindAvro, Schema: orderAvroSchema},
	}
	d := NewAvroDeserializer(provider, nil)

	out, err := d.Deserialize(context.Background(), SerializationContext{Field: FieldValue}, frame(7, encodeOrder(t, 42, "hello")))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": 42, "note": "hello"}`, out)
	assert.Contains(t, out, "\n")
}

func TestAvroDeserializerCachesCodecPerSchemaID(t *testing.T) {
	provider := &fakeProvider{
		schema: schemaregistry.Schema{ID: 7, Kind: schemaregistry.KindAvro, Schema: orderAvroSchema},
	}
	d := NewAvroDeserializer(provider, nil)

	for i := 0; i < 3; i++ {
		_, err := d.Deserialize(context.Background(), SerializationContext{Field: FieldValue}, frame(7, encodeOrder(t, i, "x")))
		require.NoError(t, err)
	}

	assert.Equal(t, 1, provider.callCount(), "expected the schema to be fetched once")
}

func TestAvroDeserializerTombstone(t *testing.T) {
	d := NewAvroDeserializer(&fakeProvider{}, nil)

	out, err := d.Deserialize(context.Background(), SerializationContext{Field: FieldValue}, nil)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestAvroDeserializerCorruptPayload(t *testing.T) {
	provider := &fakeProvider{
		schema: schemaregistry.Schema{ID: 7, Kind: schemaregistry.KindAvro, Schema: orderAvroSchema},
	}
	d := NewAvroDeserializer(provider, nil)

	_, err := d.Deserialize(context.Background(), SerializationContext{Field: FieldValue}, frame(7, nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode avro value with schema id 7")
}

func TestAvroDeserializerUnframedPayload(t *testing.T) {
	d := NewAvroDeserializer(&fakeProvider{}, nil)

	_, err := d.Deserialize(context.Background(), SerializationContext{Field: FieldValue}, []byte("plain text"))
	require.ErrorIs(t, err, ErrInvalidMagic)
}

func TestAvroDeserializerRegistryFailurePropagates(t *testing.T) {
	registryDown := errors.New("registry unreachable")
	d := NewAvroDeserializer(&fakeProvider{err: registryDown}, nil)

	_, err := d.Deserialize(context.Background(), SerializationContext{Field: FieldValue}, frame(7, encodeOrder(t, 1, "x")))
	require.ErrorIs(t, err, registryDown)
}

func TestAvroDeserializerBadSchemaText(t *testing.T) {
	provider := &fakeProvider{
		schema: schemaregistry.Schema{ID: 7, Kind: schemaregistry.KindAvro, Schema: "not a schema"},
	}
	d := NewAvroDeserializer(provider, nil)

	_, err := d.Deserialize(context.Background(), SerializationContext{Field: FieldValue}, frame(7, encodeOrder(t, 1, "x")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compile avro schema id 7")
}
