package record

import (
	"context"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kafscope/kafscope/v1/deserializer"
)

func newDeserializers(t *testing.T, keyFormat, valueFormat deserializer.Format) deserializer.Deserializers {
	t.Helper()

	d, err := deserializer.New(deserializer.Config{
		KeyFormat:   keyFormat,
		ValueFormat: valueFormat,
	}, nil, nil, nil, nil)
	require.NoError(t, err)
	return d
}

func TestFromMessage(t *testing.T) {
	d := newDeserializers(t, deserializer.FormatNone, deserializer.FormatJSON)

	ts := time.Unix(1700000000, 0)
	msg := kafka.Message{
		Topic:     "orders",
		Partition: 2,
		Offset:    1337,
		Key:       []byte("order-42"),
		Value:     []byte(`{"id":42}`),
		Headers: []kafka.Header{
			{Key: "source", Value: []byte("billing")},
		},
		Time: ts,
	}

	rec, err := FromMessage(context.Background(), msg, d)
	require.NoError(t, err)

	assert.Equal(t, "orders", rec.Topic)
	assert.Equal(t, 2, rec.Partition)
	assert.Equal(t, int64(1337), rec.Offset)
	assert.Equal(t, "order-42", rec.Key)
	assert.JSONEq(t, `{"id": 42}`, rec.Value)
	assert.Equal(t, map[string]string{"source": "billing"}, rec.Headers)
	assert.Equal(t, ts, rec.Timestamp)
}

func TestFromMessageTombstone(t *testing.T) {
	d := newDeserializers(t, deserializer.FormatNone, deserializer.FormatJSON)

	rec, err := FromMessage(context.Background(), kafka.Message{Topic: "orders"}, d)
	require.NoError(t, err)
	assert.Equal(t, "", rec.Key)
	assert.Equal(t, "", rec.Value)
}

func TestFromMessageDecodeFailureCarriesCoordinates(t *testing.T) {
	d := newDeserializers(t, deserializer.FormatNone, deserializer.FormatJSON)

	msg := kafka.Message{
		Topic:     "orders",
		Partition: 2,
		Offset:    1337,
		Value:     []byte("not json"),
	}

	_, err := FromMessage(context.Background(), msg, d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deserialize value of orders[2]@1337")
}

func TestFromMessageReplacesInvalidHeaderBytes(t *testing.T) {
	d := newDeserializers(t, deserializer.FormatNone, deserializer.FormatNone)

	msg := kafka.Message{
		Topic: "orders",
		Headers: []kafka.Header{
			{Key: "trace", Value: []byte{'o', 'k', 0xFF}},
		},
	}

	rec, err := FromMessage(context.Background(), msg, d)
	require.NoError(t, err)
	assert.Equal(t, "ok�", rec.Headers["trace"])
}
