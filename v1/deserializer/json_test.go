package deserializer

import (
	"context"
	"errors"
	"testing"
)

func TestJSONDeserializerIndents(t *testing.T) {
	d := NewJSONDeserializer()

	out, err := d.Deserialize(context.Background(), SerializationContext{}, []byte(`{"id":42}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "{\n  \"id\": 42\n}" {
		t.Fatalf("expected indented JSON, got %q", out)
	}
}

func TestJSONDeserializerTombstone(t *testing.T) {
	d := NewJSONDeserializer()

	out, err := d.Deserialize(context.Background(), SerializationContext{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "" {
		t.Fatalf("expected empty string for tombstone, got %q", out)
	}
}

func TestJSONDeserializerRejectsInvalidJSON(t *testing.T) {
	d := NewJSONDeserializer()

	for _, data := range [][]byte{
		[]byte(`{"id":`),
		[]byte("not json"),
		{0xFF, 0xFE, '{', '}'},
	} {
		if _, err := d.Deserialize(context.Background(), SerializationContext{}, data); !errors.Is(err, ErrInvalidJSON) {
			t.Fatalf("expected ErrInvalidJSON for %q, got %v", data, err)
		}
	}
}

func TestSchemaIDFraming(t *testing.T) {
	id, payload, err := schemaID([]byte{0x0, 0x0, 0x0, 0x0, 0x7, 'h', 'i'})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 7 {
		t.Fatalf("expected schema id 7, got %d", id)
	}
	if string(payload) != "hi" {
		t.Fatalf("expected payload after framing, got %q", payload)
	}
}

func TestSchemaIDShortFrame(t *testing.T) {
	_, _, err := schemaID([]byte{0x0, 0x0, 0x0})
	if !errors.Is(err, ErrShortFrame) {
		t.Fatalf("expected ErrShortFrame, got %v", err)
	}
}

func TestSchemaIDBadMagic(t *testing.T) {
	_, _, err := schemaID([]byte{0x1, 0x0, 0x0, 0x0, 0x7})
	if !errors.Is(err, ErrInvalidMagic) {
		t.Fatalf("expected ErrInvalidMagic, got %v", err)
	}
}
