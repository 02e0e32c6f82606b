package schemaregistry

import (
	"bytes"
	"encoding/json"

	"github.com/riferrei/srclient"
)

// Unknown is presented to the user when a schema-related value is missing
// from the registry response.
const Unknown = "<unknown>"

// Subject identifies a namespace in the schema registry that groups the
// historical versions of one logical schema.
type Subject string

// String returns the subject name.
func (s Subject) String() string {
	return string(s)
}

// Version is a positive integer revision of a schema within a Subject.
type Version int

// LatestVersion is the sentinel requesting whatever version the registry
// currently considers latest. Registry versions start at 1, so zero is never
// a real version.
const LatestVersion Version = 0

// SchemaKind enumerates the schema formats the registry can store.
type SchemaKind string

const (
	// KindAvro identifies an Avro schema.
	KindAvro SchemaKind = "AVRO"

	// KindJSON identifies a JSON Schema document.
	KindJSON SchemaKind = "JSON"

	// KindProtobuf identifies a Protobuf schema.
	KindProtobuf SchemaKind = "PROTOBUF"

	// KindUnknown is used when the registry reports a type this subsystem
	// does not recognize.
	KindUnknown SchemaKind = Unknown
)

// SchemaRef is a reference to another schema contained in a schema retrieved
// from the registry. References are surfaced for inspection in the schema
// browser only; they are never resolved automatically for decoding.
type SchemaRef struct {
	// Name of the referenced schema.
	Name string `json:"name"`

	// Subject the referenced schema belongs to.
	Subject Subject `json:"subject"`

	// Version of the referenced schema.
	Version Version `json:"version"`
}

// Schema is an immutable value describing one schema version retrieved from
// the registry.
type Schema struct {
	// ID is the registry-assigned identifier of the schema.
	ID int `json:"id"`

	// GUID is the globally unique identifier of the schema, or "<unknown>"
	// when the registry does not report one.
	GUID string `json:"guid"`

	// Version of the schema within its subject.
	Version Version `json:"version"`

	// Kind is the schema type, i.e. AVRO, JSON, PROTOBUF.
	Kind SchemaKind `json:"kind"`

	// Schema is the schema definition text. Avro and JSON Schema documents
	// are pretty-printed for display; Protobuf text is kept verbatim.
	Schema string `json:"schema"`

	// References to other schemas contained in this schema, if any.
	References []SchemaRef `json:"references,omitempty"`
}

// newSchema converts a schema fetched through srclient into a Schema value.
func newSchema(s *srclient.Schema) Schema {
	kind := KindAvro
	if s.SchemaType() != nil {
		switch *s.SchemaType() {
		case srclient.Avro:
			kind = KindAvro
		case srclient.Json:
			kind = KindJSON
		case srclient.Protobuf:
			kind = KindProtobuf
		default:
			kind = KindUnknown
		}
	}

	text := s.Schema()
	if text == "" {
		text = Unknown
	} else if kind == KindAvro || kind == KindJSON {
		text = prettyJSON(text)
	}

	var refs []SchemaRef
	for _, r := range s.References() {
		refs = append(refs, SchemaRef{
			Name:    r.Name,
			Subject: Subject(r.Subject),
			Version: Version(r.Version),
		})
	}

	return Schema{
		ID: s.ID(),
		// The v1 registry REST model carries no globally unique id.
		GUID:       Unknown,
		Version:    Version(s.Version()),
		Kind:       kind,
		Schema:     text,
		References: refs,
	}
}

// prettyJSON re-indents a JSON document for display. The raw text is
// returned unchanged when it does not parse.
func prettyJSON(text string) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(text), "", "  "); err != nil {
		return text
	}
	return buf.String()
}
