// Package protobuf decodes registry-framed Protobuf record data into JSON
// text for display, without any generated code.
//
// A DescriptorStore is built once at startup from a directory tree of .proto
// files and is read-only afterward. Record bytes are decoded directly from
// the Protobuf wire format, driven by the tags actually present in the data,
// and each field is resolved against the descriptor to recover its name,
// signedness, and enum symbols.
//
// Decoding is deliberately lenient: schema drift, truncation, and corrupted
// field data produce inline placeholders and logged warnings instead of
// failures, so one bad field never blanks an otherwise readable record. The
// only hard failures are a payload too short to carry the registry framing
// and a message type that is not present in the store.
//
// Framing: registry-framed payloads begin with a 1-byte magic marker, a
// 4-byte schema id, and a message-index sequence identifying which type in
// the schema file was encoded. This package assumes the common case of a
// single zero index byte (one top-level message) and strips a fixed 6-byte
// prefix; payloads using a longer index sequence will decode incorrectly.
//
// Basic Usage:
//
//	store, err := protobuf.NewDescriptorStore(protobuf.Config{ProtoDir: "./protos"}, log.Zap)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	text, err := store.Decode(record.Value, "ordering.Order")
package protobuf
