package protobuf

import (
	"github.com/jhump/protoreflect/desc"
	"google.golang.org/protobuf/encoding/protowire"
)

// kind identifies the wire-level shape of a decoded field value, prior to
// any name resolution. The set is closed: decoding maps every possible byte
// sequence onto one of these.
type kind uint8

const (
	kindBool kind = iota
	kindBytes
	kindDouble
	kindEnum
	kindFixed32
	kindFixed64
	kindFloat
	kindIncomplete
	kindInt32
	kindInt64
	kindMessage
	kindPacked
	kindSfixed32
	kindSfixed64
	kindSint32
	kindSint64
	kindString
	kindUint32
	kindUint64
	kindUnknownVarint
	kindUnknownFixed32
	kindUnknownFixed64
	kindUnknownBytes
	kindInvalid
)

// value is one decoded wire value. Which members are populated depends on
// the kind:
//
//   - numeric kinds carry the raw wire payload in bits
//   - kindString carries str
//   - kindBytes carries byteCount only; raw bytes are never retained
//   - kindEnum carries bits plus the enum descriptor for name resolution
//   - kindMessage carries fields
//   - kindPacked carries elems
type value struct {
	kind      kind
	bits      uint64
	str       string
	byteCount int
	enumType  *desc.EnumDescriptor
	fields    []field
	elems     []value
}

// field is one decoded field occurrence within a message, in wire order.
// Repeated fields appear once per occurrence.
type field struct {
	name   string
	number protowire.Number
	val    value
}
