package protobuf

import (
	"github.com/jhump/protoreflect/desc"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/types/descriptorpb"
)

// decodeMessage decodes raw wire-format bytes into the value tree, driven
// purely by the tags present in the data. It is total: any byte sequence
// yields a tree, with truncated or unparseable trailing data recorded as an
// incomplete leaf rather than an error.
func decodeMessage(data []byte, md *desc.MessageDescriptor) []field {
	var fields []field

	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			fields = append(fields, incompleteField(0, len(data)))
			return fields
		}
		data = data[n:]

		fd := md.FindFieldByNumber(int32(num))
		if fd == nil {
			// Field number absent from the descriptor: schema evolution or
			// the wrong type name. Consume it by wire type and record it as
			// unknown; the renderer decides how to surface it.
			n = protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				fields = append(fields, incompleteField(num, len(data)))
				return fields
			}
			fields = append(fields, field{number: num, val: unknownValue(typ)})
			data = data[n:]
			continue
		}

		val, n := decodeValue(fd, num, typ, data)
		if n < 0 {
			fields = append(fields, incompleteField(num, len(data)))
			return fields
		}
		fields = append(fields, field{name: fd.GetName(), number: num, val: val})
		data = data[n:]
	}

	return fields
}

// decodeValue decodes a single wire value for a known field. It returns the
// decoded value and the number of bytes consumed, or a negative count when
// the data is truncated.
func decodeValue(fd *desc.FieldDescriptor, num protowire.Number, typ protowire.Type, data []byte) (value, int) {
	switch typ {
	case protowire.VarintType:
		v, n := protowire.ConsumeVarint(data)
		if n < 0 {
			return value{}, n
		}
		return varintValue(fd, v), n

	case protowire.Fixed32Type:
		v, n := protowire.ConsumeFixed32(data)
		if n < 0 {
			return value{}, n
		}
		return fixed32Value(fd, v), n

	case protowire.Fixed64Type:
		v, n := protowire.ConsumeFixed64(data)
		if n < 0 {
			return value{}, n
		}
		return fixed64Value(fd, v), n

	case protowire.BytesType:
		b, n := protowire.ConsumeBytes(data)
		if n < 0 {
			return value{}, n
		}
		return bytesValue(fd, b), n

	default:
		// Groups and any future wire types: skip the whole value and record
		// that something undecodable was here.
		n := protowire.ConsumeFieldValue(num, typ, data)
		if n < 0 {
			return value{}, n
		}
		return value{kind: kindInvalid}, n
	}
}

func varintValue(fd *desc.FieldDescriptor, v uint64) value {
	switch fd.GetType() {
	case descriptorpb.FieldDescriptorProto_TYPE_BOOL:
		return value{kind: kindBool, bits: v}
	case descriptorpb.FieldDescriptorProto_TYPE_INT32:
		return value{kind: kindInt32, bits: v}
	case descriptorpb.FieldDescriptorProto_TYPE_INT64:
		return value{kind: kindInt64, bits: v}
	case descriptorpb.FieldDescriptorProto_TYPE_UINT32:
		return value{kind: kindUint32, bits: v}
	case descriptorpb.FieldDescriptorProto_TYPE_UINT64:
		return value{kind: kindUint64, bits: v}
	case descriptorpb.FieldDescriptorProto_TYPE_SINT32:
		return value{kind: kindSint32, bits: v}
	case descriptorpb.FieldDescriptorProto_TYPE_SINT64:
		return value{kind: kindSint64, bits: v}
	case descriptorpb.FieldDescriptorProto_TYPE_ENUM:
		return value{kind: kindEnum, bits: v, enumType: fd.GetEnumType()}
	default:
		// Wire says varint, descriptor says otherwise.
		return value{kind: kindUnknownVarint, bits: v}
	}
}

func fixed32Value(fd *desc.FieldDescriptor, v uint32) value {
	switch fd.GetType() {
	case descriptorpb.FieldDescriptorProto_TYPE_FIXED32:
		return value{kind: kindFixed32, bits: uint64(v)}
	case descriptorpb.FieldDescriptorProto_TYPE_SFIXED32:
		return value{kind: kindSfixed32, bits: uint64(v)}
	case descriptorpb.FieldDescriptorProto_TYPE_FLOAT:
		return value{kind: kindFloat, bits: uint64(v)}
	default:
		return value{kind: kindUnknownFixed32, bits: uint64(v)}
	}
}

func fixed64Value(fd *desc.FieldDescriptor, v uint64) value {
	switch fd.GetType() {
	case descriptorpb.FieldDescriptorProto_TYPE_FIXED64:
		return value{kind: kindFixed64, bits: v}
	case descriptorpb.FieldDescriptorProto_TYPE_SFIXED64:
		return value{kind: kindSfixed64, bits: v}
	case descriptorpb.FieldDescriptorProto_TYPE_DOUBLE:
		return value{kind: kindDouble, bits: v}
	default:
		return value{kind: kindUnknownFixed64, bits: v}
	}
}

func bytesValue(fd *desc.FieldDescriptor, b []byte) value {
	switch fd.GetType() {
	case descriptorpb.FieldDescriptorProto_TYPE_STRING:
		return value{kind: kindString, str: string(b)}

	case descriptorpb.FieldDescriptorProto_TYPE_BYTES:
		return value{kind: kindBytes, byteCount: len(b)}

	case descriptorpb.FieldDescriptorProto_TYPE_MESSAGE, descriptorpb.FieldDescriptorProto_TYPE_GROUP:
		nested := fd.GetMessageType()
		if nested == nil {
			return value{kind: kindUnknownBytes, byteCount: len(b)}
		}
		return value{kind: kindMessage, fields: decodeMessage(b, nested)}

	default:
		// A length-delimited value for a scalar field is a packed repeated
		// field when the descriptor says repeated, and malformed otherwise.
		if fd.IsRepeated() {
			if elems, ok := decodePacked(fd, b); ok {
				return value{kind: kindPacked, elems: elems}
			}
		}
		return value{kind: kindUnknownBytes, byteCount: len(b)}
	}
}

// decodePacked decodes a packed repeated scalar payload into its elements.
// The second return is false when the field's type is not packable. A
// truncated final element is recorded as invalid.
func decodePacked(fd *desc.FieldDescriptor, b []byte) ([]value, bool) {
	elems := []value{}

	for len(b) > 0 {
		switch fd.GetType() {
		case descriptorpb.FieldDescriptorProto_TYPE_BOOL,
			descriptorpb.FieldDescriptorProto_TYPE_INT32,
			descriptorpb.FieldDescriptorProto_TYPE_INT64,
			descriptorpb.FieldDescriptorProto_TYPE_UINT32,
			descriptorpb.FieldDescriptorProto_TYPE_UINT64,
			descriptorpb.FieldDescriptorProto_TYPE_SINT32,
			descriptorpb.FieldDescriptorProto_TYPE_SINT64,
			descriptorpb.FieldDescriptorProto_TYPE_ENUM:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return append(elems, value{kind: kindInvalid}), true
			}
			elems = append(elems, varintValue(fd, v))
			b = b[n:]

		case descriptorpb.FieldDescriptorProto_TYPE_FIXED32,
			descriptorpb.FieldDescriptorProto_TYPE_SFIXED32,
			descriptorpb.FieldDescriptorProto_TYPE_FLOAT:
			v, n := protowire.ConsumeFixed32(b)
			if n < 0 {
				return append(elems, value{kind: kindInvalid}), true
			}
			elems = append(elems, fixed32Value(fd, v))
			b = b[n:]

		case descriptorpb.FieldDescriptorProto_TYPE_FIXED64,
			descriptorpb.FieldDescriptorProto_TYPE_SFIXED64,
			descriptorpb.FieldDescriptorProto_TYPE_DOUBLE:
			v, n := protowire.ConsumeFixed64(b)
			if n < 0 {
				return append(elems, value{kind: kindInvalid}), true
			}
			elems = append(elems, fixed64Value(fd, v))
			b = b[n:]

		default:
			return nil, false
		}
	}

	return elems, true
}

func unknownValue(typ protowire.Type) value {
	switch typ {
	case protowire.VarintType:
		return value{kind: kindUnknownVarint}
	case protowire.Fixed32Type:
		return value{kind: kindUnknownFixed32}
	case protowire.Fixed64Type:
		return value{kind: kindUnknownFixed64}
	case protowire.BytesType:
		return value{kind: kindUnknownBytes}
	default:
		return value{kind: kindInvalid}
	}
}

func incompleteField(num protowire.Number, trailing int) field {
	return field{number: num, val: value{kind: kindIncomplete, byteCount: trailing}}
}
