package protobuf

import (
	"encoding/json"
	"fmt"
	"math"

	"go.uber.org/zap"
	"google.golang.org/protobuf/encoding/protowire"
)

// Registry framing: magic marker, 4-byte schema id, message-index sequence.
// Exactly one zero index byte is assumed (single top-level message); see the
// package documentation for the limitation this implies.
const (
	registryFrameLen = 6
	magicByte        = 0x0
)

// Placeholders rendered in place of data that cannot be shown as-is.
const (
	incompletePlaceholderKey = "<incomplete>"
	malformedPlaceholder     = "<malformed field data>"
)

// Decode decodes registry-framed Protobuf bytes against the named message
// type and returns the record as indented JSON text.
//
// Failure is only possible before rendering: a payload too short for the
// framing, or a message type missing from the store. Rendering itself is
// total; anomalies inside the message body become inline placeholders.
func (s *DescriptorStore) Decode(data []byte, messageType string) (string, error) {
	if len(data) < registryFrameLen {
		return "", fmt.Errorf("%w: got %d bytes, need at least %d", ErrShortMessage, len(data), registryFrameLen)
	}
	if data[0] != magicByte {
		s.logger.Warn("registry frame has unexpected magic byte",
			zap.Uint8("magic", data[0]))
	}
	if data[registryFrameLen-1] != 0 {
		s.logger.Warn("registry frame message-index is non-zero; schema files with multiple top-level messages are not supported",
			zap.Uint8("index", data[registryFrameLen-1]))
	}

	md, err := s.Message(messageType)
	if err != nil {
		return "", err
	}

	fields := decodeMessage(data[registryFrameLen:], md)
	return s.renderJSON(fields), nil
}

// renderJSON converts a decoded value tree into indented JSON text. It never
// fails.
func (s *DescriptorStore) renderJSON(fields []field) string {
	out, err := json.MarshalIndent(s.renderFields(fields), "", "  ")
	if err != nil {
		// Unreachable with the types renderValue produces; keep the render
		// total regardless.
		s.logger.Warn("marshal rendered message", zap.Error(err))
		return "{}"
	}
	return string(out)
}

// renderFields groups decoded field occurrences by name into a JSON object.
// Repeated occurrences of one field collapse into an array, in wire order.
func (s *DescriptorStore) renderFields(fields []field) map[string]interface{} {
	out := make(map[string]interface{}, len(fields))

	for _, f := range fields {
		if f.name == "" {
			if f.val.kind == kindIncomplete {
				s.logger.Warn("wire data truncated mid-message",
					zap.Int("trailingBytes", f.val.byteCount))
				out[incompletePlaceholderKey] = fmt.Sprintf("<%d undecodable trailing bytes>", f.val.byteCount)
				continue
			}
			s.logger.Warn("skipping field not present in descriptor",
				zap.Int("fieldNumber", int(f.number)))
			continue
		}

		rendered := s.renderValue(f)

		existing, ok := out[f.name]
		if !ok {
			out[f.name] = rendered
			continue
		}

		arr, isArr := existing.([]interface{})
		if !isArr {
			arr = []interface{}{existing}
		}
		if more, ok := rendered.([]interface{}); ok {
			arr = append(arr, more...)
		} else {
			arr = append(arr, rendered)
		}
		out[f.name] = arr
	}

	return out
}

func (s *DescriptorStore) renderValue(f field) interface{} {
	v := f.val

	switch v.kind {
	case kindBool:
		return v.bits != 0

	case kindInt32, kindInt64:
		return int64(v.bits)

	case kindSint32, kindSint64:
		return protowire.DecodeZigZag(v.bits)

	case kindSfixed32:
		return int64(int32(uint32(v.bits)))

	case kindSfixed64:
		return int64(v.bits)

	case kindUint32, kindUint64, kindFixed32, kindFixed64:
		return v.bits

	case kindFloat:
		return float64(math.Float32frombits(uint32(v.bits)))

	case kindDouble:
		return math.Float64frombits(v.bits)

	case kindString:
		return v.str

	case kindBytes:
		return fmt.Sprintf("<%d bytes>", v.byteCount)

	case kindEnum:
		number := int32(v.bits)
		if v.enumType != nil {
			if ev := v.enumType.FindValueByNumber(number); ev != nil {
				return ev.GetName()
			}
		}
		s.logger.Warn("enum value not defined by descriptor",
			zap.String("field", f.name),
			zap.Int32("value", number))
		return fmt.Sprintf("<unknown enum value - %d>", number)

	case kindMessage:
		return s.renderFields(v.fields)

	case kindPacked:
		elems := make([]interface{}, 0, len(v.elems))
		for _, e := range v.elems {
			elems = append(elems, s.renderValue(field{name: f.name, number: f.number, val: e}))
		}
		return elems

	case kindIncomplete:
		return "<incomplete wire data>"

	default:
		// Unknown and invalid wire shapes for a field the descriptor does
		// know about: keep the field visible, flag the data.
		s.logger.Warn("field data does not match descriptor type",
			zap.String("field", f.name),
			zap.Int("fieldNumber", int(f.number)))
		return malformedPlaceholder
	}
}
