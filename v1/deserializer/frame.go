package deserializer

import (
	"encoding/binary"
	"fmt"
)

// Registry framing for Avro and JSON Schema payloads: one magic byte followed
// by the big-endian schema id. The Protobuf variant carries an additional
// message-index sequence and is handled by the descriptor store.
const (
	frameLen  = 5
	magicByte = 0x0
)

// schemaID splits a registry-framed payload into its schema id and the
// encoded data that follows the framing.
func schemaID(data []byte) (int, []byte, error) {
	if len(data) < frameLen {
		return 0, nil, fmt.Errorf("%w: got %d bytes, need at least %d", ErrShortFrame, len(data), frameLen)
	}
	if data[0] != magicByte {
		return 0, nil, fmt.Errorf("%w: got 0x%x", ErrInvalidMagic, data[0])
	}
	return int(binary.BigEndian.Uint32(data[1:frameLen])), data[frameLen:], nil
}
