package codec

import "encoding/binary"

// AppendUint8 appends a single octet to b.
func AppendUint8(b []byte, v uint8) []byte {
	return append(b, v)
}

// AppendUint16 appends a big-endian u16 to b.
func AppendUint16(b []byte, v uint16) []byte {
	return binary.BigEndian.AppendUint16(b, v)
}

// AppendUint32 appends a big-endian u32 to b.
func AppendUint32(b []byte, v uint32) []byte {
	return binary.BigEndian.AppendUint32(b, v)
}

// AppendUint64 appends a big-endian u64 to b.
func AppendUint64(b []byte, v uint64) []byte {
	return binary.BigEndian.AppendUint64(b, v)
}

// ReadUint8 reads one octet from buf and returns the rest.
func ReadUint8(buf []byte) (v uint8, rest []byte, err error) {
	if len(buf) < 1 {
		return 0, nil, ErrIncomplete
	}
	return buf[0], buf[1:], nil
}

// ReadUint16 reads a big-endian u16 from buf and returns the rest.
func ReadUint16(buf []byte) (v uint16, rest []byte, err error) {
	if len(buf) < 2 {
		return 0, nil, ErrIncomplete
	}
	return binary.BigEndian.Uint16(buf), buf[2:], nil
}

// ReadUint32 reads a big-endian u32 from buf and returns the rest.
func ReadUint32(buf []byte) (v uint32, rest []byte, err error) {
	if len(buf) < 4 {
		return 0, nil, ErrIncomplete
	}
	return binary.BigEndian.Uint32(buf), buf[4:], nil
}
