package tlv

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/smpp-go/smpp/codec"
	"github.com/smpp-go/smpp/types/optional"
)

// TLV is one optional parameter record: a tag, the declared payload length,
// and the payload itself. The declared length always matches the encoded
// size of the value; records constructed here are never inconsistent.
//
// A record with no value encodes as tag and a zero length. Such
// presence-only parameters are valid, e.g. alert_on_message_delivery.
type TLV struct {
	tag         Tag
	valueLength uint16
	value       Value
}

// New builds a record from a typed value. Tag and length are derived from
// the value; callers cannot introduce a mismatch.
func New(v Value) TLV {
	return TLV{
		tag:         v.Tag(),
		valueLength: uint16(v.Length()),
		value:       v,
	}
}

// NewCustom builds a record carrying raw bytes under an arbitrary tag.
// Intended for vendor-specific tags (0x1400-0x3FFF), but the tag is not
// validated: interoperating with non-conformant peers sometimes requires
// placing raw payloads under standard tags.
func NewCustom(tag Tag, value []byte) TLV {
	return TLV{
		tag:         tag,
		valueLength: uint16(len(value)),
		value:       Raw{RawTag: tag, Data: codec.AnyOctetString(value)},
	}
}

// NewCustomUint16 builds a custom record holding a big-endian u16.
func NewCustomUint16(tag Tag, v uint16) TLV {
	return NewCustom(tag, binary.BigEndian.AppendUint16(nil, v))
}

// NewCustomUint32 builds a custom record holding a big-endian u32.
func NewCustomUint32(tag Tag, v uint32) TLV {
	return NewCustom(tag, binary.BigEndian.AppendUint32(nil, v))
}

// NewCustomUint64 builds a custom record holding a big-endian u64.
func NewCustomUint64(tag Tag, v uint64) TLV {
	return NewCustom(tag, binary.BigEndian.AppendUint64(nil, v))
}

// NewCustomString builds a custom record holding the UTF-8 bytes of s
// followed by a single null octet.
func NewCustomString(tag Tag, s string) TLV {
	b := make([]byte, 0, len(s)+1)
	b = append(b, s...)
	b = append(b, 0)
	return NewCustom(tag, b)
}

// Tag returns the record's tag.
func (t TLV) Tag() Tag {
	return t.tag
}

// ValueLength returns the declared payload length in bytes.
func (t TLV) ValueLength() uint16 {
	return t.valueLength
}

// Value returns the typed payload, or nil for a zero-length record.
func (t TLV) Value() Value {
	return t.value
}

// RawBytes returns the payload of a raw (custom) record. Typed records are
// not exposed through this path.
func (t TLV) RawBytes() optional.Optional[[]byte] {
	if raw, ok := t.value.(Raw); ok {
		return optional.Some([]byte(raw.Data))
	}
	return optional.None[[]byte]()
}

// AsUint16 reinterprets a raw payload as a big-endian u16. The payload must
// be exactly two bytes.
func (t TLV) AsUint16() optional.Optional[uint16] {
	if b, ok := t.RawBytes().Get(); ok && len(b) == 2 {
		return optional.Some(binary.BigEndian.Uint16(b))
	}
	return optional.None[uint16]()
}

// AsUint32 reinterprets a raw payload as a big-endian u32. The payload must
// be exactly four bytes.
func (t TLV) AsUint32() optional.Optional[uint32] {
	if b, ok := t.RawBytes().Get(); ok && len(b) == 4 {
		return optional.Some(binary.BigEndian.Uint32(b))
	}
	return optional.None[uint32]()
}

// AsUint64 reinterprets a raw payload as a big-endian u64. The payload must
// be exactly eight bytes.
func (t TLV) AsUint64() optional.Optional[uint64] {
	if b, ok := t.RawBytes().Get(); ok && len(b) == 8 {
		return optional.Some(binary.BigEndian.Uint64(b))
	}
	return optional.None[uint64]()
}

// AsString decodes a raw payload as UTF-8, dropping one trailing null octet
// if present. Invalid UTF-8 yields nothing.
func (t TLV) AsString() optional.Optional[string] {
	b, ok := t.RawBytes().Get()
	if !ok {
		return optional.None[string]()
	}
	if n := len(b); n > 0 && b[n-1] == 0 {
		b = b[:n-1]
	}
	if !utf8.Valid(b) {
		return optional.None[string]()
	}
	return optional.Some(string(b))
}

// Length returns the full encoded size: tag, length field and payload.
func (t TLV) Length() int {
	return 4 + int(t.valueLength)
}

// EncodeTo appends the wire form of the record to b.
func (t TLV) EncodeTo(b []byte) []byte {
	b = codec.AppendUint16(b, uint16(t.tag))
	b = codec.AppendUint16(b, t.valueLength)
	if t.value != nil {
		b = t.value.EncodeTo(b)
	}
	return b
}

var _ codec.Field = TLV{}

// DecodeTLV extracts one record from the front of buf and returns the rest.
// Known tags decode to their typed value; everything else decodes as Raw. A
// zero-length record decodes with no value.
func DecodeTLV(buf []byte) (t TLV, rest []byte, err error) {
	rawTag, rest, err := codec.ReadUint16(buf)
	if err != nil {
		return TLV{}, nil, err
	}
	length, rest, err := codec.ReadUint16(rest)
	if err != nil {
		return TLV{}, nil, err
	}
	if len(rest) < int(length) {
		return TLV{}, nil, codec.ErrIncomplete
	}
	t.tag = Tag(rawTag)
	t.valueLength = length
	if length > 0 {
		if t.value, err = DecodeValue(t.tag, rest[:length]); err != nil {
			return TLV{}, nil, err
		}
	}
	return t, rest[length:], nil
}

// DecodeAll decodes records until buf is exhausted.
func DecodeAll(buf []byte) (tlvs []TLV, err error) {
	for len(buf) > 0 {
		var t TLV
		if t, buf, err = DecodeTLV(buf); err != nil {
			return nil, err
		}
		tlvs = append(tlvs, t)
	}
	return tlvs, nil
}
