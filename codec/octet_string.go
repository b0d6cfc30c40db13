package codec

// COctetString is a null-terminated string field. The terminator is part of
// the wire encoding but not of the Go value.
type COctetString string

var _ Field = COctetString("")

// Length returns the encoded size, including the terminator.
func (s COctetString) Length() int {
	return len(s) + 1
}

// EncodeTo appends the string bytes followed by a single null octet.
func (s COctetString) EncodeTo(b []byte) []byte {
	b = append(b, s...)
	return append(b, 0)
}

// ReadCOctetString consumes bytes from buf up to and including the first null
// octet and returns the rest of the buffer.
func ReadCOctetString(buf []byte) (s COctetString, rest []byte, err error) {
	for i, c := range buf {
		if c == 0 {
			return COctetString(buf[:i]), buf[i+1:], nil
		}
	}
	return "", nil, ErrNoTerminator
}

// AnyOctetString is a raw octet field with no interior structure. It carries
// vendor-specific TLV payloads and other free-form fields.
type AnyOctetString []byte

var _ Field = AnyOctetString(nil)

func (o AnyOctetString) Length() int {
	return len(o)
}

func (o AnyOctetString) EncodeTo(b []byte) []byte {
	return append(b, o...)
}

// ReadOctets consumes exactly n bytes from buf. A zero-length read yields a
// nil field, so round trips of empty fields compare equal.
func ReadOctets(buf []byte, n int) (o AnyOctetString, rest []byte, err error) {
	if len(buf) < n {
		return nil, nil, ErrIncomplete
	}
	if n == 0 {
		return nil, buf, nil
	}
	return AnyOctetString(buf[:n]), buf[n:], nil
}
