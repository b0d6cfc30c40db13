// Package codec implements the byte-level encoding primitives shared by SMPP
// PDU fields and optional parameters. All multi-byte integers are big-endian.
package codec

// Field is the interface implemented by anything that can place itself on the
// wire. EncodeTo appends the encoded bytes to b and returns the extended
// slice; Length reports the exact number of bytes EncodeTo will append.
type Field interface {
	Length() int
	EncodeTo(b []byte) []byte
}
