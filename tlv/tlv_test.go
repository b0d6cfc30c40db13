package tlv_test

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/smpp-go/smpp/codec"
	"github.com/smpp-go/smpp/tlv"
	"github.com/stretchr/testify/require"
)

func bytesFromHex(t *testing.T, s string) []byte {
	b, err := hex.DecodeString(strings.ReplaceAll(s, " ", ""))
	require.NoError(t, err)
	return b
}

func TestNewFromValue(t *testing.T) {
	for _, v := range []tlv.Value{
		tlv.ScInterfaceVersion(0x50),
		tlv.UserMessageReference(7),
		tlv.QosTimeToLive(3600),
		tlv.ReceiptedMessageID("abc"),
		tlv.MessagePayload("payload"),
		tlv.AlertOnMessageDelivery{},
	} {
		rec := tlv.New(v)
		require.Equal(t, v.Tag(), rec.Tag())
		require.Equal(t, uint16(v.Length()), rec.ValueLength())
		require.Equal(t, v, rec.Value())
	}
}

func TestNewCustom(t *testing.T) {
	rec := tlv.NewCustom(0x1400, []byte{1, 2, 3, 4})
	require.Equal(t, tlv.Tag(0x1400), rec.Tag())
	require.Equal(t, uint16(4), rec.ValueLength())
	raw, ok := rec.RawBytes().Get()
	require.True(t, ok)
	require.Equal(t, []byte{1, 2, 3, 4}, raw)

	// the tag is deliberately not validated against the vendor range
	rec = tlv.NewCustom(tlv.TagMessagePayload, []byte{0xFF})
	require.Equal(t, tlv.TagMessagePayload, rec.Tag())
	require.True(t, rec.RawBytes().IsSet())
}

func TestCustomScalars(t *testing.T) {
	rec := tlv.NewCustomUint16(0x1401, 0xCAFE)
	require.Equal(t, uint16(2), rec.ValueLength())
	require.Equal(t, uint16(0xCAFE), rec.AsUint16().Unwrap())
	require.False(t, rec.AsUint32().IsSet())
	require.False(t, rec.AsUint64().IsSet())

	rec = tlv.NewCustomUint32(0x1402, 0xDEADBEEF)
	require.Equal(t, uint16(4), rec.ValueLength())
	require.Equal(t, uint32(0xDEADBEEF), rec.AsUint32().Unwrap())
	require.False(t, rec.AsUint16().IsSet())

	rec = tlv.NewCustomUint64(0x1403, 0x0102030405060708)
	require.Equal(t, uint16(8), rec.ValueLength())
	require.Equal(t, uint64(0x0102030405060708), rec.AsUint64().Unwrap())
	require.False(t, rec.AsUint32().IsSet())

	// a 3-byte payload never decodes as any fixed width
	rec = tlv.NewCustom(0x1404, []byte{1, 2, 3})
	require.False(t, rec.AsUint16().IsSet())
	require.False(t, rec.AsUint32().IsSet())
	require.False(t, rec.AsUint64().IsSet())
}

func TestCustomString(t *testing.T) {
	rec := tlv.NewCustomString(0x1405, "billing-ref-42")
	require.Equal(t, uint16(15), rec.ValueLength()) // includes the terminator
	require.Equal(t, "billing-ref-42", rec.AsString().Unwrap())

	// without a trailing null the bytes decode as-is
	rec = tlv.NewCustom(0x1405, []byte("plain"))
	require.Equal(t, "plain", rec.AsString().Unwrap())

	// invalid UTF-8 yields nothing
	rec = tlv.NewCustom(0x1405, []byte{0xFF, 0xFE, 0x00})
	require.False(t, rec.AsString().IsSet())
}

func TestTypedNotExposedAsRaw(t *testing.T) {
	rec := tlv.New(tlv.UserMessageReference(7))
	require.False(t, rec.RawBytes().IsSet())
	require.False(t, rec.AsUint16().IsSet())
	require.False(t, rec.AsString().IsSet())
}

func TestEncode(t *testing.T) {
	rec := tlv.New(tlv.MessagePayload("AB"))
	require.Equal(t, 6, rec.Length())
	require.Equal(t, bytesFromHex(t, "0424 0002 4142"), rec.EncodeTo(nil))

	rec = tlv.NewCustomUint16(0x1400, 0xCAFE)
	require.Equal(t, bytesFromHex(t, "1400 0002 CAFE"), rec.EncodeTo(nil))
}

func TestDecodeTLV(t *testing.T) {
	tests := []struct {
		input string
		bad   bool
		tag   tlv.Tag
		raw   bool
	}{
		{input: "", bad: true},               // empty
		{input: "04", bad: true},             // truncated tag
		{input: "0424", bad: true},           // missing length
		{input: "0424 00", bad: true},        // truncated length
		{input: "0424 0005 4142", bad: true}, // incomplete value
		{input: "0204 0001 42", bad: true},   // length mismatch for typed shape
		{input: "130C 0000", tag: tlv.TagAlertOnMessageDelivery},
		{input: "0424 0002 4142", tag: tlv.TagMessagePayload},
		{input: "0204 0002 1234", tag: tlv.TagUserMessageReference},
		{input: "1400 0003 010203", tag: 0x1400, raw: true},
		{input: "0005 0001 01", tag: tlv.TagDestAddrSubunit, raw: true},
	}
	for _, tt := range tests {
		rec, rest, err := tlv.DecodeTLV(bytesFromHex(t, tt.input))
		if tt.bad {
			require.Error(t, err, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		require.Empty(t, rest, tt.input)
		require.Equal(t, tt.tag, rec.Tag(), tt.input)
		require.Equal(t, tt.raw, rec.RawBytes().IsSet(), tt.input)
	}
}

func TestDecodeZeroLength(t *testing.T) {
	rec, rest, err := tlv.DecodeTLV(bytesFromHex(t, "130C 0000"))
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Nil(t, rec.Value())
	require.Equal(t, uint16(0), rec.ValueLength())
}

func TestWireRoundTrip(t *testing.T) {
	for _, rec := range []tlv.TLV{
		tlv.New(tlv.UserMessageReference(0x1234)),
		tlv.New(tlv.MessagePayload("hello world")),
		tlv.New(tlv.NetworkErrorCode{Type: 3, Code: 8}),
		tlv.New(tlv.ReceiptedMessageID("id-7")),
		tlv.NewCustom(0x1400, []byte{1, 2, 3}),
		tlv.NewCustomString(0x14FF, "x"),
	} {
		got, rest, err := tlv.DecodeTLV(rec.EncodeTo(nil))
		require.NoError(t, err)
		require.Empty(t, rest)
		require.Equal(t, rec, got)
	}
}

func TestDecodeAll(t *testing.T) {
	wire := bytesFromHex(t, "0204 0002 1234  1400 0001 FF  130C 0000")
	tlvs, err := tlv.DecodeAll(wire)
	require.NoError(t, err)
	require.Len(t, tlvs, 3)
	require.Equal(t, tlv.TagUserMessageReference, tlvs[0].Tag())
	require.Equal(t, tlv.Tag(0x1400), tlvs[1].Tag())
	require.Equal(t, tlv.TagAlertOnMessageDelivery, tlvs[2].Tag())

	_, err = tlv.DecodeAll(bytesFromHex(t, "0204 0002 1234 04"))
	require.ErrorIs(t, err, codec.ErrIncomplete)
}
