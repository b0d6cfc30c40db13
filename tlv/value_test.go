package tlv_test

import (
	"testing"

	"github.com/smpp-go/smpp/codec"
	"github.com/smpp-go/smpp/tlv"
	"github.com/stretchr/testify/require"
)

func TestValueShapes(t *testing.T) {
	tests := []struct {
		value tlv.Value
		tag   tlv.Tag
		wire  []byte
	}{
		{tlv.ScInterfaceVersion(0x34), tlv.TagScInterfaceVersion, []byte{0x34}},
		{tlv.MessageStateDelivered, tlv.TagMessageState, []byte{0x02}},
		{tlv.MoreMessagesToSend(1), tlv.TagMoreMessagesToSend, []byte{0x01}},
		{tlv.SarTotalSegments(3), tlv.TagSarTotalSegments, []byte{0x03}},
		{tlv.SarSegmentSeqnum(2), tlv.TagSarSegmentSeqnum, []byte{0x02}},
		{tlv.UserMessageReference(0x1234), tlv.TagUserMessageReference, []byte{0x12, 0x34}},
		{tlv.SarMsgRefNum(0xBEEF), tlv.TagSarMsgRefNum, []byte{0xBE, 0xEF}},
		{tlv.SourcePort(8080), tlv.TagSourcePort, []byte{0x1F, 0x90}},
		{tlv.DestinationPort(443), tlv.TagDestinationPort, []byte{0x01, 0xBB}},
		{tlv.QosTimeToLive(86400), tlv.TagQosTimeToLive, []byte{0x00, 0x01, 0x51, 0x80}},
		{tlv.ReceiptedMessageID("msg001"), tlv.TagReceiptedMessageID,
			[]byte{'m', 's', 'g', '0', '0', '1', 0}},
		{tlv.AdditionalStatusInfoText("ok"), tlv.TagAdditionalStatusInfoText,
			[]byte{'o', 'k', 0}},
		{tlv.MessagePayload("hello"), tlv.TagMessagePayload, []byte("hello")},
		{tlv.CallbackNum{0x01, 0x01, 0x35, 0x35}, tlv.TagCallbackNum, []byte{0x01, 0x01, 0x35, 0x35}},
		{tlv.NetworkErrorCode{Type: 3, Code: 0x0042}, tlv.TagNetworkErrorCode, []byte{0x03, 0x00, 0x42}},
		{tlv.AlertOnMessageDelivery{}, tlv.TagAlertOnMessageDelivery, []byte{}},
	}
	for _, tt := range tests {
		require.Equal(t, tt.tag, tt.value.Tag(), "%T", tt.value)
		require.Equal(t, len(tt.wire), tt.value.Length(), "%T", tt.value)
		require.Equal(t, tt.wire, tt.value.EncodeTo([]byte{}), "%T", tt.value)
	}
}

func TestDecodeValueTyped(t *testing.T) {
	v, err := tlv.DecodeValue(tlv.TagUserMessageReference, []byte{0x12, 0x34})
	require.NoError(t, err)
	require.Equal(t, tlv.UserMessageReference(0x1234), v)

	v, err = tlv.DecodeValue(tlv.TagMessageState, []byte{0x05})
	require.NoError(t, err)
	require.Equal(t, tlv.MessageStateUndeliverable, v)
	require.Equal(t, "UNDELIVERABLE", v.(tlv.MessageState).String())

	v, err = tlv.DecodeValue(tlv.TagNetworkErrorCode, []byte{0x03, 0x00, 0x42})
	require.NoError(t, err)
	require.Equal(t, tlv.NetworkErrorCode{Type: 3, Code: 0x0042}, v)

	v, err = tlv.DecodeValue(tlv.TagReceiptedMessageID, []byte{'i', 'd', 0})
	require.NoError(t, err)
	require.Equal(t, tlv.ReceiptedMessageID("id"), v)
}

func TestDecodeValueLengthMismatch(t *testing.T) {
	for _, tt := range []struct {
		tag  tlv.Tag
		data []byte
	}{
		{tlv.TagUserMessageReference, []byte{0x12}},
		{tlv.TagUserMessageReference, []byte{0x12, 0x34, 0x56}},
		{tlv.TagScInterfaceVersion, []byte{}},
		{tlv.TagQosTimeToLive, []byte{1, 2, 3}},
		{tlv.TagNetworkErrorCode, []byte{1, 2}},
		{tlv.TagAlertOnMessageDelivery, []byte{1}},
		{tlv.TagReceiptedMessageID, []byte{'i', 'd'}}, // missing terminator
	} {
		_, err := tlv.DecodeValue(tt.tag, tt.data)
		require.ErrorIs(t, err, tlv.ErrValueLength, "tag %s", tt.tag)
	}
}

func TestDecodeValueRaw(t *testing.T) {
	// vendor tag
	v, err := tlv.DecodeValue(tlv.Tag(0x1400), []byte{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, tlv.Raw{RawTag: 0x1400, Data: codec.AnyOctetString{1, 2, 3}}, v)

	// standard tag without a modeled shape
	v, err = tlv.DecodeValue(tlv.TagDestAddrSubunit, []byte{0x01})
	require.NoError(t, err)
	raw, ok := v.(tlv.Raw)
	require.True(t, ok)
	require.Equal(t, tlv.TagDestAddrSubunit, raw.Tag())
}
