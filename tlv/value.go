package tlv

import (
	"errors"

	"github.com/smpp-go/smpp/codec"
)

// Value is the payload of one optional parameter. Each standard tag modeled
// by this package has its own concrete type; everything else travels as Raw.
type Value interface {
	codec.Field

	// Tag returns the tag this value is carried under.
	Tag() Tag
}

// ErrValueLength is returned when a value is decoded from a payload whose
// length does not match the tag's defined shape.
var ErrValueLength = errors.New("value length does not match tag")

// ScInterfaceVersion is the SMPP interface version supported by the message
// center, e.g. 0x34 for v3.4.
type ScInterfaceVersion uint8

func (ScInterfaceVersion) Tag() Tag    { return TagScInterfaceVersion }
func (ScInterfaceVersion) Length() int { return 1 }
func (v ScInterfaceVersion) EncodeTo(b []byte) []byte {
	return codec.AppendUint8(b, uint8(v))
}

// MessageState is the delivery state of a message in a delivery receipt.
type MessageState uint8

// Message states.
const (
	MessageStateEnroute       MessageState = 1
	MessageStateDelivered     MessageState = 2
	MessageStateExpired       MessageState = 3
	MessageStateDeleted       MessageState = 4
	MessageStateUndeliverable MessageState = 5
	MessageStateAccepted      MessageState = 6
	MessageStateUnknown       MessageState = 7
	MessageStateRejected      MessageState = 8
)

func (MessageState) Tag() Tag    { return TagMessageState }
func (MessageState) Length() int { return 1 }
func (v MessageState) EncodeTo(b []byte) []byte {
	return codec.AppendUint8(b, uint8(v))
}

func (v MessageState) String() string {
	switch v {
	case MessageStateEnroute:
		return "ENROUTE"
	case MessageStateDelivered:
		return "DELIVERED"
	case MessageStateExpired:
		return "EXPIRED"
	case MessageStateDeleted:
		return "DELETED"
	case MessageStateUndeliverable:
		return "UNDELIVERABLE"
	case MessageStateAccepted:
		return "ACCEPTED"
	case MessageStateUnknown:
		return "UNKNOWN"
	case MessageStateRejected:
		return "REJECTED"
	default:
		return "RESERVED"
	}
}

// MoreMessagesToSend indicates whether further messages follow in the same
// session.
type MoreMessagesToSend uint8

func (MoreMessagesToSend) Tag() Tag    { return TagMoreMessagesToSend }
func (MoreMessagesToSend) Length() int { return 1 }
func (v MoreMessagesToSend) EncodeTo(b []byte) []byte {
	return codec.AppendUint8(b, uint8(v))
}

// SarTotalSegments is the total number of segments of a concatenated message.
type SarTotalSegments uint8

func (SarTotalSegments) Tag() Tag    { return TagSarTotalSegments }
func (SarTotalSegments) Length() int { return 1 }
func (v SarTotalSegments) EncodeTo(b []byte) []byte {
	return codec.AppendUint8(b, uint8(v))
}

// SarSegmentSeqnum is the sequence number of one segment of a concatenated
// message.
type SarSegmentSeqnum uint8

func (SarSegmentSeqnum) Tag() Tag    { return TagSarSegmentSeqnum }
func (SarSegmentSeqnum) Length() int { return 1 }
func (v SarSegmentSeqnum) EncodeTo(b []byte) []byte {
	return codec.AppendUint8(b, uint8(v))
}

// UserMessageReference is an ESME-assigned reference echoed back in
// responses and receipts.
type UserMessageReference uint16

func (UserMessageReference) Tag() Tag    { return TagUserMessageReference }
func (UserMessageReference) Length() int { return 2 }
func (v UserMessageReference) EncodeTo(b []byte) []byte {
	return codec.AppendUint16(b, uint16(v))
}

// SarMsgRefNum is the reference number shared by all segments of a
// concatenated message.
type SarMsgRefNum uint16

func (SarMsgRefNum) Tag() Tag    { return TagSarMsgRefNum }
func (SarMsgRefNum) Length() int { return 2 }
func (v SarMsgRefNum) EncodeTo(b []byte) []byte {
	return codec.AppendUint16(b, uint16(v))
}

// SourcePort is the application port on the originating device.
type SourcePort uint16

func (SourcePort) Tag() Tag    { return TagSourcePort }
func (SourcePort) Length() int { return 2 }
func (v SourcePort) EncodeTo(b []byte) []byte {
	return codec.AppendUint16(b, uint16(v))
}

// DestinationPort is the application port on the receiving device.
type DestinationPort uint16

func (DestinationPort) Tag() Tag    { return TagDestinationPort }
func (DestinationPort) Length() int { return 2 }
func (v DestinationPort) EncodeTo(b []byte) []byte {
	return codec.AppendUint16(b, uint16(v))
}

// QosTimeToLive is the message time-to-live in seconds.
type QosTimeToLive uint32

func (QosTimeToLive) Tag() Tag    { return TagQosTimeToLive }
func (QosTimeToLive) Length() int { return 4 }
func (v QosTimeToLive) EncodeTo(b []byte) []byte {
	return codec.AppendUint32(b, uint32(v))
}

// ReceiptedMessageID is the message center id of the receipted message.
type ReceiptedMessageID codec.COctetString

func (ReceiptedMessageID) Tag() Tag      { return TagReceiptedMessageID }
func (v ReceiptedMessageID) Length() int { return codec.COctetString(v).Length() }
func (v ReceiptedMessageID) EncodeTo(b []byte) []byte {
	return codec.COctetString(v).EncodeTo(b)
}

// AdditionalStatusInfoText is free-format diagnostic text.
type AdditionalStatusInfoText codec.COctetString

func (AdditionalStatusInfoText) Tag() Tag      { return TagAdditionalStatusInfoText }
func (v AdditionalStatusInfoText) Length() int { return codec.COctetString(v).Length() }
func (v AdditionalStatusInfoText) EncodeTo(b []byte) []byte {
	return codec.COctetString(v).EncodeTo(b)
}

// MessagePayload carries message content too long for the short_message
// field. A PDU must not populate both carriers at once.
type MessagePayload codec.AnyOctetString

func (MessagePayload) Tag() Tag      { return TagMessagePayload }
func (v MessagePayload) Length() int { return len(v) }
func (v MessagePayload) EncodeTo(b []byte) []byte {
	return append(b, v...)
}

// CallbackNum is a callback number in its composite wire form.
type CallbackNum codec.AnyOctetString

func (CallbackNum) Tag() Tag      { return TagCallbackNum }
func (v CallbackNum) Length() int { return len(v) }
func (v CallbackNum) EncodeTo(b []byte) []byte {
	return append(b, v...)
}

// NetworkErrorCode identifies the network and error code of a delivery
// failure.
type NetworkErrorCode struct {
	Type uint8
	Code uint16
}

func (NetworkErrorCode) Tag() Tag    { return TagNetworkErrorCode }
func (NetworkErrorCode) Length() int { return 3 }
func (v NetworkErrorCode) EncodeTo(b []byte) []byte {
	b = codec.AppendUint8(b, v.Type)
	return codec.AppendUint16(b, v.Code)
}

// AlertOnMessageDelivery requests an alert on delivery. It has no payload;
// its presence is the signal.
type AlertOnMessageDelivery struct{}

func (AlertOnMessageDelivery) Tag() Tag                 { return TagAlertOnMessageDelivery }
func (AlertOnMessageDelivery) Length() int              { return 0 }
func (AlertOnMessageDelivery) EncodeTo(b []byte) []byte { return b }

// Raw is the open escape variant: an uninterpreted payload under an
// arbitrary tag. It represents vendor-specific parameters and standard tags
// this package does not model.
type Raw struct {
	RawTag Tag
	Data   codec.AnyOctetString
}

func (v Raw) Tag() Tag    { return v.RawTag }
func (v Raw) Length() int { return len(v.Data) }
func (v Raw) EncodeTo(b []byte) []byte {
	return v.Data.EncodeTo(b)
}

// DecodeValue reconstructs the typed value carried under tag from its wire
// payload. Tags without a modeled shape decode as Raw. The payload length
// must match the tag's defined shape exactly.
func DecodeValue(tag Tag, data []byte) (Value, error) {
	switch tag {
	case TagScInterfaceVersion:
		if len(data) != 1 {
			return nil, ErrValueLength
		}
		return ScInterfaceVersion(data[0]), nil
	case TagMessageState:
		if len(data) != 1 {
			return nil, ErrValueLength
		}
		return MessageState(data[0]), nil
	case TagMoreMessagesToSend:
		if len(data) != 1 {
			return nil, ErrValueLength
		}
		return MoreMessagesToSend(data[0]), nil
	case TagSarTotalSegments:
		if len(data) != 1 {
			return nil, ErrValueLength
		}
		return SarTotalSegments(data[0]), nil
	case TagSarSegmentSeqnum:
		if len(data) != 1 {
			return nil, ErrValueLength
		}
		return SarSegmentSeqnum(data[0]), nil
	case TagUserMessageReference:
		v, _, err := codec.ReadUint16(data)
		if err != nil || len(data) != 2 {
			return nil, ErrValueLength
		}
		return UserMessageReference(v), nil
	case TagSarMsgRefNum:
		v, _, err := codec.ReadUint16(data)
		if err != nil || len(data) != 2 {
			return nil, ErrValueLength
		}
		return SarMsgRefNum(v), nil
	case TagSourcePort:
		v, _, err := codec.ReadUint16(data)
		if err != nil || len(data) != 2 {
			return nil, ErrValueLength
		}
		return SourcePort(v), nil
	case TagDestinationPort:
		v, _, err := codec.ReadUint16(data)
		if err != nil || len(data) != 2 {
			return nil, ErrValueLength
		}
		return DestinationPort(v), nil
	case TagQosTimeToLive:
		v, _, err := codec.ReadUint32(data)
		if err != nil || len(data) != 4 {
			return nil, ErrValueLength
		}
		return QosTimeToLive(v), nil
	case TagReceiptedMessageID:
		s, rest, err := codec.ReadCOctetString(data)
		if err != nil || len(rest) != 0 {
			return nil, ErrValueLength
		}
		return ReceiptedMessageID(s), nil
	case TagAdditionalStatusInfoText:
		s, rest, err := codec.ReadCOctetString(data)
		if err != nil || len(rest) != 0 {
			return nil, ErrValueLength
		}
		return AdditionalStatusInfoText(s), nil
	case TagMessagePayload:
		return MessagePayload(data), nil
	case TagCallbackNum:
		return CallbackNum(data), nil
	case TagNetworkErrorCode:
		if len(data) != 3 {
			return nil, ErrValueLength
		}
		typ, rest, _ := codec.ReadUint8(data)
		code, _, _ := codec.ReadUint16(rest)
		return NetworkErrorCode{Type: typ, Code: code}, nil
	case TagAlertOnMessageDelivery:
		if len(data) != 0 {
			return nil, ErrValueLength
		}
		return AlertOnMessageDelivery{}, nil
	default:
		return Raw{RawTag: tag, Data: codec.AnyOctetString(data)}, nil
	}
}
