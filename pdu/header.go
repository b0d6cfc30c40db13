// Package pdu implements SMPP protocol data units: the common header and the
// message-carrying operation bodies, including their optional parameters.
package pdu

import (
	"fmt"

	"github.com/smpp-go/smpp/codec"
)

// CommandID identifies the SMPP operation a PDU carries.
type CommandID uint32

// Operations modeled by this package and their responses. A response id is
// the request id with the high bit set.
const (
	CommandSubmitSm      CommandID = 0x00000004
	CommandDeliverSm     CommandID = 0x00000005
	CommandDataSm        CommandID = 0x00000103
	CommandSubmitSmResp  CommandID = 0x80000004
	CommandDeliverSmResp CommandID = 0x80000005
	CommandDataSmResp    CommandID = 0x80000103
)

// IsResponse reports whether id is a response operation.
func (id CommandID) IsResponse() bool {
	return id&0x80000000 != 0
}

func (id CommandID) String() string {
	switch id {
	case CommandSubmitSm:
		return "submit_sm"
	case CommandDeliverSm:
		return "deliver_sm"
	case CommandDataSm:
		return "data_sm"
	case CommandSubmitSmResp:
		return "submit_sm_resp"
	case CommandDeliverSmResp:
		return "deliver_sm_resp"
	case CommandDataSmResp:
		return "data_sm_resp"
	default:
		return fmt.Sprintf("0x%08X", uint32(id))
	}
}

// CommandStatus is the result code in a response header.
type CommandStatus uint32

// Common command statuses.
const (
	StatusOK            CommandStatus = 0x00000000
	StatusInvMsgLen     CommandStatus = 0x00000001
	StatusInvCmdLen     CommandStatus = 0x00000002
	StatusInvCmdID      CommandStatus = 0x00000003
	StatusSysErr        CommandStatus = 0x00000008
	StatusInvTlvStream  CommandStatus = 0x000000C0
	StatusTlvNotAllowed CommandStatus = 0x000000C1
	StatusInvTlvLen     CommandStatus = 0x000000C2
	StatusMissingTlv    CommandStatus = 0x000000C3
	StatusInvTlvVal     CommandStatus = 0x000000C4
)

// HeaderLength is the fixed size of every PDU header.
const HeaderLength = 16

// MaxShortMessageLength is the largest short_message that fits its one-octet
// sm_length field. Longer content must travel in a message_payload optional
// parameter.
const MaxShortMessageLength = 255

// Header is the fixed 16-byte preamble of every PDU. CommandLength covers
// the header itself plus the body.
type Header struct {
	CommandLength  uint32
	CommandID      CommandID
	CommandStatus  CommandStatus
	SequenceNumber uint32
}

func (Header) Length() int {
	return HeaderLength
}

func (h Header) EncodeTo(b []byte) []byte {
	b = codec.AppendUint32(b, h.CommandLength)
	b = codec.AppendUint32(b, uint32(h.CommandID))
	b = codec.AppendUint32(b, uint32(h.CommandStatus))
	return codec.AppendUint32(b, h.SequenceNumber)
}

// DecodeHeader reads a header from the front of buf.
func DecodeHeader(buf []byte) (h Header, rest []byte, err error) {
	if h.CommandLength, buf, err = codec.ReadUint32(buf); err != nil {
		return Header{}, nil, err
	}
	var id, status uint32
	if id, buf, err = codec.ReadUint32(buf); err != nil {
		return Header{}, nil, err
	}
	if status, buf, err = codec.ReadUint32(buf); err != nil {
		return Header{}, nil, err
	}
	if h.SequenceNumber, buf, err = codec.ReadUint32(buf); err != nil {
		return Header{}, nil, err
	}
	h.CommandID = CommandID(id)
	h.CommandStatus = CommandStatus(status)
	return h, buf, nil
}
