package pdu

import (
	"github.com/smpp-go/smpp/codec"
	"github.com/smpp-go/smpp/tlv"
)

// SubmitSm is the ESME-to-SMSC message submission operation. Message content
// travels either in ShortMessage or in a message_payload optional parameter,
// never both: pushing a message_payload record clears ShortMessage. Removing
// the record afterwards does not restore it; this asymmetry is part of the
// reference behavior.
type SubmitSm struct {
	ServiceType          codec.COctetString
	SourceAddrTON        uint8
	SourceAddrNPI        uint8
	SourceAddr           codec.COctetString
	DestAddrTON          uint8
	DestAddrNPI          uint8
	DestinationAddr      codec.COctetString
	EsmClass             uint8
	ProtocolID           uint8
	PriorityFlag         uint8
	ScheduleDeliveryTime codec.COctetString
	ValidityPeriod       codec.COctetString
	RegisteredDelivery   uint8
	ReplaceIfPresentFlag uint8
	DataCoding           uint8
	SmDefaultMsgID       uint8
	// ShortMessage is the inline message content. sm_length is derived from
	// it on encode and never stored separately.
	ShortMessage codec.AnyOctetString

	tlv.OptionalParams
}

var _ tlv.Container = (*SubmitSm)(nil)

// PushTLV appends a record and clears ShortMessage while a message_payload
// record is present.
func (p *SubmitSm) PushTLV(t tlv.TLV) {
	p.OptionalParams.PushTLV(t)
	if p.HasTLV(tlv.TagMessagePayload) {
		p.ShortMessage = nil
	}
}

// Length returns the encoded body size, excluding the header.
func (p *SubmitSm) Length() int {
	return p.ServiceType.Length() +
		2 + // source ton, npi
		p.SourceAddr.Length() +
		2 + // dest ton, npi
		p.DestinationAddr.Length() +
		2 + // esm_class, protocol_id
		1 + // priority_flag
		p.ScheduleDeliveryTime.Length() +
		p.ValidityPeriod.Length() +
		4 + // registered_delivery .. sm_default_msg_id
		1 + len(p.ShortMessage) +
		p.OptionalParams.Length()
}

// EncodeTo appends the body to b. It fails with codec.ErrTooLong when
// ShortMessage exceeds MaxShortMessageLength, since sm_length is one octet.
func (p *SubmitSm) EncodeTo(b []byte) ([]byte, error) {
	if len(p.ShortMessage) > MaxShortMessageLength {
		return nil, codec.ErrTooLong
	}
	b = p.ServiceType.EncodeTo(b)
	b = codec.AppendUint8(b, p.SourceAddrTON)
	b = codec.AppendUint8(b, p.SourceAddrNPI)
	b = p.SourceAddr.EncodeTo(b)
	b = codec.AppendUint8(b, p.DestAddrTON)
	b = codec.AppendUint8(b, p.DestAddrNPI)
	b = p.DestinationAddr.EncodeTo(b)
	b = codec.AppendUint8(b, p.EsmClass)
	b = codec.AppendUint8(b, p.ProtocolID)
	b = codec.AppendUint8(b, p.PriorityFlag)
	b = p.ScheduleDeliveryTime.EncodeTo(b)
	b = p.ValidityPeriod.EncodeTo(b)
	b = codec.AppendUint8(b, p.RegisteredDelivery)
	b = codec.AppendUint8(b, p.ReplaceIfPresentFlag)
	b = codec.AppendUint8(b, p.DataCoding)
	b = codec.AppendUint8(b, p.SmDefaultMsgID)
	b = codec.AppendUint8(b, uint8(len(p.ShortMessage)))
	b = p.ShortMessage.EncodeTo(b)
	return p.OptionalParams.EncodeTo(b), nil
}

// Decode replaces p with the body decoded from buf. buf must hold exactly
// one body; trailing bytes after the fixed fields are the TLV section.
func (p *SubmitSm) Decode(buf []byte) (err error) {
	var out SubmitSm
	if out.ServiceType, buf, err = codec.ReadCOctetString(buf); err != nil {
		return err
	}
	if out.SourceAddrTON, buf, err = codec.ReadUint8(buf); err != nil {
		return err
	}
	if out.SourceAddrNPI, buf, err = codec.ReadUint8(buf); err != nil {
		return err
	}
	if out.SourceAddr, buf, err = codec.ReadCOctetString(buf); err != nil {
		return err
	}
	if out.DestAddrTON, buf, err = codec.ReadUint8(buf); err != nil {
		return err
	}
	if out.DestAddrNPI, buf, err = codec.ReadUint8(buf); err != nil {
		return err
	}
	if out.DestinationAddr, buf, err = codec.ReadCOctetString(buf); err != nil {
		return err
	}
	if out.EsmClass, buf, err = codec.ReadUint8(buf); err != nil {
		return err
	}
	if out.ProtocolID, buf, err = codec.ReadUint8(buf); err != nil {
		return err
	}
	if out.PriorityFlag, buf, err = codec.ReadUint8(buf); err != nil {
		return err
	}
	if out.ScheduleDeliveryTime, buf, err = codec.ReadCOctetString(buf); err != nil {
		return err
	}
	if out.ValidityPeriod, buf, err = codec.ReadCOctetString(buf); err != nil {
		return err
	}
	if out.RegisteredDelivery, buf, err = codec.ReadUint8(buf); err != nil {
		return err
	}
	if out.ReplaceIfPresentFlag, buf, err = codec.ReadUint8(buf); err != nil {
		return err
	}
	if out.DataCoding, buf, err = codec.ReadUint8(buf); err != nil {
		return err
	}
	if out.SmDefaultMsgID, buf, err = codec.ReadUint8(buf); err != nil {
		return err
	}
	var smLength uint8
	if smLength, buf, err = codec.ReadUint8(buf); err != nil {
		return err
	}
	if out.ShortMessage, buf, err = codec.ReadOctets(buf, int(smLength)); err != nil {
		return err
	}
	if err = out.OptionalParams.DecodeFrom(buf); err != nil {
		return err
	}
	*p = out
	return nil
}
