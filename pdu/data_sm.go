package pdu

import (
	"github.com/smpp-go/smpp/codec"
	"github.com/smpp-go/smpp/tlv"
)

// DataSm is the interactive data exchange operation. It has no short_message
// field; message content always travels in a message_payload optional
// parameter, so pushing records has no side effects.
type DataSm struct {
	ServiceType        codec.COctetString
	SourceAddrTON      uint8
	SourceAddrNPI      uint8
	SourceAddr         codec.COctetString
	DestAddrTON        uint8
	DestAddrNPI        uint8
	DestinationAddr    codec.COctetString
	EsmClass           uint8
	RegisteredDelivery uint8
	DataCoding         uint8

	tlv.OptionalParams
}

var _ tlv.Container = (*DataSm)(nil)

// Length returns the encoded body size, excluding the header.
func (p *DataSm) Length() int {
	return p.ServiceType.Length() +
		2 +
		p.SourceAddr.Length() +
		2 +
		p.DestinationAddr.Length() +
		3 + // esm_class, registered_delivery, data_coding
		p.OptionalParams.Length()
}

// EncodeTo appends the body to b. It never fails; the error return keeps the
// signature uniform across PDU bodies.
func (p *DataSm) EncodeTo(b []byte) ([]byte, error) {
	b = p.ServiceType.EncodeTo(b)
	b = codec.AppendUint8(b, p.SourceAddrTON)
	b = codec.AppendUint8(b, p.SourceAddrNPI)
	b = p.SourceAddr.EncodeTo(b)
	b = codec.AppendUint8(b, p.DestAddrTON)
	b = codec.AppendUint8(b, p.DestAddrNPI)
	b = p.DestinationAddr.EncodeTo(b)
	b = codec.AppendUint8(b, p.EsmClass)
	b = codec.AppendUint8(b, p.RegisteredDelivery)
	b = codec.AppendUint8(b, p.DataCoding)
	return p.OptionalParams.EncodeTo(b), nil
}

// Decode replaces p with the body decoded from buf.
func (p *DataSm) Decode(buf []byte) (err error) {
	var out DataSm
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
	if out.RegisteredDelivery, buf, err = codec.ReadUint8(buf); err != nil {
		return err
	}
	if out.DataCoding, buf, err = codec.ReadUint8(buf); err != nil {
		return err
	}
	if err = out.OptionalParams.DecodeFrom(buf); err != nil {
		return err
	}
	*p = out
	return nil
}
