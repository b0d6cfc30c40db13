package tlv

import "github.com/smpp-go/smpp/types/optional"

// Container is the capability a PDU exposes for holding optional parameters.
// The sequence is ordered, preserves insertion order, and tolerates
// duplicate tags; lookups return the first match. None of the operations
// fail: absence is an empty result, not an error.
type Container interface {
	// PushTLV appends a record. PDU types with a short_message field clear
	// it as part of this call when a message_payload record is present.
	PushTLV(t TLV)

	// GetTLV returns the first record with the given tag, or nil.
	GetTLV(tag Tag) *TLV

	// TLVs returns the ordered sequence. Callers must treat it as read-only.
	TLVs() []TLV

	// MutTLVs returns the underlying sequence for bulk manipulation by the
	// owning PDU's own logic.
	MutTLVs() *[]TLV

	// RemoveTLV removes and returns the first record with the given tag.
	// Later records shift up; order is preserved.
	RemoveTLV(tag Tag) optional.Optional[TLV]

	// HasTLV reports whether a record with the given tag is present.
	HasTLV(tag Tag) bool

	// ClearTLVs removes all records.
	ClearTLVs()
}

// OptionalParams is the backing store for a PDU's optional parameters. PDU
// types embed it to satisfy Container; a type that needs push side effects
// shadows PushTLV with its own method.
type OptionalParams struct {
	tlvs []TLV
}

var _ Container = (*OptionalParams)(nil)

func (p *OptionalParams) PushTLV(t TLV) {
	p.tlvs = append(p.tlvs, t)
}

func (p *OptionalParams) GetTLV(tag Tag) *TLV {
	for i := range p.tlvs {
		if p.tlvs[i].tag == tag {
			return &p.tlvs[i]
		}
	}
	return nil
}

func (p *OptionalParams) TLVs() []TLV {
	return p.tlvs
}

func (p *OptionalParams) MutTLVs() *[]TLV {
	return &p.tlvs
}

func (p *OptionalParams) RemoveTLV(tag Tag) optional.Optional[TLV] {
	for i := range p.tlvs {
		if p.tlvs[i].tag == tag {
			t := p.tlvs[i]
			p.tlvs = append(p.tlvs[:i], p.tlvs[i+1:]...)
			return optional.Some(t)
		}
	}
	return optional.None[TLV]()
}

func (p *OptionalParams) HasTLV(tag Tag) bool {
	return p.GetTLV(tag) != nil
}

func (p *OptionalParams) ClearTLVs() {
	p.tlvs = nil
}

// Length returns the encoded size of the whole sequence.
func (p *OptionalParams) Length() int {
	n := 0
	for _, t := range p.tlvs {
		n += t.Length()
	}
	return n
}

// EncodeTo appends every record in order.
func (p *OptionalParams) EncodeTo(b []byte) []byte {
	for _, t := range p.tlvs {
		b = t.EncodeTo(b)
	}
	return b
}

// DecodeFrom replaces the sequence with records decoded from buf.
func (p *OptionalParams) DecodeFrom(buf []byte) error {
	tlvs, err := DecodeAll(buf)
	if err != nil {
		return err
	}
	p.tlvs = tlvs
	return nil
}
