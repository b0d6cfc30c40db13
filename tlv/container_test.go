package tlv_test

import (
	"testing"

	"github.com/smpp-go/smpp/tlv"
	"github.com/stretchr/testify/require"
)

func TestContainerOrder(t *testing.T) {
	var c tlv.OptionalParams
	r1 := tlv.NewCustom(0x1400, []byte{1})
	r2 := tlv.New(tlv.UserMessageReference(2))
	r3 := tlv.NewCustom(0x1401, []byte{3})
	c.PushTLV(r1)
	c.PushTLV(r2)
	c.PushTLV(r3)
	require.Equal(t, []tlv.TLV{r1, r2, r3}, c.TLVs())
}

func TestContainerFindRemove(t *testing.T) {
	var c tlv.OptionalParams
	rec := tlv.NewCustomUint32(0x1400, 99)
	c.PushTLV(rec)

	require.True(t, c.HasTLV(0x1400))
	got := c.GetTLV(0x1400)
	require.NotNil(t, got)
	require.Equal(t, rec, *got)
	require.Nil(t, c.GetTLV(0x1401))
	require.False(t, c.HasTLV(0x1401))

	removed := c.RemoveTLV(0x1400)
	require.Equal(t, rec, removed.Unwrap())
	require.False(t, c.HasTLV(0x1400))
	require.False(t, c.RemoveTLV(0x1400).IsSet())
}

func TestContainerDuplicates(t *testing.T) {
	var c tlv.OptionalParams
	first := tlv.NewCustom(0x1400, []byte{1})
	second := tlv.NewCustom(0x1400, []byte{2})
	other := tlv.NewCustom(0x1401, []byte{9})
	c.PushTLV(first)
	c.PushTLV(other)
	c.PushTLV(second)

	// first-match semantics
	require.Equal(t, first, *c.GetTLV(0x1400))

	// removal keeps the order of the remaining records
	require.Equal(t, first, c.RemoveTLV(0x1400).Unwrap())
	require.Equal(t, []tlv.TLV{other, second}, c.TLVs())
	require.Equal(t, second, *c.GetTLV(0x1400))
}

func TestContainerClear(t *testing.T) {
	var c tlv.OptionalParams
	c.PushTLV(tlv.NewCustom(0x1400, []byte{1}))
	c.PushTLV(tlv.New(tlv.MessagePayload("x")))
	c.ClearTLVs()
	require.Empty(t, c.TLVs())
	require.False(t, c.HasTLV(0x1400))
	require.False(t, c.HasTLV(tlv.TagMessagePayload))
}

func TestContainerMutTLVs(t *testing.T) {
	var c tlv.OptionalParams
	c.PushTLV(tlv.NewCustom(0x1400, []byte{1}))

	seq := c.MutTLVs()
	*seq = append(*seq, tlv.New(tlv.ScInterfaceVersion(0x34)))
	require.Len(t, c.TLVs(), 2)
	require.True(t, c.HasTLV(tlv.TagScInterfaceVersion))
}

func TestContainerEncodeDecode(t *testing.T) {
	var c tlv.OptionalParams
	c.PushTLV(tlv.New(tlv.UserMessageReference(7)))
	c.PushTLV(tlv.NewCustom(0x1400, []byte{0xAA}))

	wire := c.EncodeTo(nil)
	require.Equal(t, c.Length(), len(wire))

	var back tlv.OptionalParams
	require.NoError(t, back.DecodeFrom(wire))
	require.Equal(t, c.TLVs(), back.TLVs())
}
