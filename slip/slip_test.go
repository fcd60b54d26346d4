package slip

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xioTechnologies/OSC99/errs"
	"github.com/xioTechnologies/OSC99/osc99types"
)

func limits(t *testing.T) osc99types.Limits {
	t.Helper()
	l, err := osc99types.NewLimits()
	require.NoError(t, err)
	return l
}

func TestEncode_EscapesEndAndEsc(t *testing.T) {
	dst := make([]byte, 0, 32)
	dst, err := Encode([]byte{0x01, end, 0x02, esc, 0x03}, dst)
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, esc, escEnd, 0x02, esc, escEsc, 0x03, end}, dst)
}

func TestEncode_DestinationTooSmall_LeavesDstUnchanged(t *testing.T) {
	dst := make([]byte, 2, 3)
	dst[0], dst[1] = 0xAA, 0xBB
	before := append([]byte(nil), dst...)

	_, err := Encode([]byte{end}, dst)
	require.Equal(t, errs.CodeDestinationTooSmall, errs.CodeOf(err))
	require.Equal(t, before, dst)
}

func TestDecoder_RoundTrip(t *testing.T) {
	l := limits(t)

	var got [][]byte
	d := NewDecoder(l, PacketHandlerFunc(func(contents []byte) error {
		cp := append([]byte(nil), contents...)
		got = append(got, cp)
		return nil
	}))

	contents := []byte{0x01, end, 0x02, esc, 0x03}
	encoded := make([]byte, 0, 32)
	encoded, err := Encode(contents, encoded)
	require.NoError(t, err)

	for _, b := range encoded {
		require.NoError(t, d.ProcessByte(b))
	}

	require.Len(t, got, 1)
	require.Equal(t, contents, got[0])
}

func TestDecoder_UnexpectedByteAfterEsc(t *testing.T) {
	l := limits(t)
	d := NewDecoder(l, PacketHandlerFunc(func([]byte) error { return nil }))

	for _, b := range []byte{0x01, esc, 0x99, end} {
		err := d.ProcessByte(b)
		if b == end {
			require.Equal(t, errs.CodeUnexpectedByteAfterSLIPEsc, errs.CodeOf(err))
		} else {
			require.NoError(t, err)
		}
	}
}

func TestDecoder_NilHandler(t *testing.T) {
	l := limits(t)
	d := NewDecoder(l, nil)

	err := d.ProcessByte(end)
	require.Equal(t, errs.CodeCallbackUndefined, errs.CodeOf(err))
}

func TestDecoder_ClearBuffer(t *testing.T) {
	l := limits(t)
	d := NewDecoder(l, PacketHandlerFunc(func([]byte) error { return nil }))

	require.NoError(t, d.ProcessByte(0x01))
	require.NoError(t, d.ProcessByte(0x02))
	d.ClearBuffer()
	require.Empty(t, d.buffer)
}

func TestDecoder_EncodedTooLong(t *testing.T) {
	l, err := osc99types.NewLimits(osc99types.WithMaxTransportSize(8))
	require.NoError(t, err)

	d := NewDecoder(l, PacketHandlerFunc(func([]byte) error { return nil }))

	var lastErr error
	for i := 0; i < 8; i++ {
		lastErr = d.ProcessByte(0x01)
	}
	require.Equal(t, errs.CodeEncodedSLIPTooLong, errs.CodeOf(lastErr))
	require.Empty(t, d.buffer)
}
