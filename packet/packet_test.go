package packet

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xioTechnologies/OSC99/bundle"
	"github.com/xioTechnologies/OSC99/errs"
	"github.com/xioTechnologies/OSC99/message"
	"github.com/xioTechnologies/OSC99/osc99types"
)

func limits(t *testing.T) osc99types.Limits {
	t.Helper()
	l, err := osc99types.NewLimits()
	require.NoError(t, err)
	return l
}

func TestFromContents_Message_DispatchesSingleMessage(t *testing.T) {
	l := limits(t)
	m, err := message.New(l, "/one")
	require.NoError(t, err)
	require.NoError(t, m.AddInt32(5))

	pkt, err := FromContents(l, m)
	require.NoError(t, err)

	var got []string
	err = pkt.Dispatch(MessageHandlerFunc(func(tt *osc99types.TimeTag, msg *message.Message) error {
		require.Nil(t, tt)
		got = append(got, msg.AddressPattern())
		return nil
	}))
	require.NoError(t, err)
	require.Equal(t, []string{"/one"}, got)
}

func TestFromContents_NestedBundle_PropagatesTimeTag(t *testing.T) {
	l := limits(t)

	inner := bundle.New(l, osc99types.TimeTag(99))
	m, err := message.New(l, "/nested")
	require.NoError(t, err)
	require.NoError(t, inner.AddContents(m))

	outer := bundle.New(l, osc99types.TimeTag(1))
	require.NoError(t, outer.AddContents(inner))

	pkt, err := FromContents(l, outer)
	require.NoError(t, err)

	var timeTags []osc99types.TimeTag
	err = pkt.Dispatch(MessageHandlerFunc(func(tt *osc99types.TimeTag, msg *message.Message) error {
		require.NotNil(t, tt)
		timeTags = append(timeTags, *tt)
		return nil
	}))
	require.NoError(t, err)
	require.Equal(t, []osc99types.TimeTag{99}, timeTags)
}

func TestDispatch_EmptyContents(t *testing.T) {
	l := limits(t)
	pkt, err := Parse(l, nil)
	require.NoError(t, err)

	err = pkt.Dispatch(MessageHandlerFunc(func(*osc99types.TimeTag, *message.Message) error { return nil }))
	require.Equal(t, errs.CodeContentsEmpty, errs.CodeOf(err))
}

func TestDispatch_NilHandler(t *testing.T) {
	l := limits(t)
	msg, err := message.New(l, "/a")
	require.NoError(t, err)
	buf := make([]byte, 0, l.MaxTransportSize())
	buf, err = msg.AppendTo(buf)
	require.NoError(t, err)

	pkt, err := Parse(l, buf)
	require.NoError(t, err)

	err = pkt.Dispatch(nil)
	require.Equal(t, errs.CodeCallbackUndefined, errs.CodeOf(err))
}

func TestDispatch_InvalidContents(t *testing.T) {
	l := limits(t)
	pkt, err := Parse(l, []byte("?not-a-message-or-bundle"))
	require.NoError(t, err)

	err = pkt.Dispatch(MessageHandlerFunc(func(*osc99types.TimeTag, *message.Message) error { return nil }))
	require.Equal(t, errs.CodeInvalidContents, errs.CodeOf(err))
}

func TestDispatch_StopsOnHandlerError(t *testing.T) {
	l := limits(t)

	b := bundle.New(l, osc99types.TimeTagImmediate)
	m1, err := message.New(l, "/one")
	require.NoError(t, err)
	m2, err := message.New(l, "/two")
	require.NoError(t, err)
	require.NoError(t, b.AddContents(m1))
	require.NoError(t, b.AddContents(m2))

	pkt, err := FromContents(l, b)
	require.NoError(t, err)

	sentinel := errs.New(errs.CodeCallbackUndefined, nil)
	var calls int
	err = pkt.Dispatch(MessageHandlerFunc(func(*osc99types.TimeTag, *message.Message) error {
		calls++
		return sentinel
	}))
	require.Equal(t, sentinel, err)
	require.Equal(t, 1, calls)
}

func TestParse_PacketSizeTooLarge(t *testing.T) {
	l, err := osc99types.NewLimits(osc99types.WithMaxTransportSize(8))
	require.NoError(t, err)

	_, err = Parse(l, make([]byte, 9))
	require.Equal(t, errs.CodePacketSizeTooLarge, errs.CodeOf(err))
}
