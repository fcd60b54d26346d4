package message

import (
	"math"
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

func TestNew_RejectsMissingLeadingSlash(t *testing.T) {
	_, err := New(limits(t), "example")
	require.Equal(t, errs.CodeNoSlashAtStartOfMessage, errs.CodeOf(err))
}

func TestRoundTrip_AllArgumentTypes(t *testing.T) {
	l := limits(t)
	m, err := New(l, "/example/address")
	require.NoError(t, err)

	require.NoError(t, m.AddInt32(-42))
	require.NoError(t, m.AddFloat32(3.25))
	require.NoError(t, m.AddString("hello"))
	require.NoError(t, m.AddBlob([]byte{1, 2, 3}))
	require.NoError(t, m.AddInt64(1<<40))
	require.NoError(t, m.AddTimeTag(osc99types.TimeTag(0x1122334455667788)))
	require.NoError(t, m.AddDouble(2.5))
	require.NoError(t, m.AddAlternateString("alt"))
	require.NoError(t, m.AddCharacter('Q'))
	require.NoError(t, m.AddRGBA(osc99types.RGBA{R: 1, G: 2, B: 3, A: 4}))
	require.NoError(t, m.AddMIDI(osc99types.MIDI{PortID: 1, Status: 2, Data1: 3, Data2: 4}))
	require.NoError(t, m.AddBool(true))
	require.NoError(t, m.AddBool(false))
	require.NoError(t, m.AddNil())
	require.NoError(t, m.AddInfinitum())

	buf := make([]byte, 0, l.MaxTransportSize())
	buf, err = m.AppendTo(buf)
	require.NoError(t, err)
	require.Len(t, buf, m.Size())
	require.Zero(t, len(buf)%4)

	parsed, err := Parse(l, buf)
	require.NoError(t, err)
	require.Equal(t, "/example/address", parsed.AddressPattern())

	i32, err := parsed.GetInt32()
	require.NoError(t, err)
	require.Equal(t, int32(-42), i32)

	f32, err := parsed.GetFloat32()
	require.NoError(t, err)
	require.InDelta(t, 3.25, f32, 0.0001)

	s, err := parsed.GetString()
	require.NoError(t, err)
	require.Equal(t, "hello", s)

	blob, err := parsed.GetBlob()
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, blob)

	i64, err := parsed.GetInt64()
	require.NoError(t, err)
	require.Equal(t, int64(1<<40), i64)

	tt, err := parsed.GetTimeTag()
	require.NoError(t, err)
	require.Equal(t, osc99types.TimeTag(0x1122334455667788), tt)

	d, err := parsed.GetDouble()
	require.NoError(t, err)
	require.InDelta(t, 2.5, d, 0.0001)

	alt, err := parsed.GetString()
	require.NoError(t, err)
	require.Equal(t, "alt", alt)

	c, err := parsed.GetCharacter()
	require.NoError(t, err)
	require.Equal(t, byte('Q'), c)

	rgba, err := parsed.GetRGBA()
	require.NoError(t, err)
	require.Equal(t, osc99types.RGBA{R: 1, G: 2, B: 3, A: 4}, rgba)

	midi, err := parsed.GetMIDI()
	require.NoError(t, err)
	require.Equal(t, osc99types.MIDI{PortID: 1, Status: 2, Data1: 3, Data2: 4}, midi)

	b1, err := parsed.GetBool()
	require.NoError(t, err)
	require.True(t, b1)

	b2, err := parsed.GetBool()
	require.NoError(t, err)
	require.False(t, b2)

	require.Equal(t, TagNil, parsed.ArgumentType())
	require.NoError(t, parsed.SkipArgument())
	require.Equal(t, TagInfinitum, parsed.ArgumentType())
	require.NoError(t, parsed.SkipArgument())

	require.False(t, parsed.IsArgumentAvailable())
}

func TestAdd_TooManyArguments(t *testing.T) {
	l, err := osc99types.NewLimits(osc99types.WithMaxArguments(1))
	require.NoError(t, err)

	m, err := New(l, "/a")
	require.NoError(t, err)

	require.NoError(t, m.AddInt32(1))
	err = m.AddInt32(2)
	require.Equal(t, errs.CodeTooManyArguments, errs.CodeOf(err))
}

func TestAdd_ArgumentsSizeTooLarge_LeavesMessageUnchanged(t *testing.T) {
	l, err := osc99types.NewLimits(osc99types.WithMaxTransportSize(48), osc99types.WithMaxAddressLen(8), osc99types.WithMaxArguments(1))
	require.NoError(t, err)

	m, err := New(l, "/a")
	require.NoError(t, err)

	before := m.TypeTags()
	err = m.AddString("this string is much too long for the remaining capacity")
	require.Equal(t, errs.CodeArgumentsSizeTooLarge, errs.CodeOf(err))
	require.Equal(t, before, m.TypeTags())
}

func TestAppendAddressPattern_RejectsMissingSlash(t *testing.T) {
	m, err := New(limits(t), "/a")
	require.NoError(t, err)

	err = m.AppendAddressPattern("b")
	require.Equal(t, errs.CodeNoSlashAtStartOfMessage, errs.CodeOf(err))
}

func TestAppendTo_UndefinedAddressPattern(t *testing.T) {
	m, err := New(limits(t), "")
	require.NoError(t, err)

	_, err = m.AppendTo(make([]byte, 0, 64))
	require.Equal(t, errs.CodeUndefinedAddressPattern, errs.CodeOf(err))
}

func TestAppendTo_DestinationTooSmall(t *testing.T) {
	m, err := New(limits(t), "/a")
	require.NoError(t, err)
	require.NoError(t, m.AddInt32(1))

	dst := make([]byte, 0, 2)
	_, err = m.AppendTo(dst)
	require.Equal(t, errs.CodeDestinationTooSmall, errs.CodeOf(err))
}

func TestParse_RejectsBadSizes(t *testing.T) {
	l := limits(t)

	_, err := Parse(l, []byte("/ab")) // not multiple of 4
	require.Equal(t, errs.CodeSizeNotMultipleOfFour, errs.CodeOf(err))

	_, err = Parse(l, []byte("/ab\x00")) // too small
	require.Equal(t, errs.CodeMessageSizeTooSmall, errs.CodeOf(err))

	_, err = Parse(l, []byte("ab\x00\x00,\x00\x00\x00")) // no leading slash
	require.Equal(t, errs.CodeNoSlashAtStartOfMessage, errs.CodeOf(err))
}

func TestGet_WrongType(t *testing.T) {
	l := limits(t)
	m, err := New(l, "/a")
	require.NoError(t, err)
	require.NoError(t, m.AddInt32(7))

	buf := make([]byte, 0, l.MaxTransportSize())
	buf, err = m.AppendTo(buf)
	require.NoError(t, err)

	parsed, err := Parse(l, buf)
	require.NoError(t, err)

	_, err = parsed.GetFloat32()
	require.Equal(t, errs.CodeUnexpectedArgumentType, errs.CodeOf(err))

	// cursor must not have advanced
	i, err := parsed.GetInt32()
	require.NoError(t, err)
	require.Equal(t, int32(7), i)
}

func TestGetArgumentAsInt32_Coercion(t *testing.T) {
	l := limits(t)
	m, err := New(l, "/a")
	require.NoError(t, err)
	require.NoError(t, m.AddFloat32(9.9))
	require.NoError(t, m.AddBool(true))
	require.NoError(t, m.AddNil())
	require.NoError(t, m.AddInfinitum())

	buf := make([]byte, 0, l.MaxTransportSize())
	buf, err = m.AppendTo(buf)
	require.NoError(t, err)

	parsed, err := Parse(l, buf)
	require.NoError(t, err)

	v, err := parsed.GetArgumentAsInt32()
	require.NoError(t, err)
	require.Equal(t, int32(9), v)

	v, err = parsed.GetArgumentAsInt32()
	require.NoError(t, err)
	require.Equal(t, int32(1), v)

	v, err = parsed.GetArgumentAsInt32()
	require.NoError(t, err)
	require.Equal(t, int32(0), v)

	v, err = parsed.GetArgumentAsInt32()
	require.NoError(t, err)
	require.Equal(t, int32(-1), v)
}

func TestGetArgumentAsNumeric_InfinitumCoercion(t *testing.T) {
	l := limits(t)
	m, err := New(l, "/a")
	require.NoError(t, err)
	require.NoError(t, m.AddInfinitum())
	require.NoError(t, m.AddInfinitum())
	require.NoError(t, m.AddInfinitum())

	buf := make([]byte, 0, l.MaxTransportSize())
	buf, err = m.AppendTo(buf)
	require.NoError(t, err)

	parsed, err := Parse(l, buf)
	require.NoError(t, err)

	f, err := parsed.GetArgumentAsFloat32()
	require.NoError(t, err)
	require.True(t, math.IsInf(float64(f), 1))

	i, err := parsed.GetArgumentAsInt64()
	require.NoError(t, err)
	require.Equal(t, int64(math.MaxInt64), i)

	d, err := parsed.GetArgumentAsDouble()
	require.NoError(t, err)
	require.True(t, math.IsInf(d, 1))
}

func TestGetArgumentAsBlob_CoercesString(t *testing.T) {
	l := limits(t)
	m, err := New(l, "/a")
	require.NoError(t, err)
	require.NoError(t, m.AddString("abc"))

	buf := make([]byte, 0, l.MaxTransportSize())
	buf, err = m.AppendTo(buf)
	require.NoError(t, err)

	parsed, err := Parse(l, buf)
	require.NoError(t, err)

	b, err := parsed.GetArgumentAsBlob()
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), b)
}

func TestSkipArgument_NoArgumentsAvailable(t *testing.T) {
	m, err := New(limits(t), "/a")
	require.NoError(t, err)

	err = m.SkipArgument()
	require.Equal(t, errs.CodeNoArgumentsAvailable, errs.CodeOf(err))
}
