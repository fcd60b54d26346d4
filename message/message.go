// Package message implements the OSC 1.0 message type: an address pattern,
// a type-tag string, and a big-endian argument stream.
//
// A Message is built against a fixed-capacity backing (sized from an
// osc99.Limits) so that, once constructed, appending arguments never
// triggers a hidden reallocation — a failed Add* call leaves the message
// exactly as it was before the call, and AppendTo refuses to write into a
// destination slice that doesn't have enough spare capacity rather than
// growing it.
package message

import (
	"math"

	"github.com/xioTechnologies/OSC99/endian"
	"github.com/xioTechnologies/OSC99/errs"
	"github.com/xioTechnologies/OSC99/osc99types"
)

// wireOrder is OSC 1.0's mandated byte order: every multi-byte argument is
// big-endian regardless of host or transport endianness.
var wireOrder = endian.GetBigEndianEngine()

// Message is a single OSC message under construction or just parsed from
// the wire.
type Message struct {
	limits osc99types.Limits

	addr []byte // address pattern, no NUL padding
	tags []byte // type tag string, leading ',' included, no NUL padding
	args []byte // argument bytes, packed, no padding between arguments

	tagIdx int // read cursor into tags, next tag to read
	argIdx int // read cursor into args, next argument's first byte
}

// New creates a Message with the given address pattern. An empty
// addressPattern leaves the address unset; call SetAddressPattern before
// AppendTo in that case.
func New(limits osc99types.Limits, addressPattern string) (*Message, error) {
	m := &Message{
		limits: limits,
		addr:   make([]byte, 0, limits.MaxAddressLen()),
		tags:   make([]byte, 1, limits.MaxTypeTagLen()),
		args:   make([]byte, 0, limits.MaxArgumentsSize()),
		tagIdx: 1,
	}
	m.tags[0] = ','

	if addressPattern != "" {
		if err := m.SetAddressPattern(addressPattern); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// SetAddressPattern replaces the message's address pattern.
func (m *Message) SetAddressPattern(pattern string) error {
	m.addr = m.addr[:0]
	return m.AppendAddressPattern(pattern)
}

// AppendAddressPattern appends parts to the current address pattern. parts
// must itself begin with '/'.
func (m *Message) AppendAddressPattern(parts string) error {
	if len(parts) == 0 || parts[0] != '/' {
		return errs.New(errs.CodeNoSlashAtStartOfMessage, nil)
	}
	if len(m.addr)+len(parts) > m.limits.MaxAddressLen() {
		return errs.New(errs.CodeAddressPatternTooLong, nil)
	}
	m.addr = append(m.addr, parts...)
	return nil
}

// AddressPattern returns the message's address pattern.
func (m *Message) AddressPattern() string {
	return string(m.addr)
}

// TypeTags returns the message's type tag string, including the leading
// comma.
func (m *Message) TypeTags() string {
	return string(m.tags)
}

func (m *Message) argCount() int {
	return len(m.tags) - 1
}

func (m *Message) addTag(tag Tag) {
	m.tags = append(m.tags, byte(tag))
}

func ceil4(n int) int {
	return (n + 3) &^ 3
}

// checkCanAdd verifies an argument of extra payload bytes can still be
// appended, without mutating the message.
func (m *Message) checkCanAdd(extra int) error {
	if m.argCount() >= m.limits.MaxArguments() {
		return errs.New(errs.CodeTooManyArguments, nil)
	}
	if len(m.args)+extra > cap(m.args) {
		return errs.New(errs.CodeArgumentsSizeTooLarge, nil)
	}
	return nil
}

func (m *Message) add4(tag Tag, b [4]byte) error {
	if err := m.checkCanAdd(4); err != nil {
		return err
	}
	m.args = append(m.args, b[:]...)
	m.addTag(tag)
	return nil
}

func (m *Message) add8(tag Tag, b [8]byte) error {
	if err := m.checkCanAdd(8); err != nil {
		return err
	}
	m.args = append(m.args, b[:]...)
	m.addTag(tag)
	return nil
}

// AddInt32 appends a 32-bit integer argument.
func (m *Message) AddInt32(v int32) error {
	var b [4]byte
	wireOrder.PutUint32(b[:], uint32(v))
	return m.add4(TagInt32, b)
}

// AddFloat32 appends a 32-bit float argument.
func (m *Message) AddFloat32(v float32) error {
	var b [4]byte
	wireOrder.PutUint32(b[:], osc99types.Float32Bits(v))
	return m.add4(TagFloat32, b)
}

// AddInt64 appends a 64-bit integer argument.
func (m *Message) AddInt64(v int64) error {
	var b [8]byte
	wireOrder.PutUint64(b[:], uint64(v))
	return m.add8(TagInt64, b)
}

// AddTimeTag appends an OSC time tag argument.
func (m *Message) AddTimeTag(t osc99types.TimeTag) error {
	var b [8]byte
	wireOrder.PutUint64(b[:], uint64(t))
	return m.add8(TagTimeTag, b)
}

// AddDouble appends a 64-bit float argument.
func (m *Message) AddDouble(v float64) error {
	var b [8]byte
	wireOrder.PutUint64(b[:], osc99types.Float64Bits(v))
	return m.add8(TagDouble, b)
}

// AddCharacter appends a single ASCII character argument, packed into the
// low byte of a 4-byte slot.
func (m *Message) AddCharacter(c byte) error {
	return m.add4(TagCharacter, [4]byte{0, 0, 0, c})
}

// AddRGBA appends a 32-bit RGBA colour argument.
func (m *Message) AddRGBA(c osc99types.RGBA) error {
	return m.add4(TagRGBA, [4]byte{c.R, c.G, c.B, c.A})
}

// AddMIDI appends a 4-byte MIDI message argument.
func (m *Message) AddMIDI(msg osc99types.MIDI) error {
	return m.add4(TagMIDI, [4]byte{msg.PortID, msg.Status, msg.Data1, msg.Data2})
}

// addString appends s under tag, NUL-terminated and zero-padded to a
// multiple of 4 bytes (at least one NUL is always written, even when len(s)
// is already a multiple of 4).
func (m *Message) addString(tag Tag, s string) error {
	if m.argCount() >= m.limits.MaxArguments() {
		return errs.New(errs.CodeTooManyArguments, nil)
	}

	start := len(m.args)
	padded := ceil4(len(s) + 1)
	if start+padded > cap(m.args) {
		return errs.New(errs.CodeArgumentsSizeTooLarge, nil)
	}

	m.args = append(m.args, s...)
	for len(m.args) < start+padded {
		m.args = append(m.args, 0)
	}
	m.addTag(tag)
	return nil
}

// AddString appends a string argument.
func (m *Message) AddString(s string) error {
	return m.addString(TagString, s)
}

// AddAlternateString appends a string argument tagged 'S' rather than 's'.
// OSC 1.0 treats the two tags identically on the wire; the alternate tag
// exists only so a receiver can distinguish the argument's intended role.
func (m *Message) AddAlternateString(s string) error {
	return m.addString(TagAlternateString, s)
}

// AddBlob appends an opaque byte-blob argument: a big-endian int32 length
// prefix followed by the data, zero-padded to a multiple of 4 bytes.
func (m *Message) AddBlob(data []byte) error {
	if m.argCount() >= m.limits.MaxArguments() {
		return errs.New(errs.CodeTooManyArguments, nil)
	}

	start := len(m.args)
	padded := ceil4(4 + len(data))
	if start+padded > cap(m.args) {
		return errs.New(errs.CodeArgumentsSizeTooLarge, nil)
	}

	var szBuf [4]byte
	wireOrder.PutUint32(szBuf[:], uint32(len(data)))
	m.args = append(m.args, szBuf[:]...)
	m.args = append(m.args, data...)
	for len(m.args) < start+padded {
		m.args = append(m.args, 0)
	}
	m.addTag(TagBlob)
	return nil
}

// addMarker appends a type tag that carries no argument bytes (booleans,
// nil, infinitum, array delimiters).
func (m *Message) addMarker(tag Tag) error {
	if m.argCount() >= m.limits.MaxArguments() {
		return errs.New(errs.CodeTooManyArguments, nil)
	}
	m.addTag(tag)
	return nil
}

// AddBool appends a boolean argument.
func (m *Message) AddBool(b bool) error {
	if b {
		return m.addMarker(TagTrue)
	}
	return m.addMarker(TagFalse)
}

// AddNil appends a nil argument.
func (m *Message) AddNil() error { return m.addMarker(TagNil) }

// AddInfinitum appends an infinitum argument.
func (m *Message) AddInfinitum() error { return m.addMarker(TagInfinitum) }

// AddBeginArray appends a '[' array-begin marker.
func (m *Message) AddBeginArray() error { return m.addMarker(TagBeginArray) }

// AddEndArray appends a ']' array-end marker.
func (m *Message) AddEndArray() error { return m.addMarker(TagEndArray) }

// appendOSCString appends data then pads with at least one, and up to four,
// zero bytes so the total written is a multiple of 4.
func appendOSCString(dst []byte, data []byte) []byte {
	start := len(dst)
	dst = append(dst, data...)
	dst = append(dst, 0)
	for (len(dst)-start)%4 != 0 {
		dst = append(dst, 0)
	}
	return dst
}

// Size returns the number of bytes AppendTo would add to dst.
func (m *Message) Size() int {
	return ceil4(len(m.addr)+1) + ceil4(len(m.tags)+1) + len(m.args)
}

// AppendTo appends the wire representation of m to dst and returns the
// extended slice. It fails rather than reallocate if dst does not have
// enough spare capacity.
func (m *Message) AppendTo(dst []byte) ([]byte, error) {
	if len(m.addr) == 0 {
		return dst, errs.New(errs.CodeUndefinedAddressPattern, nil)
	}
	if cap(dst)-len(dst) < m.Size() {
		return dst, errs.New(errs.CodeDestinationTooSmall, nil)
	}

	dst = appendOSCString(dst, m.addr)
	dst = appendOSCString(dst, m.tags)
	dst = append(dst, m.args...)
	return dst, nil
}

// Parse decodes a message from its wire representation. src's length must
// be a non-zero multiple of 4.
func Parse(limits osc99types.Limits, src []byte) (*Message, error) {
	if len(src)%4 != 0 {
		return nil, errs.New(errs.CodeSizeNotMultipleOfFour, nil)
	}
	if len(src) < 8 {
		return nil, errs.New(errs.CodeMessageSizeTooSmall, nil)
	}
	if len(src) > limits.MaxTransportSize() {
		return nil, errs.New(errs.CodeMessageSizeTooLarge, nil)
	}
	if src[0] != '/' {
		return nil, errs.New(errs.CodeNoSlashAtStartOfMessage, nil)
	}

	m := &Message{
		limits: limits,
		addr:   make([]byte, 0, limits.MaxAddressLen()),
		tags:   make([]byte, 1, limits.MaxTypeTagLen()),
		args:   make([]byte, 0, limits.MaxArgumentsSize()),
	}
	m.tags[0] = ','

	i := 0
	for src[i] != 0 {
		if len(m.addr) >= limits.MaxAddressLen() {
			return nil, errs.New(errs.CodeAddressPatternTooLong, nil)
		}
		m.addr = append(m.addr, src[i])
		i++
		if i >= len(src) {
			return nil, errs.New(errs.CodeSourceEndsBeforeEndOfAddressPattern, nil)
		}
	}

	for src[i-1] != ',' {
		i++
		if i >= len(src) {
			return nil, errs.New(errs.CodeSourceEndsBeforeStartOfTypeTagString, nil)
		}
	}

	for src[i] != 0 {
		m.tags = append(m.tags, src[i])
		if len(m.tags) > limits.MaxTypeTagLen() {
			return nil, errs.New(errs.CodeTypeTagStringTooLong, nil)
		}
		i++
		if i >= len(src) {
			return nil, errs.New(errs.CodeSourceEndsBeforeEndOfTypeTagString, nil)
		}
	}

	for {
		i++
		if i > len(src) {
			return nil, errs.New(errs.CodeUnexpectedEndOfSource, nil)
		}
		if i%4 == 0 {
			break
		}
	}

	remaining := len(src) - i
	if remaining > cap(m.args) {
		return nil, errs.New(errs.CodeArgumentsSizeTooLarge, nil)
	}
	m.args = append(m.args, src[i:]...)

	m.tagIdx = 1
	m.argIdx = 0
	return m, nil
}

// IsArgumentAvailable reports whether a further argument remains to be
// read.
func (m *Message) IsArgumentAvailable() bool {
	return m.tagIdx < len(m.tags)
}

// ArgumentType returns the type tag of the next unread argument, or the
// zero Tag if none remains.
func (m *Message) ArgumentType() Tag {
	if m.tagIdx >= len(m.tags) {
		return tagNone
	}
	return Tag(m.tags[m.tagIdx])
}

// SkipArgument advances past the next argument without decoding it.
//
// It advances only the type-tag cursor, never the argument-byte cursor, so
// skipping an argument that has payload bytes leaves later reads misaligned;
// in practice this is mainly useful for the no-payload marker tags (bool,
// nil, infinitum, array delimiters).
func (m *Message) SkipArgument() error {
	if !m.IsArgumentAvailable() {
		return errs.New(errs.CodeNoArgumentsAvailable, nil)
	}
	m.tagIdx++
	return nil
}

func (m *Message) checkArg(tag Tag) error {
	if !m.IsArgumentAvailable() {
		return errs.New(errs.CodeNoArgumentsAvailable, nil)
	}
	if Tag(m.tags[m.tagIdx]) != tag {
		return errs.New(errs.CodeUnexpectedArgumentType, nil)
	}
	return nil
}

func (m *Message) get4(tag Tag) ([4]byte, error) {
	var b [4]byte
	if err := m.checkArg(tag); err != nil {
		return b, err
	}
	if m.argIdx+4 > len(m.args) {
		return b, errs.New(errs.CodeMessageTooShortForArgumentType, nil)
	}
	copy(b[:], m.args[m.argIdx:m.argIdx+4])
	m.argIdx += 4
	m.tagIdx++
	return b, nil
}

func (m *Message) get8(tag Tag) ([8]byte, error) {
	var b [8]byte
	if err := m.checkArg(tag); err != nil {
		return b, err
	}
	if m.argIdx+8 > len(m.args) {
		return b, errs.New(errs.CodeMessageTooShortForArgumentType, nil)
	}
	copy(b[:], m.args[m.argIdx:m.argIdx+8])
	m.argIdx += 8
	m.tagIdx++
	return b, nil
}

// GetInt32 reads the next argument as a 32-bit integer.
func (m *Message) GetInt32() (int32, error) {
	b, err := m.get4(TagInt32)
	if err != nil {
		return 0, err
	}
	return int32(wireOrder.Uint32(b[:])), nil
}

// GetFloat32 reads the next argument as a 32-bit float.
func (m *Message) GetFloat32() (float32, error) {
	b, err := m.get4(TagFloat32)
	if err != nil {
		return 0, err
	}
	return osc99types.Float32FromBits(wireOrder.Uint32(b[:])), nil
}

// GetInt64 reads the next argument as a 64-bit integer.
func (m *Message) GetInt64() (int64, error) {
	b, err := m.get8(TagInt64)
	if err != nil {
		return 0, err
	}
	return int64(wireOrder.Uint64(b[:])), nil
}

// GetTimeTag reads the next argument as an OSC time tag.
func (m *Message) GetTimeTag() (osc99types.TimeTag, error) {
	b, err := m.get8(TagTimeTag)
	if err != nil {
		return 0, err
	}
	return osc99types.TimeTag(wireOrder.Uint64(b[:])), nil
}

// GetDouble reads the next argument as a 64-bit float.
func (m *Message) GetDouble() (float64, error) {
	b, err := m.get8(TagDouble)
	if err != nil {
		return 0, err
	}
	return osc99types.Float64FromBits(wireOrder.Uint64(b[:])), nil
}

// GetCharacter reads the next argument as a single character.
func (m *Message) GetCharacter() (byte, error) {
	b, err := m.get4(TagCharacter)
	if err != nil {
		return 0, err
	}
	return b[3], nil
}

// GetRGBA reads the next argument as a 32-bit RGBA colour.
func (m *Message) GetRGBA() (osc99types.RGBA, error) {
	b, err := m.get4(TagRGBA)
	if err != nil {
		return osc99types.RGBA{}, err
	}
	return osc99types.RGBA{R: b[0], G: b[1], B: b[2], A: b[3]}, nil
}

// GetMIDI reads the next argument as a 4-byte MIDI message.
func (m *Message) GetMIDI() (osc99types.MIDI, error) {
	b, err := m.get4(TagMIDI)
	if err != nil {
		return osc99types.MIDI{}, err
	}
	return osc99types.MIDI{PortID: b[0], Status: b[1], Data1: b[2], Data2: b[3]}, nil
}

// GetBool reads the next argument as a boolean. Only the dedicated true/
// false tags are accepted; use GetArgumentAsBool to coerce other types.
func (m *Message) GetBool() (bool, error) {
	if !m.IsArgumentAvailable() {
		return false, errs.New(errs.CodeNoArgumentsAvailable, nil)
	}
	switch Tag(m.tags[m.tagIdx]) {
	case TagTrue:
		m.tagIdx++
		return true, nil
	case TagFalse:
		m.tagIdx++
		return false, nil
	default:
		return false, errs.New(errs.CodeUnexpectedArgumentType, nil)
	}
}

// GetString reads the next argument as a string. Both the 's' and 'S' tags
// are accepted. The read fully validates the NUL terminator and padding
// before advancing either cursor, so a malformed string leaves the message
// unchanged.
func (m *Message) GetString() (string, error) {
	if !m.IsArgumentAvailable() {
		return "", errs.New(errs.CodeNoArgumentsAvailable, nil)
	}
	tag := Tag(m.tags[m.tagIdx])
	if tag != TagString && tag != TagAlternateString {
		return "", errs.New(errs.CodeUnexpectedArgumentType, nil)
	}

	idx := m.argIdx
	for idx < len(m.args) && m.args[idx] != 0 {
		idx++
	}
	if idx >= len(m.args) {
		return "", errs.New(errs.CodeMessageTooShortForArgumentType, nil)
	}
	s := string(m.args[m.argIdx:idx])

	idx++ // past the NUL terminator
	for idx%4 != 0 {
		if idx >= len(m.args) {
			return "", errs.New(errs.CodeMessageTooShortForArgumentType, nil)
		}
		idx++
	}

	m.argIdx = idx
	m.tagIdx++
	return s, nil
}

// GetBlob reads the next argument as a byte blob. The returned slice
// aliases the message's internal argument buffer; copy it before mutating
// or reusing the message.
func (m *Message) GetBlob() ([]byte, error) {
	if err := m.checkArg(TagBlob); err != nil {
		return nil, err
	}
	if m.argIdx+4 > len(m.args) {
		return nil, errs.New(errs.CodeMessageTooShortForArgumentType, nil)
	}
	size := int(int32(wireOrder.Uint32(m.args[m.argIdx:])))
	if size < 0 {
		return nil, errs.New(errs.CodeMessageTooShortForArgumentType, nil)
	}

	start := m.argIdx + 4
	end := start + size
	if end > len(m.args) {
		return nil, errs.New(errs.CodeMessageTooShortForArgumentType, nil)
	}

	padded := end
	for padded%4 != 0 {
		padded++
		if padded > len(m.args) {
			return nil, errs.New(errs.CodeMessageTooShortForArgumentType, nil)
		}
	}

	data := m.args[start:end]
	m.argIdx = padded
	m.tagIdx++
	return data, nil
}

// GetArgumentAsInt32 reads the next argument as a 32-bit integer, coercing
// numeric, character, boolean, nil, and infinitum types.
func (m *Message) GetArgumentAsInt32() (int32, error) {
	if !m.IsArgumentAvailable() {
		return 0, errs.New(errs.CodeNoArgumentsAvailable, nil)
	}
	switch m.ArgumentType() {
	case TagInt32:
		return m.GetInt32()
	case TagFloat32:
		v, err := m.GetFloat32()
		return int32(v), err
	case TagInt64:
		v, err := m.GetInt64()
		return int32(v), err
	case TagTimeTag:
		v, err := m.GetTimeTag()
		return int32(uint64(v)), err
	case TagDouble:
		v, err := m.GetDouble()
		return int32(v), err
	case TagCharacter:
		v, err := m.GetCharacter()
		return int32(v), err
	case TagTrue:
		m.tagIdx++
		return 1, nil
	case TagFalse:
		m.tagIdx++
		return 0, nil
	case TagNil:
		m.tagIdx++
		return 0, nil
	case TagInfinitum:
		m.tagIdx++
		return -1, nil // int32 bit pattern of UINT32_MAX
	default:
		return 0, errs.New(errs.CodeUnexpectedArgumentType, nil)
	}
}

// GetArgumentAsFloat32 reads the next argument as a 32-bit float, coercing
// numeric, character, boolean, nil, and infinitum types.
func (m *Message) GetArgumentAsFloat32() (float32, error) {
	if !m.IsArgumentAvailable() {
		return 0, errs.New(errs.CodeNoArgumentsAvailable, nil)
	}
	switch m.ArgumentType() {
	case TagInt32:
		v, err := m.GetInt32()
		return float32(v), err
	case TagFloat32:
		return m.GetFloat32()
	case TagInt64:
		v, err := m.GetInt64()
		return float32(v), err
	case TagTimeTag:
		v, err := m.GetTimeTag()
		return float32(uint64(v)), err
	case TagDouble:
		v, err := m.GetDouble()
		return float32(v), err
	case TagCharacter:
		v, err := m.GetCharacter()
		return float32(v), err
	case TagTrue:
		m.tagIdx++
		return 1, nil
	case TagFalse:
		m.tagIdx++
		return 0, nil
	case TagNil:
		m.tagIdx++
		return 0, nil
	case TagInfinitum:
		m.tagIdx++
		return float32(math.Inf(1)), nil
	default:
		return 0, errs.New(errs.CodeUnexpectedArgumentType, nil)
	}
}

// GetArgumentAsInt64 reads the next argument as a 64-bit integer, coercing
// numeric, character, boolean, nil, and infinitum types.
func (m *Message) GetArgumentAsInt64() (int64, error) {
	if !m.IsArgumentAvailable() {
		return 0, errs.New(errs.CodeNoArgumentsAvailable, nil)
	}
	switch m.ArgumentType() {
	case TagInt32:
		v, err := m.GetInt32()
		return int64(v), err
	case TagFloat32:
		v, err := m.GetFloat32()
		return int64(v), err
	case TagInt64:
		return m.GetInt64()
	case TagTimeTag:
		v, err := m.GetTimeTag()
		return int64(uint64(v)), err
	case TagDouble:
		v, err := m.GetDouble()
		return int64(v), err
	case TagCharacter:
		v, err := m.GetCharacter()
		return int64(v), err
	case TagTrue:
		m.tagIdx++
		return 1, nil
	case TagFalse:
		m.tagIdx++
		return 0, nil
	case TagNil:
		m.tagIdx++
		return 0, nil
	case TagInfinitum:
		m.tagIdx++
		return math.MaxInt64, nil
	default:
		return 0, errs.New(errs.CodeUnexpectedArgumentType, nil)
	}
}

// GetArgumentAsDouble reads the next argument as a 64-bit float, coercing
// numeric, character, boolean, nil, and infinitum types.
func (m *Message) GetArgumentAsDouble() (float64, error) {
	if !m.IsArgumentAvailable() {
		return 0, errs.New(errs.CodeNoArgumentsAvailable, nil)
	}
	switch m.ArgumentType() {
	case TagInt32:
		v, err := m.GetInt32()
		return float64(v), err
	case TagFloat32:
		v, err := m.GetFloat32()
		return float64(v), err
	case TagInt64:
		v, err := m.GetInt64()
		return float64(v), err
	case TagTimeTag:
		v, err := m.GetTimeTag()
		return float64(uint64(v)), err
	case TagDouble:
		return m.GetDouble()
	case TagCharacter:
		v, err := m.GetCharacter()
		return float64(v), err
	case TagTrue:
		m.tagIdx++
		return 1, nil
	case TagFalse:
		m.tagIdx++
		return 0, nil
	case TagNil:
		m.tagIdx++
		return 0, nil
	case TagInfinitum:
		m.tagIdx++
		return math.Inf(1), nil
	default:
		return 0, errs.New(errs.CodeUnexpectedArgumentType, nil)
	}
}

// GetArgumentAsBool reads the next argument as a boolean, coercing
// numeric, character, and nil/infinitum types via their truthiness.
func (m *Message) GetArgumentAsBool() (bool, error) {
	if !m.IsArgumentAvailable() {
		return false, errs.New(errs.CodeNoArgumentsAvailable, nil)
	}
	switch m.ArgumentType() {
	case TagInt32:
		v, err := m.GetInt32()
		return v != 0, err
	case TagFloat32:
		v, err := m.GetFloat32()
		return v != 0, err
	case TagInt64:
		v, err := m.GetInt64()
		return v != 0, err
	case TagTimeTag:
		v, err := m.GetTimeTag()
		return v != 0, err
	case TagDouble:
		v, err := m.GetDouble()
		return v != 0, err
	case TagCharacter:
		v, err := m.GetCharacter()
		return v != 0, err
	case TagTrue:
		m.tagIdx++
		return true, nil
	case TagFalse:
		m.tagIdx++
		return false, nil
	case TagNil:
		m.tagIdx++
		return false, nil
	case TagInfinitum:
		m.tagIdx++
		return true, nil
	default:
		return false, errs.New(errs.CodeUnexpectedArgumentType, nil)
	}
}

// GetArgumentAsString reads the next argument as a string, coercing blob
// (raw bytes) and single-character arguments.
func (m *Message) GetArgumentAsString() (string, error) {
	if !m.IsArgumentAvailable() {
		return "", errs.New(errs.CodeNoArgumentsAvailable, nil)
	}
	switch m.ArgumentType() {
	case TagString, TagAlternateString:
		return m.GetString()
	case TagBlob:
		b, err := m.GetBlob()
		if err != nil {
			return "", err
		}
		return string(b), nil
	case TagCharacter:
		c, err := m.GetCharacter()
		if err != nil {
			return "", err
		}
		return string(rune(c)), nil
	default:
		return "", errs.New(errs.CodeUnexpectedArgumentType, nil)
	}
}

// GetArgumentAsBlob reads the next argument as raw bytes, coercing string
// and single-character arguments. The returned slice may alias the
// message's internal buffer; see GetBlob.
func (m *Message) GetArgumentAsBlob() ([]byte, error) {
	if !m.IsArgumentAvailable() {
		return nil, errs.New(errs.CodeNoArgumentsAvailable, nil)
	}
	switch m.ArgumentType() {
	case TagString, TagAlternateString:
		s, err := m.GetString()
		if err != nil {
			return nil, err
		}
		return []byte(s), nil
	case TagBlob:
		return m.GetBlob()
	case TagCharacter:
		c, err := m.GetCharacter()
		if err != nil {
			return nil, err
		}
		return []byte{c}, nil
	default:
		return nil, errs.New(errs.CodeUnexpectedArgumentType, nil)
	}
}

// GetArgumentAsRGBA reads the next argument as an RGBA colour, coercing an
// exactly-4-byte blob.
func (m *Message) GetArgumentAsRGBA() (osc99types.RGBA, error) {
	if !m.IsArgumentAvailable() {
		return osc99types.RGBA{}, errs.New(errs.CodeNoArgumentsAvailable, nil)
	}
	switch m.ArgumentType() {
	case TagBlob:
		tagIdx, argIdx := m.tagIdx, m.argIdx
		b, err := m.GetBlob()
		if err != nil {
			return osc99types.RGBA{}, err
		}
		if len(b) != 4 {
			m.tagIdx, m.argIdx = tagIdx, argIdx
			return osc99types.RGBA{}, errs.New(errs.CodeUnexpectedEndOfSource, nil)
		}
		return osc99types.RGBA{R: b[0], G: b[1], B: b[2], A: b[3]}, nil
	case TagRGBA:
		return m.GetRGBA()
	default:
		return osc99types.RGBA{}, errs.New(errs.CodeUnexpectedArgumentType, nil)
	}
}

// GetArgumentAsMIDI reads the next argument as a MIDI message, coercing an
// exactly-4-byte blob.
func (m *Message) GetArgumentAsMIDI() (osc99types.MIDI, error) {
	if !m.IsArgumentAvailable() {
		return osc99types.MIDI{}, errs.New(errs.CodeNoArgumentsAvailable, nil)
	}
	switch m.ArgumentType() {
	case TagBlob:
		tagIdx, argIdx := m.tagIdx, m.argIdx
		b, err := m.GetBlob()
		if err != nil {
			return osc99types.MIDI{}, err
		}
		if len(b) != 4 {
			m.tagIdx, m.argIdx = tagIdx, argIdx
			return osc99types.MIDI{}, errs.New(errs.CodeUnexpectedEndOfSource, nil)
		}
		return osc99types.MIDI{PortID: b[0], Status: b[1], Data1: b[2], Data2: b[3]}, nil
	case TagMIDI:
		return m.GetMIDI()
	default:
		return osc99types.MIDI{}, errs.New(errs.CodeUnexpectedArgumentType, nil)
	}
}
