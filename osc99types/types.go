package osc99types

import (
	"math"
	"time"
)

// TimeTag is an NTP64 timestamp: the high 32 bits count seconds since
// 1900-01-01 00:00:00 UTC, the low 32 bits count fractional seconds.
type TimeTag uint64

// TimeTagImmediate is the reserved time tag value meaning "execute as soon
// as possible" rather than at a scheduled time.
const TimeTagImmediate TimeTag = 0

const ntpEpochOffset = 2208988800 // seconds between 1900-01-01 and 1970-01-01

// Seconds returns the NTP seconds field (high 32 bits).
func (t TimeTag) Seconds() uint32 { return uint32(t >> 32) }

// Fraction returns the NTP fractional-seconds field (low 32 bits).
func (t TimeTag) Fraction() uint32 { return uint32(t) }

// Time converts t to a time.Time. TimeTagImmediate converts to the NTP
// epoch, 1900-01-01 00:00:00 UTC; callers that need to special-case "immediate" dispatch should
// check t == TimeTagImmediate directly rather than relying on the
// conversion.
func (t TimeTag) Time() time.Time {
	secs := int64(t.Seconds()) - ntpEpochOffset
	nanos := (int64(t.Fraction()) * int64(time.Second)) >> 32
	return time.Unix(secs, nanos).UTC()
}

// TimeTagFromTime converts a time.Time to its NTP64 TimeTag representation.
func TimeTagFromTime(t time.Time) TimeTag {
	t = t.UTC()
	secs := uint32(t.Unix() + ntpEpochOffset)
	frac := uint32((int64(t.Nanosecond()) << 32) / int64(time.Second))
	return TimeTag(uint64(secs)<<32 | uint64(frac))
}

// RGBA is the OSC 1.0 32-bit RGBA colour argument type.
type RGBA struct {
	R, G, B, A byte
}

// AppendTo appends the 4-byte wire representation of c (red first, alpha
// last — the OSC 1.0 big-endian colour layout) to dst and returns the
// extended slice.
func (c RGBA) AppendTo(dst []byte) []byte {
	return append(dst, c.R, c.G, c.B, c.A)
}

// RGBAFromBytes decodes a 4-byte wire representation produced by
// RGBA.AppendTo. Callers must ensure len(b) >= 4.
func RGBAFromBytes(b []byte) RGBA {
	return RGBA{R: b[0], G: b[1], B: b[2], A: b[3]}
}

// MIDI is the OSC 1.0 4-byte MIDI message argument type.
type MIDI struct {
	PortID, Status, Data1, Data2 byte
}

// AppendTo appends the 4-byte wire representation of m (port ID first,
// data2 last) to dst and returns the extended slice.
func (m MIDI) AppendTo(dst []byte) []byte {
	return append(dst, m.PortID, m.Status, m.Data1, m.Data2)
}

// MIDIFromBytes decodes a 4-byte wire representation produced by
// MIDI.AppendTo. Callers must ensure len(b) >= 4.
func MIDIFromBytes(b []byte) MIDI {
	return MIDI{PortID: b[0], Status: b[1], Data1: b[2], Data2: b[3]}
}

// Float32Bits and Float64Bits reinterpret IEEE-754 bit patterns; used by
// the message codec when writing/reading the 'f' and 'd' argument types.
func Float32Bits(f float32) uint32     { return math.Float32bits(f) }
func Float32FromBits(b uint32) float32 { return math.Float32frombits(b) }
func Float64Bits(f float64) uint64     { return math.Float64bits(f) }
func Float64FromBits(b uint64) float64 { return math.Float64frombits(b) }
