// Package osc99 provides a complete implementation of OSC 1.0 (Open Sound
// Control): message construction and parsing, address-pattern matching,
// bundles, packets, and SLIP framing for stream transports.
//
// # Core Features
//
//   - Fixed-capacity message, bundle, and packet construction — no hidden
//     allocation once a Limits has sized the backing buffers
//   - Non-destructive failure: a failed Add*, AppendTo, or Get* call never
//     leaves its receiver partially advanced
//   - Full OSC 1.0 address-pattern grammar ('?', '*', '[...]', '{...}')
//   - Recursive bundle dispatch with per-element time tags
//   - A SLIP encoder/decoder for framing packets over a serial stream
//
// # Basic usage
//
// Constructing and encoding a message:
//
//	msg, _ := osc99.NewMessage("/example/address")
//	msg.AddInt32(42)
//	msg.AddString("hello")
//
//	buf := make([]byte, 0, osc99.DefaultLimits.MaxTransportSize())
//	buf, _ = msg.AppendTo(buf)
//
// Parsing a received packet and dispatching its messages:
//
//	pkt, _ := osc99.ParsePacket(buf)
//	pkt.Dispatch(packet.MessageHandlerFunc(func(tt *osc99.TimeTag, msg *osc99.Message) error {
//	    fmt.Println(msg.AddressPattern())
//	    return nil
//	}))
//
// # Package structure
//
// This package provides convenient top-level wrappers around the address,
// message, bundle, packet, and slip packages, sized against DefaultLimits.
// Use those packages directly, together with a custom osc99types.Limits,
// for fine-grained control over backing-buffer capacity.
package osc99

import (
	"github.com/xioTechnologies/OSC99/bundle"
	"github.com/xioTechnologies/OSC99/message"
	"github.com/xioTechnologies/OSC99/osc99types"
	"github.com/xioTechnologies/OSC99/packet"
	"github.com/xioTechnologies/OSC99/slip"
)

// Re-exported so callers that only need the basics don't have to import
// osc99types directly.
type (
	Limits  = osc99types.Limits
	TimeTag = osc99types.TimeTag
	RGBA    = osc99types.RGBA
	MIDI    = osc99types.MIDI
)

const TimeTagImmediate = osc99types.TimeTagImmediate

var (
	NewLimits     = osc99types.NewLimits
	MustNewLimits = osc99types.MustNewLimits
	DefaultLimits = osc99types.DefaultLimits

	WithMaxTransportSize = osc99types.WithMaxTransportSize
	WithMaxAddressLen    = osc99types.WithMaxAddressLen
	WithMaxArguments     = osc99types.WithMaxArguments

	TimeTagFromTime = osc99types.TimeTagFromTime
)

// Message is an OSC message under construction or just parsed from the
// wire. See package message for the full API.
type Message = message.Message

// NewMessage creates a message with the given address pattern, sized
// against DefaultLimits. Use message.New directly to size against a
// custom Limits.
func NewMessage(addressPattern string) (*Message, error) {
	return message.New(DefaultLimits, addressPattern)
}

// ParseMessage decodes a message from its wire representation, sized
// against DefaultLimits.
func ParseMessage(src []byte) (*Message, error) {
	return message.Parse(DefaultLimits, src)
}

// Bundle is an OSC bundle under construction or just parsed from the
// wire. See package bundle for the full API.
type Bundle = bundle.Bundle

// NewBundle creates an empty bundle carrying the given time tag, sized
// against DefaultLimits.
func NewBundle(timeTag TimeTag) *Bundle {
	return bundle.New(DefaultLimits, timeTag)
}

// ParseBundle decodes a bundle from its wire representation, sized
// against DefaultLimits.
func ParseBundle(src []byte) (*Bundle, error) {
	return bundle.Parse(DefaultLimits, src)
}

// Packet is the outermost container for a message or bundle received from
// or sent over a transport. See package packet for the full API.
type Packet = packet.Packet

// NewPacket serializes a message or bundle into a packet, sized against
// DefaultLimits.
func NewPacket(contents bundle.Contents) (*Packet, error) {
	return packet.FromContents(DefaultLimits, contents)
}

// ParsePacket builds a packet from raw bytes received from a transport,
// sized against DefaultLimits. Call Dispatch on the result to decode and
// walk its contents.
func ParsePacket(src []byte) (*Packet, error) {
	return packet.Parse(DefaultLimits, src)
}

// EncodeSLIP appends the SLIP-framed encoding of contents to dst. See
// package slip.
var EncodeSLIP = slip.Encode

// NewSLIPDecoder creates a SLIP frame decoder sized against DefaultLimits.
func NewSLIPDecoder(handler slip.PacketHandler) *slip.Decoder {
	return slip.NewDecoder(DefaultLimits, handler)
}
