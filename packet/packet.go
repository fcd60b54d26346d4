// Package packet implements the OSC 1.0 packet: the outermost container
// received from or sent over a transport, holding either a single message
// or a bundle of further packets.
package packet

import (
	"github.com/xioTechnologies/OSC99/bundle"
	"github.com/xioTechnologies/OSC99/errs"
	"github.com/xioTechnologies/OSC99/message"
	"github.com/xioTechnologies/OSC99/osc99types"
)

// MessageHandler receives each message found while dispatching a packet.
// timeTag is nil for a message that was not itself carried inside a
// bundle; otherwise it is the time tag of the innermost enclosing bundle.
//
// A MessageHandler implementation is a plain interface value, not a
// generic type parameter, so that code dispatching packets can store one
// in an ordinary struct field the way net/http stores a Handler.
type MessageHandler interface {
	HandleMessage(timeTag *osc99types.TimeTag, msg *message.Message) error
}

// MessageHandlerFunc adapts a plain function to a MessageHandler.
type MessageHandlerFunc func(timeTag *osc99types.TimeTag, msg *message.Message) error

// HandleMessage calls f.
func (f MessageHandlerFunc) HandleMessage(timeTag *osc99types.TimeTag, msg *message.Message) error {
	return f(timeTag, msg)
}

// Packet holds the raw wire bytes of a message or bundle, not yet
// dispatched.
type Packet struct {
	limits   osc99types.Limits
	contents []byte
}

// FromContents builds a Packet by serializing a message or bundle.
func FromContents(limits osc99types.Limits, contents bundle.Contents) (*Packet, error) {
	buf := make([]byte, 0, limits.MaxTransportSize())
	buf, err := contents.AppendTo(buf)
	if err != nil {
		return nil, err
	}
	return &Packet{limits: limits, contents: buf}, nil
}

// Parse builds a Packet from raw bytes received from a transport, without
// interpreting them yet — call Dispatch to decode and walk the contents.
func Parse(limits osc99types.Limits, src []byte) (*Packet, error) {
	if len(src) > limits.MaxTransportSize() {
		return nil, errs.New(errs.CodePacketSizeTooLarge, nil)
	}
	contents := make([]byte, len(src))
	copy(contents, src)
	return &Packet{limits: limits, contents: contents}, nil
}

// Contents returns the packet's raw wire bytes.
func (p *Packet) Contents() []byte { return p.contents }

func isMessage(contents []byte) bool { return len(contents) > 0 && contents[0] == '/' }
func isBundle(contents []byte) bool  { return len(contents) > 0 && contents[0] == '#' }

// Dispatch recursively decodes the packet, invoking handler for every
// message it contains (including every message nested in a bundle, at any
// depth). It stops and returns the first error encountered, whether from
// decoding or from the handler itself.
func (p *Packet) Dispatch(handler MessageHandler) error {
	if handler == nil {
		return errs.New(errs.CodeCallbackUndefined, nil)
	}
	return deconstruct(p.limits, nil, p.contents, handler)
}

func deconstruct(limits osc99types.Limits, timeTag *osc99types.TimeTag, contents []byte, handler MessageHandler) error {
	if len(contents) == 0 {
		return errs.New(errs.CodeContentsEmpty, nil)
	}

	switch {
	case isMessage(contents):
		msg, err := message.Parse(limits, contents)
		if err != nil {
			return err
		}
		return handler.HandleMessage(timeTag, msg)

	case isBundle(contents):
		b, err := bundle.Parse(limits, contents)
		if err != nil {
			return err
		}
		bundleTimeTag := b.TimeTag()
		for b.IsElementAvailable() {
			el, err := b.NextElement()
			if err != nil {
				return err
			}
			if err := deconstruct(limits, &bundleTimeTag, el.Contents, handler); err != nil {
				return err
			}
		}
		return nil

	default:
		return errs.New(errs.CodeInvalidContents, nil)
	}
}
