// Package slip implements SLIP framing (RFC-less, as specified by OSC
// 1.0's companion convention for stream transports) around raw OSC packet
// bytes: an encoder that escapes END/ESC bytes and appends a trailing END,
// and a byte-at-a-time decoder that reassembles and unescapes a frame as
// soon as an END byte arrives.
package slip

import (
	"github.com/xioTechnologies/OSC99/errs"
	"github.com/xioTechnologies/OSC99/internal/pool"
	"github.com/xioTechnologies/OSC99/osc99types"
)

const (
	end    = 0xC0
	esc    = 0xDB
	escEnd = 0xDC
	escEsc = 0xDD
)

// Encode appends the SLIP-framed encoding of contents (escaping any END or
// ESC byte it contains, then appending a trailing END) to dst and returns
// the extended slice. It fails, leaving dst unchanged, rather than
// reallocate if dst does not have enough spare capacity.
func Encode(contents []byte, dst []byte) ([]byte, error) {
	start := len(dst)

	for _, c := range contents {
		switch c {
		case end:
			if cap(dst)-len(dst) < 2 {
				return dst[:start], errs.New(errs.CodeDestinationTooSmall, nil)
			}
			dst = append(dst, esc, escEnd)
		case esc:
			if cap(dst)-len(dst) < 2 {
				return dst[:start], errs.New(errs.CodeDestinationTooSmall, nil)
			}
			dst = append(dst, esc, escEsc)
		default:
			if cap(dst)-len(dst) < 1 {
				return dst[:start], errs.New(errs.CodeDestinationTooSmall, nil)
			}
			dst = append(dst, c)
		}
	}

	if cap(dst)-len(dst) < 1 {
		return dst[:start], errs.New(errs.CodeDestinationTooSmall, nil)
	}
	return append(dst, end), nil
}

// PacketHandler receives each packet a Decoder reassembles from the
// stream. The contents slice is only valid for the duration of the call:
// it is drawn from a pooled buffer that is recycled as soon as
// HandlePacket returns, so implementations that need to retain it past
// the call must copy it first.
type PacketHandler interface {
	HandlePacket(contents []byte) error
}

// PacketHandlerFunc adapts a plain function to a PacketHandler.
type PacketHandlerFunc func(contents []byte) error

// HandlePacket calls f.
func (f PacketHandlerFunc) HandlePacket(contents []byte) error {
	return f(contents)
}

// Decoder reassembles SLIP frames from a byte stream, one ProcessByte call
// per received byte. Its internal buffer has fixed capacity: a frame
// longer than that capacity is discarded and reported as an error, and the
// decoder resynchronizes at the next END byte rather than getting stuck.
type Decoder struct {
	limits  osc99types.Limits
	buffer  []byte
	handler PacketHandler
}

// NewDecoder creates a Decoder that calls handler for each successfully
// decoded packet.
func NewDecoder(limits osc99types.Limits, handler PacketHandler) *Decoder {
	return &Decoder{
		limits:  limits,
		buffer:  make([]byte, 0, limits.MaxTransportSize()),
		handler: handler,
	}
}

// ClearBuffer discards any partially-received frame.
func (d *Decoder) ClearBuffer() {
	d.buffer = d.buffer[:0]
}

// ProcessByte feeds one byte received from the stream into the decoder. It
// calls the handler once a complete frame has been received and
// successfully decoded.
func (d *Decoder) ProcessByte(b byte) error {
	d.buffer = append(d.buffer, b)
	if len(d.buffer) >= cap(d.buffer) {
		d.buffer = d.buffer[:0]
		return errs.New(errs.CodeEncodedSLIPTooLong, nil)
	}

	if b != end {
		return nil
	}

	encoded := d.buffer
	d.buffer = d.buffer[:0]

	buf := pool.GetFrameBuffer()
	defer pool.PutFrameBuffer(buf)

	for i := 0; i < len(encoded) && encoded[i] != end; i++ {
		c := encoded[i]
		if c == esc {
			i++
			if i >= len(encoded) {
				return errs.New(errs.CodeUnexpectedByteAfterSLIPEsc, nil)
			}
			switch encoded[i] {
			case escEnd:
				buf.B = append(buf.B, end)
			case escEsc:
				buf.B = append(buf.B, esc)
			default:
				return errs.New(errs.CodeUnexpectedByteAfterSLIPEsc, nil)
			}
		} else {
			buf.B = append(buf.B, c)
		}
		if len(buf.B) > d.limits.MaxTransportSize() {
			return errs.New(errs.CodeDecodedSLIPTooLong, nil)
		}
	}

	if d.handler == nil {
		return errs.New(errs.CodeCallbackUndefined, nil)
	}
	return d.handler.HandlePacket(buf.B)
}
