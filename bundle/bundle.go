// Package bundle implements the OSC 1.0 bundle type: a time tag plus a
// sequence of size-prefixed elements, each itself a message or a nested
// bundle.
package bundle

import (
	"github.com/xioTechnologies/OSC99/endian"
	"github.com/xioTechnologies/OSC99/errs"
	"github.com/xioTechnologies/OSC99/osc99types"
)

var wireOrder = endian.GetBigEndianEngine()

var header = [8]byte{'#', 'b', 'u', 'n', 'd', 'l', 'e', 0}

const minWireSize = 16 // 8-byte header + 8-byte time tag

// Contents is anything that can be added to a bundle: a message or another
// bundle.
type Contents interface {
	Size() int
	AppendTo(dst []byte) ([]byte, error)
}

// Element is one entry read back out of a parsed bundle. Contents holds the
// element's raw wire bytes (still encoded as a message or nested bundle)
// and aliases the parent Bundle's internal buffer.
type Element struct {
	Contents []byte
}

// Bundle is an OSC bundle under construction or just parsed from the wire.
type Bundle struct {
	limits  osc99types.Limits
	timeTag osc99types.TimeTag

	elements      []byte
	elementsIndex int
}

// New creates an empty Bundle carrying the given time tag.
func New(limits osc99types.Limits, timeTag osc99types.TimeTag) *Bundle {
	return &Bundle{
		limits:   limits,
		timeTag:  timeTag,
		elements: make([]byte, 0, limits.MaxBundleElementsSize()),
	}
}

// TimeTag returns the bundle's time tag.
func (b *Bundle) TimeTag() osc99types.TimeTag { return b.timeTag }

// SetTimeTag replaces the bundle's time tag.
func (b *Bundle) SetTimeTag(t osc99types.TimeTag) { b.timeTag = t }

// AddContents appends a message or bundle as a new element. Fails without
// modifying the bundle if there isn't enough remaining capacity.
func (b *Bundle) AddContents(c Contents) error {
	if len(b.elements)+4 > cap(b.elements) {
		return errs.New(errs.CodeBundleFull, nil)
	}
	if c.Size() > b.RemainingCapacity() {
		return errs.New(errs.CodeBundleFull, nil)
	}

	start := len(b.elements)
	b.elements = append(b.elements, 0, 0, 0, 0) // size placeholder

	after, err := c.AppendTo(b.elements)
	if err != nil {
		b.elements = b.elements[:start]
		return err
	}
	b.elements = after

	size := len(b.elements) - start - 4
	wireOrder.PutUint32(b.elements[start:start+4], uint32(size))
	return nil
}

// Empty discards every element, leaving the time tag untouched.
func (b *Bundle) Empty() {
	b.elements = b.elements[:0]
}

// IsEmpty reports whether the bundle has no elements.
func (b *Bundle) IsEmpty() bool {
	return len(b.elements) == 0
}

// RemainingCapacity returns the number of further element payload bytes
// (not counting the 4-byte size prefix of the next element) the bundle can
// still accept.
func (b *Bundle) RemainingCapacity() int {
	rem := cap(b.elements) - len(b.elements) - 4
	if rem < 0 {
		return 0
	}
	return rem
}

// Size returns the number of bytes AppendTo would add to dst.
func (b *Bundle) Size() int {
	return len(header) + 8 + len(b.elements)
}

// AppendTo appends the wire representation of b to dst and returns the
// extended slice. It fails rather than reallocate if dst does not have
// enough spare capacity.
func (b *Bundle) AppendTo(dst []byte) ([]byte, error) {
	need := b.Size()
	if cap(dst)-len(dst) < need {
		return dst, errs.New(errs.CodeDestinationTooSmall, nil)
	}

	dst = append(dst, header[:]...)

	var tt [8]byte
	wireOrder.PutUint64(tt[:], uint64(b.timeTag))
	dst = append(dst, tt[:]...)

	dst = append(dst, b.elements...)
	return dst, nil
}

// Parse decodes a bundle from its wire representation. src's length must be
// a non-zero multiple of 4.
func Parse(limits osc99types.Limits, src []byte) (*Bundle, error) {
	if len(src)%4 != 0 {
		return nil, errs.New(errs.CodeSizeNotMultipleOfFour, nil)
	}
	if len(src) < minWireSize {
		return nil, errs.New(errs.CodeBundleSizeTooSmall, nil)
	}
	if len(src) > limits.MaxTransportSize() {
		return nil, errs.New(errs.CodeBundleSizeTooLarge, nil)
	}
	if src[0] != '#' {
		return nil, errs.New(errs.CodeNoHashAtStartOfBundle, nil)
	}

	timeTag := osc99types.TimeTag(wireOrder.Uint64(src[8:16]))

	b := &Bundle{
		limits:   limits,
		timeTag:  timeTag,
		elements: make([]byte, 0, limits.MaxBundleElementsSize()),
	}
	b.elements = append(b.elements, src[16:]...)
	return b, nil
}

// IsElementAvailable reports whether a further element remains to be read.
func (b *Bundle) IsElementAvailable() bool {
	return b.elementsIndex+4 < len(b.elements)
}

// NextElement reads the next element's size-prefixed contents and advances
// past it. The returned Element's Contents slice aliases the bundle's
// internal buffer and is only valid until the bundle is next mutated.
func (b *Bundle) NextElement() (Element, error) {
	if b.elementsIndex+4 >= len(b.elements) {
		return Element{}, errs.New(errs.CodeBundleElementNotAvailable, nil)
	}

	size := int32(wireOrder.Uint32(b.elements[b.elementsIndex:]))
	if size < 0 {
		return Element{}, errs.New(errs.CodeNegativeBundleElementSize, nil)
	}
	if size%4 != 0 {
		return Element{}, errs.New(errs.CodeSizeNotMultipleOfFour, nil)
	}

	start := b.elementsIndex + 4
	end := start + int(size)
	if end > len(b.elements) {
		return Element{}, errs.New(errs.CodeInvalidElementSize, nil)
	}

	b.elementsIndex = end
	return Element{Contents: b.elements[start:end]}, nil
}
