package osc99types

import "github.com/xioTechnologies/OSC99/internal/options"

// HardMaxTransportSize is the compile-time ceiling every backing array in
// this module is sized to. Limits can tune the effective bounds used at
// construction time downward from this ceiling, but never above it — Go
// has no analogue to redefining a C #define per translation unit, so the
// ceiling is the one true constant and Limits is the runtime-tunable view
// onto it.
const HardMaxTransportSize = 2048

// Default limits, chosen to match the values the original OSC99 library
// ships with: a 1472-byte UDP-safe transport size, 64-byte address
// patterns, and 16 arguments per message.
const (
	DefaultMaxTransportSize = 1472
	DefaultMaxAddressLen    = 64
	DefaultMaxArguments     = 16
)

// Limits bounds the sizes this module will construct, serialize, or parse.
// A zero-value Limits is invalid; use NewLimits to obtain one pre-filled
// with the defaults above before applying options.
type Limits struct {
	maxTransportSize int
	maxAddressLen    int
	maxArguments     int
}

// LimitsOption configures a Limits value via NewLimits.
type LimitsOption = options.Option[*Limits]

// NewLimits builds a Limits value from the package defaults, applying any
// options supplied. Options are rejected (and NewLimits returns an error)
// if they would push a bound above HardMaxTransportSize or below a
// sensible floor.
func NewLimits(opts ...LimitsOption) (Limits, error) {
	l := Limits{
		maxTransportSize: DefaultMaxTransportSize,
		maxAddressLen:    DefaultMaxAddressLen,
		maxArguments:     DefaultMaxArguments,
	}
	if err := options.Apply(&l, opts...); err != nil {
		return Limits{}, err
	}
	return l, nil
}

// MustNewLimits is like NewLimits but panics on error. Intended for
// package-level var initialization with statically known-good options.
func MustNewLimits(opts ...LimitsOption) Limits {
	l, err := NewLimits(opts...)
	if err != nil {
		panic(err)
	}
	return l
}

// WithMaxTransportSize overrides the maximum size of a single OSC packet
// (message or bundle) that will be constructed or accepted on parse. Must
// be at least 8 (the minimum possible message size) and at most
// HardMaxTransportSize.
func WithMaxTransportSize(n int) LimitsOption {
	return options.New(func(l *Limits) error {
		if n < 8 || n > HardMaxTransportSize {
			return errOutOfRange("max transport size", n, 8, HardMaxTransportSize)
		}
		l.maxTransportSize = n
		return nil
	})
}

// WithMaxAddressLen overrides the maximum address pattern length in bytes,
// excluding the terminating null padding.
func WithMaxAddressLen(n int) LimitsOption {
	return options.New(func(l *Limits) error {
		if n < 1 || n > HardMaxTransportSize {
			return errOutOfRange("max address length", n, 1, HardMaxTransportSize)
		}
		l.maxAddressLen = n
		return nil
	})
}

// WithMaxArguments overrides the maximum number of arguments a single
// message may carry.
func WithMaxArguments(n int) LimitsOption {
	return options.New(func(l *Limits) error {
		if n < 0 || n > 255 {
			return errOutOfRange("max arguments", n, 0, 255)
		}
		l.maxArguments = n
		return nil
	})
}

// MaxTransportSize returns the configured maximum packet size.
func (l Limits) MaxTransportSize() int { return l.maxTransportSize }

// MaxAddressLen returns the configured maximum address pattern length.
func (l Limits) MaxAddressLen() int { return l.maxAddressLen }

// MaxArguments returns the configured maximum argument count.
func (l Limits) MaxArguments() int { return l.maxArguments }

// MaxTypeTagLen returns the maximum type tag string length, including the
// leading comma but not the terminating null padding.
func (l Limits) MaxTypeTagLen() int { return 1 + l.maxArguments }

// MaxArgumentsSize returns the maximum combined byte size of all argument
// values in a message, assuming the worst case of up to 4 bytes of null
// padding for both the address pattern and the type tag string.
func (l Limits) MaxArgumentsSize() int {
	return l.maxTransportSize - (l.maxAddressLen + 4) - (l.MaxTypeTagLen() + 4)
}

// MaxBundleElementsSize returns the maximum combined byte size of a
// bundle's elements (each already framed with its own 4-byte size prefix),
// after accounting for the 8-byte "#bundle" header and 8-byte time tag.
func (l Limits) MaxBundleElementsSize() int {
	return l.maxTransportSize - 8 - 8
}

// DefaultLimits is the zero-configuration Limits value used whenever a
// caller does not supply one explicitly.
var DefaultLimits = MustNewLimits()

func errOutOfRange(what string, got, lo, hi int) error {
	return newLimitsError(what, got, lo, hi)
}
