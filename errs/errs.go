// Package errs defines the error taxonomy shared by every OSC99 package.
//
// Every failure returned across the module carries a Code so that callers —
// including resource-constrained callers that would rather switch on an
// integer than walk an error chain — can classify the failure without
// string matching. A Code is always wrapped in an *Error, which in turn
// wraps an optional detail error reachable through errors.Is/errors.As.
package errs

import (
	"errors"
	"fmt"
)

// Code enumerates the distinct failure classes a library function may
// return. The numbering mirrors the grouping of the original C error enum
// (common, address, message, bundle, packet, slip) but is not wire-visible
// and may be renumbered freely between releases.
type Code uint8

const (
	// CodeNone is the zero value, returned by Error.Code() on a nil *Error
	// and by CodeOf when err does not wrap an *Error.
	CodeNone Code = iota

	// Common errors.
	CodeDestinationTooSmall
	CodeSizeNotMultipleOfFour
	CodeCallbackUndefined

	// Address errors.
	CodeNotEnoughPartsInAddressPattern

	// Message errors.
	CodeNoSlashAtStartOfMessage
	CodeAddressPatternTooLong
	CodeTooManyArguments
	CodeArgumentsSizeTooLarge
	CodeUndefinedAddressPattern
	CodeMessageSizeTooSmall
	CodeMessageSizeTooLarge
	CodeSourceEndsBeforeEndOfAddressPattern
	CodeSourceEndsBeforeStartOfTypeTagString
	CodeTypeTagStringTooLong
	CodeSourceEndsBeforeEndOfTypeTagString
	CodeUnexpectedEndOfSource
	CodeNoArgumentsAvailable
	CodeUnexpectedArgumentType
	CodeMessageTooShortForArgumentType

	// Bundle errors.
	CodeBundleFull
	CodeBundleSizeTooSmall
	CodeBundleSizeTooLarge
	CodeNoHashAtStartOfBundle
	CodeBundleElementNotAvailable
	CodeNegativeBundleElementSize
	CodeInvalidElementSize

	// Packet errors.
	CodeInvalidContents
	CodePacketSizeTooLarge
	CodeContentsEmpty

	// SLIP errors.
	CodeEncodedSLIPTooLong
	CodeUnexpectedByteAfterSLIPEsc
	CodeDecodedSLIPTooLong
)

var messages = map[Code]string{
	CodeNone:                                 "no error",
	CodeDestinationTooSmall:                  "destination too small to contain the bytes available",
	CodeSizeNotMultipleOfFour:                "size must be a multiple of four",
	CodeCallbackUndefined:                    "callback function undefined",
	CodeNotEnoughPartsInAddressPattern:       "not enough parts in address pattern to get part at specified index",
	CodeNoSlashAtStartOfMessage:              "address pattern does not start with a slash",
	CodeAddressPatternTooLong:                "address pattern length exceeds the configured limit",
	CodeTooManyArguments:                     "number of arguments exceeds the configured limit",
	CodeArgumentsSizeTooLarge:                "total arguments size exceeds the configured limit",
	CodeUndefinedAddressPattern:              "undefined address pattern",
	CodeMessageSizeTooSmall:                  "message size too small to be a valid message",
	CodeMessageSizeTooLarge:                  "message size exceeds the configured limit",
	CodeSourceEndsBeforeEndOfAddressPattern:  "source data ends before the end of the address pattern",
	CodeSourceEndsBeforeStartOfTypeTagString: "source data ends before the start of the type tag string",
	CodeTypeTagStringTooLong:                 "type tag string length exceeds the configured limit",
	CodeSourceEndsBeforeEndOfTypeTagString:   "source data ends before the end of the type tag string",
	CodeUnexpectedEndOfSource:                "unexpected end of source data",
	CodeNoArgumentsAvailable:                 "no arguments available",
	CodeUnexpectedArgumentType:               "unexpected argument type",
	CodeMessageTooShortForArgumentType:       "message too short to contain the argument",
	CodeBundleFull:                           "not enough space available in the bundle to contain the contents",
	CodeBundleSizeTooSmall:                   "bundle size too small to be a valid bundle",
	CodeBundleSizeTooLarge:                   "bundle size exceeds the configured limit",
	CodeNoHashAtStartOfBundle:                "bundle does not start with a hash character",
	CodeBundleElementNotAvailable:            "bundle element not available",
	CodeNegativeBundleElementSize:            "bundle element size cannot be negative",
	CodeInvalidElementSize:                   "bundle too short to contain the element size",
	CodeInvalidContents:                      "contents is not a bundle or a message",
	CodePacketSizeTooLarge:                   "packet size exceeds the configured limit",
	CodeContentsEmpty:                        "contents size cannot be zero",
	CodeEncodedSLIPTooLong:                   "encoded SLIP packet exceeds the decoder buffer size",
	CodeUnexpectedByteAfterSLIPEsc:           "unexpected byte after SLIP ESC byte",
	CodeDecodedSLIPTooLong:                   "decoded SLIP packet exceeds the configured limit",
}

// verbose toggles between the full per-code message table and a single
// generic string. A real embedded build would make this a build tag instead
// of a runtime flag; see DESIGN.md for the tradeoff.
var verbose = true

// SetVerboseMessages enables or disables the descriptive error message
// table. Disabling it shrinks every *Error's Error() string to a constant;
// the message table is still compiled in, so binary size does not change.
// The Code is unaffected either way.
func SetVerboseMessages(enabled bool) {
	verbose = enabled
}

// Error is the concrete error type returned by every OSC99 package.
type Error struct {
	code   Code
	detail error
}

// New constructs an *Error for code, optionally wrapping a detail error.
func New(code Code, detail error) *Error {
	return &Error{code: code, detail: detail}
}

// Newf constructs an *Error for code with a formatted detail message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{code: code, detail: fmt.Errorf(format, args...)}
}

// CodeOf returns err's taxonomy code, or CodeNone if err is nil or does not
// wrap an *Error anywhere in its chain.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.code
	}
	return CodeNone
}

// Code returns e's taxonomy code.
func (e *Error) Code() Code {
	if e == nil {
		return CodeNone
	}
	return e.code
}

// Unwrap exposes the wrapped detail error for errors.Is/errors.As.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.detail
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if !verbose {
		return "osc99 error"
	}
	msg, ok := messages[e.code]
	if !ok {
		msg = "unknown error"
	}
	if e.detail != nil {
		return fmt.Sprintf("%s: %v", msg, e.detail)
	}
	return msg
}
