// errors.go maps native libopus error codes onto Go error values and
// defines the sentinel errors used for pre-call validation.

package opus

/*
#cgo pkg-config: opus
#include <opus.h>
*/
import "C"

import "errors"

// ErrorCode is a status code returned by libopus. Negative values signal
// failure; every native call in this package converts them into an *Error.
type ErrorCode int

// Native status codes, mirrored from opus_defines.h.
const (
	// OK indicates a successful native call.
	OK ErrorCode = C.OPUS_OK
	// BadArg indicates one or more invalid or out of range arguments.
	BadArg ErrorCode = C.OPUS_BAD_ARG
	// BufferTooSmall indicates not enough bytes allocated in the buffer.
	BufferTooSmall ErrorCode = C.OPUS_BUFFER_TOO_SMALL
	// InternalError indicates an internal error was detected in libopus.
	InternalError ErrorCode = C.OPUS_INTERNAL_ERROR
	// InvalidPacket indicates the compressed data passed is corrupted.
	InvalidPacket ErrorCode = C.OPUS_INVALID_PACKET
	// Unimplemented indicates an invalid or unsupported request number.
	Unimplemented ErrorCode = C.OPUS_UNIMPLEMENTED
	// InvalidState indicates an encoder or decoder structure is invalid
	// or already freed.
	InvalidState ErrorCode = C.OPUS_INVALID_STATE
	// AllocFail indicates a memory allocation has failed inside libopus.
	AllocFail ErrorCode = C.OPUS_ALLOC_FAIL
)

// String returns the human-readable description provided by opus_strerror.
func (c ErrorCode) String() string {
	return C.GoString(C.opus_strerror(C.int(c)))
}

// Error is a failure reported by a native libopus call. It records the name
// of the C function that failed together with the native status code.
type Error struct {
	// Function is the name of the libopus function that returned the code.
	Function string
	// Code is the native status code.
	Code ErrorCode
}

// Error implements the error interface.
func (e *Error) Error() string {
	return "opus: " + e.Function + ": " + e.Code.String()
}

// newError wraps a negative native return value.
func newError(function string, code int) error {
	return &Error{Function: function, Code: ErrorCode(code)}
}

// errClosed reports use of a wrapper whose native state was already freed.
// The native call is never made in that case.
func errClosed(function string) error {
	return &Error{Function: function, Code: InvalidState}
}

// Sentinel errors for parameter and buffer validation performed before
// crossing into C. They compare with errors.Is.
var (
	// ErrInvalidSampleRate indicates an unsupported sample rate.
	// Valid sample rates are: 8000, 12000, 16000, 24000, 48000.
	ErrInvalidSampleRate = errors.New("opus: invalid sample rate (must be 8000, 12000, 16000, 24000, or 48000)")

	// ErrInvalidChannels indicates an unsupported channel count.
	// Valid channel counts are 1 (mono) or 2 (stereo).
	ErrInvalidChannels = errors.New("opus: invalid channels (must be 1 or 2)")

	// ErrInvalidFrameSize indicates a PCM slice whose length is not a
	// whole number of interleaved samples, or an empty encoder input.
	ErrInvalidFrameSize = errors.New("opus: invalid frame size")

	// ErrBufferTooSmall indicates an empty caller-provided output buffer.
	ErrBufferTooSmall = errors.New("opus: output buffer too small")

	// ErrEmptyPacket indicates an empty packet was passed to a packet
	// inspection function that requires at least the TOC byte.
	ErrEmptyPacket = errors.New("opus: empty packet")

	// ErrInvalidStreams indicates an invalid stream count for multistream
	// encoding/decoding. Valid stream counts are 1 to 255.
	ErrInvalidStreams = errors.New("opus: invalid stream count (must be 1-255)")

	// ErrInvalidCoupledStreams indicates an invalid coupled streams count.
	// Coupled streams must be between 0 and total streams.
	ErrInvalidCoupledStreams = errors.New("opus: invalid coupled streams (must be 0 to streams)")

	// ErrInvalidMapping indicates an invalid channel mapping table.
	// The mapping table length defines the channel count and must be 1-255.
	ErrInvalidMapping = errors.New("opus: invalid mapping table")
)

// validSampleRate returns true if the sample rate is valid for Opus.
func validSampleRate(rate int) bool {
	switch rate {
	case 8000, 12000, 16000, 24000, 48000:
		return true
	default:
		return false
	}
}
