// Package opus provides Go bindings for the libopus audio codec.
//
// Opus is a lossy audio codec designed for interactive speech and music
// transmission. It supports bitrates from 6 to 510 kbit/s, sampling rates
// from 8 to 48 kHz, and frame sizes from 2.5 to 120 ms.
//
// This package is a thin, memory-safe wrapper around the reference C
// implementation, linked via cgo. All encoding and decoding is performed by
// libopus itself; the bindings validate buffer sizes and parameters before
// crossing the C boundary, map native error codes onto Go error values, and
// manage the lifetime of the opaque native state.
//
// # Building
//
// libopus and its headers must be installed; the package locates them
// through pkg-config ("opus"). On Debian-style systems:
//
//	apt-get install libopus-dev pkg-config
//
// # Concurrency
//
// A single Encoder, Decoder, Repacketizer, MultistreamEncoder, or
// MultistreamDecoder may be moved between goroutines, but must not be used
// from more than one goroutine at a time. Separate instances are fully
// independent and may be used in parallel.
//
// # Error handling
//
// Failures reported by libopus carry an ErrorCode and the name of the
// native function that produced it; unwrap them with errors.As. Parameter
// and buffer-size problems detected before the native call are reported as
// package-level sentinel errors such as ErrInvalidSampleRate and compare
// with errors.Is.
package opus
