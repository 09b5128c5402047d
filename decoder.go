// decoder.go wraps the native OpusDecoder handle.

package opus

/*
#cgo pkg-config: opus
#include <opus.h>

// opus_decoder_ctl is variadic; cgo cannot call it directly.
static int bridge_decoder_ctl_set(OpusDecoder *st, int request, opus_int32 value) {
	return opus_decoder_ctl(st, request, value);
}
static int bridge_decoder_ctl_get(OpusDecoder *st, int request, opus_int32 *value) {
	return opus_decoder_ctl(st, request, value);
}
static int bridge_decoder_ctl_get_uint(OpusDecoder *st, int request, opus_uint32 *value) {
	return opus_decoder_ctl(st, request, value);
}
static int bridge_decoder_ctl_void(OpusDecoder *st, int request) {
	return opus_decoder_ctl(st, request);
}
*/
import "C"

import "runtime"

// Decoder decodes Opus packets into PCM audio samples.
//
// A Decoder owns one opaque native decoder state, created by
// opus_decoder_create and released by Close (or, as a safety net, by a
// finalizer). It is NOT safe for concurrent use; each goroutine should
// create its own Decoder instance.
type Decoder struct {
	st         *C.OpusDecoder
	sampleRate int
	channels   int
}

// NewDecoder creates a new Opus decoder.
//
// sampleRate must be one of: 8000, 12000, 16000, 24000, 48000.
// channels must be 1 (mono) or 2 (stereo).
//
// The parameters are validated before the native state is allocated.
func NewDecoder(sampleRate, channels int) (*Decoder, error) {
	if !validSampleRate(sampleRate) {
		return nil, ErrInvalidSampleRate
	}
	if channels < 1 || channels > 2 {
		return nil, ErrInvalidChannels
	}

	var errno C.int
	st := C.opus_decoder_create(C.opus_int32(sampleRate), C.int(channels), &errno)
	if errno != C.OPUS_OK || st == nil {
		return nil, newError("opus_decoder_create", int(errno))
	}

	d := &Decoder{st: st, sampleRate: sampleRate, channels: channels}
	runtime.SetFinalizer(d, (*Decoder).Close)
	return d, nil
}

// Close releases the native decoder state. The Decoder must not be used
// afterwards; further calls return InvalidState. Close is idempotent.
func (d *Decoder) Close() error {
	if d.st != nil {
		C.opus_decoder_destroy(d.st)
		d.st = nil
		runtime.SetFinalizer(d, nil)
	}
	return nil
}

// Decode decodes an Opus packet into int16 PCM samples.
//
// data: Opus packet data, or nil/empty for Packet Loss Concealment (PLC).
// pcm: Output buffer for decoded samples (interleaved if stereo). Its length
// divided by the channel count caps the frame size that can be decoded; for
// 120 ms at 48 kHz that is 5760 samples per channel.
// fec: If true, decode the in-band FEC data in this packet that conceals the
// PREVIOUS lost packet; pcm must then be sized to the duration of the lost
// frame.
//
// Returns the number of samples decoded per channel, or an error.
func (d *Decoder) Decode(data []byte, pcm []int16, fec bool) (int, error) {
	if d.st == nil {
		return 0, errClosed("opus_decode")
	}
	if len(pcm) == 0 {
		return 0, ErrBufferTooSmall
	}
	if len(pcm)%d.channels != 0 {
		return 0, ErrInvalidFrameSize
	}

	// NULL input tells libopus to conceal a lost packet.
	var input *C.uchar
	if len(data) > 0 {
		input = (*C.uchar)(&data[0])
	}

	n := C.opus_decode(d.st,
		input,
		C.opus_int32(len(data)),
		(*C.opus_int16)(&pcm[0]),
		C.int(len(pcm)/d.channels),
		boolToCInt(fec))
	runtime.KeepAlive(d)
	if n < 0 {
		return 0, newError("opus_decode", int(n))
	}
	return int(n), nil
}

// DecodeFloat32 decodes an Opus packet into float32 PCM samples.
// See Decode for the data, buffer, and fec semantics.
func (d *Decoder) DecodeFloat32(data []byte, pcm []float32, fec bool) (int, error) {
	if d.st == nil {
		return 0, errClosed("opus_decode_float")
	}
	if len(pcm) == 0 {
		return 0, ErrBufferTooSmall
	}
	if len(pcm)%d.channels != 0 {
		return 0, ErrInvalidFrameSize
	}

	var input *C.uchar
	if len(data) > 0 {
		input = (*C.uchar)(&data[0])
	}

	n := C.opus_decode_float(d.st,
		input,
		C.opus_int32(len(data)),
		(*C.float)(&pcm[0]),
		C.int(len(pcm)/d.channels),
		boolToCInt(fec))
	runtime.KeepAlive(d)
	if n < 0 {
		return 0, newError("opus_decode_float", int(n))
	}
	return int(n), nil
}

// SampleCount returns the number of samples per channel this decoder would
// produce for the given packet, without decoding it.
func (d *Decoder) SampleCount(packet []byte) (int, error) {
	if d.st == nil {
		return 0, errClosed("opus_decoder_get_nb_samples")
	}
	if len(packet) == 0 {
		return 0, ErrEmptyPacket
	}
	n := C.opus_decoder_get_nb_samples(d.st, (*C.uchar)(&packet[0]), C.opus_int32(len(packet)))
	runtime.KeepAlive(d)
	if n < 0 {
		return 0, newError("opus_decoder_get_nb_samples", int(n))
	}
	return int(n), nil
}

// Channels returns the number of audio channels (1 or 2).
func (d *Decoder) Channels() int {
	return d.channels
}

// SampleRate returns the sample rate in Hz the decoder was created with.
func (d *Decoder) SampleRate() int {
	return d.sampleRate
}

func (d *Decoder) ctlSet(name string, request C.int, value int32) error {
	if d.st == nil {
		return errClosed(name)
	}
	ret := C.bridge_decoder_ctl_set(d.st, request, C.opus_int32(value))
	runtime.KeepAlive(d)
	if ret < 0 {
		return newError(name, int(ret))
	}
	return nil
}

func (d *Decoder) ctlGet(name string, request C.int) (int32, error) {
	if d.st == nil {
		return 0, errClosed(name)
	}
	var value C.opus_int32
	ret := C.bridge_decoder_ctl_get(d.st, request, &value)
	runtime.KeepAlive(d)
	if ret < 0 {
		return 0, newError(name, int(ret))
	}
	return int32(value), nil
}

// Reset resets the decoder to a freshly initialized state.
// Call this when starting to decode a new audio stream.
// The configured gain survives the reset.
func (d *Decoder) Reset() error {
	if d.st == nil {
		return errClosed("opus_decoder_ctl(OPUS_RESET_STATE)")
	}
	ret := C.bridge_decoder_ctl_void(d.st, C.OPUS_RESET_STATE)
	runtime.KeepAlive(d)
	if ret < 0 {
		return newError("opus_decoder_ctl(OPUS_RESET_STATE)", int(ret))
	}
	return nil
}

// FinalRange returns the final state of the codec's entropy coder. Comparing
// it between encoder and decoder verifies bit-exact transmission.
func (d *Decoder) FinalRange() (uint32, error) {
	if d.st == nil {
		return 0, errClosed("opus_decoder_ctl(OPUS_GET_FINAL_RANGE)")
	}
	var value C.opus_uint32
	ret := C.bridge_decoder_ctl_get_uint(d.st, C.OPUS_GET_FINAL_RANGE_REQUEST, &value)
	runtime.KeepAlive(d)
	if ret < 0 {
		return 0, newError("opus_decoder_ctl(OPUS_GET_FINAL_RANGE)", int(ret))
	}
	return uint32(value), nil
}

// SetGain configures decoder gain adjustment in Q8 dB units, -32768 to
// 32767. The default is zero, indicating no adjustment:
//
//	gain = pow(10, value/(20.0*256))
func (d *Decoder) SetGain(gainQ8 int) error {
	return d.ctlSet("opus_decoder_ctl(OPUS_SET_GAIN)", C.OPUS_SET_GAIN_REQUEST, int32(gainQ8))
}

// Gain returns the configured gain adjustment in Q8 dB units.
func (d *Decoder) Gain() (int, error) {
	v, err := d.ctlGet("opus_decoder_ctl(OPUS_GET_GAIN)", C.OPUS_GET_GAIN_REQUEST)
	return int(v), err
}

// LastPacketDuration returns the duration, in samples per channel, of the
// last packet successfully decoded or concealed.
func (d *Decoder) LastPacketDuration() (int, error) {
	v, err := d.ctlGet("opus_decoder_ctl(OPUS_GET_LAST_PACKET_DURATION)", C.OPUS_GET_LAST_PACKET_DURATION_REQUEST)
	return int(v), err
}

// Pitch returns the pitch period of the last decoded frame, in samples at
// 48 kHz, or zero if the frame was not voiced or carried no pitch.
func (d *Decoder) Pitch() (int, error) {
	v, err := d.ctlGet("opus_decoder_ctl(OPUS_GET_PITCH)", C.OPUS_GET_PITCH_REQUEST)
	return int(v), err
}

// Bandwidth returns the bandpass of the last decoded packet.
func (d *Decoder) Bandwidth() (Bandwidth, error) {
	v, err := d.ctlGet("opus_decoder_ctl(OPUS_GET_BANDWIDTH)", C.OPUS_GET_BANDWIDTH_REQUEST)
	return Bandwidth(v), err
}

// InDTX reports whether the last packet decoded was a DTX comfort-noise
// update or a concealed DTX silence frame.
func (d *Decoder) InDTX() (bool, error) {
	v, err := d.ctlGet("opus_decoder_ctl(OPUS_GET_IN_DTX)", C.OPUS_GET_IN_DTX_REQUEST)
	return v != 0, err
}

// SetPhaseInversionDisabled disables the use of phase inversion for
// intensity stereo.
func (d *Decoder) SetPhaseInversionDisabled(disabled bool) error {
	return d.ctlSet("opus_decoder_ctl(OPUS_SET_PHASE_INVERSION_DISABLED)", C.OPUS_SET_PHASE_INVERSION_DISABLED_REQUEST, boolToInt32(disabled))
}

// PhaseInversionDisabled reports whether phase inversion is disabled.
func (d *Decoder) PhaseInversionDisabled() (bool, error) {
	v, err := d.ctlGet("opus_decoder_ctl(OPUS_GET_PHASE_INVERSION_DISABLED)", C.OPUS_GET_PHASE_INVERSION_DISABLED_REQUEST)
	return v != 0, err
}

func boolToCInt(b bool) C.int {
	if b {
		return 1
	}
	return 0
}
