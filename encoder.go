// encoder.go wraps the native OpusEncoder handle.

package opus

/*
#cgo pkg-config: opus
#include <opus.h>

// opus_encoder_ctl is variadic; cgo cannot call it directly. These shims
// cover the three argument shapes used by the generic and encoder CTLs.
static int bridge_encoder_ctl_set(OpusEncoder *st, int request, opus_int32 value) {
	return opus_encoder_ctl(st, request, value);
}
static int bridge_encoder_ctl_get(OpusEncoder *st, int request, opus_int32 *value) {
	return opus_encoder_ctl(st, request, value);
}
static int bridge_encoder_ctl_get_uint(OpusEncoder *st, int request, opus_uint32 *value) {
	return opus_encoder_ctl(st, request, value);
}
static int bridge_encoder_ctl_void(OpusEncoder *st, int request) {
	return opus_encoder_ctl(st, request);
}
*/
import "C"

import "runtime"

// Encoder encodes PCM audio samples into Opus packets.
//
// An Encoder owns one opaque native encoder state, created by
// opus_encoder_create and released by Close (or, as a safety net, by a
// finalizer). It is NOT safe for concurrent use; each goroutine should
// create its own Encoder instance.
type Encoder struct {
	st         *C.OpusEncoder
	sampleRate int
	channels   int
}

// NewEncoder creates a new Opus encoder.
//
// sampleRate must be one of: 8000, 12000, 16000, 24000, 48000.
// channels must be 1 (mono) or 2 (stereo).
// application hints the encoder for optimization.
//
// The parameters are validated before the native state is allocated.
func NewEncoder(sampleRate, channels int, application Application) (*Encoder, error) {
	if !validSampleRate(sampleRate) {
		return nil, ErrInvalidSampleRate
	}
	if channels < 1 || channels > 2 {
		return nil, ErrInvalidChannels
	}

	var errno C.int
	st := C.opus_encoder_create(C.opus_int32(sampleRate), C.int(channels), C.int(application), &errno)
	if errno != C.OPUS_OK || st == nil {
		return nil, newError("opus_encoder_create", int(errno))
	}

	e := &Encoder{st: st, sampleRate: sampleRate, channels: channels}
	runtime.SetFinalizer(e, (*Encoder).Close)
	return e, nil
}

// Close releases the native encoder state. The Encoder must not be used
// afterwards; further calls return InvalidState. Close is idempotent.
func (e *Encoder) Close() error {
	if e.st != nil {
		C.opus_encoder_destroy(e.st)
		e.st = nil
		runtime.SetFinalizer(e, nil)
	}
	return nil
}

// Encode encodes int16 PCM samples into an Opus packet.
//
// pcm: Input samples (interleaved if stereo). Its length divided by the
// channel count is the frame size and must correspond to a valid Opus frame
// duration (2.5 to 120 ms at the configured sample rate).
// data: Output buffer for the encoded packet. 4000 bytes is sufficient for
// any single Opus frame.
//
// Returns the number of bytes written to data, or an error.
func (e *Encoder) Encode(pcm []int16, data []byte) (int, error) {
	if e.st == nil {
		return 0, errClosed("opus_encode")
	}
	if len(pcm) == 0 || len(pcm)%e.channels != 0 {
		return 0, ErrInvalidFrameSize
	}
	if len(data) == 0 {
		return 0, ErrBufferTooSmall
	}

	n := C.opus_encode(e.st,
		(*C.opus_int16)(&pcm[0]),
		C.int(len(pcm)/e.channels),
		(*C.uchar)(&data[0]),
		C.opus_int32(len(data)))
	runtime.KeepAlive(e)
	if n < 0 {
		return 0, newError("opus_encode", int(n))
	}
	return int(n), nil
}

// EncodeFloat32 encodes float32 PCM samples into an Opus packet.
//
// Samples are expected in the range [-1, 1]; values outside that range are
// handled by libopus but reduce quality. See Encode for buffer semantics.
func (e *Encoder) EncodeFloat32(pcm []float32, data []byte) (int, error) {
	if e.st == nil {
		return 0, errClosed("opus_encode_float")
	}
	if len(pcm) == 0 || len(pcm)%e.channels != 0 {
		return 0, ErrInvalidFrameSize
	}
	if len(data) == 0 {
		return 0, ErrBufferTooSmall
	}

	n := C.opus_encode_float(e.st,
		(*C.float)(&pcm[0]),
		C.int(len(pcm)/e.channels),
		(*C.uchar)(&data[0]),
		C.opus_int32(len(data)))
	runtime.KeepAlive(e)
	if n < 0 {
		return 0, newError("opus_encode_float", int(n))
	}
	return int(n), nil
}

// EncodeSlice encodes int16 PCM samples and returns a new byte slice.
//
// This is a convenience method that allocates the output buffer.
// For performance-critical code, use Encode with a pre-allocated buffer.
func (e *Encoder) EncodeSlice(pcm []int16) ([]byte, error) {
	data := make([]byte, maxPacketBytes)
	n, err := e.Encode(pcm, data)
	if err != nil {
		return nil, err
	}
	return data[:n], nil
}

// EncodeFloat32Slice encodes float32 PCM samples and returns a new byte slice.
//
// This is a convenience method that allocates the output buffer.
// For performance-critical code, use EncodeFloat32 with a pre-allocated buffer.
func (e *Encoder) EncodeFloat32Slice(pcm []float32) ([]byte, error) {
	data := make([]byte, maxPacketBytes)
	n, err := e.EncodeFloat32(pcm, data)
	if err != nil {
		return nil, err
	}
	return data[:n], nil
}

// maxPacketBytes is enough for any single Opus frame at the maximum bitrate.
const maxPacketBytes = 4000

// Channels returns the number of audio channels (1 or 2).
func (e *Encoder) Channels() int {
	return e.channels
}

// SampleRate returns the sample rate in Hz the encoder was created with.
func (e *Encoder) SampleRate() int {
	return e.sampleRate
}

// ctl helpers. Every CTL funnels through one of these so that negative
// native returns are mapped uniformly, tagged with the request name.

func (e *Encoder) ctlSet(name string, request C.int, value int32) error {
	if e.st == nil {
		return errClosed(name)
	}
	ret := C.bridge_encoder_ctl_set(e.st, request, C.opus_int32(value))
	runtime.KeepAlive(e)
	if ret < 0 {
		return newError(name, int(ret))
	}
	return nil
}

func (e *Encoder) ctlGet(name string, request C.int) (int32, error) {
	if e.st == nil {
		return 0, errClosed(name)
	}
	var value C.opus_int32
	ret := C.bridge_encoder_ctl_get(e.st, request, &value)
	runtime.KeepAlive(e)
	if ret < 0 {
		return 0, newError(name, int(ret))
	}
	return int32(value), nil
}

// Reset resets the encoder to a freshly initialized state.
// Call this when starting to encode a new audio stream.
func (e *Encoder) Reset() error {
	if e.st == nil {
		return errClosed("opus_encoder_ctl(OPUS_RESET_STATE)")
	}
	ret := C.bridge_encoder_ctl_void(e.st, C.OPUS_RESET_STATE)
	runtime.KeepAlive(e)
	if ret < 0 {
		return newError("opus_encoder_ctl(OPUS_RESET_STATE)", int(ret))
	}
	return nil
}

// FinalRange returns the final state of the codec's entropy coder. Comparing
// it between encoder and decoder verifies bit-exact transmission.
func (e *Encoder) FinalRange() (uint32, error) {
	if e.st == nil {
		return 0, errClosed("opus_encoder_ctl(OPUS_GET_FINAL_RANGE)")
	}
	var value C.opus_uint32
	ret := C.bridge_encoder_ctl_get_uint(e.st, C.OPUS_GET_FINAL_RANGE_REQUEST, &value)
	runtime.KeepAlive(e)
	if ret < 0 {
		return 0, newError("opus_encoder_ctl(OPUS_GET_FINAL_RANGE)", int(ret))
	}
	return uint32(value), nil
}

// SetBitrate sets the target bitrate in bits per second.
// The special values BitrateAuto and BitrateMax are also accepted.
func (e *Encoder) SetBitrate(bitrate int) error {
	return e.ctlSet("opus_encoder_ctl(OPUS_SET_BITRATE)", C.OPUS_SET_BITRATE_REQUEST, int32(bitrate))
}

// Bitrate returns the current target bitrate in bits per second.
func (e *Encoder) Bitrate() (int, error) {
	v, err := e.ctlGet("opus_encoder_ctl(OPUS_GET_BITRATE)", C.OPUS_GET_BITRATE_REQUEST)
	return int(v), err
}

// SetComplexity sets the encoder's computational complexity, 0-10.
// Higher values trade CPU for quality.
func (e *Encoder) SetComplexity(complexity int) error {
	return e.ctlSet("opus_encoder_ctl(OPUS_SET_COMPLEXITY)", C.OPUS_SET_COMPLEXITY_REQUEST, int32(complexity))
}

// Complexity returns the current complexity setting.
func (e *Encoder) Complexity() (int, error) {
	v, err := e.ctlGet("opus_encoder_ctl(OPUS_GET_COMPLEXITY)", C.OPUS_GET_COMPLEXITY_REQUEST)
	return int(v), err
}

// SetVBR enables or disables variable bitrate.
func (e *Encoder) SetVBR(enabled bool) error {
	return e.ctlSet("opus_encoder_ctl(OPUS_SET_VBR)", C.OPUS_SET_VBR_REQUEST, boolToInt32(enabled))
}

// VBR reports whether variable bitrate is enabled.
func (e *Encoder) VBR() (bool, error) {
	v, err := e.ctlGet("opus_encoder_ctl(OPUS_GET_VBR)", C.OPUS_GET_VBR_REQUEST)
	return v != 0, err
}

// SetVBRConstraint enables or disables constrained VBR.
func (e *Encoder) SetVBRConstraint(constrained bool) error {
	return e.ctlSet("opus_encoder_ctl(OPUS_SET_VBR_CONSTRAINT)", C.OPUS_SET_VBR_CONSTRAINT_REQUEST, boolToInt32(constrained))
}

// VBRConstraint reports whether constrained VBR is enabled.
func (e *Encoder) VBRConstraint() (bool, error) {
	v, err := e.ctlGet("opus_encoder_ctl(OPUS_GET_VBR_CONSTRAINT)", C.OPUS_GET_VBR_CONSTRAINT_REQUEST)
	return v != 0, err
}

// ForceChannelsAuto restores automatic channel selection in SetForceChannels.
const ForceChannelsAuto = C.OPUS_AUTO

// SetForceChannels forces mono or stereo packets regardless of the input.
// channels must be ForceChannelsAuto, 1, or 2.
//
// This is useful when the caller knows the input signal is currently a mono
// source embedded in a stereo stream.
func (e *Encoder) SetForceChannels(channels int) error {
	return e.ctlSet("opus_encoder_ctl(OPUS_SET_FORCE_CHANNELS)", C.OPUS_SET_FORCE_CHANNELS_REQUEST, int32(channels))
}

// ForceChannels returns the forced channel configuration
// (ForceChannelsAuto, 1, or 2).
func (e *Encoder) ForceChannels() (int, error) {
	v, err := e.ctlGet("opus_encoder_ctl(OPUS_GET_FORCE_CHANNELS)", C.OPUS_GET_FORCE_CHANNELS_REQUEST)
	return int(v), err
}

// SetMaxBandwidth configures the widest bandpass the encoder may select
// automatically.
func (e *Encoder) SetMaxBandwidth(bw Bandwidth) error {
	return e.ctlSet("opus_encoder_ctl(OPUS_SET_MAX_BANDWIDTH)", C.OPUS_SET_MAX_BANDWIDTH_REQUEST, int32(bw))
}

// MaxBandwidth returns the configured maximum allowed bandpass.
func (e *Encoder) MaxBandwidth() (Bandwidth, error) {
	v, err := e.ctlGet("opus_encoder_ctl(OPUS_GET_MAX_BANDWIDTH)", C.OPUS_GET_MAX_BANDWIDTH_REQUEST)
	return Bandwidth(v), err
}

// SetBandwidth sets the encoder's bandpass to a specific value, or
// BandwidthAuto to restore automatic selection.
func (e *Encoder) SetBandwidth(bw Bandwidth) error {
	return e.ctlSet("opus_encoder_ctl(OPUS_SET_BANDWIDTH)", C.OPUS_SET_BANDWIDTH_REQUEST, int32(bw))
}

// Bandwidth returns the encoder's configured bandpass.
func (e *Encoder) Bandwidth() (Bandwidth, error) {
	v, err := e.ctlGet("opus_encoder_ctl(OPUS_GET_BANDWIDTH)", C.OPUS_GET_BANDWIDTH_REQUEST)
	return Bandwidth(v), err
}

// SetSignal configures the type of signal being encoded.
func (e *Encoder) SetSignal(signal Signal) error {
	return e.ctlSet("opus_encoder_ctl(OPUS_SET_SIGNAL)", C.OPUS_SET_SIGNAL_REQUEST, int32(signal))
}

// Signal returns the encoder's configured signal type.
func (e *Encoder) Signal() (Signal, error) {
	v, err := e.ctlGet("opus_encoder_ctl(OPUS_GET_SIGNAL)", C.OPUS_GET_SIGNAL_REQUEST)
	return Signal(v), err
}

// SetApplication reconfigures the encoder's intended application.
func (e *Encoder) SetApplication(application Application) error {
	return e.ctlSet("opus_encoder_ctl(OPUS_SET_APPLICATION)", C.OPUS_SET_APPLICATION_REQUEST, int32(application))
}

// Application returns the encoder's configured application.
func (e *Encoder) Application() (Application, error) {
	v, err := e.ctlGet("opus_encoder_ctl(OPUS_GET_APPLICATION)", C.OPUS_GET_APPLICATION_REQUEST)
	return Application(v), err
}

// Lookahead returns the total samples of delay added by the entire codec.
func (e *Encoder) Lookahead() (int, error) {
	v, err := e.ctlGet("opus_encoder_ctl(OPUS_GET_LOOKAHEAD)", C.OPUS_GET_LOOKAHEAD_REQUEST)
	return int(v), err
}

// SetFEC enables or disables in-band Forward Error Correction.
//
// When enabled, the encoder includes redundant information so a later packet
// can recover this frame. Pair with SetPacketLoss to make the encoder
// actually spend bits on it.
func (e *Encoder) SetFEC(enabled bool) error {
	return e.ctlSet("opus_encoder_ctl(OPUS_SET_INBAND_FEC)", C.OPUS_SET_INBAND_FEC_REQUEST, boolToInt32(enabled))
}

// FECEnabled reports whether in-band FEC is enabled.
func (e *Encoder) FECEnabled() (bool, error) {
	v, err := e.ctlGet("opus_encoder_ctl(OPUS_GET_INBAND_FEC)", C.OPUS_GET_INBAND_FEC_REQUEST)
	return v != 0, err
}

// SetPacketLoss sets the expected packet loss percentage, 0-100.
func (e *Encoder) SetPacketLoss(lossPercent int) error {
	return e.ctlSet("opus_encoder_ctl(OPUS_SET_PACKET_LOSS_PERC)", C.OPUS_SET_PACKET_LOSS_PERC_REQUEST, int32(lossPercent))
}

// PacketLoss returns the expected packet loss percentage.
func (e *Encoder) PacketLoss() (int, error) {
	v, err := e.ctlGet("opus_encoder_ctl(OPUS_GET_PACKET_LOSS_PERC)", C.OPUS_GET_PACKET_LOSS_PERC_REQUEST)
	return int(v), err
}

// SetDTX enables or disables Discontinuous Transmission. When enabled, the
// encoder produces near-empty packets during silence.
func (e *Encoder) SetDTX(enabled bool) error {
	return e.ctlSet("opus_encoder_ctl(OPUS_SET_DTX)", C.OPUS_SET_DTX_REQUEST, boolToInt32(enabled))
}

// DTXEnabled reports whether DTX is enabled.
func (e *Encoder) DTXEnabled() (bool, error) {
	v, err := e.ctlGet("opus_encoder_ctl(OPUS_GET_DTX)", C.OPUS_GET_DTX_REQUEST)
	return v != 0, err
}

// InDTX reports whether the last encoded frame was suppressed by DTX.
func (e *Encoder) InDTX() (bool, error) {
	v, err := e.ctlGet("opus_encoder_ctl(OPUS_GET_IN_DTX)", C.OPUS_GET_IN_DTX_REQUEST)
	return v != 0, err
}

// SetLSBDepth configures the depth of the signal being encoded, 8-24 bits.
// This affects noise shaping and DTX sensitivity.
func (e *Encoder) SetLSBDepth(depth int) error {
	return e.ctlSet("opus_encoder_ctl(OPUS_SET_LSB_DEPTH)", C.OPUS_SET_LSB_DEPTH_REQUEST, int32(depth))
}

// LSBDepth returns the configured signal depth.
func (e *Encoder) LSBDepth() (int, error) {
	v, err := e.ctlGet("opus_encoder_ctl(OPUS_GET_LSB_DEPTH)", C.OPUS_GET_LSB_DEPTH_REQUEST)
	return int(v), err
}

// SetExpertFrameDuration configures the encoder's use of variable duration
// frames. Do not use this option unless you really know what you are doing.
func (e *Encoder) SetExpertFrameDuration(size FrameSize) error {
	return e.ctlSet("opus_encoder_ctl(OPUS_SET_EXPERT_FRAME_DURATION)", C.OPUS_SET_EXPERT_FRAME_DURATION_REQUEST, int32(size))
}

// ExpertFrameDuration returns the configured variable frame duration setting.
func (e *Encoder) ExpertFrameDuration() (FrameSize, error) {
	v, err := e.ctlGet("opus_encoder_ctl(OPUS_GET_EXPERT_FRAME_DURATION)", C.OPUS_GET_EXPERT_FRAME_DURATION_REQUEST)
	return FrameSize(v), err
}

// SetPredictionDisabled disables almost all use of prediction, making frames
// almost completely independent at some cost in quality.
func (e *Encoder) SetPredictionDisabled(disabled bool) error {
	return e.ctlSet("opus_encoder_ctl(OPUS_SET_PREDICTION_DISABLED)", C.OPUS_SET_PREDICTION_DISABLED_REQUEST, boolToInt32(disabled))
}

// PredictionDisabled reports whether prediction is disabled.
func (e *Encoder) PredictionDisabled() (bool, error) {
	v, err := e.ctlGet("opus_encoder_ctl(OPUS_GET_PREDICTION_DISABLED)", C.OPUS_GET_PREDICTION_DISABLED_REQUEST)
	return v != 0, err
}

// SetPhaseInversionDisabled disables the use of phase inversion for
// intensity stereo, improving mono downmix quality.
func (e *Encoder) SetPhaseInversionDisabled(disabled bool) error {
	return e.ctlSet("opus_encoder_ctl(OPUS_SET_PHASE_INVERSION_DISABLED)", C.OPUS_SET_PHASE_INVERSION_DISABLED_REQUEST, boolToInt32(disabled))
}

// PhaseInversionDisabled reports whether phase inversion is disabled.
func (e *Encoder) PhaseInversionDisabled() (bool, error) {
	v, err := e.ctlGet("opus_encoder_ctl(OPUS_GET_PHASE_INVERSION_DISABLED)", C.OPUS_GET_PHASE_INVERSION_DISABLED_REQUEST)
	return v != 0, err
}

func boolToInt32(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
