// multistream.go wraps the native multistream encoder and decoder handles,
// which combine up to 255 elementary Opus streams in a single packet for
// surround configurations.

package opus

/*
#cgo pkg-config: opus
#include <opus.h>
#include <opus_multistream.h>

// The multistream ctl entry points are variadic; cgo cannot call them
// directly.
static int bridge_ms_encoder_ctl_set(OpusMSEncoder *st, int request, opus_int32 value) {
	return opus_multistream_encoder_ctl(st, request, value);
}
static int bridge_ms_encoder_ctl_get(OpusMSEncoder *st, int request, opus_int32 *value) {
	return opus_multistream_encoder_ctl(st, request, value);
}
static int bridge_ms_encoder_ctl_get_uint(OpusMSEncoder *st, int request, opus_uint32 *value) {
	return opus_multistream_encoder_ctl(st, request, value);
}
static int bridge_ms_encoder_ctl_void(OpusMSEncoder *st, int request) {
	return opus_multistream_encoder_ctl(st, request);
}
static int bridge_ms_decoder_ctl_set(OpusMSDecoder *st, int request, opus_int32 value) {
	return opus_multistream_decoder_ctl(st, request, value);
}
static int bridge_ms_decoder_ctl_get(OpusMSDecoder *st, int request, opus_int32 *value) {
	return opus_multistream_decoder_ctl(st, request, value);
}
static int bridge_ms_decoder_ctl_get_uint(OpusMSDecoder *st, int request, opus_uint32 *value) {
	return opus_multistream_decoder_ctl(st, request, value);
}
static int bridge_ms_decoder_ctl_void(OpusMSDecoder *st, int request) {
	return opus_multistream_decoder_ctl(st, request);
}
*/
import "C"

import "runtime"

// validMultistreamParams validates the stream layout shared by the
// multistream constructors. The mapping table length defines the channel
// count.
func validMultistreamParams(sampleRate, streams, coupledStreams int, mapping []byte) error {
	if !validSampleRate(sampleRate) {
		return ErrInvalidSampleRate
	}
	if streams < 1 || streams > 255 {
		return ErrInvalidStreams
	}
	if coupledStreams < 0 || coupledStreams > streams {
		return ErrInvalidCoupledStreams
	}
	if len(mapping) < 1 || len(mapping) > 255 {
		return ErrInvalidMapping
	}
	return nil
}

// MultistreamEncoder encodes multi-channel PCM audio into Opus multistream
// packets. It owns one opaque native state and is NOT safe for concurrent
// use.
type MultistreamEncoder struct {
	st         *C.OpusMSEncoder
	sampleRate int
	channels   int
	streams    int
	coupled    int
}

// NewMultistreamEncoder creates a multistream encoder.
//
// The mapping table defines the channel count and routes each input channel
// to a stream:
//   - values 0 to 2*coupledStreams-1 address coupled streams
//     (even = left, odd = right of the stereo pair)
//   - values up to streams+coupledStreams-1 address uncoupled (mono) streams
//   - value 255 marks a silent channel
//
// Example for 5.1 surround: streams=4, coupledStreams=2,
// mapping=[0, 4, 1, 2, 3, 5].
func NewMultistreamEncoder(sampleRate, streams, coupledStreams int, mapping []byte, application Application) (*MultistreamEncoder, error) {
	if err := validMultistreamParams(sampleRate, streams, coupledStreams, mapping); err != nil {
		return nil, err
	}

	var errno C.int
	st := C.opus_multistream_encoder_create(
		C.opus_int32(sampleRate),
		C.int(len(mapping)),
		C.int(streams),
		C.int(coupledStreams),
		(*C.uchar)(&mapping[0]),
		C.int(application),
		&errno)
	if errno != C.OPUS_OK || st == nil {
		return nil, newError("opus_multistream_encoder_create", int(errno))
	}

	e := &MultistreamEncoder{
		st:         st,
		sampleRate: sampleRate,
		channels:   len(mapping),
		streams:    streams,
		coupled:    coupledStreams,
	}
	runtime.SetFinalizer(e, (*MultistreamEncoder).Close)
	return e, nil
}

// Close releases the native encoder state. The encoder must not be used
// afterwards. Close is idempotent.
func (e *MultistreamEncoder) Close() error {
	if e.st != nil {
		C.opus_multistream_encoder_destroy(e.st)
		e.st = nil
		runtime.SetFinalizer(e, nil)
	}
	return nil
}

// Encode encodes int16 PCM samples into an Opus multistream packet.
//
// pcm: Input samples (interleaved). Its length divided by the channel count
// is the frame size and must correspond to a valid Opus frame duration.
// data: Output buffer for the encoded packet.
//
// Returns the number of bytes written to data, or an error.
func (e *MultistreamEncoder) Encode(pcm []int16, data []byte) (int, error) {
	if e.st == nil {
		return 0, errClosed("opus_multistream_encode")
	}
	if len(pcm) == 0 || len(pcm)%e.channels != 0 {
		return 0, ErrInvalidFrameSize
	}
	if len(data) == 0 {
		return 0, ErrBufferTooSmall
	}

	n := C.opus_multistream_encode(e.st,
		(*C.opus_int16)(&pcm[0]),
		C.int(len(pcm)/e.channels),
		(*C.uchar)(&data[0]),
		C.opus_int32(len(data)))
	runtime.KeepAlive(e)
	if n < 0 {
		return 0, newError("opus_multistream_encode", int(n))
	}
	return int(n), nil
}

// EncodeFloat32 encodes float32 PCM samples into an Opus multistream packet.
// See Encode for buffer semantics.
func (e *MultistreamEncoder) EncodeFloat32(pcm []float32, data []byte) (int, error) {
	if e.st == nil {
		return 0, errClosed("opus_multistream_encode_float")
	}
	if len(pcm) == 0 || len(pcm)%e.channels != 0 {
		return 0, ErrInvalidFrameSize
	}
	if len(data) == 0 {
		return 0, ErrBufferTooSmall
	}

	n := C.opus_multistream_encode_float(e.st,
		(*C.float)(&pcm[0]),
		C.int(len(pcm)/e.channels),
		(*C.uchar)(&data[0]),
		C.opus_int32(len(data)))
	runtime.KeepAlive(e)
	if n < 0 {
		return 0, newError("opus_multistream_encode_float", int(n))
	}
	return int(n), nil
}

// EncodeSlice encodes int16 PCM samples and returns a new byte slice.
func (e *MultistreamEncoder) EncodeSlice(pcm []int16) ([]byte, error) {
	data := make([]byte, maxPacketBytes*e.streams)
	n, err := e.Encode(pcm, data)
	if err != nil {
		return nil, err
	}
	return data[:n], nil
}

// EncodeFloat32Slice encodes float32 PCM samples and returns a new byte slice.
func (e *MultistreamEncoder) EncodeFloat32Slice(pcm []float32) ([]byte, error) {
	data := make([]byte, maxPacketBytes*e.streams)
	n, err := e.EncodeFloat32(pcm, data)
	if err != nil {
		return nil, err
	}
	return data[:n], nil
}

// Channels returns the number of audio channels.
func (e *MultistreamEncoder) Channels() int { return e.channels }

// SampleRate returns the sample rate in Hz.
func (e *MultistreamEncoder) SampleRate() int { return e.sampleRate }

// Streams returns the total number of elementary streams.
func (e *MultistreamEncoder) Streams() int { return e.streams }

// CoupledStreams returns the number of coupled (stereo) streams.
func (e *MultistreamEncoder) CoupledStreams() int { return e.coupled }

func (e *MultistreamEncoder) ctlSet(name string, request C.int, value int32) error {
	if e.st == nil {
		return errClosed(name)
	}
	ret := C.bridge_ms_encoder_ctl_set(e.st, request, C.opus_int32(value))
	runtime.KeepAlive(e)
	if ret < 0 {
		return newError(name, int(ret))
	}
	return nil
}

func (e *MultistreamEncoder) ctlGet(name string, request C.int) (int32, error) {
	if e.st == nil {
		return 0, errClosed(name)
	}
	var value C.opus_int32
	ret := C.bridge_ms_encoder_ctl_get(e.st, request, &value)
	runtime.KeepAlive(e)
	if ret < 0 {
		return 0, newError(name, int(ret))
	}
	return int32(value), nil
}

// Reset resets the encoder to a freshly initialized state.
func (e *MultistreamEncoder) Reset() error {
	if e.st == nil {
		return errClosed("opus_multistream_encoder_ctl(OPUS_RESET_STATE)")
	}
	ret := C.bridge_ms_encoder_ctl_void(e.st, C.OPUS_RESET_STATE)
	runtime.KeepAlive(e)
	if ret < 0 {
		return newError("opus_multistream_encoder_ctl(OPUS_RESET_STATE)", int(ret))
	}
	return nil
}

// FinalRange returns the entropy coder states of all streams XOR'd together.
func (e *MultistreamEncoder) FinalRange() (uint32, error) {
	if e.st == nil {
		return 0, errClosed("opus_multistream_encoder_ctl(OPUS_GET_FINAL_RANGE)")
	}
	var value C.opus_uint32
	ret := C.bridge_ms_encoder_ctl_get_uint(e.st, C.OPUS_GET_FINAL_RANGE_REQUEST, &value)
	runtime.KeepAlive(e)
	if ret < 0 {
		return 0, newError("opus_multistream_encoder_ctl(OPUS_GET_FINAL_RANGE)", int(ret))
	}
	return uint32(value), nil
}

// SetBitrate sets the total target bitrate in bits per second, distributed
// across the streams. BitrateAuto and BitrateMax are also accepted.
func (e *MultistreamEncoder) SetBitrate(bitrate int) error {
	return e.ctlSet("opus_multistream_encoder_ctl(OPUS_SET_BITRATE)", C.OPUS_SET_BITRATE_REQUEST, int32(bitrate))
}

// Bitrate returns the current total target bitrate in bits per second.
func (e *MultistreamEncoder) Bitrate() (int, error) {
	v, err := e.ctlGet("opus_multistream_encoder_ctl(OPUS_GET_BITRATE)", C.OPUS_GET_BITRATE_REQUEST)
	return int(v), err
}

// SetComplexity sets the computational complexity, 0-10, for all streams.
func (e *MultistreamEncoder) SetComplexity(complexity int) error {
	return e.ctlSet("opus_multistream_encoder_ctl(OPUS_SET_COMPLEXITY)", C.OPUS_SET_COMPLEXITY_REQUEST, int32(complexity))
}

// Complexity returns the current complexity setting.
func (e *MultistreamEncoder) Complexity() (int, error) {
	v, err := e.ctlGet("opus_multistream_encoder_ctl(OPUS_GET_COMPLEXITY)", C.OPUS_GET_COMPLEXITY_REQUEST)
	return int(v), err
}

// SetVBR enables or disables variable bitrate on all streams.
func (e *MultistreamEncoder) SetVBR(enabled bool) error {
	return e.ctlSet("opus_multistream_encoder_ctl(OPUS_SET_VBR)", C.OPUS_SET_VBR_REQUEST, boolToInt32(enabled))
}

// VBR reports whether variable bitrate is enabled.
func (e *MultistreamEncoder) VBR() (bool, error) {
	v, err := e.ctlGet("opus_multistream_encoder_ctl(OPUS_GET_VBR)", C.OPUS_GET_VBR_REQUEST)
	return v != 0, err
}

// SetFEC enables or disables in-band Forward Error Correction on all streams.
func (e *MultistreamEncoder) SetFEC(enabled bool) error {
	return e.ctlSet("opus_multistream_encoder_ctl(OPUS_SET_INBAND_FEC)", C.OPUS_SET_INBAND_FEC_REQUEST, boolToInt32(enabled))
}

// FECEnabled reports whether in-band FEC is enabled.
func (e *MultistreamEncoder) FECEnabled() (bool, error) {
	v, err := e.ctlGet("opus_multistream_encoder_ctl(OPUS_GET_INBAND_FEC)", C.OPUS_GET_INBAND_FEC_REQUEST)
	return v != 0, err
}

// SetPacketLoss sets the expected packet loss percentage, 0-100.
func (e *MultistreamEncoder) SetPacketLoss(lossPercent int) error {
	return e.ctlSet("opus_multistream_encoder_ctl(OPUS_SET_PACKET_LOSS_PERC)", C.OPUS_SET_PACKET_LOSS_PERC_REQUEST, int32(lossPercent))
}

// PacketLoss returns the expected packet loss percentage.
func (e *MultistreamEncoder) PacketLoss() (int, error) {
	v, err := e.ctlGet("opus_multistream_encoder_ctl(OPUS_GET_PACKET_LOSS_PERC)", C.OPUS_GET_PACKET_LOSS_PERC_REQUEST)
	return int(v), err
}

// SetDTX enables or disables Discontinuous Transmission on all streams.
func (e *MultistreamEncoder) SetDTX(enabled bool) error {
	return e.ctlSet("opus_multistream_encoder_ctl(OPUS_SET_DTX)", C.OPUS_SET_DTX_REQUEST, boolToInt32(enabled))
}

// DTXEnabled reports whether DTX is enabled.
func (e *MultistreamEncoder) DTXEnabled() (bool, error) {
	v, err := e.ctlGet("opus_multistream_encoder_ctl(OPUS_GET_DTX)", C.OPUS_GET_DTX_REQUEST)
	return v != 0, err
}

// SetSignal configures the type of signal being encoded on all streams.
func (e *MultistreamEncoder) SetSignal(signal Signal) error {
	return e.ctlSet("opus_multistream_encoder_ctl(OPUS_SET_SIGNAL)", C.OPUS_SET_SIGNAL_REQUEST, int32(signal))
}

// Signal returns the configured signal type.
func (e *MultistreamEncoder) Signal() (Signal, error) {
	v, err := e.ctlGet("opus_multistream_encoder_ctl(OPUS_GET_SIGNAL)", C.OPUS_GET_SIGNAL_REQUEST)
	return Signal(v), err
}

// SetMaxBandwidth configures the widest bandpass the streams may select.
func (e *MultistreamEncoder) SetMaxBandwidth(bw Bandwidth) error {
	return e.ctlSet("opus_multistream_encoder_ctl(OPUS_SET_MAX_BANDWIDTH)", C.OPUS_SET_MAX_BANDWIDTH_REQUEST, int32(bw))
}

// MaxBandwidth returns the configured maximum allowed bandpass.
func (e *MultistreamEncoder) MaxBandwidth() (Bandwidth, error) {
	v, err := e.ctlGet("opus_multistream_encoder_ctl(OPUS_GET_MAX_BANDWIDTH)", C.OPUS_GET_MAX_BANDWIDTH_REQUEST)
	return Bandwidth(v), err
}

// Bandwidth returns the configured bandpass.
func (e *MultistreamEncoder) Bandwidth() (Bandwidth, error) {
	v, err := e.ctlGet("opus_multistream_encoder_ctl(OPUS_GET_BANDWIDTH)", C.OPUS_GET_BANDWIDTH_REQUEST)
	return Bandwidth(v), err
}

// InDTX reports whether the last encoded frame was suppressed by DTX.
func (e *MultistreamEncoder) InDTX() (bool, error) {
	v, err := e.ctlGet("opus_multistream_encoder_ctl(OPUS_GET_IN_DTX)", C.OPUS_GET_IN_DTX_REQUEST)
	return v != 0, err
}

// SetPhaseInversionDisabled disables the use of phase inversion for
// intensity stereo on all streams.
func (e *MultistreamEncoder) SetPhaseInversionDisabled(disabled bool) error {
	return e.ctlSet("opus_multistream_encoder_ctl(OPUS_SET_PHASE_INVERSION_DISABLED)", C.OPUS_SET_PHASE_INVERSION_DISABLED_REQUEST, boolToInt32(disabled))
}

// PhaseInversionDisabled reports whether phase inversion is disabled.
func (e *MultistreamEncoder) PhaseInversionDisabled() (bool, error) {
	v, err := e.ctlGet("opus_multistream_encoder_ctl(OPUS_GET_PHASE_INVERSION_DISABLED)", C.OPUS_GET_PHASE_INVERSION_DISABLED_REQUEST)
	return v != 0, err
}

// SetLSBDepth configures the depth of the signal being encoded, 8-24 bits.
func (e *MultistreamEncoder) SetLSBDepth(depth int) error {
	return e.ctlSet("opus_multistream_encoder_ctl(OPUS_SET_LSB_DEPTH)", C.OPUS_SET_LSB_DEPTH_REQUEST, int32(depth))
}

// LSBDepth returns the configured signal depth.
func (e *MultistreamEncoder) LSBDepth() (int, error) {
	v, err := e.ctlGet("opus_multistream_encoder_ctl(OPUS_GET_LSB_DEPTH)", C.OPUS_GET_LSB_DEPTH_REQUEST)
	return int(v), err
}

// MultistreamDecoder decodes Opus multistream packets into multi-channel
// PCM audio. It owns one opaque native state and is NOT safe for concurrent
// use.
type MultistreamDecoder struct {
	st         *C.OpusMSDecoder
	sampleRate int
	channels   int
	streams    int
	coupled    int
}

// NewMultistreamDecoder creates a multistream decoder. The mapping table has
// the same layout as in NewMultistreamEncoder and defines the channel count.
func NewMultistreamDecoder(sampleRate, streams, coupledStreams int, mapping []byte) (*MultistreamDecoder, error) {
	if err := validMultistreamParams(sampleRate, streams, coupledStreams, mapping); err != nil {
		return nil, err
	}

	var errno C.int
	st := C.opus_multistream_decoder_create(
		C.opus_int32(sampleRate),
		C.int(len(mapping)),
		C.int(streams),
		C.int(coupledStreams),
		(*C.uchar)(&mapping[0]),
		&errno)
	if errno != C.OPUS_OK || st == nil {
		return nil, newError("opus_multistream_decoder_create", int(errno))
	}

	d := &MultistreamDecoder{
		st:         st,
		sampleRate: sampleRate,
		channels:   len(mapping),
		streams:    streams,
		coupled:    coupledStreams,
	}
	runtime.SetFinalizer(d, (*MultistreamDecoder).Close)
	return d, nil
}

// Close releases the native decoder state. The decoder must not be used
// afterwards. Close is idempotent.
func (d *MultistreamDecoder) Close() error {
	if d.st != nil {
		C.opus_multistream_decoder_destroy(d.st)
		d.st = nil
		runtime.SetFinalizer(d, nil)
	}
	return nil
}

// Decode decodes an Opus multistream packet into int16 PCM samples.
//
// data: Packet data, or nil/empty for Packet Loss Concealment.
// pcm: Output buffer for decoded samples (interleaved). Its length divided
// by the channel count caps the frame size that can be decoded.
// fec: Decode the in-band FEC data concealing the previous lost packet.
//
// Returns the number of samples decoded per channel, or an error.
func (d *MultistreamDecoder) Decode(data []byte, pcm []int16, fec bool) (int, error) {
	if d.st == nil {
		return 0, errClosed("opus_multistream_decode")
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

	n := C.opus_multistream_decode(d.st,
		input,
		C.opus_int32(len(data)),
		(*C.opus_int16)(&pcm[0]),
		C.int(len(pcm)/d.channels),
		boolToCInt(fec))
	runtime.KeepAlive(d)
	if n < 0 {
		return 0, newError("opus_multistream_decode", int(n))
	}
	return int(n), nil
}

// DecodeFloat32 decodes an Opus multistream packet into float32 PCM samples.
// See Decode for the data, buffer, and fec semantics.
func (d *MultistreamDecoder) DecodeFloat32(data []byte, pcm []float32, fec bool) (int, error) {
	if d.st == nil {
		return 0, errClosed("opus_multistream_decode_float")
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

	n := C.opus_multistream_decode_float(d.st,
		input,
		C.opus_int32(len(data)),
		(*C.float)(&pcm[0]),
		C.int(len(pcm)/d.channels),
		boolToCInt(fec))
	runtime.KeepAlive(d)
	if n < 0 {
		return 0, newError("opus_multistream_decode_float", int(n))
	}
	return int(n), nil
}

// Channels returns the number of audio channels.
func (d *MultistreamDecoder) Channels() int { return d.channels }

// SampleRate returns the sample rate in Hz.
func (d *MultistreamDecoder) SampleRate() int { return d.sampleRate }

// Streams returns the total number of elementary streams.
func (d *MultistreamDecoder) Streams() int { return d.streams }

// CoupledStreams returns the number of coupled (stereo) streams.
func (d *MultistreamDecoder) CoupledStreams() int { return d.coupled }

func (d *MultistreamDecoder) ctlSet(name string, request C.int, value int32) error {
	if d.st == nil {
		return errClosed(name)
	}
	ret := C.bridge_ms_decoder_ctl_set(d.st, request, C.opus_int32(value))
	runtime.KeepAlive(d)
	if ret < 0 {
		return newError(name, int(ret))
	}
	return nil
}

func (d *MultistreamDecoder) ctlGet(name string, request C.int) (int32, error) {
	if d.st == nil {
		return 0, errClosed(name)
	}
	var value C.opus_int32
	ret := C.bridge_ms_decoder_ctl_get(d.st, request, &value)
	runtime.KeepAlive(d)
	if ret < 0 {
		return 0, newError(name, int(ret))
	}
	return int32(value), nil
}

// Reset resets the decoder to a freshly initialized state.
func (d *MultistreamDecoder) Reset() error {
	if d.st == nil {
		return errClosed("opus_multistream_decoder_ctl(OPUS_RESET_STATE)")
	}
	ret := C.bridge_ms_decoder_ctl_void(d.st, C.OPUS_RESET_STATE)
	runtime.KeepAlive(d)
	if ret < 0 {
		return newError("opus_multistream_decoder_ctl(OPUS_RESET_STATE)", int(ret))
	}
	return nil
}

// FinalRange returns the entropy coder states of all streams XOR'd together.
func (d *MultistreamDecoder) FinalRange() (uint32, error) {
	if d.st == nil {
		return 0, errClosed("opus_multistream_decoder_ctl(OPUS_GET_FINAL_RANGE)")
	}
	var value C.opus_uint32
	ret := C.bridge_ms_decoder_ctl_get_uint(d.st, C.OPUS_GET_FINAL_RANGE_REQUEST, &value)
	runtime.KeepAlive(d)
	if ret < 0 {
		return 0, newError("opus_multistream_decoder_ctl(OPUS_GET_FINAL_RANGE)", int(ret))
	}
	return uint32(value), nil
}

// SetGain configures decoder gain adjustment in Q8 dB units.
func (d *MultistreamDecoder) SetGain(gainQ8 int) error {
	return d.ctlSet("opus_multistream_decoder_ctl(OPUS_SET_GAIN)", C.OPUS_SET_GAIN_REQUEST, int32(gainQ8))
}

// Gain returns the configured gain adjustment in Q8 dB units.
func (d *MultistreamDecoder) Gain() (int, error) {
	v, err := d.ctlGet("opus_multistream_decoder_ctl(OPUS_GET_GAIN)", C.OPUS_GET_GAIN_REQUEST)
	return int(v), err
}

// LastPacketDuration returns the duration, in samples per channel, of the
// last packet successfully decoded or concealed.
func (d *MultistreamDecoder) LastPacketDuration() (int, error) {
	v, err := d.ctlGet("opus_multistream_decoder_ctl(OPUS_GET_LAST_PACKET_DURATION)", C.OPUS_GET_LAST_PACKET_DURATION_REQUEST)
	return int(v), err
}

// Bandwidth returns the bandpass of the last decoded packet.
func (d *MultistreamDecoder) Bandwidth() (Bandwidth, error) {
	v, err := d.ctlGet("opus_multistream_decoder_ctl(OPUS_GET_BANDWIDTH)", C.OPUS_GET_BANDWIDTH_REQUEST)
	return Bandwidth(v), err
}

// InDTX reports whether the last packet decoded was a DTX comfort-noise
// update or a concealed DTX silence frame.
func (d *MultistreamDecoder) InDTX() (bool, error) {
	v, err := d.ctlGet("opus_multistream_decoder_ctl(OPUS_GET_IN_DTX)", C.OPUS_GET_IN_DTX_REQUEST)
	return v != 0, err
}

// SetPhaseInversionDisabled disables the use of phase inversion for
// intensity stereo on all streams.
func (d *MultistreamDecoder) SetPhaseInversionDisabled(disabled bool) error {
	return d.ctlSet("opus_multistream_decoder_ctl(OPUS_SET_PHASE_INVERSION_DISABLED)", C.OPUS_SET_PHASE_INVERSION_DISABLED_REQUEST, boolToInt32(disabled))
}

// PhaseInversionDisabled reports whether phase inversion is disabled.
func (d *MultistreamDecoder) PhaseInversionDisabled() (bool, error) {
	v, err := d.ctlGet("opus_multistream_decoder_ctl(OPUS_GET_PHASE_INVERSION_DISABLED)", C.OPUS_GET_PHASE_INVERSION_DISABLED_REQUEST)
	return v != 0, err
}
