// opus.go holds the shared control-value types and library introspection.

package opus

/*
#cgo pkg-config: opus
#include <opus.h>
*/
import "C"

// Version returns the libopus version string.
//
// Applications may look for the substring "-fixed" in the version string to
// determine whether they are running against a fixed-point or floating-point
// build.
func Version() string {
	return C.GoString(C.opus_get_version_string())
}

// Bandwidth selects the audio bandpass used by the codec.
type Bandwidth int

const (
	// BandwidthAuto lets the encoder choose the bandpass.
	BandwidthAuto Bandwidth = C.OPUS_AUTO
	// BandwidthNarrowband is a 4 kHz bandpass.
	BandwidthNarrowband Bandwidth = C.OPUS_BANDWIDTH_NARROWBAND
	// BandwidthMediumband is a 6 kHz bandpass.
	BandwidthMediumband Bandwidth = C.OPUS_BANDWIDTH_MEDIUMBAND
	// BandwidthWideband is an 8 kHz bandpass.
	BandwidthWideband Bandwidth = C.OPUS_BANDWIDTH_WIDEBAND
	// BandwidthSuperwideband is a 12 kHz bandpass.
	BandwidthSuperwideband Bandwidth = C.OPUS_BANDWIDTH_SUPERWIDEBAND
	// BandwidthFullband is a 20 kHz bandpass.
	BandwidthFullband Bandwidth = C.OPUS_BANDWIDTH_FULLBAND
)

// Signal hints the encoder's mode selection.
type Signal int

const (
	// SignalAuto lets the encoder detect the signal type.
	SignalAuto Signal = C.OPUS_AUTO
	// SignalVoice biases thresholds towards choosing LPC or Hybrid modes.
	SignalVoice Signal = C.OPUS_SIGNAL_VOICE
	// SignalMusic biases thresholds towards choosing MDCT modes.
	SignalMusic Signal = C.OPUS_SIGNAL_MUSIC
)

// Application hints the encoder for optimization.
type Application int

const (
	// ApplicationVoIP is best for most VoIP/videoconference applications
	// where listening quality and intelligibility matter most.
	ApplicationVoIP Application = C.OPUS_APPLICATION_VOIP
	// ApplicationAudio is best for broadcast/high-fidelity applications
	// where the decoded audio should be as close as possible to the input.
	ApplicationAudio Application = C.OPUS_APPLICATION_AUDIO
	// ApplicationLowDelay should only be used when lowest-achievable
	// latency is what matters most.
	ApplicationLowDelay Application = C.OPUS_APPLICATION_RESTRICTED_LOWDELAY
)

// Special bitrate values accepted by (*Encoder).SetBitrate.
const (
	// BitrateAuto lets the encoder pick a default bitrate.
	BitrateAuto = C.OPUS_AUTO
	// BitrateMax makes the encoder use as much of the packet as allowed.
	BitrateMax = C.OPUS_BITRATE_MAX
)

// FrameSize controls the encoder's use of variable duration frames.
type FrameSize int

const (
	// FrameSizeArg selects the frame size from the Encode argument (default).
	FrameSizeArg FrameSize = C.OPUS_FRAMESIZE_ARG
	// FrameSize2_5Ms uses 2.5 ms frames.
	FrameSize2_5Ms FrameSize = C.OPUS_FRAMESIZE_2_5_MS
	// FrameSize5Ms uses 5 ms frames.
	FrameSize5Ms FrameSize = C.OPUS_FRAMESIZE_5_MS
	// FrameSize10Ms uses 10 ms frames.
	FrameSize10Ms FrameSize = C.OPUS_FRAMESIZE_10_MS
	// FrameSize20Ms uses 20 ms frames.
	FrameSize20Ms FrameSize = C.OPUS_FRAMESIZE_20_MS
	// FrameSize40Ms uses 40 ms frames.
	FrameSize40Ms FrameSize = C.OPUS_FRAMESIZE_40_MS
	// FrameSize60Ms uses 60 ms frames.
	FrameSize60Ms FrameSize = C.OPUS_FRAMESIZE_60_MS
	// FrameSize80Ms uses 80 ms frames.
	FrameSize80Ms FrameSize = C.OPUS_FRAMESIZE_80_MS
	// FrameSize100Ms uses 100 ms frames.
	FrameSize100Ms FrameSize = C.OPUS_FRAMESIZE_100_MS
	// FrameSize120Ms uses 120 ms frames.
	FrameSize120Ms FrameSize = C.OPUS_FRAMESIZE_120_MS
)
