// softclip.go wraps opus_pcm_soft_clip.

package opus

/*
#cgo pkg-config: opus
#include <opus.h>
*/
import "C"

// SoftClip applies the libopus soft-clipping algorithm to bring a float
// signal within the [-1, 1] range with minimal distortion. It carries
// per-channel filter state between calls, so one SoftClip should process
// one continuous stream.
type SoftClip struct {
	channels int
	memory   [2]C.float
}

// NewSoftClip initializes soft-clipping state for 1 (mono) or 2 (stereo)
// channels.
func NewSoftClip(channels int) (*SoftClip, error) {
	if channels < 1 || channels > 2 {
		return nil, ErrInvalidChannels
	}
	return &SoftClip{channels: channels}, nil
}

// Apply soft-clips the interleaved float signal in place. The length of pcm
// must be a whole number of interleaved samples.
func (s *SoftClip) Apply(pcm []float32) error {
	if len(pcm)%s.channels != 0 {
		return ErrInvalidFrameSize
	}
	if len(pcm) == 0 {
		return nil
	}
	C.opus_pcm_soft_clip(
		(*C.float)(&pcm[0]),
		C.int(len(pcm)/s.channels),
		C.int(s.channels),
		&s.memory[0])
	return nil
}
