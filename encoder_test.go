package opus

import (
	"bytes"
	"errors"
	"testing"
)

func TestNewEncoder_InvalidArgs(t *testing.T) {
	tests := []struct {
		name       string
		sampleRate int
		channels   int
		wantErr    error
	}{
		{"bad rate 44100", 44100, 1, ErrInvalidSampleRate},
		{"bad rate zero", 0, 1, ErrInvalidSampleRate},
		{"bad rate negative", -48000, 2, ErrInvalidSampleRate},
		{"zero channels", 48000, 0, ErrInvalidChannels},
		{"three channels", 48000, 3, ErrInvalidChannels},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := NewEncoder(tt.sampleRate, tt.channels, ApplicationVoIP)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewEncoder(%d, %d) error = %v, want %v",
					tt.sampleRate, tt.channels, err, tt.wantErr)
			}
			if enc != nil {
				enc.Close()
			}
		})
	}
}

// TestEncodeSilence_Mono matches the packets libopus produces for all-zero
// input in audio mode.
func TestEncodeSilence_Mono(t *testing.T) {
	enc, err := NewEncoder(48000, 1, ApplicationAudio)
	if err != nil {
		t.Fatalf("NewEncoder error: %v", err)
	}
	defer enc.Close()

	pcm := make([]int16, 960)
	packet, err := enc.EncodeSlice(pcm)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	want := []byte{248, 255, 254}
	if !bytes.Equal(packet, want) {
		t.Errorf("silence packet = %v, want %v", packet, want)
	}
}

func TestEncodeSilence_Stereo(t *testing.T) {
	enc, err := NewEncoder(48000, 2, ApplicationAudio)
	if err != nil {
		t.Fatalf("NewEncoder error: %v", err)
	}
	defer enc.Close()

	pcm := make([]int16, 960*2)
	packet, err := enc.EncodeSlice(pcm)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	want := []byte{252, 255, 254}
	if !bytes.Equal(packet, want) {
		t.Errorf("silence packet = %v, want %v", packet, want)
	}
}

func TestEncode_InvalidInput(t *testing.T) {
	enc, err := NewEncoder(48000, 2, ApplicationAudio)
	if err != nil {
		t.Fatalf("NewEncoder error: %v", err)
	}
	defer enc.Close()

	buf := make([]byte, 4000)

	if _, err := enc.Encode(nil, buf); !errors.Is(err, ErrInvalidFrameSize) {
		t.Errorf("Encode(nil) error = %v, want %v", err, ErrInvalidFrameSize)
	}
	// Odd sample count cannot be a whole number of stereo frames.
	if _, err := enc.Encode(make([]int16, 961), buf); !errors.Is(err, ErrInvalidFrameSize) {
		t.Errorf("Encode(odd) error = %v, want %v", err, ErrInvalidFrameSize)
	}
	if _, err := enc.Encode(make([]int16, 960*2), nil); !errors.Is(err, ErrBufferTooSmall) {
		t.Errorf("Encode(nil buffer) error = %v, want %v", err, ErrBufferTooSmall)
	}
	if _, err := enc.EncodeFloat32(nil, buf); !errors.Is(err, ErrInvalidFrameSize) {
		t.Errorf("EncodeFloat32(nil) error = %v, want %v", err, ErrInvalidFrameSize)
	}
}

// TestEncode_BadFrameDuration passes a sample count libopus rejects.
func TestEncode_BadFrameDuration(t *testing.T) {
	enc, err := NewEncoder(48000, 1, ApplicationAudio)
	if err != nil {
		t.Fatalf("NewEncoder error: %v", err)
	}
	defer enc.Close()

	// 7ms is not a valid Opus frame duration.
	_, err = enc.EncodeSlice(make([]int16, 336))
	var opusErr *Error
	if !errors.As(err, &opusErr) {
		t.Fatalf("Encode error = %v, want *Error", err)
	}
	if opusErr.Code != BadArg {
		t.Errorf("Encode error code = %v, want BadArg", opusErr.Code)
	}
}

func TestEncoderCtl_Bitrate(t *testing.T) {
	enc, err := NewEncoder(48000, 2, ApplicationAudio)
	if err != nil {
		t.Fatalf("NewEncoder error: %v", err)
	}
	defer enc.Close()

	if err := enc.SetBitrate(96000); err != nil {
		t.Fatalf("SetBitrate error: %v", err)
	}
	br, err := enc.Bitrate()
	if err != nil {
		t.Fatalf("Bitrate error: %v", err)
	}
	if br != 96000 {
		t.Errorf("Bitrate = %d, want 96000", br)
	}

	if err := enc.SetBitrate(BitrateMax); err != nil {
		t.Fatalf("SetBitrate(BitrateMax) error: %v", err)
	}
	if err := enc.SetBitrate(BitrateAuto); err != nil {
		t.Fatalf("SetBitrate(BitrateAuto) error: %v", err)
	}

	if err := enc.SetBitrate(-5); err == nil {
		t.Error("SetBitrate(-5) succeeded, want error")
	}
}

func TestEncoderCtl_Complexity(t *testing.T) {
	enc, err := NewEncoder(48000, 1, ApplicationVoIP)
	if err != nil {
		t.Fatalf("NewEncoder error: %v", err)
	}
	defer enc.Close()

	for _, c := range []int{0, 5, 10} {
		if err := enc.SetComplexity(c); err != nil {
			t.Fatalf("SetComplexity(%d) error: %v", c, err)
		}
		got, err := enc.Complexity()
		if err != nil {
			t.Fatalf("Complexity error: %v", err)
		}
		if got != c {
			t.Errorf("Complexity = %d, want %d", got, c)
		}
	}

	if err := enc.SetComplexity(11); err == nil {
		t.Error("SetComplexity(11) succeeded, want error")
	}
}

func TestEncoderCtl_Flags(t *testing.T) {
	enc, err := NewEncoder(48000, 1, ApplicationVoIP)
	if err != nil {
		t.Fatalf("NewEncoder error: %v", err)
	}
	defer enc.Close()

	for _, on := range []bool{true, false} {
		if err := enc.SetVBR(on); err != nil {
			t.Fatalf("SetVBR(%v) error: %v", on, err)
		}
		if got, err := enc.VBR(); err != nil || got != on {
			t.Errorf("VBR = %v, %v; want %v, nil", got, err, on)
		}

		if err := enc.SetVBRConstraint(on); err != nil {
			t.Fatalf("SetVBRConstraint(%v) error: %v", on, err)
		}
		if got, err := enc.VBRConstraint(); err != nil || got != on {
			t.Errorf("VBRConstraint = %v, %v; want %v, nil", got, err, on)
		}

		if err := enc.SetFEC(on); err != nil {
			t.Fatalf("SetFEC(%v) error: %v", on, err)
		}
		if got, err := enc.FECEnabled(); err != nil || got != on {
			t.Errorf("FECEnabled = %v, %v; want %v, nil", got, err, on)
		}

		if err := enc.SetDTX(on); err != nil {
			t.Fatalf("SetDTX(%v) error: %v", on, err)
		}
		if got, err := enc.DTXEnabled(); err != nil || got != on {
			t.Errorf("DTXEnabled = %v, %v; want %v, nil", got, err, on)
		}

		if err := enc.SetPredictionDisabled(on); err != nil {
			t.Fatalf("SetPredictionDisabled(%v) error: %v", on, err)
		}
		if got, err := enc.PredictionDisabled(); err != nil || got != on {
			t.Errorf("PredictionDisabled = %v, %v; want %v, nil", got, err, on)
		}

		if err := enc.SetPhaseInversionDisabled(on); err != nil {
			t.Fatalf("SetPhaseInversionDisabled(%v) error: %v", on, err)
		}
		if got, err := enc.PhaseInversionDisabled(); err != nil || got != on {
			t.Errorf("PhaseInversionDisabled = %v, %v; want %v, nil", got, err, on)
		}
	}
}

func TestEncoderCtl_SignalBandwidthApplication(t *testing.T) {
	enc, err := NewEncoder(48000, 1, ApplicationAudio)
	if err != nil {
		t.Fatalf("NewEncoder error: %v", err)
	}
	defer enc.Close()

	for _, sig := range []Signal{SignalVoice, SignalMusic, SignalAuto} {
		if err := enc.SetSignal(sig); err != nil {
			t.Fatalf("SetSignal(%v) error: %v", sig, err)
		}
		if got, err := enc.Signal(); err != nil || got != sig {
			t.Errorf("Signal = %v, %v; want %v, nil", got, err, sig)
		}
	}

	if err := enc.SetMaxBandwidth(BandwidthWideband); err != nil {
		t.Fatalf("SetMaxBandwidth error: %v", err)
	}
	if got, err := enc.MaxBandwidth(); err != nil || got != BandwidthWideband {
		t.Errorf("MaxBandwidth = %v, %v; want %v, nil", got, err, BandwidthWideband)
	}

	for _, app := range []Application{ApplicationVoIP, ApplicationLowDelay, ApplicationAudio} {
		if err := enc.SetApplication(app); err != nil {
			t.Fatalf("SetApplication(%v) error: %v", app, err)
		}
		if got, err := enc.Application(); err != nil || got != app {
			t.Errorf("Application = %v, %v; want %v, nil", got, err, app)
		}
	}
}

func TestEncoderCtl_Misc(t *testing.T) {
	enc, err := NewEncoder(48000, 2, ApplicationAudio)
	if err != nil {
		t.Fatalf("NewEncoder error: %v", err)
	}
	defer enc.Close()

	la, err := enc.Lookahead()
	if err != nil {
		t.Fatalf("Lookahead error: %v", err)
	}
	if la <= 0 {
		t.Errorf("Lookahead = %d, want > 0", la)
	}

	if err := enc.SetPacketLoss(25); err != nil {
		t.Fatalf("SetPacketLoss error: %v", err)
	}
	if got, err := enc.PacketLoss(); err != nil || got != 25 {
		t.Errorf("PacketLoss = %d, %v; want 25, nil", got, err)
	}

	if err := enc.SetLSBDepth(16); err != nil {
		t.Fatalf("SetLSBDepth error: %v", err)
	}
	if got, err := enc.LSBDepth(); err != nil || got != 16 {
		t.Errorf("LSBDepth = %d, %v; want 16, nil", got, err)
	}

	if err := enc.SetForceChannels(1); err != nil {
		t.Fatalf("SetForceChannels error: %v", err)
	}
	if got, err := enc.ForceChannels(); err != nil || got != 1 {
		t.Errorf("ForceChannels = %d, %v; want 1, nil", got, err)
	}
	if err := enc.SetForceChannels(ForceChannelsAuto); err != nil {
		t.Fatalf("SetForceChannels(auto) error: %v", err)
	}

	if err := enc.SetExpertFrameDuration(FrameSize40Ms); err != nil {
		t.Fatalf("SetExpertFrameDuration error: %v", err)
	}
	if got, err := enc.ExpertFrameDuration(); err != nil || got != FrameSize40Ms {
		t.Errorf("ExpertFrameDuration = %v, %v; want %v, nil", got, err, FrameSize40Ms)
	}

	inDTX, err := enc.InDTX()
	if err != nil {
		t.Fatalf("InDTX error: %v", err)
	}
	if inDTX {
		t.Error("InDTX = true before any encode")
	}
}

func TestEncoderReset(t *testing.T) {
	enc, err := NewEncoder(48000, 1, ApplicationAudio)
	if err != nil {
		t.Fatalf("NewEncoder error: %v", err)
	}
	defer enc.Close()

	pcm := generateSineWaveInt16(48000, 440, 960, 1)
	first, err := enc.EncodeSlice(pcm)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if _, err := enc.EncodeSlice(pcm); err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	if err := enc.Reset(); err != nil {
		t.Fatalf("Reset error: %v", err)
	}

	// A reset encoder reproduces its first packet for identical input.
	again, err := enc.EncodeSlice(pcm)
	if err != nil {
		t.Fatalf("Encode after reset error: %v", err)
	}
	if !bytes.Equal(first, again) {
		t.Error("packet after reset differs from first packet")
	}
}

func TestEncoderUseAfterClose(t *testing.T) {
	enc, err := NewEncoder(48000, 1, ApplicationVoIP)
	if err != nil {
		t.Fatalf("NewEncoder error: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}
	// Close is idempotent.
	if err := enc.Close(); err != nil {
		t.Fatalf("second Close error: %v", err)
	}

	_, err = enc.EncodeSlice(make([]int16, 960))
	var opusErr *Error
	if !errors.As(err, &opusErr) || opusErr.Code != InvalidState {
		t.Errorf("Encode after Close error = %v, want InvalidState", err)
	}
	if err := enc.SetBitrate(64000); err == nil {
		t.Error("SetBitrate after Close succeeded, want error")
	}
}
