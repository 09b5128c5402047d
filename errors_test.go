package opus

import (
	"errors"
	"testing"
)

func TestErrorCodeString(t *testing.T) {
	codes := []ErrorCode{
		OK, BadArg, BufferTooSmall, InternalError,
		InvalidPacket, Unimplemented, InvalidState, AllocFail,
	}
	for _, code := range codes {
		if s := code.String(); s == "" {
			t.Errorf("ErrorCode(%d).String() is empty", code)
		}
	}
	if got := BadArg.String(); got != "invalid argument" {
		t.Errorf("BadArg.String() = %q, want %q", got, "invalid argument")
	}
}

func TestErrorFormat(t *testing.T) {
	err := &Error{Function: "opus_decode", Code: InvalidPacket}
	want := "opus: opus_decode: corrupted stream"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorAs(t *testing.T) {
	dec, err := NewDecoder(48000, 1)
	if err != nil {
		t.Fatalf("NewDecoder error: %v", err)
	}
	defer dec.Close()

	_, err = dec.Decode([]byte{0xff, 0xff}, make([]int16, 5760), false)
	if err == nil {
		t.Fatal("Decode of corrupt packet succeeded")
	}

	var opusErr *Error
	if !errors.As(err, &opusErr) {
		t.Fatalf("error %v is not *Error", err)
	}
	if opusErr.Code != InvalidPacket {
		t.Errorf("Code = %v, want InvalidPacket", opusErr.Code)
	}
	if opusErr.Function == "" {
		t.Error("Function is empty")
	}
}

func TestSentinelErrors(t *testing.T) {
	_, err := NewEncoder(44100, 1, ApplicationVoIP)
	if !errors.Is(err, ErrInvalidSampleRate) {
		t.Errorf("error = %v, want ErrInvalidSampleRate", err)
	}

	// Sentinels carry the package prefix so they read well unwrapped.
	if got := ErrInvalidSampleRate.Error(); got != "opus: invalid sample rate (must be 8000, 12000, 16000, 24000, or 48000)" {
		t.Errorf("ErrInvalidSampleRate = %q", got)
	}
}
