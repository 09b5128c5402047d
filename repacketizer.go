// repacketizer.go wraps the native OpusRepacketizer handle, used to merge
// together or split apart multiple Opus packets.

package opus

/*
#cgo pkg-config: opus
#include <stdlib.h>
#include <opus.h>
*/
import "C"

import (
	"runtime"
	"unsafe"
)

// Repacketizer merges together or splits apart multiple Opus packets.
//
// All packets submitted between two Reset calls must share the same TOC
// configuration, and their combined duration must not exceed 120 ms; libopus
// rejects anything else with InvalidPacket.
//
// A Repacketizer owns one opaque native state and is NOT safe for
// concurrent use.
type Repacketizer struct {
	st *C.OpusRepacketizer
	// The native state keeps pointers into submitted packets until the
	// next Reset, so Cat copies each packet into C memory held here.
	bufs []unsafe.Pointer
}

// NewRepacketizer creates and initializes a repacketizer.
func NewRepacketizer() (*Repacketizer, error) {
	st := C.opus_repacketizer_create()
	if st == nil {
		return nil, newError("opus_repacketizer_create", int(AllocFail))
	}
	r := &Repacketizer{st: st}
	runtime.SetFinalizer(r, (*Repacketizer).Close)
	return r, nil
}

// Close releases the native state and all retained packet copies.
// The Repacketizer must not be used afterwards. Close is idempotent.
func (r *Repacketizer) Close() error {
	if r.st != nil {
		C.opus_repacketizer_destroy(r.st)
		r.st = nil
		runtime.SetFinalizer(r, nil)
	}
	r.freeBufs()
	return nil
}

func (r *Repacketizer) freeBufs() {
	for _, buf := range r.bufs {
		C.free(buf)
	}
	r.bufs = nil
}

// Reset discards all previously submitted packets, re-initializing the
// native state for a new output packet.
func (r *Repacketizer) Reset() error {
	if r.st == nil {
		return errClosed("opus_repacketizer_init")
	}
	C.opus_repacketizer_init(r.st)
	r.freeBufs()
	return nil
}

// Cat adds a packet to the current repacketizer state.
func (r *Repacketizer) Cat(packet []byte) error {
	if r.st == nil {
		return errClosed("opus_repacketizer_cat")
	}
	if len(packet) == 0 {
		return ErrEmptyPacket
	}

	cbuf := C.CBytes(packet)
	ret := C.opus_repacketizer_cat(r.st, (*C.uchar)(cbuf), C.opus_int32(len(packet)))
	if ret < 0 {
		C.free(cbuf)
		return newError("opus_repacketizer_cat", int(ret))
	}
	r.bufs = append(r.bufs, cbuf)
	return nil
}

// FrameCount returns the total number of frames contained in the packets
// submitted so far via Cat.
func (r *Repacketizer) FrameCount() int {
	if r.st == nil {
		return 0
	}
	return int(C.opus_repacketizer_get_nb_frames(r.st))
}

// Out constructs a new packet from all frames submitted so far via Cat.
// Returns the number of bytes written to buffer.
func (r *Repacketizer) Out(buffer []byte) (int, error) {
	if r.st == nil {
		return 0, errClosed("opus_repacketizer_out")
	}
	if len(buffer) == 0 {
		return 0, ErrBufferTooSmall
	}
	n := C.opus_repacketizer_out(r.st, (*C.uchar)(&buffer[0]), C.opus_int32(len(buffer)))
	runtime.KeepAlive(r)
	if n < 0 {
		return 0, newError("opus_repacketizer_out", int(n))
	}
	return int(n), nil
}

// OutRange constructs a new packet from frames begin (inclusive) to end
// (exclusive) of the data submitted so far via Cat. end must not exceed
// FrameCount. Returns the number of bytes written to buffer.
func (r *Repacketizer) OutRange(begin, end int, buffer []byte) (int, error) {
	if r.st == nil {
		return 0, errClosed("opus_repacketizer_out_range")
	}
	if len(buffer) == 0 {
		return 0, ErrBufferTooSmall
	}
	n := C.opus_repacketizer_out_range(r.st, C.int(begin), C.int(end),
		(*C.uchar)(&buffer[0]), C.opus_int32(len(buffer)))
	runtime.KeepAlive(r)
	if n < 0 {
		return 0, newError("opus_repacketizer_out_range", int(n))
	}
	return int(n), nil
}

// Combine is a shortcut that resets the state, submits every input packet,
// and assembles them into one output packet.
func (r *Repacketizer) Combine(packets [][]byte, buffer []byte) (int, error) {
	if err := r.Reset(); err != nil {
		return 0, err
	}
	for _, packet := range packets {
		if err := r.Cat(packet); err != nil {
			return 0, err
		}
	}
	return r.Out(buffer)
}
