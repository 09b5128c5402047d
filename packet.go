// packet.go wraps the stateless opus_packet_* analysis and padding helpers.

package opus

/*
#cgo pkg-config: opus
#include <stdlib.h>
#include <opus.h>
#include <opus_multistream.h>
*/
import "C"

import "unsafe"

// PacketBandwidth returns the bandpass of an Opus packet.
func PacketBandwidth(packet []byte) (Bandwidth, error) {
	if len(packet) == 0 {
		return 0, ErrEmptyPacket
	}
	bw := C.opus_packet_get_bandwidth((*C.uchar)(&packet[0]))
	if bw < 0 {
		return 0, newError("opus_packet_get_bandwidth", int(bw))
	}
	return Bandwidth(bw), nil
}

// PacketChannels returns the number of channels (1 or 2) of an Opus packet.
func PacketChannels(packet []byte) (int, error) {
	if len(packet) == 0 {
		return 0, ErrEmptyPacket
	}
	ch := C.opus_packet_get_nb_channels((*C.uchar)(&packet[0]))
	if ch < 0 {
		return 0, newError("opus_packet_get_nb_channels", int(ch))
	}
	return int(ch), nil
}

// PacketFrameCount returns the number of frames in an Opus packet.
func PacketFrameCount(packet []byte) (int, error) {
	if len(packet) == 0 {
		return 0, ErrEmptyPacket
	}
	n := C.opus_packet_get_nb_frames((*C.uchar)(&packet[0]), C.opus_int32(len(packet)))
	if n < 0 {
		return 0, newError("opus_packet_get_nb_frames", int(n))
	}
	return int(n), nil
}

// PacketSampleCount returns the number of samples per channel of an Opus
// packet at the given sample rate.
func PacketSampleCount(packet []byte, sampleRate int) (int, error) {
	if len(packet) == 0 {
		return 0, ErrEmptyPacket
	}
	n := C.opus_packet_get_nb_samples((*C.uchar)(&packet[0]), C.opus_int32(len(packet)), C.opus_int32(sampleRate))
	if n < 0 {
		return 0, newError("opus_packet_get_nb_samples", int(n))
	}
	return int(n), nil
}

// PacketSamplesPerFrame returns the number of samples per channel in a
// single frame of an Opus packet at the given sample rate.
func PacketSamplesPerFrame(packet []byte, sampleRate int) (int, error) {
	if len(packet) == 0 {
		return 0, ErrEmptyPacket
	}
	n := C.opus_packet_get_samples_per_frame((*C.uchar)(&packet[0]), C.opus_int32(sampleRate))
	if n < 0 {
		return 0, newError("opus_packet_get_samples_per_frame", int(n))
	}
	return int(n), nil
}

// Packet is the result of ParsePacket.
type Packet struct {
	// TOC is the Table of Contents byte of the packet.
	TOC byte
	// Frames are the compressed frames contained in the packet,
	// as sub-slices of the input.
	Frames [][]byte
	// PayloadOffset is the offset into the packet at which the payload
	// (the first frame) is located.
	PayloadOffset int
}

// ParsePacket splits an Opus packet into its compressed frames using
// opus_packet_parse. The returned frame slices alias the input packet.
//
// The packet bytes are staged in C memory for the duration of the native
// call; only offsets are taken from the pointers libopus reports back.
func ParsePacket(packet []byte) (Packet, error) {
	if len(packet) == 0 {
		return Packet{}, ErrEmptyPacket
	}

	cdata := C.CBytes(packet)
	defer C.free(cdata)

	var (
		toc           C.uchar
		frames        [48]*C.uchar
		sizes         [48]C.opus_int16
		payloadOffset C.int
	)
	n := C.opus_packet_parse((*C.uchar)(cdata), C.opus_int32(len(packet)),
		&toc, &frames[0], &sizes[0], &payloadOffset)
	if n < 0 {
		return Packet{}, newError("opus_packet_parse", int(n))
	}

	base := uintptr(cdata)
	out := Packet{
		TOC:           byte(toc),
		Frames:        make([][]byte, int(n)),
		PayloadOffset: int(payloadOffset),
	}
	for i := 0; i < int(n); i++ {
		off := uintptr(unsafe.Pointer(frames[i])) - base
		out.Frames[i] = packet[off : off+uintptr(sizes[i])]
	}
	return out, nil
}

// PacketPad pads an Opus packet in place from dataLen bytes to newLen bytes.
//
// buf must hold the packet in its first dataLen bytes and have room for
// newLen bytes.
func PacketPad(buf []byte, dataLen, newLen int) error {
	if dataLen <= 0 || dataLen > newLen || newLen > len(buf) {
		return ErrBufferTooSmall
	}
	ret := C.opus_packet_pad((*C.uchar)(&buf[0]), C.opus_int32(dataLen), C.opus_int32(newLen))
	if ret < 0 {
		return newError("opus_packet_pad", int(ret))
	}
	return nil
}

// PacketUnpad removes all padding from an Opus packet of dataLen bytes,
// rewriting it in place, and returns the new length.
func PacketUnpad(buf []byte, dataLen int) (int, error) {
	if dataLen <= 0 || dataLen > len(buf) {
		return 0, ErrBufferTooSmall
	}
	n := C.opus_packet_unpad((*C.uchar)(&buf[0]), C.opus_int32(dataLen))
	if n < 0 {
		return 0, newError("opus_packet_unpad", int(n))
	}
	return int(n), nil
}

// MultistreamPacketPad pads a multistream Opus packet in place from dataLen
// bytes to newLen bytes. streams is the number of elementary streams in the
// packet.
func MultistreamPacketPad(buf []byte, dataLen, newLen, streams int) error {
	if dataLen <= 0 || dataLen > newLen || newLen > len(buf) {
		return ErrBufferTooSmall
	}
	if streams < 1 || streams > 255 {
		return ErrInvalidStreams
	}
	ret := C.opus_multistream_packet_pad((*C.uchar)(&buf[0]),
		C.opus_int32(dataLen), C.opus_int32(newLen), C.int(streams))
	if ret < 0 {
		return newError("opus_multistream_packet_pad", int(ret))
	}
	return nil
}

// MultistreamPacketUnpad removes all padding from a multistream Opus packet
// of dataLen bytes, rewriting it in place, and returns the new length.
func MultistreamPacketUnpad(buf []byte, dataLen, streams int) (int, error) {
	if dataLen <= 0 || dataLen > len(buf) {
		return 0, ErrBufferTooSmall
	}
	if streams < 1 || streams > 255 {
		return 0, ErrInvalidStreams
	}
	n := C.opus_multistream_packet_unpad((*C.uchar)(&buf[0]),
		C.opus_int32(dataLen), C.int(streams))
	if n < 0 {
		return 0, newError("opus_multistream_packet_unpad", int(n))
	}
	return int(n), nil
}
