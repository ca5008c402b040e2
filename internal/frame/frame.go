// Package frame demultiplexes a raw AC-3/E-AC-3 elementary stream into
// discrete sync frames.
package frame

// Kind classifies a sync frame by its bitstream id.
type Kind uint8

const (
	KindAC3 Kind = iota
	KindEAC3
)

func (k Kind) String() string {
	if k == KindAC3 {
		return "AC-3"
	}
	return "E-AC-3"
}

// Frame is one complete sync frame, bytes exactly as read from the stream.
type Frame struct {
	Kind Kind
	Data []byte
}

// frameSizeWords maps the AC-3 frmsizecod byte to the frame size in 16-bit
// words. Entries of 0 mark reserved codes. Groups of 64 cover the 48 kHz,
// 44.1 kHz and 32 kHz fscod variants; codes past the defined range stay 0.
var frameSizeWords = [256]int{
	// 48 kHz
	64, 64, 80, 80, 96, 96, 112, 112, 128, 128, 160, 160, 192, 192, 224, 224,
	256, 256, 320, 320, 384, 384, 448, 448, 512, 512, 640, 640, 768, 768, 896, 896,
	1024, 1024, 1152, 1152, 1280, 1280, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	// 44.1 kHz
	69, 70, 87, 88, 104, 105, 121, 122, 139, 140, 174, 175, 208, 209, 243, 244,
	278, 279, 348, 349, 417, 418, 487, 488, 557, 558, 696, 697, 835, 836, 975, 976,
	1114, 1115, 1253, 1254, 1393, 1394, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	// 32 kHz
	96, 96, 120, 120, 144, 144, 168, 168, 192, 192, 240, 240, 288, 288, 336, 336,
	384, 384, 480, 480, 576, 576, 672, 672, 768, 768, 960, 960, 1152, 1152, 1344, 1344,
	1536, 1536, 1728, 1728, 1920, 1920, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}
