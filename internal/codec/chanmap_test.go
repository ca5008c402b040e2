package codec

import (
	"errors"
	"testing"

	"github.com/s0up4200/go-eac3fix/internal/buffer"
)

// plant writes a presence bit at pos followed by a 16-bit value, the shape
// the detector is hunting for.
func plant(data []byte, pos int, value uint32) {
	buf := buffer.BitBuffer(data)
	buf.SetBit(pos, 1)
	buf.SetBits(pos+1, 16, value)
}

const testWindow = 2048

func TestDetectChanmapOffset_StablePattern(t *testing.T) {
	var samples [][]byte
	for i := 0; i < 4; i++ {
		data := makeEAC3Frame(t, 1, 96, true)
		plant(data, 200, 0x2B2B)
		samples = append(samples, data)
	}

	got, err := DetectChanmapOffset(samples, testWindow)
	if err != nil {
		t.Fatalf("DetectChanmapOffset() error: %v", err)
	}
	if got != 201 {
		t.Errorf("detected offset = %d, want 201", got)
	}
}

func TestDetectChanmapOffset_StabilityBeatsEarlierNoise(t *testing.T) {
	var samples [][]byte
	for i := 0; i < 8; i++ {
		data := makeEAC3Frame(t, 1, 96, true)
		plant(data, 100, uint32(i+1)) // drifting value at an earlier offset
		plant(data, 300, 0x4D4D)      // stable value at the true offset
		samples = append(samples, data)
	}

	got, err := DetectChanmapOffset(samples, testWindow)
	if err != nil {
		t.Fatalf("DetectChanmapOffset() error: %v", err)
	}
	if got != 301 {
		t.Errorf("detected offset = %d, want 301 (stable value must beat drifting one)", got)
	}
}

func TestDetectChanmapOffset_TieGoesToLowestOffset(t *testing.T) {
	var samples [][]byte
	for i := 0; i < 4; i++ {
		data := makeEAC3Frame(t, 1, 96, true)
		plant(data, 100, 0x2001)
		plant(data, 400, 0x2001)
		samples = append(samples, data)
	}

	for run := 0; run < 3; run++ {
		got, err := DetectChanmapOffset(samples, testWindow)
		if err != nil {
			t.Fatalf("run %d: DetectChanmapOffset() error: %v", run, err)
		}
		if got != 101 {
			t.Errorf("run %d: detected offset = %d, want 101", run, got)
		}
	}
}

func TestDetectChanmapOffset_SkipsNonDependentFrames(t *testing.T) {
	independent := makeEAC3Frame(t, 0, 96, true)
	plant(independent, 100, 0x1111)

	ac3 := make([]byte, 128)
	ac3[0], ac3[1] = 0x0B, 0x77
	ac3[5] = 8 << 3 // bsid 8, legacy AC-3
	plant(ac3, 100, 0x2222)

	dependent := makeEAC3Frame(t, 1, 96, true)
	plant(dependent, 240, 0x3333)

	got, err := DetectChanmapOffset([][]byte{independent, ac3, dependent}, testWindow)
	if err != nil {
		t.Fatalf("DetectChanmapOffset() error: %v", err)
	}
	if got != 241 {
		t.Errorf("detected offset = %d, want 241 (only the dependent frame counts)", got)
	}
}

func TestDetectChanmapOffset_Failures(t *testing.T) {
	// A lone presence bit is followed by all zeros, which the detector must
	// discard as a non-informative sentinel.
	sentinel := makeEAC3Frame(t, 1, 96, true)
	buffer.BitBuffer(sentinel).SetBit(500, 1)

	tests := []struct {
		name    string
		samples [][]byte
	}{
		{"Empty sample set", nil},
		{"No dependent frames", [][]byte{makeEAC3Frame(t, 0, 96, false)}},
		{"All-zero body", [][]byte{makeEAC3Frame(t, 1, 96, true)}},
		{"Only zero-value candidates", [][]byte{sentinel}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DetectChanmapOffset(tt.samples, testWindow)
			var de *DetectionError
			if !errors.As(err, &de) {
				t.Fatalf("DetectChanmapOffset() = %v, want *DetectionError", err)
			}
		})
	}
}

func TestDetectChanmapOffset_WindowClampsAtFrameEnd(t *testing.T) {
	// The pattern straddles the last 17 bits, so its presence bit falls
	// outside the [ScanStart, frameBits-17) window and must not register.
	data := makeEAC3Frame(t, 1, 96, true)
	plant(data, 96*8-17, 0x5A5A)

	_, err := DetectChanmapOffset([][]byte{data}, testWindow)
	var de *DetectionError
	if !errors.As(err, &de) {
		t.Fatalf("DetectChanmapOffset() = %v, want *DetectionError", err)
	}
}
