package codec

import (
	"fmt"
	"sort"

	"github.com/s0up4200/go-eac3fix/internal/buffer"
)

// DetectionError means no offset in any sampled dependent frame ever carried
// a plausible presence-flag + chanmap pattern.
type DetectionError struct {
	Sampled int
}

func (e *DetectionError) Error() string {
	return fmt.Sprintf("could not detect chanmap position in %d sampled dependent E-AC-3 frames", e.Sampled)
}

// DetectChanmapOffset infers the bit offset of the 16-bit chanmap field from
// a sample of dependent-substream frames.
//
// The true chanmap is preceded by a set presence bit and repeats the same
// value across every frame of one encode, while 16-bit words read at
// structurally wrong offsets drift from frame to frame. For each candidate
// offset a histogram of observed values is kept; offsets are then ranked by
// total * stability^2, where stability is the share held by the most common
// value. Values 0x0000 and 0xFFFF never qualify. Ties go to the lowest
// offset, a deliberate bias toward the earliest plausible field.
//
// The scan covers [ScanStart, min(frameBits-17, ScanStart+windowBits)) per
// frame. Non-E-AC-3 and non-dependent frames in the sample are skipped.
func DetectChanmapOffset(samples [][]byte, windowBits int) (int, error) {
	hist := make(map[int]map[uint32]int)
	for _, data := range samples {
		if len(data) < 6 || data[5]>>3 < 10 {
			continue
		}
		info := ParseBSI(data)
		if info.StreamType != StreamTypeDependent {
			continue
		}

		buf := buffer.BitBuffer(data)
		end := buf.BitLen() - 17
		if limit := info.ScanStart + windowBits; end > limit {
			end = limit
		}
		for p := info.ScanStart; p < end; p++ {
			if buf.Bit(p) != 1 {
				continue // no presence flag here
			}
			v := buf.Bits(p+1, 16)
			if v == 0x0000 || v == 0xFFFF {
				continue
			}
			d := hist[p+1]
			if d == nil {
				d = make(map[uint32]int)
				hist[p+1] = d
			}
			d[v]++
		}
	}
	if len(hist) == 0 {
		return 0, &DetectionError{Sampled: len(samples)}
	}

	offsets := make([]int, 0, len(hist))
	for p := range hist {
		offsets = append(offsets, p)
	}
	sort.Ints(offsets)

	best, bestScore := 0, -1.0
	for _, p := range offsets {
		total, top := 0, 0
		for _, count := range hist[p] {
			total += count
			if count > top {
				top = count
			}
		}
		stability := float64(top) / float64(total)
		score := float64(total) * stability * stability
		if score > bestScore {
			bestScore = score
			best = p
		}
	}
	return best, nil
}
