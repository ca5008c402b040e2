// Package patch orchestrates the two-pass repair of an E-AC-3 stream:
// a discovery pass that locates the chanmap field and a rewrite pass that
// forces the compression fields and corrects the chanmap.
package patch

import (
	"errors"
	"fmt"
	"io"

	"github.com/s0up4200/go-eac3fix/internal/buffer"
	"github.com/s0up4200/go-eac3fix/internal/codec"
	"github.com/s0up4200/go-eac3fix/internal/crc"
	"github.com/s0up4200/go-eac3fix/internal/frame"
	"github.com/s0up4200/go-eac3fix/internal/settings"
)

// Stats summarizes one run.
type Stats struct {
	TotalFrames   int
	AC3Frames     int
	EAC3Frames    int
	PatchedEAC3   int
	ChanmapOffset int
	InputBytes    int64
}

// Progress is called after each frame is written, with the number of input
// bytes consumed so far and the total input size.
type Progress func(current, total int64)

// Run patches src into dst. The input is read twice, so src must rewind; if
// the underlying medium cannot seek, buffer it first. Output is written
// frame by frame with no atomic replacement: on error dst may hold a valid
// prefix of the patched stream and nothing more is guaranteed.
func Run(src io.ReadSeeker, dst io.Writer, cfg settings.Settings, progress Progress) (*Stats, error) {
	size, err := src.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("sizing input: %w", err)
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewinding input: %w", err)
	}

	samples, err := collectSamples(src, cfg.SampleSize)
	if err != nil {
		return nil, err
	}
	chanmapPos, err := codec.DetectChanmapOffset(samples, cfg.ScanWindowBits)
	if err != nil {
		return nil, err
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewinding input: %w", err)
	}

	stats := &Stats{ChanmapOffset: chanmapPos, InputBytes: size}
	r := frame.NewReader(src)
	for {
		f, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		stats.TotalFrames++
		switch f.Kind {
		case frame.KindAC3:
			stats.AC3Frames++
		case frame.KindEAC3:
			stats.EAC3Frames++
			patchFrame(f.Data, chanmapPos, cfg.Chanmap)
			stats.PatchedEAC3++
		}

		if _, err := dst.Write(f.Data); err != nil {
			return nil, fmt.Errorf("writing frame %d: %w", stats.TotalFrames, err)
		}
		if progress != nil {
			progress(r.BytesRead(), size)
		}
	}
	return stats, nil
}

// collectSamples reads frames from the head of the stream until it has
// gathered want dependent E-AC-3 frames or the stream ends. Other frames
// are read and discarded; framing errors abort the run before any output.
func collectSamples(src io.Reader, want int) ([][]byte, error) {
	r := frame.NewReader(src)
	var samples [][]byte
	for len(samples) < want {
		f, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if f.Kind != frame.KindEAC3 {
			continue
		}
		if codec.ParseBSI(f.Data).StreamType == codec.StreamTypeDependent {
			samples = append(samples, f.Data)
		}
	}
	return samples, nil
}

// patchFrame forces compre/compr on every E-AC-3 frame, rewrites the chanmap
// on dependent substreams, and repairs crc2.
func patchFrame(data []byte, chanmapPos int, chanmap uint16) {
	info := codec.ParseBSI(data)
	buf := buffer.BitBuffer(data)
	buf.SetBits(info.ComprePos, 1, 1)
	buf.SetBits(info.ComprPos, 8, 0xFF)
	if info.StreamType == codec.StreamTypeDependent {
		buf.SetBits(chanmapPos, 16, uint32(chanmap))
	}
	crc.RepairFrame(data)
}
