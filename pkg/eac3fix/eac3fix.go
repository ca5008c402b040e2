// Package eac3fix exposes the E-AC-3 Atmos metadata repair as a library.
//
// It forces the dynamic range compression fields of every E-AC-3 frame and
// rewrites the channel map of dependent substreams, whose bit position is
// inferred statistically from a sample of frames. AC-3 frames pass through
// untouched; every modified frame gets its trailing checksum recomputed.
package eac3fix

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/s0up4200/go-eac3fix/internal/patch"
	"github.com/s0up4200/go-eac3fix/internal/settings"
)

// ErrSameFile is returned when input and output resolve to the same path.
var ErrSameFile = errors.New("input and output cannot be the same file")

// Options configure one Run call.
type Options struct {
	// OnProgress, when set, is called after every frame written with the
	// number of input bytes consumed and the total input size.
	OnProgress func(current, total int64)
}

// Stats summarizes a completed run.
type Stats struct {
	TotalFrames   int
	AC3Frames     int
	EAC3Frames    int
	PatchedEAC3   int
	ChanmapOffset int
	InputBytes    int64
}

// Run patches inputPath into outputPath. The output file is created eagerly
// and is not replaced atomically; after an error it may hold a valid prefix
// of the patched stream.
func Run(inputPath, outputPath string, opts Options) (Stats, error) {
	if samePath(inputPath, outputPath) {
		return Stats{}, ErrSameFile
	}

	in, err := os.Open(inputPath)
	if err != nil {
		return Stats{}, err
	}
	defer in.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		return Stats{}, err
	}

	st, err := patch.Run(in, out, settings.Default(), opts.OnProgress)
	if err != nil {
		out.Close()
		return Stats{}, err
	}
	if err := out.Close(); err != nil {
		return Stats{}, fmt.Errorf("closing output: %w", err)
	}

	return Stats{
		TotalFrames:   st.TotalFrames,
		AC3Frames:     st.AC3Frames,
		EAC3Frames:    st.EAC3Frames,
		PatchedEAC3:   st.PatchedEAC3,
		ChanmapOffset: st.ChanmapOffset,
		InputBytes:    st.InputBytes,
	}, nil
}

func samePath(a, b string) bool {
	if a == b {
		return true
	}
	aa, errA := filepath.Abs(a)
	bb, errB := filepath.Abs(b)
	return errA == nil && errB == nil && aa == bb
}
