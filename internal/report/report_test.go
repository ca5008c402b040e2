package report

import (
	"strings"
	"testing"

	"github.com/s0up4200/go-eac3fix/pkg/eac3fix"
)

func TestWriteSummary(t *testing.T) {
	stats := eac3fix.Stats{
		TotalFrames:   1234,
		AC3Frames:     17,
		EAC3Frames:    1217,
		PatchedEAC3:   1217,
		ChanmapOffset: 201,
		InputBytes:    1 << 20,
	}

	var sb strings.Builder
	WriteSummary(&sb, stats)
	out := sb.String()

	for _, want := range []string{"1234", "17", "1217", "201", "1.00 MB"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}
