// Package report renders the post-run summary block.
package report

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/s0up4200/go-eac3fix/internal/util"
	"github.com/s0up4200/go-eac3fix/pkg/eac3fix"
)

// WriteSummary renders the statistics printed after a successful patch run.
func WriteSummary(w io.Writer, stats eac3fix.Stats) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.AppendRows([]table.Row{
		{"Input size", util.FormatFileSize(stats.InputBytes)},
		{"Total frames", stats.TotalFrames},
		{"AC-3 frames", stats.AC3Frames},
		{"E-AC-3 frames", stats.EAC3Frames},
		{"Patched E-AC-3", stats.PatchedEAC3},
		{"Chanmap bit offset", stats.ChanmapOffset},
	})
	tw.Render()
}
