// Package settings holds the fixed operational constants of a patch run.
package settings

// Settings mirrors the tool's built-in constants. There is deliberately no
// CLI or file surface for these; tests override them directly.
type Settings struct {
	SampleSize     int    // dependent frames sampled during discovery
	ScanWindowBits int    // bits scanned past the fixed BSI prefix
	Chanmap        uint16 // value written into the dependent-substream chanmap
}

func Default() Settings {
	return Settings{
		SampleSize:     8,
		ScanWindowBits: 2048,
		Chanmap:        0x1A00,
	}
}
