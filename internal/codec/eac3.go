// Package codec decodes the fixed prefix of the E-AC-3 bitstream-info header
// and statistically locates the chanmap field inside the undecoded remainder.
package codec

import "github.com/s0up4200/go-eac3fix/internal/buffer"

// StreamTypeDependent is the strmtyp value of a dependent substream.
const StreamTypeDependent = 1

// BSIInfo carries the bitstream-info positions the patcher needs. All
// offsets are absolute bit positions from the start of the frame.
type BSIInfo struct {
	StreamType int // strmtyp: 0 independent, 1 dependent
	ComprePos  int // 1-bit compr-exists flag
	ComprPos   int // 8-bit compr field, occupied only when compre is set
	ScanStart  int // first bit past the fixed-layout prefix
}

// ParseBSI walks the fixed-width fields of an E-AC-3 bitstream-info header,
// starting after the syncword. It stops at ScanStart: everything beyond sits
// behind Annex E extension flags this parser does not track, which is why
// the chanmap position is inferred by DetectChanmapOffset instead of decoded
// here. Guessing the full field layout would change behavior; don't.
func ParseBSI(data []byte) BSIInfo {
	br := buffer.NewBitReader(data)
	read := func(bits int) uint64 {
		v, _ := br.ReadBits(bits)
		return v
	}

	_ = read(16) // syncword
	strmtyp := read(2)
	_ = read(3)  // substreamid
	_ = read(11) // frmsiz
	_ = read(2)  // fscod
	_ = read(2)  // numblkscod
	_ = read(3)  // acmod
	_ = read(1)  // lfeon
	_ = read(5)  // bsid
	_ = read(5)  // dialnorm, never modified by this tool

	comprePos := br.BitPosition()
	compre := read(1)
	comprPos := br.BitPosition()
	if compre == 1 {
		_ = read(8)
	}

	return BSIInfo{
		StreamType: int(strmtyp),
		ComprePos:  comprePos,
		ComprPos:   comprPos,
		ScanStart:  br.BitPosition(),
	}
}
