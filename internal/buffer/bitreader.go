package buffer

// BitReader reads MSB-first bits from a byte slice.
type BitReader struct {
	data    []byte
	bytePos int
	bitPos  uint8
}

func NewBitReader(data []byte) *BitReader {
	return &BitReader{data: data}
}

// BitPosition returns the absolute bit offset of the next read.
func (r *BitReader) BitPosition() int {
	return r.bytePos*8 + int(r.bitPos)
}

// BitsRemaining returns how many bits are left to read.
func (r *BitReader) BitsRemaining() int {
	return len(r.data)*8 - r.BitPosition()
}

func (r *BitReader) ReadBit() (uint64, bool) {
	if r.bytePos >= len(r.data) {
		return 0, false
	}
	b := r.data[r.bytePos]
	bit := (b >> (7 - r.bitPos)) & 0x01
	r.bitPos++
	if r.bitPos == 8 {
		r.bitPos = 0
		r.bytePos++
	}
	return uint64(bit), true
}

func (r *BitReader) ReadBits(n int) (uint64, bool) {
	if n <= 0 {
		return 0, true
	}
	var v uint64
	for i := 0; i < n; i++ {
		bit, ok := r.ReadBit()
		if !ok {
			return 0, false
		}
		v = (v << 1) | bit
	}
	return v, true
}

func (r *BitReader) SkipBits(n int) bool {
	_, ok := r.ReadBits(n)
	return ok
}
