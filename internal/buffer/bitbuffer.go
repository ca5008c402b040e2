package buffer

// BitBuffer gives absolute-offset bit access to a byte slice, MSB-first
// within each byte.
//
// Access past the end of the buffer is silently clamped: reads return 0 and
// writes are dropped. The chanmap scan window reads up to 16 bits past its
// nominal margin and relies on this, so it is a contract, not a missing
// bounds check.
type BitBuffer []byte

// BitLen returns the buffer length in bits.
func (b BitBuffer) BitLen() int {
	return len(b) * 8
}

// Bit returns the bit at pos, or 0 when pos is outside the buffer.
func (b BitBuffer) Bit(pos int) uint32 {
	idx := pos >> 3
	if pos < 0 || idx >= len(b) {
		return 0
	}
	return uint32(b[idx]>>(7-uint(pos&7))) & 1
}

// SetBit stores a single bit at pos. Out-of-range positions are ignored.
func (b BitBuffer) SetBit(pos int, bit uint32) {
	idx := pos >> 3
	if pos < 0 || idx >= len(b) {
		return
	}
	mask := byte(0x80) >> uint(pos&7)
	if bit != 0 {
		b[idx] |= mask
	} else {
		b[idx] &^= mask
	}
}

// Bits composes n consecutive bits starting at pos into an unsigned value,
// MSB-first. n is expected to be at most 32.
func (b BitBuffer) Bits(pos, n int) uint32 {
	var v uint32
	for i := 0; i < n; i++ {
		v = v<<1 | b.Bit(pos+i)
	}
	return v
}

// SetBits stores the low n bits of value starting at pos, MSB-first.
func (b BitBuffer) SetBits(pos, n int, value uint32) {
	for i := 0; i < n; i++ {
		b.SetBit(pos+i, (value>>uint(n-1-i))&1)
	}
}
