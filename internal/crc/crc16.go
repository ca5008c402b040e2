// Package crc implements the 16-bit checksum carried by AC-3 family sync
// frames (polynomial 0x8005, MSB-first, non-reflected).
package crc

const poly = 0x8005

var table = makeTable()

func makeTable() [256]uint16 {
	var t [256]uint16
	for n := range t {
		c := uint16(n) << 8
		for i := 0; i < 8; i++ {
			if c&0x8000 != 0 {
				c = c<<1 ^ poly
			} else {
				c <<= 1
			}
		}
		t[n] = c
	}
	return t
}

// Checksum folds data into crc one byte at a time.
func Checksum(data []byte, crc uint16) uint16 {
	for _, b := range data {
		crc = table[byte(crc>>8)^b] ^ crc<<8
	}
	return crc
}

// RepairFrame recomputes the trailing crc2 word over everything between the
// two-byte sync header and the checksum itself, and stores it big-endian in
// the last two bytes. Frames shorter than six bytes are left untouched.
func RepairFrame(frame []byte) {
	n := len(frame)
	if n < 6 {
		return
	}
	c := Checksum(frame[2:n-2], 0)
	frame[n-2] = byte(c >> 8)
	frame[n-1] = byte(c)
}
