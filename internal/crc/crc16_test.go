package crc

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestChecksum(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		seed     uint16
		expected uint16
	}{
		{"Empty returns seed", nil, 0x1234, 0x1234},
		{"Single zero byte", []byte{0x00}, 0, 0x0000},
		{"Single one byte", []byte{0x01}, 0, 0x8005},
		// CRC-16/BUYPASS check value.
		{"Standard check string", []byte("123456789"), 0, 0xFEE8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Checksum(tt.data, tt.seed); got != tt.expected {
				t.Errorf("Checksum(%x, %#x) = %#04x, want %#04x", tt.data, tt.seed, got, tt.expected)
			}
		})
	}
}

func TestRepairFrame(t *testing.T) {
	frame := make([]byte, 32)
	for i := range frame {
		frame[i] = byte(i * 7)
	}
	frame[0], frame[1] = 0x0B, 0x77

	RepairFrame(frame)

	stored := binary.BigEndian.Uint16(frame[30:])
	if want := Checksum(frame[2:30], 0); stored != want {
		t.Errorf("stored crc2 = %#04x, want %#04x", stored, want)
	}

	// Repair must only ever touch the last two bytes.
	before := append([]byte(nil), frame...)
	RepairFrame(frame)
	if !bytes.Equal(frame, before) {
		t.Error("second repair changed a valid frame")
	}
}

func TestRepairFrame_ShortFrame(t *testing.T) {
	frame := []byte{0x0B, 0x77, 0x01, 0x02, 0x03}
	before := append([]byte(nil), frame...)
	RepairFrame(frame)
	if !bytes.Equal(frame, before) {
		t.Errorf("frame shorter than 6 bytes was modified: %x", frame)
	}
}
