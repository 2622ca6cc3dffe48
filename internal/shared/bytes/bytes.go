package bytes

import (
	"encoding/binary"
	"fmt"
)

var units = [...]string{"B", "KB", "MB", "GB", "TB"}

// FmtMem renders a byte count as its two most significant binary units,
// e.g. "10MB 512KB".
func FmtMem(bytes uint64) string {
	unit := 0
	for unit < len(units)-1 && bytes >= 1<<(10*(unit+1)) {
		unit++
	}
	if unit == 0 {
		return fmt.Sprintf("%dB", bytes)
	}
	hi := uint64(1) << (10 * unit)
	lo := hi >> 10
	return fmt.Sprintf("%d%s %d%s", bytes/hi, units[unit], (bytes%hi)/lo, units[unit-1])
}

// AppendUint32s appends words in little-endian order.
func AppendUint32s(dst []byte, words []uint32) []byte {
	for _, w := range words {
		dst = binary.LittleEndian.AppendUint32(dst, w)
	}
	return dst
}

// AppendUint64s appends words in little-endian order.
func AppendUint64s(dst []byte, words []uint64) []byte {
	for _, w := range words {
		dst = binary.LittleEndian.AppendUint64(dst, w)
	}
	return dst
}
