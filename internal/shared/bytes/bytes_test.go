package bytes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestFmtMem_FormatsCorrectly verifies memory formatting for different sizes.
func TestFmtMem_FormatsCorrectly(t *testing.T) {
	tests := []struct {
		name     string
		bytes    uint64
		expected string
	}{
		{"zero", 0, "0B"},
		{"bytes", 512, "512B"},
		{"kilobytes", 5 * 1024, "5KB 0B"},
		{"megabytes", 10 * 1024 * 1024, "10MB 0KB"},
		{"gigabytes", 2 * 1024 * 1024 * 1024, "2GB 0MB"},
		{"terabytes", 1 * 1024 * 1024 * 1024 * 1024, "1TB 0GB"},
		{"mixed KB", 1536, "1KB 512B"},
		{"mixed MB", 10*1024*1024 + 512*1024, "10MB 512KB"},
		{"mixed GB", 2*1024*1024*1024 + 100*1024*1024, "2GB 100MB"},
		{"one block of words", 624 * 4, "2KB 448B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, FmtMem(tt.bytes))
		})
	}
}

// TestAppendUint32s_LittleEndian verifies byte order of encoded words.
func TestAppendUint32s_LittleEndian(t *testing.T) {
	out := AppendUint32s([]byte{0xff}, []uint32{0x04030201, 0x08070605})
	require.Equal(t, []byte{0xff, 1, 2, 3, 4, 5, 6, 7, 8}, out)
	require.Empty(t, AppendUint32s(nil, nil))
}

// TestAppendUint64s_LittleEndian verifies byte order of encoded words.
func TestAppendUint64s_LittleEndian(t *testing.T) {
	out := AppendUint64s(nil, []uint64{0x0807060504030201})
	require.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, out)
}
