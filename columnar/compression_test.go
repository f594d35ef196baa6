package columnar

import (
	"bytes"
	"encoding/binary"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressBlockRoundTrip(t *testing.T) {
	compressible := bytes.Repeat([]byte("abcdefgh"), 512)

	for _, ct := range []CompressionType{CompressionLZ4, CompressionZSTD} {
		t.Run(ct.String(), func(t *testing.T) {
			blob, err := compressBlock(compressible, ct)
			require.NoError(t, err)
			require.GreaterOrEqual(t, len(blob), blockHeaderSize)

			// Repetitive input must actually compress
			compressedSize := binary.LittleEndian.Uint32(blob[4:])
			assert.NotZero(t, compressedSize)
			assert.Less(t, len(blob), len(compressible))

			got, err := decompressBlock(blob, ct)
			require.NoError(t, err)
			assert.Equal(t, compressible, got)
		})
	}
}

func TestCompressBlockKeepsRawWhenIncompressible(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	noise := make([]byte, 4096)
	rng.Read(noise)

	for _, ct := range []CompressionType{CompressionLZ4, CompressionZSTD} {
		t.Run(ct.String(), func(t *testing.T) {
			blob, err := compressBlock(noise, ct)
			require.NoError(t, err)

			// CompressedSize 0 marks a raw payload behind the header
			assert.Zero(t, binary.LittleEndian.Uint32(blob[4:]))
			assert.Len(t, blob, blockHeaderSize+len(noise))

			got, err := decompressBlock(blob, ct)
			require.NoError(t, err)
			assert.Equal(t, noise, got)
		})
	}
}

func TestCompressBlockNoneBypass(t *testing.T) {
	data := []byte{1, 2, 3}

	blob, err := compressBlock(data, CompressionNone)
	require.NoError(t, err)
	assert.Equal(t, data, blob)
}

func TestDecompressBlockTruncated(t *testing.T) {
	_, err := decompressBlock([]byte{1, 2}, CompressionLZ4)
	require.ErrorIs(t, err, ErrCorrupted)
}

func TestParseCompression(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected CompressionType
		wantErr  bool
	}{
		{"None", "none", CompressionNone, false},
		{"EmptyDefaultsToNone", "", CompressionNone, false},
		{"LZ4", "lz4", CompressionLZ4, false},
		{"ZSTD", "zstd", CompressionZSTD, false},
		{"Unknown", "brotli", CompressionNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCompression(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownCompression)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCompressionTypeString(t *testing.T) {
	assert.Equal(t, "none", CompressionNone.String())
	assert.Equal(t, "lz4", CompressionLZ4.String())
	assert.Equal(t, "zstd", CompressionZSTD.String())
	assert.Contains(t, CompressionType(7).String(), "Unknown")
}
