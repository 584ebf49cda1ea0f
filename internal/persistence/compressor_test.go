package persistence

import (
	"bytes"
	"hotprospects/internal/structures"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZstdCompression_Roundtrip(t *testing.T) {
	c, err := NewZstdCompressor()
	require.NoError(t, err)
	defer c.Close()

	original := []byte(`[{"name":"Luka","emailAddress":"luka@example.com"}]`)
	compressed, err := c.Compress(original)
	require.NoError(t, err)
	assert.NotEqual(t, original, compressed)

	decompressed, err := c.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, original, decompressed)
}

func TestZstdCompression_EmptyData(t *testing.T) {
	c, err := NewZstdCompressor()
	require.NoError(t, err)
	defer c.Close()

	compressed, err := c.Compress([]byte{})
	require.NoError(t, err)

	decompressed, err := c.Decompress(compressed)
	require.NoError(t, err)
	assert.Empty(t, decompressed)
}

func TestZstdCompression_ShrinksRepetitiveData(t *testing.T) {
	c, err := NewZstdCompressor()
	require.NoError(t, err)
	defer c.Close()

	original := bytes.Repeat([]byte(`{"name":"Anonymous","isContacted":false}`), 500)
	compressed, err := c.Compress(original)
	require.NoError(t, err)
	assert.Less(t, len(compressed), len(original))
}

func TestZstdCompression_GarbageInput(t *testing.T) {
	c, err := NewZstdCompressor()
	require.NoError(t, err)
	defer c.Close()

	_, err = c.Decompress([]byte("definitely not zstd"))
	assert.Error(t, err)
}

func TestNewCompressor_FollowsConfig(t *testing.T) {
	plain, err := NewCompressor(&structures.Config{})
	require.NoError(t, err)
	assert.IsType(t, NopCompression{}, plain)

	zstd, err := NewCompressor(&structures.Config{Persistence: structures.Persistence{Compress: true}})
	require.NoError(t, err)
	defer zstd.Close()
	assert.IsType(t, &ZstdCompression{}, zstd)
}

func TestNopCompression_PassThrough(t *testing.T) {
	data := []byte("[]")
	out, err := NopCompression{}.Compress(data)
	require.NoError(t, err)
	assert.Equal(t, data, out)

	out, err = NopCompression{}.Decompress(data)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}
