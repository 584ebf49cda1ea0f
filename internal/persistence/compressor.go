package persistence

import (
	"fmt"
	"github.com/klauspost/compress/zstd"
	"hotprospects/internal/persistence/interfaces"
	"hotprospects/internal/structures"
)

type ZstdCompression struct {
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

func (z *ZstdCompression) Compress(val []byte) ([]byte, error) {
	return z.encoder.EncodeAll(val, make([]byte, 0, len(val)/2)), nil
}

func (z *ZstdCompression) Decompress(val []byte) ([]byte, error) {
	return z.decoder.DecodeAll(val, nil)
}

func (z *ZstdCompression) Close() {
	_ = z.encoder.Close()
	z.decoder.Close()
}

func NewZstdCompressor() (*ZstdCompression, error) {
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
	if err != nil {
		_ = encoder.Close()
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	return &ZstdCompression{encoder: encoder, decoder: decoder}, nil
}

// NopCompression stores data as plain JSON.
type NopCompression struct{}

func (NopCompression) Compress(val []byte) ([]byte, error)   { return val, nil }
func (NopCompression) Decompress(val []byte) ([]byte, error) { return val, nil }
func (NopCompression) Close()                                {}

func NewCompressor(conf *structures.Config) (interfaces.CompressorInterface, error) {
	if !conf.Persistence.Compress {
		return NopCompression{}, nil
	}
	return NewZstdCompressor()
}
