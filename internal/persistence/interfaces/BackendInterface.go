package interfaces

import "hotprospects/internal/models"

// BackendInterface is the single authoritative place prospects are persisted to.
type BackendInterface interface {
	Load() ([]models.Prospect, error)
	Save(people []models.Prospect) error
	Target() string
}

type CompressorInterface interface {
	Compress(val []byte) ([]byte, error)
	Decompress(val []byte) ([]byte, error)
	Close()
}

// PreferenceStore is a small key-value store for JSON values.
type PreferenceStore interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
}
