package persistence

import (
	"bytes"
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/natefinch/atomic"

	"hotprospects/internal/models"
	"hotprospects/internal/persistence/interfaces"
)

// FileBackend keeps the whole prospect list in a single file.
type FileBackend struct {
	path       string
	compressor interfaces.CompressorInterface
}

func NewFileBackend(path string, compressor interfaces.CompressorInterface) *FileBackend {
	return &FileBackend{path: path, compressor: compressor}
}

func (f *FileBackend) Target() string {
	return f.path
}

func (f *FileBackend) Save(people []models.Prospect) error {
	data, err := encodePeople(people)
	if err != nil {
		return err
	}
	data, err = f.compressor.Compress(data)
	if err != nil {
		return fmt.Errorf("compress %s: %w", f.path, err)
	}
	if err := atomic.WriteFile(f.path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write %s: %w", f.path, err)
	}
	return nil
}

// Load returns no prospects and no error when the file does not exist yet.
func (f *FileBackend) Load() ([]models.Prospect, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	data, err = f.compressor.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", f.path, err)
	}
	return decodePeople(data)
}

func encodePeople(people []models.Prospect) ([]byte, error) {
	if people == nil {
		people = []models.Prospect{}
	}
	data, err := json.Marshal(people)
	if err != nil {
		return nil, fmt.Errorf("encode prospects: %w", err)
	}
	return data, nil
}

func decodePeople(data []byte) ([]models.Prospect, error) {
	var people []models.Prospect
	if err := json.Unmarshal(data, &people); err != nil {
		return nil, fmt.Errorf("decode prospects: %w", err)
	}
	return people, nil
}
