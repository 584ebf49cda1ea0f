package persistence

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/natefinch/atomic"
)

// FilePreferences is a key-value store kept as one JSON object on disk.
// Values must themselves be valid JSON; every Set rewrites the file atomically.
type FilePreferences struct {
	mu     sync.Mutex
	path   string
	values map[string]json.RawMessage
	loaded bool
}

func NewFilePreferences(path string) *FilePreferences {
	return &FilePreferences{path: path}
}

func (p *FilePreferences) Get(key string) ([]byte, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ensureLoaded(); err != nil {
		return nil, false, err
	}
	val, ok := p.values[key]
	if !ok {
		return nil, false, nil
	}
	return bytes.Clone(val), true, nil
}

func (p *FilePreferences) Set(key string, value []byte) error {
	if !json.Valid(value) {
		return fmt.Errorf("preference %q: value is not valid JSON", key)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// An unreadable file is replaced rather than blocking every later write.
	if err := p.ensureLoaded(); err != nil {
		p.values = make(map[string]json.RawMessage)
		p.loaded = true
	}

	next := make(map[string]json.RawMessage, len(p.values)+1)
	for k, v := range p.values {
		next[k] = v
	}
	next[key] = bytes.Clone(value)

	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	if err := atomic.WriteFile(p.path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write %s: %w", p.path, err)
	}
	p.values = next
	return nil
}

func (p *FilePreferences) ensureLoaded() error {
	if p.loaded {
		return nil
	}
	data, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			p.values = make(map[string]json.RawMessage)
			p.loaded = true
			return nil
		}
		return err
	}
	values := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("decode %s: %w", p.path, err)
	}
	p.values = values
	p.loaded = true
	return nil
}
