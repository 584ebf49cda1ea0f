package persistence

import (
	"fmt"
	"os"
	"path/filepath"

	"hotprospects/internal/persistence/interfaces"
	"hotprospects/internal/providers"
	"hotprospects/internal/structures"
)

// NewBackend builds the one backend selected by persistence.backend.
func NewBackend(conf *structures.Config, compressor interfaces.CompressorInterface, logger providers.Logger) (interfaces.BackendInterface, error) {
	p := conf.Persistence
	if err := os.MkdirAll(p.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create persistence dir %s: %w", p.Dir, err)
	}

	var backend interfaces.BackendInterface
	switch p.Backend {
	case structures.BackendFile:
		backend = NewFileBackend(filepath.Join(p.Dir, p.FileName), compressor)
	case structures.BackendPreferences:
		prefs := NewFilePreferences(filepath.Join(p.Dir, p.PreferencesFile))
		backend = NewPreferencesBackend(prefs, p.Key)
	default:
		return nil, fmt.Errorf("unknown persistence backend %q", p.Backend)
	}

	logger.Infof(providers.TypeStore, "Persisting prospects to %s", backend.Target())
	return backend, nil
}
