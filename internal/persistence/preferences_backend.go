package persistence

import (
	"hotprospects/internal/models"
	"hotprospects/internal/persistence/interfaces"
)

// PreferencesBackend stores the prospect list as one value of a preference store.
type PreferencesBackend struct {
	prefs interfaces.PreferenceStore
	key   string
}

func NewPreferencesBackend(prefs interfaces.PreferenceStore, key string) *PreferencesBackend {
	return &PreferencesBackend{prefs: prefs, key: key}
}

func (b *PreferencesBackend) Target() string {
	return "preferences:" + b.key
}

func (b *PreferencesBackend) Save(people []models.Prospect) error {
	data, err := encodePeople(people)
	if err != nil {
		return err
	}
	return b.prefs.Set(b.key, data)
}

func (b *PreferencesBackend) Load() ([]models.Prospect, error) {
	data, ok, err := b.prefs.Get(b.key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return decodePeople(data)
}
