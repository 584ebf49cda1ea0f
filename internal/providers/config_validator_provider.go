package providers

import (
	"fmt"
	"hotprospects/internal/structures"

	"github.com/gookit/validate"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

// Validate applies the struct tag rules, then the checks that depend on more than one field.
func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	if !v.Validate() {
		return v.Errors
	}

	p := cv.conf.Persistence
	switch p.Backend {
	case structures.BackendFile:
		if p.FileName == "" {
			return fmt.Errorf("persistence.fileName is required for the %q backend", p.Backend)
		}
	case structures.BackendPreferences:
		if p.PreferencesFile == "" || p.Key == "" {
			return fmt.Errorf("persistence.preferencesFile and persistence.key are required for the %q backend", p.Backend)
		}
	}

	r := cv.conf.Reminders
	if r.Trigger == structures.TriggerInterval && r.Delay <= 0 {
		return fmt.Errorf("reminders.delay must be positive for the %q trigger", r.Trigger)
	}

	if cv.conf.Cache.Enabled && cv.conf.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must not be negative")
	}
	return nil
}
