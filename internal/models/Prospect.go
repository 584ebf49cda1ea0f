package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const DefaultProspectName = "Anonymous"

var (
	ErrProspectNotFound  = errors.New("prospect not found")
	ErrDuplicateProspect = errors.New("prospect already exists")
)

// Prospect is a contact captured from a scanned code.
// Values handed out by the store are copies; IsContacted only changes through the store.
type Prospect struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	EmailAddress string    `json:"emailAddress"`
	IsContacted  bool      `json:"isContacted"`
	CreateDate   time.Time `json:"createDate"`
}

func NewProspect(name, email string, now time.Time) Prospect {
	if name == "" {
		name = DefaultProspectName
	}
	return Prospect{
		ID:           uuid.New(),
		Name:         name,
		EmailAddress: email,
		CreateDate:   now.UTC(),
	}
}

// Snapshot is an immutable view of the store at a given version.
type Snapshot struct {
	Version uint64     `json:"version"`
	People  []Prospect `json:"people"`
}

func (s Snapshot) Len() int {
	return len(s.People)
}

func (s Snapshot) Contacted() int {
	n := 0
	for _, p := range s.People {
		if p.IsContacted {
			n++
		}
	}
	return n
}
