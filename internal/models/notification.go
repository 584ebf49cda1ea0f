package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrNotAuthorized = errors.New("notifications not authorized")

type AuthorizationStatus int

const (
	AuthorizationUnknown AuthorizationStatus = iota
	AuthorizationDenied
	AuthorizationAuthorized
)

func ParseAuthorizationStatus(s string) (AuthorizationStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unknown", "notdetermined":
		return AuthorizationUnknown, nil
	case "denied":
		return AuthorizationDenied, nil
	case "authorized":
		return AuthorizationAuthorized, nil
	}
	return AuthorizationUnknown, fmt.Errorf("unknown authorization status %q", s)
}

func (s AuthorizationStatus) String() string {
	switch s {
	case AuthorizationDenied:
		return "denied"
	case AuthorizationAuthorized:
		return "authorized"
	default:
		return "unknown"
	}
}

type AuthorizationOption uint8

const (
	OptionAlert AuthorizationOption = 1 << iota
	OptionBadge
	OptionSound
)

func (o AuthorizationOption) Has(flag AuthorizationOption) bool {
	return o&flag != 0
}

// Trigger decides when a one-shot notification fires.
type Trigger interface {
	NextFire(now time.Time) time.Time
	String() string
}

// IntervalTrigger fires once, Interval after scheduling.
type IntervalTrigger struct {
	Interval time.Duration
}

func (t IntervalTrigger) NextFire(now time.Time) time.Time {
	return now.Add(t.Interval)
}

func (t IntervalTrigger) String() string {
	return "in " + t.Interval.String()
}

// CalendarTrigger fires at the next Hour:Minute strictly after now, in now's location.
type CalendarTrigger struct {
	Hour   int
	Minute int
}

func (t CalendarTrigger) NextFire(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), t.Hour, t.Minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

func (t CalendarTrigger) String() string {
	return fmt.Sprintf("at %02d:%02d", t.Hour, t.Minute)
}

type Notification struct {
	ID         string    `json:"id"`
	ProspectID uuid.UUID `json:"prospectId"`
	Title      string    `json:"title"`
	Subtitle   string    `json:"subtitle"`
	Sound      bool      `json:"sound"`
	Trigger    Trigger   `json:"-"`
}

type PendingNotification struct {
	Notification
	FireAt time.Time `json:"fireAt"`
}
