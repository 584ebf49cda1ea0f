package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntervalTrigger(t *testing.T) {
	now := time.Date(2021, 7, 13, 12, 0, 0, 0, time.UTC)
	tr := IntervalTrigger{Interval: 5 * time.Second}
	assert.Equal(t, now.Add(5*time.Second), tr.NextFire(now))
	assert.Equal(t, "in 5s", tr.String())
}

func TestCalendarTrigger(t *testing.T) {
	tr := CalendarTrigger{Hour: 9}

	before := time.Date(2021, 7, 13, 8, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2021, 7, 13, 9, 0, 0, 0, time.UTC), tr.NextFire(before))

	exact := time.Date(2021, 7, 13, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2021, 7, 14, 9, 0, 0, 0, time.UTC), tr.NextFire(exact))

	after := time.Date(2021, 7, 31, 18, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2021, 8, 1, 9, 0, 0, 0, time.UTC), tr.NextFire(after))

	assert.Equal(t, "at 09:00", tr.String())
}

func TestParseAuthorizationStatus(t *testing.T) {
	s, err := ParseAuthorizationStatus("Authorized")
	require.NoError(t, err)
	assert.Equal(t, AuthorizationAuthorized, s)

	s, err = ParseAuthorizationStatus("")
	require.NoError(t, err)
	assert.Equal(t, AuthorizationUnknown, s)

	s, err = ParseAuthorizationStatus("denied")
	require.NoError(t, err)
	assert.Equal(t, "denied", s.String())

	_, err = ParseAuthorizationStatus("provisional")
	assert.Error(t, err)
}

func TestAuthorizationOption_Has(t *testing.T) {
	opts := OptionAlert | OptionSound
	assert.True(t, opts.Has(OptionAlert))
	assert.False(t, opts.Has(OptionBadge))
	assert.True(t, opts.Has(OptionSound))
}
