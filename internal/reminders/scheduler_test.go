package reminders

import (
	"context"
	"hotprospects/internal/models"
	"hotprospects/internal/providers"
	"hotprospects/internal/structures"
	"hotprospects/internal/testutil"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intervalConfig(delay time.Duration) *structures.Config {
	return &structures.Config{
		Reminders: structures.RemindersConfig{
			Trigger: structures.TriggerInterval,
			Delay:   delay,
		},
	}
}

func newTestScheduler(center *testutil.MockNotificationCenter) (*Scheduler, *testutil.MockLogger, *testutil.MockMetrics) {
	logger := &testutil.MockLogger{}
	metrics := &testutil.MockMetrics{}
	s := NewScheduler(center, intervalConfig(5*time.Second), logger, metrics).(*Scheduler)
	return s, logger, metrics
}

func luka() models.Prospect {
	return models.NewProspect("Luka", "luka@example.com", time.Now())
}

func TestScheduler_Authorized(t *testing.T) {
	center := &testutil.MockNotificationCenter{Status: models.AuthorizationAuthorized}
	s, _, metrics := newTestScheduler(center)
	p := luka()

	n, err := s.Remind(context.Background(), p)
	require.NoError(t, err)

	assert.Empty(t, center.RequestCalls, "no permission prompt when already authorized")
	require.Len(t, center.Scheduled, 1)
	assert.Equal(t, n, center.Scheduled[0])
	assert.Equal(t, "Contact Luka", n.Title)
	assert.Equal(t, "luka@example.com", n.Subtitle)
	assert.True(t, n.Sound)
	assert.Equal(t, p.ID, n.ProspectID)
	assert.NotEmpty(t, n.ID)
	assert.Equal(t, models.IntervalTrigger{Interval: 5 * time.Second}, n.Trigger)
	assert.Equal(t, 1, metrics.ReminderCount(providers.ReminderScheduled))
}

func TestScheduler_UnknownThenGranted(t *testing.T) {
	center := &testutil.MockNotificationCenter{Status: models.AuthorizationUnknown, Grant: true}
	s, _, _ := newTestScheduler(center)

	_, err := s.Remind(context.Background(), luka())
	require.NoError(t, err)

	require.Len(t, center.RequestCalls, 1)
	opts := center.RequestCalls[0]
	assert.True(t, opts.Has(models.OptionAlert))
	assert.True(t, opts.Has(models.OptionBadge))
	assert.True(t, opts.Has(models.OptionSound))
	assert.Len(t, center.Scheduled, 1)
}

func TestScheduler_Denied(t *testing.T) {
	center := &testutil.MockNotificationCenter{Status: models.AuthorizationUnknown, Grant: false}
	s, logger, metrics := newTestScheduler(center)

	_, err := s.Remind(context.Background(), luka())
	assert.ErrorIs(t, err, models.ErrNotAuthorized)
	assert.Empty(t, center.Scheduled)
	assert.Len(t, logger.Entries("warn"), 1)
	assert.Equal(t, 1, metrics.ReminderCount(providers.ReminderDenied))
	assert.Zero(t, metrics.ReminderCount(providers.ReminderScheduled))
}

func TestScheduler_PreviouslyDeniedAsksAgain(t *testing.T) {
	center := &testutil.MockNotificationCenter{Status: models.AuthorizationDenied, Grant: false}
	s, _, _ := newTestScheduler(center)

	_, err := s.Remind(context.Background(), luka())
	assert.ErrorIs(t, err, models.ErrNotAuthorized)
	assert.Len(t, center.RequestCalls, 1)
}

func TestScheduler_RequestError(t *testing.T) {
	center := &testutil.MockNotificationCenter{RequestErr: testutil.ErrMockCenter}
	s, logger, metrics := newTestScheduler(center)

	_, err := s.Remind(context.Background(), luka())
	assert.ErrorIs(t, err, models.ErrNotAuthorized)
	assert.ErrorIs(t, err, testutil.ErrMockCenter)
	assert.Empty(t, center.Scheduled)
	require.Len(t, logger.Entries("warn"), 1)
	assert.Contains(t, logger.Entries("warn")[0].Message(), testutil.ErrMockCenter.Error())
	assert.Equal(t, 1, metrics.ReminderCount(providers.ReminderDenied))
}

func TestScheduler_StatusError(t *testing.T) {
	center := &testutil.MockNotificationCenter{StatusErr: testutil.ErrMockCenter}
	s, logger, metrics := newTestScheduler(center)

	_, err := s.Remind(context.Background(), luka())
	assert.ErrorIs(t, err, testutil.ErrMockCenter)
	assert.Empty(t, center.RequestCalls)
	assert.Empty(t, center.Scheduled)
	assert.Len(t, logger.Entries("error"), 1)
	assert.Equal(t, 1, metrics.ReminderCount(providers.ReminderFailed))
}

func TestScheduler_ScheduleError(t *testing.T) {
	center := &testutil.MockNotificationCenter{Status: models.AuthorizationAuthorized, ScheduleErr: testutil.ErrMockCenter}
	s, logger, metrics := newTestScheduler(center)

	_, err := s.Remind(context.Background(), luka())
	assert.ErrorIs(t, err, testutil.ErrMockCenter)
	assert.Len(t, logger.Entries("error"), 1)
	assert.Equal(t, 1, metrics.ReminderCount(providers.ReminderFailed))
}

func TestScheduler_EachRequestIsIndependent(t *testing.T) {
	center := &testutil.MockNotificationCenter{Status: models.AuthorizationAuthorized}
	s, _, _ := newTestScheduler(center)
	p := luka()

	a, err := s.Remind(context.Background(), p)
	require.NoError(t, err)
	b, err := s.Remind(context.Background(), p)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Len(t, center.Scheduled, 2)
}

func TestTriggerFromConfig(t *testing.T) {
	assert.Equal(t, models.IntervalTrigger{Interval: 5 * time.Second},
		TriggerFromConfig(structures.RemindersConfig{Trigger: structures.TriggerInterval}))
	assert.Equal(t, models.IntervalTrigger{Interval: time.Minute},
		TriggerFromConfig(structures.RemindersConfig{Trigger: structures.TriggerInterval, Delay: time.Minute}))
	assert.Equal(t, models.CalendarTrigger{Hour: 9},
		TriggerFromConfig(structures.RemindersConfig{Trigger: structures.TriggerCalendar, Hour: 9}))
}
