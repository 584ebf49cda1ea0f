package reminders

import (
	"context"
	"hotprospects/internal/models"
	"hotprospects/internal/structures"
	"hotprospects/internal/testutil"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCenter(t *testing.T, authorization string, autoGrant bool) *LocalCenter {
	t.Helper()
	conf := &structures.Config{
		Reminders: structures.RemindersConfig{Authorization: authorization, AutoGrant: autoGrant},
	}
	c, err := NewLocalCenter(conf, &testutil.MockLogger{})
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

func notification(id string, trigger models.Trigger) models.Notification {
	return models.Notification{ID: id, ProspectID: uuid.New(), Title: "Contact Luka", Subtitle: "luka@example.com", Sound: true, Trigger: trigger}
}

func TestNewLocalCenter_InvalidAuthorization(t *testing.T) {
	conf := &structures.Config{Reminders: structures.RemindersConfig{Authorization: "maybe"}}
	_, err := NewLocalCenter(conf, &testutil.MockLogger{})
	assert.Error(t, err)
}

func TestLocalCenter_AutoGrant(t *testing.T) {
	c := newCenter(t, "unknown", true)
	ctx := context.Background()

	status, err := c.AuthorizationStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.AuthorizationUnknown, status)

	granted, err := c.RequestAuthorization(ctx, models.OptionAlert|models.OptionSound)
	require.NoError(t, err)
	assert.True(t, granted)

	status, _ = c.AuthorizationStatus(ctx)
	assert.Equal(t, models.AuthorizationAuthorized, status)
}

func TestLocalCenter_DecisionIsSticky(t *testing.T) {
	c := newCenter(t, "unknown", false)
	ctx := context.Background()

	granted, err := c.RequestAuthorization(ctx, models.OptionAlert)
	require.NoError(t, err)
	assert.False(t, granted)

	c.autoGrant = true
	granted, err = c.RequestAuthorization(ctx, models.OptionAlert)
	require.NoError(t, err)
	assert.False(t, granted, "a denied prompt is not shown again")
}

func TestLocalCenter_NoAlertOptionIsDenied(t *testing.T) {
	c := newCenter(t, "unknown", true)

	granted, err := c.RequestAuthorization(context.Background(), models.OptionBadge)
	require.NoError(t, err)
	assert.False(t, granted)
}

func TestLocalCenter_ScheduleRequiresAuthorization(t *testing.T) {
	c := newCenter(t, "denied", true)

	err := c.Schedule(context.Background(), notification("n1", models.IntervalTrigger{Interval: time.Hour}))
	assert.ErrorIs(t, err, models.ErrNotAuthorized)
	assert.Empty(t, c.Pending())
}

func TestLocalCenter_ScheduleRejectsMissingTrigger(t *testing.T) {
	c := newCenter(t, "authorized", false)
	assert.Error(t, c.Schedule(context.Background(), notification("n1", nil)))
}

func TestLocalCenter_ScheduleRejectsDuplicateID(t *testing.T) {
	c := newCenter(t, "authorized", false)
	ctx := context.Background()

	require.NoError(t, c.Schedule(ctx, notification("n1", models.IntervalTrigger{Interval: time.Hour})))
	assert.Error(t, c.Schedule(ctx, notification("n1", models.IntervalTrigger{Interval: time.Hour})))
	assert.Len(t, c.Pending(), 1)
}

func TestLocalCenter_CanceledContext(t *testing.T) {
	c := newCenter(t, "authorized", false)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.AuthorizationStatus(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = c.RequestAuthorization(ctx, models.OptionAlert)
	assert.ErrorIs(t, err, context.Canceled)
	err = c.Schedule(ctx, notification("n1", models.IntervalTrigger{Interval: time.Hour}))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLocalCenter_PendingOrderedByFireTime(t *testing.T) {
	c := newCenter(t, "authorized", false)
	now := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, c.Schedule(ctx, notification("late", models.IntervalTrigger{Interval: 3 * time.Hour})))
	require.NoError(t, c.Schedule(ctx, notification("calendar", models.CalendarTrigger{Hour: 9})))
	require.NoError(t, c.Schedule(ctx, notification("soon", models.IntervalTrigger{Interval: 5 * time.Minute})))

	pending := c.Pending()
	require.Len(t, pending, 3)
	assert.Equal(t, "soon", pending[0].ID)
	assert.Equal(t, "calendar", pending[1].ID)
	assert.Equal(t, now.Add(time.Hour), pending[1].FireAt)
	assert.Equal(t, "late", pending[2].ID)
}

func TestLocalCenter_Delivers(t *testing.T) {
	c := newCenter(t, "authorized", false)
	delivered := make(chan models.Notification, 1)
	c.OnDeliver = func(n models.Notification) { delivered <- n }

	n := notification("n1", models.IntervalTrigger{Interval: 10 * time.Millisecond})
	require.NoError(t, c.Schedule(context.Background(), n))

	select {
	case got := <-delivered:
		assert.Equal(t, "n1", got.ID)
		assert.Equal(t, "Contact Luka", got.Title)
	case <-time.After(2 * time.Second):
		t.Fatal("notification was not delivered")
	}
	assert.Empty(t, c.Pending())
}

func TestLocalCenter_CloseCancelsPending(t *testing.T) {
	conf := &structures.Config{Reminders: structures.RemindersConfig{Authorization: "authorized"}}
	c, err := NewLocalCenter(conf, &testutil.MockLogger{})
	require.NoError(t, err)
	delivered := make(chan models.Notification, 1)
	c.OnDeliver = func(n models.Notification) { delivered <- n }

	require.NoError(t, c.Schedule(context.Background(), notification("n1", models.IntervalTrigger{Interval: 50 * time.Millisecond})))
	c.Close()

	assert.Empty(t, c.Pending())
	select {
	case <-delivered:
		t.Fatal("closed center delivered a notification")
	case <-time.After(150 * time.Millisecond):
	}
	assert.Error(t, c.Schedule(context.Background(), notification("n2", models.IntervalTrigger{Interval: time.Hour})))
}

func TestScheduler_WithLocalCenter(t *testing.T) {
	c := newCenter(t, "unknown", true)
	s := NewScheduler(c, intervalConfig(time.Hour), &testutil.MockLogger{}, &testutil.MockMetrics{})

	n, err := s.Remind(context.Background(), luka())
	require.NoError(t, err)

	pending := c.Pending()
	require.Len(t, pending, 1)
	assert.Equal(t, n.ID, pending[0].ID)
}

func TestScheduler_WithLocalCenterDenied(t *testing.T) {
	c := newCenter(t, "unknown", false)
	s := NewScheduler(c, intervalConfig(time.Hour), &testutil.MockLogger{}, &testutil.MockMetrics{})

	_, err := s.Remind(context.Background(), luka())
	assert.ErrorIs(t, err, models.ErrNotAuthorized)
	assert.Empty(t, c.Pending())
}
