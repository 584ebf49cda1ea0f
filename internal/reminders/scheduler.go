package reminders

import (
	"context"
	"errors"
	"fmt"
	"hotprospects/internal/models"
	"hotprospects/internal/providers"
	"hotprospects/internal/reminders/interfaces"
	"hotprospects/internal/structures"
	"time"

	"github.com/google/uuid"
)

const requestedOptions = models.OptionAlert | models.OptionBadge | models.OptionSound

// Scheduler asks the notification center for permission when needed and
// schedules a single reminder per request. It never retries and never touches the store.
type Scheduler struct {
	center  interfaces.NotificationCenterInterface
	trigger models.Trigger
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
}

func NewScheduler(center interfaces.NotificationCenterInterface, conf *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface) interfaces.ReminderSchedulerInterface {
	return &Scheduler{
		center:  center,
		trigger: TriggerFromConfig(conf.Reminders),
		logger:  logger,
		metrics: metrics,
	}
}

func TriggerFromConfig(conf structures.RemindersConfig) models.Trigger {
	if conf.Trigger == structures.TriggerCalendar {
		return models.CalendarTrigger{Hour: conf.Hour, Minute: conf.Minute}
	}
	delay := conf.Delay
	if delay <= 0 {
		delay = 5 * time.Second
	}
	return models.IntervalTrigger{Interval: delay}
}

func (s *Scheduler) Remind(ctx context.Context, p models.Prospect) (models.Notification, error) {
	status, err := s.center.AuthorizationStatus(ctx)
	if err != nil {
		s.fail(p, err)
		return models.Notification{}, fmt.Errorf("query notification settings: %w", err)
	}

	if status != models.AuthorizationAuthorized {
		granted, err := s.center.RequestAuthorization(ctx, requestedOptions)
		if err != nil {
			s.logger.Warnf(providers.TypeReminder, "Reminder for %s not scheduled: permission request failed: %s", p.ID, err)
			s.metrics.IncReminders(providers.ReminderDenied)
			return models.Notification{}, fmt.Errorf("%w: %w", models.ErrNotAuthorized, err)
		}
		if !granted {
			s.logger.Warnf(providers.TypeReminder, "Reminder for %s not scheduled: permission denied", p.ID)
			s.metrics.IncReminders(providers.ReminderDenied)
			return models.Notification{}, models.ErrNotAuthorized
		}
	}

	n := models.Notification{
		ID:         uuid.NewString(),
		ProspectID: p.ID,
		Title:      "Contact " + p.Name,
		Subtitle:   p.EmailAddress,
		Sound:      true,
		Trigger:    s.trigger,
	}
	if err := s.center.Schedule(ctx, n); err != nil {
		s.fail(p, err)
		if errors.Is(err, models.ErrNotAuthorized) {
			return models.Notification{}, err
		}
		return models.Notification{}, fmt.Errorf("schedule reminder: %w", err)
	}

	s.metrics.IncReminders(providers.ReminderScheduled)
	s.logger.Infof(providers.TypeReminder, "Reminder %s for %s scheduled %s", n.ID, p.ID, s.trigger)
	return n, nil
}

func (s *Scheduler) fail(p models.Prospect, err error) {
	s.metrics.IncReminders(providers.ReminderFailed)
	s.logger.Errorf(providers.TypeReminder, "Reminder for %s failed: %s", p.ID, err)
}
