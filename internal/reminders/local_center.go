package reminders

import (
	"context"
	"fmt"
	"hotprospects/internal/models"
	"hotprospects/internal/providers"
	"hotprospects/internal/reminders/interfaces"
	"hotprospects/internal/structures"
	"slices"
	"sync"
	"time"
)

// LocalCenter is an in-process notification center. Authorization is decided
// once, from configuration, and sticks like an OS permission prompt.
type LocalCenter struct {
	mu        sync.Mutex
	status    models.AuthorizationStatus
	autoGrant bool
	pending   map[string]*pendingEntry
	closed    bool

	logger providers.Logger
	now    func() time.Time

	// OnDeliver, when set, is called from the timer goroutine for each fired notification.
	OnDeliver func(models.Notification)
}

type pendingEntry struct {
	notification models.PendingNotification
	timer        *time.Timer
}

var _ interfaces.NotificationCenterInterface = (*LocalCenter)(nil)

func NewLocalCenter(conf *structures.Config, logger providers.Logger) (*LocalCenter, error) {
	status, err := models.ParseAuthorizationStatus(conf.Reminders.Authorization)
	if err != nil {
		return nil, err
	}
	return &LocalCenter{
		status:    status,
		autoGrant: conf.Reminders.AutoGrant,
		pending:   make(map[string]*pendingEntry),
		logger:    logger,
		now:       time.Now,
	}, nil
}

func (c *LocalCenter) AuthorizationStatus(ctx context.Context) (models.AuthorizationStatus, error) {
	if err := ctx.Err(); err != nil {
		return models.AuthorizationUnknown, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status, nil
}

func (c *LocalCenter) RequestAuthorization(ctx context.Context, opts models.AuthorizationOption) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status == models.AuthorizationUnknown {
		if c.autoGrant && opts.Has(models.OptionAlert) {
			c.status = models.AuthorizationAuthorized
		} else {
			c.status = models.AuthorizationDenied
		}
		c.logger.Infof(providers.TypeReminder, "Notification permission %s", c.status)
	}
	return c.status == models.AuthorizationAuthorized, nil
}

func (c *LocalCenter) Schedule(ctx context.Context, n models.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if n.Trigger == nil {
		return fmt.Errorf("notification %s has no trigger", n.ID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return fmt.Errorf("notification center closed")
	}
	if c.status != models.AuthorizationAuthorized {
		return models.ErrNotAuthorized
	}
	if _, exists := c.pending[n.ID]; exists {
		return fmt.Errorf("notification %s already scheduled", n.ID)
	}

	now := c.now()
	fireAt := n.Trigger.NextFire(now)
	entry := &pendingEntry{notification: models.PendingNotification{Notification: n, FireAt: fireAt}}
	entry.timer = time.AfterFunc(fireAt.Sub(now), func() { c.deliver(n.ID) })
	c.pending[n.ID] = entry
	return nil
}

func (c *LocalCenter) deliver(id string) {
	c.mu.Lock()
	entry, ok := c.pending[id]
	if ok {
		delete(c.pending, id)
	}
	hook := c.OnDeliver
	c.mu.Unlock()
	if !ok {
		return
	}

	n := entry.notification.Notification
	c.logger.Infof(providers.TypeReminder, "%s: %s", n.Title, n.Subtitle)
	if hook != nil {
		hook(n)
	}
}

// Pending lists undelivered notifications ordered by fire time.
func (c *LocalCenter) Pending() []models.PendingNotification {
	c.mu.Lock()
	out := make([]models.PendingNotification, 0, len(c.pending))
	for _, e := range c.pending {
		out = append(out, e.notification)
	}
	c.mu.Unlock()

	slices.SortFunc(out, func(a, b models.PendingNotification) int {
		return a.FireAt.Compare(b.FireAt)
	})
	return out
}

func (c *LocalCenter) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for id, e := range c.pending {
		e.timer.Stop()
		delete(c.pending, id)
	}
	c.closed = true
}
