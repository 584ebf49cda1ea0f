package services

import (
	"fmt"
	"hotprospects/internal/models"
	"hotprospects/internal/persistence/interfaces"
	"hotprospects/internal/providers"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

type ProspectServiceInterface interface {
	Add(p models.Prospect) (models.Prospect, error)
	Toggle(id uuid.UUID) (models.Prospect, error)
	Get(id uuid.UUID) (models.Prospect, bool)
	GetSnapshot() models.Snapshot
	Count() (total, contacted int)
	Subscribe(fn func(models.Snapshot)) (unsubscribe func())
	Persist() error
}

// ProspectService owns the prospect list. Every mutation is saved before the
// method returns; subscribers are called afterwards with the new snapshot.
type ProspectService struct {
	mu      sync.RWMutex
	people  []models.Prospect
	index   map[uuid.UUID]int
	version uint64

	subMu  sync.Mutex
	subs   map[int]func(models.Snapshot)
	nextID int

	backend interfaces.BackendInterface
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
	now     func() time.Time
}

func NewProspectService(backend interfaces.BackendInterface, logger providers.Logger, metrics providers.MetricsProviderInterface) ProspectServiceInterface {
	return newProspectService(backend, logger, metrics, time.Now)
}

func newProspectService(backend interfaces.BackendInterface, logger providers.Logger, metrics providers.MetricsProviderInterface, now func() time.Time) *ProspectService {
	s := &ProspectService{
		index:   make(map[uuid.UUID]int),
		subs:    make(map[int]func(models.Snapshot)),
		backend: backend,
		logger:  logger,
		metrics: metrics,
		now:     now,
	}
	s.people = s.load()
	for i, p := range s.people {
		s.index[p.ID] = i
	}
	return s
}

// load never fails: unreadable or corrupt data leaves the store empty.
func (s *ProspectService) load() []models.Prospect {
	people, err := s.backend.Load()
	if err != nil {
		s.logger.Errorf(providers.TypeStore, "Unable to load prospects from %s, starting empty: %s", s.backend.Target(), err)
		return []models.Prospect{}
	}
	if len(people) == 0 {
		s.logger.Infof(providers.TypeStore, "No saved prospects in %s", s.backend.Target())
		return []models.Prospect{}
	}

	out := make([]models.Prospect, 0, len(people))
	seen := make(map[uuid.UUID]struct{}, len(people))
	for _, p := range people {
		if _, dup := seen[p.ID]; dup || p.ID == uuid.Nil {
			s.logger.Warnf(providers.TypeStore, "Skipping saved prospect with invalid or duplicate id %s", p.ID)
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	s.logger.Infof(providers.TypeStore, "Loaded %d prospects from %s", len(out), s.backend.Target())
	return out
}

func (s *ProspectService) Add(p models.Prospect) (models.Prospect, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Name == "" {
		p.Name = models.DefaultProspectName
	}
	if p.CreateDate.IsZero() {
		p.CreateDate = s.now().UTC()
	}

	s.mu.Lock()
	if _, exists := s.index[p.ID]; exists {
		s.mu.Unlock()
		return models.Prospect{}, fmt.Errorf("%w: %s", models.ErrDuplicateProspect, p.ID)
	}
	s.index[p.ID] = len(s.people)
	s.people = append(s.people, p)
	snap := s.commitLocked()
	s.mu.Unlock()

	s.logger.Debugf(providers.TypeStore, "Added prospect %s", p.ID)
	s.notify(snap)
	return p, nil
}

func (s *ProspectService) Toggle(id uuid.UUID) (models.Prospect, error) {
	s.mu.Lock()
	i, ok := s.index[id]
	if !ok {
		s.mu.Unlock()
		s.logger.Errorf(providers.TypeStore, "Toggle of unknown prospect %s", id)
		return models.Prospect{}, fmt.Errorf("%w: %s", models.ErrProspectNotFound, id)
	}
	s.people[i].IsContacted = !s.people[i].IsContacted
	p := s.people[i]
	snap := s.commitLocked()
	s.mu.Unlock()

	s.logger.Debugf(providers.TypeStore, "Prospect %s contacted=%t", id, p.IsContacted)
	s.notify(snap)
	return p, nil
}

func (s *ProspectService) Get(id uuid.UUID) (models.Prospect, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		return models.Prospect{}, false
	}
	return s.people[i], true
}

func (s *ProspectService) GetSnapshot() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *ProspectService) Count() (total, contacted int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.people {
		if p.IsContacted {
			contacted++
		}
	}
	return len(s.people), contacted
}

// Subscribe registers fn for every later mutation. Deliveries from concurrent
// mutations may arrive out of order; Snapshot.Version orders them.
func (s *ProspectService) Subscribe(fn func(models.Snapshot)) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

// Persist writes the current list and reports the error, unlike mutations which only log it.
func (s *ProspectService) Persist() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saveLocked()
}

// commitLocked saves, bumps the version and returns the new snapshot. A failed
// save is logged and the in-memory change is kept.
func (s *ProspectService) commitLocked() models.Snapshot {
	if err := s.saveLocked(); err != nil {
		s.logger.Errorf(providers.TypeStore, "Error while persisting prospects: %s", err)
	}
	s.version++
	return s.snapshotLocked()
}

func (s *ProspectService) saveLocked() error {
	start := time.Now()
	err := s.backend.Save(s.people)
	s.metrics.ObservePersistenceDuration(time.Since(start))
	if err != nil {
		s.metrics.IncPersistenceErrors()
		return fmt.Errorf("save to %s: %w", s.backend.Target(), err)
	}
	return nil
}

func (s *ProspectService) snapshotLocked() models.Snapshot {
	return models.Snapshot{Version: s.version, People: slices.Clone(s.people)}
}

func (s *ProspectService) notify(snap models.Snapshot) {
	s.subMu.Lock()
	subs := make([]func(models.Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.subMu.Unlock()

	for _, fn := range subs {
		// each subscriber gets its own copy
		fn(models.Snapshot{Version: snap.Version, People: slices.Clone(snap.People)})
	}
}
