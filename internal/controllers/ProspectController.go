package controllers

import (
	"errors"
	"fmt"
	json "github.com/goccy/go-json"
	"hotprospects/internal/models"
	"hotprospects/internal/providers"
	"hotprospects/internal/reminders/interfaces"
	"hotprospects/internal/services"
	"net/http"

	"github.com/google/uuid"
)

const maxRequestBodySize = 1 << 20 // 1 MB

type ProspectController struct {
	logger    providers.Logger
	store     services.ProspectServiceInterface
	scans     services.ScanServiceInterface
	reminders interfaces.ReminderSchedulerInterface
	center    interfaces.NotificationCenterInterface
	cache     providers.CacheProviderInterface
}

type listResponse struct {
	Title     string            `json:"title"`
	Filter    string            `json:"filter"`
	Sort      string            `json:"sort"`
	Version   uint64            `json:"version"`
	Prospects []models.Prospect `json:"prospects"`
}

func NewProspectController(
	logger providers.Logger,
	store services.ProspectServiceInterface,
	scans services.ScanServiceInterface,
	reminders interfaces.ReminderSchedulerInterface,
	center interfaces.NotificationCenterInterface,
	cache providers.CacheProviderInterface,
) *ProspectController {
	return &ProspectController{
		logger:    logger,
		store:     store,
		scans:     scans,
		reminders: reminders,
		center:    center,
		cache:     cache,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	gson, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

func getID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(r.URL.Query().Get("id"))
}

// GetProspects renders the filtered and sorted list. Responses are cached per store
// version, so a mutation makes every older entry unreachable.
func (pc *ProspectController) GetProspects(w http.ResponseWriter, r *http.Request) {
	filter, err := models.ParseFilterMode(r.URL.Query().Get("filter"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	sort, err := models.ParseSortMode(r.URL.Query().Get("sort"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	snap := pc.store.GetSnapshot()
	cacheKey := fmt.Sprintf("list:%d:%s:%s", snap.Version, filter, sort)
	if data, ok := pc.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	gson, err := json.Marshal(listResponse{
		Title:     filter.Title(),
		Filter:    filter.String(),
		Sort:      sort.String(),
		Version:   snap.Version,
		Prospects: models.Arrange(snap.People, filter, sort),
	})
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	pc.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func (pc *ProspectController) Scan(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload models.ScanResult
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	p, err := pc.scans.Ingest(payload)
	switch {
	case err == nil:
		writeJSON(w, http.StatusCreated, p)
	case errors.Is(err, models.ErrMalformedScan):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, models.ErrScanFailed):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, models.ErrDuplicateProspect):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func (pc *ProspectController) Toggle(w http.ResponseWriter, r *http.Request) {
	id, err := getID(r)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	p, err := pc.store.Toggle(id)
	if err != nil {
		if errors.Is(err, models.ErrProspectNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Remind is only offered for prospects that have not been contacted yet.
func (pc *ProspectController) Remind(w http.ResponseWriter, r *http.Request) {
	id, err := getID(r)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	p, ok := pc.store.Get(id)
	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	if p.IsContacted {
		http.Error(w, "prospect already contacted", http.StatusConflict)
		return
	}

	n, err := pc.reminders.Remind(r.Context(), p)
	if err != nil {
		if errors.Is(err, models.ErrNotAuthorized) {
			http.Error(w, "notifications not authorized", http.StatusForbidden)
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusAccepted, n)
}

func (pc *ProspectController) GetReminders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, pc.center.Pending())
}
