package controllers

import (
	"fmt"
	json "github.com/goccy/go-json"
	"hotprospects/internal/services"
	"net/http"
	"time"
)

type HealthController struct {
	store     services.ProspectServiceInterface
	startTime time.Time
}

type healthResponse struct {
	Status        string  `json:"status"`
	Uptime        string  `json:"uptime"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	Prospects     int     `json:"prospects"`
	Contacted     int     `json:"contacted"`
	Version       uint64  `json:"version"`
}

func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(hc.startTime)
	snap := hc.store.GetSnapshot()
	resp := healthResponse{
		Status:        "ok",
		Uptime:        formatDuration(uptime),
		UptimeSeconds: uptime.Seconds(),
		Prospects:     snap.Len(),
		Contacted:     snap.Contacted(),
		Version:       snap.Version,
	}

	gson, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}

func NewHealthController(store services.ProspectServiceInterface) *HealthController {
	return &HealthController{
		store:     store,
		startTime: time.Now(),
	}
}
