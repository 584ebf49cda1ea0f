package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrMalformedScan = errors.New("malformed scan payload")
	ErrScanFailed    = errors.New("scanning failed")
)

// ScanResult is what the scanning collaborator hands over: either a payload or an error message.
type ScanResult struct {
	Payload string `json:"payload"`
	Error   string `json:"error,omitempty"`
}

// ParseScan expects "name\nemail". Any other line count is rejected.
func ParseScan(payload string, now time.Time) (Prospect, error) {
	details := strings.Split(payload, "\n")
	if len(details) != 2 {
		return Prospect{}, fmt.Errorf("%w: expected 2 lines, got %d", ErrMalformedScan, len(details))
	}
	return NewProspect(strings.TrimSpace(details[0]), strings.TrimSpace(details[1]), now), nil
}
