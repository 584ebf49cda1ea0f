package services

import (
	"fmt"
	"hotprospects/internal/models"
	"hotprospects/internal/providers"
	"time"
)

type ScanServiceInterface interface {
	Ingest(result models.ScanResult) (models.Prospect, error)
}

// ScanService turns scanner output into prospects. Parsing never touches the store;
// only a well-formed payload reaches Add.
type ScanService struct {
	store  ProspectServiceInterface
	logger providers.Logger
	now    func() time.Time
}

func NewScanService(store ProspectServiceInterface, logger providers.Logger) ScanServiceInterface {
	return &ScanService{store: store, logger: logger, now: time.Now}
}

func (ss *ScanService) Ingest(result models.ScanResult) (models.Prospect, error) {
	if result.Error != "" {
		ss.logger.Warnf(providers.TypeScan, "Scanning failed: %s", result.Error)
		return models.Prospect{}, fmt.Errorf("%w: %s", models.ErrScanFailed, result.Error)
	}

	p, err := models.ParseScan(result.Payload, ss.now())
	if err != nil {
		ss.logger.Warnf(providers.TypeScan, "Discarding scan: %s", err)
		return models.Prospect{}, err
	}

	added, err := ss.store.Add(p)
	if err != nil {
		ss.logger.Errorf(providers.TypeScan, "Unable to add scanned prospect: %s", err)
		return models.Prospect{}, err
	}
	ss.logger.Infof(providers.TypeScan, "Scanned prospect %s", added.ID)
	return added, nil
}
