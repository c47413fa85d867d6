package services

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"github.com/workconnect/workconnect-core/internal/logger"
)

type vacuumableStore interface {
	Vacuum(ctx context.Context) error
}

// StoreMaintenance compacts the store database on a nightly schedule.
// Every mutation rewrites whole collection blobs, so the file accumulates
// dead pages quickly on busy days.
type StoreMaintenance struct {
	store vacuumableStore
	cron  *cron.Cron
}

func NewStoreMaintenance(store vacuumableStore) (*StoreMaintenance, error) {
	m := &StoreMaintenance{
		store: store,
		cron:  cron.New(),
	}

	_, err := m.cron.AddFunc("0 3 * * *", m.vacuum)
	if err != nil {
		return nil, err
	}

	m.cron.Start()
	log.Info("store maintenance started")
	return m, nil
}

func (m *StoreMaintenance) Stop() {
	m.cron.Stop()
}

func (m *StoreMaintenance) vacuum() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := m.store.Vacuum(ctx); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeStore).
			Errorf("failed to vacuum store: %v", err)
		return
	}
	log.Info("store vacuumed")
}
