package services

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/symposiahq/symposia/internal/db"
)

// MaintenanceService sweeps expired session rows on a schedule. Invitation
// expiry needs no sweep: Resolve re-checks the deadline on every call.
type MaintenanceService struct {
	sessions  db.SessionStore
	log       *logrus.Logger
	scheduler *cron.Cron
}

func NewMaintenanceService(sessions db.SessionStore, log *logrus.Logger) *MaintenanceService {
	return &MaintenanceService{
		sessions:  sessions,
		log:       log,
		scheduler: cron.New(),
	}
}

func (service *MaintenanceService) Start() error {
	if _, err := service.scheduler.AddFunc("@hourly", service.sweep); err != nil {
		return err
	}
	service.scheduler.Start()
	return nil
}

func (service *MaintenanceService) Stop() {
	<-service.scheduler.Stop().Done()
}

func (service *MaintenanceService) sweep() {
	purged, err := service.sessions.PurgeExpiredSessions(time.Now())
	if err != nil {
		service.log.WithError(err).Warn("session sweep failed")
		return
	}
	if purged > 0 {
		service.log.WithField("purged", purged).Info("expired sessions removed")
	}
}
