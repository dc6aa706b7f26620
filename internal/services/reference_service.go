package services

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/symposiahq/symposia/internal/db"
	"github.com/symposiahq/symposia/internal/models"
)

// ReferenceService owns the public read rules for the admin-managed
// reference data: committee members, research awards and site
// notifications.
type ReferenceService struct {
	notifications db.NotificationStore
	committee     db.CommitteeStore
	awards        db.AwardStore
	log           *logrus.Logger
}

func NewReferenceService(notifications db.NotificationStore, committee db.CommitteeStore, awards db.AwardStore, log *logrus.Logger) *ReferenceService {
	return &ReferenceService{notifications: notifications, committee: committee, awards: awards, log: log}
}

// VisibleNotifications filters on the active flag and, when set, expiry.
func (service *ReferenceService) VisibleNotifications() ([]models.Notification, error) {
	return service.notifications.ListVisibleNotifications(time.Now())
}

// PublicCommittee fails open: a store error on this public read is logged
// and degraded to an empty list instead of an error page.
func (service *ReferenceService) PublicCommittee(category string) []models.CommitteeMember {
	members, err := service.committee.ListCommitteeMembers(category)
	if err != nil {
		service.log.WithError(err).Warn("committee listing degraded to empty response")
		return []models.CommitteeMember{}
	}
	return members
}

// PublicAwards returns only active awards.
func (service *ReferenceService) PublicAwards() ([]models.ResearchAward, error) {
	return service.awards.ListAwards(true)
}
