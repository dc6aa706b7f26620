package db

import (
	"github.com/symposiahq/symposia/internal/models"
	"gorm.io/gorm"
)

type InvitationRepository struct {
	database *gorm.DB
}

func NewInvitationRepository(database *gorm.DB) *InvitationRepository {
	return &InvitationRepository{database: database}
}

func (repo *InvitationRepository) CreateInvitation(invitation *models.Invitation) error {
	return repo.database.Create(invitation).Error
}

func (repo *InvitationRepository) FindInvitationByToken(token string) (models.Invitation, error) {
	var invitation models.Invitation
	if err := repo.database.Where("token = ?", token).First(&invitation).Error; err != nil {
		return models.Invitation{}, notFoundTranslated(err)
	}
	return invitation, nil
}

func (repo *InvitationRepository) ListInvitations() ([]models.Invitation, error) {
	invitations := make([]models.Invitation, 0)
	if err := repo.database.Order("created_at DESC").Find(&invitations).Error; err != nil {
		return nil, err
	}
	return invitations, nil
}

// ResolveInvitation conditions the status change on the row still being
// pending, so a racing second resolve loses and sees RowsAffected == 0.
func (repo *InvitationRepository) ResolveInvitation(token string, status string, institution string, position string) (bool, error) {
	updates := map[string]any{"status": status}
	if institution != "" {
		updates["institution"] = institution
	}
	if position != "" {
		updates["position"] = position
	}

	result := repo.database.Model(&models.Invitation{}).
		Where("token = ? AND status = ?", token, models.StatusPending).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
