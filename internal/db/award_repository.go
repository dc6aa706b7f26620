package db

import (
	"github.com/symposiahq/symposia/internal/models"
	"gorm.io/gorm"
)

type AwardRepository struct {
	database *gorm.DB
}

func NewAwardRepository(database *gorm.DB) *AwardRepository {
	return &AwardRepository{database: database}
}

func (repo *AwardRepository) CreateAward(award *models.ResearchAward) error {
	return repo.database.Create(award).Error
}

func (repo *AwardRepository) FindAwardByID(awardID uint) (models.ResearchAward, error) {
	var award models.ResearchAward
	if err := repo.database.First(&award, awardID).Error; err != nil {
		return models.ResearchAward{}, notFoundTranslated(err)
	}
	return award, nil
}

func (repo *AwardRepository) ListAwards(activeOnly bool) ([]models.ResearchAward, error) {
	awards := make([]models.ResearchAward, 0)
	query := repo.database.Order("created_at ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&awards).Error; err != nil {
		return nil, err
	}
	return awards, nil
}

func (repo *AwardRepository) SaveAward(award *models.ResearchAward) error {
	return repo.database.Save(award).Error
}

func (repo *AwardRepository) DeleteAward(awardID uint) error {
	result := repo.database.Delete(&models.ResearchAward{}, awardID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
