package db

import (
	"github.com/symposiahq/symposia/internal/models"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	database *gorm.DB
}

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{database: database}
}

func (repo *ProfileRepository) CreateProfile(profile *models.Profile) error {
	return repo.database.Create(profile).Error
}

func (repo *ProfileRepository) FindProfileByUserID(userID uint) (models.Profile, error) {
	var profile models.Profile
	if err := repo.database.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return models.Profile{}, notFoundTranslated(err)
	}
	return profile, nil
}

func (repo *ProfileRepository) SaveProfile(profile *models.Profile) error {
	return repo.database.Save(profile).Error
}
