package db

import (
	"github.com/symposiahq/symposia/internal/models"
	"gorm.io/gorm"
)

type AbstractRepository struct {
	database *gorm.DB
}

func NewAbstractRepository(database *gorm.DB) *AbstractRepository {
	return &AbstractRepository{database: database}
}

func (repo *AbstractRepository) CreateAbstract(abstract *models.Abstract) error {
	return repo.database.Create(abstract).Error
}

func (repo *AbstractRepository) FindAbstractByID(abstractID uint) (models.Abstract, error) {
	var abstract models.Abstract
	if err := repo.database.First(&abstract, abstractID).Error; err != nil {
		return models.Abstract{}, notFoundTranslated(err)
	}
	return abstract, nil
}

func (repo *AbstractRepository) ListAbstractsByUser(userID uint) ([]models.Abstract, error) {
	abstracts := make([]models.Abstract, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&abstracts).Error; err != nil {
		return nil, err
	}
	return abstracts, nil
}

func (repo *AbstractRepository) ListAbstracts() ([]models.Abstract, error) {
	abstracts := make([]models.Abstract, 0)
	if err := repo.database.Order("updated_at DESC").Find(&abstracts).Error; err != nil {
		return nil, err
	}
	return abstracts, nil
}

func (repo *AbstractRepository) SaveAbstract(abstract *models.Abstract) error {
	return repo.database.Save(abstract).Error
}

func (repo *AbstractRepository) DeleteAbstract(abstractID uint) error {
	result := repo.database.Delete(&models.Abstract{}, abstractID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
