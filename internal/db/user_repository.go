package db

import (
	"errors"

	"github.com/symposiahq/symposia/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func notFoundTranslated(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (repo *UserRepository) CreateUser(user *models.User) error {
	return repo.database.Create(user).Error
}

func (repo *UserRepository) FindUserByID(userID uint) (models.User, error) {
	var user models.User
	if err := repo.database.First(&user, userID).Error; err != nil {
		return models.User{}, notFoundTranslated(err)
	}
	return user, nil
}

func (repo *UserRepository) FindUserByUsername(username string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("username = ?", username).First(&user).Error; err != nil {
		return models.User{}, notFoundTranslated(err)
	}
	return user, nil
}

func (repo *UserRepository) FindUserByEmail(email string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("lower(trim(email)) = ?", email).First(&user).Error; err != nil {
		return models.User{}, notFoundTranslated(err)
	}
	return user, nil
}

func (repo *UserRepository) IdentityTaken(username string, email string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("username = ? OR lower(trim(email)) = ?", username, email).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) ListUsers() ([]models.User, error) {
	users := make([]models.User, 0)
	if err := repo.database.Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (repo *UserRepository) UpdateUserRole(userID uint, role string) error {
	result := repo.database.Model(&models.User{}).Where("id = ?", userID).Update("role", role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
