package db

import (
	"github.com/symposiahq/symposia/internal/models"
	"gorm.io/gorm"
)

type CommitteeRepository struct {
	database *gorm.DB
}

func NewCommitteeRepository(database *gorm.DB) *CommitteeRepository {
	return &CommitteeRepository{database: database}
}

func (repo *CommitteeRepository) CreateCommitteeMember(member *models.CommitteeMember) error {
	return repo.database.Create(member).Error
}

func (repo *CommitteeRepository) FindCommitteeMemberByID(memberID uint) (models.CommitteeMember, error) {
	var member models.CommitteeMember
	if err := repo.database.First(&member, memberID).Error; err != nil {
		return models.CommitteeMember{}, notFoundTranslated(err)
	}
	return member, nil
}

func (repo *CommitteeRepository) ListCommitteeMembers(category string) ([]models.CommitteeMember, error) {
	members := make([]models.CommitteeMember, 0)
	query := repo.database.Order("display_order ASC, name ASC")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (repo *CommitteeRepository) SaveCommitteeMember(member *models.CommitteeMember) error {
	return repo.database.Save(member).Error
}

func (repo *CommitteeRepository) DeleteCommitteeMember(memberID uint) error {
	result := repo.database.Delete(&models.CommitteeMember{}, memberID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
