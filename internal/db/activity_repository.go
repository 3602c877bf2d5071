package db

import (
	"github.com/lunelabs/cyclefem/internal/models"
	"gorm.io/gorm"
)

type ActivityRepository struct {
	database *gorm.DB
}

func NewActivityRepository(database *gorm.DB) *ActivityRepository {
	return &ActivityRepository{database: database}
}

func (repo *ActivityRepository) ListForUser(userID uint) ([]models.Activity, error) {
	activities := make([]models.Activity, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (repo *ActivityRepository) Create(activity *models.Activity) error {
	return repo.database.Create(activity).Error
}

func (repo *ActivityRepository) DeleteForUser(activityID uint, userID uint) (bool, error) {
	result := repo.database.Where("id = ? AND user_id = ?", activityID, userID).Delete(&models.Activity{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
