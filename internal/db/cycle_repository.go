package db

import (
	"github.com/lunelabs/cyclefem/internal/models"
	"gorm.io/gorm"
)

type CycleRepository struct {
	database *gorm.DB
}

func NewCycleRepository(database *gorm.DB) *CycleRepository {
	return &CycleRepository{database: database}
}

// ListRecentForUser returns at most limit cycles ordered by start date
// descending, the shape the prediction engine expects.
func (repo *CycleRepository) ListRecentForUser(userID uint, limit int) ([]models.Cycle, error) {
	cycles := make([]models.Cycle, 0)
	query := repo.database.Where("user_id = ?", userID).Order("start_date DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&cycles).Error; err != nil {
		return nil, err
	}
	return cycles, nil
}

func (repo *CycleRepository) ListAllForUser(userID uint) ([]models.Cycle, error) {
	return repo.ListRecentForUser(userID, 0)
}

func (repo *CycleRepository) Create(cycle *models.Cycle) error {
	return repo.database.Create(cycle).Error
}

// FindForUser scopes the lookup to the owning user so one user can never
// address another user's record by id.
func (repo *CycleRepository) FindForUser(cycleID uint, userID uint) (models.Cycle, error) {
	var cycle models.Cycle
	if err := repo.database.Where("id = ? AND user_id = ?", cycleID, userID).First(&cycle).Error; err != nil {
		return models.Cycle{}, err
	}
	return cycle, nil
}

func (repo *CycleRepository) Save(cycle *models.Cycle) error {
	return repo.database.Save(cycle).Error
}

func (repo *CycleRepository) DeleteForUser(cycleID uint, userID uint) (bool, error) {
	result := repo.database.Where("id = ? AND user_id = ?", cycleID, userID).Delete(&models.Cycle{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
