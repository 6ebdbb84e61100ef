package repository

import (
	"pathfinder_backend/internal/model"

	"gorm.io/gorm"
)

type ResultRepository struct {
	DB *gorm.DB
}

func NewResultRepository(db *gorm.DB) *ResultRepository {
	return &ResultRepository{DB: db}
}

func (r *ResultRepository) Create(result *model.PredictionResult) error {
	return r.DB.Create(result).Error
}

func (r *ResultRepository) FindLatestByUser(userID uint) (*model.PredictionResult, error) {
	var result model.PredictionResult
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&result).Error
	return &result, err
}

func (r *ResultRepository) ListByUser(userID uint, page, limit int) ([]model.PredictionResult, int64, error) {
	var results []model.PredictionResult
	var total int64

	query := r.DB.Model(&model.PredictionResult{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&results).Error
	return results, total, err
}
