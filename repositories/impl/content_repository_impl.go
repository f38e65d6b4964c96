package impl

import (
	"KidSpace/models"
	"KidSpace/repositories"

	"gorm.io/gorm"
)

type ContentRepositoryImpl struct {
	DB *gorm.DB
}

func NewContentRepository(db *gorm.DB) repositories.ContentRepository {
	return &ContentRepositoryImpl{DB: db}
}

func (r *ContentRepositoryImpl) ListLongForm(contentType string) ([]models.Content, error) {
	var items []models.Content
	query := r.DB.Where("is_short = ?", false)
	if contentType != "" {
		query = query.Where("type = ?", contentType)
	}
	err := query.Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *ContentRepositoryImpl) ListShorts() ([]models.Content, error) {
	var items []models.Content
	err := r.DB.Where("is_short = ?", true).Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *ContentRepositoryImpl) Save(item *models.Content) error {
	return r.DB.Save(item).Error
}
