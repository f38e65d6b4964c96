package services

import (
	"KidSpace/models"
	"KidSpace/repositories"
	"errors"
)

type ContentService struct {
	ContentRepo repositories.ContentRepository
}

func NewContentService(contentRepo repositories.ContentRepository) *ContentService {
	return &ContentService{ContentRepo: contentRepo}
}

// GetContent возвращает полноформатные видео, сначала новые.
// contentType — необязательный фильтр (story/learning/creativity)
func (s *ContentService) GetContent(contentType string) ([]models.Content, error) {
	if contentType != "" && !models.IsValidContentType(contentType) {
		return nil, errors.New("invalid content type")
	}
	return s.ContentRepo.ListLongForm(contentType)
}

// GetShorts возвращает короткие видео, сначала новые
func (s *ContentService) GetShorts() ([]models.Content, error) {
	return s.ContentRepo.ListShorts()
}

// CreateContent создает запись контента
func (s *ContentService) CreateContent(item models.Content) (models.Content, error) {
	if item.Title == "" {
		return models.Content{}, errors.New("title is required")
	}
	if item.VideoURL == "" {
		return models.Content{}, errors.New("video_url is required")
	}
	if !models.IsValidContentType(item.Type) {
		return models.Content{}, errors.New("invalid content type")
	}

	if err := s.ContentRepo.Save(&item); err != nil {
		return models.Content{}, err
	}
	return item, nil
}
