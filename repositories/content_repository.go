package repositories

import "KidSpace/models"

type ContentRepository interface {
	// ListLongForm возвращает полноформатный контент (is_short = false), сначала новые.
	// contentType — необязательный фильтр по типу
	ListLongForm(contentType string) ([]models.Content, error)
	ListShorts() ([]models.Content, error)
	Save(item *models.Content) error
}
