package services

import (
	"KidSpace/repositories"
	"context"
	"errors"
	"log"
	"os"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const exploreMaxResults = 12

type ExploreResult struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	ThumbnailURL string `json:"thumbnailUrl"`
	ChannelTitle string `json:"channelTitle"`
}

type ExploreCategory struct {
	Name  string `json:"name"`
	Query string `json:"query"`
}

// Фиксированный набор детских категорий для вкладки Explore
var exploreCategories = []ExploreCategory{
	{Name: "Animals", Query: "animals for kids"},
	{Name: "Science", Query: "science experiments for kids"},
	{Name: "Space", Query: "space for kids"},
	{Name: "Crafts", Query: "easy crafts for kids"},
	{Name: "Music", Query: "kids songs"},
	{Name: "Nature", Query: "nature documentary for kids"},
}

type ExploreService struct {
	UserRepo    repositories.UserRepository
	SettingsSrv *SettingsService
	YouTube     *youtube.Service // nil, если API-ключ не задан
}

func NewExploreService(userRepo repositories.UserRepository, settingsSrv *SettingsService) *ExploreService {
	s := &ExploreService{UserRepo: userRepo, SettingsSrv: settingsSrv}

	apiKey := os.Getenv("YOUTUBE_API_KEY")
	if apiKey == "" {
		log.Println("YOUTUBE_API_KEY not set, explore search disabled")
		return s
	}

	yt, err := youtube.NewService(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		log.Printf("error initializing youtube client: %v, explore search disabled", err)
		return s
	}
	s.YouTube = yt

	return s
}

// Search выполняет безопасный поиск видео для ребенка.
// Запросы всегда уходят с safeSearch=strict
func (s *ExploreService) Search(userID uint, query string) ([]ExploreResult, error) {
	if query == "" {
		return nil, errors.New("query is required")
	}

	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if user.IsChild() {
		settings, err := s.SettingsSrv.GetEffectiveSettings(userID)
		if err != nil {
			return nil, err
		}
		if !settings.AllowExplore {
			return nil, ErrExploreDisabled
		}
	}

	if s.YouTube == nil {
		return nil, errors.New("explore search is not configured")
	}

	resp, err := s.YouTube.Search.List([]string{"snippet"}).
		Q(query).
		SafeSearch("strict").
		Type("video").
		MaxResults(exploreMaxResults).
		Do()
	if err != nil {
		return nil, err
	}

	results := make([]ExploreResult, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id == nil || item.Snippet == nil {
			continue
		}
		results = append(results, ExploreResult{
			ID:           item.Id.VideoId,
			Title:        item.Snippet.Title,
			ThumbnailURL: thumbnailURL(item.Snippet.Thumbnails),
			ChannelTitle: item.Snippet.ChannelTitle,
		})
	}

	return results, nil
}

// Categories возвращает список категорий для стартового экрана Explore
func (s *ExploreService) Categories() []ExploreCategory {
	return exploreCategories
}

func thumbnailURL(t *youtube.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	if t.High != nil {
		return t.High.Url
	}
	if t.Medium != nil {
		return t.Medium.Url
	}
	if t.Default != nil {
		return t.Default.Url
	}
	return ""
}
