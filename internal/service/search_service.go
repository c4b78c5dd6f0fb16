package service

import (
	"fmt"
	"html"
	"log"
	"strings"
	"time"

	"github.com/meilisearch/meilisearch-go"
	"github.com/microcosm-cc/bluemonday"
	"github.com/shivamraghav1010/Player/internal/model"
)

const videosIndex = "videos"

// SearchService keeps the Meilisearch videos index in sync and issues
// tenant tokens so clients can search it directly. All methods tolerate a
// missing client; search is then simply unavailable.
type SearchService interface {
	IndexVideo(video *model.Video) error
	DeleteVideo(id string) error
	GenerateSearchToken(userRole string) (string, error)
}

type searchService struct {
	client        meilisearch.ServiceManager
	signingKeyUID string
	signingKey    string
	sanitizer     *bluemonday.Policy
}

func NewSearchService(client meilisearch.ServiceManager) SearchService {
	s := &searchService{
		client:    client,
		sanitizer: bluemonday.StrictPolicy(),
	}
	if client != nil {
		s.initIndexes()
		s.initSigningKey()
	}
	return s
}

func (s *searchService) initIndexes() {
	filterableAttrs := []string{"sport", "uploader_id"}
	filterableInterface := make([]any, len(filterableAttrs))
	for i, v := range filterableAttrs {
		filterableInterface[i] = v
	}
	if _, err := s.client.Index(videosIndex).UpdateFilterableAttributes(&filterableInterface); err != nil {
		log.Printf("Failed to update videos filterable attributes: %v", err)
	}

	sortableAttrs := []string{"created_at", "views"}
	if _, err := s.client.Index(videosIndex).UpdateSortableAttributes(&sortableAttrs); err != nil {
		log.Printf("Failed to update videos sortable attributes: %v", err)
	}
}

func (s *searchService) initSigningKey() {
	resp, err := s.client.GetKeys(&meilisearch.KeysQuery{Limit: 20})
	if err != nil {
		log.Printf("Failed to get meilisearch keys: %v", err)
		return
	}

	for _, key := range resp.Results {
		if key.Name == "TenantTokenSigner" {
			s.signingKeyUID = key.UID
			s.signingKey = key.Key
			return
		}
	}

	expiry := time.Now().AddDate(100, 0, 0)
	key, err := s.client.CreateKey(&meilisearch.Key{
		Description: "Key to sign tenant tokens",
		Name:        "TenantTokenSigner",
		Actions:     []string{"search"},
		Indexes:     []string{videosIndex},
		ExpiresAt:   expiry,
	})
	if err != nil {
		log.Printf("Failed to create signing key: %v", err)
		return
	}

	s.signingKeyUID = key.UID
	s.signingKey = key.Key
}

type videoDoc struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Sport        string `json:"sport"`
	ThumbnailURL string `json:"thumbnail_url"`
	UploaderID   string `json:"uploader_id"`
	Uploader     string `json:"uploader"`
	Views        int64  `json:"views"`
	CreatedAt    int64  `json:"created_at"`
}

func (s *searchService) IndexVideo(video *model.Video) error {
	if s.client == nil {
		return nil
	}

	doc := videoDoc{
		ID:           video.ID.String(),
		Title:        video.Title,
		Description:  s.cleanText(video.Description),
		Sport:        video.Sport,
		ThumbnailURL: video.ThumbnailURL,
		UploaderID:   video.UploaderID.String(),
		Views:        video.Views,
		CreatedAt:    video.CreatedAt.Unix(),
	}
	if video.Uploader != nil {
		doc.Uploader = video.Uploader.Username
	}

	task, err := s.client.Index(videosIndex).AddDocuments([]videoDoc{doc}, strPtr("id"))
	if err != nil {
		return err
	}
	log.Printf("Indexed video %s, task id: %d", video.ID, task.TaskUID)
	return nil
}

func (s *searchService) DeleteVideo(id string) error {
	if s.client == nil {
		return nil
	}
	_, err := s.client.Index(videosIndex).DeleteDocument(id)
	return err
}

func (s *searchService) GenerateSearchToken(userRole string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("search is not configured")
	}
	if s.signingKeyUID == "" || s.signingKey == "" {
		return "", fmt.Errorf("signing key not initialized")
	}

	// Every video is public, so the token carries no filter; the role is kept
	// in the signature for future per-role rules.
	searchRules := map[string]any{
		videosIndex: map[string]any{"filter": nil},
	}

	token, err := s.client.GenerateTenantToken(s.signingKeyUID, searchRules, &meilisearch.TenantTokenOptions{
		APIKey:    s.signingKey,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	})
	if err != nil {
		return "", err
	}

	return token, nil
}

func (s *searchService) cleanText(content string) string {
	sanitized := s.sanitizer.Sanitize(content)
	cleanText := html.UnescapeString(sanitized)
	return strings.Join(strings.Fields(cleanText), " ")
}

func strPtr(s string) *string {
	return &s
}
