package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"titleguard/internal/filter"
	"titleguard/internal/models"
	"titleguard/internal/store"
)

// BlocklistService manages explicitly blocked videos.
type BlocklistService struct {
	blocked store.BlocklistStore
}

func NewBlocklistService(blocked store.BlocklistStore) *BlocklistService {
	return &BlocklistService{blocked: blocked}
}

// Block accepts a bare id or any watch/shorts link.
func (s *BlocklistService) Block(ctx context.Context, idOrURL, title string) (*models.BlockedVideo, error) {
	id, ok := filter.ExtractVideoID(idOrURL)
	if !ok {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidVideoID, idOrURL)
	}
	title = strings.TrimSpace(title)
	if title == "" {
		title = models.UnknownTitle
	}
	v, err := s.blocked.BlockVideo(ctx, id, title)
	if err != nil {
		return nil, fmt.Errorf("block video %s: %w", id, err)
	}
	log.WithFields(log.Fields{"video_id": id, "title": title}).Info("video blocked")
	return v, nil
}

func (s *BlocklistService) Unblock(ctx context.Context, idOrURL string) error {
	id, ok := filter.ExtractVideoID(idOrURL)
	if !ok {
		return fmt.Errorf("%w: %q", models.ErrInvalidVideoID, idOrURL)
	}
	if err := s.blocked.UnblockVideo(ctx, id); err != nil {
		return fmt.Errorf("unblock video %s: %w", id, err)
	}
	return nil
}

func (s *BlocklistService) List(ctx context.Context) ([]models.BlockedVideo, error) {
	return s.blocked.ListBlocked(ctx)
}

func (s *BlocklistService) IsBlocked(ctx context.Context, videoID string) (bool, error) {
	return s.blocked.IsBlocked(ctx, videoID)
}

// Import reads "id: title" lines, skipping invalid lines and ids already
// blocked. It returns how many were added.
func (s *BlocklistService) Import(ctx context.Context, text string) (int, error) {
	added := 0
	for _, v := range filter.ParseBlockedVideos(text) {
		if _, err := s.blocked.BlockVideo(ctx, v.VideoID, v.Title); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				continue
			}
			return added, fmt.Errorf("import blocked video %s: %w", v.VideoID, err)
		}
		added++
	}
	return added, nil
}
