package primary

import (
	"context"
	"fmt"
	"time"

	"titleguard/internal/models"
	"titleguard/internal/store"
)

// --- Blocked Videos ---

func (s *StoreImpl) BlockVideo(ctx context.Context, videoID, title string) (*models.BlockedVideo, error) {
	v := &models.BlockedVideo{VideoID: videoID, Title: title, CreatedAt: time.Now().UTC()}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO blocked_videos (video_id, title, created_at) VALUES (?, ?, ?)`,
		v.VideoID, v.Title, v.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("video %s already blocked: %w", videoID, store.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to insert blocked video: %w", err)
	}
	return v, nil
}

func (s *StoreImpl) UnblockVideo(ctx context.Context, videoID string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM blocked_videos WHERE video_id = ?`, videoID)
	if err != nil {
		return fmt.Errorf("failed to delete blocked video %s: %w", videoID, err)
	}
	return expectOneRow(res)
}

func (s *StoreImpl) ListBlocked(ctx context.Context) ([]models.BlockedVideo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT video_id, title, created_at FROM blocked_videos ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to list blocked videos: %w", err)
	}
	defer rows.Close()

	videos := []models.BlockedVideo{}
	for rows.Next() {
		var v models.BlockedVideo
		if err := rows.Scan(&v.VideoID, &v.Title, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan blocked video: %w", err)
		}
		videos = append(videos, v)
	}
	return videos, rows.Err()
}

func (s *StoreImpl) IsBlocked(ctx context.Context, videoID string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM blocked_videos WHERE video_id = ?`, videoID).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to check blocked video %s: %w", videoID, err)
	}
	return n > 0, nil
}
