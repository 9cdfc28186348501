package filestore

import (
	"context"

	"church-backend/internal/models"
)

// Statistics counts the in-file records. The file backend never stores
// gallery icons, so the icon counters stay zero and are omitted from the
// JSON response.
func (s *Store) Statistics(_ context.Context) (*models.Statistics, error) {
	stats := &models.Statistics{}
	err := s.view(func(doc *document) error {
		stats.TotalMessages = int64(len(doc.Messages))
		for _, m := range doc.Messages {
			if !m.Read {
				stats.UnreadMessages++
			}
		}
		stats.TotalVideos = int64(len(doc.Videos))
		for _, v := range doc.Videos {
			if v.Approved {
				stats.ApprovedVideos++
			}
		}
		stats.TotalPhotos = int64(len(doc.Photos))
		for _, p := range doc.Photos {
			if p.Approved {
				stats.ApprovedPhotos++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}
