package pgstore

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"church-backend/internal/models"
)

// StatsRepository computes the admin dashboard counters with SQL counts.
type StatsRepository struct {
	DB *pgxpool.Pool
}

func NewStatsRepository(db *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{DB: db}
}

func (r *StatsRepository) Statistics(ctx context.Context) (*models.Statistics, error) {
	var stats models.Statistics
	err := r.DB.QueryRow(ctx,
		`SELECT
		   (SELECT COUNT(*) FROM messages),
		   (SELECT COUNT(*) FROM messages WHERE NOT is_read),
		   (SELECT COUNT(*) FROM videos),
		   (SELECT COUNT(*) FROM videos WHERE approved),
		   (SELECT COUNT(*) FROM photos),
		   (SELECT COUNT(*) FROM photos WHERE approved),
		   (SELECT COUNT(*) FROM gallery_icons),
		   (SELECT COUNT(*) FROM gallery_icons WHERE approved)`,
	).Scan(&stats.TotalMessages, &stats.UnreadMessages, &stats.TotalVideos, &stats.ApprovedVideos,
		&stats.TotalPhotos, &stats.ApprovedPhotos, &stats.TotalIcons, &stats.ApprovedIcons)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
