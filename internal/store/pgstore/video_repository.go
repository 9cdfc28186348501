package pgstore

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"church-backend/internal/models"
	"church-backend/internal/store"
)

type VideoRepository struct {
	DB *pgxpool.Pool
}

func NewVideoRepository(db *pgxpool.Pool) *VideoRepository {
	return &VideoRepository{DB: db}
}

const videoColumns = `id, title, url, video_id, description, uploader, created_display,
	 approved, file_path, file_size, file_name, is_local_file`

func scanVideo(row pgx.Row) (*models.Video, error) {
	var v models.Video
	err := row.Scan(&v.ID, &v.Title, &v.URL, &v.VideoID, &v.Description, &v.Uploader,
		&v.Timestamp, &v.Approved, &v.FilePath, &v.FileSize, &v.FileName, &v.IsLocalFile)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VideoRepository) Create(ctx context.Context, video *models.Video) error {
	_, err := r.DB.Exec(ctx,
		`INSERT INTO videos(id, title, url, video_id, description, uploader, created_display,
		                    approved, file_path, file_size, file_name, is_local_file)
		 VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		video.ID, video.Title, video.URL, video.VideoID, video.Description, video.Uploader,
		video.Timestamp, video.Approved, video.FilePath, video.FileSize, video.FileName, video.IsLocalFile,
	)
	return err
}

func (r *VideoRepository) queryVideos(ctx context.Context, query string, args ...interface{}) ([]models.Video, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	videos := []models.Video{}
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, err
		}
		videos = append(videos, *v)
	}
	return videos, rows.Err()
}

func (r *VideoRepository) GetAll(ctx context.Context) ([]models.Video, error) {
	return r.queryVideos(ctx, `SELECT `+videoColumns+` FROM videos ORDER BY id`)
}

func (r *VideoRepository) GetApproved(ctx context.Context) ([]models.Video, error) {
	return r.queryVideos(ctx, `SELECT `+videoColumns+` FROM videos WHERE approved ORDER BY id`)
}

func (r *VideoRepository) GetByID(ctx context.Context, id int64) (*models.Video, error) {
	v, err := scanVideo(r.DB.QueryRow(ctx, `SELECT `+videoColumns+` FROM videos WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (r *VideoRepository) UpdateApproval(ctx context.Context, id int64, approved bool) error {
	tag, err := r.DB.Exec(ctx, `UPDATE videos SET approved = $2 WHERE id = $1`, id, approved)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *VideoRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
