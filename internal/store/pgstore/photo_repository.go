package pgstore

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"church-backend/internal/models"
	"church-backend/internal/store"
)

type PhotoRepository struct {
	DB *pgxpool.Pool
}

func NewPhotoRepository(db *pgxpool.Pool) *PhotoRepository {
	return &PhotoRepository{DB: db}
}

const photoColumns = `id, name, description, uploader, created_display, approved,
	 file_path, file_size, file_name, is_local_file, inline_data`

func scanPhoto(row pgx.Row) (*models.Photo, error) {
	var p models.Photo
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Uploader, &p.Timestamp, &p.Approved,
		&p.FilePath, &p.FileSize, &p.FileName, &p.IsLocalFile, &p.Data)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PhotoRepository) Create(ctx context.Context, photo *models.Photo) error {
	_, err := r.DB.Exec(ctx,
		`INSERT INTO photos(id, name, description, uploader, created_display, approved,
		                    file_path, file_size, file_name, is_local_file, inline_data)
		 VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		photo.ID, photo.Name, photo.Description, photo.Uploader, photo.Timestamp, photo.Approved,
		photo.FilePath, photo.FileSize, photo.FileName, photo.IsLocalFile, photo.Data,
	)
	return err
}

func (r *PhotoRepository) queryPhotos(ctx context.Context, query string, args ...interface{}) ([]models.Photo, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	photos := []models.Photo{}
	for rows.Next() {
		p, err := scanPhoto(rows)
		if err != nil {
			return nil, err
		}
		photos = append(photos, *p)
	}
	return photos, rows.Err()
}

func (r *PhotoRepository) GetAll(ctx context.Context) ([]models.Photo, error) {
	return r.queryPhotos(ctx, `SELECT `+photoColumns+` FROM photos ORDER BY id`)
}

func (r *PhotoRepository) GetApproved(ctx context.Context) ([]models.Photo, error) {
	return r.queryPhotos(ctx, `SELECT `+photoColumns+` FROM photos WHERE approved ORDER BY id`)
}

func (r *PhotoRepository) GetByID(ctx context.Context, id int64) (*models.Photo, error) {
	p, err := scanPhoto(r.DB.QueryRow(ctx, `SELECT `+photoColumns+` FROM photos WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *PhotoRepository) UpdateApproval(ctx context.Context, id int64, approved bool) error {
	tag, err := r.DB.Exec(ctx, `UPDATE photos SET approved = $2 WHERE id = $1`, id, approved)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *PhotoRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM photos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
