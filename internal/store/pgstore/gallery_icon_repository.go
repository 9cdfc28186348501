package pgstore

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"church-backend/internal/models"
	"church-backend/internal/store"
)

type GalleryIconRepository struct {
	DB *pgxpool.Pool
}

func NewGalleryIconRepository(db *pgxpool.Pool) *GalleryIconRepository {
	return &GalleryIconRepository{DB: db}
}

const iconColumns = `id, title, description, category, icon_path, file_size, file_name,
	 mime_type, uploader, created_display, approved, featured, views, is_local_file`

func scanIcon(row pgx.Row) (*models.GalleryIcon, error) {
	var ic models.GalleryIcon
	err := row.Scan(&ic.ID, &ic.Title, &ic.Description, &ic.Category, &ic.IconPath,
		&ic.FileSize, &ic.FileName, &ic.MimeType, &ic.Uploader, &ic.Timestamp,
		&ic.Approved, &ic.Featured, &ic.Views, &ic.IsLocalFile)
	if err != nil {
		return nil, err
	}
	return &ic, nil
}

func (r *GalleryIconRepository) Create(ctx context.Context, icon *models.GalleryIcon) error {
	_, err := r.DB.Exec(ctx,
		`INSERT INTO gallery_icons(id, title, description, category, icon_path, file_size,
		                           file_name, mime_type, uploader, created_display, approved,
		                           featured, views, is_local_file)
		 VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		icon.ID, icon.Title, icon.Description, icon.Category, icon.IconPath, icon.FileSize,
		icon.FileName, icon.MimeType, icon.Uploader, icon.Timestamp, icon.Approved,
		icon.Featured, icon.Views, icon.IsLocalFile,
	)
	return err
}

func (r *GalleryIconRepository) queryIcons(ctx context.Context, query string, args ...interface{}) ([]models.GalleryIcon, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	icons := []models.GalleryIcon{}
	for rows.Next() {
		ic, err := scanIcon(rows)
		if err != nil {
			return nil, err
		}
		icons = append(icons, *ic)
	}
	return icons, rows.Err()
}

func (r *GalleryIconRepository) GetAll(ctx context.Context) ([]models.GalleryIcon, error) {
	return r.queryIcons(ctx, `SELECT `+iconColumns+` FROM gallery_icons ORDER BY id`)
}

func (r *GalleryIconRepository) GetApproved(ctx context.Context) ([]models.GalleryIcon, error) {
	return r.queryIcons(ctx, `SELECT `+iconColumns+` FROM gallery_icons WHERE approved ORDER BY id`)
}

// GetByCategory lists approved icons in a category; unapproved icons stay
// admin-only even when addressed by category.
func (r *GalleryIconRepository) GetByCategory(ctx context.Context, category string) ([]models.GalleryIcon, error) {
	return r.queryIcons(ctx,
		`SELECT `+iconColumns+` FROM gallery_icons WHERE approved AND category = $1 ORDER BY id`,
		category)
}

func (r *GalleryIconRepository) GetFeatured(ctx context.Context) ([]models.GalleryIcon, error) {
	return r.queryIcons(ctx,
		`SELECT `+iconColumns+` FROM gallery_icons WHERE approved AND featured ORDER BY id`)
}

func (r *GalleryIconRepository) GetByID(ctx context.Context, id int64) (*models.GalleryIcon, error) {
	ic, err := scanIcon(r.DB.QueryRow(ctx, `SELECT `+iconColumns+` FROM gallery_icons WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return ic, nil
}

func (r *GalleryIconRepository) UpdateApproval(ctx context.Context, id int64, approved bool) error {
	tag, err := r.DB.Exec(ctx, `UPDATE gallery_icons SET approved = $2 WHERE id = $1`, id, approved)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *GalleryIconRepository) UpdateFeatured(ctx context.Context, id int64, featured bool) error {
	tag, err := r.DB.Exec(ctx, `UPDATE gallery_icons SET featured = $2 WHERE id = $1`, id, featured)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *GalleryIconRepository) IncrementViews(ctx context.Context, id int64) error {
	tag, err := r.DB.Exec(ctx, `UPDATE gallery_icons SET views = views + 1 WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *GalleryIconRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM gallery_icons WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
