// Package store defines the persistence contract shared by the JSON-file
// and PostgreSQL backends. Both must produce identical JSON for the front
// end, so repositories deal in the models types directly.
package store

import (
	"context"
	"errors"

	"church-backend/internal/models"
)

// ErrNotFound is returned by lookups and mutations addressing an id that
// does not exist in the backend.
var ErrNotFound = errors.New("record not found")

type MessageRepository interface {
	Create(ctx context.Context, msg *models.Message) error
	GetAll(ctx context.Context) ([]models.Message, error)
	GetByID(ctx context.Context, id int64) (*models.Message, error)
	MarkRead(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type VideoRepository interface {
	Create(ctx context.Context, video *models.Video) error
	GetAll(ctx context.Context) ([]models.Video, error)
	GetApproved(ctx context.Context) ([]models.Video, error)
	GetByID(ctx context.Context, id int64) (*models.Video, error)
	UpdateApproval(ctx context.Context, id int64, approved bool) error
	Delete(ctx context.Context, id int64) error
}

type PhotoRepository interface {
	Create(ctx context.Context, photo *models.Photo) error
	GetAll(ctx context.Context) ([]models.Photo, error)
	GetApproved(ctx context.Context) ([]models.Photo, error)
	GetByID(ctx context.Context, id int64) (*models.Photo, error)
	UpdateApproval(ctx context.Context, id int64, approved bool) error
	Delete(ctx context.Context, id int64) error
}

type GalleryIconRepository interface {
	Create(ctx context.Context, icon *models.GalleryIcon) error
	GetAll(ctx context.Context) ([]models.GalleryIcon, error)
	GetApproved(ctx context.Context) ([]models.GalleryIcon, error)
	GetByCategory(ctx context.Context, category string) ([]models.GalleryIcon, error)
	GetFeatured(ctx context.Context) ([]models.GalleryIcon, error)
	GetByID(ctx context.Context, id int64) (*models.GalleryIcon, error)
	UpdateApproval(ctx context.Context, id int64, approved bool) error
	UpdateFeatured(ctx context.Context, id int64, featured bool) error
	IncrementViews(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

// StatsProvider supplies the admin dashboard counters.
type StatsProvider interface {
	Statistics(ctx context.Context) (*models.Statistics, error)
}
