package filestore

import (
	"context"

	"church-backend/internal/models"
	"church-backend/internal/store"
)

type VideoRepository struct {
	store *Store
}

func NewVideoRepository(s *Store) *VideoRepository {
	return &VideoRepository{store: s}
}

func (r *VideoRepository) Create(_ context.Context, video *models.Video) error {
	return r.store.update(func(doc *document) error {
		doc.Videos = append(doc.Videos, *video)
		return nil
	})
}

func (r *VideoRepository) GetAll(_ context.Context) ([]models.Video, error) {
	var out []models.Video
	err := r.store.view(func(doc *document) error {
		out = append([]models.Video{}, doc.Videos...)
		return nil
	})
	return out, err
}

func (r *VideoRepository) GetApproved(_ context.Context) ([]models.Video, error) {
	out := []models.Video{}
	err := r.store.view(func(doc *document) error {
		for _, v := range doc.Videos {
			if v.Approved {
				out = append(out, v)
			}
		}
		return nil
	})
	return out, err
}

func (r *VideoRepository) GetByID(_ context.Context, id int64) (*models.Video, error) {
	var out *models.Video
	err := r.store.view(func(doc *document) error {
		for i := range doc.Videos {
			if doc.Videos[i].ID == id {
				v := doc.Videos[i]
				out = &v
				return nil
			}
		}
		return store.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateApproval is idempotent: re-approving an approved video rewrites the
// same value.
func (r *VideoRepository) UpdateApproval(_ context.Context, id int64, approved bool) error {
	return r.store.update(func(doc *document) error {
		for i := range doc.Videos {
			if doc.Videos[i].ID == id {
				doc.Videos[i].Approved = approved
				return nil
			}
		}
		return store.ErrNotFound
	})
}

func (r *VideoRepository) Delete(_ context.Context, id int64) error {
	return r.store.update(func(doc *document) error {
		for i := range doc.Videos {
			if doc.Videos[i].ID == id {
				doc.Videos = append(doc.Videos[:i], doc.Videos[i+1:]...)
				return nil
			}
		}
		return store.ErrNotFound
	})
}
