package filestore

import (
	"context"

	"church-backend/internal/models"
	"church-backend/internal/store"
)

type PhotoRepository struct {
	store *Store
}

func NewPhotoRepository(s *Store) *PhotoRepository {
	return &PhotoRepository{store: s}
}

func (r *PhotoRepository) Create(_ context.Context, photo *models.Photo) error {
	return r.store.update(func(doc *document) error {
		doc.Photos = append(doc.Photos, *photo)
		return nil
	})
}

func (r *PhotoRepository) GetAll(_ context.Context) ([]models.Photo, error) {
	var out []models.Photo
	err := r.store.view(func(doc *document) error {
		out = append([]models.Photo{}, doc.Photos...)
		return nil
	})
	return out, err
}

func (r *PhotoRepository) GetApproved(_ context.Context) ([]models.Photo, error) {
	out := []models.Photo{}
	err := r.store.view(func(doc *document) error {
		for _, p := range doc.Photos {
			if p.Approved {
				out = append(out, p)
			}
		}
		return nil
	})
	return out, err
}

func (r *PhotoRepository) GetByID(_ context.Context, id int64) (*models.Photo, error) {
	var out *models.Photo
	err := r.store.view(func(doc *document) error {
		for i := range doc.Photos {
			if doc.Photos[i].ID == id {
				p := doc.Photos[i]
				out = &p
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

func (r *PhotoRepository) UpdateApproval(_ context.Context, id int64, approved bool) error {
	return r.store.update(func(doc *document) error {
		for i := range doc.Photos {
			if doc.Photos[i].ID == id {
				doc.Photos[i].Approved = approved
				return nil
			}
		}
		return store.ErrNotFound
	})
}

func (r *PhotoRepository) Delete(_ context.Context, id int64) error {
	return r.store.update(func(doc *document) error {
		for i := range doc.Photos {
			if doc.Photos[i].ID == id {
				doc.Photos = append(doc.Photos[:i], doc.Photos[i+1:]...)
				return nil
			}
		}
		return store.ErrNotFound
	})
}
