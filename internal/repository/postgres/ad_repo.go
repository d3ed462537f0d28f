package postgres

import (
	"context"
	"errors"

	"github.com/dom/adboard/internal/domain"
	"gorm.io/gorm"
)

type adRepository struct {
	db *gorm.DB
}

func NewAdRepository(db *gorm.DB) *adRepository {
	return &adRepository{db: db}
}

func (r *adRepository) Create(ctx context.Context, ad *domain.Ad) error {
	return r.db.WithContext(ctx).Create(ad).Error
}

func (r *adRepository) GetByID(ctx context.Context, id uint) (*domain.Ad, error) {
	var ad domain.Ad
	err := r.db.WithContext(ctx).First(&ad, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAdNotFound
		}
		return nil, err
	}
	return &ad, nil
}

func (r *adRepository) Update(ctx context.Context, ad *domain.Ad) error {
	return r.db.WithContext(ctx).Save(ad).Error
}

func (r *adRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Ad{}, "id = ?", id).Error
}
