package service

import (
	"context"
	"time"

	"github.com/dom/adboard/internal/domain"
	"github.com/dom/adboard/internal/repository"
)

type AdService struct {
	adRepo repository.AdRepository
}

func NewAdService(adRepo repository.AdRepository) *AdService {
	return &AdService{adRepo: adRepo}
}

type CreateAdInput struct {
	Title       string
	Description string
	OwnerID     uint
}

func (s *AdService) Create(ctx context.Context, input CreateAdInput) (*domain.Ad, error) {
	ownerID := input.OwnerID
	ad := &domain.Ad{
		Title:       input.Title,
		Description: input.Description,
		OwnerID:     &ownerID,
		CreatedAt:   time.Now(),
	}

	if err := s.adRepo.Create(ctx, ad); err != nil {
		return nil, err
	}

	return ad, nil
}

func (s *AdService) Get(ctx context.Context, id uint) (*domain.Ad, error) {
	return s.adRepo.GetByID(ctx, id)
}

// AdPatch carries the allow-listed patchable fields. Ownership is fixed at
// creation, so owner_id is deliberately absent.
type AdPatch struct {
	Title       *string
	Description *string
}

func (s *AdService) Update(ctx context.Context, id, ownerID uint, patch AdPatch) (*domain.Ad, error) {
	ad, err := s.adRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(ownerID, ad); err != nil {
		return nil, err
	}

	if patch.Title != nil {
		ad.Title = *patch.Title
	}
	if patch.Description != nil {
		ad.Description = *patch.Description
	}

	if err := s.adRepo.Update(ctx, ad); err != nil {
		return nil, err
	}

	return ad, nil
}

func (s *AdService) Delete(ctx context.Context, id, ownerID uint) error {
	ad, err := s.adRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := authorizeOwner(ownerID, ad); err != nil {
		return err
	}

	return s.adRepo.Delete(ctx, ad.ID)
}

// authorizeOwner gates mutation to the ad's recorded owner. An ownerless ad
// (owner deleted) has no one left who may mutate it.
func authorizeOwner(ownerID uint, ad *domain.Ad) error {
	if ad.OwnerID == nil || *ad.OwnerID != ownerID {
		return domain.ErrNotOwner
	}
	return nil
}
