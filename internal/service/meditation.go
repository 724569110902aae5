package service

import (
	"context"
	"fmt"

	"mindcare/internal/model"

	"gorm.io/gorm"
)

// CatalogService reads the meditation and therapist catalogs. Both are
// seeded out of band (cmd/seed) and never written by the server.
type CatalogService struct{ db *gorm.DB }

func NewCatalogService(db *gorm.DB) *CatalogService { return &CatalogService{db: db} }

func (s *CatalogService) Meditations(ctx context.Context) ([]model.Meditation, error) {
	var meditations []model.Meditation
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&meditations).Error
	if err != nil {
		return nil, fmt.Errorf("query meditations: %w", err)
	}
	return meditations, nil
}

func (s *CatalogService) Therapists(ctx context.Context) ([]model.Therapist, error) {
	var therapists []model.Therapist
	err := s.db.WithContext(ctx).Order("name").Find(&therapists).Error
	if err != nil {
		return nil, fmt.Errorf("query therapists: %w", err)
	}
	return therapists, nil
}
