package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mindcare/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrValidation marks failures of local input checks; no remote call was made.
var ErrValidation = errors.New("validation")

const recentMoodLimit = 7

type MoodService struct{ db *gorm.DB }

func NewMoodService(db *gorm.DB) *MoodService { return &MoodService{db: db} }

func (s *MoodService) Log(ctx context.Context, userID string, level int, notes string) (*model.Mood, error) {
	if level < 1 || level > 5 {
		return nil, fmt.Errorf("%w: please select a mood level", ErrValidation)
	}

	m := model.Mood{
		ID:        uuid.NewString(),
		UserID:    userID,
		MoodLevel: level,
		Notes:     strings.TrimSpace(notes),
	}
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, fmt.Errorf("insert mood: %w", err)
	}
	return &m, nil
}

// Recent returns the user's latest moods, newest first, capped at 7.
func (s *MoodService) Recent(ctx context.Context, userID string) ([]model.Mood, error) {
	var moods []model.Mood
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(recentMoodLimit).
		Find(&moods).Error
	if err != nil {
		return nil, fmt.Errorf("query moods: %w", err)
	}
	return moods, nil
}
