package service

import (
	"context"
	"errors"

	"github.com/carson-networks/money-tracker/internal/operator/actions"
	"github.com/carson-networks/money-tracker/internal/storage"
	"github.com/carson-networks/money-tracker/internal/storage/sqlconfig"
)

const (
	themeKey   = "theme"
	themeDark  = "dark"
	themeLight = "light"
)

// PreferenceService persists UI preferences. Only the theme exists today.
type PreferenceService struct {
	preferences sqlconfig.IPreferenceTable
	processor   actionProcessor
}

func NewPreferenceService(preferences sqlconfig.IPreferenceTable, processor actionProcessor) *PreferenceService {
	return &PreferenceService{preferences: preferences, processor: processor}
}

// DarkMode reports the stored theme; an unset theme is light.
func (s *PreferenceService) DarkMode(ctx context.Context) (bool, error) {
	value, err := s.preferences.Get(ctx, themeKey)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return value == themeDark, nil
}

func (s *PreferenceService) SetDarkMode(ctx context.Context, dark bool) error {
	value := themeLight
	if dark {
		value = themeDark
	}
	return s.processor.Process(ctx, &actions.SetPreference{Key: themeKey, Value: value})
}
