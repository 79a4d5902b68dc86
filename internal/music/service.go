package music

import (
	"errors"

	"gorm.io/gorm"
)

const (
	defaultVolume = 0.5
	defaultLoop   = true
)

type MusicService struct {
	DB *gorm.DB
}

// GetSettings reads the most recently updated row; a site that never
// configured music gets the documented defaults.
func (s *MusicService) GetSettings() (MusicSettingsResponse, error) {
	var row MusicSettings
	err := s.DB.Order("updated_at DESC").First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MusicSettingsResponse{
				Enabled:  false,
				MusicURL: "",
				Volume:   defaultVolume,
				Loop:     defaultLoop,
			}, nil
		}
		return MusicSettingsResponse{}, err
	}

	return MusicSettingsResponse{
		Enabled:  row.Enabled,
		MusicURL: row.MusicURL,
		Volume:   row.Volume,
		Loop:     row.Loop,
	}, nil
}

func (s *MusicService) UpdateSettings(req UpdateMusicSettingsRequest) (*MusicSettings, error) {
	volume := defaultVolume
	if req.Volume != nil {
		volume = *req.Volume
	}
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}

	loop := defaultLoop
	if req.Loop != nil {
		loop = *req.Loop
	}

	var row MusicSettings
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		findErr := tx.Order("id ASC").First(&row).Error
		if findErr != nil && !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}

		if errors.Is(findErr, gorm.ErrRecordNotFound) {
			row = MusicSettings{
				Enabled:  req.Enabled,
				MusicURL: req.MusicURL,
				Volume:   volume,
				Loop:     loop,
			}
			return tx.Create(&row).Error
		}

		updates := map[string]interface{}{
			"enabled":   req.Enabled,
			"music_url": req.MusicURL,
			"volume":    volume,
			"loop":      loop,
		}
		if err := tx.Model(&row).Updates(updates).Error; err != nil {
			return err
		}

		row.Enabled = req.Enabled
		row.MusicURL = req.MusicURL
		row.Volume = volume
		row.Loop = loop
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &row, nil
}
