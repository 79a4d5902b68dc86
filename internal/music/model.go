package music

import "time"

type MusicSettings struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Enabled   bool      `gorm:"not null;default:false" json:"enabled"`
	MusicURL  string    `gorm:"type:text;not null;default:''" json:"music_url"`
	Volume    float64   `gorm:"not null;default:0.5" json:"volume"`
	Loop      bool      `gorm:"not null;default:true" json:"loop"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (MusicSettings) TableName() string {
	return "music_settings"
}

// Volume and Loop are pointers so an omitted field falls back to the
// documented defaults instead of zeroing the setting.
type UpdateMusicSettingsRequest struct {
	Enabled  bool     `json:"enabled"`
	MusicURL string   `json:"music_url"`
	Volume   *float64 `json:"volume"`
	Loop     *bool    `json:"loop"`
}

type MusicSettingsResponse struct {
	Enabled  bool    `json:"enabled"`
	MusicURL string  `json:"music_url"`
	Volume   float64 `json:"volume"`
	Loop     bool    `json:"loop"`
}
