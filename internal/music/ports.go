package music

type MusicServiceAPI interface {
	GetSettings() (MusicSettingsResponse, error)
	UpdateSettings(req UpdateMusicSettingsRequest) (*MusicSettings, error)
}
