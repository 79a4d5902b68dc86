package upload

type UploadResult struct {
	URL  string `json:"url"`
	Path string `json:"path"`
	Size int64  `json:"size"`
	Type string `json:"type"`
}

var imageMimeTypes = map[string]bool{
	"image/png":     true,
	"image/jpeg":    true,
	"image/jpg":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

var audioMimeTypes = map[string]bool{
	"audio/mpeg": true,
	"audio/mp3":  true,
	"audio/ogg":  true,
	"audio/wav":  true,
	"audio/webm": true,
	"audio/m4a":  true,
	"audio/aac":  true,
}
