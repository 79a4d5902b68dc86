package gallery

import "time"

type GalleryImage struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	ImageURL     string    `gorm:"type:text;not null" json:"image_url"`
	AltText      string    `gorm:"type:text;not null;default:''" json:"alt_text"`
	DisplayOrder int       `gorm:"not null;default:0" json:"display_order"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (GalleryImage) TableName() string {
	return "gallery_images"
}

type CreateGalleryImageRequest struct {
	ImageURL     string `json:"image_url" binding:"required"`
	AltText      string `json:"alt_text"`
	DisplayOrder int    `json:"display_order"`
}
