package activity

import "time"

type Activity struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	Description  string    `gorm:"type:text;not null;default:''" json:"description"`
	Icon         string    `gorm:"size:50;not null;default:''" json:"icon"`
	ImageURL     string    `gorm:"type:text" json:"image_url"`
	DisplayOrder int       `gorm:"not null;default:0" json:"display_order"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Activity) TableName() string {
	return "activities"
}

type CreateActivityRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	Icon         string `json:"icon"`
	ImageURL     string `json:"image_url"`
	DisplayOrder int    `json:"display_order"`
}
