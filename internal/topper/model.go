package topper

import "time"

type Topper struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Class       string    `gorm:"size:50;not null" json:"class"`
	Percentage  float64   `gorm:"not null" json:"percentage"`
	Year        int       `gorm:"not null" json:"year"`
	Achievement string    `gorm:"type:text;not null;default:''" json:"achievement"`
	ImageURL    string    `gorm:"type:text" json:"image_url"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Topper) TableName() string {
	return "toppers"
}

type CreateTopperRequest struct {
	Name        string  `json:"name" binding:"required"`
	Class       string  `json:"class" binding:"required"`
	Percentage  float64 `json:"percentage" binding:"required"`
	Year        int     `json:"year" binding:"required"`
	Achievement string  `json:"achievement"`
	ImageURL    string  `json:"image_url"`
}
