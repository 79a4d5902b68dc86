package content

import (
	"time"

	"gorm.io/datatypes"
)

type PageContent struct {
	ID        int            `gorm:"primaryKey;autoIncrement" json:"id"`
	PageSlug  string         `gorm:"size:100;not null;uniqueIndex:uq_page_content_slug_section" json:"page_slug"`
	Section   string         `gorm:"size:100;not null;uniqueIndex:uq_page_content_slug_section" json:"section"`
	Content   datatypes.JSON `gorm:"type:jsonb" json:"content"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PageContent) TableName() string {
	return "page_content"
}

type UpsertSectionRequest struct {
	Content map[string]interface{} `json:"content" binding:"required"`
}
