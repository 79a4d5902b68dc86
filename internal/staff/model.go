package staff

import (
	"time"

	"github.com/lib/pq"
)

type StaffMember struct {
	ID            int            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	Designation   string         `gorm:"size:255;not null" json:"designation"`
	Qualification string         `gorm:"size:255;not null;default:''" json:"qualification"`
	Experience    string         `gorm:"size:255;not null;default:''" json:"experience"`
	Bio           string         `gorm:"type:text;not null;default:''" json:"bio"`
	Email         string         `gorm:"size:255;not null;default:''" json:"email"`
	Subjects      pq.StringArray `gorm:"type:text[]" json:"subjects"`
	ImageURL      string         `gorm:"type:text" json:"image_url"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (StaffMember) TableName() string {
	return "staff_members"
}

type CreateStaffMemberRequest struct {
	Name          string   `json:"name" binding:"required"`
	Designation   string   `json:"designation" binding:"required"`
	Qualification string   `json:"qualification"`
	Experience    string   `json:"experience"`
	Bio           string   `json:"bio"`
	Email         string   `json:"email"`
	Subjects      []string `json:"subjects"`
	ImageURL      string   `json:"image_url"`
}
