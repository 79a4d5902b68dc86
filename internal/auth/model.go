package auth

import "time"

// AdminUser rows are created out-of-band by cmd/createadmin; there is no
// self-service signup. A row with an empty PasswordHash cannot log in
// until the createadmin command sets one.
type AdminUser struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"column:password_hash" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Success bool      `json:"success"`
	Token   string    `json:"token"`
	User    AdminEcho `json:"user"`
}

type AdminEcho struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
}
