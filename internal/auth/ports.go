package auth

type AuthServiceAPI interface {
	GetAdminByEmail(email string) (*AdminUser, error)
	CreateAdmin(email, passwordHash string) (*AdminUser, error)
	UpdateAdminPassword(email, passwordHash string) (*AdminUser, error)
}
