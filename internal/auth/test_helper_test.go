package auth

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type mockAuthService struct {
	GetAdminByEmailFn     func(email string) (*AdminUser, error)
	CreateAdminFn         func(email, passwordHash string) (*AdminUser, error)
	UpdateAdminPasswordFn func(email, passwordHash string) (*AdminUser, error)
}

func (m *mockAuthService) GetAdminByEmail(email string) (*AdminUser, error) {
	if m.GetAdminByEmailFn == nil {
		return nil, assertErr("GetAdminByEmail not implemented")
	}
	return m.GetAdminByEmailFn(email)
}

func (m *mockAuthService) CreateAdmin(email, passwordHash string) (*AdminUser, error) {
	if m.CreateAdminFn == nil {
		return nil, assertErr("CreateAdmin not implemented")
	}
	return m.CreateAdminFn(email, passwordHash)
}

func (m *mockAuthService) UpdateAdminPassword(email, passwordHash string) (*AdminUser, error) {
	if m.UpdateAdminPasswordFn == nil {
		return nil, assertErr("UpdateAdminPassword not implemented")
	}
	return m.UpdateAdminPasswordFn(email, passwordHash)
}

type assertErr string

func (e assertErr) Error() string { return string(e) }

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(&AdminUser{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	return db
}

func setupAuthRouter(ac *AuthController) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/admin/login", ac.Login)
	return r
}

func postJSON(r http.Handler, path string, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func hashPassword(t *testing.T, plain string) string {
	t.Helper()
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(b)
}
