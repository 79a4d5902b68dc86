package upload

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type mockUploadService struct {
	SaveFileFn func(file *multipart.FileHeader, folder string, fileType string) (*UploadResult, error)
}

func (m *mockUploadService) SaveFile(file *multipart.FileHeader, folder string, fileType string) (*UploadResult, error) {
	return m.SaveFileFn(file, folder, fileType)
}

func setupRouter(svc UploadServiceAPI) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, svc)
	return r
}

func adminToken(t *testing.T, secret string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    float64(1),
		"email": "admin@school.test",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	s, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func doMultipart(t *testing.T, r http.Handler, fields map[string]string, fileField, filename, contentType string, data []byte, token string) *httptest.ResponseRecorder {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		_ = w.WriteField(k, v)
	}
	if fileField != "" {
		partHeader := map[string][]string{
			"Content-Disposition": {`form-data; name="` + fileField + `"; filename="` + filename + `"`},
			"Content-Type":        {contentType},
		}
		p, err := w.CreatePart(partHeader)
		if err != nil {
			t.Fatalf("CreatePart: %v", err)
		}
		_, _ = p.Write(data)
	}
	_ = w.Close()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(rec, req)
	return rec
}

func TestUpload_WithoutToken_401(t *testing.T) {
	os.Setenv("JWT_SECRET", "upload-secret")
	t.Cleanup(func() { os.Unsetenv("JWT_SECRET") })

	called := false
	svc := &mockUploadService{
		SaveFileFn: func(file *multipart.FileHeader, folder string, fileType string) (*UploadResult, error) {
			called = true
			return nil, nil
		},
	}
	r := setupRouter(svc)

	w := doMultipart(t, r, nil, "file", "a.png", "image/png", []byte("x"), "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("code=%d want 401", w.Code)
	}
	if called {
		t.Fatalf("service must not be reached without a token")
	}
}

func TestUpload_NoFile_400(t *testing.T) {
	os.Setenv("JWT_SECRET", "upload-secret")
	t.Cleanup(func() { os.Unsetenv("JWT_SECRET") })

	svc := &mockUploadService{
		SaveFileFn: func(file *multipart.FileHeader, folder string, fileType string) (*UploadResult, error) {
			t.Fatalf("service must not be reached")
			return nil, nil
		},
	}
	r := setupRouter(svc)

	token := adminToken(t, "upload-secret")
	w := doMultipart(t, r, map[string]string{"folder": "gallery"}, "", "", "", nil, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code=%d want 400", w.Code)
	}
}

func TestUpload_DefaultsFileTypeToImage(t *testing.T) {
	os.Setenv("JWT_SECRET", "upload-secret")
	t.Cleanup(func() { os.Unsetenv("JWT_SECRET") })

	svc := &mockUploadService{
		SaveFileFn: func(file *multipart.FileHeader, folder string, fileType string) (*UploadResult, error) {
			if fileType != "image" {
				t.Fatalf("fileType=%q want image", fileType)
			}
			if folder != "gallery" {
				t.Fatalf("folder=%q want gallery", folder)
			}
			return &UploadResult{URL: "https://storage.googleapis.com/b/gallery/a.png", Path: "gallery/a.png", Size: 1, Type: "image/png"}, nil
		},
	}
	r := setupRouter(svc)

	token := adminToken(t, "upload-secret")
	w := doMultipart(t, r, map[string]string{"folder": "gallery"}, "file", "a.png", "image/png", []byte("x"), token)
	if w.Code != http.StatusOK {
		t.Fatalf("code=%d want 200 body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"success":true`) || !strings.Contains(w.Body.String(), "gallery/a.png") {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestUpload_StorageError_500SurfacesMessage(t *testing.T) {
	os.Setenv("JWT_SECRET", "upload-secret")
	t.Cleanup(func() { os.Unsetenv("JWT_SECRET") })

	svc := &mockUploadService{
		SaveFileFn: func(file *multipart.FileHeader, folder string, fileType string) (*UploadResult, error) {
			return nil, errors.New("failed to upload to bucket: rpc unavailable")
		},
	}
	r := setupRouter(svc)

	token := adminToken(t, "upload-secret")
	w := doMultipart(t, r, nil, "file", "a.png", "image/png", []byte("x"), token)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("code=%d want 500 body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "rpc unavailable") {
		t.Fatalf("expected storage error passed through, got %s", w.Body.String())
	}
}

func TestUpload_ValidationError_400(t *testing.T) {
	os.Setenv("JWT_SECRET", "upload-secret")
	t.Cleanup(func() { os.Unsetenv("JWT_SECRET") })

	svc := &mockUploadService{
		SaveFileFn: func(file *multipart.FileHeader, folder string, fileType string) (*UploadResult, error) {
			return nil, ErrFileTooLarge
		},
	}
	r := setupRouter(svc)

	token := adminToken(t, "upload-secret")
	w := doMultipart(t, r, nil, "file", "huge.png", "image/png", []byte("x"), token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code=%d want 400 body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "10MB") {
		t.Fatalf("expected limit message, got %s", w.Body.String())
	}
}
