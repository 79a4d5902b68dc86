package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
	"time"

	"school-site-api/internal/util"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
)

const maxUploadBytes = 10 << 20 // 10MB

var (
	ErrUnknownFileType = errors.New("fileType must be \"image\" or \"audio\"")
	ErrUnsupportedMime = errors.New("unsupported content type")
	ErrFileTooLarge    = errors.New("file exceeds the 10MB limit")
)

type UploadService struct {
	Bucket string
}

var newUploadGCSClientHook = func(ctx context.Context) (*storage.Client, error) {
	return storage.NewClient(ctx)
}

// SaveFile validates the upload fully before touching storage, so a
// rejected file never costs a bucket write.
func (s *UploadService) SaveFile(file *multipart.FileHeader, folder string, fileType string) (*UploadResult, error) {
	if file == nil {
		return nil, errors.New("file is required")
	}

	var allowed map[string]bool
	switch fileType {
	case "image":
		allowed = imageMimeTypes
	case "audio":
		allowed = audioMimeTypes
	default:
		return nil, ErrUnknownFileType
	}

	contentType := strings.ToLower(strings.TrimSpace(file.Header.Get("Content-Type")))
	if !allowed[contentType] {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMime, contentType)
	}

	if file.Size > maxUploadBytes {
		return nil, ErrFileTooLarge
	}

	fh, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer fh.Close()

	data, err := io.ReadAll(io.LimitReader(fh, maxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	if int64(len(data)) > maxUploadBytes {
		return nil, ErrFileTooLarge
	}

	ext := util.ExtFromFilenameOrMime(file.Filename, contentType)
	objectPath := fmt.Sprintf("%s/%d-%s%s",
		util.SanitizePart(folder),
		time.Now().UnixMilli(),
		strings.Split(uuid.NewString(), "-")[0],
		ext,
	)

	ctx := context.Background()
	client, err := newUploadGCSClientHook(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	defer client.Close()

	size, err := util.UploadObject(ctx, client, s.Bucket, objectPath, contentType, data)
	if err != nil {
		return nil, fmt.Errorf("failed to upload to bucket: %w", err)
	}

	return &UploadResult{
		URL:  util.PublicGCSURL(s.Bucket, objectPath),
		Path: objectPath,
		Size: size,
		Type: contentType,
	}, nil
}
