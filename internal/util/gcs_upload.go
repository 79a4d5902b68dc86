package util

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"cloud.google.com/go/storage"
)

func UploadObject(ctx context.Context, client *storage.Client, bucketName, objectName, contentType string, data []byte) (int64, error) {
	w := client.Bucket(bucketName).Object(objectName).NewWriter(ctx)
	w.ContentType = contentType

	sizeBytes, err := w.Write(data)
	if err != nil {
		// abandon the upload session before surfacing the write error
		_ = w.Close()
		return 0, err
	}

	if err := w.Close(); err != nil {
		return 0, err
	}

	return int64(sizeBytes), nil
}

func DeleteObject(ctx context.Context, client *storage.Client, bucketName, objectName string) error {
	return client.Bucket(bucketName).Object(objectName).Delete(ctx)
}

func SanitizePart(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.ReplaceAll(s, " ", "_")
	re := regexp.MustCompile(`[^a-z0-9_\-]`)
	s = re.ReplaceAllString(s, "")
	if s == "" {
		return "general"
	}
	return s
}

func PublicGCSURL(bucket, objectPath string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, objectPath)
}

// Extract object path from common GCS URL formats.
// Supports:
//   - https://storage.googleapis.com/<bucket>/<object>
//   - https://<bucket>.storage.googleapis.com/<object>
//   - signed URLs (query params are ignored)
func ExtractObjectPathFromGCSURL(bucket, raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	u.RawQuery = ""
	u.Fragment = ""

	host := u.Host
	p := strings.TrimPrefix(u.Path, "/")

	if strings.EqualFold(host, "storage.googleapis.com") {
		prefix := bucket + "/"
		if strings.HasPrefix(p, prefix) {
			return strings.TrimPrefix(p, prefix), nil
		}
		return "", fmt.Errorf("url does not point into bucket %s: %s", bucket, raw)
	}

	if strings.EqualFold(host, bucket+".storage.googleapis.com") {
		return p, nil
	}

	return "", fmt.Errorf("not a GCS url for bucket %s: %s", bucket, raw)
}
