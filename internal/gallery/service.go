package gallery

import (
	"context"
	"log"

	"school-site-api/internal/util"

	"cloud.google.com/go/storage"
	"gorm.io/gorm"
)

type GalleryService struct {
	DB     *gorm.DB
	Bucket string
}

var newGalleryGCSClientHook = func(ctx context.Context) (*storage.Client, error) {
	return storage.NewClient(ctx)
}

func (s *GalleryService) GetAllImages() ([]GalleryImage, error) {
	var images []GalleryImage
	result := s.DB.Order("display_order ASC").Find(&images)
	if result.Error != nil {
		return nil, result.Error
	}
	return images, nil
}

func (s *GalleryService) CreateImage(req CreateGalleryImageRequest) (*GalleryImage, error) {
	image := GalleryImage{
		ImageURL:     req.ImageURL,
		AltText:      req.AltText,
		DisplayOrder: req.DisplayOrder,
	}

	if err := s.DB.Create(&image).Error; err != nil {
		return nil, err
	}

	return &image, nil
}

func (s *GalleryService) DeleteImage(id int) error {
	var image GalleryImage
	if err := s.DB.First(&image, id).Error; err != nil {
		return err
	}

	if err := s.DB.Delete(&GalleryImage{}, id).Error; err != nil {
		return err
	}

	s.removeStoredObject(image.ImageURL)
	return nil
}

// removeStoredObject is best-effort: the row is already gone, so a failed
// storage delete only leaks an orphaned object.
func (s *GalleryService) removeStoredObject(rawURL string) {
	if s.Bucket == "" || rawURL == "" {
		return
	}

	objectPath, err := util.ExtractObjectPathFromGCSURL(s.Bucket, rawURL)
	if err != nil {
		// URL points outside our bucket, nothing to clean up
		return
	}

	ctx := context.Background()
	client, err := newGalleryGCSClientHook(ctx)
	if err != nil {
		log.Printf("gallery: storage client for cleanup: %v", err)
		return
	}
	defer client.Close()

	if err := util.DeleteObject(ctx, client, s.Bucket, objectPath); err != nil {
		log.Printf("gallery: failed to remove object %s: %v", objectPath, err)
	}
}
