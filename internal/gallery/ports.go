package gallery

type GalleryServiceAPI interface {
	GetAllImages() ([]GalleryImage, error)
	CreateImage(req CreateGalleryImageRequest) (*GalleryImage, error)
	DeleteImage(id int) error
}
