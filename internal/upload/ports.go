package upload

import "mime/multipart"

type UploadServiceAPI interface {
	SaveFile(file *multipart.FileHeader, folder string, fileType string) (*UploadResult, error)
}
