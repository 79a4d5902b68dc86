package upload

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type UploadController struct {
	Service UploadServiceAPI
}

func (uc *UploadController) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}

	folder := c.PostForm("folder")
	fileType := c.PostForm("fileType")
	if fileType == "" {
		fileType = "image"
	}

	result, err := uc.Service.SaveFile(file, folder, fileType)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownFileType), errors.Is(err, ErrUnsupportedMime), errors.Is(err, ErrFileTooLarge):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"url":     result.URL,
		"path":    result.Path,
		"size":    result.Size,
		"type":    result.Type,
	})
}
