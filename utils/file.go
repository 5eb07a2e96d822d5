package utils

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var allowedImageExts = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

// SaveTempUpload validates an uploaded image and writes it to a temp path.
// The caller is responsible for removing the file.
func SaveTempUpload(c *gin.Context, file *multipart.FileHeader) (string, error) {
	if file.Size > 5*1024*1024 {
		return "", errors.New("file too large (max 5MB)")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	allowed := false
	for _, e := range allowedImageExts {
		if ext == e {
			allowed = true
			break
		}
	}
	if !allowed {
		return "", errors.New("invalid file type")
	}

	tmpPath := filepath.Join(os.TempDir(), fmt.Sprintf("upload_%s%s", uuid.NewString(), ext))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		return "", err
	}

	return tmpPath, nil
}
