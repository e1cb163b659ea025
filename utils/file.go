package utils

import (
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"plant-market/config"

	"github.com/gin-gonic/gin"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// UploadFile stores an uploaded image under the configured upload directory
// and returns the relative path (e.g. "uploads/profiles/169..._pic.jpg")
// that gets persisted on the document.
func UploadFile(c *gin.Context, fileHeader *multipart.FileHeader, subDir string) (string, error) {
	if fileHeader.Size > config.AppConfig.MaxUploadSize {
		return "", errors.New("file size exceeds maximum allowed size")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExtensions[ext] {
		return "", errors.New("invalid file type. Only images are allowed")
	}

	uploadPath := filepath.Join(config.AppConfig.UploadDir, subDir)
	if err := os.MkdirAll(uploadPath, os.ModePerm); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%d_%s", time.Now().Unix(), strings.ReplaceAll(fileHeader.Filename, " ", "_"))
	if len(filename) > 255 {
		filename = fmt.Sprintf("%d%s", time.Now().Unix(), ext)
	}

	filePath := filepath.Join(uploadPath, filename)

	if err := c.SaveUploadedFile(fileHeader, filePath); err != nil {
		return "", err
	}

	return filepath.ToSlash(filepath.Join("uploads", subDir, filename)), nil
}

// DeleteFile is best-effort: a missing or undeletable file is logged, never
// surfaced to the caller.
func DeleteFile(relPath string) {
	if relPath == "" {
		return
	}
	fullPath := filepath.Join(config.AppConfig.UploadDir, strings.TrimPrefix(relPath, "uploads/"))
	if _, err := os.Stat(fullPath); err != nil {
		return
	}
	if err := os.Remove(fullPath); err != nil {
		log.Printf("Error deleting file %s: %v", fullPath, err)
	}
}
