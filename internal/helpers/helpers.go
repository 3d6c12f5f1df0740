package helpers

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// allowedImageExtensions limits event photo uploads to plain image types.
var allowedImageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".avif": true,
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SafeFilename strips any path components and unsafe characters from an
// uploaded filename, returning "" when nothing usable remains.
func SafeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		return ""
	}
	return name
}

// AllowedImage reports whether the filename carries a permitted extension.
func AllowedImage(name string) bool {
	return allowedImageExtensions[strings.ToLower(filepath.Ext(name))]
}

// SaveUpload stores the uploaded file under dir and returns the filename
// reference to persist. It returns "" with no error when the form carries
// no usable file; the stored name is uuid-prefixed so concurrent uploads
// of the same filename cannot clobber each other.
func SaveUpload(c *gin.Context, file *multipart.FileHeader, dir string) (string, error) {
	if file == nil || file.Filename == "" {
		return "", nil
	}
	name := SafeFilename(file.Filename)
	if name == "" || !AllowedImage(name) {
		return "", nil
	}
	stored := uuid.New().String() + "_" + name
	if err := c.SaveUploadedFile(file, filepath.Join(dir, stored)); err != nil {
		return "", fmt.Errorf("failed to save upload: %w", err)
	}
	return stored, nil
}
