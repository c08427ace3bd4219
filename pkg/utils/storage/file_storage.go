package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	MaxFileSize = 5 * 1024 * 1024 // 5MB
	imageDir    = "images/properties"
)

var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// SaveImage validates the upload and writes it under
// {staticRoot}/images/properties/{propertyID}_{token}{ext}, returning
// the public path recorded on the image row. The file write and the
// later row insert are deliberately two steps; an orphaned file from a
// failed insert is tolerated.
func SaveImage(file *multipart.FileHeader, staticRoot string, propertyID uint) (string, error) {
	if file.Size > MaxFileSize {
		return "", fmt.Errorf("file size too large. Maximum size is %d bytes", MaxFileSize)
	}

	contentType := file.Header.Get("Content-Type")
	if !allowedTypes[contentType] {
		return "", fmt.Errorf("invalid file type. Allowed types are: jpeg, png")
	}

	dir := filepath.Join(staticRoot, imageDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("could not create upload directory: %w", err)
	}

	fileName := fmt.Sprintf("%d_%s%s", propertyID, uuid.NewString(), filepath.Ext(file.Filename))

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, fileName))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("could not write image: %w", err)
	}

	return "/" + imageDir + "/" + fileName, nil
}

// DeleteImage removes the file behind a stored public path. A file that
// is already gone is not an error.
func DeleteImage(staticRoot, imageURL string) error {
	if !strings.HasPrefix(imageURL, "/images/") {
		return nil
	}

	path := filepath.Join(staticRoot, strings.TrimPrefix(imageURL, "/"))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
