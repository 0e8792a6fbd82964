package uploads

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// IsImage reports whether the filename has an accepted image extension.
func IsImage(filename string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(filename))]
}

// IsPDF reports whether the filename has a .pdf extension.
func IsPDF(filename string) bool {
	return strings.ToLower(filepath.Ext(filename)) == ".pdf"
}

// EnsureDir creates the directory (and parents) if it does not exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

// SaveImage stores an uploaded image under uploadDir/subdir with a unique
// name and returns the path relative to uploadDir.
func SaveImage(c *gin.Context, file *multipart.FileHeader, uploadDir, subdir string) (string, error) {
	if !IsImage(file.Filename) {
		return "", fmt.Errorf("unsupported image type: %s", filepath.Ext(file.Filename))
	}
	return save(c, file, uploadDir, subdir, uniqueName(file.Filename))
}

// SavePDF stores an uploaded PDF under uploadDir/subdir with a unique name
// and returns the path relative to uploadDir.
func SavePDF(c *gin.Context, file *multipart.FileHeader, uploadDir, subdir string) (string, error) {
	if !IsPDF(file.Filename) {
		return "", fmt.Errorf("unsupported document type: %s", filepath.Ext(file.Filename))
	}
	return save(c, file, uploadDir, subdir, uniqueName(file.Filename))
}

// SaveNamed stores an uploaded file under uploadDir/subdir using the caller's
// base name while keeping the upload's extension. Used where the stored name
// must be derived from the owning record rather than randomized.
func SaveNamed(c *gin.Context, file *multipart.FileHeader, uploadDir, subdir, baseName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	return save(c, file, uploadDir, subdir, baseName+ext)
}

// OwnerBaseName picks the stored base name for an owned document: the owner
// name when the record is already persisted, otherwise a random token so a
// first-time upload cannot collide before a durable name is known.
func OwnerBaseName(owner string) string {
	if owner != "" {
		return owner
	}
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

func uniqueName(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return uuid.New().String() + ext
}

func save(c *gin.Context, file *multipart.FileHeader, uploadDir, subdir, name string) (string, error) {
	dir := filepath.Join(uploadDir, subdir)
	if err := EnsureDir(dir); err != nil {
		return "", fmt.Errorf("could not create upload directory: %w", err)
	}
	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		return "", fmt.Errorf("failed to save uploaded file: %w", err)
	}
	return filepath.ToSlash(filepath.Join(subdir, name)), nil
}
