package api

import (
	"fmt"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const uploadURLPrefix = "/uploads/"

// UploadStorage keeps every upload in one flat directory. Names embed a
// timestamp and a random suffix so concurrent uploads cannot collide.
type UploadStorage struct {
	dir string
}

func NewUploadStorage(dir string) (*UploadStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &UploadStorage{dir: dir}, nil
}

func (storage *UploadStorage) Dir() string {
	return storage.dir
}

// Save stores the uploaded file under "<field>-<unixms>-<random><ext>"
// and returns the relative URL recorded on the owning entity.
func (storage *UploadStorage) Save(c *fiber.Ctx, fileHeader *multipart.FileHeader, field string) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	name := fmt.Sprintf("%s-%d-%d%s", field, time.Now().UnixMilli(), rand.Intn(1_000_000_000), ext)
	if err := c.SaveFile(fileHeader, filepath.Join(storage.dir, name)); err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}
	return uploadURLPrefix + name, nil
}

// Remove deletes a stored upload by its relative URL.
func (storage *UploadStorage) Remove(fileURL string) error {
	name := filepath.Base(strings.TrimPrefix(fileURL, uploadURLPrefix))
	if name == "" || name == "." || name == ".." {
		return fmt.Errorf("invalid upload reference %q", fileURL)
	}
	return os.Remove(filepath.Join(storage.dir, name))
}

const brochureFileName = "brochure.pdf"

func (storage *UploadStorage) BrochurePath() string {
	return filepath.Join(storage.dir, brochureFileName)
}

// ReplaceBrochure swaps the published brochure for the uploaded one.
func (storage *UploadStorage) ReplaceBrochure(c *fiber.Ctx, fileHeader *multipart.FileHeader) error {
	return c.SaveFile(fileHeader, storage.BrochurePath())
}
