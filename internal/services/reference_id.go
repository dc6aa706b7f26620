package services

import (
	"github.com/symposiahq/symposia/internal/models"
	"github.com/symposiahq/symposia/internal/security"
)

// GenerateReferenceID builds the human-facing abstract identifier:
// the category's two-letter code plus a random four-digit suffix.
// Once assigned it never changes.
func GenerateReferenceID(category string) (string, error) {
	suffix, err := security.RandomString(4, security.Digits)
	if err != nil {
		return "", err
	}
	return models.CategoryCode(category) + "-" + suffix, nil
}
