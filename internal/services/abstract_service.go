package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/symposiahq/symposia/internal/db"
	"github.com/symposiahq/symposia/internal/models"
)

// AbstractNotifier is the slice of the outbound-mail port the abstract
// workflow needs. Delivery is best-effort; implementations never return.
type AbstractNotifier interface {
	AbstractSubmitted(recipient models.User, abstract models.Abstract)
	AbstractStatusChanged(recipient models.User, abstract models.Abstract)
}

// FileRemover deletes a previously stored upload. Failures are treated
// as non-fatal by every caller.
type FileRemover interface {
	Remove(fileURL string) error
}

type AbstractService struct {
	abstracts db.AbstractStore
	users     db.UserStore
	notifier  AbstractNotifier
	files     FileRemover
	log       *logrus.Logger
}

func NewAbstractService(abstracts db.AbstractStore, users db.UserStore, notifier AbstractNotifier, files FileRemover, log *logrus.Logger) *AbstractService {
	return &AbstractService{abstracts: abstracts, users: users, notifier: notifier, files: files, log: log}
}

type SubmitAbstractInput struct {
	Title    string          `json:"title"`
	Category string          `json:"category"`
	Content  string          `json:"content"`
	Keywords string          `json:"keywords"`
	Authors  []models.Author `json:"authors"`
	FileURL  string          `json:"-"`
}

// Submit validates the submission, assigns the reference ID and persists
// the abstract in pending status. The confirmation email is best-effort.
//
// Exactly one author must be flagged as corresponding; submissions with
// zero or several are rejected rather than silently normalized.
func (service *AbstractService) Submit(ownerID uint, input SubmitAbstractInput) (models.Abstract, error) {
	if err := validateSubmission(input); err != nil {
		return models.Abstract{}, err
	}

	referenceID, err := GenerateReferenceID(input.Category)
	if err != nil {
		return models.Abstract{}, err
	}

	now := time.Now()
	abstract := models.Abstract{
		UserID:      ownerID,
		Title:       strings.TrimSpace(input.Title),
		Category:    input.Category,
		Content:     input.Content,
		Keywords:    input.Keywords,
		Authors:     input.Authors,
		FileURL:     input.FileURL,
		ReferenceID: referenceID,
		Status:      models.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := service.abstracts.CreateAbstract(&abstract); err != nil {
		return models.Abstract{}, err
	}

	if owner, err := service.users.FindUserByID(ownerID); err == nil {
		service.notifier.AbstractSubmitted(owner, abstract)
	} else {
		service.log.WithError(err).WithField("user_id", ownerID).Warn("skipping submission email: owner lookup failed")
	}

	return abstract, nil
}

func validateSubmission(input SubmitAbstractInput) error {
	validation := newValidationError()
	if strings.TrimSpace(input.Title) == "" {
		validation.addMissing("title")
	}
	if strings.TrimSpace(input.Category) == "" {
		validation.addMissing("category")
	}
	if strings.TrimSpace(input.Content) == "" {
		validation.addMissing("content")
	}
	if strings.TrimSpace(input.Keywords) == "" {
		validation.addMissing("keywords")
	}
	if len(input.Authors) == 0 {
		validation.addMissing("authors")
		return validation.errOrNil()
	}

	corresponding := 0
	for index, author := range input.Authors {
		if strings.TrimSpace(author.Name) == "" {
			validation.addMissing(authorField(index, "name"))
		}
		if strings.TrimSpace(author.Affiliation) == "" {
			validation.addMissing(authorField(index, "affiliation"))
		}
		if author.IsCorresponding {
			corresponding++
		}
	}
	if corresponding != 1 {
		validation.Fields["authors"] = "exactly one corresponding author required"
	}

	return validation.errOrNil()
}

func authorField(index int, field string) string {
	return "authors[" + strconv.Itoa(index) + "]." + field
}

type UpdateAbstractInput struct {
	Title    *string         `json:"title"`
	Category *string         `json:"category"`
	Content  *string         `json:"content"`
	Keywords *string         `json:"keywords"`
	Authors  []models.Author `json:"authors"`
	FileURL  string          `json:"-"`
}

// Update replaces only the supplied fields. The reference ID is immutable
// and the status can only move through SetStatus. When a new file comes
// in, the previous upload is removed afterwards, best-effort.
func (service *AbstractService) Update(abstractID uint, callerID uint, callerRole string, input UpdateAbstractInput) (models.Abstract, error) {
	abstract, err := service.abstracts.FindAbstractByID(abstractID)
	if err != nil {
		return models.Abstract{}, err
	}
	if abstract.UserID != callerID && callerRole != models.RoleAdmin {
		return models.Abstract{}, ErrForbidden
	}

	if input.Title != nil {
		abstract.Title = strings.TrimSpace(*input.Title)
	}
	if input.Category != nil {
		abstract.Category = *input.Category
	}
	if input.Content != nil {
		abstract.Content = *input.Content
	}
	if input.Keywords != nil {
		abstract.Keywords = *input.Keywords
	}
	if input.Authors != nil {
		if err := validateAuthorsPatch(input.Authors); err != nil {
			return models.Abstract{}, err
		}
		abstract.Authors = input.Authors
	}

	staleFile := ""
	if input.FileURL != "" && input.FileURL != abstract.FileURL {
		staleFile = abstract.FileURL
		abstract.FileURL = input.FileURL
	}
	abstract.UpdatedAt = time.Now()

	if err := service.abstracts.SaveAbstract(&abstract); err != nil {
		return models.Abstract{}, err
	}

	if staleFile != "" {
		service.removeFile(staleFile)
	}

	return abstract, nil
}

func validateAuthorsPatch(authors []models.Author) error {
	validation := newValidationError()
	corresponding := 0
	for index, author := range authors {
		if strings.TrimSpace(author.Name) == "" {
			validation.addMissing(authorField(index, "name"))
		}
		if strings.TrimSpace(author.Affiliation) == "" {
			validation.addMissing(authorField(index, "affiliation"))
		}
		if author.IsCorresponding {
			corresponding++
		}
	}
	if corresponding != 1 {
		validation.Fields["authors"] = "exactly one corresponding author required"
	}
	return validation.errOrNil()
}

// Delete removes the record and any attached file. A second delete of the
// same abstract surfaces NotFound.
func (service *AbstractService) Delete(abstractID uint, callerID uint, callerRole string) error {
	abstract, err := service.abstracts.FindAbstractByID(abstractID)
	if err != nil {
		return err
	}
	if abstract.UserID != callerID && callerRole != models.RoleAdmin {
		return ErrForbidden
	}

	if err := service.abstracts.DeleteAbstract(abstract.ID); err != nil {
		return err
	}
	if abstract.FileURL != "" {
		service.removeFile(abstract.FileURL)
	}
	return nil
}

func (service *AbstractService) ListMine(ownerID uint) ([]models.Abstract, error) {
	return service.abstracts.ListAbstractsByUser(ownerID)
}

func (service *AbstractService) ListAll() ([]models.Abstract, error) {
	return service.abstracts.ListAbstracts()
}

// SetStatus moves the abstract between pending, accepted and rejected.
// No state is terminal: an accepted or rejected abstract may return to
// pending for re-review. The owner is notified best-effort.
func (service *AbstractService) SetStatus(abstractID uint, newStatus string) (models.Abstract, error) {
	if !models.ValidStatus(newStatus) {
		return models.Abstract{}, ErrInvalidStatus
	}

	abstract, err := service.abstracts.FindAbstractByID(abstractID)
	if err != nil {
		return models.Abstract{}, err
	}

	abstract.Status = newStatus
	abstract.UpdatedAt = time.Now()
	if err := service.abstracts.SaveAbstract(&abstract); err != nil {
		return models.Abstract{}, err
	}

	if owner, err := service.users.FindUserByID(abstract.UserID); err == nil {
		service.notifier.AbstractStatusChanged(owner, abstract)
	} else {
		service.log.WithError(err).WithField("abstract_id", abstract.ID).Warn("skipping status email: owner lookup failed")
	}

	return abstract, nil
}

func (service *AbstractService) removeFile(fileURL string) {
	if service.files == nil {
		return
	}
	if err := service.files.Remove(fileURL); err != nil {
		service.log.WithError(err).WithField("file", fileURL).Warn("stale upload cleanup failed")
	}
}
