package services

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/symposiahq/symposia/internal/db"
	"github.com/symposiahq/symposia/internal/models"
	"github.com/symposiahq/symposia/internal/security"
)

// InvitationNotifier is the slice of the outbound-mail port the
// invitation workflow needs.
type InvitationNotifier interface {
	InvitationCreated(invitation models.Invitation)
	InvitationResolved(sender models.User, invitation models.Invitation)
}

type InvitationService struct {
	invitations db.InvitationStore
	users       db.UserStore
	notifier    InvitationNotifier
	log         *logrus.Logger
}

func NewInvitationService(invitations db.InvitationStore, users db.UserStore, notifier InvitationNotifier, log *logrus.Logger) *InvitationService {
	return &InvitationService{invitations: invitations, users: users, notifier: notifier, log: log}
}

type CreateInvitationInput struct {
	Email   string `json:"email" validate:"required,email"`
	Name    string `json:"name" validate:"required"`
	Role    string `json:"role"`
	Type    string `json:"type" validate:"required"`
	Message string `json:"message"`
}

// Create issues a fresh bearer token valid for 14 days and dispatches the
// deep-link email. The sender must already be verified as an admin.
func (service *InvitationService) Create(senderID uint, input CreateInvitationInput) (models.Invitation, error) {
	validation := newValidationError()
	if strings.TrimSpace(input.Email) == "" {
		validation.addMissing("email")
	}
	if strings.TrimSpace(input.Name) == "" {
		validation.addMissing("name")
	}
	if !models.ValidInvitationType(input.Type) {
		validation.Fields["type"] = "must be account or attendance"
	}
	if err := validation.errOrNil(); err != nil {
		return models.Invitation{}, err
	}

	token, err := security.InvitationToken()
	if err != nil {
		return models.Invitation{}, err
	}

	role := input.Role
	if role == "" {
		role = models.RoleUser
	}

	now := time.Now()
	invitation := models.Invitation{
		Email:     normalizeEmail(input.Email),
		Name:      strings.TrimSpace(input.Name),
		Token:     token,
		Role:      role,
		Type:      input.Type,
		Status:    models.StatusPending,
		Message:   strings.TrimSpace(input.Message),
		SenderID:  senderID,
		CreatedAt: now,
		ExpiresAt: now.Add(models.DefaultInvitationValidity),
	}
	if err := service.invitations.CreateInvitation(&invitation); err != nil {
		return models.Invitation{}, err
	}

	service.notifier.InvitationCreated(invitation)
	return invitation, nil
}

func (service *InvitationService) GetByToken(token string) (models.Invitation, error) {
	return service.invitations.FindInvitationByToken(token)
}

func (service *InvitationService) List() ([]models.Invitation, error) {
	return service.invitations.ListInvitations()
}

type ResolveInvitationInput struct {
	Accept      bool   `json:"accept"`
	Institution string `json:"institution"`
	Position    string `json:"position"`
}

// Resolve moves a pending invitation to accepted or rejected. The expiry
// check runs first, so an expired token reports Expired regardless of any
// prior state. The conditional store update makes a racing second resolve
// lose with ErrAlreadyResolved.
func (service *InvitationService) Resolve(token string, input ResolveInvitationInput) (models.Invitation, error) {
	invitation, err := service.invitations.FindInvitationByToken(token)
	if err != nil {
		return models.Invitation{}, err
	}

	if invitation.Expired(time.Now()) {
		return models.Invitation{}, ErrInvitationExpired
	}
	if invitation.Status != models.StatusPending {
		return models.Invitation{}, ErrAlreadyResolved
	}

	status := models.StatusRejected
	if input.Accept {
		status = models.StatusAccepted
	}

	institution := ""
	position := ""
	if invitation.Type == models.InvitationTypeAttendance {
		institution = strings.TrimSpace(input.Institution)
		position = strings.TrimSpace(input.Position)
	}

	won, err := service.invitations.ResolveInvitation(token, status, institution, position)
	if err != nil {
		return models.Invitation{}, err
	}
	if !won {
		return models.Invitation{}, ErrAlreadyResolved
	}

	invitation.Status = status
	invitation.Institution = institution
	invitation.Position = position

	if sender, err := service.users.FindUserByID(invitation.SenderID); err == nil {
		service.notifier.InvitationResolved(sender, invitation)
	} else {
		service.log.WithError(err).WithField("invitation_id", invitation.ID).Warn("skipping resolution email: sender lookup failed")
	}

	return invitation, nil
}
