package mail

import (
	"fmt"
	"net/url"

	"github.com/symposiahq/symposia/internal/models"
)

func (notifier *Notifier) AbstractSubmitted(recipient models.User, abstract models.Abstract) {
	notifier.dispatch(Message{
		To:      recipient.Email,
		Subject: fmt.Sprintf("Abstract received: %s", abstract.ReferenceID),
		Body: fmt.Sprintf(
			"Dear %s,\n\nYour abstract %q has been received and assigned reference ID %s.\n"+
				"It is now awaiting review. You can track its status from your dashboard.\n\n"+
				"Symposia Organizing Committee",
			recipientName(recipient), abstract.Title, abstract.ReferenceID),
	})
}

func (notifier *Notifier) AbstractStatusChanged(recipient models.User, abstract models.Abstract) {
	var outcome string
	switch abstract.Status {
	case models.StatusAccepted:
		outcome = "has been accepted. Congratulations! Further presentation details will follow."
	case models.StatusRejected:
		outcome = "was not accepted this time. Thank you for your submission."
	default:
		outcome = "has been moved back to review."
	}

	notifier.dispatch(Message{
		To:      recipient.Email,
		Subject: fmt.Sprintf("Abstract %s: status update", abstract.ReferenceID),
		Body: fmt.Sprintf(
			"Dear %s,\n\nYour abstract %q (%s) %s\n\nSymposia Organizing Committee",
			recipientName(recipient), abstract.Title, abstract.ReferenceID, outcome),
	})
}

func (notifier *Notifier) InvitationCreated(invitation models.Invitation) {
	var path, action string
	switch invitation.Type {
	case models.InvitationTypeAttendance:
		path = "/invitations/attendance"
		action = "confirm your attendance"
	default:
		path = "/invitations/register"
		action = "create your account"
	}
	link := fmt.Sprintf("%s%s?token=%s", notifier.clientURL, path, url.QueryEscape(invitation.Token))

	body := fmt.Sprintf(
		"Dear %s,\n\nYou have been invited to %s for the Symposia conference.\n\n%s\n\n"+
			"This invitation expires on %s.\n\nSymposia Organizing Committee",
		invitation.Name, action, link, invitation.ExpiresAt.Format("2 January 2006"))
	if invitation.Message != "" {
		body = fmt.Sprintf(
			"Dear %s,\n\nYou have been invited to %s for the Symposia conference.\n\n%s\n\n%s\n\n"+
				"This invitation expires on %s.\n\nSymposia Organizing Committee",
			invitation.Name, action, invitation.Message, link, invitation.ExpiresAt.Format("2 January 2006"))
	}

	notifier.dispatch(Message{
		To:      invitation.Email,
		Subject: "You are invited to Symposia",
		Body:    body,
	})
}

func (notifier *Notifier) InvitationResolved(sender models.User, invitation models.Invitation) {
	body := fmt.Sprintf(
		"%s (%s) has %s your %s invitation.",
		invitation.Name, invitation.Email, invitation.Status, invitation.Type)
	if invitation.Type == models.InvitationTypeAttendance && invitation.Status == models.StatusAccepted {
		body = fmt.Sprintf("%s\nReported institution: %s\nReported position: %s",
			body, invitation.Institution, invitation.Position)
	}

	notifier.dispatch(Message{
		To:      sender.Email,
		Subject: fmt.Sprintf("Invitation %s: %s", invitation.Status, invitation.Email),
		Body:    body,
	})
}

func recipientName(user models.User) string {
	if user.FirstName != "" {
		return user.FirstName + " " + user.LastName
	}
	return user.Username
}
