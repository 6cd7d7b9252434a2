package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pawsitive-rescue/volunteer-match/pkg/core/model"
)

// EmailSender sends a plain email. Implemented by the Gmail client.
type EmailSender interface {
	SendEmail(to, subject, body string) error
}

// EmailNotifier sends assignment notices by email. Volunteers without an
// email address on file are skipped.
type EmailNotifier struct {
	sender EmailSender
	store  ProfileStore
	logger *zap.Logger
}

// NewEmailNotifier creates an EmailNotifier
func NewEmailNotifier(sender EmailSender, store ProfileStore, logger *zap.Logger) *EmailNotifier {
	return &EmailNotifier{sender: sender, store: store, logger: logger}
}

// NotifyAssigned emails the volunteer about their new assignment
func (n *EmailNotifier) NotifyAssigned(ctx context.Context, volunteerID string, event *model.Event) error {
	volunteers, err := n.store.Volunteers(ctx)
	if err != nil {
		return fmt.Errorf("failed to look up volunteer: %w", err)
	}

	var email string
	for _, v := range volunteers {
		if v.ID == volunteerID {
			email = v.Email
			break
		}
	}
	if email == "" {
		n.logger.Debug("Volunteer has no email on file, skipping notice",
			zap.String("volunteer_id", volunteerID))
		return nil
	}

	subject := fmt.Sprintf("You're assigned: %s", event.Name)
	body := fmt.Sprintf(
		"Hi,\n\nYou have been assigned to %s on %s",
		event.Name, event.Date)
	if event.TimeOfDay != "" {
		body += fmt.Sprintf(" (%s)", event.TimeOfDay)
	}
	body += fmt.Sprintf(".\nLocation: %s\n\nThank you for volunteering!\n", event.Location)

	if err := n.sender.SendEmail(email, subject, body); err != nil {
		return fmt.Errorf("failed to email volunteer: %w", err)
	}

	n.logger.Info("Sent assignment notice",
		zap.String("volunteer_id", volunteerID),
		zap.String("event_id", event.ID))
	return nil
}
