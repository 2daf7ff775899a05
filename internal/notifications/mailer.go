package notifications

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/suyashwaghate123/happyhomesbackend/internal/leads"
)

// Mailer sends intake notifications through Brevo. A nil Mailer means mail
// is not configured; the intake services already tolerate a nil notifier.
type Mailer struct {
	client     *BrevoClient
	adminEmail string
}

func NewMailer(client *BrevoClient, adminEmail string) *Mailer {
	if client == nil || strings.TrimSpace(adminEmail) == "" {
		return nil
	}
	return &Mailer{client: client, adminEmail: adminEmail}
}

func (m *Mailer) SendLeadNotification(ctx context.Context, lead leads.Lead, kind string) error {
	if m == nil {
		return errors.New("mailer is nil")
	}
	subject := fmt.Sprintf("New %s Inquiry - Happy Homes", kind)
	htmlBody, err := buildLeadNotificationHTML(lead, kind)
	if err != nil {
		return err
	}
	_, err = m.client.sendHTML(ctx, m.adminEmail, "Happy Homes Admin", subject, htmlBody)
	return err
}

func (m *Mailer) SendLeadAutoReply(ctx context.Context, lead leads.Lead) error {
	if m == nil {
		return errors.New("mailer is nil")
	}
	htmlBody, err := buildAutoReplyHTML(lead)
	if err != nil {
		return err
	}
	_, err = m.client.sendHTML(ctx, lead.Email, lead.Name, "Thank you for contacting Happy Homes", htmlBody)
	return err
}

func (m *Mailer) SendVisitNotification(ctx context.Context, visitor leads.Visitor) error {
	if m == nil {
		return errors.New("mailer is nil")
	}
	htmlBody, err := buildVisitNotificationHTML(visitor)
	if err != nil {
		return err
	}
	_, err = m.client.sendHTML(ctx, m.adminEmail, "Happy Homes Admin", "New Visit Request - Happy Homes", htmlBody)
	return err
}
