package services

import (
	"fmt"
	"log"

	"plumtrips-backend/config"
	"plumtrips-backend/models"
	"plumtrips-backend/onboarding"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type NotificationService struct{}

var notifService *NotificationService

func GetNotificationService() *NotificationService {
	if notifService == nil {
		notifService = &NotificationService{}
	}
	return notifService
}

func (ns *NotificationService) sendEmail(toEmail string, toName string, subject string, htmlBody string) {
	if config.AppConfig.SendGridAPIKey == "" {
		log.Printf("⚠️  SendGrid API key not set, skipping email to %s", toEmail)
		return
	}

	from := mail.NewEmail(config.AppConfig.AppName, config.AppConfig.SendGridFrom)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridAPIKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("❌ Email send error: %v", err)
		return
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		log.Printf("✅ Email sent to %s", toEmail)
	} else {
		log.Printf("⚠️  SendGrid returned status: %d", resp.StatusCode)
	}
}

func kindLabel(kind onboarding.Kind) string {
	switch kind {
	case onboarding.KindEmployee:
		return "employee"
	case onboarding.KindVendor:
		return "vendor"
	case onboarding.KindBusiness:
		return "business partner"
	default:
		return string(kind)
	}
}

// NotifyInvite emails the onboarding link to the invitee.
func (ns *NotificationService) NotifyInvite(invite models.Invite) {
	subject := fmt.Sprintf("Complete your %s onboarding with %s", kindLabel(invite.Kind), config.AppConfig.AppName)
	link := config.AppConfig.OnboardingURL + "/" + invite.Token
	htmlBody := buildInviteEmailHTML(invite.InviteeName, kindLabel(invite.Kind), link, invite.TurnaroundHours)
	ns.sendEmail(invite.InviteeEmail, invite.InviteeName, subject, htmlBody)
}

// NotifySubmissionReceived confirms a successful submit to the invitee.
func (ns *NotificationService) NotifySubmissionReceived(invite models.Invite, ticketID string) {
	subject := fmt.Sprintf("We received your %s onboarding details", kindLabel(invite.Kind))
	htmlBody := buildSubmissionEmailHTML(invite.InviteeName, ticketID)
	ns.sendEmail(invite.InviteeEmail, invite.InviteeName, subject, htmlBody)
}

// ============================================================
// EMAIL TEMPLATES
// ============================================================

func buildInviteEmailHTML(name, kind, link string, turnaroundHours int) string {
	greeting := "Hi,"
	if name != "" {
		greeting = fmt.Sprintf("Hi <strong>%s</strong>,", name)
	}
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f5f5f5;">
	<div style="background: white; border-radius: 12px; padding: 32px; box-shadow: 0 2px 8px rgba(0,0,0,0.1);">
		<h2 style="color: #7C3AED; margin-top: 0;">🧳 You're invited to onboard!</h2>
		<p>%s</p>
		<p>You have been invited to complete your <strong>%s</strong> onboarding. Keep your documents handy — the wizard saves your progress as you go.</p>
		<div style="margin: 24px 0;">
			<a href="%s" style="background: #7C3AED; color: white; padding: 12px 32px; border-radius: 8px; text-decoration: none; font-weight: bold;">Start Onboarding</a>
		</div>
		<p style="color: #666;">Please complete it within <strong>%d hours</strong>.</p>
		<p style="color: #999; font-size: 12px; margin-top: 24px;">— %s</p>
	</div>
</body>
</html>`, greeting, kind, link, turnaroundHours, config.AppConfig.AppName)
}

func buildSubmissionEmailHTML(name, ticketID string) string {
	greeting := "Hi,"
	if name != "" {
		greeting = fmt.Sprintf("Hi <strong>%s</strong>,", name)
	}
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f5f5f5;">
	<div style="background: white; border-radius: 12px; padding: 32px; box-shadow: 0 2px 8px rgba(0,0,0,0.1);">
		<h2 style="color: #16A34A; margin-top: 0;">✅ Submission received</h2>
		<p>%s</p>
		<p>Thanks for completing your onboarding. Our HR team will review your details and get back to you.</p>
		<div style="background: #f8f9fa; border-radius: 8px; padding: 16px; margin: 16px 0;">
			<p style="margin: 4px 0; color: #666;">Reference: <strong>%s</strong></p>
		</div>
		<p style="color: #999; font-size: 12px; margin-top: 24px;">— %s</p>
	</div>
</body>
</html>`, greeting, ticketID, config.AppConfig.AppName)
}
