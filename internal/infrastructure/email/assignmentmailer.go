package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"helpdesk/internal/shared/config"
)

// SMTPAssignmentMailer sends the "ticket assigned to you" email over
// plain SMTP via gomail.
type SMTPAssignmentMailer struct {
	cfg    *config.EmailConfig
	dialer *gomail.Dialer
}

func NewSMTPAssignmentMailer(cfg *config.EmailConfig) *SMTPAssignmentMailer {
	return &SMTPAssignmentMailer{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
	}
}

func (m *SMTPAssignmentMailer) SendTicketAssigned(ctx context.Context, to, assigneeName, ticketNumber, clientName string) error {
	subject := fmt.Sprintf("Ticket %s assigned to you", ticketNumber)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Ticket Assigned</h2>
			<p>Hi %s,</p>
			<p>Ticket <strong>%s</strong> for client <strong>%s</strong> has been assigned to you.</p>
			<p>Please sign in to review the details.</p>
		</body>
		</html>
	`, assigneeName, ticketNumber, clientName)

	plainBody := fmt.Sprintf(`Hi %s,

Ticket %s for client %s has been assigned to you.

Please sign in to review the details.
`, assigneeName, ticketNumber, clientName)

	msg := gomail.NewMessage()
	msg.SetHeader("From", msg.FormatAddress(m.cfg.FromAddress, m.cfg.FromName))
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", plainBody)
	msg.AddAlternative("text/html", htmlBody)

	// gomail has no context support; honor cancellation before dialing.
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send assignment email: %w", err)
	}
	return nil
}
