package notify

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"github.com/sirupsen/logrus"

	"pixelwall/internal/config"
)

// Notifier delivers transactional email. The core never assumes delivery
// actually happens; one deployment configuration disables it entirely.
type Notifier interface {
	Send(ctx context.Context, to, subject, body string) error
}

// NewNotifier selects the SMTP or no-op implementation from configuration.
func NewNotifier(cfg config.Config) Notifier {
	if !cfg.MailEnabled {
		return &NoopNotifier{}
	}
	return &SMTPNotifier{
		addr: net.JoinHostPort(strings.TrimSpace(cfg.MailHost), strings.TrimSpace(cfg.MailPort)),
		from: strings.TrimSpace(cfg.MailFrom),
	}
}

// NoopNotifier drops messages. Used when email delivery is disabled.
type NoopNotifier struct{}

// Send logs the suppressed message and succeeds.
func (n *NoopNotifier) Send(ctx context.Context, to, subject, body string) error {
	logrus.WithFields(logrus.Fields{
		"to":      to,
		"subject": subject,
	}).Debug("mail delivery disabled, message dropped")
	return nil
}

// SMTPNotifier sends plain-text mail through a relay without authentication.
type SMTPNotifier struct {
	addr string
	from string
}

// Send delivers one message. Failures surface to the caller; they are not
// retried.
func (n *SMTPNotifier) Send(ctx context.Context, to, subject, body string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	msg := fmt.Sprintf("From: NOREPLY <%s>\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		n.from, to, subject, body)

	if err := smtp.SendMail(n.addr, nil, n.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

var _ Notifier = (*NoopNotifier)(nil)
var _ Notifier = (*SMTPNotifier)(nil)
