package mailer

import (
	"context"
	"fmt"
	"strings"

	"store-sync/core/faults"

	"github.com/wneessen/go-mail"
)

// Message is one outbound report: one recipient, dual-part body, at most
// one file attachment.
type Message struct {
	To             string
	Subject        string
	Body           string
	AttachmentPath string
	// AttachmentName overrides the filename shown to the recipient.
	// Empty means the base name of AttachmentPath.
	AttachmentName string
}

// Mailer sends report messages over authenticated SMTP with opportunistic
// TLS upgrade.
type Mailer struct {
	cfg Config
}

// New creates a mailer from configuration.
func New(cfg Config) *Mailer {
	return &Mailer{cfg: cfg}
}

// Send delivers one message. The plain body is always attached alongside a
// styled HTML alternative for clients that render it.
func (m *Mailer) Send(ctx context.Context, msg Message) error {
	out := mail.NewMsg()
	if err := out.From(m.cfg.Sender); err != nil {
		return fmt.Errorf("invalid sender %q: %w", m.cfg.Sender, err)
	}
	if err := out.To(msg.To); err != nil {
		return fmt.Errorf("invalid recipient %q: %w", msg.To, err)
	}
	out.Subject(msg.Subject)
	out.SetBodyString(mail.TypeTextPlain, msg.Body)
	out.AddAlternativeString(mail.TypeTextHTML, renderHTML(msg.Body))

	if msg.AttachmentPath != "" {
		if msg.AttachmentName != "" {
			out.AttachFile(msg.AttachmentPath, mail.WithFileName(msg.AttachmentName))
		} else {
			out.AttachFile(msg.AttachmentPath)
		}
	}

	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Sender),
		mail.WithPassword(m.cfg.Password),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, out); err != nil {
		if isAuthError(err) {
			return faults.Auth("smtp login as %q on %s: %v", m.cfg.Sender, m.cfg.Host, err)
		}
		return fmt.Errorf("send to %q: %w", msg.To, err)
	}
	return nil
}

func isAuthError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "auth") || strings.Contains(msg, "535")
}
