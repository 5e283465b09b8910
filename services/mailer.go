package services

import (
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strings"
	"sync"

	"highrange-backend/models"
	"highrange-backend/utils/logger"
)

// MailTransport sends one notification message over some channel
type MailTransport interface {
	Send(ctx context.Context, msg *models.NotificationMessage) error
	Channel() string
}

// NewMailTransport selects the transport from config. Dry-run is used when
// the explicit override is set or the configured provider has no credentials;
// whether dry-run is acceptable for a given submission type is the pipeline's
// policy decision, not the transport's.
func NewMailTransport(cfg *models.Config, log logger.Logger) (MailTransport, error) {
	if cfg.DryRunOverride || !cfg.HasMailCredentials() {
		return NewDryRunTransport(log), nil
	}
	if cfg.MailProvider == "ses" {
		return NewSESTransport(cfg, log)
	}
	return NewSMTPTransport(cfg, log), nil
}

// DryRunTransport records and logs messages instead of sending them. No
// network call is ever made. Used in local development and whenever mail
// credentials are absent.
type DryRunTransport struct {
	logger logger.Logger

	mu       sync.Mutex
	recorded []string
}

// NewDryRunTransport creates a transport that only logs
func NewDryRunTransport(log logger.Logger) *DryRunTransport {
	return &DryRunTransport{logger: log}
}

// Send records the message and logs its envelope and plain-text body
func (t *DryRunTransport) Send(ctx context.Context, msg *models.NotificationMessage) error {
	t.mu.Lock()
	t.recorded = append(t.recorded, msg.Subject)
	t.mu.Unlock()

	t.logger.Infof("[dry-run] to=%s subject=%q", msg.Recipient, msg.Subject)
	t.logger.Debugf("[dry-run] body:\n%s", msg.PlainText)
	return nil
}

// Channel reports the dry-run channel
func (t *DryRunTransport) Channel() string {
	return models.ChannelDryRun
}

// Recorded returns the subjects of every message recorded so far
func (t *DryRunTransport) Recorded() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, len(t.recorded))
	copy(out, t.recorded)
	return out
}

// SMTPTransport sends mail over SMTP with the configured account
type SMTPTransport struct {
	host     string
	port     int
	username string
	password string
	from     string
	fromName string
	logger   logger.Logger
}

// NewSMTPTransport creates an SMTP transport from config
func NewSMTPTransport(cfg *models.Config, log logger.Logger) *SMTPTransport {
	from := cfg.MailFrom
	if from == "" {
		from = cfg.MailUser
	}
	return &SMTPTransport{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.MailUser,
		password: cfg.MailPass,
		from:     from,
		fromName: cfg.MailFromName,
		logger:   log,
	}
}

// Send delivers the message as multipart/alternative so clients can pick the
// plain-text or rich-text rendering
func (t *SMTPTransport) Send(ctx context.Context, msg *models.NotificationMessage) error {
	payload := buildMIMEMessage(t.sender(), msg)
	addr := net.JoinHostPort(t.host, fmt.Sprintf("%d", t.port))
	auth := smtp.PlainAuth("", t.username, t.password, t.host)

	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: t.host})
	if err != nil {
		// Port 587 servers expect STARTTLS; SendMail negotiates it
		if err := smtp.SendMail(addr, auth, t.from, []string{msg.Recipient}, payload); err != nil {
			return fmt.Errorf("smtp send failed: %w", err)
		}
		return nil
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, t.host)
	if err != nil {
		return fmt.Errorf("smtp client failed: %w", err)
	}
	defer client.Quit()

	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth failed: %w", err)
	}
	if err := client.Mail(t.from); err != nil {
		return fmt.Errorf("smtp mail failed: %w", err)
	}
	if err := client.Rcpt(msg.Recipient); err != nil {
		return fmt.Errorf("smtp rcpt failed: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data failed: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("smtp write failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp close failed: %w", err)
	}

	return nil
}

// Channel reports the live channel
func (t *SMTPTransport) Channel() string {
	return models.ChannelLive
}

func (t *SMTPTransport) sender() string {
	if t.fromName != "" {
		return fmt.Sprintf("%s <%s>", t.fromName, t.from)
	}
	return t.from
}

const mimeBoundary = "=_highrange_alt"

// sanitizeHeader strips CR/LF so a submitter-supplied value can never
// terminate a header and inject its own
func sanitizeHeader(s string) string {
	return strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ").Replace(s)
}

// encodeSubject makes a subject safe for the wire: line breaks are stripped
// and non-ASCII text is Q-encoded
func encodeSubject(s string) string {
	return mime.QEncoding.Encode("utf-8", sanitizeHeader(s))
}

// buildMIMEMessage renders the message as multipart/alternative MIME
func buildMIMEMessage(from string, msg *models.NotificationMessage) []byte {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("From: %s\r\n", sanitizeHeader(from)))
	b.WriteString(fmt.Sprintf("To: %s\r\n", sanitizeHeader(msg.Recipient)))
	if msg.ReplyTo != "" {
		b.WriteString(fmt.Sprintf("Reply-To: %s\r\n", sanitizeHeader(msg.ReplyTo)))
	}
	b.WriteString(fmt.Sprintf("Subject: %s\r\n", encodeSubject(msg.Subject)))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", mimeBoundary))

	b.WriteString(fmt.Sprintf("--%s\r\n", mimeBoundary))
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	b.WriteString(msg.PlainText)
	b.WriteString("\r\n")

	b.WriteString(fmt.Sprintf("--%s\r\n", mimeBoundary))
	b.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	b.WriteString(msg.RichText)
	b.WriteString("\r\n")

	b.WriteString(fmt.Sprintf("--%s--\r\n", mimeBoundary))

	return []byte(b.String())
}

// Dispatcher sends the operator/submitter message pair through one transport.
// The operator notice goes first; if either send fails the dispatch as a
// whole is failed so partial success is never reported as success.
type Dispatcher struct {
	transport MailTransport
	logger    logger.Logger
}

// NewDispatcher creates a dispatcher over the given transport
func NewDispatcher(transport MailTransport, log logger.Logger) *Dispatcher {
	return &Dispatcher{transport: transport, logger: log}
}

// Channel reports the active delivery channel
func (d *Dispatcher) Channel() string {
	return d.transport.Channel()
}

// Dispatch sends both messages sequentially
func (d *Dispatcher) Dispatch(ctx context.Context, pair *MessagePair) (*models.DispatchOutcome, error) {
	channel := d.transport.Channel()
	outcome := &models.DispatchOutcome{DryRun: channel == models.ChannelDryRun}

	if err := d.transport.Send(ctx, &pair.Operator); err != nil {
		d.logger.Errorf("Operator notification failed: %v", err)
		outcome.Operator = models.DeliveryResult{Channel: channel, Delivered: false, Err: err}
		return outcome, err
	}
	outcome.Operator = models.DeliveryResult{Channel: channel, Delivered: true}

	if err := d.transport.Send(ctx, &pair.Acknowledgment); err != nil {
		d.logger.Errorf("Acknowledgment notification failed: %v", err)
		outcome.Submitter = models.DeliveryResult{Channel: channel, Delivered: false, Err: err}
		return outcome, err
	}
	outcome.Submitter = models.DeliveryResult{Channel: channel, Delivered: true}

	return outcome, nil
}
