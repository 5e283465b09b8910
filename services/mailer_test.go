package services

import (
	"context"
	"errors"
	"testing"

	"highrange-backend/models"
	"highrange-backend/utils/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// failingTransport fails sends after a configurable number of successes
type failingTransport struct {
	failAfter int
	sent      []string
}

func (t *failingTransport) Send(ctx context.Context, msg *models.NotificationMessage) error {
	if len(t.sent) >= t.failAfter {
		return errors.New("connection refused")
	}
	t.sent = append(t.sent, msg.Subject)
	return nil
}

func (t *failingTransport) Channel() string {
	return models.ChannelLive
}

// MailerTestSuite defines a test suite for transport selection and dispatch
type MailerTestSuite struct {
	suite.Suite
	ctx context.Context
	log logger.Logger
}

// SetupTest runs before each test
func (suite *MailerTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.log = logger.NewLogger("error", "text")
}

func (suite *MailerTestSuite) messagePair() *MessagePair {
	return &MessagePair{
		Operator: models.NotificationMessage{
			Recipient: "enquiries@highrangecoffee.in",
			ReplyTo:   "arun@example.com",
			Subject:   "[General Enquiry] Pricing",
			PlainText: "plain body",
			RichText:  "<p>rich body</p>",
		},
		Acknowledgment: models.NotificationMessage{
			Recipient: "arun@example.com",
			Subject:   "We have received your enquiry",
			PlainText: "ack body",
			RichText:  "<p>ack body</p>",
		},
	}
}

func (suite *MailerTestSuite) TestTransportSelectionWithoutCredentials() {
	cfg := &models.Config{MailProvider: "smtp"}

	transport, err := NewMailTransport(cfg, suite.log)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ChannelDryRun, transport.Channel())
}

func (suite *MailerTestSuite) TestTransportSelectionOverrideWinsOverCredentials() {
	cfg := &models.Config{
		MailProvider:   "smtp",
		SMTPHost:       "smtp.gmail.com",
		MailUser:       "ops@highrangecoffee.in",
		MailPass:       "app-password",
		DryRunOverride: true,
	}

	transport, err := NewMailTransport(cfg, suite.log)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ChannelDryRun, transport.Channel())
}

func (suite *MailerTestSuite) TestTransportSelectionSMTP() {
	cfg := &models.Config{
		MailProvider: "smtp",
		SMTPHost:     "smtp.gmail.com",
		SMTPPort:     587,
		MailUser:     "ops@highrangecoffee.in",
		MailPass:     "app-password",
	}

	transport, err := NewMailTransport(cfg, suite.log)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ChannelLive, transport.Channel())
	assert.IsType(suite.T(), &SMTPTransport{}, transport)
}

func (suite *MailerTestSuite) TestDryRunTransportRecordsWithoutSending() {
	transport := NewDryRunTransport(suite.log)
	pair := suite.messagePair()

	assert.NoError(suite.T(), transport.Send(suite.ctx, &pair.Operator))
	assert.NoError(suite.T(), transport.Send(suite.ctx, &pair.Acknowledgment))

	recorded := transport.Recorded()
	assert.Equal(suite.T(), []string{
		"[General Enquiry] Pricing",
		"We have received your enquiry",
	}, recorded)
}

func (suite *MailerTestSuite) TestDispatchSendsOperatorFirst() {
	transport := NewDryRunTransport(suite.log)
	dispatcher := NewDispatcher(transport, suite.log)

	outcome, err := dispatcher.Dispatch(suite.ctx, suite.messagePair())

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), outcome.DryRun)
	assert.True(suite.T(), outcome.Operator.Delivered)
	assert.True(suite.T(), outcome.Submitter.Delivered)

	recorded := transport.Recorded()
	assert.Equal(suite.T(), "[General Enquiry] Pricing", recorded[0])
	assert.Equal(suite.T(), "We have received your enquiry", recorded[1])
}

func (suite *MailerTestSuite) TestDispatchFailsWhenOperatorSendFails() {
	transport := &failingTransport{failAfter: 0}
	dispatcher := NewDispatcher(transport, suite.log)

	outcome, err := dispatcher.Dispatch(suite.ctx, suite.messagePair())

	assert.Error(suite.T(), err)
	assert.False(suite.T(), outcome.Operator.Delivered)
	assert.False(suite.T(), outcome.Submitter.Delivered)
	assert.Empty(suite.T(), transport.sent)
}

func (suite *MailerTestSuite) TestDispatchFailsWhenAcknowledgmentSendFails() {
	transport := &failingTransport{failAfter: 1}
	dispatcher := NewDispatcher(transport, suite.log)

	outcome, err := dispatcher.Dispatch(suite.ctx, suite.messagePair())

	// Partial success is still a failed dispatch
	assert.Error(suite.T(), err)
	assert.True(suite.T(), outcome.Operator.Delivered)
	assert.False(suite.T(), outcome.Submitter.Delivered)
	assert.Len(suite.T(), transport.sent, 1)
}

func (suite *MailerTestSuite) TestBuildMIMEMessage() {
	pair := suite.messagePair()
	payload := string(buildMIMEMessage("Highrange Coffee Exports <ops@highrangecoffee.in>", &pair.Operator))

	assert.Contains(suite.T(), payload, "From: Highrange Coffee Exports <ops@highrangecoffee.in>\r\n")
	assert.Contains(suite.T(), payload, "To: enquiries@highrangecoffee.in\r\n")
	assert.Contains(suite.T(), payload, "Reply-To: arun@example.com\r\n")
	assert.Contains(suite.T(), payload, "Subject: [General Enquiry] Pricing\r\n")
	assert.Contains(suite.T(), payload, "multipart/alternative")
	assert.Contains(suite.T(), payload, "Content-Type: text/plain; charset=utf-8")
	assert.Contains(suite.T(), payload, "Content-Type: text/html; charset=utf-8")
	assert.Contains(suite.T(), payload, "plain body")
	assert.Contains(suite.T(), payload, "<p>rich body</p>")
}

func (suite *MailerTestSuite) TestBuildMIMEMessageNeutralizesHeaderInjection() {
	msg := &models.NotificationMessage{
		Recipient: "enquiries@highrangecoffee.in",
		ReplyTo:   "arun@example.com\r\nBcc: shadow@evil.example",
		Subject:   "[General Enquiry] Pricing\r\nBcc: attacker@evil.example (ref a1b2c3d4)",
		PlainText: "plain body",
		RichText:  "<p>rich body</p>",
	}

	payload := string(buildMIMEMessage("ops@highrangecoffee.in", msg))

	// A CRLF inside a submitter value must never start a new header
	assert.NotContains(suite.T(), payload, "\nBcc:")
	assert.NotContains(suite.T(), payload, "\rBcc:")
	assert.Contains(suite.T(), payload, "Subject: [General Enquiry] Pricing Bcc: attacker@evil.example (ref a1b2c3d4)\r\n")
}

func (suite *MailerTestSuite) TestBuildMIMEMessageEncodesNonASCIISubject() {
	msg := &models.NotificationMessage{
		Recipient: "enquiries@highrangecoffee.in",
		Subject:   "Größenanfrage – Röstkaffee",
		PlainText: "plain body",
		RichText:  "<p>rich body</p>",
	}

	payload := string(buildMIMEMessage("ops@highrangecoffee.in", msg))

	assert.Contains(suite.T(), payload, "Subject: =?utf-8?q?")
	assert.NotContains(suite.T(), payload, "Subject: Größenanfrage")
}

func (suite *MailerTestSuite) TestBuildMIMEMessageOmitsEmptyReplyTo() {
	pair := suite.messagePair()
	payload := string(buildMIMEMessage("ops@highrangecoffee.in", &pair.Acknowledgment))

	assert.NotContains(suite.T(), payload, "Reply-To:")
}

func (suite *MailerTestSuite) TestSMTPSenderFormatting() {
	withName := NewSMTPTransport(&models.Config{
		MailUser:     "ops@highrangecoffee.in",
		MailFromName: "Highrange Coffee Exports",
	}, suite.log)
	assert.Equal(suite.T(), "Highrange Coffee Exports <ops@highrangecoffee.in>", withName.sender())

	plain := NewSMTPTransport(&models.Config{MailUser: "ops@highrangecoffee.in"}, suite.log)
	assert.Equal(suite.T(), "ops@highrangecoffee.in", plain.sender())
}

// TestMailerTestSuite runs the test suite
func TestMailerTestSuite(t *testing.T) {
	suite.Run(t, new(MailerTestSuite))
}
