package services

import (
	"context"
	"fmt"

	"highrange-backend/models"
	"highrange-backend/utils/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// SESTransport sends mail through AWS SES. Selected when mail_provider is
// "ses"; explicit credentials are optional, the default chain (environment,
// shared config, instance role) is used when they are absent.
type SESTransport struct {
	client   *ses.Client
	from     string
	fromName string
	logger   logger.Logger
}

// NewSESTransport creates an SES transport from config
func NewSESTransport(cfg *models.Config, log logger.Logger) (*SESTransport, error) {
	var opts []func(*awsconfig.LoadOptions) error

	if cfg.AWSRegion != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.AWSRegion))
	}
	if cfg.AWSAccessKeyID != "" && cfg.AWSSecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &SESTransport{
		client:   ses.NewFromConfig(awsCfg),
		from:     cfg.MailFrom,
		fromName: cfg.MailFromName,
		logger:   log,
	}, nil
}

// Send delivers the message via SES with both renderings attached
func (t *SESTransport) Send(ctx context.Context, msg *models.NotificationMessage) error {
	source := t.from
	if t.fromName != "" {
		source = fmt.Sprintf("%s <%s>", t.fromName, t.from)
	}

	input := &ses.SendEmailInput{
		Source: aws.String(source),
		Destination: &types.Destination{
			ToAddresses: []string{msg.Recipient},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Charset: aws.String("UTF-8"),
				Data:    aws.String(msg.Subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Charset: aws.String("UTF-8"),
					Data:    aws.String(msg.PlainText),
				},
				Html: &types.Content{
					Charset: aws.String("UTF-8"),
					Data:    aws.String(msg.RichText),
				},
			},
		},
	}
	if msg.ReplyTo != "" {
		input.ReplyToAddresses = []string{msg.ReplyTo}
	}

	result, err := t.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("ses send failed: %w", err)
	}

	t.logger.Debugf("SES accepted message %s for %s", aws.ToString(result.MessageId), msg.Recipient)
	return nil
}

// Channel reports the live channel
func (t *SESTransport) Channel() string {
	return models.ChannelLive
}
