package models

// SubmissionType identifies which enquiry form a payload came from
type SubmissionType string

const (
	SubmissionGeneral  SubmissionType = "general"
	SubmissionSupplier SubmissionType = "supplier"
	SubmissionTrade    SubmissionType = "trade"
)

// EndpointPolicy is the explicit per-endpoint behavior for the two decisions
// that differ between submission types: whether the reCAPTCHA token is checked
// server-side, and whether missing mail credentials fall back to dry-run or
// fail with a configuration error.
type EndpointPolicy struct {
	VerifyToken bool
	AllowDryRun bool
}

// Config holds all configuration for the application
type Config struct {
	// Application
	AppName    string `mapstructure:"app_name"`
	AppVersion string `mapstructure:"app_version"`
	AppEnv     string `mapstructure:"app_env"`
	AppHost    string `mapstructure:"app_host"`
	AppPort    string `mapstructure:"app_port"`

	// Mail transport
	MailProvider string `mapstructure:"mail_provider"` // "smtp" or "ses"
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	MailUser     string `mapstructure:"mail_user"`
	MailPass     string `mapstructure:"mail_pass"`
	MailFrom     string `mapstructure:"mail_from"`
	MailFromName string `mapstructure:"mail_from_name"`

	// AWS (SES transport)
	AWSRegion          string `mapstructure:"aws_region"`
	AWSAccessKeyID     string `mapstructure:"aws_access_key_id"`
	AWSSecretAccessKey string `mapstructure:"aws_secret_access_key"`

	// reCAPTCHA verification
	RecaptchaSecret   string `mapstructure:"recaptcha_secret"`
	RecaptchaEndpoint string `mapstructure:"recaptcha_endpoint"`

	// Delivery
	DryRunOverride bool `mapstructure:"dry_run_override"`

	// Operator notification recipients, per submission type
	OperatorRecipientGeneral  string `mapstructure:"operator_recipient_general"`
	OperatorRecipientSupplier string `mapstructure:"operator_recipient_supplier"`
	OperatorRecipientTrade    string `mapstructure:"operator_recipient_trade"`

	// Per-endpoint policies
	VerifyTokenGeneral  bool `mapstructure:"verify_token_general"`
	VerifyTokenSupplier bool `mapstructure:"verify_token_supplier"`
	VerifyTokenTrade    bool `mapstructure:"verify_token_trade"`
	AllowDryRunGeneral  bool `mapstructure:"allow_dry_run_general"`
	AllowDryRunSupplier bool `mapstructure:"allow_dry_run_supplier"`
	AllowDryRunTrade    bool `mapstructure:"allow_dry_run_trade"`

	// Stats digest worker
	StatsDigestSchedule string `mapstructure:"stats_digest_schedule"`

	// Logging
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	// CORS
	CORSOrigins []string `mapstructure:"cors_origins"`

	// Base Path
	BasePath string `mapstructure:"basePath"`
}

// PolicyFor returns the endpoint policy for a submission type
func (c *Config) PolicyFor(t SubmissionType) EndpointPolicy {
	switch t {
	case SubmissionSupplier:
		return EndpointPolicy{VerifyToken: c.VerifyTokenSupplier, AllowDryRun: c.AllowDryRunSupplier}
	case SubmissionTrade:
		return EndpointPolicy{VerifyToken: c.VerifyTokenTrade, AllowDryRun: c.AllowDryRunTrade}
	default:
		return EndpointPolicy{VerifyToken: c.VerifyTokenGeneral, AllowDryRun: c.AllowDryRunGeneral}
	}
}

// OperatorRecipient returns the operator notification address for a submission type
func (c *Config) OperatorRecipient(t SubmissionType) string {
	switch t {
	case SubmissionSupplier:
		return c.OperatorRecipientSupplier
	case SubmissionTrade:
		return c.OperatorRecipientTrade
	default:
		return c.OperatorRecipientGeneral
	}
}

// HasMailCredentials reports whether the configured transport has what it
// needs for a live send. SES can fall back to the ambient credential chain,
// so only the region and sender address are required there.
func (c *Config) HasMailCredentials() bool {
	if c.MailProvider == "ses" {
		return c.AWSRegion != "" && c.MailFrom != ""
	}
	return c.SMTPHost != "" && c.MailUser != "" && c.MailPass != ""
}

// Redacted returns a copy safe for logging: every secret is masked
func (c *Config) Redacted() Config {
	out := *c
	if out.MailPass != "" {
		out.MailPass = "********"
	}
	if out.AWSSecretAccessKey != "" {
		out.AWSSecretAccessKey = "********"
	}
	if out.RecaptchaSecret != "" {
		out.RecaptchaSecret = "********"
	}
	return out
}
