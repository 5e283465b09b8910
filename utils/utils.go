package utils

import (
	"encoding/json"
	"fmt"
	"strings"

	"highrange-backend/models"

	"github.com/google/uuid"
	"github.com/spf13/viper"
)

// GetConfig reads the configuration from environment variables or config files
func GetConfig() (*models.Config, error) {
	config, err := Load()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return config, nil
}

// Load initializes and returns the application configuration using Viper
func Load() (*models.Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../")

	setDefaults(v)

	// Enable environment variable support
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// Config file not found, continue with defaults and env vars
		fmt.Printf("Config file not found (%v), using defaults and environment variables\n", err)
	} else {
		fmt.Printf("Using config file: %s\n", v.ConfigFileUsed())
	}

	// Handle nested JSON structure from config.json
	if v.IsSet("app") || v.IsSet("mail") || v.IsSet("recaptcha") {
		flattenNestedConfig(v)
	}

	var config models.Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Application defaults
	v.SetDefault("app_name", "Highrange Backend")
	v.SetDefault("app_version", "1.0.0")
	v.SetDefault("app_env", "development")
	v.SetDefault("app_host", "0.0.0.0")
	v.SetDefault("app_port", "8081")

	// Mail transport defaults
	v.SetDefault("mail_provider", "smtp")
	v.SetDefault("smtp_host", "smtp.gmail.com")
	v.SetDefault("smtp_port", 587)
	v.SetDefault("mail_user", "")
	v.SetDefault("mail_pass", "")
	v.SetDefault("mail_from", "")
	v.SetDefault("mail_from_name", "Highrange Coffee Exports")

	// AWS defaults (SES transport)
	v.SetDefault("aws_region", "")
	v.SetDefault("aws_access_key_id", "")
	v.SetDefault("aws_secret_access_key", "")

	// reCAPTCHA defaults
	v.SetDefault("recaptcha_secret", "")
	v.SetDefault("recaptcha_endpoint", "https://www.google.com/recaptcha/api/siteverify")

	// Delivery defaults
	v.SetDefault("dry_run_override", false)
	v.SetDefault("operator_recipient_general", "enquiries@highrangecoffee.in")
	v.SetDefault("operator_recipient_supplier", "suppliers@highrangecoffee.in")
	v.SetDefault("operator_recipient_trade", "trade@highrangecoffee.in")

	// Endpoint policy defaults. Verification is enforced uniformly; trade
	// enquiries treat missing mail credentials as a configuration error
	// instead of falling back to dry-run.
	v.SetDefault("verify_token_general", true)
	v.SetDefault("verify_token_supplier", true)
	v.SetDefault("verify_token_trade", true)
	v.SetDefault("allow_dry_run_general", true)
	v.SetDefault("allow_dry_run_supplier", true)
	v.SetDefault("allow_dry_run_trade", false)

	// Stats digest defaults (cron spec, seconds precision)
	v.SetDefault("stats_digest_schedule", "0 0 * * * *")

	// Logging defaults
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	// CORS defaults
	v.SetDefault("cors_origins", []string{"*"})

	// Base Path default
	v.SetDefault("basePath", "/api/v1")
}

// validate checks if all required configuration is provided
func validate(c *models.Config) error {
	if c.AppEnv == "production" && c.RecaptchaSecret == "" {
		return fmt.Errorf("RECAPTCHA_SECRET must be set in production environment")
	}

	if c.MailProvider != "smtp" && c.MailProvider != "ses" {
		return fmt.Errorf("mail_provider must be \"smtp\" or \"ses\", got %q", c.MailProvider)
	}

	if c.AppEnv == "production" && !c.HasMailCredentials() && !c.DryRunOverride {
		fmt.Println("No mail credentials provided, deliveries will run in dry-run mode where permitted")
	}

	return nil
}

// flattenNestedConfig flattens the nested JSON structure to flat keys for easier mapping
func flattenNestedConfig(v *viper.Viper) {
	// App section
	if v.IsSet("app.name") {
		v.Set("app_name", v.GetString("app.name"))
	}
	if v.IsSet("app.version") {
		v.Set("app_version", v.GetString("app.version"))
	}
	if v.IsSet("app.env") {
		v.Set("app_env", v.GetString("app.env"))
	}
	if v.IsSet("app.host") {
		v.Set("app_host", v.GetString("app.host"))
	}
	if v.IsSet("app.port") {
		v.Set("app_port", v.GetString("app.port"))
	}

	// Mail section
	if v.IsSet("mail.provider") {
		v.Set("mail_provider", v.GetString("mail.provider"))
	}
	if v.IsSet("mail.smtp_host") {
		v.Set("smtp_host", v.GetString("mail.smtp_host"))
	}
	if v.IsSet("mail.smtp_port") {
		v.Set("smtp_port", v.GetInt("mail.smtp_port"))
	}
	if v.IsSet("mail.user") {
		v.Set("mail_user", v.GetString("mail.user"))
	}
	if v.IsSet("mail.pass") {
		v.Set("mail_pass", v.GetString("mail.pass"))
	}
	if v.IsSet("mail.from") {
		v.Set("mail_from", v.GetString("mail.from"))
	}
	if v.IsSet("mail.from_name") {
		v.Set("mail_from_name", v.GetString("mail.from_name"))
	}

	// AWS section
	if v.IsSet("aws.region") {
		v.Set("aws_region", v.GetString("aws.region"))
	}
	if v.IsSet("aws.access_key_id") {
		v.Set("aws_access_key_id", v.GetString("aws.access_key_id"))
	}
	if v.IsSet("aws.secret_access_key") {
		v.Set("aws_secret_access_key", v.GetString("aws.secret_access_key"))
	}

	// reCAPTCHA section
	if v.IsSet("recaptcha.secret") {
		v.Set("recaptcha_secret", v.GetString("recaptcha.secret"))
	}
	if v.IsSet("recaptcha.endpoint") {
		v.Set("recaptcha_endpoint", v.GetString("recaptcha.endpoint"))
	}

	// Delivery section
	if v.IsSet("delivery.dry_run_override") {
		v.Set("dry_run_override", v.GetBool("delivery.dry_run_override"))
	}
	if v.IsSet("delivery.operator_recipient_general") {
		v.Set("operator_recipient_general", v.GetString("delivery.operator_recipient_general"))
	}
	if v.IsSet("delivery.operator_recipient_supplier") {
		v.Set("operator_recipient_supplier", v.GetString("delivery.operator_recipient_supplier"))
	}
	if v.IsSet("delivery.operator_recipient_trade") {
		v.Set("operator_recipient_trade", v.GetString("delivery.operator_recipient_trade"))
	}

	// Logging section
	if v.IsSet("logging.level") {
		v.Set("log_level", v.GetString("logging.level"))
	}
	if v.IsSet("logging.format") {
		v.Set("log_format", v.GetString("logging.format"))
	}

	// CORS section
	if v.IsSet("cors.origins") {
		v.Set("cors_origins", v.GetStringSlice("cors.origins"))
	}

	// Base Path
	if v.IsSet("basePath") {
		v.Set("basePath", v.GetString("basePath"))
	}
}

// PrintPrettyJSON takes any struct or map and prints it as pretty JSON
func PrintPrettyJSON(data interface{}) string {
	prettyJSON, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		fmt.Println("Failed to generate JSON:", err)
		return ""
	}
	return string(prettyJSON)
}

// GenerateReference returns a new submission reference ID
func GenerateReference() string {
	return uuid.New().String()
}

// ShortReference trims a reference ID to the compact form used in subjects
func ShortReference(ref string) string {
	if len(ref) >= 8 {
		return ref[:8]
	}
	return ref
}
