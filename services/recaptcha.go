package services

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"highrange-backend/models"
	"highrange-backend/utils/logger"

	"github.com/tidwall/gjson"
)

const defaultRecaptchaEndpoint = "https://www.google.com/recaptcha/api/siteverify"

// RecaptchaVerifier checks client-supplied verification tokens against the
// reCAPTCHA siteverify service. One external call per submission, no retry.
// The server-side secret never appears in logs or results.
type RecaptchaVerifier struct {
	secret   string
	endpoint string
	client   *http.Client
	logger   logger.Logger
}

// NewRecaptchaVerifier creates a verifier from config
func NewRecaptchaVerifier(cfg *models.Config, log logger.Logger) *RecaptchaVerifier {
	endpoint := cfg.RecaptchaEndpoint
	if endpoint == "" {
		endpoint = defaultRecaptchaEndpoint
	}
	return &RecaptchaVerifier{
		secret:   cfg.RecaptchaSecret,
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
		logger:   log,
	}
}

// Verify submits the token to the verification service. An empty token fails
// immediately without an external call. Service outages are reported with a
// reason distinct from token rejection so callers can answer 500 vs 400.
func (r *RecaptchaVerifier) Verify(ctx context.Context, token string) models.VerificationResult {
	if strings.TrimSpace(token) == "" {
		return models.VerificationResult{Passed: false, Reason: models.ReasonTokenMissing}
	}

	form := url.Values{}
	form.Set("secret", r.secret)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		r.logger.Errorf("Failed to build verification request: %v", err)
		return models.VerificationResult{Passed: false, Reason: models.ReasonServiceError}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Errorf("Verification service unreachable: %v", err)
		return models.VerificationResult{Passed: false, Reason: models.ReasonServiceError}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		r.logger.Errorf("Verification service returned status %d", resp.StatusCode)
		return models.VerificationResult{Passed: false, Reason: models.ReasonServiceError}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		r.logger.Errorf("Failed to read verification response: %v", err)
		return models.VerificationResult{Passed: false, Reason: models.ReasonServiceError}
	}

	if !gjson.ValidBytes(body) {
		r.logger.Error("Verification service returned malformed JSON")
		return models.VerificationResult{Passed: false, Reason: models.ReasonServiceError}
	}

	if gjson.GetBytes(body, "success").Bool() {
		return models.VerificationResult{Passed: true}
	}

	// error-codes names why the token was rejected; it carries no secrets
	codes := gjson.GetBytes(body, "error-codes")
	r.logger.Debugf("Verification token rejected: %s", codes.Raw)

	return models.VerificationResult{Passed: false, Reason: models.ReasonTokenRejected}
}
