package services

import (
	"context"
	"errors"
	"strings"

	"highrange-backend/models"
	"highrange-backend/utils"
	"highrange-backend/utils/logger"
)

// PipelineErrorKind classifies pipeline failures for response mapping
type PipelineErrorKind string

const (
	ErrKindValidation          PipelineErrorKind = "ValidationFailure"
	ErrKindVerificationReject  PipelineErrorKind = "VerificationRejected"
	ErrKindVerificationService PipelineErrorKind = "VerificationServiceError"
	ErrKindConfiguration       PipelineErrorKind = "ConfigurationError"
	ErrKindDelivery            PipelineErrorKind = "DeliveryFailure"
)

// PipelineError is a typed pipeline failure. Issues is set only for
// validation failures and always carries the complete field-error set.
type PipelineError struct {
	Kind   PipelineErrorKind
	Issues *models.FieldErrorSet
	Err    error
}

func (e *PipelineError) Error() string {
	if e.Err != nil {
		return string(e.Kind) + ": " + e.Err.Error()
	}
	return string(e.Kind)
}

// SubmissionResult is the successful outcome of one processed submission
type SubmissionResult struct {
	Reference string
	DryRun    bool
}

// EnquiryService runs the submission pipeline: validate, verify, compose,
// dispatch. Stateless across requests; each submission is one synchronous
// pass with exactly two suspension points (verification, delivery).
type EnquiryService struct {
	cfg        *models.Config
	validator  *Validator
	verifier   TokenVerifier
	composer   *Composer
	dispatcher *Dispatcher
	metrics    *Metrics
	logger     logger.Logger
}

// NewEnquiryService wires the pipeline
func NewEnquiryService(cfg *models.Config, verifier TokenVerifier, dispatcher *Dispatcher, metrics *Metrics, log logger.Logger) *EnquiryService {
	siteName := cfg.MailFromName
	if siteName == "" {
		siteName = cfg.AppName
	}
	return &EnquiryService{
		cfg:        cfg,
		validator:  NewValidator(),
		verifier:   verifier,
		composer:   NewComposer(siteName),
		dispatcher: dispatcher,
		metrics:    metrics,
		logger:     log,
	}
}

// ProcessGeneral runs a general enquiry through the pipeline
func (s *EnquiryService) ProcessGeneral(ctx context.Context, e *models.GeneralEnquiry) (*SubmissionResult, *PipelineError) {
	s.metrics.SubmissionReceived()

	if errs := s.validator.ValidateGeneral(e); !errs.Empty() {
		s.metrics.ValidationFailed()
		return nil, &PipelineError{Kind: ErrKindValidation, Issues: errs}
	}

	if perr := s.verifyToken(ctx, models.SubmissionGeneral, e.VerificationToken); perr != nil {
		return nil, perr
	}

	ref := utils.GenerateReference()
	pair := s.composer.ComposeGeneral(e, ref, s.cfg.OperatorRecipient(models.SubmissionGeneral))

	return s.deliver(ctx, models.SubmissionGeneral, ref, &pair)
}

// ProcessSupplier runs a supplier registration through the pipeline
func (s *EnquiryService) ProcessSupplier(ctx context.Context, reg *models.SupplierRegistration) (*SubmissionResult, *PipelineError) {
	s.metrics.SubmissionReceived()

	if errs := s.validator.ValidateSupplier(reg); !errs.Empty() {
		s.metrics.ValidationFailed()
		return nil, &PipelineError{Kind: ErrKindValidation, Issues: errs}
	}

	if perr := s.verifyToken(ctx, models.SubmissionSupplier, reg.VerificationToken); perr != nil {
		return nil, perr
	}

	ref := utils.GenerateReference()
	pair := s.composer.ComposeSupplier(reg, ref, s.cfg.OperatorRecipient(models.SubmissionSupplier))

	return s.deliver(ctx, models.SubmissionSupplier, ref, &pair)
}

// ProcessTrade runs a trade enquiry through the pipeline
func (s *EnquiryService) ProcessTrade(ctx context.Context, t *models.TradeEnquiry) (*SubmissionResult, *PipelineError) {
	s.metrics.SubmissionReceived()

	if errs := s.validator.ValidateTrade(t); !errs.Empty() {
		s.metrics.ValidationFailed()
		return nil, &PipelineError{Kind: ErrKindValidation, Issues: errs}
	}

	if perr := s.verifyToken(ctx, models.SubmissionTrade, t.VerificationToken); perr != nil {
		return nil, perr
	}

	ref := utils.GenerateReference()
	pair := s.composer.ComposeTrade(t, ref, s.cfg.OperatorRecipient(models.SubmissionTrade))

	return s.deliver(ctx, models.SubmissionTrade, ref, &pair)
}

// verifyToken applies the endpoint's verification policy. A missing token is
// rejected before any external call; verification-service outages are kept
// distinct from rejections so the controller can answer 500 vs 400.
func (s *EnquiryService) verifyToken(ctx context.Context, t models.SubmissionType, token string) *PipelineError {
	if !s.cfg.PolicyFor(t).VerifyToken {
		return nil
	}

	if strings.TrimSpace(token) == "" {
		s.metrics.VerificationRejected()
		return &PipelineError{Kind: ErrKindVerificationReject, Err: errors.New(models.ReasonTokenMissing)}
	}

	if s.cfg.RecaptchaSecret == "" {
		s.metrics.Failed()
		return &PipelineError{Kind: ErrKindConfiguration, Err: errors.New("verification secret not configured")}
	}

	result := s.verifier.Verify(ctx, token)
	if result.Passed {
		return nil
	}

	if result.Reason == models.ReasonServiceError {
		s.metrics.Failed()
		return &PipelineError{Kind: ErrKindVerificationService, Err: errors.New(result.Reason)}
	}

	s.metrics.VerificationRejected()
	return &PipelineError{Kind: ErrKindVerificationReject, Err: errors.New(result.Reason)}
}

// deliver applies the endpoint's dry-run policy and dispatches both messages
func (s *EnquiryService) deliver(ctx context.Context, t models.SubmissionType, ref string, pair *MessagePair) (*SubmissionResult, *PipelineError) {
	policy := s.cfg.PolicyFor(t)

	// The explicit override is a deliberate operator action and wins over the
	// per-endpoint policy; missing credentials alone do not.
	if s.dispatcher.Channel() == models.ChannelDryRun && !policy.AllowDryRun && !s.cfg.DryRunOverride {
		s.metrics.Failed()
		return nil, &PipelineError{Kind: ErrKindConfiguration, Err: errors.New("mail transport not configured")}
	}

	outcome, err := s.dispatcher.Dispatch(ctx, pair)
	if err != nil {
		s.metrics.Failed()
		return nil, &PipelineError{Kind: ErrKindDelivery, Err: err}
	}

	if outcome.DryRun {
		s.metrics.DeliveredDryRun()
	} else {
		s.metrics.DeliveredLive()
	}

	s.logger.Infof("Submission %s processed: type=%s channel=%s", utils.ShortReference(ref), t, s.dispatcher.Channel())

	return &SubmissionResult{Reference: ref, DryRun: outcome.DryRun}, nil
}
