package services

import (
	"context"

	"highrange-backend/models"
)

// TokenVerifier defines the contract for the human-verification gate
type TokenVerifier interface {
	Verify(ctx context.Context, token string) models.VerificationResult
}

// EnquiryServiceInterface defines the contract for the submission pipeline
type EnquiryServiceInterface interface {
	ProcessGeneral(ctx context.Context, e *models.GeneralEnquiry) (*SubmissionResult, *PipelineError)
	ProcessSupplier(ctx context.Context, reg *models.SupplierRegistration) (*SubmissionResult, *PipelineError)
	ProcessTrade(ctx context.Context, t *models.TradeEnquiry) (*SubmissionResult, *PipelineError)
}
