package controller

import (
	"context"
	"net/http"

	"highrange-backend/models"
	"highrange-backend/services"
	"highrange-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

// EnquiryController handles the general contact form
type EnquiryController struct {
	ctx     context.Context
	service services.EnquiryServiceInterface
	logger  logger.Logger
}

// NewEnquiryController creates the general enquiry controller
func NewEnquiryController(ctx context.Context, service services.EnquiryServiceInterface, log logger.Logger) *EnquiryController {
	return &EnquiryController{
		ctx:     ctx,
		service: service,
		logger:  log,
	}
}

// Submit handles POST /api/v1/enquiries/general
// @Summary Submit a general enquiry
// @Description Validate a general contact submission, verify the reCAPTCHA token and send operator/acknowledgment notifications
// @Tags Enquiries
// @Accept json
// @Produce json
// @Param request body models.GeneralEnquiry true "General enquiry"
// @Success 200 {object} models.SubmissionResponse "Enquiry accepted (dryRun is set when no live send happened)"
// @Failure 400 {object} models.SubmissionResponse "Invalid JSON or reCAPTCHA verification failed"
// @Failure 422 {object} models.SubmissionResponse "Validation failed, issues carries the full field-error set"
// @Failure 500 {object} models.SubmissionResponse "Configuration, verification-service or delivery error"
// @Router /enquiries/general [post]
func (h *EnquiryController) Submit(c *gin.Context) {
	var req models.GeneralEnquiry
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed to bind JSON:", err)
		c.JSON(http.StatusBadRequest, models.SubmissionResponse{
			Success: false,
			Error:   "Invalid JSON",
		})
		return
	}

	result, perr := h.service.ProcessGeneral(h.ctx, &req)
	if perr != nil {
		respondPipelineError(c, h.logger, perr)
		return
	}

	c.JSON(http.StatusOK, models.SubmissionResponse{
		Success: true,
		DryRun:  result.DryRun,
	})
}
