package controller

import (
	"context"
	"fmt"
	"net/http"

	"highrange-backend/models"
	"highrange-backend/services"
	"highrange-backend/utils"
	"highrange-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

// SupplierController handles supplier registrations
type SupplierController struct {
	ctx     context.Context
	service services.EnquiryServiceInterface
	logger  logger.Logger
}

// NewSupplierController creates the supplier registration controller
func NewSupplierController(ctx context.Context, service services.EnquiryServiceInterface, log logger.Logger) *SupplierController {
	return &SupplierController{
		ctx:     ctx,
		service: service,
		logger:  log,
	}
}

// Register handles POST /api/v1/enquiries/supplier
// @Summary Register as a supplier
// @Description Validate a supplier registration including the category-specific required fields, verify the reCAPTCHA token and send notifications
// @Tags Enquiries
// @Accept json
// @Produce json
// @Param request body models.SupplierRegistration true "Supplier registration"
// @Success 200 {object} models.SubmissionResponse "Registration accepted"
// @Failure 400 {object} models.SubmissionResponse "Invalid JSON or reCAPTCHA verification failed"
// @Failure 422 {object} models.SubmissionResponse "Validation failed"
// @Failure 500 {object} models.SubmissionResponse "Configuration, verification-service or delivery error"
// @Router /enquiries/supplier [post]
func (h *SupplierController) Register(c *gin.Context) {
	var req models.SupplierRegistration
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed to bind JSON:", err)
		c.JSON(http.StatusBadRequest, models.SubmissionResponse{
			Success: false,
			Error:   "Invalid JSON",
		})
		return
	}

	result, perr := h.service.ProcessSupplier(h.ctx, &req)
	if perr != nil {
		respondPipelineError(c, h.logger, perr)
		return
	}

	c.JSON(http.StatusOK, models.SubmissionResponse{
		Success: true,
		Message: fmt.Sprintf("Supplier registration received. Reference: %s", utils.ShortReference(result.Reference)),
		DryRun:  result.DryRun,
	})
}
