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

// TradeController handles bulk trade enquiries. Trade is the strict endpoint:
// the verification token is mandatory and missing mail credentials are a
// configuration error instead of a dry-run fallback.
type TradeController struct {
	ctx     context.Context
	service services.EnquiryServiceInterface
	logger  logger.Logger
}

// NewTradeController creates the trade enquiry controller
func NewTradeController(ctx context.Context, service services.EnquiryServiceInterface, log logger.Logger) *TradeController {
	return &TradeController{
		ctx:     ctx,
		service: service,
		logger:  log,
	}
}

// Submit handles POST /api/v1/enquiries/trade
// @Summary Submit a trade enquiry
// @Description Validate a sectioned trade enquiry (company, contact person, logistics), verify the mandatory reCAPTCHA token and send notifications
// @Tags Enquiries
// @Accept json
// @Produce json
// @Param request body models.TradeEnquiry true "Trade enquiry"
// @Success 200 {object} models.SubmissionResponse "Enquiry accepted with a reference"
// @Failure 400 {object} models.SubmissionResponse "Invalid JSON or reCAPTCHA verification failed"
// @Failure 422 {object} models.SubmissionResponse "Validation failed"
// @Failure 500 {object} models.SubmissionResponse "Configuration, verification-service or delivery error"
// @Router /enquiries/trade [post]
func (h *TradeController) Submit(c *gin.Context) {
	var req models.TradeEnquiry
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed to bind JSON:", err)
		c.JSON(http.StatusBadRequest, models.SubmissionResponse{
			Success: false,
			Error:   "Invalid JSON",
		})
		return
	}

	result, perr := h.service.ProcessTrade(h.ctx, &req)
	if perr != nil {
		respondPipelineError(c, h.logger, perr)
		return
	}

	c.JSON(http.StatusOK, models.SubmissionResponse{
		Success: true,
		Message: fmt.Sprintf("Trade enquiry received. Reference: %s", utils.ShortReference(result.Reference)),
		DryRun:  result.DryRun,
	})
}
