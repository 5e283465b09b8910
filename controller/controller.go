package controller

import (
	"context"
	"net/http"

	"highrange-backend/middelware"
	"highrange-backend/models"
	"highrange-backend/services"
	"highrange-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

// Controller groups the enquiry endpoints
type Controller struct {
	General  *EnquiryController
	Supplier *SupplierController
	Trade    *TradeController
	Schema   *SchemaController
}

// NewController wires the submission pipeline and its endpoints
func NewController(ctx context.Context, cfg *models.Config, metrics *services.Metrics, log logger.Logger) *Controller {
	transport, err := services.NewMailTransport(cfg, log)
	if err != nil {
		log.Fatalf("Failed to initialize mail transport: %v", err)
	}
	if transport.Channel() == models.ChannelDryRun {
		log.Warn("Mail transport running in dry-run mode: notifications will be logged, not sent")
	}

	verifier := services.NewRecaptchaVerifier(cfg, log)
	dispatcher := services.NewDispatcher(transport, log)
	service := services.NewEnquiryService(cfg, verifier, dispatcher, metrics, log)

	return &Controller{
		General:  NewEnquiryController(ctx, service, log),
		Supplier: NewSupplierController(ctx, service, log),
		Trade:    NewTradeController(ctx, service, log),
		Schema:   NewSchemaController(log),
	}
}

// RegisterRoutes mounts the API and starts the HTTP server
func (c *Controller) RegisterRoutes(ctx context.Context, config *models.Config, r *gin.Engine, basePath string) error {
	log := logger.NewLogger(config.LogLevel, config.LogFormat)

	logging := middelware.NewLoggingMiddleware(log)
	cors := middelware.NewCORSMiddleware(config)
	r.Use(logging.Recovery(), logging.RequestLogger(), cors.CORS())

	v1 := r.Group(basePath)

	// Health check endpoint
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"version": config.AppVersion,
			"service": config.AppName,
		})
	})

	enquiries := v1.Group("/enquiries")
	enquiries.POST("/general", c.General.Submit)
	enquiries.POST("/supplier", c.Supplier.Register)
	enquiries.POST("/trade", c.Trade.Submit)

	// Canonical schema echo, so the client pre-check reads the same rules
	// the server enforces
	enquiries.GET("/:type/schema", c.Schema.GetSchema)

	srv := &http.Server{
		Addr:    config.AppHost + ":" + config.AppPort,
		Handler: r,
	}

	log.Infof("Starting server on %s:%s", config.AppHost, config.AppPort)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// respondPipelineError maps a typed pipeline failure to the wire contract.
// Client-facing messages stay generic; detail is logged server-side only.
func respondPipelineError(c *gin.Context, log logger.Logger, perr *services.PipelineError) {
	switch perr.Kind {
	case services.ErrKindValidation:
		c.JSON(http.StatusUnprocessableEntity, models.SubmissionResponse{
			Success: false,
			Error:   "Validation failed",
			Issues:  perr.Issues,
		})
	case services.ErrKindVerificationReject:
		c.JSON(http.StatusBadRequest, models.SubmissionResponse{
			Success: false,
			Error:   "reCAPTCHA verification failed",
		})
	case services.ErrKindVerificationService:
		log.Errorf("Verification service error: %v", perr.Err)
		c.JSON(http.StatusInternalServerError, models.SubmissionResponse{
			Success: false,
			Error:   "Verification service unavailable",
		})
	case services.ErrKindConfiguration:
		log.Errorf("Configuration error: %v", perr.Err)
		c.JSON(http.StatusInternalServerError, models.SubmissionResponse{
			Success: false,
			Error:   "Server not configured",
		})
	case services.ErrKindDelivery:
		log.Errorf("Delivery error: %v", perr.Err)
		c.JSON(http.StatusInternalServerError, models.SubmissionResponse{
			Success: false,
			Error:   "Failed to send email",
		})
	default:
		log.Errorf("Unexpected pipeline error: %v", perr)
		c.JSON(http.StatusInternalServerError, models.SubmissionResponse{
			Success: false,
			Error:   "Internal server error",
		})
	}
}
