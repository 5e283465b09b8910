package controller

import (
	"net/http"

	"highrange-backend/models"
	"highrange-backend/services"
	"highrange-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

// SchemaController serves the canonical field rules so the client-side
// pre-check and the server-side re-check cannot drift apart
type SchemaController struct {
	logger logger.Logger
}

// NewSchemaController creates the schema echo controller
func NewSchemaController(log logger.Logger) *SchemaController {
	return &SchemaController{logger: log}
}

// GetSchema handles GET /api/v1/enquiries/{type}/schema
// @Summary Get the validation schema for a submission type
// @Tags Enquiries
// @Produce json
// @Param type path string true "Submission type" Enums(general, supplier, trade)
// @Success 200 {object} map[string]interface{} "Ordered field rules"
// @Failure 404 {object} models.SubmissionResponse "Unknown submission type"
// @Router /enquiries/{type}/schema [get]
func (h *SchemaController) GetSchema(c *gin.Context) {
	t := models.SubmissionType(c.Param("type"))

	schema, ok := services.SchemaFor(t)
	if !ok {
		c.JSON(http.StatusNotFound, models.SubmissionResponse{
			Success: false,
			Error:   "Unknown submission type",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"type":    schema.Type,
		"fields":  schema.Spec(),
	})
}
