package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"highrange-backend/models"
	"highrange-backend/services"
	"highrange-backend/utils/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// TradeControllerTestSuite contains the test suite for TradeController
type TradeControllerTestSuite struct {
	suite.Suite
	ctx         context.Context
	mockService *MockEnquiryService
	router      *gin.Engine
}

// SetupTest runs before each test
func (suite *TradeControllerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctx = context.Background()
	suite.mockService = &MockEnquiryService{}

	ctrl := NewTradeController(suite.ctx, suite.mockService, logger.NewLogger("error", "text"))
	suite.router = gin.New()
	suite.router.POST("/api/v1/enquiries/trade", ctrl.Submit)
}

// TearDownTest runs after each test
func (suite *TradeControllerTestSuite) TearDownTest() {
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TradeControllerTestSuite) postJSON(body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/enquiries/trade", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *TradeControllerTestSuite) TestSubmitSuccessIncludesReference() {
	suite.mockService.On("ProcessTrade", mock.Anything, mock.AnythingOfType("*models.TradeEnquiry")).
		Return(&services.SubmissionResult{Reference: "deadbeef-0000-0000-0000-000000000000"}, nil)

	w := suite.postJSON([]byte(`{"companyName": "Hanseatic Kaffee GmbH"}`))

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var resp models.SubmissionResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(suite.T(), resp.Success)
	assert.Equal(suite.T(), "Trade enquiry received. Reference: deadbeef", resp.Message)
}

func (suite *TradeControllerTestSuite) TestSubmitMissingCompanyEmail() {
	issues := models.NewFieldErrorSet()
	issues.Add("companyEmail", "This field is required")

	suite.mockService.On("ProcessTrade", mock.Anything, mock.Anything).
		Return(nil, &services.PipelineError{Kind: services.ErrKindValidation, Issues: issues})

	w := suite.postJSON([]byte(`{"companyName": "Hanseatic Kaffee GmbH"}`))

	assert.Equal(suite.T(), http.StatusUnprocessableEntity, w.Code)

	var body map[string]interface{}
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(suite.T(), "Validation failed", body["error"])

	fieldErrors := body["issues"].(map[string]interface{})["fieldErrors"].(map[string]interface{})
	assert.Contains(suite.T(), fieldErrors, "companyEmail")
}

func (suite *TradeControllerTestSuite) TestSubmitConfigurationError() {
	suite.mockService.On("ProcessTrade", mock.Anything, mock.Anything).
		Return(nil, &services.PipelineError{Kind: services.ErrKindConfiguration})

	w := suite.postJSON([]byte(`{"companyName": "Hanseatic Kaffee GmbH"}`))

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)

	var resp models.SubmissionResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(suite.T(), "Server not configured", resp.Error)
}

func (suite *TradeControllerTestSuite) TestSubmitInvalidJSON() {
	w := suite.postJSON([]byte(`{`))

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ProcessTrade", mock.Anything, mock.Anything)
}

// TestTradeControllerTestSuite runs the test suite
func TestTradeControllerTestSuite(t *testing.T) {
	suite.Run(t, new(TradeControllerTestSuite))
}
