package services

import (
	"testing"

	"highrange-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// ValidatorTestSuite defines a test suite for schema-driven validation
type ValidatorTestSuite struct {
	suite.Suite
	validator *Validator
}

// SetupTest runs before each test
func (suite *ValidatorTestSuite) SetupTest() {
	suite.validator = NewValidator()
}

func validGeneralEnquiry() *models.GeneralEnquiry {
	return &models.GeneralEnquiry{
		FirstName:         "Arun",
		LastName:          "Nair",
		Email:             "arun@example.com",
		Phone:             "+91 98470 12345",
		Country:           "India",
		PostalCode:        "685612",
		LinkedIn:          "https://www.linkedin.com/in/arunnair",
		Subject:           "Pricing for AA grade",
		Message:           "Looking for a quote on Arabica AA for this season.",
		Consent:           true,
		VerificationToken: "tok-123",
	}
}

func validSupplierRegistration(category models.SupplierCategory) *models.SupplierRegistration {
	reg := &models.SupplierRegistration{
		FullName:          "Meera Thomas",
		Category:          category,
		Email:             "meera@example.com",
		Phone:             "9847012345",
		Country:           "India",
		State:             "Kerala",
		Consent:           true,
		VerificationToken: "tok-123",
	}

	switch category {
	case models.CategoryEstateOwner:
		reg.EstateName = "Highview Estate"
		reg.EstateLocation = "Idukki"
		reg.EstateSizeAcres = "120"
	case models.CategoryIndividualFarmer:
		reg.AadharCardNumber = "123412341234"
		reg.FarmLocation = "Wayanad"
		reg.AnnualProductionKg = "1500"
	case models.CategoryBrokersTraders:
		reg.FirmName = "Malabar Coffee Traders"
		reg.GSTNumber = "32ABCDE1234F1Z5"
		reg.YearsInTrade = "8"
	}

	return reg
}

func validTradeEnquiry() *models.TradeEnquiry {
	return &models.TradeEnquiry{
		CompanyName:       "Hanseatic Kaffee GmbH",
		CompanyEmail:      "purchasing@hanseatic-kaffee.example",
		CompanyPhone:      "+49 30 901820",
		CompanyAddress:    "Speicherstadt 4, Hamburg",
		Country:           "Germany",
		ContactName:       "Jonas Weber",
		Designation:       "Head of Sourcing",
		ContactEmail:      "jonas.weber@hanseatic-kaffee.example",
		ContactPhone:      "+4930901820",
		Product:           "Robusta Cherry AB",
		Grade:             "AB",
		QuantityMT:        "40",
		DestinationPort:   "Hamburg",
		Incoterm:          "FOB",
		Requirements:      "Two containers per month, certified origin Wayanad.",
		Consent:           true,
		VerificationToken: "tok-123",
	}
}

func (suite *ValidatorTestSuite) TestValidGeneralEnquiry() {
	errs := suite.validator.ValidateGeneral(validGeneralEnquiry())
	assert.True(suite.T(), errs.Empty())
}

func (suite *ValidatorTestSuite) TestGeneralEnquiryCollectsAllErrors() {
	e := validGeneralEnquiry()
	e.FirstName = ""
	e.Email = "not-an-email"
	e.Message = "short"
	e.Consent = false

	errs := suite.validator.ValidateGeneral(e)

	assert.False(suite.T(), errs.Empty())
	assert.Equal(suite.T(), []string{"Must be a valid email address"}, errs.FieldErrors["email"])
	assert.Equal(suite.T(), []string{"This field is required"}, errs.FieldErrors["firstName"])
	assert.Equal(suite.T(), []string{"Must be at least 10 characters"}, errs.FieldErrors["message"])
	assert.Equal(suite.T(), []string{"Consent must be given"}, errs.FieldErrors["consent"])

	// Errors are reported in schema declaration order
	assert.Equal(suite.T(), []string{"firstName", "email", "message", "consent"}, errs.Fields())
}

func (suite *ValidatorTestSuite) TestGeneralEnquiryOptionalFields() {
	e := validGeneralEnquiry()
	e.Phone = ""
	e.Product = ""
	e.Grade = ""
	e.Quantity = ""

	errs := suite.validator.ValidateGeneral(e)
	assert.True(suite.T(), errs.Empty())
}

func (suite *ValidatorTestSuite) TestGeneralEnquiryInvalidOptionalValues() {
	e := validGeneralEnquiry()
	e.Phone = "call me maybe"
	e.Quantity = "-5"

	errs := suite.validator.ValidateGeneral(e)

	assert.Equal(suite.T(), []string{"Invalid format"}, errs.FieldErrors["phone"])
	assert.Equal(suite.T(), []string{"Must be a non-negative whole number"}, errs.FieldErrors["quantity"])
}

func (suite *ValidatorTestSuite) TestGeneralEnquiryInvalidLinkedIn() {
	e := validGeneralEnquiry()
	e.LinkedIn = "not a url"

	errs := suite.validator.ValidateGeneral(e)
	assert.Equal(suite.T(), []string{"Must be a valid URL"}, errs.FieldErrors["linkedin"])
}

func (suite *ValidatorTestSuite) TestGeneralEnquiryWhitespaceOnlyIsMissing() {
	e := validGeneralEnquiry()
	e.Subject = "   "

	errs := suite.validator.ValidateGeneral(e)
	assert.Equal(suite.T(), []string{"This field is required"}, errs.FieldErrors["subject"])
}

func (suite *ValidatorTestSuite) TestValidationIsIdempotent() {
	e := validGeneralEnquiry()
	e.Email = "broken"

	first := suite.validator.ValidateGeneral(e)
	second := suite.validator.ValidateGeneral(e)

	assert.Equal(suite.T(), first.FieldErrors, second.FieldErrors)
	assert.Equal(suite.T(), first.Fields(), second.Fields())
}

func (suite *ValidatorTestSuite) TestValidSupplierAllCategories() {
	for _, category := range models.SupplierCategories() {
		errs := suite.validator.ValidateSupplier(validSupplierRegistration(category))
		assert.True(suite.T(), errs.Empty(), "category %s should validate", category)
	}
}

func (suite *ValidatorTestSuite) TestSupplierEstateOwnerMissingGroupField() {
	reg := validSupplierRegistration(models.CategoryEstateOwner)
	reg.EstateLocation = ""

	errs := suite.validator.ValidateSupplier(reg)

	assert.True(suite.T(), errs.Has("estateName"))
	assert.Equal(suite.T(), []string{"All Coffee Estate Owner fields are required"}, errs.FieldErrors["estateName"])
}

func (suite *ValidatorTestSuite) TestSupplierIndividualFarmerMissingAadhar() {
	reg := validSupplierRegistration(models.CategoryIndividualFarmer)
	reg.AadharCardNumber = ""

	errs := suite.validator.ValidateSupplier(reg)

	assert.Equal(suite.T(), []string{"All Individual Farmer fields are required"}, errs.FieldErrors["aadharCardNumber"])
	// Only the category error is reported, not one per missing field
	assert.Len(suite.T(), errs.FieldErrors, 1)
}

func (suite *ValidatorTestSuite) TestSupplierBrokersTradersMissingGroupField() {
	reg := validSupplierRegistration(models.CategoryBrokersTraders)
	reg.YearsInTrade = ""

	errs := suite.validator.ValidateSupplier(reg)
	assert.Equal(suite.T(), []string{"All Brokers / Traders fields are required"}, errs.FieldErrors["firmName"])
}

func (suite *ValidatorTestSuite) TestSupplierUnknownCategory() {
	reg := validSupplierRegistration(models.CategoryEstateOwner)
	reg.Category = "Roaster"

	errs := suite.validator.ValidateSupplier(reg)

	assert.True(suite.T(), errs.Has("category"))
	// No category group applies, so no group error is added
	assert.Len(suite.T(), errs.FieldErrors, 1)
}

func (suite *ValidatorTestSuite) TestSupplierAadharPattern() {
	reg := validSupplierRegistration(models.CategoryIndividualFarmer)
	reg.AadharCardNumber = "1234"

	errs := suite.validator.ValidateSupplier(reg)
	assert.Equal(suite.T(), []string{"Invalid format"}, errs.FieldErrors["aadharCardNumber"])
}

func (suite *ValidatorTestSuite) TestSupplierGSTPattern() {
	reg := validSupplierRegistration(models.CategoryBrokersTraders)
	reg.GSTNumber = "invalid-gst"

	errs := suite.validator.ValidateSupplier(reg)
	assert.Equal(suite.T(), []string{"Invalid format"}, errs.FieldErrors["gstNumber"])
}

func (suite *ValidatorTestSuite) TestValidTradeEnquiry() {
	errs := suite.validator.ValidateTrade(validTradeEnquiry())
	assert.True(suite.T(), errs.Empty())
}

func (suite *ValidatorTestSuite) TestTradeEnquiryMissingCompanyEmail() {
	t := validTradeEnquiry()
	t.CompanyEmail = ""

	errs := suite.validator.ValidateTrade(t)

	assert.False(suite.T(), errs.Empty())
	assert.Equal(suite.T(), []string{"This field is required"}, errs.FieldErrors["companyEmail"])
	assert.Len(suite.T(), errs.FieldErrors, 1)
}

func (suite *ValidatorTestSuite) TestTradeEnquiryInvalidIncoterm() {
	t := validTradeEnquiry()
	t.Incoterm = "XYZ"

	errs := suite.validator.ValidateTrade(t)

	assert.True(suite.T(), errs.Has("incoterm"))
	assert.Contains(suite.T(), errs.FieldErrors["incoterm"][0], "Must be one of:")
	assert.Contains(suite.T(), errs.FieldErrors["incoterm"][0], "FOB")
}

func (suite *ValidatorTestSuite) TestTradeEnquiryQuantityMustBeNumber() {
	t := validTradeEnquiry()
	t.QuantityMT = "forty"

	errs := suite.validator.ValidateTrade(t)
	assert.Equal(suite.T(), []string{"Must be a non-negative whole number"}, errs.FieldErrors["quantityMT"])
}

func (suite *ValidatorTestSuite) TestSchemaForKnownAndUnknownTypes() {
	for _, typ := range []models.SubmissionType{models.SubmissionGeneral, models.SubmissionSupplier, models.SubmissionTrade} {
		schema, ok := SchemaFor(typ)
		assert.True(suite.T(), ok)
		assert.Equal(suite.T(), typ, schema.Type)
		assert.NotEmpty(suite.T(), schema.Rules)
	}

	_, ok := SchemaFor("newsletter")
	assert.False(suite.T(), ok)
}

func (suite *ValidatorTestSuite) TestSchemaSpecCarriesPatterns() {
	schema, _ := SchemaFor(models.SubmissionSupplier)
	specs := schema.Spec()

	assert.Len(suite.T(), specs, len(schema.Rules))

	byName := make(map[string]FieldRuleSpec, len(specs))
	for _, s := range specs {
		byName[s.Name] = s
	}

	assert.True(suite.T(), byName["fullName"].Required)
	assert.NotEmpty(suite.T(), byName["aadharCardNumber"].Pattern)
	assert.ElementsMatch(suite.T(), []string{
		"Coffee Estate Owner", "Individual Farmer", "Brokers / Traders",
	}, byName["category"].Enum)
}

func (suite *ValidatorTestSuite) TestEveryCategoryHasRequirement() {
	reqs := SupplierCategoryRequirements()
	for _, category := range models.SupplierCategories() {
		req, ok := reqs[category]
		assert.True(suite.T(), ok, "category %s has no requirement entry", category)
		assert.NotEmpty(suite.T(), req.KeyField)
		assert.Contains(suite.T(), req.Fields, req.KeyField)
	}
}

// TestValidatorTestSuite runs the test suite
func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}
