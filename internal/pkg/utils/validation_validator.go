package utils

import (
	"revolucare-service/internal/app/models"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("document_type", validateDocumentType)
	validate.RegisterValidation("analysis_type", validateAnalysisType)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateDocumentType(fl validator.FieldLevel) bool {
	return models.DocumentType(fl.Field().String()).IsValid()
}

func validateAnalysisType(fl validator.FieldLevel) bool {
	return models.AnalysisType(fl.Field().String()).IsValid()
}
