package requests

type GenerateCarePlanOptions struct {
	ClientID          string   `json:"clientId" validate:"required"`
	DocumentIDs       []string `json:"documentIds" validate:"required,min=1,dive,required"`
	AdditionalContext string   `json:"additionalContext" validate:"max=4000"`
}
