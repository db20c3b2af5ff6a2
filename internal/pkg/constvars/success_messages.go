package constvars

const (
	// Care plan messages
	CreateCarePlanSuccessMessage       = "care plan created successfully"
	GetCarePlanSuccessMessage          = "get care plan successfully"
	GetCarePlansSuccessMessage         = "get care plans successfully"
	UpdateCarePlanSuccessMessage       = "care plan updated successfully"
	ApproveCarePlanSuccessMessage      = "care plan approved successfully"
	UpdateCarePlanStatusSuccessMessage = "care plan status updated successfully"
	DeleteCarePlanSuccessMessage       = "care plan deleted successfully"
	GetCarePlanHistorySuccessMessage   = "get care plan history successfully"
	GenerateCarePlanOptionsSuccess     = "care plan options generated successfully"

	// Document messages
	UploadDocumentSuccessMessage      = "document uploaded successfully"
	GetDocumentSuccessMessage         = "get document successfully"
	GetDocumentsSuccessMessage        = "get documents successfully"
	GetDocumentDownloadSuccessMessage = "get document download link successfully"
	DeleteDocumentSuccessMessage      = "document deleted successfully"

	// Analysis messages
	AnalyzeDocumentSuccessMessage = "document analysis accepted"
	GetAnalysisSuccessMessage     = "get document analysis successfully"
)
