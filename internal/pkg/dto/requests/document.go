package requests

type UploadDocument struct {
	OwnerID  string            `json:"ownerId" validate:"required"`
	Type     string            `json:"type" validate:"required,document_type"`
	Name     string            `json:"name" validate:"required"`
	MimeType string            `json:"mimeType" validate:"required"`
	Content  []byte            `json:"-"`
	Metadata map[string]string `json:"metadata,omitempty"`
}
