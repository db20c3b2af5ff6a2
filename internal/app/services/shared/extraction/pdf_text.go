package extraction

import (
	"bytes"
	"strings"

	"revolucare-service/internal/pkg/constvars"

	"github.com/ledongthuc/pdf"
)

// documentText returns the plain text of a document's content. PDF bytes are
// parsed page by page; anything else is treated as UTF-8 text.
func documentText(content []byte, mimeType string) (string, int, error) {
	if mimeType != constvars.MIMEApplicationPDF {
		return string(content), 1, nil
	}

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", 0, err
	}

	var builder strings.Builder
	pageCount := reader.NumPage()
	for pageIndex := 1; pageIndex <= pageCount; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		builder.WriteString(text)
		builder.WriteString("\n")
	}

	return builder.String(), pageCount, nil
}
