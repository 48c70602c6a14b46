// Package extract converts downloaded CV bytes to plain text.
package extract

import (
	"bytes"
	"fmt"
	"strings"

	"code.sajari.com/docconv"
)

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeDOC  = "application/msword"
)

// Text extracts plain text from a document, using the MIME type and falling
// back to the file extension when the type is missing or generic.
func Text(data []byte, mimeType, fileName string) (string, error) {
	lower := strings.ToLower(fileName)

	switch {
	case mimeType == mimePDF || strings.HasSuffix(lower, ".pdf"):
		return convert(data, mimePDF)

	case mimeType == mimeDOCX || strings.HasSuffix(lower, ".docx"):
		return convert(data, mimeDOCX)

	case mimeType == mimeDOC || strings.HasSuffix(lower, ".doc"):
		// Legacy .doc sometimes converts; surface a clearer error when not.
		text, err := convert(data, mimeDOC)
		if err != nil {
			return "", fmt.Errorf("legacy .doc files are not fully supported, convert to .docx or .pdf: %w", err)
		}
		return text, nil

	case strings.HasPrefix(mimeType, "text/"):
		return string(data), nil

	default:
		return "", fmt.Errorf("unsupported file type: %s", firstNonEmpty(mimeType, fileName))
	}
}

func convert(data []byte, mimeType string) (string, error) {
	res, err := docconv.Convert(bytes.NewReader(data), mimeType, true)
	if err != nil {
		return "", fmt.Errorf("failed to extract document text: %w", err)
	}
	return res.Body, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return "unknown"
}
