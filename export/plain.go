package export

import (
	"fmt"
	"io"
)

// MIME types and filename extensions for the supported formats.
const (
	TextContentType = "text/plain; charset=utf-8"
	TextExtension   = ".txt"

	DocxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	DocxExtension   = ".docx"
)

// WriteText writes the text as a plain UTF-8 document.
func WriteText(w io.Writer, text string) error {
	if _, err := io.WriteString(w, text); err != nil {
		return fmt.Errorf("export: write text: %w", err)
	}
	return nil
}
